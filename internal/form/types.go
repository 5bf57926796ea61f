package form

import (
	"fmt"
	"sort"
	"strings"
)

// Kind identifies one of the supported statutory notice forms.
type Kind string

const (
	// KindSection8 is Form 3, served under section 8 of the Housing Act 1988.
	KindSection8 Kind = "section8"
	// KindSection21 is Form 6A, served under section 21(1) and (4).
	KindSection21 Kind = "section21"
)

// FieldSet holds the named string values substituted into a notice template.
// Values are opaque; the renderer performs no validation beyond presence
// checks, matching the paper forms where every box is free text.
type FieldSet map[string]string

// Clone returns an independent copy of the field set.
func (fs FieldSet) Clone() FieldSet {
	if fs == nil {
		return nil
	}
	out := make(FieldSet, len(fs))
	for name, value := range fs {
		out[name] = value
	}
	return out
}

// Merge overlays the provided values on top of a copy of the receiver.
// Empty override names are ignored; empty values are kept so callers can
// deliberately blank a field.
func (fs FieldSet) Merge(overrides map[string]string) FieldSet {
	out := fs.Clone()
	if out == nil {
		out = make(FieldSet, len(overrides))
	}
	for name, value := range overrides {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		out[name] = value
	}
	return out
}

// Has reports whether the field is present with a non-empty value.
func (fs FieldSet) Has(name string) bool {
	value, ok := fs[name]
	return ok && strings.TrimSpace(value) != ""
}

// Names returns the field names in sorted order.
func (fs FieldSet) Names() []string {
	names := make([]string, 0, len(fs))
	for name := range fs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Definition describes a single statutory form: its identity on paper, the
// fields it references, and the base name its fixture artifacts are written
// under.
type Definition struct {
	Kind       Kind
	FormNumber string
	Statute    string
	Title      string
	// Summary is the short label used in document titles and log lines,
	// e.g. "Section 8 Notice".
	Summary string
	// OutputBase is the artifact file name without extension, e.g.
	// "completed_section_8_form_3".
	OutputBase string
	// Required lists every field the template references. Rendering with any
	// of these missing would produce a notice with blank statutory boxes, so
	// Validate rejects the set instead.
	Required []string
	// FreeText names the multi-line narrative fields (grounds, particulars)
	// that are inserted verbatim and therefore sanitised first.
	FreeText []string
}

// Validate checks that every referenced field is present and non-empty,
// returning a MissingFieldsError naming the gaps.
func (d Definition) Validate(fields FieldSet) error {
	var missing []string
	for _, name := range d.Required {
		if !fields.Has(name) {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return &MissingFieldsError{Kind: d.Kind, Missing: missing}
	}
	return nil
}

// Notice pairs a form definition with the field values to substitute. It is
// the unit of work renderers consume.
type Notice struct {
	Definition Definition
	Fields     FieldSet
}

// MissingFieldsError reports fields referenced by a form but absent from the
// supplied field set.
type MissingFieldsError struct {
	Kind    Kind
	Missing []string
}

func (e *MissingFieldsError) Error() string {
	return fmt.Sprintf("form: %s is missing fields: %s", e.Kind, strings.Join(e.Missing, ", "))
}
