package notice

import internalform "github.com/goliatone/go-noticegen/internal/form"

// Kind re-exports the internal form kind enumeration.
type Kind = internalform.Kind

const (
	KindSection8  = internalform.KindSection8
	KindSection21 = internalform.KindSection21
)

type FieldSet = internalform.FieldSet
type Definition = internalform.Definition
type Notice = internalform.Notice
type MissingFieldsError = internalform.MissingFieldsError

// Definitions returns the supported statutory forms in serving order.
func Definitions() []Definition {
	return internalform.Definitions()
}

// DefinitionFor resolves a form definition by kind.
func DefinitionFor(kind Kind) (Definition, error) {
	return internalform.DefinitionFor(kind)
}

// SampleFields returns a copy of the built-in fixture dataset.
func SampleFields() FieldSet {
	return internalform.SampleFields()
}

// LoadFieldSet reads a YAML field file and overlays it on the sample dataset.
func LoadFieldSet(path string) (FieldSet, error) {
	return internalform.LoadFieldSet(path)
}

// CleanFields sanitises the form's free-text fields on a copy of the set.
func CleanFields(def Definition, fields FieldSet) FieldSet {
	return internalform.CleanFields(def, fields)
}
