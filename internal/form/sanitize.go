package form

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	freeTextPolicyOnce sync.Once
	freeTextPolicy     *bluemonday.Policy
)

// CleanFields sanitises the form's free-text narrative fields on a copy of
// the field set. Plain text passes through untouched so values remain literal
// substrings of the rendered notice; only values carrying markup characters
// are run through the sanitiser, which strips every element.
func CleanFields(def Definition, fields FieldSet) FieldSet {
	if len(def.FreeText) == 0 {
		return fields
	}
	out := fields.Clone()
	for _, name := range def.FreeText {
		value, ok := out[name]
		if !ok {
			continue
		}
		out[name] = sanitizeFreeText(value)
	}
	return out
}

func sanitizeFreeText(raw string) string {
	if !strings.ContainsAny(raw, "<>&") {
		return raw
	}
	return freeTextSanitizer().Sanitize(raw)
}

func freeTextSanitizer() *bluemonday.Policy {
	freeTextPolicyOnce.Do(func() {
		freeTextPolicy = bluemonday.StrictPolicy()
	})
	return freeTextPolicy
}
