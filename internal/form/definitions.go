package form

import "fmt"

var sharedFields = []string{
	"tenant_name",
	"property_address",
	"landlord_name",
	"landlord_address",
	"landlord_phone",
}

var definitions = []Definition{
	{
		Kind:       KindSection8,
		FormNumber: "3",
		Statute:    "Housing Act 1988 section 8 (as amended)",
		Title:      "Notice of intention to begin proceedings for possession",
		Summary:    "Section 8 Notice",
		OutputBase: "completed_section_8_form_3",
		Required: append(append([]string{}, sharedFields...),
			"s8_date_served",
			"s8_earliest_proceedings",
			"s8_grounds",
			"s8_ground_text",
			"s8_particulars",
			"s8_arrears_amount",
			"s8_rent_amount",
		),
		FreeText: []string{"s8_ground_text", "s8_particulars"},
	},
	{
		Kind:       KindSection21,
		FormNumber: "6A",
		Statute:    "Housing Act 1988 section 21(1) and (4) (as amended)",
		Title:      "Notice requiring possession",
		Summary:    "Section 21 Notice",
		OutputBase: "completed_section_21_form_6a",
		Required: append(append([]string{}, sharedFields...),
			"s21_service_date",
			"s21_expiry_date",
		),
	},
}

// Definitions returns the supported forms in serving order: Form 3 first,
// then Form 6A, mirroring the fixture layout the artifacts are named after.
func Definitions() []Definition {
	out := make([]Definition, len(definitions))
	copy(out, definitions)
	return out
}

// DefinitionFor resolves a form definition by kind.
func DefinitionFor(kind Kind) (Definition, error) {
	for _, def := range definitions {
		if def.Kind == kind {
			return def, nil
		}
	}
	return Definition{}, fmt.Errorf("form: unknown form kind %q", kind)
}
