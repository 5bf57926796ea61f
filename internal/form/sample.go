package form

// Sample data shared by both forms. The dataset is deliberately consistent:
// the Section 8 arrears narrative matches the rent and arrears amounts, and
// both notices name the same parties and property.
var sampleFields = FieldSet{
	"tenant_name":      "Sonia Shezadi",
	"property_address": "35 Woodhall Park Avenue, Pudsey, LS28 7HF",
	"landlord_name":    "Tariq Mohammed",
	"landlord_address": "1 Example Street, Leeds, LS1 1AA",
	"landlord_phone":   "07123 456789",

	"s8_date_served":          "01/01/2026",
	"s8_earliest_proceedings": "15/01/2026",
	"s8_grounds":              "8, 10 and 11",
	"s8_arrears_amount":       "3,000.00",
	"s8_rent_amount":          "1,500.00",
	"s8_ground_text": `Ground 8 - At both the date of the service of the notice and at the date of the hearing:
(a) if rent is payable weekly or fortnightly, at least eight weeks' rent is unpaid;
(b) if rent is payable monthly, at least two months' rent is unpaid.

Ground 10 - Some rent lawfully due from the tenant is unpaid on the date on which the proceedings for possession are begun.

Ground 11 - Whether or not any rent is in arrears on the date on which proceedings for possession are begun, the tenant has persistently delayed paying rent which has become lawfully due.`,
	"s8_particulars": `The tenant has failed to pay rent since October 2025. As of the date of this notice, rent arrears total GBP 3,000.00 (representing 2 months unpaid rent at GBP 1,500.00 per month).

The tenant has been in persistent arrears for the past 6 months despite multiple requests for payment. Letters were sent on 15/10/2025, 01/11/2025, and 15/11/2025 requesting payment of the outstanding rent.

The mandatory Ground 8 threshold is met as more than 2 months rent remains unpaid.`,

	"s21_service_date": "22/12/2025",
	"s21_expiry_date":  "14/07/2026",
}

// SampleFields returns a copy of the built-in fixture dataset.
func SampleFields() FieldSet {
	return sampleFields.Clone()
}
