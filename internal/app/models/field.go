package models

// FieldID is the stable identifier of a required field reported back to callers.
type FieldID string

const (
	FieldName                 FieldID = "name"
	FieldEmail                FieldID = "email"
	FieldPhone                FieldID = "phone"
	FieldDSM5Symptoms         FieldID = "dsm5-symptoms"
	FieldFunctionalImpairment FieldID = "functional-impairment"
	FieldMultiSetting         FieldID = "multi-setting"
	FieldConsent              FieldID = "consent"
	FieldChildhoodHistory     FieldID = "childhood-history"
	FieldParentRole           FieldID = "parent-role"
)

var fieldLabels = map[FieldID]string{
	FieldName:                 "Name",
	FieldEmail:                "Email",
	FieldPhone:                "Phone",
	FieldDSM5Symptoms:         "All DSM-5 symptom items",
	FieldFunctionalImpairment: "Functional impairment description",
	FieldMultiSetting:         "Multi-setting question",
	FieldConsent:              "Consent",
	FieldChildhoodHistory:     "Childhood history of symptoms",
	FieldParentRole:           "Parent / guardian role",
}

// Label is the English name used when listing the field to the respondent.
func (f FieldID) Label() string {
	if label, ok := fieldLabels[f]; ok {
		return label
	}
	return string(f)
}

func FieldIDsToStrings(ids []FieldID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = string(id)
	}
	return out
}
