package screening

import (
	"adhd-intake-service/internal/app/models"
	"strings"
)

// Completeness is the outcome of a required-field check. Missing lists every
// absent field in declaration order, not just the first one found.
type Completeness struct {
	OK      bool             `json:"ok"`
	Missing []models.FieldID `json:"missing,omitempty"`
}

type requiredField struct {
	id      models.FieldID
	applies func(branch models.Branch) bool
	present func(bundle *models.ResponseBundle) bool
}

func always(models.Branch) bool { return true }

func forPatientType(patientType models.PatientType) func(models.Branch) bool {
	return func(branch models.Branch) bool {
		return branch.PatientType == patientType
	}
}

func hasText(s string) bool {
	return strings.TrimSpace(s) != ""
}

// requiredFields is the canonical required set. Order here is the order
// missing fields are reported in.
var requiredFields = []requiredField{
	{models.FieldName, always, func(b *models.ResponseBundle) bool { return hasText(b.Name) }},
	{models.FieldEmail, always, func(b *models.ResponseBundle) bool { return hasText(b.Email) }},
	{models.FieldPhone, always, func(b *models.ResponseBundle) bool { return hasText(b.Phone) }},
	{models.FieldDSM5Symptoms, always, allSymptomsAnswered},
	{models.FieldFunctionalImpairment, always, func(b *models.ResponseBundle) bool { return hasText(b.FunctionalImpairment) }},
	{models.FieldMultiSetting, always, func(b *models.ResponseBundle) bool {
		return b.MultiSetting == models.YesNoYes || b.MultiSetting == models.YesNoNo
	}},
	{models.FieldConsent, always, func(b *models.ResponseBundle) bool { return b.Consent }},
	{models.FieldChildhoodHistory, forPatientType(models.PatientTypeAdult), func(b *models.ResponseBundle) bool { return hasText(b.ChildhoodHistory) }},
	{models.FieldParentRole, forPatientType(models.PatientTypeChild), func(b *models.ResponseBundle) bool { return hasText(b.ParentRole) }},
}

func allSymptomsAnswered(b *models.ResponseBundle) bool {
	for _, answer := range b.Symptoms {
		if !answer.IsAnswered() {
			return false
		}
	}
	return true
}

// CheckRequired reports whether every field required on the given branch is
// filled in. It reads the bundle only and has no side effects.
func CheckRequired(bundle *models.ResponseBundle, branch models.Branch) Completeness {
	var missing []models.FieldID
	for _, field := range requiredFields {
		if !field.applies(branch) {
			continue
		}
		if !field.present(bundle) {
			missing = append(missing, field.id)
		}
	}
	return Completeness{OK: len(missing) == 0, Missing: missing}
}
