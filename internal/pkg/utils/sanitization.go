package utils

import (
	"adhd-intake-service/internal/app/models"
	"strings"
)

// SanitizeResponseBundle trims free text and normalizes the email address.
// Whitespace-only answers become empty so completeness checks see them as missing.
func SanitizeResponseBundle(bundle *models.ResponseBundle) {
	bundle.Name = strings.TrimSpace(bundle.Name)
	bundle.Email = strings.ToLower(strings.TrimSpace(bundle.Email))
	bundle.Phone = strings.TrimSpace(bundle.Phone)
	bundle.DOBOrAge = strings.TrimSpace(bundle.DOBOrAge)
	bundle.Country = strings.TrimSpace(bundle.Country)

	bundle.SymptomExamples = strings.TrimSpace(bundle.SymptomExamples)
	bundle.AgeOfOnset = strings.TrimSpace(bundle.AgeOfOnset)
	bundle.Duration = strings.TrimSpace(bundle.Duration)
	bundle.FunctionalImpairment = strings.TrimSpace(bundle.FunctionalImpairment)
	bundle.ChildhoodHistory = strings.TrimSpace(bundle.ChildhoodHistory)
	bundle.ParentRole = strings.TrimSpace(bundle.ParentRole)
	bundle.PriorTreatment = strings.TrimSpace(bundle.PriorTreatment)
	bundle.CurrentMedication = strings.TrimSpace(bundle.CurrentMedication)
	bundle.FamilyHistory = strings.TrimSpace(bundle.FamilyHistory)
	bundle.MedicalHistory = strings.TrimSpace(bundle.MedicalHistory)
	bundle.ReferralReason = strings.TrimSpace(bundle.ReferralReason)

	if bundle.Comorbidities == nil {
		bundle.Comorbidities = map[string]models.YesNoUnsure{}
	}
}
