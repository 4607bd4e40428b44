package models

const (
	DSM5ItemCount = 18
	ASRSItemCount = 6
)

// ResponseBundle is everything one respondent enters on the intake form.
// Answers are kept as canonical keys, never as translated labels.
type ResponseBundle struct {
	Name        string      `json:"name"`
	Email       string      `json:"email" validate:"omitempty,email"`
	Phone       string      `json:"phone"`
	DOBOrAge    string      `json:"dob_or_age"`
	Gender      Gender      `json:"gender" validate:"omitempty,oneof=male female other"`
	Country     string      `json:"country"`
	Responder   Responder   `json:"responder" validate:"omitempty,responder"`
	PatientType PatientType `json:"patient_type" validate:"omitempty,patient_type"`
	Language    Language    `json:"language" validate:"omitempty,language"`

	Symptoms        [DSM5ItemCount]FrequencyAnswer `json:"symptoms" validate:"dive,frequency"`
	SymptomExamples string                         `json:"symptom_examples"`

	AgeOfOnset           string       `json:"age_of_onset"`
	OnsetBefore12        YesNo        `json:"onset_before_12" validate:"omitempty,oneof=yes no"`
	Duration             string       `json:"duration"`
	MultiSetting         YesNo        `json:"multi_setting" validate:"omitempty,oneof=yes no"`
	FunctionalImpairment string       `json:"functional_impairment"`
	ChildhoodHistory     string       `json:"childhood_history"`
	ParentRole           string       `json:"parent_role"`
	PriorDiagnosis       YesNo        `json:"prior_diagnosis" validate:"omitempty,oneof=yes no"`
	PriorTreatment       string       `json:"prior_treatment"`
	CurrentMedication    string       `json:"current_medication"`
	SchoolWorkProblems   YesNo        `json:"school_work_problems" validate:"omitempty,oneof=yes no"`
	LearningHistory      YesNo        `json:"learning_history" validate:"omitempty,oneof=yes no"`
	FamilyHistory        string       `json:"family_history"`
	MedicalHistory       string       `json:"medical_history"`
	SleepProblems        YesNo        `json:"sleep_problems" validate:"omitempty,oneof=yes no"`
	SubstanceUse         SubstanceUse `json:"substance_use" validate:"omitempty,oneof=no yes prefer_not_to_say"`
	ReferralReason       string       `json:"referral_reason"`

	ASRS          [ASRSItemCount]FrequencyAnswer `json:"asrs" validate:"dive,frequency"`
	Comorbidities map[string]YesNoUnsure         `json:"comorbidities" validate:"dive,yes_no_unsure"`

	Suicidality Suicidality `json:"suicidality" validate:"omitempty,suicidality"`
	Consent     bool        `json:"consent"`
}

// NewResponseBundle returns the empty bundle a session starts from.
func NewResponseBundle(responder Responder, language Language) ResponseBundle {
	return ResponseBundle{
		Responder:     responder,
		Language:      language,
		Comorbidities: map[string]YesNoUnsure{},
	}
}

// Branch selects the conditional part of the required-field set.
type Branch struct {
	Responder   Responder
	PatientType PatientType
}

// Branch returns the bundle's active branch. An explicit patient type wins;
// otherwise self reports are adults and parent or teacher reports are children.
func (b ResponseBundle) Branch() Branch {
	patientType := b.PatientType
	if patientType == PatientTypeUnspecified {
		switch b.Responder {
		case ResponderSelf:
			patientType = PatientTypeAdult
		case ResponderParent, ResponderTeacher:
			patientType = PatientTypeChild
		}
	}
	return Branch{Responder: b.Responder, PatientType: patientType}
}
