package forms

import (
	"adhd-intake-service/internal/app/contracts"
	"adhd-intake-service/internal/app/models"
	"adhd-intake-service/internal/pkg/dto/responses"
	"context"
	"fmt"
)

const (
	KindText     = "text"
	KindTextArea = "textarea"
	KindChoice   = "choice"
	KindCheckbox = "checkbox"
)

type labeled interface {
	~string
	Label() string
}

type translateFunc func(text string) string

func options[T labeled](values []T, tr translateFunc) []responses.Option {
	out := make([]responses.Option, 0, len(values))
	for _, v := range values {
		out = append(out, responses.Option{Key: string(v), Label: tr(v.Label())})
	}
	return out
}

func text(id, label string, required bool, tr translateFunc) responses.Question {
	return responses.Question{ID: id, Label: tr(label), Kind: KindText, Required: required}
}

func textArea(id, label string, required bool, tr translateFunc) responses.Question {
	return responses.Question{ID: id, Label: tr(label), Kind: KindTextArea, Required: required}
}

func choice(id, label string, required bool, opts []responses.Option, tr translateFunc) responses.Question {
	return responses.Question{ID: id, Label: tr(label), Kind: KindChoice, Required: required, Options: opts}
}

// BuildForm renders the questionnaire for one language and responder. An empty
// patient type follows the responder, the same way a submitted bundle does.
// Labels go through the translator; option keys always stay canonical.
func BuildForm(ctx context.Context, translator contracts.Translator, lang models.Language, responder models.Responder, patientType models.PatientType) *responses.Form {
	tr := func(s string) string { return translator.Translate(ctx, s, lang) }
	bundle := models.NewResponseBundle(responder, lang)
	bundle.PatientType = patientType
	branch := bundle.Branch()

	frequency := options(models.FrequencyOptions, tr)
	yesNo := options(models.YesNoOptions, tr)

	return &responses.Form{
		Language:     string(lang),
		Title:        tr(textTitle),
		Instructions: tr(textInstructions),
		Sections: []responses.Section{
			participantSection(tr),
			symptomSection(responder, frequency, tr),
			historySection(branch, yesNo, tr),
			asrsSection(frequency, tr),
			comorbiditySection(tr),
			{
				ID:    "safety",
				Title: tr(textSectionSafety),
				Questions: []responses.Question{
					choice("suicidality", "Any current thoughts of self-harm or suicide?", false, options(models.SuicidalityOptions, tr), tr),
				},
			},
			{
				ID:    "consent",
				Title: tr(textSectionConsent),
				Questions: []responses.Question{{
					ID:       "consent",
					Label:    tr("I consent to storing my (or my child's) data for clinical/assessment purposes."),
					Kind:     KindCheckbox,
					Required: true,
				}},
			},
		},
	}
}

func participantSection(tr translateFunc) responses.Section {
	return responses.Section{
		ID:    "participant",
		Title: tr(textSectionParticipant),
		Questions: []responses.Question{
			text("name", "Full name", true, tr),
			text("email", "Email", true, tr),
			text("phone", "Phone number", true, tr),
			text("dob_or_age", "Date of birth or age", false, tr),
			choice("gender", "Gender", false, options(models.GenderOptions, tr), tr),
			text("country", "Country", false, tr),
			choice("responder", "Who is answering?", true, options(models.ResponderOptions, tr), tr),
			choice("patient_type", "Is the person being assessed an adult or a child?", false,
				options([]models.PatientType{models.PatientTypeAdult, models.PatientTypeChild}, tr), tr),
		},
	}
}

func symptomSection(responder models.Responder, frequency []responses.Option, tr translateFunc) responses.Section {
	prefix := tr(responder.QuestionPrefix())
	questions := make([]responses.Question, 0, len(DSM5Items)+1)
	for i, item := range DSM5Items {
		questions = append(questions, responses.Question{
			ID:       fmt.Sprintf("symptom_%d", i+1),
			Label:    fmt.Sprintf("%d. %s %s?", i+1, prefix, tr(item)),
			Kind:     KindChoice,
			Required: true,
			Options:  frequency,
		})
	}
	questions = append(questions, textArea("symptom_examples", "If possible, give one short example of typical problematic behaviour", false, tr))
	return responses.Section{ID: "dsm5", Title: tr(textSectionSymptoms), Questions: questions}
}

func historySection(branch models.Branch, yesNo []responses.Option, tr translateFunc) responses.Section {
	questions := []responses.Question{
		text("age_of_onset", "Approximate age when symptoms were first noticed (e.g., 7)", false, tr),
		choice("onset_before_12", "Were symptoms present before age 12?", false, yesNo, tr),
		text("duration", "Duration of problems (months or years)", false, tr),
		choice("multi_setting", "Are symptoms observed in more than one setting (home, school, work)?", true, yesNo, tr),
		textArea("functional_impairment", "Describe how symptoms impair daily functioning (social/academic/occupational)", true, tr),
	}
	switch branch.PatientType {
	case models.PatientTypeAdult:
		questions = append(questions, textArea("childhood_history", "Describe attention or activity problems you had as a child (before age 12)", true, tr))
	case models.PatientTypeChild:
		questions = append(questions, text("parent_role", "Your relationship to the child (e.g., mother, legal guardian, class teacher)", true, tr))
	}
	questions = append(questions,
		choice("prior_diagnosis", "Previous ADHD diagnosis?", false, yesNo, tr),
		textArea("prior_treatment", "Prior treatments (medication, therapy)", false, tr),
		text("current_medication", "Current psychotropic medication (name & dose)", false, tr),
		choice("school_work_problems", "Current school/work performance problems?", false, yesNo, tr),
		choice("learning_history", "History of learning difficulties or special education?", false, yesNo, tr),
		textArea("family_history", "Family history of ADHD or psychiatric disorders (if known)", false, tr),
		textArea("medical_history", "Relevant medical history (e.g., seizures, head injury, chronic illness)", false, tr),
		choice("sleep_problems", "Sleep problems?", false, yesNo, tr),
		choice("substance_use", "Substance use (adolescent/adult)?", false, options(models.SubstanceUseOptions, tr), tr),
		textArea("referral_reason", "Reason for referral / main concern", false, tr),
	)
	return responses.Section{ID: "history", Title: tr(textSectionHistory), Questions: questions}
}

func asrsSection(frequency []responses.Option, tr translateFunc) responses.Section {
	questions := make([]responses.Question, 0, len(ASRSItems))
	for i, item := range ASRSItems {
		questions = append(questions, responses.Question{
			ID:      fmt.Sprintf("asrs_%d", i+1),
			Label:   fmt.Sprintf("ASRS %d. %s", i+1, tr(item)),
			Kind:    KindChoice,
			Options: frequency,
		})
	}
	return responses.Section{ID: "asrs", Title: tr(textSectionASRS), Questions: questions}
}

func comorbiditySection(tr translateFunc) responses.Section {
	answers := options(models.YesNoUnsureOptions, tr)
	questions := make([]responses.Question, 0, len(Comorbidities))
	for _, c := range Comorbidities {
		questions = append(questions, choice("comorbidity_"+c.Key, c.Label, false, answers, tr))
	}
	return responses.Section{ID: "comorbidities", Title: tr(textSectionComorbidities), Questions: questions}
}
