package forms

import (
	"adhd-intake-service/internal/app/models"
	"adhd-intake-service/internal/app/services/core/screening"
	"adhd-intake-service/internal/pkg/constvars"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
)

var identityColumns = []string{
	"Name", "Email", "Phone", "DOB_or_Age", "Gender", "Country", "Responder", "Patient_type", "Language",
}

var historyColumns = []string{
	"Age_of_onset", "Onset_before_12", "Duration", "Multi_setting", "Functional_impairment",
	"Childhood_history", "Parent_role", "Prior_diagnosis", "Prior_treatment", "Current_medication",
	"School_work_problems", "Learning_history", "Family_history", "Medical_history", "Sleep_problems",
	"Substance_use", "Referral_reason", "Symptom_examples",
}

var trailingColumns = []string{"Suicidality", "Consent", "ASRS_score", "Timestamp"}

// Header returns the flat column order every store writes. Rows produced by
// RowEncoder line up with it one to one. Comorbidity columns come after
// Timestamp so the leading columns stay fixed as the checklist grows.
func Header() []string {
	header := make([]string, 0, HeaderLen())
	header = append(header, "Participant_ID")
	header = append(header, identityColumns...)
	header = append(header, historyColumns...)
	for i := 1; i <= models.DSM5ItemCount; i++ {
		header = append(header, fmt.Sprintf("Symptom_%d", i))
	}
	for i := 1; i <= models.ASRSItemCount; i++ {
		header = append(header, fmt.Sprintf("ASRS_%d", i))
	}
	header = append(header, trailingColumns...)
	for _, c := range Comorbidities {
		header = append(header, "Comorbidity_"+c.Key)
	}
	return header
}

func HeaderLen() int {
	return 1 + len(identityColumns) + len(historyColumns) + models.DSM5ItemCount +
		models.ASRSItemCount + len(Comorbidities) + len(trailingColumns)
}

// EncodedRow is one submission ready to append.
type EncodedRow struct {
	ParticipantID string
	ASRSScore     *int
	SubmittedAt   time.Time
	Values        []string
}

type RowEncoder struct {
	now   func() time.Time
	newID func() string
}

func NewRowEncoder() *RowEncoder {
	return &RowEncoder{now: time.Now, newID: uuid.NewString}
}

// Encode flattens a bundle. Ordinal answers are written as their English
// label, the score as an integer or an empty cell when unavailable.
func (e *RowEncoder) Encode(bundle *models.ResponseBundle) EncodedRow {
	participantID := e.newID()
	submittedAt := e.now()
	score := screening.ScoreASRSPointer(bundle.ASRS)
	branch := bundle.Branch()

	row := make([]string, 0, HeaderLen())
	row = append(row,
		participantID,
		bundle.Name,
		bundle.Email,
		bundle.Phone,
		bundle.DOBOrAge,
		bundle.Gender.Label(),
		bundle.Country,
		bundle.Responder.Label(),
		branch.PatientType.Label(),
		bundle.Language.DisplayName(),
	)
	row = append(row,
		bundle.AgeOfOnset,
		bundle.OnsetBefore12.Label(),
		bundle.Duration,
		bundle.MultiSetting.Label(),
		bundle.FunctionalImpairment,
		bundle.ChildhoodHistory,
		bundle.ParentRole,
		bundle.PriorDiagnosis.Label(),
		bundle.PriorTreatment,
		bundle.CurrentMedication,
		bundle.SchoolWorkProblems.Label(),
		bundle.LearningHistory.Label(),
		bundle.FamilyHistory,
		bundle.MedicalHistory,
		bundle.SleepProblems.Label(),
		bundle.SubstanceUse.Label(),
		bundle.ReferralReason,
		bundle.SymptomExamples,
	)
	for _, answer := range bundle.Symptoms {
		row = append(row, answer.Label())
	}
	for _, answer := range bundle.ASRS {
		row = append(row, answer.Label())
	}
	scoreCell := ""
	if score != nil {
		scoreCell = strconv.Itoa(*score)
	}
	row = append(row,
		bundle.Suicidality.Label(),
		yesNoCell(bundle.Consent),
		scoreCell,
		submittedAt.Format(constvars.TimestampLayout),
	)
	for _, c := range Comorbidities {
		row = append(row, bundle.Comorbidities[c.Key].Label())
	}

	return EncodedRow{
		ParticipantID: participantID,
		ASRSScore:     score,
		SubmittedAt:   submittedAt,
		Values:        row,
	}
}

func yesNoCell(v bool) string {
	if v {
		return models.YesNoYes.Label()
	}
	return models.YesNoNo.Label()
}
