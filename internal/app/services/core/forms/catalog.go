package forms

// DSM5Items are the 18 DSM-5 ADHD criteria: 1-9 inattention, 10-18
// hyperactivity and impulsivity.
var DSM5Items = [18]string{
	"Fails to give close attention to details or makes careless mistakes",
	"Has difficulty sustaining attention in tasks or play",
	"Does not seem to listen when spoken to directly",
	"Does not follow through on instructions or finish tasks",
	"Has difficulty organizing tasks and activities",
	"Avoids or is reluctant to engage in tasks requiring sustained mental effort",
	"Loses things necessary for tasks or activities",
	"Is easily distracted by extraneous stimuli",
	"Is often forgetful in daily activities",
	"Fidgets with or taps hands or feet; squirms in seat",
	"Often leaves seat when remaining seated is expected",
	"Runs about or climbs in situations where inappropriate (adults: extreme restlessness)",
	"Unable to play or engage in activities quietly",
	"Is often 'on the go' or acts as if 'driven by a motor'",
	"Talks excessively",
	"Blurts out answers before questions are completed",
	"Has difficulty waiting turn",
	"Interrupts or intrudes on others",
}

// ASRSItems are the six Part A screener items of the WHO ASRS v1.1.
var ASRSItems = [6]string{
	"How often do you have trouble wrapping up the final details of a project, once the challenging parts have been done?",
	"How often do you have difficulty getting things in order when you have to do a task that requires organization?",
	"How often do you have problems remembering appointments or obligations?",
	"When you have a task that requires a lot of thought, how often do you avoid or delay getting started?",
	"How often do you fidget or squirm with your hands or feet when you have to sit down for a long time?",
	"How often do you feel overly active and compelled to do things, like you were driven by a motor?",
}

type Comorbidity struct {
	Key   string
	Label string
}

// Comorbidities is the optional co-occurring conditions checklist. Keys are
// persisted as column suffixes and must not change.
var Comorbidities = []Comorbidity{
	{Key: "anxiety", Label: "Anxiety disorder"},
	{Key: "depression", Label: "Depression"},
	{Key: "autism", Label: "Autism spectrum disorder"},
	{Key: "learning_disorder", Label: "Specific learning disorder (e.g., dyslexia)"},
	{Key: "tic_disorder", Label: "Tic disorder or Tourette syndrome"},
	{Key: "odd_conduct", Label: "Oppositional defiant or conduct problems"},
	{Key: "bipolar", Label: "Bipolar disorder"},
}

func IsComorbidityKey(key string) bool {
	for _, c := range Comorbidities {
		if c.Key == key {
			return true
		}
	}
	return false
}

const (
	textTitle        = "ADHD Clinical Questionnaire"
	textInstructions = "This form collects clinical information used for ADHD assessment. All data will be stored privately."

	textSectionParticipant   = "Participant and responder information"
	textSectionSymptoms      = "DSM-5 ADHD symptom checklist, frequency in last 6 months"
	textSectionHistory       = "History and context"
	textSectionASRS          = "ASRS-6 screener (brief adult items)"
	textSectionComorbidities = "Other conditions (diagnosed or suspected)"
	textSectionSafety        = "Safety"
	textSectionConsent       = "Consent & Submit"
)
