package models

// FrequencyAnswer is the canonical key of a frequency-scale answer. Keys are
// stored and scored in English; labels are only translated for display.
type FrequencyAnswer string

const (
	FrequencyUnanswered FrequencyAnswer = ""
	FrequencyNever      FrequencyAnswer = "never"
	FrequencyRarely     FrequencyAnswer = "rarely"
	FrequencySometimes  FrequencyAnswer = "sometimes"
	FrequencyOften      FrequencyAnswer = "often"
	FrequencyVeryOften  FrequencyAnswer = "very_often"
)

// FrequencyOptions lists the answerable options in scale order.
var FrequencyOptions = []FrequencyAnswer{
	FrequencyNever,
	FrequencyRarely,
	FrequencySometimes,
	FrequencyOften,
	FrequencyVeryOften,
}

var frequencyScores = map[FrequencyAnswer]int{
	FrequencyNever:     0,
	FrequencyRarely:    1,
	FrequencySometimes: 2,
	FrequencyOften:     3,
	FrequencyVeryOften: 4,
}

var frequencyLabels = map[FrequencyAnswer]string{
	FrequencyNever:     "Never",
	FrequencyRarely:    "Rarely",
	FrequencySometimes: "Sometimes",
	FrequencyOften:     "Often",
	FrequencyVeryOften: "Very often",
}

// Score returns the ordinal score. Unanswered and unknown keys have none.
func (f FrequencyAnswer) Score() (int, bool) {
	score, ok := frequencyScores[f]
	return score, ok
}

func (f FrequencyAnswer) Label() string {
	return frequencyLabels[f]
}

func (f FrequencyAnswer) IsAnswered() bool {
	_, ok := frequencyScores[f]
	return ok
}

func (f FrequencyAnswer) IsValid() bool {
	return f == FrequencyUnanswered || f.IsAnswered()
}

type YesNo string

const (
	YesNoUnanswered YesNo = ""
	YesNoYes        YesNo = "yes"
	YesNoNo         YesNo = "no"
)

var YesNoOptions = []YesNo{YesNoYes, YesNoNo}

func (a YesNo) Label() string {
	switch a {
	case YesNoYes:
		return "Yes"
	case YesNoNo:
		return "No"
	}
	return ""
}

func (a YesNo) IsValid() bool {
	return a == YesNoUnanswered || a == YesNoYes || a == YesNoNo
}

// YesNoUnsure answers the comorbidity checklist.
type YesNoUnsure string

const (
	YesNoUnsureUnanswered YesNoUnsure = ""
	YesNoUnsureYes        YesNoUnsure = "yes"
	YesNoUnsureNo         YesNoUnsure = "no"
	YesNoUnsureUnsure     YesNoUnsure = "unsure"
)

var YesNoUnsureOptions = []YesNoUnsure{YesNoUnsureYes, YesNoUnsureNo, YesNoUnsureUnsure}

func (a YesNoUnsure) Label() string {
	switch a {
	case YesNoUnsureYes:
		return "Yes"
	case YesNoUnsureNo:
		return "No"
	case YesNoUnsureUnsure:
		return "Unsure"
	}
	return ""
}

func (a YesNoUnsure) IsValid() bool {
	return a == YesNoUnsureUnanswered || a == YesNoUnsureYes || a == YesNoUnsureNo || a == YesNoUnsureUnsure
}

type SubstanceUse string

const (
	SubstanceUseUnanswered     SubstanceUse = ""
	SubstanceUseNo             SubstanceUse = "no"
	SubstanceUseYes            SubstanceUse = "yes"
	SubstanceUsePreferNotToSay SubstanceUse = "prefer_not_to_say"
)

var SubstanceUseOptions = []SubstanceUse{SubstanceUseNo, SubstanceUseYes, SubstanceUsePreferNotToSay}

func (a SubstanceUse) Label() string {
	switch a {
	case SubstanceUseNo:
		return "No"
	case SubstanceUseYes:
		return "Yes"
	case SubstanceUsePreferNotToSay:
		return "Prefer not to say"
	}
	return ""
}

// Suicidality is the safety screening answer. ActivePlan halts the session.
type Suicidality string

const (
	SuicidalityUnanswered Suicidality = ""
	SuicidalityNo         Suicidality = "no"
	SuicidalityPassive    Suicidality = "passive"
	SuicidalityActivePlan Suicidality = "active_plan"
)

var SuicidalityOptions = []Suicidality{SuicidalityNo, SuicidalityPassive, SuicidalityActivePlan}

func (s Suicidality) Label() string {
	switch s {
	case SuicidalityNo:
		return "No"
	case SuicidalityPassive:
		return "Yes, passive thoughts"
	case SuicidalityActivePlan:
		return "Yes, active thoughts/plan"
	}
	return ""
}

func (s Suicidality) IsValid() bool {
	return s == SuicidalityUnanswered || s == SuicidalityNo || s == SuicidalityPassive || s == SuicidalityActivePlan
}
