package models

type Responder string

const (
	ResponderSelf    Responder = "self"
	ResponderParent  Responder = "parent"
	ResponderTeacher Responder = "teacher"
)

var ResponderOptions = []Responder{ResponderSelf, ResponderParent, ResponderTeacher}

func (r Responder) Label() string {
	switch r {
	case ResponderSelf:
		return "Self (adult)"
	case ResponderParent:
		return "Parent / guardian (for a child)"
	case ResponderTeacher:
		return "Teacher / other"
	}
	return ""
}

func (r Responder) IsValid() bool {
	return r == ResponderSelf || r == ResponderParent || r == ResponderTeacher
}

// QuestionPrefix is how symptom questions address the person being assessed.
func (r Responder) QuestionPrefix() string {
	switch r {
	case ResponderParent:
		return "Does your child"
	case ResponderTeacher:
		return "Does the person"
	}
	return "Do you"
}

type PatientType string

const (
	PatientTypeUnspecified PatientType = ""
	PatientTypeAdult       PatientType = "adult"
	PatientTypeChild       PatientType = "child"
)

func (p PatientType) Label() string {
	switch p {
	case PatientTypeAdult:
		return "Adult"
	case PatientTypeChild:
		return "Child"
	}
	return ""
}

func (p PatientType) IsValid() bool {
	return p == PatientTypeAdult || p == PatientTypeChild
}

type Gender string

const (
	GenderUnanswered Gender = ""
	GenderMale       Gender = "male"
	GenderFemale     Gender = "female"
	GenderOther      Gender = "other"
)

var GenderOptions = []Gender{GenderMale, GenderFemale, GenderOther}

func (g Gender) Label() string {
	switch g {
	case GenderMale:
		return "Male"
	case GenderFemale:
		return "Female"
	case GenderOther:
		return "Other"
	}
	return ""
}

type Language string

const (
	LanguageEnglish Language = "en"
	LanguageArabic  Language = "ar"
	LanguageFrench  Language = "fr"
)

var SupportedLanguages = []Language{LanguageEnglish, LanguageArabic, LanguageFrench}

// DisplayName is the language's name in its own script, as shown in the selector.
func (l Language) DisplayName() string {
	switch l {
	case LanguageEnglish:
		return "English"
	case LanguageArabic:
		return "العربية"
	case LanguageFrench:
		return "Français"
	}
	return ""
}

func (l Language) IsValid() bool {
	return l == LanguageEnglish || l == LanguageArabic || l == LanguageFrench
}

// ParseLanguage accepts a language code or its display name and falls back to English.
func ParseLanguage(value string) Language {
	for _, lang := range SupportedLanguages {
		if value == string(lang) || value == lang.DisplayName() {
			return lang
		}
	}
	return LanguageEnglish
}
