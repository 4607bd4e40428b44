package requests

import "adhd-intake-service/internal/app/models"

type StartSession struct {
	Language    models.Language    `json:"language" validate:"required,language"`
	Responder   models.Responder   `json:"responder" validate:"required,responder"`
	PatientType models.PatientType `json:"patient_type" validate:"omitempty,patient_type"`
}

type SaveDraft struct {
	SessionID string                `json:"-"`
	Bundle    models.ResponseBundle `json:"bundle"`
}

type SetSuicidality struct {
	SessionID   string             `json:"-"`
	Suicidality models.Suicidality `json:"suicidality" validate:"required,suicidality"`
}

type ScoreASRS struct {
	Answers [models.ASRSItemCount]models.FrequencyAnswer `json:"answers" validate:"dive,frequency"`
}

type GetForm struct {
	Language    models.Language    `validate:"required,language"`
	Responder   models.Responder   `validate:"required,responder"`
	PatientType models.PatientType `validate:"omitempty,patient_type"`
}
