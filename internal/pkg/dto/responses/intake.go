package responses

import "adhd-intake-service/internal/app/models"

type StartSession struct {
	SessionID string `json:"session_id"`
	Token     string `json:"token"`
}

type Session struct {
	SessionID     string                `json:"session_id"`
	State         models.SessionState   `json:"state"`
	Bundle        models.ResponseBundle `json:"bundle"`
	Missing       []string              `json:"missing,omitempty"`
	HaltReason    string                `json:"halt_reason,omitempty"`
	ParticipantID string                `json:"participant_id,omitempty"`
	ASRSScore     *int                  `json:"asrs_score"`
}

type SafetyCheck struct {
	Safe   bool   `json:"safe"`
	Reason string `json:"reason,omitempty"`
}

type Submission struct {
	ParticipantID string `json:"participant_id"`
	ASRSScore     *int   `json:"asrs_score"`
	SubmittedAt   string `json:"submitted_at"`
}

type ASRSScore struct {
	Score    *int   `json:"score"`
	Complete bool   `json:"complete"`
	Message  string `json:"message,omitempty"`
}
