package models

import "time"

// SafetyAlert is raised for the on-call clinician when a session halts on a
// safety answer. Contact details are whatever the respondent entered so far.
type SafetyAlert struct {
	AlertID   string    `json:"alert_id"`
	SessionID string    `json:"session_id"`
	Reason    string    `json:"reason"`
	Responder Responder `json:"responder"`
	Language  Language  `json:"language"`
	Name      string    `json:"name,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Email     string    `json:"email,omitempty"`
	RaisedAt  time.Time `json:"raised_at"`
}
