package models

import (
	"fmt"
	"time"
)

type SessionState string

const (
	SessionStateEditing      SessionState = "editing"
	SessionStateValidating   SessionState = "validating"
	SessionStateRejected     SessionState = "rejected"
	SessionStateAccepted     SessionState = "accepted"
	SessionStatePersisting   SessionState = "persisting"
	SessionStatePersisted    SessionState = "persisted"
	SessionStatePersistError SessionState = "persist_error"
	SessionStateHalted       SessionState = "halted"
)

var sessionTransitions = map[SessionState][]SessionState{
	SessionStateEditing:      {SessionStateValidating},
	SessionStateValidating:   {SessionStateRejected, SessionStateAccepted},
	SessionStateRejected:     {SessionStateEditing},
	SessionStateAccepted:     {SessionStatePersisting},
	SessionStatePersisting:   {SessionStatePersisted, SessionStatePersistError},
	SessionStatePersistError: {SessionStateEditing},
}

// IsTerminal reports whether the session accepts no further input.
func (s SessionState) IsTerminal() bool {
	return s == SessionStatePersisted || s == SessionStateHalted
}

// CanTransitionTo reports whether next is reachable in one step. Halted is
// reachable from every non-terminal state.
func (s SessionState) CanTransitionTo(next SessionState) bool {
	if s.IsTerminal() {
		return false
	}
	if next == SessionStateHalted {
		return true
	}
	for _, allowed := range sessionTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

type TransitionError struct {
	From SessionState
	To   SessionState
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("invalid session transition from %s to %s", e.From, e.To)
}

// IntakeSession is one respondent's pass through the form.
type IntakeSession struct {
	ID            string         `json:"id"`
	State         SessionState   `json:"state"`
	Bundle        ResponseBundle `json:"bundle"`
	HaltReason    string         `json:"halt_reason,omitempty"`
	Missing       []FieldID      `json:"missing,omitempty"`
	ParticipantID string         `json:"participant_id,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}

func NewIntakeSession(id string, bundle ResponseBundle, now time.Time) *IntakeSession {
	return &IntakeSession{
		ID:        id,
		State:     SessionStateEditing,
		Bundle:    bundle,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (s *IntakeSession) TransitionTo(next SessionState, now time.Time) error {
	if !s.State.CanTransitionTo(next) {
		return &TransitionError{From: s.State, To: next}
	}
	s.State = next
	s.UpdatedAt = now
	return nil
}

// Halt moves the session to its terminal halted state.
func (s *IntakeSession) Halt(reason string, now time.Time) error {
	if err := s.TransitionTo(SessionStateHalted, now); err != nil {
		return err
	}
	s.HaltReason = reason
	return nil
}
