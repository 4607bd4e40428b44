package contracts

import (
	"adhd-intake-service/internal/app/models"
	"adhd-intake-service/internal/pkg/dto/requests"
	"adhd-intake-service/internal/pkg/dto/responses"
	"context"
)

type IntakeSessionUsecase interface {
	StartSession(ctx context.Context, request *requests.StartSession) (*responses.StartSession, error)
	GetSession(ctx context.Context, sessionID string) (*responses.Session, error)
	SaveDraft(ctx context.Context, request *requests.SaveDraft) (*responses.Session, error)
	SetSuicidality(ctx context.Context, request *requests.SetSuicidality) (*responses.SafetyCheck, error)
	Submit(ctx context.Context, sessionID string) (*responses.Submission, error)
}

// IntakeSessionRepository keeps in-progress sessions. FindByID returns nil
// without error when the session does not exist or has expired.
type IntakeSessionRepository interface {
	Save(ctx context.Context, session *models.IntakeSession) error
	FindByID(ctx context.Context, sessionID string) (*models.IntakeSession, error)
	Delete(ctx context.Context, sessionID string) error
}

type FormUsecase interface {
	GetForm(ctx context.Context, request *requests.GetForm) (*responses.Form, error)
	ScoreASRS(ctx context.Context, request *requests.ScoreASRS) (*responses.ASRSScore, error)
}
