package intakeSessions

import (
	"adhd-intake-service/internal/app/config"
	"adhd-intake-service/internal/app/contracts"
	"adhd-intake-service/internal/app/models"
	"adhd-intake-service/internal/app/services/core/forms"
	"adhd-intake-service/internal/app/services/core/screening"
	"adhd-intake-service/internal/pkg/constvars"
	"adhd-intake-service/internal/pkg/dto/requests"
	"adhd-intake-service/internal/pkg/dto/responses"
	"adhd-intake-service/internal/pkg/exceptions"
	"adhd-intake-service/internal/pkg/metrics"
	"adhd-intake-service/internal/pkg/utils"
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type intakeSessionUsecase struct {
	SessionRepository contracts.IntakeSessionRepository
	ResponseStore     contracts.ResponseStore
	AlertPublisher    contracts.SafetyAlertPublisher
	Locker            contracts.LockerService
	RowEncoder        *forms.RowEncoder
	InternalConfig    *config.InternalConfig
	Log               *zap.Logger
	now               func() time.Time
	newID             func() string
}

func NewIntakeSessionUsecase(
	sessionRepository contracts.IntakeSessionRepository,
	responseStore contracts.ResponseStore,
	alertPublisher contracts.SafetyAlertPublisher,
	locker contracts.LockerService,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.IntakeSessionUsecase {
	return &intakeSessionUsecase{
		SessionRepository: sessionRepository,
		ResponseStore:     responseStore,
		AlertPublisher:    alertPublisher,
		Locker:            locker,
		RowEncoder:        forms.NewRowEncoder(),
		InternalConfig:    internalConfig,
		Log:               logger,
		now:               time.Now,
		newID:             uuid.NewString,
	}
}

func (uc *intakeSessionUsecase) StartSession(ctx context.Context, request *requests.StartSession) (*responses.StartSession, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("intakeSessionUsecase.StartSession called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingLanguageKey, string(request.Language)),
	)

	bundle := models.NewResponseBundle(request.Responder, request.Language)
	bundle.PatientType = request.PatientType
	session := models.NewIntakeSession(uc.newID(), bundle, uc.now())

	if err := uc.SessionRepository.Save(ctx, session); err != nil {
		uc.Log.Error("intakeSessionUsecase.StartSession error saving session",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	expiry := time.Duration(uc.InternalConfig.JWT.ExpTimeInHour) * time.Hour
	token, err := utils.GenerateSessionJWT(session.ID, uc.InternalConfig.JWT.Secret, expiry)
	if err != nil {
		uc.Log.Error("intakeSessionUsecase.StartSession error generating session token",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrTokenGenerate(err)
	}

	utils.LogBusinessEvent(uc.Log, "intake_session_started", requestID,
		zap.String(constvars.LoggingSessionIDKey, session.ID),
		zap.String(constvars.LoggingLanguageKey, string(bundle.Language)),
		zap.String("responder", string(bundle.Responder)),
	)
	return &responses.StartSession{SessionID: session.ID, Token: token}, nil
}

func (uc *intakeSessionUsecase) GetSession(ctx context.Context, sessionID string) (*responses.Session, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("intakeSessionUsecase.GetSession called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, sessionID),
	)

	session, err := uc.findSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return toSessionResponse(session), nil
}

// SaveDraft replaces the stored answers with the submitted snapshot. Responder
// and language stay as chosen at start unless the snapshot sets them.
func (uc *intakeSessionUsecase) SaveDraft(ctx context.Context, request *requests.SaveDraft) (*responses.Session, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("intakeSessionUsecase.SaveDraft called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, request.SessionID),
	)

	unlock, err := uc.lockSession(ctx, request.SessionID)
	if err != nil {
		return nil, err
	}
	defer unlock()

	session, err := uc.findOpenSession(ctx, request.SessionID)
	if err != nil {
		return nil, err
	}

	bundle := request.Bundle
	if bundle.Responder == "" {
		bundle.Responder = session.Bundle.Responder
	}
	if bundle.Language == "" {
		bundle.Language = session.Bundle.Language
	}
	utils.SanitizeResponseBundle(&bundle)
	for key := range bundle.Comorbidities {
		if !forms.IsComorbidityKey(key) {
			delete(bundle.Comorbidities, key)
		}
	}

	session.Bundle = bundle
	session.Missing = nil
	session.UpdatedAt = uc.now()

	if safety := screening.CheckSafety(bundle.Suicidality); !safety.Safe {
		return nil, uc.halt(ctx, session, safety.Reason)
	}

	if err := uc.SessionRepository.Save(ctx, session); err != nil {
		return nil, err
	}

	uc.Log.Info("intakeSessionUsecase.SaveDraft succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, session.ID),
	)
	return toSessionResponse(session), nil
}

func (uc *intakeSessionUsecase) SetSuicidality(ctx context.Context, request *requests.SetSuicidality) (*responses.SafetyCheck, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("intakeSessionUsecase.SetSuicidality called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, request.SessionID),
	)

	unlock, err := uc.lockSession(ctx, request.SessionID)
	if err != nil {
		return nil, err
	}
	defer unlock()

	session, err := uc.findOpenSession(ctx, request.SessionID)
	if err != nil {
		return nil, err
	}

	session.Bundle.Suicidality = request.Suicidality
	session.UpdatedAt = uc.now()

	safety := screening.CheckSafety(request.Suicidality)
	if !safety.Safe {
		return nil, uc.halt(ctx, session, safety.Reason)
	}

	if err := uc.SessionRepository.Save(ctx, session); err != nil {
		return nil, err
	}
	return &responses.SafetyCheck{Safe: true}, nil
}

// Submit validates and persists the session. A rejected or failed submit
// leaves the draft editable with every answer intact.
func (uc *intakeSessionUsecase) Submit(ctx context.Context, sessionID string) (*responses.Submission, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("intakeSessionUsecase.Submit called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, sessionID),
	)

	unlock, err := uc.lockSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	defer unlock()

	session, err := uc.findOpenSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if err := uc.transition(ctx, session, models.SessionStateValidating); err != nil {
		return nil, err
	}

	if safety := screening.CheckSafety(session.Bundle.Suicidality); !safety.Safe {
		metrics.SubmissionOutcomes.WithLabelValues(metrics.OutcomeHalted).Inc()
		return nil, uc.halt(ctx, session, safety.Reason)
	}

	completeness := screening.CheckRequired(&session.Bundle, session.Bundle.Branch())
	if !completeness.OK {
		return nil, uc.reject(ctx, session, completeness.Missing)
	}

	if err := uc.transition(ctx, session, models.SessionStateAccepted); err != nil {
		return nil, err
	}
	session.Missing = nil
	if err := uc.transition(ctx, session, models.SessionStatePersisting); err != nil {
		return nil, err
	}

	row := uc.RowEncoder.Encode(&session.Bundle)
	err = utils.LogOperation(uc.Log, "ResponseStore.AppendRow", requestID, func() error {
		return uc.ResponseStore.AppendRow(ctx, forms.Header(), row.Values)
	})
	if err != nil {
		return nil, uc.persistFailed(ctx, session, err)
	}

	if err := uc.transition(ctx, session, models.SessionStatePersisted); err != nil {
		return nil, err
	}
	uc.closeSession(ctx, session, row.ParticipantID)

	metrics.SubmissionOutcomes.WithLabelValues(metrics.OutcomePersisted).Inc()
	if row.ASRSScore != nil {
		metrics.ASRSScores.Observe(float64(*row.ASRSScore))
	}

	fields := []zap.Field{
		zap.String(constvars.LoggingSessionIDKey, session.ID),
		zap.String(constvars.LoggingParticipantIDKey, row.ParticipantID),
		zap.String(constvars.LoggingBackendKey, uc.ResponseStore.Backend()),
	}
	if row.ASRSScore != nil {
		fields = append(fields, zap.Int(constvars.LoggingASRSScoreKey, *row.ASRSScore))
	}
	utils.LogBusinessEvent(uc.Log, "intake_submission_persisted", requestID, fields...)

	return &responses.Submission{
		ParticipantID: row.ParticipantID,
		ASRSScore:     row.ASRSScore,
		SubmittedAt:   row.SubmittedAt.Format(constvars.TimestampLayout),
	}, nil
}

// lockSession serializes every write to one session. The session must be read
// after the lock is taken, so a halt or a persist seen by one writer is never
// overwritten by another.
func (uc *intakeSessionUsecase) lockSession(ctx context.Context, sessionID string) (func(), error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	lockKey := constvars.RedisKeySessionLockPrefix + sessionID
	lockTimeout := time.Duration(uc.InternalConfig.Intake.SessionLockTimeInSeconds) * time.Second
	acquired, lockValue, err := uc.Locker.TryLock(ctx, lockKey, lockTimeout)
	if err != nil {
		return nil, exceptions.ErrServerProcess(err)
	}
	if !acquired {
		return nil, exceptions.ErrSessionBusy(sessionID)
	}

	return func() {
		if err := uc.Locker.Unlock(context.WithoutCancel(ctx), lockKey, lockValue); err != nil {
			uc.Log.Warn("intakeSessionUsecase.lockSession error releasing session lock",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingSessionIDKey, sessionID),
				zap.Error(err),
			)
		}
	}, nil
}

func (uc *intakeSessionUsecase) findSession(ctx context.Context, sessionID string) (*models.IntakeSession, error) {
	session, err := uc.SessionRepository.FindByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, exceptions.ErrSessionNotFound(nil, sessionID)
	}
	return session, nil
}

// findOpenSession loads a session that still accepts input.
func (uc *intakeSessionUsecase) findOpenSession(ctx context.Context, sessionID string) (*models.IntakeSession, error) {
	session, err := uc.findSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	switch session.State {
	case models.SessionStateHalted:
		return nil, exceptions.ErrSessionHalted(nil)
	case models.SessionStatePersisted:
		return nil, exceptions.ErrSessionClosed(nil)
	}
	return session, nil
}

func (uc *intakeSessionUsecase) transition(ctx context.Context, session *models.IntakeSession, next models.SessionState) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	from := session.State
	if err := session.TransitionTo(next, uc.now()); err != nil {
		uc.Log.Error("intakeSessionUsecase.transition rejected",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingSessionIDKey, session.ID),
			zap.String(constvars.LoggingStateFromKey, string(from)),
			zap.String(constvars.LoggingStateToKey, string(next)),
		)
		return exceptions.ErrInvalidSessionTransition(err, string(from), string(next))
	}
	uc.Log.Debug("intakeSessionUsecase.transition",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, session.ID),
		zap.String(constvars.LoggingStateFromKey, string(from)),
		zap.String(constvars.LoggingStateToKey, string(next)),
	)
	return nil
}

// halt stops the session for good and raises an alert. The returned error is
// always the safety halt, even when storing or alerting fails.
func (uc *intakeSessionUsecase) halt(ctx context.Context, session *models.IntakeSession, reason string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	from := session.State

	if err := session.Halt(reason, uc.now()); err != nil {
		return exceptions.ErrInvalidSessionTransition(err, string(from), string(models.SessionStateHalted))
	}
	metrics.SafetyHalts.Inc()

	alert := models.SafetyAlert{
		AlertID:   uc.newID(),
		SessionID: session.ID,
		Reason:    reason,
		Responder: session.Bundle.Responder,
		Language:  session.Bundle.Language,
		Name:      session.Bundle.Name,
		Phone:     session.Bundle.Phone,
		Email:     session.Bundle.Email,
		RaisedAt:  session.UpdatedAt,
	}
	utils.LogSafetyEvent(uc.Log, "intake_session_halted", requestID,
		zap.String(constvars.LoggingSessionIDKey, session.ID),
		zap.String(constvars.LoggingAlertIDKey, alert.AlertID),
		zap.String(constvars.LoggingStateFromKey, string(from)),
		zap.String("reason", reason),
	)

	if err := uc.SessionRepository.Save(ctx, session); err != nil {
		uc.Log.Error("intakeSessionUsecase.halt error saving halted session",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingSessionIDKey, session.ID),
			zap.Error(err),
		)
	}

	if err := uc.AlertPublisher.PublishSafetyAlert(context.WithoutCancel(ctx), alert); err != nil {
		uc.Log.Error("intakeSessionUsecase.halt error publishing safety alert",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingSessionIDKey, session.ID),
			zap.String(constvars.LoggingAlertIDKey, alert.AlertID),
			zap.Error(err),
		)
	}

	return exceptions.ErrSafetyHalt(reason)
}

func (uc *intakeSessionUsecase) reject(ctx context.Context, session *models.IntakeSession, missing []models.FieldID) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	missingIDs := models.FieldIDsToStrings(missing)

	if err := uc.transition(ctx, session, models.SessionStateRejected); err != nil {
		return err
	}
	session.Missing = missing
	if err := uc.transition(ctx, session, models.SessionStateEditing); err != nil {
		return err
	}
	if err := uc.SessionRepository.Save(ctx, session); err != nil {
		return err
	}

	metrics.SubmissionOutcomes.WithLabelValues(metrics.OutcomeRejected).Inc()
	uc.Log.Info("intakeSessionUsecase.Submit rejected incomplete form",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, session.ID),
		zap.Strings(constvars.LoggingMissingFieldsKey, missingIDs),
	)
	return exceptions.ErrMissingRequiredFields(missingIDs)
}

// persistFailed returns the session to editing so the respondent can retry
// without re-entering anything.
func (uc *intakeSessionUsecase) persistFailed(ctx context.Context, session *models.IntakeSession, cause error) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	backend := uc.ResponseStore.Backend()

	uc.Log.Error("intakeSessionUsecase.Submit error appending row",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, session.ID),
		zap.String(constvars.LoggingBackendKey, backend),
		zap.Error(cause),
	)
	metrics.SubmissionOutcomes.WithLabelValues(metrics.OutcomePersistError).Inc()

	if err := uc.transition(ctx, session, models.SessionStatePersistError); err != nil {
		return err
	}
	if err := uc.transition(ctx, session, models.SessionStateEditing); err != nil {
		return err
	}
	if err := uc.SessionRepository.Save(context.WithoutCancel(ctx), session); err != nil {
		uc.Log.Error("intakeSessionUsecase.Submit error keeping draft after persist failure",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingSessionIDKey, session.ID),
			zap.Error(err),
		)
	}

	var customErr *exceptions.CustomError
	if errors.As(cause, &customErr) {
		return customErr
	}
	return exceptions.ErrPersistResponse(cause, backend)
}

// closeSession drops the answers and keeps a persisted marker so a replayed
// submit is refused instead of appending a second row.
func (uc *intakeSessionUsecase) closeSession(ctx context.Context, session *models.IntakeSession, participantID string) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	session.Bundle = models.ResponseBundle{}
	session.ParticipantID = participantID
	err := uc.SessionRepository.Save(context.WithoutCancel(ctx), session)
	if err == nil {
		return
	}

	uc.Log.Error("intakeSessionUsecase.Submit error storing persisted marker",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, session.ID),
		zap.Error(err),
	)
	if err := uc.SessionRepository.Delete(context.WithoutCancel(ctx), session.ID); err != nil {
		uc.Log.Error("intakeSessionUsecase.Submit error deleting draft",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingSessionIDKey, session.ID),
			zap.Error(err),
		)
	}
}

func toSessionResponse(session *models.IntakeSession) *responses.Session {
	return &responses.Session{
		SessionID:     session.ID,
		State:         session.State,
		Bundle:        session.Bundle,
		Missing:       models.FieldIDsToStrings(session.Missing),
		HaltReason:    session.HaltReason,
		ParticipantID: session.ParticipantID,
		ASRSScore:     screening.ScoreASRSPointer(session.Bundle.ASRS),
	}
}
