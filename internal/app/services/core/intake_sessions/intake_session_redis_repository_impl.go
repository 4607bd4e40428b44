package intakeSessions

import (
	"adhd-intake-service/internal/app/contracts"
	"adhd-intake-service/internal/app/models"
	"adhd-intake-service/internal/pkg/constvars"
	"adhd-intake-service/internal/pkg/exceptions"
	"adhd-intake-service/internal/pkg/utils"
	"context"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type intakeSessionRedisRepository struct {
	RedisRepository contracts.RedisRepository
	Sealer          *utils.DraftSealer
	Expiration      time.Duration
	Log             *zap.Logger
}

// NewIntakeSessionRedisRepository stores sessions sealed under the draft key.
// Every Save refreshes the expiration.
func NewIntakeSessionRedisRepository(
	redisRepository contracts.RedisRepository,
	sealer *utils.DraftSealer,
	expiration time.Duration,
	logger *zap.Logger,
) contracts.IntakeSessionRepository {
	return &intakeSessionRedisRepository{
		RedisRepository: redisRepository,
		Sealer:          sealer,
		Expiration:      expiration,
		Log:             logger,
	}
}

func (repo *intakeSessionRedisRepository) Save(ctx context.Context, session *models.IntakeSession) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	payload, err := json.Marshal(session)
	if err != nil {
		repo.Log.Error("intakeSessionRedisRepository.Save error marshaling session",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingSessionIDKey, session.ID),
			zap.Error(err),
		)
		return exceptions.ErrCannotMarshalJSON(err)
	}

	sealed, err := repo.Sealer.Seal(payload, []byte(session.ID))
	if err != nil {
		repo.Log.Error("intakeSessionRedisRepository.Save error sealing session",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingSessionIDKey, session.ID),
			zap.Error(err),
		)
		return exceptions.ErrSealDraft(err)
	}

	return repo.RedisRepository.SetRaw(ctx, sessionKey(session.ID), sealed, repo.Expiration)
}

func (repo *intakeSessionRedisRepository) FindByID(ctx context.Context, sessionID string) (*models.IntakeSession, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	stored, err := repo.RedisRepository.Get(ctx, sessionKey(sessionID))
	if err != nil {
		return nil, err
	}
	if stored == "" {
		return nil, nil
	}

	payload, err := repo.Sealer.Open([]byte(stored), []byte(sessionID))
	if err != nil {
		repo.Log.Error("intakeSessionRedisRepository.FindByID error opening sealed session",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingSessionIDKey, sessionID),
			zap.Error(err),
		)
		return nil, exceptions.ErrOpenDraft(err)
	}

	session := new(models.IntakeSession)
	if err := json.Unmarshal(payload, session); err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}
	return session, nil
}

func (repo *intakeSessionRedisRepository) Delete(ctx context.Context, sessionID string) error {
	return repo.RedisRepository.Delete(ctx, sessionKey(sessionID))
}

func sessionKey(sessionID string) string {
	return constvars.RedisKeySessionPrefix + sessionID
}
