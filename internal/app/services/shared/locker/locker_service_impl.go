package locker

import (
	"adhd-intake-service/internal/app/contracts"
	"adhd-intake-service/internal/pkg/constvars"
	"adhd-intake-service/internal/pkg/exceptions"
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type lockService struct {
	redisRepo contracts.RedisRepository
	Log       *zap.Logger
}

func NewLockService(repo contracts.RedisRepository, logger *zap.Logger) contracts.LockerService {
	return &lockService{
		redisRepo: repo,
		Log:       logger,
	}
}

func (s *lockService) TryLock(ctx context.Context, key string, expiration time.Duration) (bool, string, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	lockValue := uuid.NewString()
	acquired, err := s.redisRepo.TrySetNX(ctx, key, lockValue, expiration)
	if err != nil {
		s.Log.Error("lockService.TryLock error calling redisRepo.TrySetNX",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return false, "", err
	}

	if !acquired {
		s.Log.Info("lockService.TryLock not acquired",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingRedisKey, key),
		)
		return false, "", nil
	}

	s.Log.Debug("lockService.TryLock acquired lock",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRedisKey, key),
		zap.String(constvars.LoggingLockValueKey, lockValue),
	)
	return true, lockValue, nil
}

// Unlock releases key only when it still holds lockValue. A lock that already
// expired is not an error; one taken over by another holder is.
func (s *lockService) Unlock(ctx context.Context, key, lockValue string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	deleted, found, err := s.redisRepo.DeleteIfEqual(ctx, key, lockValue)
	if err != nil {
		s.Log.Error("lockService.Unlock error calling redisRepo.DeleteIfEqual",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingRedisKey, key),
			zap.Error(err),
		)
		return err
	}

	if !found {
		s.Log.Info("lockService.Unlock lock already expired",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingRedisKey, key),
		)
		return nil
	}

	if !deleted {
		err := exceptions.ErrRedisUnlock(fmt.Errorf("lock on %s held by another owner", key))
		s.Log.Warn("lockService.Unlock lock ownership mismatch",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingLockValueKey, lockValue),
			zap.Error(err),
		)
		return err
	}

	s.Log.Debug("lockService.Unlock released lock",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRedisKey, key),
	)
	return nil
}
