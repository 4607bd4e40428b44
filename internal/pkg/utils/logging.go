package utils

import (
	"adhd-intake-service/internal/pkg/constvars"
	"time"

	"go.uber.org/zap"
)

func LogOperation(logger *zap.Logger, operation string, requestID string, fn func() error) error {
	start := time.Now()

	logger.Debug("Operation started",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingOperationKey, operation),
	)

	err := fn()

	duration := time.Since(start)

	if err != nil {
		logger.Error("Operation failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingOperationKey, operation),
			zap.Duration(constvars.LoggingDurationKey, duration),
			zap.Bool(constvars.LoggingSuccessKey, false),
			zap.Error(err),
		)
		return err
	}

	logger.Info("Operation completed",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingOperationKey, operation),
		zap.Duration(constvars.LoggingDurationKey, duration),
		zap.Bool(constvars.LoggingSuccessKey, true),
	)

	return nil
}

func LogBusinessEvent(logger *zap.Logger, event string, requestID string, fields ...zap.Field) {
	allFields := []zap.Field{
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("business_event", event),
		zap.Time("timestamp", time.Now()),
	}
	allFields = append(allFields, fields...)

	logger.Info("Business event occurred", allFields...)
}

// LogSafetyEvent is emitted at warn level so on-call dashboards pick it up.
func LogSafetyEvent(logger *zap.Logger, event string, requestID string, fields ...zap.Field) {
	allFields := []zap.Field{
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("safety_event", event),
		zap.String("severity", "urgent"),
		zap.Time("timestamp", time.Now()),
	}
	allFields = append(allFields, fields...)

	logger.Warn("Safety event detected", allFields...)
}
