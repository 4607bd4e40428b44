package contracts

import (
	"adhd-intake-service/internal/app/models"
	"context"
)

type SafetyAlertPublisher interface {
	PublishSafetyAlert(ctx context.Context, alert models.SafetyAlert) error
}
