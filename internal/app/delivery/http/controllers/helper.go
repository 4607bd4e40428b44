package controllers

import (
	"adhd-intake-service/internal/pkg/exceptions"
	"adhd-intake-service/internal/pkg/utils"
	"context"
	"errors"
	"net/http"
	"time"

	"go.uber.org/zap"
)

const usecaseTimeout = 10 * time.Second

func buildUsecaseErrorResponse(log *zap.Logger, w http.ResponseWriter, err error) {
	if errors.Is(err, context.DeadlineExceeded) {
		utils.BuildErrorResponse(log, w, exceptions.ErrServerDeadlineExceeded(err))
		return
	}
	utils.BuildErrorResponse(log, w, err)
}
