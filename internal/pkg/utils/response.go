package utils

import (
	"adhd-intake-service/internal/pkg/constvars"
	"adhd-intake-service/internal/pkg/dto/responses"
	"adhd-intake-service/internal/pkg/exceptions"
	"errors"
	"net/http"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

func BuildSuccessResponse(w http.ResponseWriter, code int, message string, data interface{}) {
	response := responses.ResponseDTO{
		Success: true,
		Message: message,
		Data:    data,
	}
	w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(response)
}

func BuildErrorResponse(log *zap.Logger, w http.ResponseWriter, err error) {
	code := constvars.StatusInternalServerError
	clientMessage := constvars.ErrClientSomethingWrongWithApplication

	var customErr *exceptions.CustomError
	if errors.As(err, &customErr) {
		code = customErr.StatusCode
		clientMessage = customErr.ClientMessage
		fields := []zap.Field{zap.Int(constvars.LoggingStatusCodeKey, code)}
		if customErr.Location != nil {
			fields = append(fields, zap.Any("location", customErr.Location))
		}
		if code >= constvars.StatusInternalServerError {
			log.Error(customErr.DevMessage, fields...)
		} else {
			log.Warn(customErr.DevMessage, fields...)
		}
	} else {
		log.Error("Unhandled error", zap.String(constvars.LoggingErrorMessageKey, err.Error()))
	}

	w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	w.WriteHeader(code)
	response := exceptions.CustomError{
		StatusCode:    code,
		Success:       false,
		ClientMessage: clientMessage,
	}

	if customErr != nil {
		response.Details = customErr.Details
		appEnvironment := GetEnvString("APP_ENV", constvars.AppEnvDevelopment)
		if appEnvironment != constvars.AppEnvProduction {
			response.DevMessage = customErr.DevMessage
			response.Location = customErr.Location
		}
	}
	json.NewEncoder(w).Encode(response)
}
