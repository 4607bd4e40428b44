package exceptions

import (
	"adhd-intake-service/internal/pkg/constvars"
	"fmt"
)

var (
	ErrInputValidation = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, FormatAllValidationErrors(err), constvars.ErrDevValidationFailed)
	}
	ErrCannotParseJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCannotParseJSON)
	}
	ErrCannotMarshalJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevCannotMarshalJSON)
	}
	ErrServerDeadlineExceeded = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusGatewayTimeout, constvars.ErrClientServerLongRespond, constvars.ErrDevServerDeadlineExceeded)
	}
	ErrServerProcess = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientCannotProcessRequest, constvars.ErrDevServerProcess)
	}
	ErrMissingRequestID = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevMissingRequestID)
	}
	ErrTooManyRequests = func(clientIP string) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusTooManyRequests, constvars.ErrClientTooManyRequests, fmt.Sprintf(constvars.ErrDevTooManyRequests, clientIP))
	}
	ErrPanicRecovered = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevPanicRecovered)
	}

	// Auth
	ErrTokenMissing = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusUnauthorized, constvars.ErrClientNotAuthorized, constvars.ErrDevAuthTokenMissing)
	}
	ErrTokenGenerate = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevAuthGenerateToken)
	}
	ErrTokenInvalidOrExpired = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusUnauthorized, constvars.ErrClientNotAuthorized, constvars.ErrDevAuthTokenInvalidOrExpired)
	}
	ErrTokenSessionMismatch = func(err error, sessionID string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusForbidden, constvars.ErrClientNotAuthorized, fmt.Sprintf(constvars.ErrDevSessionMismatch, sessionID))
	}

	// Intake session
	ErrSessionNotFound = func(err error, sessionID string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusNotFound, constvars.ErrClientSessionNotFound, fmt.Sprintf(constvars.ErrDevSessionNotFound, sessionID))
	}
	ErrMissingRequiredFields = func(missing []string) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusUnprocessableEntity, constvars.ErrClientMissingRequiredFields, constvars.ErrDevMissingRequiredFields).
			WithDetails(map[string][]string{"missing": missing})
	}
	ErrSafetyHalt = func(reason string) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusForbidden, constvars.ErrClientSafetyHalt, constvars.ErrDevSafetyHalt).
			WithDetails(map[string]string{"reason": reason})
	}
	ErrSessionHalted = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusConflict, constvars.ErrClientSessionHalted, constvars.ErrDevSessionHalted)
	}
	ErrSessionClosed = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusConflict, constvars.ErrClientSessionClosed, constvars.ErrDevSessionClosed)
	}
	ErrInvalidSessionTransition = func(err error, from, to string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusConflict, constvars.ErrClientInvalidSessionState, fmt.Sprintf(constvars.ErrDevInvalidSessionTransition, from, to))
	}

	ErrSessionBusy = func(sessionID string) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusConflict, constvars.ErrClientSessionBusy, fmt.Sprintf(constvars.ErrDevSessionBusy, sessionID))
	}

	// Persistence
	ErrPersistResponse = func(err error, backend string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadGateway, constvars.ErrClientPersistResponse, fmt.Sprintf(constvars.ErrDevPersistResponse, backend))
	}
	ErrPrepareHeader = func(err error, backend string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadGateway, constvars.ErrClientPersistResponse, fmt.Sprintf(constvars.ErrDevPrepareHeader, backend))
	}
	ErrUnknownPersistenceBackend = func(backend string) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevUnknownPersistenceBackend, backend))
	}

	// Draft sealing
	ErrSealDraft = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevSealDraft)
	}
	ErrOpenDraft = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevOpenDraft)
	}

	// Redis
	ErrRedisGetNoData = func(err error, redisKey string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevRedisGetNoData, redisKey))
	}
	ErrRedisSet = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisSetData)
	}
	ErrRedisDelete = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisDeleteData)
	}
	ErrRedisUnlock = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisUnlock)
	}

	// RabbitMQ
	ErrRabbitMQPublishMessage = func(err error, queueName string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevRabbitMQPublishMessage, queueName))
	}
)
