package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required":      "is required",
	"email":         "must be a valid email",
	"oneof":         "must be one of the following: %s",
	"len":           "must contain exactly %s entries",
	"max":           "maximum at %s characters long",
	"language":      "must be one of the supported languages: en, ar, fr",
	"responder":     "must be one of: self, parent, teacher",
	"patient_type":  "must be one of: adult, child",
	"frequency":     "must be one of: never, rarely, sometimes, often, very_often",
	"suicidality":   "must be one of: no, passive, active_plan",
	"yes_no_unsure": "must be one of: yes, no, unsure",
}

// Validation tags that carry a parameter.
var TagsWithParams = map[string]bool{
	"oneof": true,
	"len":   true,
	"max":   true,
}

// Client-facing error messages
const (
	ErrClientCannotProcessRequest          = "cannot process request, please try again later"
	ErrClientSomethingWrongWithApplication = "something went wrong with the application, please try again later"
	ErrClientServerLongRespond             = "the server took too long to respond, please try again later"
	ErrClientNotAuthorized                 = "you are not authorized to access this resource"
	ErrClientSessionNotFound               = "the intake session was not found or has expired"
	ErrClientMissingRequiredFields         = "please complete the following required fields"
	ErrClientSafetyHalt                    = "URGENT: The person reports active suicidal thoughts or a plan. Please stop the form and contact emergency services or the on-call clinician immediately."
	ErrClientSessionHalted                 = "this form has been stopped and cannot accept further input"
	ErrClientSessionClosed                 = "this form has already been submitted"
	ErrClientPersistResponse               = "error submitting data, your answers were kept so you can try again"
	ErrClientInvalidSessionState           = "the form cannot perform this action in its current state"
	ErrClientSessionBusy                   = "your form is being saved by another request, please try again"
	ErrClientTooManyRequests               = "too many requests, please slow down and try again shortly"
)

// Developer-facing error messages
const (
	ErrDevValidationFailed           = "input validation failed"
	ErrDevInvalidInput               = "invalid input"
	ErrDevCannotParseJSON            = "cannot parse JSON"
	ErrDevCannotMarshalJSON          = "cannot marshal JSON"
	ErrDevServerDeadlineExceeded     = "server deadline exceeded"
	ErrDevServerProcess              = "server process failed"
	ErrDevAuthTokenMissing           = "auth token missing"
	ErrDevAuthTokenInvalidOrExpired  = "auth token invalid or expired"
	ErrDevAuthGenerateToken          = "failed to generate auth token"
	ErrDevAuthSigningMethod          = "unexpected signing method"
	ErrDevSessionMismatch            = "token session does not match requested session %s"
	ErrDevSessionNotFound            = "intake session %s not found"
	ErrDevMissingRequiredFields      = "MISSING_REQUIRED_FIELDS"
	ErrDevSafetyHalt                 = "SAFETY_HALT"
	ErrDevSessionHalted              = "SESSION_HALTED"
	ErrDevSessionClosed              = "SESSION_CLOSED"
	ErrDevInvalidSessionTransition   = "invalid session transition from %s to %s"
	ErrDevPersistResponse            = "failed to append response row to %s store"
	ErrDevPrepareHeader              = "failed to prepare header in %s store"
	ErrDevSealDraft                  = "failed to seal draft"
	ErrDevOpenDraft                  = "failed to open sealed draft"
	ErrDevRedisGetNoData             = "no data in redis for key %s"
	ErrDevRedisSetData               = "failed to set data in redis"
	ErrDevRedisDeleteData            = "failed to delete data in redis"
	ErrDevRedisUnlock                = "failed to release redis lock"
	ErrDevSessionBusy                = "session %s is locked by another request"
	ErrDevRabbitMQPublishMessage     = "failed to publish message to queue %s"
	ErrDevUnknownPersistenceBackend  = "unknown persistence backend %s"
	ErrDevTranslationRequestRejected = "translation request rejected with status %d"
	ErrDevMissingRequestID           = "request id missing from context"
	ErrDevTooManyRequests            = "rate limit exceeded for %s"
	ErrDevPanicRecovered             = "panic recovered while serving request"
)
