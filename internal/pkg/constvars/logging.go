package constvars

const (
	LoggingRequestIDKey      = "request_id"
	LoggingSessionIDKey      = "session_id"
	LoggingParticipantIDKey  = "participant_id"
	LoggingOperationKey      = "operation"
	LoggingDurationKey       = "duration"
	LoggingSuccessKey        = "success"
	LoggingErrorMessageKey   = "error_message"
	LoggingMethodKey         = "method"
	LoggingEndpointKey       = "endpoint"
	LoggingRemoteAddrKey     = "remote_addr"
	LoggingUserAgentKey      = "user_agent"
	LoggingQueryKey          = "query"
	LoggingStatusCodeKey     = "status_code"
	LoggingStateFromKey      = "state_from"
	LoggingStateToKey        = "state_to"
	LoggingMissingFieldsKey  = "missing_fields"
	LoggingASRSScoreKey      = "asrs_score"
	LoggingLanguageKey       = "language"
	LoggingBackendKey        = "backend"
	LoggingQueueKey          = "queue"
	LoggingTranslationLenKey = "text_length"
	LoggingRedisKey          = "redis_key"
	LoggingLockValueKey      = "lock_value"
	LoggingAlertIDKey        = "alert_id"
)
