package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
	CONTEXT_SESSION_ID_KEY           ContextKey = "session_id"
)

const (
	ResourceForm     = "form"
	ResourceSessions = "sessions"
	ResourceScore    = "score"
)

const (
	AppEnvProduction  = "production"
	AppEnvDevelopment = "development"
)

// Persistence backends selectable through PERSISTENCE_BACKEND.
const (
	PersistenceBackendSheets = "sheets"
	PersistenceBackendCSV    = "csv"
	PersistenceBackendMongo  = "mongo"
	PersistenceBackendMinio  = "minio"
)

const (
	RedisKeySessionPrefix     = "intake:session:"
	RedisKeyTranslationPrefix = "intake:translation:"
	RedisKeySessionLockPrefix = "intake:lock:session:"
)

const (
	JWTClaimSessionID = "session_id"
	JWTClaimExpiry    = "exp"
)

// TimestampLayout is the persisted submission timestamp, local clock.
const TimestampLayout = "2006-01-02 15:04:05"
