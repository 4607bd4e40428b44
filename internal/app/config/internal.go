package config

import "time"

type InternalConfig struct {
	App         App            `mapstructure:"app"`
	JWT         AppJWT         `mapstructure:"jwt"`
	Intake      AppIntake      `mapstructure:"intake"`
	Translation AppTranslation `mapstructure:"translation"`
	Persistence AppPersistence `mapstructure:"persistence"`
	RabbitMQ    AppRabbitMQ    `mapstructure:"rabbitmq"`
	Minio       AppMinio       `mapstructure:"minio"`
	MongoDB     AppMongoDB     `mapstructure:"mongodb"`
	Sheets      AppSheets      `mapstructure:"sheets"`
}

type App struct {
	Env                        string `mapstructure:"env"`
	Port                       string `mapstructure:"port"`
	Version                    string `mapstructure:"version"`
	Address                    string `mapstructure:"address"`
	Timezone                   string `mapstructure:"timezone"`
	EndpointPrefix             string `mapstructure:"endpoint_prefix"`
	CorsAllowedOrigins         string `mapstructure:"cors_allowed_origins"`
	MaxRequests                int    `mapstructure:"max_requests"`
	ShutdownTimeoutInSeconds   int    `mapstructure:"shutdown_timeout_in_seconds"`
	MaxTimeRequestsPerSeconds  int    `mapstructure:"max_time_requests_per_seconds"`
	RequestBodyLimitInMegabyte int    `mapstructure:"request_body_limit_in_megabyte"`
	RequestTimeoutInSeconds    int    `mapstructure:"request_timeout_in_seconds"`
}

type AppJWT struct {
	Secret        string `mapstructure:"secret"`
	ExpTimeInHour int    `mapstructure:"exp_time_in_hour"`
}

// AppIntake holds settings for in-progress intake sessions.
type AppIntake struct {
	// SessionExpiredTimeInHours is how long an untouched draft survives in Redis
	SessionExpiredTimeInHours int `mapstructure:"session_expired_time_in_hours"`
	// DraftEncryptionKey seals drafts at rest; any length, it is hashed to a key
	DraftEncryptionKey string `mapstructure:"draft_encryption_key"`
	// SessionLockTimeInSeconds bounds how long one write may hold the session lock
	SessionLockTimeInSeconds int `mapstructure:"session_lock_time_in_seconds"`
}

type AppTranslation struct {
	BaseUrl                 string        `mapstructure:"base_url"`
	RequestTimeout          time.Duration `mapstructure:"request_timeout"`
	RequestsPerSecond       int           `mapstructure:"requests_per_second"`
	Burst                   int           `mapstructure:"burst"`
	CacheExpiredTimeInHours int           `mapstructure:"cache_expired_time_in_hours"`
}

// AppPersistence selects where accepted submissions are appended.
type AppPersistence struct {
	Backend     string `mapstructure:"backend"`
	CSVFilePath string `mapstructure:"csv_file_path"`
}

type AppRabbitMQ struct {
	SafetyAlertQueue string `mapstructure:"safety_alert_queue"`
}

type AppMinio struct {
	BucketName   string `mapstructure:"bucket_name"`
	ObjectPrefix string `mapstructure:"object_prefix"`
}

type AppMongoDB struct {
	DBName              string `mapstructure:"db_name"`
	ResponsesCollection string `mapstructure:"responses_collection"`
}

type AppSheets struct {
	SpreadsheetID   string `mapstructure:"spreadsheet_id"`
	SheetName       string `mapstructure:"sheet_name"`
	CredentialsFile string `mapstructure:"credentials_file"`
}
