package config

import (
	"adhd-intake-service/internal/pkg/constvars"
	"adhd-intake-service/internal/pkg/utils"
	"fmt"
	"time"

	"github.com/joho/godotenv"
)

// Development fallbacks. Validate refuses them in production.
const (
	DefaultJWTSecret          = "anyjwt"
	DefaultDraftEncryptionKey = "change-me"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		MongoDB: MongoDB{
			Port:     utils.GetEnvString("MONGODB_PORT", "27017"),
			Host:     utils.GetEnvString("MONGODB_HOST", "localhost"),
			Username: utils.GetEnvString("MONGODB_USERNAME", ""),
			Password: utils.GetEnvString("MONGODB_PASSWORD", ""),
		},
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
			MaxSizeInMegabytes:  utils.GetEnvInt("LOGGER_MAX_SIZE_IN_MEGABYTES", 100),
			MaxBackups:          utils.GetEnvInt("LOGGER_MAX_BACKUPS", 5),
			MaxAgeInDays:        utils.GetEnvInt("LOGGER_MAX_AGE_IN_DAYS", 30),
		},
		RabbitMQ: RabbitMQ{
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "guest"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "guest"),
		},
		Minio: Minio{
			Port:     utils.GetEnvString("MINIO_PORT", "9000"),
			Host:     utils.GetEnvString("MINIO_HOST", "localhost"),
			Username: utils.GetEnvString("MINIO_USERNAME", "minioadmin"),
			Password: utils.GetEnvString("MINIO_PASSWORD", "minioadmin"),
			UseSSL:   utils.GetEnvBool("MINIO_USE_SSL", false),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                        utils.GetEnvString("APP_ENV", "development"),
			Port:                       utils.GetEnvString("APP_PORT", ":8080"),
			Version:                    utils.GetEnvString("APP_VERSION", "v1.0"),
			Address:                    utils.GetEnvString("APP_ADDRESS", "localhost"),
			Timezone:                   utils.GetEnvString("APP_TIMEZONE", "UTC"),
			EndpointPrefix:             utils.GetEnvString("APP_ENDPOINT_PREFIX", "/api"),
			CorsAllowedOrigins:         utils.GetEnvString("APP_CORS_ALLOWED_ORIGINS", "*"),
			MaxRequests:                utils.GetEnvInt("APP_MAX_REQUEST", 60),
			ShutdownTimeoutInSeconds:   utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT_IN_SECONDS", 10),
			MaxTimeRequestsPerSeconds:  utils.GetEnvInt("APP_MAX_TIME_REQUESTS_PER_SECONDS", 60),
			RequestBodyLimitInMegabyte: utils.GetEnvInt("APP_REQUEST_BODY_LIMIT_IN_MEGABYTE", 1),
			RequestTimeoutInSeconds:    utils.GetEnvInt("APP_REQUEST_TIMEOUT_IN_SECONDS", 10),
		},
		JWT: AppJWT{
			Secret:        utils.GetEnvString("JWT_SECRET", DefaultJWTSecret),
			ExpTimeInHour: utils.GetEnvInt("JWT_EXP_TIME_IN_HOUR", 4),
		},
		Intake: AppIntake{
			SessionExpiredTimeInHours: utils.GetEnvInt("INTAKE_SESSION_EXPIRED_TIME_IN_HOURS", 4),
			DraftEncryptionKey:        utils.GetEnvString("INTAKE_DRAFT_ENCRYPTION_KEY", DefaultDraftEncryptionKey),
			SessionLockTimeInSeconds:  utils.GetEnvInt("INTAKE_SESSION_LOCK_TIME_IN_SECONDS", 30),
		},
		Translation: AppTranslation{
			BaseUrl:                 utils.GetEnvString("TRANSLATION_BASE_URL", "https://translate.googleapis.com"),
			RequestTimeout:          utils.GetEnvDuration("TRANSLATION_REQUEST_TIMEOUT", 3*time.Second),
			RequestsPerSecond:       utils.GetEnvInt("TRANSLATION_REQUESTS_PER_SECOND", 5),
			Burst:                   utils.GetEnvInt("TRANSLATION_BURST", 10),
			CacheExpiredTimeInHours: utils.GetEnvInt("TRANSLATION_CACHE_EXPIRED_TIME_IN_HOURS", 24*7),
		},
		Persistence: AppPersistence{
			Backend:     utils.GetEnvString("PERSISTENCE_BACKEND", "csv"),
			CSVFilePath: utils.GetEnvString("PERSISTENCE_CSV_FILE_PATH", "ADHD_Responses.csv"),
		},
		RabbitMQ: AppRabbitMQ{
			SafetyAlertQueue: utils.GetEnvString("RABBITMQ_SAFETY_ALERT_QUEUE", "intake_safety_alerts"),
		},
		Minio: AppMinio{
			BucketName:   utils.GetEnvString("MINIO_BUCKET_NAME", "adhd-responses"),
			ObjectPrefix: utils.GetEnvString("MINIO_OBJECT_PREFIX", "responses"),
		},
		MongoDB: AppMongoDB{
			DBName:              utils.GetEnvString("MONGODB_DB_NAME", "adhd_intake"),
			ResponsesCollection: utils.GetEnvString("MONGODB_RESPONSES_COLLECTION", "responses"),
		},
		Sheets: AppSheets{
			SpreadsheetID:   utils.GetEnvString("SHEETS_SPREADSHEET_ID", ""),
			SheetName:       utils.GetEnvString("SHEETS_SHEET_NAME", "ADHD_Responses"),
			CredentialsFile: utils.GetEnvString("SHEETS_CREDENTIALS_FILE", "service_account.json"),
		},
	}
}

// Validate rejects a production config that still carries a development secret.
func (c *InternalConfig) Validate() error {
	if c.App.Env != constvars.AppEnvProduction {
		return nil
	}
	if c.JWT.Secret == "" || c.JWT.Secret == DefaultJWTSecret {
		return fmt.Errorf("JWT_SECRET must be set in %s", constvars.AppEnvProduction)
	}
	if c.Intake.DraftEncryptionKey == "" || c.Intake.DraftEncryptionKey == DefaultDraftEncryptionKey {
		return fmt.Errorf("INTAKE_DRAFT_ENCRYPTION_KEY must be set in %s", constvars.AppEnvProduction)
	}
	return nil
}
