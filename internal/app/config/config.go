package config

import (
	"time"

	"patient-records-service/internal/pkg/constvars"
	"patient-records-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		MongoDB: MongoDB{
			Port:     utils.GetEnvString("MONGODB_PORT", "27017"),
			Host:     utils.GetEnvString("MONGODB_HOST", "localhost"),
			DbName:   utils.GetEnvString("MONGODB_DB_NAME", "patient_records"),
			Username: utils.GetEnvString("MONGODB_USERNAME", ""),
			Password: utils.GetEnvString("MONGODB_PASSWORD", ""),
		},
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
			DB:       utils.GetEnvInt("REDIS_DB", 0),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
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
			Env:                       utils.GetEnvString("APP_ENV", constvars.AppEnvDevelopment),
			Port:                      utils.GetEnvString("APP_PORT", "8080"),
			Version:                   utils.GetEnvString("APP_VERSION", "v1"),
			Address:                   utils.GetEnvString("APP_ADDRESS", "localhost"),
			EndpointPrefix:            utils.GetEnvString("APP_ENDPOINT_PREFIX", "api"),
			AllowedOrigins:            utils.GetEnvStringSlice("APP_ALLOWED_ORIGINS", []string{"*"}),
			MaxRequests:               utils.GetEnvInt("APP_MAX_REQUEST", 100),
			MaxTimeRequestsPerSeconds: utils.GetEnvInt("APP_MAX_TIME_REQUESTS_PER_SECONDS", 60),
			ShutdownTimeoutInSeconds:  utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
			RequestTimeoutInSeconds:   utils.GetEnvInt("APP_REQUEST_TIMEOUT_IN_SECONDS", 15),
			AdminAPIKeyHash:           utils.GetEnvString("ADMIN_API_KEY_HASH", ""),
			InstanceID:                utils.GetEnvString("APP_INSTANCE_ID", utils.GenerateInstanceID()),
		},
		Upstream: AppUpstream{
			BaseUrl:              utils.GetEnvString("UPSTREAM_BASE_URL", "http://localhost:8000"),
			CacheTTLInMinutes:    utils.GetEnvInt("UPSTREAM_CACHE_TTL_IN_MINUTES", 5),
			UseMockData:          utils.GetEnvBool("UPSTREAM_USE_MOCK_DATA", false),
			MaxConcurrentFetches: utils.GetEnvInt("UPSTREAM_MAX_CONCURRENT_FETCHES", 8),
			MaxRequestsPerSecond: utils.GetEnvFloat("UPSTREAM_MAX_REQUESTS_PER_SECOND", 20),
			RequestTimeout:       utils.GetEnvDuration("UPSTREAM_TIMEOUT", 10*time.Second),
			CacheCleanupInterval: utils.GetEnvDuration("UPSTREAM_CACHE_CLEANUP_INTERVAL", time.Minute),
			RefreshOnStartup:     utils.GetEnvBool("UPSTREAM_REFRESH_ON_STARTUP", true),
			RefreshCronSpec:      utils.GetEnvString("UPSTREAM_REFRESH_CRON_SPEC", ""),
		},
		Cache: AppCache{
			Driver:          utils.GetEnvString("CACHE_DRIVER", constvars.CacheDriverMemory),
			MinioBucketName: utils.GetEnvString("CACHE_MINIO_BUCKET_NAME", "patient-records-cache"),
		},
		Chat: AppChat{
			ResponseDelayInMilliseconds:   utils.GetEnvInt("CHAT_RESPONSE_DELAY_IN_MILLISECONDS", 1000),
			SessionTTLInMinutes:           utils.GetEnvInt("CHAT_SESSION_TTL_IN_MINUTES", 60),
			SessionSweepIntervalInMinutes: utils.GetEnvInt("CHAT_SESSION_SWEEP_INTERVAL_IN_MINUTES", 5),
		},
		RabbitMQ: AppRabbitMQ{
			Enabled:               utils.GetEnvBool("APP_RABBITMQ_ENABLED", false),
			PatientEventsExchange: utils.GetEnvString("APP_RABBITMQ_PATIENT_EVENTS_EXCHANGE", "patient-events"),
		},
	}
}
