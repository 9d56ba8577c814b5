package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
)

const (
	AppEnvProduction  = "production"
	AppEnvDevelopment = "development"
)

const (
	CacheDriverMemory = "memory"
	CacheDriverRedis  = "redis"
	CacheDriverMongo  = "mongo"
	CacheDriverMinio  = "minio"
)

// Every persisted client key lives under StorageKeyPrefix.
const (
	StorageKeyPrefix = "patient-records:"
	CacheKeyPrefix   = StorageKeyPrefix + "cache:"
	AuthTokenKey     = StorageKeyPrefix + "auth_token"
)

const (
	MongoCacheCollection = "http_cache"
)
