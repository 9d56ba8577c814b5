package constvars

const (
	LoggingRequestIDKey     = "request_id"
	LoggingEndpointKey      = "endpoint"
	LoggingMethodKey        = "method"
	LoggingURLKey           = "url"
	LoggingRemoteAddrKey    = "remote_addr"
	LoggingUserAgentKey     = "user_agent"
	LoggingQueryKey         = "query"
	LoggingStatusCodeKey    = "status_code"
	LoggingDurationKey      = "duration"
	LoggingSuccessKey       = "success"
	LoggingErrorTypeKey     = "error_type"
	LoggingPatientIDKey     = "patient_id"
	LoggingPatientCountKey  = "patient_count"
	LoggingCacheKey         = "cache_key"
	LoggingCacheDriverKey   = "cache_driver"
	LoggingSessionIDKey     = "session_id"
	LoggingSessionCountKey  = "session_count"
	LoggingResponseBodyKey  = "response_body"
	LoggingEventTypeKey     = "event_type"
	LoggingQueueKey         = "queue"
	LoggingGenerationKey    = "generation"
	LoggingFailedFetchesKey = "failed_fetches"
	LoggingOperationKey     = "operation"
)
