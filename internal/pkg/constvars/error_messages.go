package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required":  "is required",
	"min":       "must be at least %s",
	"max":       "maximum at %s",
	"oneof":     "must be one of [%s]",
	"gte":       "must be greater than or equal to %s",
	"lte":       "must be less than or equal to %s",
	"dive":      "contains an invalid item",
	"jwt":       "must be a valid JWT",
	"not_blank": "cannot be blank",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"oneof": true,
	"gte":   true,
	"lte":   true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientNotAuthorized                 = "you can't access this feature"
	ErrClientUpstreamUnavailable           = "patient records are unavailable right now, please retry"
	ErrClientPatientNotFound               = "patient not found"
	ErrClientChatSessionNotFound           = "chat session not found"
	ErrClientChatMessageEmpty              = "message cannot be empty"
	ErrClientNoPatientSelected             = "no patient selected"
	ErrClientResourceNotFound              = "requested resource was not found"
	ErrClientTooManyRequests               = "too many requests, please slow down"
)

// Error messages for developers
const (
	ErrDevInvalidInput           = "invalid input"
	ErrDevCannotParseJSON        = "cannot parse JSON into struct or other data types"
	ErrDevCannotMarshalJSON      = "cannot convert struct or other data types to JSON"
	ErrDevValidationFailed       = "validation failed"
	ErrDevCreateHTTPRequest      = "failed to create HTTP request"
	ErrDevSendHTTPRequest        = "failed to send HTTP request"
	ErrDevReadHTTPResponse       = "failed to read HTTP response body"
	ErrDevServerProcess          = "server failed to process the request"
	ErrDevServerDeadlineExceeded = "server deadline exceeded"
	ErrDevMissingRequestID       = "request id missing from context"
	ErrDevInvalidAPIKey          = "invalid or missing admin API key"
	ErrDevRequestLimitExceeded   = "request limit exceeded"

	// Upstream messages
	ErrDevUpstreamStatus         = "upstream %s %s responded with status %d"
	ErrDevUpstreamDecodeResponse = "failed to decode upstream %s response"
	ErrDevUpstreamRateLimiter    = "upstream rate limiter wait failed"

	// Patient messages
	ErrDevPatientNotFound     = "patient %s not found in state"
	ErrDevNoPatientSelected   = "no patient selected in state"
	ErrDevChatSessionNotFound = "chat session %s not found"
	ErrDevChatMessageEmpty    = "chat message is blank"

	// Cache store messages
	ErrDevCacheStoreFind        = "failed to find cache entry %s"
	ErrDevCacheStoreSet         = "failed to set cache entry %s"
	ErrDevCacheStoreRemove      = "failed to remove cache entry %s"
	ErrDevCacheStoreClearPrefix = "failed to clear cache entries with prefix %s"
	ErrDevCacheDriverUnknown    = "unknown cache driver %s"

	// RabbitMQ messages
	ErrDevRabbitMQPublishMessage = "failed to publish message into queue %s"
	ErrDevRabbitMQConsumeQueue   = "failed to consume messages from queue %s"
)
