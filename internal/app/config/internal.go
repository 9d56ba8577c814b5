package config

import "time"

type InternalConfig struct {
	App      App
	Upstream AppUpstream
	Cache    AppCache
	Chat     AppChat
	RabbitMQ AppRabbitMQ
}

type App struct {
	Env                       string
	Port                      string
	Version                   string
	Address                   string
	EndpointPrefix            string
	AllowedOrigins            []string
	MaxRequests               int
	MaxTimeRequestsPerSeconds int
	ShutdownTimeoutInSeconds  int
	RequestTimeoutInSeconds   int
	// AdminAPIKeyHash is the bcrypt hash of the key expected in X-API-Key on admin routes.
	AdminAPIKeyHash string
	// InstanceID tags published patient events so the consumer can skip its own.
	InstanceID string
}

// AppUpstream describes the patient backend the service sits in front of.
type AppUpstream struct {
	BaseUrl              string
	CacheTTLInMinutes    int
	UseMockData          bool
	MaxConcurrentFetches int
	MaxRequestsPerSecond float64
	RequestTimeout       time.Duration
	CacheCleanupInterval time.Duration
	RefreshOnStartup     bool
	// RefreshCronSpec schedules a periodic reload of the patient list. Empty disables it.
	RefreshCronSpec string
}

func (u AppUpstream) CacheTTL() time.Duration {
	return time.Duration(u.CacheTTLInMinutes) * time.Minute
}

type AppCache struct {
	Driver          string
	MinioBucketName string
}

type AppChat struct {
	ResponseDelayInMilliseconds int
	// Sessions idle for longer than this are dropped by the sweep. Zero keeps them.
	SessionTTLInMinutes           int
	SessionSweepIntervalInMinutes int
}

func (c AppChat) ResponseDelay() time.Duration {
	return time.Duration(c.ResponseDelayInMilliseconds) * time.Millisecond
}

func (c AppChat) SessionTTL() time.Duration {
	return time.Duration(c.SessionTTLInMinutes) * time.Minute
}

func (c AppChat) SessionSweepInterval() time.Duration {
	return time.Duration(c.SessionSweepIntervalInMinutes) * time.Minute
}

type AppRabbitMQ struct {
	Enabled               bool
	PatientEventsExchange string
}
