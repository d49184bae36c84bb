package config

const (
	defaultBaseURL            = "http://localhost:8000"
	defaultRequestTimeout     = 30
	defaultPollInterval       = 3
	defaultErrorRetryInterval = 5
	defaultNotifyTimeout      = 10
	defaultLogFormat          = "console"
	defaultLogLevel           = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		API: API{
			BaseURL:        defaultBaseURL,
			RequestTimeout: defaultRequestTimeout,
		},
		Poll: Poll{
			Interval:           defaultPollInterval,
			ErrorRetryInterval: defaultErrorRetryInterval,
		},
		Cache: Cache{
			Enabled: true,
			Path:    defaultCachePath(),
		},
		Notifications: Notifications{
			RequestTimeout: defaultNotifyTimeout,
			Completed:      true,
			Failed:         true,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
