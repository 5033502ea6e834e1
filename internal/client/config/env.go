package config

import (
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// envConfig is a DTO for cleanenv; zero values mean "variable not set" and
// leave the corresponding Config field alone.
type envConfig struct {
	ServerBaseURL  string        `env:"TASKDECK_SERVER_URL"`
	DatabasePath   string        `env:"TASKDECK_DATABASE_PATH"`
	WatchInterval  time.Duration `env:"TASKDECK_WATCH_INTERVAL"`
	RequestTimeout time.Duration `env:"TASKDECK_REQUEST_TIMEOUT"`
	CacheTTL       time.Duration `env:"TASKDECK_CACHE_TTL"`
}

// parseEnv overlays Config with values from TASKDECK_* environment
// variables. Durations use Go syntax ("30s", "1m"). Panics on a malformed
// value, consistent with the JSON loader.
func parseEnv(cfg *Config) {
	ec := &envConfig{}
	if err := cleanenv.ReadEnv(ec); err != nil {
		panic(err)
	}

	if ec.ServerBaseURL != "" {
		cfg.ServerBaseURL = ec.ServerBaseURL
	}
	if ec.DatabasePath != "" {
		cfg.DatabasePath = ec.DatabasePath
	}
	if ec.WatchInterval != 0 {
		cfg.WatchInterval = ec.WatchInterval
	}
	if ec.RequestTimeout != 0 {
		cfg.RequestTimeout = ec.RequestTimeout
	}
	if ec.CacheTTL != 0 {
		cfg.CacheTTL = ec.CacheTTL
	}
}
