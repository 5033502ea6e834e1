package config

import "time"

// Config holds runtime settings for the taskdeck CLI.
type Config struct {
	ServerBaseURL  string
	DatabasePath   string
	WatchInterval  time.Duration
	RequestTimeout time.Duration
	CacheTTL       time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = "http://127.0.0.1:8000/api/v1"
	c.DatabasePath = "taskdeck.db"
	c.WatchInterval = 30 * time.Second
	c.RequestTimeout = 15 * time.Second
	c.CacheTTL = time.Minute
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present), environment variables, and command-line flags. Later
// sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
