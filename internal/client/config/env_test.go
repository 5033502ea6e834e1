package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func Test_parseEnv(t *testing.T) {
	t.Run("overlays set variables only", func(t *testing.T) {
		t.Setenv("TASKDECK_SERVER_URL", "http://env.example:8000/api/v1")
		t.Setenv("TASKDECK_WATCH_INTERVAL", "45s")

		cfg := &Config{ServerBaseURL: "http://defaults:1234", DatabasePath: "kept.db", WatchInterval: time.Second}
		parseEnv(cfg)

		assert.Equal(t, "http://env.example:8000/api/v1", cfg.ServerBaseURL)
		assert.Equal(t, 45*time.Second, cfg.WatchInterval)
		assert.Equal(t, "kept.db", cfg.DatabasePath)
	})

	t.Run("no variables means no changes", func(t *testing.T) {
		cfg := &Config{ServerBaseURL: "http://defaults:1234", WatchInterval: time.Second}
		parseEnv(cfg)

		assert.Equal(t, "http://defaults:1234", cfg.ServerBaseURL)
		assert.Equal(t, time.Second, cfg.WatchInterval)
	})
}
