// Package config loads runtime configuration for the taskdeck CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Environment variables (see parseEnv), TASKDECK_* prefixed.
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the backend REST API
//	-d string   path to the local credential database
//	-i int      token watch interval (seconds)
//
// # JSON schema
//
// The JSON loader uses timex.Duration for intervals, so values can be either
// strings like "30s" or integer nanoseconds:
//
//	{
//	  "server_base_url": "http://127.0.0.1:8000/api/v1",
//	  "database_path": "taskdeck.db",
//	  "watch_interval": "30s",
//	  "request_timeout": "15s",
//	  "cache_ttl": "1m"
//	}
package config
