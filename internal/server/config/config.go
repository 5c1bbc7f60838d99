// Package config handles configuration for the development API server,
// including defaults, JSON overlay, and command-line flags.
package config

import (
	"fmt"
	"time"
)

// ConfigEnvVar names the JSON config file when -c/-config is absent.
const ConfigEnvVar = "BACKOFFICE_SERVER_CONFIG"

// Config holds runtime settings for the API server.
//
// Fields:
//   - ListenAddr: bind address of the HTTP endpoint.
//   - Storage: "memory", "postgres" or "sqlite".
//   - DatabaseDSN: pgx DSN for postgres, file name for sqlite. Unused for memory.
//   - ShutdownTimeout: grace period for in-flight requests on stop.
//   - SeedFile: optional JSON file of records loaded at start, {"Tache": [{...}], ...}.
//   - LogLevel / LogBackend / LogFormat: see logging.New.
type Config struct {
	ListenAddr      string
	Storage         string
	DatabaseDSN     string
	ShutdownTimeout time.Duration
	SeedFile        string
	LogLevel        string
	LogBackend      string
	LogFormat       string
}

// LoadDefaults populates Config with development defaults: in-memory
// storage on the port the console expects.
func (c *Config) LoadDefaults() {
	c.ListenAddr = ":8082"
	c.Storage = "memory"
	c.DatabaseDSN = ""
	c.ShutdownTimeout = 10 * time.Second
	c.LogLevel = "info"
	c.LogBackend = "slog"
	c.LogFormat = "json"
}

// Validate reports settings the server cannot start with.
func (c *Config) Validate() error {
	switch c.Storage {
	case "memory":
	case "postgres", "sqlite":
		if c.DatabaseDSN == "" {
			return fmt.Errorf("storage %q needs a database DSN (-d)", c.Storage)
		}
	default:
		return fmt.Errorf("unknown storage %q: want memory, postgres or sqlite", c.Storage)
	}
	if c.ListenAddr == "" {
		return fmt.Errorf("listen address is empty")
	}
	return nil
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file and finally from command-line flags. It
// panics when the result does not validate.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	if err := cfg.Validate(); err != nil {
		panic(err)
	}
	return cfg
}
