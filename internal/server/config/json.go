package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dmitrijs2005/backoffice/internal/flagx"
	"github.com/dmitrijs2005/backoffice/internal/timex"
)

// JsonConfig is the on-disk form of Config. Pointer fields tell a missing
// key from a zero value; shutdown_timeout accepts "10s" or nanoseconds.
type JsonConfig struct {
	ListenAddr      *string         `json:"listen_addr"`
	Storage         *string         `json:"storage"`
	DatabaseDSN     *string         `json:"database_dsn"`
	ShutdownTimeout *timex.Duration `json:"shutdown_timeout"`
	SeedFile        *string         `json:"seed_file"`
	LogLevel        *string         `json:"log_level"`
	LogBackend      *string         `json:"log_backend"`
	LogFormat       *string         `json:"log_format"`
}

// parseJson overlays the JSON file named by -c/-config (or ConfigEnvVar)
// onto config. If the file cannot be read or contains invalid JSON, the
// function panics.
func parseJson(config *Config) {
	path := flagx.ConfigPath(os.Args[1:], ConfigEnvVar)
	if path == "" {
		return
	}

	file, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	for dst, v := range map[*string]*string{
		&config.ListenAddr:  c.ListenAddr,
		&config.Storage:     c.Storage,
		&config.DatabaseDSN: c.DatabaseDSN,
		&config.SeedFile:    c.SeedFile,
		&config.LogLevel:    c.LogLevel,
		&config.LogBackend:  c.LogBackend,
		&config.LogFormat:   c.LogFormat,
	} {
		if v != nil {
			*dst = *v
		}
	}
	if c.ShutdownTimeout != nil {
		config.ShutdownTimeout = time.Duration(c.ShutdownTimeout.Duration)
	}
}
