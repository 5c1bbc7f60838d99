package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dmitrijs2005/backoffice/internal/flagx"
	"github.com/dmitrijs2005/backoffice/internal/timex"
)

// JsonConfig is the on-disk form of Config. Pointer fields tell a missing
// key from a zero value.
type JsonConfig struct {
	APIBaseURL     *string         `json:"api_base_url"`
	RequestTimeout *timex.Duration `json:"request_timeout"`
	PageSize       *int            `json:"page_size"`
	UI             *string         `json:"ui"`
	LogLevel       *string         `json:"log_level"`
	LogBackend     *string         `json:"log_backend"`
	LogFormat      *string         `json:"log_format"`
}

// parseJson overlays the JSON file named by -c/-config (or ConfigEnvVar)
// onto config. No file means no change; an unreadable or invalid file
// panics.
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
	c.apply(config)
}

func (c *JsonConfig) apply(config *Config) {
	setString(&config.APIBaseURL, c.APIBaseURL)
	setString(&config.UI, c.UI)
	setString(&config.LogLevel, c.LogLevel)
	setString(&config.LogBackend, c.LogBackend)
	setString(&config.LogFormat, c.LogFormat)
	if c.RequestTimeout != nil {
		config.RequestTimeout = time.Duration(c.RequestTimeout.Duration)
	}
	if c.PageSize != nil {
		config.PageSize = *c.PageSize
	}
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
