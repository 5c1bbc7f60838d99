package config

import (
	"fmt"
	"time"

	"github.com/dmitrijs2005/backoffice/internal/common"
	"github.com/dmitrijs2005/backoffice/internal/logging"
)

// ConfigEnvVar names the environment variable holding the JSON config path.
const ConfigEnvVar = "BACKOFFICE_CONFIG"

const (
	UIAuto = ""
	UITUI  = "tui"
	UIREPL = "repl"
)

// Config holds runtime settings for the console.
//
// Fields:
//   - APIBaseURL: root of the resource API, e.g. "http://localhost:8082".
//   - RequestTimeout: bound on every API request; zero leaves it to the context.
//   - PageSize: initial page size of every list.
//   - UI: front end, see UITUI/UIREPL; UIAuto picks by terminal.
//   - LogLevel / LogBackend / LogFormat: see logging.New.
type Config struct {
	APIBaseURL     string
	RequestTimeout time.Duration
	PageSize       int
	UI             string
	LogLevel       string
	LogBackend     string
	LogFormat      string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = common.DefaultAPIBaseURL
	c.RequestTimeout = 30 * time.Second
	c.PageSize = 5
	c.UI = UIAuto
	c.LogLevel = "info"
	c.LogBackend = logging.BackendSlog
	c.LogFormat = "text"
}

// Validate reports settings no front end can work with.
func (c *Config) Validate() error {
	if c.PageSize <= 0 {
		return fmt.Errorf("page size must be positive, got %d", c.PageSize)
	}
	if c.RequestTimeout < 0 {
		return fmt.Errorf("request timeout must not be negative, got %s", c.RequestTimeout)
	}
	switch c.UI {
	case UIAuto, UITUI, UIREPL:
	default:
		return fmt.Errorf("unknown ui %q", c.UI)
	}
	return nil
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones. An invalid result panics.
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
