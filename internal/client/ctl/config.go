package ctl

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/dmitrijs2005/backoffice/internal/common"
	"github.com/dmitrijs2005/backoffice/internal/logging"
)

const (
	configFileName = "backoffice"
	configFileType = "json"
	envPrefix      = "BACKOFFICE"

	cfgKeyAPIBaseURL     = "api_base_url"
	cfgKeyRequestTimeout = "request_timeout"
	cfgKeyPageSize       = "page_size"
	cfgKeyLogLevel       = "log_level"
	cfgKeyLogBackend     = "log_backend"
	cfgKeyLogFormat      = "log_format"
)

// loadConfig builds the viper instance: defaults, then the JSON config file
// (configFile, or backoffice.json in the working directory or
// $HOME/.config/backoffice), then BACKOFFICE_* environment variables, then
// the flags bound from flags. A missing default config file is not an
// error; a missing explicit one is.
func loadConfig(configFile string, flags *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()
	v.SetDefault(cfgKeyAPIBaseURL, common.DefaultAPIBaseURL)
	v.SetDefault(cfgKeyRequestTimeout, "30s")
	v.SetDefault(cfgKeyPageSize, 5)
	v.SetDefault(cfgKeyLogLevel, "warn")
	v.SetDefault(cfgKeyLogBackend, logging.BackendSlog)
	v.SetDefault(cfgKeyLogFormat, "text")

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName(configFileName)
		v.SetConfigType(configFileType)
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/backoffice")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	if flags != nil {
		for key, flag := range map[string]string{
			cfgKeyAPIBaseURL:     "api",
			cfgKeyRequestTimeout: "timeout",
			cfgKeyPageSize:       "page-size",
			cfgKeyLogLevel:       "log-level",
		} {
			if f := flags.Lookup(flag); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("bind flag %s: %w", flag, err)
				}
			}
		}
	}
	return v, nil
}
