// Package config loads runtime configuration for the backoffice console.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected via -c or -config, or the BACKOFFICE_CONFIG
//     environment variable.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   API base URL
//	-t int      request timeout (seconds, 0 disables)
//	-p int      page size
//	-ui string  front end: "tui" or "repl" (empty picks by terminal)
//	-l string   log level: debug, info, warn, error
//
// # JSON schema
//
// Durations use timex.Duration, so values can be strings like "30s" or
// integer nanoseconds. Keys that are missing keep their earlier value:
//
//	{
//	  "api_base_url": "http://localhost:8082",
//	  "request_timeout": "30s",
//	  "page_size": 5,
//	  "ui": "tui",
//	  "log_level": "info",
//	  "log_backend": "slog",
//	  "log_format": "text"
//	}
package config
