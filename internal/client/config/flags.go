package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/backoffice/internal/flagx"
)

// parseFlags populates Config fields from command-line flags.
//
//	-a string   API base URL
//	-t int      request timeout, seconds
//	-p int      page size
//	-ui string  front end
//	-l string   log level
//
// os.Args is filtered with flagx.FilterArgs first so the -c/-config flag
// and anything else on the line do not trip the parser.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-t", "-p", "-ui", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.APIBaseURL, "a", config.APIBaseURL, "API base URL")
	timeout := fs.Int("t", int(config.RequestTimeout.Seconds()), "request timeout (in seconds)")
	fs.IntVar(&config.PageSize, "p", config.PageSize, "page size")
	fs.StringVar(&config.UI, "ui", config.UI, "front end: tui or repl")
	fs.StringVar(&config.LogLevel, "l", config.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.RequestTimeout = time.Duration(*timeout) * time.Second
}
