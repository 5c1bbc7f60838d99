// Package ctl implements backofficectl, the scriptable command line for the
// resource API. Each command drives the same resource.Controller as the
// interactive console, so searches, pages and form validation behave the
// same way.
package ctl

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/dmitrijs2005/backoffice/internal/buildinfo"
	"github.com/dmitrijs2005/backoffice/internal/client/resource"
	"github.com/dmitrijs2005/backoffice/internal/client/resources"
	"github.com/dmitrijs2005/backoffice/internal/logging"
)

// Exit codes.
const (
	ExitSuccess   = 0
	ExitUserError = 1
	ExitSysError  = 2
)

// DialFunc builds the catalog from the loaded configuration.
type DialFunc func(v *viper.Viper, logger logging.Logger) (*resources.Catalog, error)

type app struct {
	configFile string
	jsonOutput bool

	dial    DialFunc
	v       *viper.Viper
	logger  logging.Logger
	catalog *resources.Catalog
}

// NewRootCmd returns the backofficectl command tree talking to the
// configured API.
func NewRootCmd() *cobra.Command {
	return newRootCmd(dialAPI)
}

func dialAPI(v *viper.Viper, logger logging.Logger) (*resources.Catalog, error) {
	return resources.Dial(
		v.GetString(cfgKeyAPIBaseURL),
		v.GetDuration(cfgKeyRequestTimeout),
		logger,
		resource.WithPageSize(v.GetInt(cfgKeyPageSize)),
		resource.WithLogger(logger),
	)
}

func newRootCmd(dial DialFunc) *cobra.Command {
	a := &app{dial: dial}

	root := &cobra.Command{
		Use:           "backofficectl",
		Short:         "backofficectl manages backoffice records from scripts",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Name() == "version" {
				return nil
			}
			return a.init(cmd)
		},
	}

	root.PersistentFlags().StringVarP(&a.configFile, "config", "c", "", "JSON config file (default: ./backoffice.json or ~/.config/backoffice/backoffice.json)")
	root.PersistentFlags().String("api", "", "API base URL")
	root.PersistentFlags().Duration("timeout", 0, "request timeout")
	root.PersistentFlags().Int("page-size", 0, "default page size")
	root.PersistentFlags().String("log-level", "", "log level: debug, info, warn, error")
	root.PersistentFlags().BoolVar(&a.jsonOutput, "json", false, "output as JSON")

	root.AddCommand(
		newVersionCmd(),
		newKindsCmd(a),
		newListCmd(a),
		newSearchCmd(a),
		newGetCmd(a),
		newCreateCmd(a),
		newUpdateCmd(a),
		newDeleteCmd(a),
	)
	return root
}

func (a *app) init(cmd *cobra.Command) error {
	v, err := loadConfig(a.configFile, cmd.Flags())
	if err != nil {
		return err
	}
	a.v = v

	logger, err := logging.New(v.GetString(cfgKeyLogBackend), v.GetString(cfgKeyLogFormat), v.GetString(cfgKeyLogLevel), cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	a.logger = logger

	cat, err := a.dial(v, logger)
	if err != nil {
		return fmt.Errorf("connect: %w", err)
	}
	a.catalog = cat
	return nil
}

// kind looks up name and loads its collection.
func (a *app) kind(ctx context.Context, name string) (resources.Kind, error) {
	k, err := a.catalog.Lookup(name)
	if err != nil {
		return nil, err
	}
	if err := k.Refresh(ctx); err != nil {
		return nil, err
	}
	return k, nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Run: func(cmd *cobra.Command, args []string) {
			buildinfo.PrintBuildData(cmd.OutOrStdout())
		},
	}
}

func newKindsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "kinds",
		Short: "List the resource kinds",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			type kindInfo struct {
				Kind  string `json:"kind"`
				Title string `json:"title"`
				Path  string `json:"path"`
			}
			var out []kindInfo
			for _, k := range a.catalog.Kinds() {
				out = append(out, kindInfo{Kind: k.Kind(), Title: k.Title(), Path: k.Path()})
			}
			if a.jsonOutput {
				return writeJSON(cmd.OutOrStdout(), out)
			}
			w := cmd.OutOrStdout()
			for _, k := range out {
				fmt.Fprintf(w, "%-10s %-12s /%s\n", k.Kind, k.Title, k.Path)
			}
			return nil
		},
	}
}

// ExitCode maps an error returned by Execute to a process exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case isUserError(err):
		return ExitUserError
	default:
		return ExitSysError
	}
}

func printErr(w io.Writer, err error) {
	fmt.Fprintln(w, "Error:", err)
}

// Execute runs the command tree with args and returns the exit code.
func Execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	root := NewRootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)
	err := root.ExecuteContext(ctx)
	if err != nil {
		printErr(stderr, err)
	}
	return ExitCode(err)
}
