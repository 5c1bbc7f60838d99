// Package server initializes and runs the development API server.
// It opens the configured records store, serves the resource API over HTTP
// and shuts down gracefully on SIGINT/SIGTERM/SIGQUIT.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/dmitrijs2005/backoffice/internal/logging"
	"github.com/dmitrijs2005/backoffice/internal/server/config"
	"github.com/dmitrijs2005/backoffice/internal/server/httpapi"
	"github.com/dmitrijs2005/backoffice/internal/server/records"
)

type App struct {
	config *config.Config
	logger logging.Logger
	store  *records.Store
}

// NewApp builds the logger and opens the store described by c.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger, err := logging.New(c.LogBackend, c.LogFormat, c.LogLevel, os.Stdout)
	if err != nil {
		return nil, fmt.Errorf("logger init error: %w", err)
	}

	store, err := records.Open(ctx, c.Storage, c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	if c.SeedFile != "" {
		n, err := seed(ctx, store, c.SeedFile)
		if err != nil {
			_ = store.Close()
			return nil, fmt.Errorf("seed error: %w", err)
		}
		logger.Info(ctx, "seeded records", "file", c.SeedFile, "count", n)
	}

	return &App{config: c, logger: logger, store: store}, nil
}

func seed(ctx context.Context, store *records.Store, path string) (int, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}
	var data map[string][]records.Fields
	if err := json.Unmarshal(b, &data); err != nil {
		return 0, fmt.Errorf("decode %s: %w", path, err)
	}
	return store.Seed(ctx, data)
}

// Run serves until ctx is cancelled or a signal arrives, then drains
// in-flight requests and closes the store.
func (app *App) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	ln, err := net.Listen("tcp", app.config.ListenAddr)
	if err != nil {
		_ = app.store.Close()
		return fmt.Errorf("listen %s: %w", app.config.ListenAddr, err)
	}
	return app.serve(ctx, ln)
}

func (app *App) serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{Handler: httpapi.NewHandler(app.store, app.logger)}

	app.logger.Info(ctx, "starting server", "addr", ln.Addr().String(), "storage", app.config.Storage)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		app.logger.Info(ctx, "shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), app.config.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	err := g.Wait()
	if cerr := app.store.Close(); cerr != nil && err == nil {
		err = cerr
	}
	return err
}
