package main

import (
	"context"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/backoffice/internal/buildinfo"
	"github.com/dmitrijs2005/backoffice/internal/client/cli"
	"github.com/dmitrijs2005/backoffice/internal/client/config"
	"github.com/dmitrijs2005/backoffice/internal/client/resource"
	"github.com/dmitrijs2005/backoffice/internal/client/resources"
	"github.com/dmitrijs2005/backoffice/internal/client/tui"
	"github.com/dmitrijs2005/backoffice/internal/logging"
)

func main() {
	cfg := config.LoadConfig()
	ui := cli.ChooseUI(cfg.UI, int(os.Stdin.Fd()))

	// the full-screen UI owns the terminal, so its logs are dropped
	var logOut io.Writer = os.Stderr
	if ui == config.UITUI {
		logOut = io.Discard
	} else {
		buildinfo.PrintBuildData(os.Stdout)
	}

	logger, err := logging.New(cfg.LogBackend, cfg.LogFormat, cfg.LogLevel, logOut)
	if err != nil {
		log.Fatalf("%v", err)
	}

	cat, err := resources.Dial(cfg.APIBaseURL, cfg.RequestTimeout, logger,
		resource.WithPageSize(cfg.PageSize), resource.WithLogger(logger))
	if err != nil {
		log.Fatalf("%v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if ui == config.UITUI {
		if err := tui.Run(ctx, cat); err != nil {
			log.Fatalf("%v", err)
		}
		return
	}
	cli.NewApp(cat, logger).Run(ctx)
}
