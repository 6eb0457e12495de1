package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"portfolio-site/internal/version"
	"syscall"

	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:    "portfolio-site",
		Usage:   "Serve the portfolio site behind a shared password",
		Version: version.GetVersion(),
		Commands: []*cli.Command{
			serveCmd(),
			checkConfigCmd(),
			versionCmd(),
		},
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := app.RunContext(ctx, os.Args); err != nil {
		slog.Error("Application failed", "error", err)
		os.Exit(1)
	}
}
