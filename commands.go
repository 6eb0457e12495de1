package main

import (
	"fmt"
	"portfolio-site/internal/config"
	"portfolio-site/internal/server"
	"portfolio-site/internal/version"

	"github.com/urfave/cli/v2"
)

func configFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   "Path to a YAML config file; SITE_* environment variables override it",
		EnvVars: []string{"SITE_CONFIG"},
	}
}

func serveCmd() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Start the web server",
		Flags: []cli.Flag{configFlag()},
		Action: func(c *cli.Context) error {
			cfg, err := config.LoadConfig(c.String("config"))
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			srv, err := server.New(cfg)
			if err != nil {
				return fmt.Errorf("failed to create server: %w", err)
			}

			return srv.Start(c.Context)
		},
	}
}

func checkConfigCmd() *cli.Command {
	return &cli.Command{
		Name:  "check-config",
		Usage: "Load and validate the configuration, then exit",
		Flags: []cli.Flag{configFlag()},
		Action: func(c *cli.Context) error {
			cfg, err := config.LoadConfig(c.String("config"))
			if err != nil {
				return fmt.Errorf("invalid config: %w", err)
			}

			w := c.App.Writer
			fmt.Fprintln(w, "config ok")
			fmt.Fprintf(w, "  environment: %s\n", cfg.Server.Environment)
			fmt.Fprintf(w, "  port: %d\n", cfg.Server.Port)
			fmt.Fprintf(w, "  static dir: %s\n", cfg.Server.StaticDir)
			fmt.Fprintf(w, "  bypass prefixes: %v\n", cfg.Gate.BypassPrefixes)
			fmt.Fprintf(w, "  secure cookie: %t\n", cfg.IsProduction())
			return nil
		},
	}
}

func versionCmd() *cli.Command {
	return &cli.Command{
		Name:  "version",
		Usage: "Print build information",
		Action: func(c *cli.Context) error {
			fmt.Fprintln(c.App.Writer, version.GetFullVersion())
			return nil
		},
	}
}
