package main

// Shared wiring between subcommands: config, logging and the catalog
// client.

import (
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/tturner/stockdeck/internal/catalog"
	"github.com/tturner/stockdeck/internal/config"
	"github.com/tturner/stockdeck/internal/errors"
	"github.com/tturner/stockdeck/internal/logging"
)

type connFlags struct {
	configPath string
	baseURL    string
	logLevel   string
}

func registerConnFlags(cmd *cobra.Command, flags *connFlags) {
	cmd.Flags().StringVar(&flags.configPath, "config", "", "Path to a stockdeck.yaml config file")
	cmd.Flags().StringVar(&flags.baseURL, "base-url", "", "Catalog service base URL (overrides config)")
	cmd.Flags().StringVar(&flags.logLevel, "log-level", "", "Log level: debug, info, warn, error")
}

// buildConn loads configuration, applies flag overrides and wires the
// catalog client. console controls whether log records go to stderr;
// the interactive console turns it off so records cannot tear the
// alternate screen.
func buildConn(flags *connFlags, console bool) (*catalog.Client, *config.Config, *logging.Logger, error) {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return nil, nil, nil, err
	}
	if flags.baseURL != "" {
		cfg.API.BaseURL = flags.baseURL
	}
	if flags.logLevel != "" {
		cfg.Logging.Level = flags.logLevel
	}
	// Flag overrides bypass Load's validation, so check again.
	if err := config.Validate(cfg); err != nil {
		return nil, nil, nil, errors.WrapConfigError(err, flags.configPath)
	}

	log, err := logging.New(logging.Options{
		Level:   cfg.Logging.Level,
		File:    cfg.Logging.File,
		Console: console,
	})
	if err != nil {
		return nil, nil, nil, errors.WrapConfigError(err, flags.configPath)
	}

	httpClient := &http.Client{Timeout: time.Duration(cfg.API.TimeoutSeconds) * time.Second}
	client := catalog.NewClient(cfg.API.BaseURL, httpClient, log)
	return client, cfg, log, nil
}
