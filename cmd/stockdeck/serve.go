package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/tturner/stockdeck/internal/logging"
	"github.com/tturner/stockdeck/internal/server"
)

type serveFlags struct {
	listenIP string
	port     int
	seed     string
	logLevel string
}

func newServeCmd() *cobra.Command {
	flags := &serveFlags{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run a local catalog service for development",
		Long: `Run an in-memory catalog service speaking the same HTTP API the console
talks to. State lives in memory only and is lost on exit.

A YAML seed file can pre-populate the catalog:

  items:
    - name: Widget
      description: spare part
      quantity: 12
      price: 4.99

Press Ctrl+C to stop the service gracefully.`,
		Example: `  # Serve on the default port 8080
  stockdeck serve

  # Serve on another port with seed data
  stockdeck serve --port 9090 --seed ./catalog_seed.yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(flags)
		},
	}

	cmd.Flags().StringVar(&flags.listenIP, "listen-ip", "", "IP to listen on (default all interfaces)")
	cmd.Flags().IntVar(&flags.port, "port", 8080, "TCP port to listen on")
	cmd.Flags().StringVar(&flags.seed, "seed", "", "YAML file with initial items")
	cmd.Flags().StringVar(&flags.logLevel, "log-level", "info", "Log level: debug, info, warn, error")

	return cmd
}

func runServe(flags *serveFlags) error {
	log, err := logging.New(logging.Options{Level: flags.logLevel, Console: true})
	if err != nil {
		return err
	}
	defer log.Close()

	store := server.NewStore()
	if flags.seed != "" {
		if err := store.LoadSeed(flags.seed); err != nil {
			return fmt.Errorf("load seed file %s: %w", flags.seed, err)
		}
		log.Info("seed loaded", "file", flags.seed, "items", len(store.All()))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	addr := fmt.Sprintf("%s:%d", flags.listenIP, flags.port)
	log.Info("catalog service listening", "addr", addr)
	return server.New(store, log).ListenAndServe(ctx, addr)
}
