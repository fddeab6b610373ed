package main

import (
	"github.com/spf13/cobra"

	"github.com/tturner/stockdeck/internal/errors"
	"github.com/tturner/stockdeck/internal/ui"
)

type consoleFlags struct {
	conn  connFlags
	route string
}

func newConsoleCmd() *cobra.Command {
	flags := &consoleFlags{}

	cmd := &cobra.Command{
		Use:   "console",
		Short: "Open the interactive inventory console",
		Long: `Launch the full-screen inventory console.

The console opens on the item list. From there you can filter by price
band, toggle the low-stock view, sort by price, and create, edit or
delete items. Navigation follows fragment-style routes, so --route
accepts the same forms the views link between:

  #/items             item list (default)
  #/items/new         create form
  #/items/edit/<id>   edit form for one item

Press q on the list (or Ctrl+C anywhere) to quit.`,
		Example: `  # Open the console against the configured catalog service
  stockdeck console

  # Open directly on the create form
  stockdeck console --route "#/items/new"

  # Point at a different catalog service
  stockdeck console --base-url http://inventory.internal:8080/api/items`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConsole(flags)
		},
	}

	registerConnFlags(cmd, &flags.conn)
	cmd.Flags().StringVar(&flags.route, "route", "", "Initial route, e.g. #/items/edit/3")

	return cmd
}

func runConsole(flags *consoleFlags) error {
	client, cfg, log, err := buildConn(&flags.conn, false)
	if err != nil {
		return err
	}
	defer log.Close()

	initial := ui.ParseRoute(flags.route)
	log.Info("connecting to catalog", "base_url", cfg.API.BaseURL)

	if err := ui.Run(client, initial, cfg.UI.LowStockThreshold, log); err != nil {
		return errors.WrapCatalogError(err, cfg.API.BaseURL)
	}
	return nil
}
