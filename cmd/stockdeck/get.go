package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tturner/stockdeck/internal/catalog"
	"github.com/tturner/stockdeck/internal/errors"
)

func newGetCmd() *cobra.Command {
	flags := &connFlags{}

	cmd := &cobra.Command{
		Use:   "get <id>",
		Short: "Show a single item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, cfg, log, err := buildConn(flags, true)
			if err != nil {
				return err
			}
			defer log.Close()

			item, err := client.Get(cmd.Context(), args[0])
			if err != nil {
				return errors.WrapCatalogError(err, cfg.API.BaseURL)
			}
			printItem(item)
			return nil
		},
	}

	registerConnFlags(cmd, flags)
	return cmd
}

func printItem(it catalog.Item) {
	fmt.Fprintf(os.Stdout, "ID:          %d\n", it.ID)
	fmt.Fprintf(os.Stdout, "Name:        %s\n", it.Name)
	fmt.Fprintf(os.Stdout, "Description: %s\n", it.Description)
	fmt.Fprintf(os.Stdout, "Quantity:    %d\n", it.Quantity)
	fmt.Fprintf(os.Stdout, "Price:       %.2f\n", it.Price)
}
