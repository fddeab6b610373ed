package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tturner/stockdeck/internal/errors"
)

func newUpdateCmd() *cobra.Command {
	conn := &connFlags{}
	item := &itemFlags{}

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Replace an existing item",
		Long: `Replace every field of an existing item. This is a full replacement,
not a patch: omitted flags fall back to their zero values, so pass
every field you want to keep.`,
		Example: `  stockdeck update 3 --name "Widget" --quantity 9 --price 4.99`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := item.input()
			if err != nil {
				return err
			}

			client, cfg, log, err := buildConn(conn, true)
			if err != nil {
				return err
			}
			defer log.Close()

			updated, err := client.Update(cmd.Context(), args[0], in)
			if err != nil {
				return errors.WrapCatalogError(err, cfg.API.BaseURL)
			}
			fmt.Fprintf(os.Stdout, "Updated item %d\n", updated.ID)
			printItem(updated)
			return nil
		},
	}

	registerConnFlags(cmd, conn)
	registerItemFlags(cmd, item)
	cmd.MarkFlagRequired("name")
	return cmd
}
