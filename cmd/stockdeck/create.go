package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tturner/stockdeck/internal/catalog"
	"github.com/tturner/stockdeck/internal/errors"
)

type itemFlags struct {
	name        string
	description string
	quantity    int
	price       float64
}

func registerItemFlags(cmd *cobra.Command, flags *itemFlags) {
	cmd.Flags().StringVar(&flags.name, "name", "", "Item name (required)")
	cmd.Flags().StringVar(&flags.description, "description", "", "Item description")
	cmd.Flags().IntVar(&flags.quantity, "quantity", 0, "Stock quantity")
	cmd.Flags().Float64Var(&flags.price, "price", 0, "Unit price")
}

func (f *itemFlags) input() (catalog.ItemInput, error) {
	in := catalog.ItemInput{
		Name:        f.name,
		Description: f.description,
		Quantity:    f.quantity,
		Price:       f.price,
	}
	if err := in.Validate(); err != nil {
		return catalog.ItemInput{}, err
	}
	return in, nil
}

func newCreateCmd() *cobra.Command {
	conn := &connFlags{}
	item := &itemFlags{}

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new item",
		Example: `  stockdeck create --name "Widget" --quantity 12 --price 4.99
  stockdeck create --name "Gadget" --description "spare part" --quantity 3 --price 18.50`,
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

			created, err := client.Create(cmd.Context(), in)
			if err != nil {
				return errors.WrapCatalogError(err, cfg.API.BaseURL)
			}
			fmt.Fprintf(os.Stdout, "Created item %d\n", created.ID)
			printItem(created)
			return nil
		},
	}

	registerConnFlags(cmd, conn)
	registerItemFlags(cmd, item)
	cmd.MarkFlagRequired("name")
	return cmd
}
