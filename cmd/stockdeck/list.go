package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/tturner/stockdeck/internal/catalog"
	"github.com/tturner/stockdeck/internal/errors"
	"github.com/tturner/stockdeck/internal/ui"
)

type listFlags struct {
	conn      connFlags
	minPrice  float64
	maxPrice  float64
	desc      bool
	lowStock  bool
	threshold int
}

func newListCmd() *cobra.Command {
	flags := &listFlags{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List catalog items",
		Long: `Print catalog items as a table.

By default every item is listed in id order. --min-price and
--max-price restrict the price band, --desc sorts by price descending
(ascending when combined with neither, items come back in id order).
--low-stock switches to the low-stock report, which ignores the price
band and returns items at or below the threshold quantity.`,
		Example: `  # All items
  stockdeck list

  # Items between 5.00 and 20.00, most expensive first
  stockdeck list --min-price 5 --max-price 20 --desc

  # Items with quantity at or below 3
  stockdeck list --low-stock --threshold 3`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, flags)
		},
	}

	registerConnFlags(cmd, &flags.conn)
	cmd.Flags().Float64Var(&flags.minPrice, "min-price", -1, "Minimum price filter")
	cmd.Flags().Float64Var(&flags.maxPrice, "max-price", -1, "Maximum price filter")
	cmd.Flags().BoolVar(&flags.desc, "desc", false, "Sort by price descending")
	cmd.Flags().BoolVar(&flags.lowStock, "low-stock", false, "Show the low-stock report instead")
	cmd.Flags().IntVar(&flags.threshold, "threshold", 0, "Low-stock quantity threshold (default from config)")

	return cmd
}

func runList(cmd *cobra.Command, flags *listFlags) error {
	client, cfg, log, err := buildConn(&flags.conn, true)
	if err != nil {
		return err
	}
	defer log.Close()

	var items []catalog.Item
	if flags.lowStock {
		threshold := cfg.UI.LowStockThreshold
		if cmd.Flags().Changed("threshold") && flags.threshold >= 0 {
			threshold = flags.threshold
		}
		items, err = client.LowStock(cmd.Context(), threshold)
	} else {
		filter := catalog.ListFilter{SortBy: "price"}
		if flags.desc {
			filter.Order = "desc"
		} else {
			filter.Order = "asc"
		}
		if cmd.Flags().Changed("min-price") {
			filter.MinPrice = catalog.Float64Ptr(flags.minPrice)
		}
		if cmd.Flags().Changed("max-price") {
			filter.MaxPrice = catalog.Float64Ptr(flags.maxPrice)
		}
		if !cmd.Flags().Changed("min-price") && !cmd.Flags().Changed("max-price") && !flags.desc {
			// No knobs touched: keep the service's default id order.
			filter = catalog.ListFilter{}
		}
		items, err = client.List(cmd.Context(), filter)
	}
	if err != nil {
		return errors.WrapCatalogError(err, cfg.API.BaseURL)
	}

	printItemTable(items)
	return nil
}

func printItemTable(items []catalog.Item) {
	table := ui.Table{
		Headers: []string{"ID", "Name", "Description", "Qty", "Price"},
		Widths:  []int{6, 24, 32, 6, 10},
	}
	for _, it := range items {
		table.Rows = append(table.Rows, []string{
			strconv.FormatInt(it.ID, 10),
			it.Name,
			it.Description,
			strconv.Itoa(it.Quantity),
			fmt.Sprintf("%.2f", it.Price),
		})
	}
	fmt.Fprintln(os.Stdout, table.Render(ui.DefaultStyles))
	if len(items) == 0 {
		fmt.Fprintln(os.Stdout, "No items found")
	}
}
