package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tturner/stockdeck/internal/errors"
)

type deleteFlags struct {
	conn connFlags
	yes  bool
}

func newDeleteCmd() *cobra.Command {
	flags := &deleteFlags{}

	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an item",
		Long: `Delete an item by id. Unless --yes is given, the item is fetched and
shown first and the deletion must be confirmed on stdin.`,
		Example: `  stockdeck delete 3
  stockdeck delete 3 --yes`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDelete(cmd, flags, args[0])
		},
	}

	registerConnFlags(cmd, &flags.conn)
	cmd.Flags().BoolVarP(&flags.yes, "yes", "y", false, "Skip the confirmation prompt")
	return cmd
}

func runDelete(cmd *cobra.Command, flags *deleteFlags, id string) error {
	client, cfg, log, err := buildConn(&flags.conn, true)
	if err != nil {
		return err
	}
	defer log.Close()

	if !flags.yes {
		item, err := client.Get(cmd.Context(), id)
		if err != nil {
			return errors.WrapCatalogError(err, cfg.API.BaseURL)
		}
		fmt.Fprintf(os.Stdout, "About to delete %q (id %d)\n", item.Name, item.ID)
		fmt.Fprint(os.Stdout, "Continue? [y/N] ")

		line, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
		answer := strings.ToLower(strings.TrimSpace(line))
		if answer != "y" && answer != "yes" {
			fmt.Fprintln(os.Stdout, "Aborted")
			return nil
		}
	}

	if err := client.Delete(cmd.Context(), id); err != nil {
		return errors.WrapCatalogError(err, cfg.API.BaseURL)
	}
	fmt.Fprintf(os.Stdout, "Deleted item %s\n", id)
	return nil
}
