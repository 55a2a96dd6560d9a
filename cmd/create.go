package cmd

import (
	"fmt"

	"github.com/jamesbehr/mklink/link"
	"github.com/spf13/cobra"
)

func kindNames() []string {
	names := make([]string, len(link.Kinds))
	for i, k := range link.Kinds {
		names[i] = k.String()
	}

	return names
}

var createCmd = &cobra.Command{
	Use:       "create <kind>",
	Short:     "Create a link of the given kind",
	ValidArgs: kindNames(),
	Args:      cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		kind, err := link.ParseKind(args[0])
		if err != nil {
			return err
		}

		p, e, err := subCommands()
		if err != nil {
			return err
		}

		e.Skip(uint(kind))
		page, _ := e.Next(1)
		if len(page) != 1 {
			return fmt.Errorf("no strategy for %s", kind)
		}

		msg, err := run(p, page[0])
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), msg)
		return nil
	},
}

func init() {
	createCmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, "print the link path and command instead of running it")
}
