package cmd

import (
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/jamesbehr/mklink/link"
	"github.com/spf13/cobra"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Choose how to link the copied item interactively",
	RunE: func(cmd *cobra.Command, args []string) error {
		p, e, err := subCommands()
		if err != nil {
			return err
		}

		var enabled []link.Strategy
		var titles []string
		for _, s := range collect(e) {
			if s.State() == link.Enabled {
				enabled = append(enabled, s)
				titles = append(titles, s.Title)
			}
		}

		var selected int
		prompt := &survey.Select{
			Message: p.Title(),
			Options: titles,
			Description: func(value string, index int) string {
				return enabled[index].Tip
			},
		}

		if err := survey.AskOne(prompt, &selected); err != nil {
			return err
		}

		msg, err := run(p, enabled[selected])
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), msg)
		return nil
	},
}

func init() {
	menuCmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, "print the link path and command instead of running it")
}
