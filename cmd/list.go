package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/jamesbehr/mklink/link"
	"github.com/spf13/cobra"
)

var (
	headingStyle  = lipgloss.NewStyle().Bold(true)
	nameStyle     = lipgloss.NewStyle().Width(20)
	disabledStyle = lipgloss.NewStyle().Faint(true)
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the ways a link can be created",
	RunE: func(cmd *cobra.Command, args []string) error {
		p, e, err := subCommands()
		if err != nil {
			return err
		}

		req := e.Request()
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, headingStyle.Render(fmt.Sprintf("%s: %s -> %s", p.Title(), req.Directory, req.Target)))

		for _, s := range collect(e) {
			line := fmt.Sprintf("%s%s  %s", nameStyle.Render(s.Kind.String()), s.Title, s.Tip)
			if verbosity > 0 {
				line += fmt.Sprintf(" [%s, %s]", s.Icon, s.Executable)
			}

			if s.State() == link.Disabled {
				line = disabledStyle.Render(line + " (" + link.Disabled.String() + ")")
			}

			fmt.Fprintln(out, line)
		}

		return nil
	},
}
