package cmd

import (
	"fmt"
	"os"

	"github.com/jamesbehr/mklink/config"
	"github.com/jamesbehr/mklink/logging"
	"github.com/spf13/cobra"
)

var (
	verbosity  int
	configFile string
	directory  string
	target     string
	dryRun     bool

	settings *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "mklink",
	Short: "Create links to a copied file or folder",
	Long: `mklink offers symbolic links, hard links, junctions and shortcuts to the
file or folder on the clipboard, created in the current folder. Creation is
attempted without elevation first and escalated only when access is denied.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configFile)
		if err != nil {
			return err
		}

		settings = cfg
		logging.SetupLogger(verbosity, cfg.Log.File)
		return nil
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default is $XDG_CONFIG_HOME/mklink/config.toml)")
	rootCmd.PersistentFlags().StringVarP(&directory, "dir", "d", "", "folder to create the link in (default is $PWD)")
	rootCmd.PersistentFlags().StringVarP(&target, "target", "t", "", "file or folder to link to (default is the clipboard)")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(createCmd)
	rootCmd.AddCommand(menuCmd)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
