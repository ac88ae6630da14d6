// Package commands holds the resetapad CLI.
package commands

import (
	"github.com/spf13/cobra"
)

var (
	version    = "dev"
	configFile string
)

var rootCmd = &cobra.Command{
	Use:   "resetapad",
	Short: "Prescription letterhead editor",
	Long: `resetapad serves a visual editor for medical prescription letterheads:
contact details, design colors, and clinic hours edited side by side with a
live preview of the printed sheet.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: false,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version reported by --version.
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (YAML); defaults and RESETAPAD_ env vars apply without one")
}
