// Package app implements the main application commands.
package app

import (
	"github.com/spf13/cobra"
)

func init() { //nolint: gochecknoinits
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "./etc/", "Directory holding main.toml")
}

var rootCmd = &cobra.Command{
	Use:   "teca-web",
	Short: "teca-web serves the Twic East Community Association website",
	Long: `teca-web serves the public website of the Twic East Community Association:
news, events, leadership and the payam resettlement fundraising pages,
together with the admin panel used by the association's staff.`,
	Args:         cobra.OnlyValidArgs,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
