package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ogaidukov/gauth/internal/app"
	"github.com/ogaidukov/gauth/internal/logger"
)

//nolint:gochecknoglobals,lll // Cobra command requires a global definition for proper command-line parsing and execution.
var loginCmd = &cobra.Command{
	Use:   "login [flags] [services]",
	Short: "Log in with email and password and print service-scoped tokens",
	Long: `Exchanges the configured email and a password read from the terminal for
one authentication token per requested service code.

Service codes name the API the token is scoped to, for example 'cl' for
Calendar or 'lh2' for Picasa Web Albums. Without arguments the service
from the configuration file is used.

When the endpoint demands a CAPTCHA, the challenge image is saved to the
temporary directory and you are asked to type the answer back.`,
	Args: cobra.ArbitraryArgs,
	Run: func(cmd *cobra.Command, services []string) {
		if err := bindFlagsToConfig(cmd.Flags(), appConfig); err != nil {
			logger.Fatalf(cmd.Context(), "Failed to parse flags: %v", err)
		}

		app.ExecuteLoginCommand(cmd.Context(), appConfig, services)
	},
}

//nolint:gochecknoinits // Cobra requires the init function to set up commands.
func init() {
	rootCmd.AddCommand(loginCmd)
}
