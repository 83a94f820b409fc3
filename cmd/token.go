package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ogaidukov/gauth/internal/app"
	"github.com/ogaidukov/gauth/internal/logger"
)

var (
	//nolint:gochecknoglobals,lll // Cobra command requires a global definition for proper command-line parsing and execution.
	tokenCmd = &cobra.Command{
		Use:   "token",
		Short: "Inspect and revoke AuthSub tokens",
	}

	//nolint:gochecknoglobals,lll // Cobra command requires a global definition for proper command-line parsing and execution.
	tokenInfoCmd = &cobra.Command{
		Use:   "info",
		Short: "Describe the target, scope, and security flag of a token",
		Run: func(cmd *cobra.Command, _ []string) {
			if err := bindFlagsToConfig(cmd.Flags(), appConfig); err != nil {
				logger.Fatalf(cmd.Context(), "Failed to parse flags: %v", err)
			}

			tokenValue, _ := cmd.Flags().GetString("token")

			app.ExecuteTokenInfoCommand(cmd.Context(), appConfig, tokenValue)
		},
	}

	//nolint:gochecknoglobals,lll // Cobra command requires a global definition for proper command-line parsing and execution.
	tokenRevokeCmd = &cobra.Command{
		Use:   "revoke",
		Short: "Revoke a token so it can no longer be used",
		Run: func(cmd *cobra.Command, _ []string) {
			if err := bindFlagsToConfig(cmd.Flags(), appConfig); err != nil {
				logger.Fatalf(cmd.Context(), "Failed to parse flags: %v", err)
			}

			tokenValue, _ := cmd.Flags().GetString("token")

			app.ExecuteTokenRevokeCommand(cmd.Context(), appConfig, tokenValue)
		},
	}
)

//nolint:gochecknoinits // Cobra requires the init function to set up commands.
func init() {
	for _, subCmd := range []*cobra.Command{tokenInfoCmd, tokenRevokeCmd} {
		subCmd.Flags().StringP(
			"token",
			"t",
			"",
			"AuthSub token to operate on.")

		_ = subCmd.MarkFlagRequired("token")
	}

	tokenCmd.AddCommand(tokenInfoCmd, tokenRevokeCmd)

	rootCmd.AddCommand(tokenCmd)
}
