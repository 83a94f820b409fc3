package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ogaidukov/gauth/internal/app"
	"github.com/ogaidukov/gauth/internal/logger"
)

var (
	//nolint:gochecknoglobals,lll // Cobra command requires a global definition for proper command-line parsing and execution.
	authSubCmd = &cobra.Command{
		Use:   "authsub",
		Short: "Obtain tokens through the AuthSub consent flow",
		Long: `Manage tokens issued by the AuthSub consent flow.

Use 'authsub url' to print the consent page URL for manual approval,
'authsub capture' to walk the flow in a controlled browser, and
'authsub register' or 'authsub exchange' to adopt a token you already
copied from a redirect.`,
	}

	//nolint:gochecknoglobals,lll // Cobra command requires a global definition for proper command-line parsing and execution.
	authSubURLCmd = &cobra.Command{
		Use:   "url",
		Short: "Print the consent page URL for the configured scope",
		Run: func(cmd *cobra.Command, _ []string) {
			if err := bindFlagsToConfig(cmd.Flags(), appConfig); err != nil {
				logger.Fatalf(cmd.Context(), "Failed to parse flags: %v", err)
			}

			app.ExecuteAuthSubURLCommand(cmd.Context(), appConfig)
		},
	}

	//nolint:gochecknoglobals,lll // Cobra command requires a global definition for proper command-line parsing and execution.
	authSubCaptureCmd = &cobra.Command{
		Use:   "capture",
		Short: "Approve the consent page in a browser and capture the token",
		Long: `Opens a browser on the consent page, waits for you to approve the
request, and captures the single-use token from the redirect.

Pass --exchange to immediately upgrade the captured token to a
long-lived session token.`,
		Run: func(cmd *cobra.Command, _ []string) {
			if err := bindFlagsToConfig(cmd.Flags(), appConfig); err != nil {
				logger.Fatalf(cmd.Context(), "Failed to parse flags: %v", err)
			}

			exchange, _ := cmd.Flags().GetBool("exchange")

			app.ExecuteAuthSubCaptureCommand(cmd.Context(), appConfig, exchange)
		},
	}

	//nolint:gochecknoglobals,lll // Cobra command requires a global definition for proper command-line parsing and execution.
	authSubRegisterCmd = &cobra.Command{
		Use:   "register",
		Short: "Adopt a token copied from a consent redirect",
		Run: func(cmd *cobra.Command, _ []string) {
			if err := bindFlagsToConfig(cmd.Flags(), appConfig); err != nil {
				logger.Fatalf(cmd.Context(), "Failed to parse flags: %v", err)
			}

			tokenValue, _ := cmd.Flags().GetString("token")
			exchange, _ := cmd.Flags().GetBool("exchange")

			app.ExecuteAuthSubRegisterCommand(cmd.Context(), appConfig, tokenValue, exchange)
		},
	}

	//nolint:gochecknoglobals,lll // Cobra command requires a global definition for proper command-line parsing and execution.
	authSubExchangeCmd = &cobra.Command{
		Use:   "exchange",
		Short: "Upgrade a single-use token to a session token",
		Run: func(cmd *cobra.Command, _ []string) {
			if err := bindFlagsToConfig(cmd.Flags(), appConfig); err != nil {
				logger.Fatalf(cmd.Context(), "Failed to parse flags: %v", err)
			}

			tokenValue, _ := cmd.Flags().GetString("token")

			app.ExecuteAuthSubRegisterCommand(cmd.Context(), appConfig, tokenValue, true)
		},
	}
)

//nolint:gochecknoinits // Cobra requires the init function to set up commands.
func init() {
	for _, subCmd := range []*cobra.Command{authSubURLCmd, authSubCaptureCmd} {
		subCmd.Flags().String(
			"next",
			"",
			"URL the consent page redirects to after approval.")

		subCmd.Flags().String(
			"scope",
			"",
			"service URL prefix the token should be valid for.")

		subCmd.Flags().Bool(
			"session",
			false,
			"request a token that can be exchanged for a session token.")

		subCmd.Flags().Bool(
			"secure",
			false,
			"request a secure token that must be used with signed requests.")
	}

	authSubCaptureCmd.Flags().BoolP(
		"exchange",
		"e",
		false,
		"exchange the captured token for a session token right away.")

	authSubRegisterCmd.Flags().StringP(
		"token",
		"t",
		"",
		"token value copied from the consent redirect.")

	authSubRegisterCmd.Flags().BoolP(
		"exchange",
		"e",
		false,
		"exchange the registered token for a session token right away.")

	authSubExchangeCmd.Flags().StringP(
		"token",
		"t",
		"",
		"single-use token to upgrade.")

	_ = authSubRegisterCmd.MarkFlagRequired("token")
	_ = authSubExchangeCmd.MarkFlagRequired("token")

	authSubCmd.AddCommand(authSubURLCmd, authSubCaptureCmd, authSubRegisterCmd, authSubExchangeCmd)

	rootCmd.AddCommand(authSubCmd)
}
