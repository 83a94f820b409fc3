package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/ogaidukov/gauth/internal/config"
	"github.com/ogaidukov/gauth/internal/logger"
	"github.com/ogaidukov/gauth/internal/version"
)

var (
	//nolint:gochecknoglobals // It is required for configuration initialization before the application starts.
	configFilenameFromFlag string

	//nolint:gochecknoglobals,lll // It is initialized once during the application's startup and shared across the command execution logic.
	appConfig *config.Config

	//nolint:gochecknoglobals,lll // Cobra command requires a global definition for proper command-line parsing and execution.
	rootCmd = &cobra.Command{
		Use:   "gauth",
		Short: "Obtain legacy Google authentication tokens from the command line.",
		Long: `gauth obtains legacy Google authentication tokens and prints them as
ready-to-use Authorization headers.

It speaks two protocols:
- ClientLogin: exchange an email and password for a service-scoped token,
  solving CAPTCHA challenges interactively when the endpoint demands them.
- AuthSub: walk the browser consent flow, capture the single-use token from
  the redirect, and optionally upgrade it to a long-lived session token.`,
		Version:          version.Full(),
		PersistentPreRun: initConfig,
	}
)

// Execute executes the root command.
func Execute() {
	signals := []os.Signal{syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM}
	ctx, stop := signal.NotifyContext(context.Background(), signals...)

	defer func() {
		_ = logger.Logger().Sync()
	}()

	defer stop()

	go func() {
		defer stop()

		err := rootCmd.ExecuteContext(ctx)
		cobra.CheckErr(err)
	}()

	<-ctx.Done()
}

//nolint:gochecknoinits // Cobra requires the init function to set up flags before the command is executed.
func init() {
	rootCmd.PersistentFlags().StringVarP(
		&configFilenameFromFlag,
		"config",
		"c",
		"",
		fmt.Sprintf("path to the configuration file (default is '%s')",
			config.DefaultConfigFilename))

	rootCmd.PersistentFlags().StringP(
		"output",
		"o",
		"",
		"output format for command results: text or yaml.")
}

func initConfig(cmd *cobra.Command, _ []string) {
	var err error

	appConfig, err = config.LoadConfig(configFilenameFromFlag)
	if err != nil {
		logger.Fatalf(cmd.Context(), "Failed to load configuration: %v", err)
	}

	logger.SetLevel(appConfig.ParsedLogLevel)
}

func bindFlagsToConfig(flags *pflag.FlagSet, cfg *config.Config) error {
	if flag := flags.Lookup("output"); flag != nil && flag.Changed {
		cfg.Output, _ = flags.GetString("output")
	}

	if flag := flags.Lookup("next"); flag != nil && flag.Changed {
		cfg.AuthSubNext, _ = flags.GetString("next")
	}

	if flag := flags.Lookup("scope"); flag != nil && flag.Changed {
		cfg.AuthSubScope, _ = flags.GetString("scope")
	}

	if flag := flags.Lookup("session"); flag != nil && flag.Changed {
		cfg.AuthSubSession, _ = flags.GetBool("session")
	}

	if flag := flags.Lookup("secure"); flag != nil && flag.Changed {
		cfg.AuthSubSecure, _ = flags.GetBool("secure")
	}

	if err := config.ValidateConfig(cfg); err != nil {
		return err
	}

	logger.SetLevel(cfg.ParsedLogLevel)

	return nil
}
