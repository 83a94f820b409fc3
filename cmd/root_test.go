package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ogaidukov/gauth/internal/config"
	"github.com/ogaidukov/gauth/internal/constants"
)

const testBaseConfigContent = `
email: "alice@example.com"
service: "cl"
log_level: "info"
http_timeout: "30s"
logins_per_minute: 12
captcha_attempts: 3
token_cache_size: 16
browser_timeout: "3m"
authsub_next: "https://www.example.com/authsub"
authsub_scope: "http://www.google.com/calendar/feeds/"
authsub_session: true
`

// newTestFlagSet builds a command carrying the same flags the real
// subcommands register.
func newTestFlagSet() *cobra.Command {
	testCmd := &cobra.Command{Use: "test"}

	testCmd.Flags().StringP("output", "o", "", "output format")
	testCmd.Flags().String("next", "", "redirect URL")
	testCmd.Flags().String("scope", "", "scope URL prefix")
	testCmd.Flags().Bool("session", false, "request an exchangeable token")
	testCmd.Flags().Bool("secure", false, "request a secure token")

	return testCmd
}

// TestFlagOverrides tests that command-line flags correctly override configuration file values.
//
//nolint:funlen,nolintlint,tparallel // It's a comprehensive integration test. Cannot run in parallel due to Viper global state.
func TestFlagOverrides(t *testing.T) {
	tests := []struct {
		name           string
		flags          map[string]string
		expectedConfig func(*testing.T, *config.Config)
	}{
		{
			name:  "no flags - use config values",
			flags: map[string]string{},
			expectedConfig: func(t *testing.T, cfg *config.Config) {
				t.Helper()
				assert.Equal(t, config.OutputFormatText, cfg.Output)
				assert.Equal(t, "https://www.example.com/authsub", cfg.AuthSubNext)
				assert.Equal(t, "http://www.google.com/calendar/feeds/", cfg.AuthSubScope)
				assert.True(t, cfg.AuthSubSession)
				assert.False(t, cfg.AuthSubSecure)
			},
		},
		{
			name: "output flag only - override output format",
			flags: map[string]string{
				"output": "yaml",
			},
			expectedConfig: func(t *testing.T, cfg *config.Config) {
				t.Helper()
				assert.Equal(t, config.OutputFormatYAML, cfg.Output)
				assert.Equal(t, "https://www.example.com/authsub", cfg.AuthSubNext)
			},
		},
		{
			name: "next flag only - override redirect URL",
			flags: map[string]string{
				"next": "https://flag.example.com/done",
			},
			expectedConfig: func(t *testing.T, cfg *config.Config) {
				t.Helper()
				assert.Equal(t, "https://flag.example.com/done", cfg.AuthSubNext)
				assert.Equal(t, "http://www.google.com/calendar/feeds/", cfg.AuthSubScope)
			},
		},
		{
			name: "scope flag only - override scope",
			flags: map[string]string{
				"scope": "http://picasaweb.google.com/data/",
			},
			expectedConfig: func(t *testing.T, cfg *config.Config) {
				t.Helper()
				assert.Equal(t, "http://picasaweb.google.com/data/", cfg.AuthSubScope)
				assert.Equal(t, "https://www.example.com/authsub", cfg.AuthSubNext)
			},
		},
		{
			name: "session flag false - explicit false override",
			flags: map[string]string{
				"session": "false",
			},
			expectedConfig: func(t *testing.T, cfg *config.Config) {
				t.Helper()
				assert.False(t, cfg.AuthSubSession)
			},
		},
		{
			name: "secure flag only - override secure",
			flags: map[string]string{
				"secure": "true",
			},
			expectedConfig: func(t *testing.T, cfg *config.Config) {
				t.Helper()
				assert.True(t, cfg.AuthSubSecure)
				assert.True(t, cfg.AuthSubSession)
			},
		},
		{
			name: "all flags - override everything",
			flags: map[string]string{
				"output":  "yaml",
				"next":    "https://all.example.com/done",
				"scope":   "http://www.google.com/m8/feeds/",
				"session": "false",
				"secure":  "true",
			},
			expectedConfig: func(t *testing.T, cfg *config.Config) {
				t.Helper()
				assert.Equal(t, config.OutputFormatYAML, cfg.Output)
				assert.Equal(t, "https://all.example.com/done", cfg.AuthSubNext)
				assert.Equal(t, "http://www.google.com/m8/feeds/", cfg.AuthSubScope)
				assert.False(t, cfg.AuthSubSession)
				assert.True(t, cfg.AuthSubSecure)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Create temporary directory and config file.
			tempDir := t.TempDir()
			configPath := filepath.Join(tempDir, "test-config.yaml")

			err := os.WriteFile(
				configPath,
				[]byte(testBaseConfigContent),
				constants.DefaultFilePermissions,
			) //nolint:gosec // It's a test file.
			require.NoError(t, err)

			// Load configuration.
			cfg, err := config.LoadConfig(configPath)
			require.NoError(t, err)

			// Create a test command with the same flags as the subcommands.
			testCmd := newTestFlagSet()

			// Set flag values.
			for flagName, flagValue := range tt.flags {
				require.NoError(t, testCmd.Flags().Set(flagName, flagValue),
					"failed to set flag %s", flagName)
			}

			// Bind flags to config.
			err = bindFlagsToConfig(testCmd.Flags(), cfg)
			require.NoError(t, err)

			// Verify expectations.
			tt.expectedConfig(t, cfg)
		})
	}
}

// TestFlagOverrides_InvalidValues tests that invalid flag values are caught during validation.
//
//nolint:nolintlint,tparallel // Cannot run in parallel due to Viper global state.
func TestFlagOverrides_InvalidValues(t *testing.T) {
	invalidTests := []struct {
		name          string
		flagName      string
		flagValue     string
		expectedError string
	}{
		{
			name:          "invalid output format",
			flagName:      "output",
			flagValue:     "json",
			expectedError: "output must be one of: text, yaml",
		},
		{
			name:          "relative redirect URL",
			flagName:      "next",
			flagValue:     "just-a-path",
			expectedError: "authsub_next must be an absolute URL",
		},
	}

	for _, tt := range invalidTests {
		t.Run(tt.name, func(t *testing.T) {
			// Create temporary directory and config file.
			tempDir := t.TempDir()
			configPath := filepath.Join(tempDir, "test-config.yaml")

			err := os.WriteFile(
				configPath,
				[]byte(testBaseConfigContent),
				constants.DefaultFilePermissions,
			) //nolint:gosec // It's a test file.
			require.NoError(t, err)

			// Load configuration.
			cfg, err := config.LoadConfig(configPath)
			require.NoError(t, err)

			// Create a test command with flags.
			testCmd := newTestFlagSet()

			// Set the flag.
			err = testCmd.Flags().Set(tt.flagName, tt.flagValue)
			require.NoError(t, err)

			// Bind flags to config - this should fail validation.
			err = bindFlagsToConfig(testCmd.Flags(), cfg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.expectedError)
		})
	}
}

// TestBindFlagsToConfig_UnchangedFlags tests that unchanged flags don't override config values.
//
//nolint:nolintlint,tparallel // Cannot run in parallel due to Viper global state.
func TestBindFlagsToConfig_UnchangedFlags(t *testing.T) {
	// Create temporary directory and config file.
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "test-config.yaml")

	configContent := testBaseConfigContent + `output: "yaml"
authsub_secure: true
`

	err := os.WriteFile(
		configPath,
		[]byte(configContent),
		constants.DefaultFilePermissions,
	) //nolint:gosec // It's a test file.
	require.NoError(t, err)

	// Load configuration.
	cfg, err := config.LoadConfig(configPath)
	require.NoError(t, err)

	// Create a test command with flags but don't set any.
	testCmd := newTestFlagSet()

	// Bind flags to config without setting any flags.
	err = bindFlagsToConfig(testCmd.Flags(), cfg)
	require.NoError(t, err)

	// Verify config values remain unchanged.
	assert.Equal(t, config.OutputFormatYAML, cfg.Output)
	assert.Equal(t, "https://www.example.com/authsub", cfg.AuthSubNext)
	assert.Equal(t, "http://www.google.com/calendar/feeds/", cfg.AuthSubScope)
	assert.True(t, cfg.AuthSubSession)
	assert.True(t, cfg.AuthSubSecure)
}

// TestBindFlagsToConfig_EmptyFlagSet tests handling of empty flag set.
func TestBindFlagsToConfig_EmptyFlagSet(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{
		Email:           "alice@example.com",
		Service:         "cl",
		LogLevel:        "info",
		LoginsPerMinute: 12,
		CaptchaAttempts: 3,
		TokenCacheSize:  16,
		BrowserTimeout:  "3m",
	}

	// Create an empty flag set.
	emptyFlags := pflag.NewFlagSet("test", pflag.ContinueOnError)

	// Calling with empty flag set should just validate the config.
	err := bindFlagsToConfig(emptyFlags, cfg)
	require.NoError(t, err)
}
