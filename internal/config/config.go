package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"

	"github.com/ogaidukov/gauth/internal/client/google"
	"github.com/ogaidukov/gauth/internal/logger"
	"github.com/ogaidukov/gauth/internal/utils"
	"github.com/ogaidukov/gauth/internal/version"
)

// Config holds all configuration settings.
type Config struct {
	// Email is the account name used for credential logins.
	Email string `mapstructure:"email"`
	// Service is the default service code a login token is requested for (e.g. "cl", "cp").
	Service string `mapstructure:"service"`
	// Source identifies this application to the accounts endpoints,
	// in the documented "companyName-applicationName-versionID" form.
	Source string `mapstructure:"source"`
	// AccountType restricts which account kinds may authenticate.
	AccountType string `mapstructure:"account_type"`
	// BaseURL is the root of the accounts endpoints.
	BaseURL string `mapstructure:"base_url"`
	// LogLevel specifies the logging verbosity level.
	LogLevel string `mapstructure:"log_level"`
	// HTTPTimeout bounds a single request to the accounts endpoints (e.g. "30s").
	HTTPTimeout string `mapstructure:"http_timeout"`
	// MaxLogLength is the maximum size of a dumped request or response
	// in debug logs (e.g. "64KB", "1MB").
	MaxLogLength string `mapstructure:"max_log_length"`
	// LoginsPerMinute throttles credential login attempts client-side.
	// Hammering the login endpoint is the fastest way to trip the CAPTCHA gate.
	LoginsPerMinute int64 `mapstructure:"logins_per_minute"`
	// CaptchaAttempts is how many CAPTCHA answers may be tried interactively
	// before the login command gives up.
	CaptchaAttempts int64 `mapstructure:"captcha_attempts"`
	// TokenCacheSize is the capacity of the in-memory per-service token cache.
	TokenCacheSize int64 `mapstructure:"token_cache_size"`
	// BrowserTimeout bounds how long the AuthSub capture flow waits
	// for the user to approve access in the browser (e.g. "3m").
	BrowserTimeout string `mapstructure:"browser_timeout"`
	// AuthSubNext is the URL the consent screen redirects to with the token attached.
	AuthSubNext string `mapstructure:"authsub_next"`
	// AuthSubScope is the service URL prefix the requested token should be valid for.
	AuthSubScope string `mapstructure:"authsub_scope"`
	// AuthSubSession requests a token that can be exchanged for a session token.
	AuthSubSession bool `mapstructure:"authsub_session"`
	// AuthSubSecure requests a secure (signed-request) token.
	AuthSubSecure bool `mapstructure:"authsub_secure"`
	// Output selects how command results are rendered ("text" or "yaml").
	Output string `mapstructure:"output"`
	// ParsedLogLevel is the parsed zap log level.
	ParsedLogLevel zapcore.Level
	// ParsedHTTPTimeout is the parsed HTTP request timeout.
	ParsedHTTPTimeout time.Duration
	// ParsedMaxLogLength is the parsed debug dump size limit in bytes.
	ParsedMaxLogLength uint64
	// ParsedCaptchaAttempts is the parsed CAPTCHA attempt budget.
	ParsedCaptchaAttempts uint8
	// ParsedBrowserTimeout is the parsed AuthSub approval timeout.
	ParsedBrowserTimeout time.Duration
}

const (
	// DefaultConfigFilename is the default name of the configuration file.
	DefaultConfigFilename = ".gauth.yaml"

	// DefaultMaxLogLength is the default maximum size (in bytes) for request and response dumps.
	DefaultMaxLogLength = 1 * 1024 * 1024 // 1 MB

	// DefaultHTTPTimeout is the default timeout for a single accounts request.
	DefaultHTTPTimeout = 30 * time.Second

	// DefaultBrowserTimeout is the default wait for the user to finish the
	// consent flow in the browser.
	DefaultBrowserTimeout = 3 * time.Minute

	// defaultLogLevel is assumed when the configuration does not name one.
	defaultLogLevel = "info"

	// defaultSourcePrefix builds the fallback source identifier together with the version.
	defaultSourcePrefix = "ogaidukov-gauth-"
)

// Output formats for command results.
const (
	// OutputFormatText renders results as human readable text.
	OutputFormatText = "text"
	// OutputFormatYAML renders results as YAML.
	OutputFormatYAML = "yaml"
)

// Static error definitions for better error handling.
var (
	// ErrInvalidBaseURL indicates that the accounts base URL is not an absolute http(s) URL.
	ErrInvalidBaseURL = errors.New("base_url must be an absolute http(s) URL")
	// ErrInvalidAccountType indicates that the account type is not part of the protocol vocabulary.
	ErrInvalidAccountType = errors.New("invalid account_type")
	// ErrUnknownLogLevel indicates that the log level is not recognized.
	ErrUnknownLogLevel = errors.New("unknown log level")
	// ErrInvalidHTTPTimeout indicates that the HTTP timeout is invalid.
	ErrInvalidHTTPTimeout = errors.New("http_timeout must be positive")
	// ErrInvalidBrowserTimeout indicates that the AuthSub approval timeout is invalid.
	ErrInvalidBrowserTimeout = errors.New("browser_timeout must be positive")
	// ErrInvalidCaptchaAttempts indicates that the CAPTCHA attempt budget is invalid.
	ErrInvalidCaptchaAttempts = errors.New("captcha_attempts must be a positive integer")
	// ErrInvalidLoginsPerMinute indicates that the login throttle rate is invalid.
	ErrInvalidLoginsPerMinute = errors.New("logins_per_minute must be a positive integer")
	// ErrInvalidTokenCacheSize indicates that the token cache capacity is invalid.
	ErrInvalidTokenCacheSize = errors.New("token_cache_size must be a positive integer")
	// ErrInvalidAuthSubNext indicates that the AuthSub redirect URL is not absolute.
	ErrInvalidAuthSubNext = errors.New("authsub_next must be an absolute URL")
	// ErrInvalidOutputFormat indicates that the output format is not recognized.
	ErrInvalidOutputFormat = errors.New("output must be one of: text, yaml")
)

// LoadConfig loads configuration settings from a YAML file.
// Unknown keys are rejected: every setting the file names must exist in Config.
func LoadConfig(configFilename string) (*Config, error) {
	if configFilename == "" {
		configFilename = DefaultConfigFilename
	}

	viper.SetConfigFile(configFilename)

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config from file: %w", err)
	}

	var cfg Config

	err := viper.Unmarshal(&cfg, func(dc *mapstructure.DecoderConfig) {
		dc.ErrorUnused = true
	})
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// ValidateConfig checks the configuration for validity, fills documented defaults,
// and sets derived fields.
//
//nolint:funlen,gocognit,cyclop // Validation functions naturally have high complexity and length due to sequential checks.
func ValidateConfig(cfg *Config) error {
	cfg.Email = strings.TrimSpace(cfg.Email)
	cfg.Service = strings.TrimSpace(cfg.Service)

	baseURL := strings.TrimSpace(cfg.BaseURL)
	if baseURL == "" {
		baseURL = google.DefaultBaseURL
	}

	parsedBaseURL, err := url.Parse(baseURL)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidBaseURL, err)
	}

	if (parsedBaseURL.Scheme != "http" && parsedBaseURL.Scheme != "https") || parsedBaseURL.Host == "" {
		return fmt.Errorf("%w: '%s'", ErrInvalidBaseURL, baseURL)
	}

	cfg.BaseURL = strings.TrimRight(baseURL, "/")

	accountType := strings.TrimSpace(cfg.AccountType)
	if accountType == "" {
		accountType = google.DefaultAccountType
	}

	if !google.IsValidAccountType(accountType) {
		return fmt.Errorf("%w: '%s', must be one of %s",
			ErrInvalidAccountType, accountType, strings.Join(google.AccountTypes(), ", "))
	}

	cfg.AccountType = accountType

	if strings.TrimSpace(cfg.Source) == "" {
		cfg.Source = defaultSourcePrefix + version.Short()
	}

	logLevel := strings.TrimSpace(cfg.LogLevel)
	if logLevel == "" {
		logLevel = defaultLogLevel
	}

	parsedLogLevel, isLogLevelCorrect := logger.ParseLogLevel(logLevel)
	if !isLogLevelCorrect {
		return fmt.Errorf("%w: '%s'", ErrUnknownLogLevel, cfg.LogLevel)
	}

	cfg.ParsedLogLevel = parsedLogLevel

	cfg.ParsedHTTPTimeout = DefaultHTTPTimeout

	if cfg.HTTPTimeout != "" {
		cfg.ParsedHTTPTimeout, err = time.ParseDuration(cfg.HTTPTimeout)
		if err != nil {
			return fmt.Errorf("failed to parse http timeout: %w", err)
		}

		if cfg.ParsedHTTPTimeout <= 0 {
			return ErrInvalidHTTPTimeout
		}
	}

	maxLogLength := strings.TrimSpace(cfg.MaxLogLength)

	cfg.ParsedMaxLogLength = DefaultMaxLogLength

	if maxLogLength != "" && maxLogLength != "0" {
		cfg.ParsedMaxLogLength, err = humanize.ParseBytes(maxLogLength)
		if err != nil {
			return fmt.Errorf("failed to parse max log length: %w", err)
		}
	}

	if cfg.LoginsPerMinute <= 0 {
		return ErrInvalidLoginsPerMinute
	}

	if cfg.CaptchaAttempts <= 0 {
		return ErrInvalidCaptchaAttempts
	}

	cfg.ParsedCaptchaAttempts = utils.SafeIntToUint8(int(cfg.CaptchaAttempts))

	if cfg.TokenCacheSize <= 0 {
		return ErrInvalidTokenCacheSize
	}

	cfg.ParsedBrowserTimeout = DefaultBrowserTimeout

	if cfg.BrowserTimeout != "" {
		cfg.ParsedBrowserTimeout, err = time.ParseDuration(cfg.BrowserTimeout)
		if err != nil {
			return fmt.Errorf("failed to parse browser timeout: %w", err)
		}

		if cfg.ParsedBrowserTimeout <= 0 {
			return ErrInvalidBrowserTimeout
		}
	}

	if cfg.AuthSubNext != "" {
		parsedNext, nextErr := url.Parse(cfg.AuthSubNext)
		if nextErr != nil {
			return fmt.Errorf("%w: %w", ErrInvalidAuthSubNext, nextErr)
		}

		if !parsedNext.IsAbs() || parsedNext.Host == "" {
			return fmt.Errorf("%w: '%s'", ErrInvalidAuthSubNext, cfg.AuthSubNext)
		}
	}

	output := strings.TrimSpace(cfg.Output)
	if output == "" {
		output = OutputFormatText
	}

	if output != OutputFormatText && output != OutputFormatYAML {
		return fmt.Errorf("%w: '%s'", ErrInvalidOutputFormat, cfg.Output)
	}

	cfg.Output = output

	return nil
}
