package auth

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/go-rod/rod"

	"github.com/ogaidukov/gauth/internal/client/google"
	"github.com/ogaidukov/gauth/internal/config"
	"github.com/ogaidukov/gauth/internal/logger"
)

const (
	// browserSlowMotionDelay is the delay between browser actions for visibility during debugging.
	browserSlowMotionDelay = 200 * time.Millisecond

	// approvalPollInterval is the interval for polling the browser location.
	approvalPollInterval = 1 * time.Second

	// tokenQueryParam is the query parameter carrying the single-use token
	// on the redirect URL.
	tokenQueryParam = "token"

	// browserCleanupDelay is the delay to wait for Chrome to release file locks before cleanup.
	browserCleanupDelay = 500 * time.Millisecond
)

var (
	// ErrApprovalTimeout is returned when the user does not finish the consent flow in time.
	ErrApprovalTimeout = errors.New("approval timeout exceeded")

	// ErrBrowserClosed is returned when the browser is closed by the user.
	ErrBrowserClosed = errors.New("browser was closed by user")

	// ErrNavigatedAway is returned when the user navigates away from the consent flow.
	ErrNavigatedAway = errors.New("user navigated away from consent flow")

	// ErrApprovalDenied is returned when the redirect arrives without a token.
	ErrApprovalDenied = errors.New("access was denied on the consent screen")

	// ErrNoRedirectURL is returned when no redirect URL is configured.
	ErrNoRedirectURL = errors.New("authsub_next must be configured for browser capture")
)

// Service provides browser-based token capture.
type Service interface {
	// RequestToken opens a browser on the consent page, waits for the user
	// to approve access, and returns the single-use token from the redirect.
	RequestToken(ctx context.Context) (string, error)
}

// ServiceImpl drives the consent flow in a real browser.
type ServiceImpl struct {
	cfg    *config.Config
	client google.Client

	browser *rod.Browser
	page    *rod.Page
	// tempDir stores the temporary profile directory for cleanup.
	tempDir string

	// consentHost and redirectHost bound where the user may navigate.
	// consentHost is stored without a www prefix so sibling account
	// subdomains pass validation during sign-in.
	consentHost  string
	redirectHost string
}

// NewService creates a new browser capture service.
func NewService(cfg *config.Config, client google.Client) (*ServiceImpl, error) {
	if cfg.AuthSubNext == "" {
		return nil, ErrNoRedirectURL
	}

	redirectURL, err := url.Parse(cfg.AuthSubNext)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redirect URL: %w", err)
	}

	consentURL, err := url.Parse(client.GetBaseURL())
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}

	return &ServiceImpl{
		cfg:          cfg,
		client:       client,
		consentHost:  strings.TrimPrefix(consentURL.Host, "www."),
		redirectHost: redirectURL.Host,
	}, nil
}

// RequestToken opens a browser on the consent page, waits for the user to
// approve access, and returns the single-use token from the redirect.
// Registering the captured token with the client is left to the caller.
func (s *ServiceImpl) RequestToken(ctx context.Context) (string, error) {
	logger.Info(ctx, "Starting browser-based token capture")

	consentURL, err := s.client.AuthSubRequestURL(
		s.cfg.AuthSubNext, s.cfg.AuthSubScope, s.cfg.AuthSubSession, s.cfg.AuthSubSecure)
	if err != nil {
		return "", fmt.Errorf("failed to build consent URL: %w", err)
	}

	if err = s.initBrowser(ctx); err != nil {
		return "", fmt.Errorf("failed to initialize browser: %w", err)
	}

	defer s.cleanup(ctx)

	token, err := s.waitForApproval(ctx, consentURL)
	if err != nil {
		return "", fmt.Errorf("approval failed: %w", err)
	}

	logger.Info(ctx, "Single-use token captured successfully")

	return token, nil
}
