package auth

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"

	"github.com/ogaidukov/gauth/internal/logger"
)

// waitForApproval navigates to the consent page and polls the browser
// location until the redirect carrying the token arrives.
func (s *ServiceImpl) waitForApproval(ctx context.Context, consentURL string) (string, error) {
	logger.Info(ctx, "Opening the consent page...")
	logger.Debugf(ctx, "Navigating to %s", consentURL)

	s.page.MustNavigate(consentURL)

	logger.Info(ctx, "")
	logger.Info(ctx, "Please finish the approval in the browser:")
	logger.Info(ctx, "")
	logger.Info(ctx, "1. Sign in with the account that should own the token")
	logger.Info(ctx, "2. Review the requested access and click 'Grant access'")
	logger.Info(ctx, "3. Keep the browser open until the redirect completes")
	logger.Info(ctx, "")
	logger.Info(ctx, "Waiting for approval to complete...")
	logger.Info(ctx, "")

	// The spinner only makes sense when the console is not already busy
	// with debug output.
	var bar *progressbar.ProgressBar
	if logger.Level() > zap.DebugLevel && logger.Level() <= zap.InfoLevel {
		bar = progressbar.Default(-1, "Waiting for approval")

		defer func() {
			_ = bar.Finish()
		}()
	}

	var (
		startTime = time.Now()
		lastURL   string
	)

	for {
		// Check context cancellation.
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		default:
		}

		// Check timeout.
		if time.Since(startTime) > s.cfg.ParsedBrowserTimeout {
			return "", fmt.Errorf("%w: waited for %v", ErrApprovalTimeout, s.cfg.ParsedBrowserTimeout)
		}

		// Check if the browser was closed.
		if !s.isBrowserAlive(ctx) {
			return "", ErrBrowserClosed
		}

		currentURL, err := s.getCurrentURL(ctx)
		if err != nil {
			return "", fmt.Errorf("failed to get current URL: %w", err)
		}

		// Log URL changes for debugging.
		if currentURL != lastURL {
			logger.Debugf(ctx, "URL changed: %s", currentURL)

			lastURL = currentURL
		}

		token, found, err := s.tokenFromRedirect(currentURL)
		if err != nil {
			return "", err
		}

		if found {
			return token, nil
		}

		// Validate the user hasn't navigated away.
		if err = s.validateApprovalURL(currentURL); err != nil {
			return "", err
		}

		if bar != nil {
			_ = bar.Add(1)
		}

		time.Sleep(approvalPollInterval)
	}
}

// tokenFromRedirect checks whether the browser reached the redirect URL and
// extracts the token query parameter if so. A redirect that arrives without
// the parameter means the user denied access on the consent screen.
func (s *ServiceImpl) tokenFromRedirect(currentURL string) (string, bool, error) {
	parsed, err := url.Parse(currentURL)
	if err != nil || parsed.Host != s.redirectHost {
		return "", false, nil
	}

	token := parsed.Query().Get(tokenQueryParam)
	if token == "" {
		return "", false, ErrApprovalDenied
	}

	return token, true, nil
}

// validateApprovalURL validates that the user has not navigated off the
// consent and redirect hosts. Sign-in may bounce through sibling account
// subdomains, and transitional pages without a host are allowed.
func (s *ServiceImpl) validateApprovalURL(currentURL string) error {
	parsed, err := url.Parse(currentURL)
	if err != nil || parsed.Host == "" {
		return nil
	}

	host := parsed.Host
	if host == s.consentHost ||
		host == "www."+s.consentHost ||
		host == s.redirectHost ||
		strings.HasSuffix(host, "."+s.consentHost) {
		return nil
	}

	return fmt.Errorf("%w to: %s", ErrNavigatedAway, currentURL)
}
