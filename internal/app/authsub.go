package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/ogaidukov/gauth/internal/client/google"
	"github.com/ogaidukov/gauth/internal/config"
	"github.com/ogaidukov/gauth/internal/logger"
	"github.com/ogaidukov/gauth/internal/service/auth"
	"github.com/ogaidukov/gauth/internal/utils"
)

// ExecuteAuthSubURLCommand prints the consent page URL for the configured
// scope so the user can walk the approval flow in any browser.
func ExecuteAuthSubURLCommand(ctx context.Context, cfg *config.Config) {
	client := newGoogleClient(cfg, newHTTPClient(cfg), cfg.Service)

	consentURL, err := client.AuthSubRequestURL(cfg.AuthSubNext, cfg.AuthSubScope, cfg.AuthSubSession, cfg.AuthSubSecure)
	if err != nil {
		logger.Fatalf(ctx, "Failed to build consent URL: %v", err)
		return
	}

	fmt.Println(consentURL)

	logger.Info(ctx, "Open the URL in a browser and approve the request.")
	logger.Info(ctx, "Then register the token from the redirect:")
	logger.Info(ctx, "gauth authsub register --token <token>")
}

// ExecuteAuthSubCaptureCommand drives the browser consent flow, registers the
// captured token, optionally upgrades it to a session token, and prints the
// resulting authorization header.
func ExecuteAuthSubCaptureCommand(ctx context.Context, cfg *config.Config, exchange bool) {
	client := newGoogleClient(cfg, newHTTPClient(cfg), cfg.Service)

	authService, err := auth.NewService(cfg, client)
	if err != nil {
		logger.Fatalf(ctx, "Failed to initialize browser capture: %v", err)
		return
	}

	capturedToken, err := authService.RequestToken(ctx)
	if err != nil {
		logger.Fatalf(ctx, "Consent flow failed: %v", err)
		return
	}

	registerAndRender(ctx, cfg, client, capturedToken, exchange)
}

// ExecuteAuthSubRegisterCommand adopts a token obtained outside the CLI,
// optionally upgrades it to a session token, and prints the resulting
// authorization header.
func ExecuteAuthSubRegisterCommand(ctx context.Context, cfg *config.Config, tokenValue string, exchange bool) {
	tokenValue = strings.TrimSpace(tokenValue)
	if tokenValue == "" {
		logger.Fatalf(ctx, "Token value must not be empty")
		return
	}

	client := newGoogleClient(cfg, newHTTPClient(cfg), cfg.Service)

	registerAndRender(ctx, cfg, client, tokenValue, exchange)
}

// registerAndRender installs the token on the client, optionally exchanges it
// for a long-lived session token, and prints the authorization header.
func registerAndRender(ctx context.Context, cfg *config.Config, client google.Client, tokenValue string, exchange bool) {
	client.RegisterToken(cfg.Email, tokenValue)

	if exchange {
		sessionToken, err := client.ExchangeSessionToken(ctx)
		if err != nil {
			logger.Fatalf(ctx, "Failed to exchange session token: %v", err)
			return
		}

		logger.Infof(ctx, "Exchanged single-use token for session token %s", utils.MaskToken(sessionToken))
	}

	result := tokenResult{
		Email:     cfg.Email,
		Kind:      google.TokenKindAuthSub.String(),
		Exchanged: exchange,
		Headers:   client.AuthHeaders(),
	}

	renderResult(ctx, cfg, result, func() {
		printHeaders(result.Headers)
	})
}
