package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/ogaidukov/gauth/internal/config"
	"github.com/ogaidukov/gauth/internal/logger"
	"github.com/ogaidukov/gauth/internal/utils"
)

// ExecuteTokenInfoCommand describes the target, scope, and security flag of
// an AuthSub token.
func ExecuteTokenInfoCommand(ctx context.Context, cfg *config.Config, tokenValue string) {
	tokenValue = strings.TrimSpace(tokenValue)
	if tokenValue == "" {
		logger.Fatalf(ctx, "Token value must not be empty")
		return
	}

	client := newGoogleClient(cfg, newHTTPClient(cfg), cfg.Service)
	client.RegisterToken(cfg.Email, tokenValue)

	info, err := client.TokenInfo(ctx)
	if err != nil {
		logger.Fatalf(ctx, "Failed to fetch token info: %v", err)
		return
	}

	result := tokenInfoResult{
		Target: info.Target,
		Scope:  info.Scope,
		Secure: info.Secure,
	}

	renderResult(ctx, cfg, result, func() {
		fmt.Printf("%s %s\n", color.CyanString("Target:"), result.Target)
		fmt.Printf("%s %s\n", color.CyanString("Scope:"), result.Scope)
		fmt.Printf("%s %t\n", color.CyanString("Secure:"), result.Secure)
	})
}

// ExecuteTokenRevokeCommand revokes an AuthSub token so it can no longer be
// used for requests.
func ExecuteTokenRevokeCommand(ctx context.Context, cfg *config.Config, tokenValue string) {
	tokenValue = strings.TrimSpace(tokenValue)
	if tokenValue == "" {
		logger.Fatalf(ctx, "Token value must not be empty")
		return
	}

	client := newGoogleClient(cfg, newHTTPClient(cfg), cfg.Service)
	client.RegisterToken(cfg.Email, tokenValue)

	if err := client.RevokeToken(ctx); err != nil {
		logger.Fatalf(ctx, "Failed to revoke token: %v", err)
		return
	}

	logger.Infof(ctx, "Token %s has been revoked", utils.MaskToken(tokenValue))
}
