package token

//go:generate $MOCKGEN -source=provider.go -destination=mocks/provider_mock.go

import (
	"context"
	"errors"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/ogaidukov/gauth/internal/client/google"
	"github.com/ogaidukov/gauth/internal/config"
	"github.com/ogaidukov/gauth/internal/logger"
)

// ErrLoginRejected is returned when the login endpoint refused the credentials.
// The cause is appended from the protocol error code description.
var ErrLoginRejected = errors.New("login was rejected")

// ClientFactory builds a protocol client bound to one service code.
type ClientFactory func(service string) google.Client

// LoginFunc performs the credential login for a freshly built client.
// The default submits the credentials once; the CLI supplies a variant
// that walks the user through CAPTCHA challenges.
type LoginFunc func(ctx context.Context, client google.Client, email, password string) (*google.LoginResponse, error)

// Provider hands out Authorization headers per service code.
type Provider interface {
	// Headers returns the Authorization header for the service, logging in
	// on first use and caching the authenticated session per service code.
	Headers(ctx context.Context, service string) (map[string]string, error)
	// Invalidate drops the cached session for the service.
	Invalidate(service string)
}

// ProviderImpl implements Provider with an in-memory LRU of authenticated
// clients. Tokens never touch disk; the cache lives for the process only.
type ProviderImpl struct {
	cfg      *config.Config
	password string
	factory  ClientFactory
	login    LoginFunc
	clients  *lru.Cache[string, google.Client]
}

// NewProvider creates a new token provider.
// A nil factory builds plain clients from the configuration; a nil login
// submits the credentials once without challenge handling.
func NewProvider(cfg *config.Config, password string, factory ClientFactory, login LoginFunc) (*ProviderImpl, error) {
	if factory == nil {
		factory = func(service string) google.Client {
			return google.NewClient(google.Config{
				BaseURL:         cfg.BaseURL,
				Service:         service,
				Source:          cfg.Source,
				AccountType:     cfg.AccountType,
				LoginsPerMinute: int(cfg.LoginsPerMinute),
			})
		}
	}

	if login == nil {
		login = func(ctx context.Context, client google.Client, email, password string) (*google.LoginResponse, error) {
			return client.Login(ctx, email, password, nil)
		}
	}

	clients, err := lru.New[string, google.Client](int(cfg.TokenCacheSize))
	if err != nil {
		return nil, fmt.Errorf("failed to create token cache: %w", err)
	}

	return &ProviderImpl{
		cfg:      cfg,
		password: password,
		factory:  factory,
		login:    login,
		clients:  clients,
	}, nil
}

// Headers returns the Authorization header for the service, logging in on
// first use and caching the authenticated session per service code.
// A rejected login is not cached, so the next call tries again.
func (p *ProviderImpl) Headers(ctx context.Context, service string) (map[string]string, error) {
	if client, ok := p.clients.Get(service); ok && client.IsAuthenticated() {
		logger.DebugKV(ctx, "Token cache hit", "service", service)

		return client.AuthHeaders(), nil
	}

	client := p.factory(service)

	response, err := p.login(ctx, client, p.cfg.Email, p.password)
	if err != nil {
		return nil, err
	}

	if !response.Success {
		return nil, fmt.Errorf("%w: %s", ErrLoginRejected, response.ErrorDescription())
	}

	p.clients.Add(service, client)

	logger.DebugKV(ctx, "Token cached", "service", service)

	return client.AuthHeaders(), nil
}

// Invalidate drops the cached session for the service.
func (p *ProviderImpl) Invalidate(service string) {
	p.clients.Remove(service)
}
