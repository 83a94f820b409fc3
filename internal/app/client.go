package app

import (
	"net/http"

	"github.com/ogaidukov/gauth/internal/client/google"
	"github.com/ogaidukov/gauth/internal/config"
	"github.com/ogaidukov/gauth/internal/service/token"
	http_transport "github.com/ogaidukov/gauth/internal/transport/http"
	"github.com/ogaidukov/gauth/internal/utils"
)

// newHTTPClient assembles the transport chain shared by every command:
// debug dump logging wrapped in user agent injection.
func newHTTPClient(cfg *config.Config) *http.Client {
	transport := http_transport.NewUserAgentInjector(
		http_transport.NewLogTransport(http.DefaultTransport, cfg.ParsedMaxLogLength),
		utils.NewStaticUserAgentProvider(cfg.Source))

	return &http.Client{
		Transport: transport,
		Timeout:   cfg.ParsedHTTPTimeout,
	}
}

// newGoogleClient builds a protocol client bound to a single service code.
func newGoogleClient(cfg *config.Config, httpClient *http.Client, service string) google.Client {
	return google.NewClient(google.Config{
		BaseURL:         cfg.BaseURL,
		Service:         service,
		Source:          cfg.Source,
		AccountType:     cfg.AccountType,
		HTTPClient:      httpClient,
		LoginsPerMinute: int(cfg.LoginsPerMinute),
	})
}

// clientFactory adapts newGoogleClient to the shape the token provider
// expects, so cached clients share one HTTP client.
func clientFactory(cfg *config.Config, httpClient *http.Client) token.ClientFactory {
	return func(service string) google.Client {
		return newGoogleClient(cfg, httpClient, service)
	}
}
