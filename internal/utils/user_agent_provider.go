package utils

//go:generate $MOCKGEN -source=user_agent_provider.go -destination=mocks/user_agent_provider_mock.go

// UserAgentProvider is an interface that defines a method for retrieving a User-Agent string.
type UserAgentProvider interface {
	// GetUserAgent returns a User-Agent string.
	GetUserAgent() string
}

// StaticUserAgentProvider is a basic implementation of the UserAgentProvider interface.
// It provides a fixed User-Agent string that is set during initialization.
// The accounts endpoints do not care about browser fingerprints, so a single
// identifier tied to the configured application source is enough.
type StaticUserAgentProvider struct {
	// userAgent is the User-Agent string to return.
	userAgent string
}

// NewStaticUserAgentProvider creates and returns a new instance of StaticUserAgentProvider.
func NewStaticUserAgentProvider(userAgent string) UserAgentProvider {
	return &StaticUserAgentProvider{userAgent: userAgent}
}

// GetUserAgent returns a User-Agent string.
func (p *StaticUserAgentProvider) GetUserAgent() string {
	return p.userAgent
}
