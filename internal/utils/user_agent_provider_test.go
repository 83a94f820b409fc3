package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestNewStaticUserAgentProvider tests the NewStaticUserAgentProvider function.
func TestNewStaticUserAgentProvider(t *testing.T) {
	t.Parallel()

	userAgent := "TestAgent/1.0"
	provider := NewStaticUserAgentProvider(userAgent)

	assert.NotNil(t, provider)
	assert.Implements(t, (*UserAgentProvider)(nil), provider)
}

// TestStaticUserAgentProvider_GetUserAgent tests the GetUserAgent method.
func TestStaticUserAgentProvider_GetUserAgent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		userAgent string
	}{
		{
			name:      "empty user agent",
			userAgent: "",
		},
		{
			name:      "application source identifier",
			userAgent: "ogaidukov-gauth-1.0.0",
		},
		{
			name:      "browser style user agent",
			userAgent: "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			provider := NewStaticUserAgentProvider(tt.userAgent)
			assert.Equal(t, tt.userAgent, provider.GetUserAgent())
		})
	}
}

// TestStaticUserAgentProvider_MultipleInstances tests that multiple instances work independently.
func TestStaticUserAgentProvider_MultipleInstances(t *testing.T) {
	t.Parallel()

	provider1 := NewStaticUserAgentProvider("Agent1")
	provider2 := NewStaticUserAgentProvider("Agent2")

	assert.Equal(t, "Agent1", provider1.GetUserAgent())
	assert.Equal(t, "Agent2", provider2.GetUserAgent())
	assert.NotEqual(t, provider1.GetUserAgent(), provider2.GetUserAgent())
}
