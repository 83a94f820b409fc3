package token

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ogaidukov/gauth/internal/client/google"
	mock_google "github.com/ogaidukov/gauth/internal/client/google/mocks"
	"github.com/ogaidukov/gauth/internal/config"
)

// testProviderConfig returns a minimal configuration for provider tests.
func testProviderConfig() *config.Config {
	return &config.Config{
		Email:          "alice@example.com",
		TokenCacheSize: 4,
	}
}

// TestNewProvider tests the NewProvider function.
func TestNewProvider(t *testing.T) {
	t.Parallel()

	t.Run("nil factory takes the default", func(t *testing.T) {
		t.Parallel()

		provider, err := NewProvider(testProviderConfig(), "hunter2", nil, nil)

		require.NoError(t, err)
		assert.NotNil(t, provider)
		assert.NotNil(t, provider.factory)
	})

	t.Run("invalid cache size", func(t *testing.T) {
		t.Parallel()

		cfg := testProviderConfig()
		cfg.TokenCacheSize = 0

		provider, err := NewProvider(cfg, "hunter2", nil, nil)

		require.Error(t, err)
		assert.Nil(t, provider)
	})
}

// TestProviderImpl_Headers tests that a session is established once and
// served from the cache afterwards.
func TestProviderImpl_Headers(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	mockClient := mock_google.NewMockClient(ctrl)

	headers := map[string]string{"Authorization": "GoogleLogin auth=DQAAAGgAdk3fA5N"}

	mockClient.EXPECT().
		Login(gomock.Any(), "alice@example.com", "hunter2", nil).
		Return(&google.LoginResponse{Success: true, Token: "DQAAAGgAdk3fA5N"}, nil)
	mockClient.EXPECT().IsAuthenticated().Return(true)
	mockClient.EXPECT().AuthHeaders().Return(headers).Times(2)

	factoryCalls := 0
	provider, err := NewProvider(testProviderConfig(), "hunter2", func(service string) google.Client {
		factoryCalls++
		assert.Equal(t, "cl", service)

		return mockClient
	}, nil)
	require.NoError(t, err)

	got, err := provider.Headers(context.Background(), "cl")
	require.NoError(t, err)
	assert.Equal(t, headers, got)

	got, err = provider.Headers(context.Background(), "cl")
	require.NoError(t, err)
	assert.Equal(t, headers, got)

	assert.Equal(t, 1, factoryCalls)
}

// TestProviderImpl_Headers_RejectedLogin tests that a rejected login is
// reported and not cached.
func TestProviderImpl_Headers_RejectedLogin(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	mockClient := mock_google.NewMockClient(ctrl)

	mockClient.EXPECT().
		Login(gomock.Any(), "alice@example.com", "wrong", nil).
		Return(&google.LoginResponse{ErrorCode: google.ErrorCodeBadAuthentication}, nil).
		Times(2)

	provider, err := NewProvider(testProviderConfig(), "wrong", func(string) google.Client {
		return mockClient
	}, nil)
	require.NoError(t, err)

	_, err = provider.Headers(context.Background(), "cl")
	require.ErrorIs(t, err, ErrLoginRejected)
	assert.Contains(t, err.Error(), "username or password not recognized")

	// A second call logs in again instead of serving the failure from cache.
	_, err = provider.Headers(context.Background(), "cl")
	require.ErrorIs(t, err, ErrLoginRejected)
}

// TestProviderImpl_Headers_TransportError tests that transport failures
// propagate untranslated.
func TestProviderImpl_Headers_TransportError(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	mockClient := mock_google.NewMockClient(ctrl)

	transportErr := errors.New("connection refused")

	mockClient.EXPECT().
		Login(gomock.Any(), "alice@example.com", "hunter2", nil).
		Return(nil, transportErr)

	provider, err := NewProvider(testProviderConfig(), "hunter2", func(string) google.Client {
		return mockClient
	}, nil)
	require.NoError(t, err)

	_, err = provider.Headers(context.Background(), "cl")
	require.ErrorIs(t, err, transportErr)
}

// TestProviderImpl_Headers_StaleSession tests that a cached client that
// lost its session is replaced with a fresh login.
func TestProviderImpl_Headers_StaleSession(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	staleClient := mock_google.NewMockClient(ctrl)
	freshClient := mock_google.NewMockClient(ctrl)

	staleClient.EXPECT().
		Login(gomock.Any(), "alice@example.com", "hunter2", nil).
		Return(&google.LoginResponse{Success: true, Token: "DQAAAGgAdk3fA5N"}, nil)
	staleClient.EXPECT().
		AuthHeaders().
		Return(map[string]string{"Authorization": "GoogleLogin auth=DQAAAGgAdk3fA5N"})
	staleClient.EXPECT().IsAuthenticated().Return(false)

	freshClient.EXPECT().
		Login(gomock.Any(), "alice@example.com", "hunter2", nil).
		Return(&google.LoginResponse{Success: true, Token: "DQAAAGgAnew"}, nil)
	freshClient.EXPECT().
		AuthHeaders().
		Return(map[string]string{"Authorization": "GoogleLogin auth=DQAAAGgAnew"})

	clients := []google.Client{staleClient, freshClient}
	factoryCalls := 0
	provider, err := NewProvider(testProviderConfig(), "hunter2", func(string) google.Client {
		client := clients[factoryCalls]
		factoryCalls++

		return client
	}, nil)
	require.NoError(t, err)

	got, err := provider.Headers(context.Background(), "cl")
	require.NoError(t, err)
	assert.Equal(t, "GoogleLogin auth=DQAAAGgAdk3fA5N", got["Authorization"])

	got, err = provider.Headers(context.Background(), "cl")
	require.NoError(t, err)
	assert.Equal(t, "GoogleLogin auth=DQAAAGgAnew", got["Authorization"])

	assert.Equal(t, 2, factoryCalls)
}

// TestProviderImpl_Invalidate tests that an invalidated service logs in again.
func TestProviderImpl_Invalidate(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	mockClient := mock_google.NewMockClient(ctrl)

	mockClient.EXPECT().
		Login(gomock.Any(), "alice@example.com", "hunter2", nil).
		Return(&google.LoginResponse{Success: true, Token: "DQAAAGgAdk3fA5N"}, nil).
		Times(2)
	mockClient.EXPECT().
		AuthHeaders().
		Return(map[string]string{"Authorization": "GoogleLogin auth=DQAAAGgAdk3fA5N"}).
		Times(2)

	provider, err := NewProvider(testProviderConfig(), "hunter2", func(string) google.Client {
		return mockClient
	}, nil)
	require.NoError(t, err)

	_, err = provider.Headers(context.Background(), "cl")
	require.NoError(t, err)

	provider.Invalidate("cl")

	_, err = provider.Headers(context.Background(), "cl")
	require.NoError(t, err)
}

// TestProviderImpl_Headers_PerService tests that sessions are scoped to
// their service code.
func TestProviderImpl_Headers_PerService(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)

	newSuccessfulClient := func(token string) *mock_google.MockClient {
		mockClient := mock_google.NewMockClient(ctrl)
		mockClient.EXPECT().
			Login(gomock.Any(), "alice@example.com", "hunter2", nil).
			Return(&google.LoginResponse{Success: true, Token: token}, nil)
		mockClient.EXPECT().
			AuthHeaders().
			Return(map[string]string{"Authorization": "GoogleLogin auth=" + token})

		return mockClient
	}

	clientsByService := map[string]google.Client{
		"cl":   newSuccessfulClient("DQAAAGgAcalendar"),
		"wise": newSuccessfulClient("DQAAAGgAsheets"),
	}

	provider, err := NewProvider(testProviderConfig(), "hunter2", func(service string) google.Client {
		return clientsByService[service]
	}, nil)
	require.NoError(t, err)

	calendarHeaders, err := provider.Headers(context.Background(), "cl")
	require.NoError(t, err)
	assert.Equal(t, "GoogleLogin auth=DQAAAGgAcalendar", calendarHeaders["Authorization"])

	sheetsHeaders, err := provider.Headers(context.Background(), "wise")
	require.NoError(t, err)
	assert.Equal(t, "GoogleLogin auth=DQAAAGgAsheets", sheetsHeaders["Authorization"])
}

// TestProviderImpl_Headers_CustomLogin tests that a supplied login function
// replaces the plain credential submission.
func TestProviderImpl_Headers_CustomLogin(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	mockClient := mock_google.NewMockClient(ctrl)

	mockClient.EXPECT().
		AuthHeaders().
		Return(map[string]string{"Authorization": "GoogleLogin auth=DQAAAGgAdk3fA5N"})

	loginCalls := 0
	login := func(_ context.Context, client google.Client, email, password string) (*google.LoginResponse, error) {
		loginCalls++
		assert.Same(t, mockClient, client)
		assert.Equal(t, "alice@example.com", email)
		assert.Equal(t, "hunter2", password)

		return &google.LoginResponse{Success: true, Token: "DQAAAGgAdk3fA5N"}, nil
	}

	provider, err := NewProvider(testProviderConfig(), "hunter2", func(string) google.Client {
		return mockClient
	}, login)
	require.NoError(t, err)

	headers, err := provider.Headers(context.Background(), "cl")
	require.NoError(t, err)
	assert.Equal(t, "GoogleLogin auth=DQAAAGgAdk3fA5N", headers["Authorization"])
	assert.Equal(t, 1, loginCalls)
}
