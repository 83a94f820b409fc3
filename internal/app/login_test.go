package app

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ogaidukov/gauth/internal/client/google"
	mock_google "github.com/ogaidukov/gauth/internal/client/google/mocks"
	"github.com/ogaidukov/gauth/internal/service/token"
	mock_token "github.com/ogaidukov/gauth/internal/service/token/mocks"
)

// captchaChallenge builds the rejection the login endpoint answers with when
// it wants a CAPTCHA solved.
func captchaChallenge(token, imageURL string) *google.LoginResponse {
	return &google.LoginResponse{
		ErrorCode:    google.ErrorCodeCaptchaRequired,
		CaptchaToken: token,
		CaptchaURL:   imageURL,
	}
}

// TestLoginWithChallenges tests the loginWithChallenges function
// when the credentials are accepted on the first attempt.
func TestLoginWithChallenges(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mock_google.NewMockClient(ctrl)
	mockClient.EXPECT().
		Login(gomock.Any(), "alice@example.com", "hunter2", gomock.Nil()).
		Return(&google.LoginResponse{Success: true, Token: "DQAAAGgAdk3fA5N"}, nil)

	response, err := loginWithChallenges(context.Background(), mockClient,
		"alice@example.com", "hunter2", 3,
		func(_ context.Context, _ google.Client, _ *google.LoginResponse) (string, error) {
			t.Fatal("answer func must not be called on success")
			return "", nil
		})
	require.NoError(t, err)

	assert.True(t, response.Success)
	assert.Equal(t, "DQAAAGgAdk3fA5N", response.Token)
}

// TestLoginWithChallenges_SolvesChallenge tests the loginWithChallenges
// function when the endpoint demands a CAPTCHA answer before accepting.
func TestLoginWithChallenges_SolvesChallenge(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	challenge := captchaChallenge("HiteT4b0Bk", "Captcha?ctoken=HiteT4b0Bk")

	mockClient := mock_google.NewMockClient(ctrl)
	mockClient.EXPECT().
		Login(gomock.Any(), "alice@example.com", "hunter2", gomock.Nil()).
		Return(challenge, nil)
	mockClient.EXPECT().
		Login(gomock.Any(), "alice@example.com", "hunter2", map[string]string{
			google.FieldLoginToken:   "HiteT4b0Bk",
			google.FieldLoginCaptcha: "qwerty",
		}).
		Return(&google.LoginResponse{Success: true, Token: "DQAAAGgAdk3fA5N"}, nil)

	var answerCalls int

	response, err := loginWithChallenges(context.Background(), mockClient,
		"alice@example.com", "hunter2", 3,
		func(_ context.Context, _ google.Client, got *google.LoginResponse) (string, error) {
			answerCalls++

			assert.Same(t, challenge, got)

			return "qwerty", nil
		})
	require.NoError(t, err)

	assert.True(t, response.Success)
	assert.Equal(t, 1, answerCalls)
}

// TestLoginWithChallenges_BudgetExhausted tests the loginWithChallenges
// function when the user keeps failing the CAPTCHA until the attempt budget
// runs out.
func TestLoginWithChallenges_BudgetExhausted(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mock_google.NewMockClient(ctrl)
	mockClient.EXPECT().
		Login(gomock.Any(), "alice@example.com", "hunter2", gomock.Any()).
		Return(captchaChallenge("HiteT4b0Bk", "Captcha?ctoken=HiteT4b0Bk"), nil).
		Times(2)

	var answerCalls int

	response, err := loginWithChallenges(context.Background(), mockClient,
		"alice@example.com", "hunter2", 1,
		func(_ context.Context, _ google.Client, _ *google.LoginResponse) (string, error) {
			answerCalls++

			return "wrong", nil
		})
	require.NoError(t, err)

	assert.False(t, response.Success)
	assert.True(t, response.IsCaptchaRequired())
	assert.Equal(t, 1, answerCalls)
}

// TestLoginWithChallenges_ZeroAttempts tests the loginWithChallenges function
// when no CAPTCHA attempts are allowed: the challenge is returned untouched.
func TestLoginWithChallenges_ZeroAttempts(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mock_google.NewMockClient(ctrl)
	mockClient.EXPECT().
		Login(gomock.Any(), "alice@example.com", "hunter2", gomock.Nil()).
		Return(captchaChallenge("HiteT4b0Bk", "Captcha?ctoken=HiteT4b0Bk"), nil)

	response, err := loginWithChallenges(context.Background(), mockClient,
		"alice@example.com", "hunter2", 0,
		func(_ context.Context, _ google.Client, _ *google.LoginResponse) (string, error) {
			t.Fatal("answer func must not be called with a zero budget")
			return "", nil
		})
	require.NoError(t, err)

	assert.True(t, response.IsCaptchaRequired())
}

// TestLoginWithChallenges_OtherRejection tests the loginWithChallenges
// function when the endpoint rejects the credentials outright.
func TestLoginWithChallenges_OtherRejection(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mock_google.NewMockClient(ctrl)
	mockClient.EXPECT().
		Login(gomock.Any(), "alice@example.com", "hunter2", gomock.Nil()).
		Return(&google.LoginResponse{ErrorCode: google.ErrorCodeBadAuthentication}, nil)

	response, err := loginWithChallenges(context.Background(), mockClient,
		"alice@example.com", "hunter2", 3,
		func(_ context.Context, _ google.Client, _ *google.LoginResponse) (string, error) {
			t.Fatal("answer func must not be called for non-CAPTCHA rejections")
			return "", nil
		})
	require.NoError(t, err)

	assert.False(t, response.Success)
	assert.Equal(t, google.ErrorCodeBadAuthentication, response.ErrorCode)
}

// TestLoginWithChallenges_AnswerError tests the loginWithChallenges function
// when the challenge cannot be resolved, for example because the image
// download failed.
func TestLoginWithChallenges_AnswerError(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	expectedErr := errors.New("image download failed")

	mockClient := mock_google.NewMockClient(ctrl)
	mockClient.EXPECT().
		Login(gomock.Any(), "alice@example.com", "hunter2", gomock.Nil()).
		Return(captchaChallenge("HiteT4b0Bk", "Captcha?ctoken=HiteT4b0Bk"), nil)

	response, err := loginWithChallenges(context.Background(), mockClient,
		"alice@example.com", "hunter2", 3,
		func(_ context.Context, _ google.Client, _ *google.LoginResponse) (string, error) {
			return "", expectedErr
		})
	require.ErrorIs(t, err, expectedErr)

	assert.Nil(t, response)
}

// TestCollectLoginResults tests that every requested service is logged in
// through the provider and paired with its headers.
func TestCollectLoginResults(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	calendarHeaders := map[string]string{"Authorization": "GoogleLogin auth=DQAAAGgAcalendar"}
	picasaHeaders := map[string]string{"Authorization": "GoogleLogin auth=DQAAAGgApicasa"}

	mockProvider := mock_token.NewMockProvider(ctrl)
	mockProvider.EXPECT().Headers(gomock.Any(), "cl").Return(calendarHeaders, nil)
	mockProvider.EXPECT().Headers(gomock.Any(), "lh2").Return(picasaHeaders, nil)

	results, err := collectLoginResults(context.Background(), mockProvider,
		"alice@example.com", []string{"cl", "lh2"})
	require.NoError(t, err)

	assert.Equal(t, []loginResult{
		{Service: "cl", Email: "alice@example.com", Headers: calendarHeaders},
		{Service: "lh2", Email: "alice@example.com", Headers: picasaHeaders},
	}, results)
}

// TestCollectLoginResults_Failure tests that the first rejected service stops
// the run and later services are never attempted.
func TestCollectLoginResults_Failure(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockProvider := mock_token.NewMockProvider(ctrl)
	mockProvider.EXPECT().
		Headers(gomock.Any(), "cl").
		Return(nil, token.ErrLoginRejected)

	results, err := collectLoginResults(context.Background(), mockProvider,
		"alice@example.com", []string{"cl", "lh2"})
	require.ErrorIs(t, err, token.ErrLoginRejected)

	assert.Contains(t, err.Error(), `login for service "cl" failed`)
	assert.Nil(t, results)
}

// TestDownloadCaptchaImage tests the downloadCaptchaImage function.
func TestDownloadCaptchaImage(t *testing.T) {
	t.Parallel()

	imageData := []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		w.Write(imageData) //nolint:errcheck // Test mock handler, error is not critical.
	}))
	defer server.Close()

	imagePath, err := downloadCaptchaImage(context.Background(), server.Client(), server.URL+"/accounts/Captcha")
	require.NoError(t, err)

	defer os.Remove(imagePath) //nolint:errcheck // Best-effort test cleanup.

	assert.True(t, strings.HasSuffix(imagePath, ".png"), "unexpected image path: %s", imagePath)

	savedData, err := os.ReadFile(imagePath)
	require.NoError(t, err)

	assert.Equal(t, imageData, savedData)
}

// TestDownloadCaptchaImage_UnexpectedStatus tests the downloadCaptchaImage
// function when the endpoint does not serve the image.
func TestDownloadCaptchaImage_UnexpectedStatus(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	imagePath, err := downloadCaptchaImage(context.Background(), server.Client(), server.URL+"/accounts/Captcha")
	require.ErrorIs(t, err, google.ErrUnexpectedHTTPStatus)

	assert.Empty(t, imagePath)
}

// TestLoginWithChallenges_TransportError tests the loginWithChallenges
// function when the login request itself fails.
func TestLoginWithChallenges_TransportError(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	expectedErr := errors.New("connection refused")

	mockClient := mock_google.NewMockClient(ctrl)
	mockClient.EXPECT().
		Login(gomock.Any(), "alice@example.com", "hunter2", gomock.Nil()).
		Return(nil, expectedErr)

	response, err := loginWithChallenges(context.Background(), mockClient,
		"alice@example.com", "hunter2", 3,
		func(_ context.Context, _ google.Client, _ *google.LoginResponse) (string, error) {
			t.Fatal("answer func must not be called on transport errors")
			return "", nil
		})
	require.ErrorIs(t, err, expectedErr)

	assert.Nil(t, response)
}
