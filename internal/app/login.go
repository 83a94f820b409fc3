package app

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"golang.org/x/term"

	"github.com/ogaidukov/gauth/internal/client/google"
	"github.com/ogaidukov/gauth/internal/config"
	"github.com/ogaidukov/gauth/internal/constants"
	"github.com/ogaidukov/gauth/internal/logger"
	"github.com/ogaidukov/gauth/internal/service/token"
	"github.com/ogaidukov/gauth/internal/utils"
)

// captchaImagePrefix names downloaded challenge images in the temporary directory.
const captchaImagePrefix = "gauth-captcha-"

// challengeAnswerFunc resolves one CAPTCHA challenge to the answer typed by
// the user. Implementations may download and display the challenge image.
type challengeAnswerFunc func(ctx context.Context, client google.Client, challenge *google.LoginResponse) (string, error)

// stdinReader is shared across prompts so buffered input is not lost between reads.
var stdinReader = bufio.NewReader(os.Stdin)

// ExecuteLoginCommand performs a credential login for every requested service
// code and prints the resulting authorization headers. When no service codes
// are given, the configured default service is used.
func ExecuteLoginCommand(ctx context.Context, cfg *config.Config, services []string) {
	if cfg.Email == "" {
		logger.Fatalf(ctx, "Email must be configured for credential logins")
		return
	}

	if len(services) == 0 {
		if cfg.Service == "" {
			logger.Fatalf(ctx, "No service code given and none configured")
			return
		}

		services = []string{cfg.Service}
	}

	password, err := promptPassword(cfg.Email)
	if err != nil {
		logger.Fatalf(ctx, "Failed to read password: %v", err)
		return
	}

	httpClient := newHTTPClient(cfg)

	provider, err := token.NewProvider(cfg, password,
		clientFactory(cfg, httpClient), interactiveLogin(cfg, httpClient))
	if err != nil {
		logger.Fatalf(ctx, "Failed to initialize token provider: %v", err)
		return
	}

	results, err := collectLoginResults(ctx, provider, cfg.Email, services)
	if err != nil {
		logger.Fatalf(ctx, "Login failed: %v", err)
		return
	}

	renderResult(ctx, cfg, results, func() {
		for _, result := range results {
			fmt.Printf("%s %s\n", color.CyanString("Service:"), result.Service)
			printHeaders(result.Headers)
		}
	})
}

// collectLoginResults logs in to every requested service through the provider
// and pairs each service code with its authorization headers. The first
// rejected service stops the run.
func collectLoginResults(
	ctx context.Context,
	provider token.Provider,
	email string,
	services []string,
) ([]loginResult, error) {
	results := make([]loginResult, 0, len(services))

	for _, service := range services {
		headers, err := provider.Headers(ctx, service)
		if err != nil {
			return nil, fmt.Errorf("login for service %q failed: %w", service, err)
		}

		results = append(results, loginResult{
			Service: service,
			Email:   email,
			Headers: headers,
		})
	}

	return results, nil
}

// interactiveLogin returns a login strategy that walks the CAPTCHA challenge
// loop on the terminal: each challenge image is saved to a temporary file and
// the user is asked to type the answer back.
func interactiveLogin(cfg *config.Config, httpClient *http.Client) token.LoginFunc {
	return func(ctx context.Context, client google.Client, email, password string) (*google.LoginResponse, error) {
		return loginWithChallenges(ctx, client, email, password, cfg.ParsedCaptchaAttempts,
			func(ctx context.Context, client google.Client, challenge *google.LoginResponse) (string, error) {
				return consoleChallengeAnswer(ctx, httpClient, client, challenge)
			})
	}
}

// loginWithChallenges submits the credentials and, when the endpoint responds
// with a CAPTCHA challenge, re-submits together with the user's answer until
// the attempt budget runs out. Any other rejection is returned as-is.
func loginWithChallenges(
	ctx context.Context,
	client google.Client,
	email, password string,
	attempts uint8,
	answer challengeAnswerFunc,
) (*google.LoginResponse, error) {
	var extra map[string]string

	for remaining := attempts; ; remaining-- {
		response, err := client.Login(ctx, email, password, extra)
		if err != nil {
			return nil, err
		}

		if response.Success || !response.IsCaptchaRequired() || remaining == 0 {
			return response, nil
		}

		captchaAnswer, err := answer(ctx, client, response)
		if err != nil {
			return nil, err
		}

		// The challenge token must be echoed back together with the answer.
		extra = map[string]string{
			google.FieldLoginToken:   response.CaptchaToken,
			google.FieldLoginCaptcha: captchaAnswer,
		}
	}
}

// consoleChallengeAnswer downloads the challenge image into the temporary
// directory and asks the user to type the characters it shows.
func consoleChallengeAnswer(
	ctx context.Context,
	httpClient *http.Client,
	client google.Client,
	challenge *google.LoginResponse,
) (string, error) {
	imagePath, err := downloadCaptchaImage(ctx, httpClient, client.CaptchaImageURL(challenge.CaptchaURL))
	if err != nil {
		return "", err
	}

	logger.Infof(ctx, "CAPTCHA challenge received, image saved to %s", imagePath)

	return promptLine("Enter the characters from the CAPTCHA image: ")
}

// downloadCaptchaImage fetches the challenge image and stores it under a
// unique name, picking the extension from the response content type.
func downloadCaptchaImage(ctx context.Context, httpClient *http.Client, imageURL string) (string, error) {
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, imageURL, http.NoBody)
	if err != nil {
		return "", fmt.Errorf("failed to build CAPTCHA image request: %w", err)
	}

	response, err := httpClient.Do(request)
	if err != nil {
		return "", fmt.Errorf("failed to download CAPTCHA image: %w", err)
	}

	defer response.Body.Close() //nolint:errcheck // Error on close is not critical here.

	if response.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: %d", google.ErrUnexpectedHTTPStatus, response.StatusCode)
	}

	imageData, err := io.ReadAll(response.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read CAPTCHA image: %w", err)
	}

	extension := utils.ExtensionForImageContentType(response.Header.Get("Content-Type"))
	imagePath := filepath.Join(os.TempDir(), captchaImagePrefix+uuid.New().String()+extension)

	if err = os.WriteFile(imagePath, imageData, constants.DefaultFilePermissions); err != nil {
		return "", fmt.Errorf("failed to save CAPTCHA image: %w", err)
	}

	return imagePath, nil
}

// promptPassword reads the account password without echoing it when stdin is
// an interactive terminal. Non-interactive input falls back to a plain line read.
func promptPassword(email string) (string, error) {
	fmt.Fprintf(os.Stderr, "Password for %s: ", email)

	if term.IsTerminal(int(os.Stdin.Fd())) {
		passwordBytes, err := term.ReadPassword(int(os.Stdin.Fd()))

		fmt.Fprintln(os.Stderr)

		if err != nil {
			return "", fmt.Errorf("failed to read password: %w", err)
		}

		return string(passwordBytes), nil
	}

	return readLine()
}

// promptLine prints a prompt on stderr and reads one line from stdin.
func promptLine(prompt string) (string, error) {
	fmt.Fprint(os.Stderr, prompt)

	return readLine()
}

// readLine reads a single line from stdin and trims surrounding whitespace.
// A final line without a trailing newline is still accepted.
func readLine() (string, error) {
	line, err := stdinReader.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("failed to read input: %w", err)
	}

	line = strings.TrimSpace(line)
	if line == "" && err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}

	return line, nil
}
