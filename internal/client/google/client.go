package google

//go:generate $MOCKGEN -source=client.go -destination=mocks/client_mock.go

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/ogaidukov/gauth/internal/logger"
	"github.com/ogaidukov/gauth/internal/utils"
)

// Client defines the interface for talking to the accounts endpoints.
type Client interface {
	// AuthHeaders returns the Authorization header for the stored token,
	// or an empty map when unauthenticated.
	AuthHeaders() map[string]string
	// AuthSubRequestURL builds the consent page URL that starts the AuthSub flow.
	AuthSubRequestURL(next, scope string, session, secure bool) (string, error)
	// CaptchaImageURL resolves the challenge image URL of a login response.
	CaptchaImageURL(challengeURL string) string
	// ExchangeSessionToken trades the stored single-use AuthSub token for a
	// long-lived session token and stores the replacement.
	ExchangeSessionToken(ctx context.Context) (string, error)
	// GetBaseURL returns the root of the accounts endpoints.
	GetBaseURL() string
	// GetEmail returns the username associated with the current session.
	GetEmail() string
	// IsAuthenticated reports whether a token is present.
	IsAuthenticated() bool
	// Login submits credentials and returns the parsed response whether or
	// not the attempt succeeded. Callers must check the Success flag.
	Login(ctx context.Context, email, password string, extra map[string]string) (*LoginResponse, error)
	// RegisterToken records a token obtained through the AuthSub redirect flow.
	RegisterToken(email, token string)
	// RevokeToken invalidates the stored AuthSub token server-side and
	// clears the session.
	RevokeToken(ctx context.Context) error
	// TokenInfo fetches metadata about the stored AuthSub token.
	TokenInfo(ctx context.Context) (*TokenInfo, error)
}

// Config holds the client configuration.
// Zero values take the documented defaults, so the zero Config is usable.
type Config struct {
	// BaseURL is the root of the accounts endpoints. Defaults to DefaultBaseURL.
	BaseURL string
	// Service is the service code a login token is requested for (e.g. "cl").
	Service string
	// Source identifies the application to the endpoints, in the documented
	// "companyName-applicationName-versionID" form.
	Source string
	// AccountType restricts which account kinds may authenticate.
	// Defaults to DefaultAccountType.
	AccountType string
	// HTTPClient issues the requests. Defaults to http.DefaultClient.
	// Transport failures propagate to callers untranslated.
	HTTPClient *http.Client
	// LoginsPerMinute throttles Login calls client-side; zero disables the
	// throttle. Hammering the login endpoint trips the CAPTCHA gate quickly.
	LoginsPerMinute int
}

// ClientImpl implements the Client interface for the accounts endpoints.
// Session state is owned by the single client instance; methods are not
// safe for concurrent use.
type ClientImpl struct {
	// cfg contains the client configuration after defaults were applied.
	cfg Config
	// baseURL is the normalized root for building endpoint URLs.
	baseURL string
	// httpClient is the HTTP client for making requests.
	httpClient *http.Client
	// loginLimiter paces credential logins, nil when throttling is disabled.
	loginLimiter *rate.Limiter
	// email is the username of the current session, empty when unauthenticated.
	email string
	// token is the bearer token, empty when unauthenticated.
	token string
	// tokenKind records how the token was obtained, meaningful only with a token.
	tokenKind TokenKind
}

// NewClient creates and returns a new instance of ClientImpl.
// Construction always succeeds: missing configuration takes defaults and
// the session starts empty.
func NewClient(cfg Config) Client {
	baseURL := strings.TrimSpace(cfg.BaseURL)
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	if cfg.AccountType == "" {
		cfg.AccountType = DefaultAccountType
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	var loginLimiter *rate.Limiter
	if cfg.LoginsPerMinute > 0 {
		loginLimiter = rate.NewLimiter(rate.Every(time.Minute/time.Duration(cfg.LoginsPerMinute)), 1)
	}

	return &ClientImpl{
		cfg:          cfg,
		baseURL:      strings.TrimRight(baseURL, "/"),
		httpClient:   httpClient,
		loginLimiter: loginLimiter,
	}
}

// AuthHeaders returns the Authorization header for the stored token.
// Unauthenticated clients get an empty map, never nil.
func (c *ClientImpl) AuthHeaders() map[string]string {
	if !c.IsAuthenticated() {
		return map[string]string{}
	}

	return map[string]string{
		authorizationHeader: c.tokenKind.scheme() + "=" + c.token,
	}
}

// AuthSubRequestURL builds the consent page URL that starts the AuthSub flow.
// The next URL receives the single-use token as a query parameter once the
// user approves access.
func (c *ClientImpl) AuthSubRequestURL(next, scope string, session, secure bool) (string, error) {
	if strings.TrimSpace(next) == "" {
		return "", ErrMissingNextURL
	}

	if strings.TrimSpace(scope) == "" {
		return "", ErrMissingScope
	}

	route, err := url.JoinPath(c.baseURL, authSubRequestURI)
	if err != nil {
		return "", err
	}

	query := url.Values{}
	query.Set("next", next)
	query.Set("scope", scope)
	query.Set("session", boolFlagValue(session))
	query.Set("secure", boolFlagValue(secure))

	return route + "?" + query.Encode(), nil
}

// CaptchaImageURL resolves the challenge image URL of a login response.
// The endpoint reports the URL relative to the accounts path; absolute URLs
// pass through unchanged, and unparsable values are returned as is.
func (c *ClientImpl) CaptchaImageURL(challengeURL string) string {
	if challengeURL == "" {
		return ""
	}

	base, err := url.Parse(c.baseURL + "/" + captchaURIPrefix)
	if err != nil {
		return challengeURL
	}

	reference, err := url.Parse(challengeURL)
	if err != nil {
		return challengeURL
	}

	return base.ResolveReference(reference).String()
}

// ExchangeSessionToken trades the stored single-use AuthSub token for a
// long-lived session token. The replacement token is stored in place of the
// single-use one and also returned.
func (c *ClientImpl) ExchangeSessionToken(ctx context.Context) (string, error) {
	if err := c.requireAuthSubToken(); err != nil {
		return "", err
	}

	statusCode, body, err := c.fetchAuthSub(ctx, authSubSessionTokenURI)
	if err != nil {
		return "", err
	}

	if statusCode != http.StatusOK {
		return "", fmt.Errorf("%w: %d", ErrUnexpectedHTTPStatus, statusCode)
	}

	sessionToken := parseKeyValueBody(body)[responseKeyToken]
	if sessionToken == "" {
		return "", ErrNoSessionToken
	}

	c.token = sessionToken

	logger.DebugKV(ctx, "Exchanged single-use token for a session token",
		"email", c.email, "token", utils.MaskToken(sessionToken))

	return sessionToken, nil
}

// GetBaseURL returns the root of the accounts endpoints.
func (c *ClientImpl) GetBaseURL() string {
	return c.baseURL
}

// GetEmail returns the username associated with the current session.
func (c *ClientImpl) GetEmail() string {
	return c.email
}

// IsAuthenticated reports whether a token is present.
func (c *ClientImpl) IsAuthenticated() bool {
	return c.token != ""
}

// Login submits credentials to the login endpoint and returns the parsed
// response whether or not the attempt succeeded; callers must check the
// Success flag. On success the token and username are stored. On failure the
// session is cleared, so a client never keeps presenting a stale token after
// a rejected re-login. Nothing is retried here: CAPTCHA handling belongs to
// the caller, which re-invokes Login with the challenge fields in extra.
func (c *ClientImpl) Login(
	ctx context.Context,
	email, password string,
	extra map[string]string,
) (*LoginResponse, error) {
	if c.loginLimiter != nil {
		if err := c.loginLimiter.Wait(ctx); err != nil {
			return nil, err
		}
	}

	form := url.Values{}
	form.Set(fieldEmail, email)
	form.Set(fieldPassword, password)
	form.Set(fieldService, c.cfg.Service)
	form.Set(fieldSource, c.cfg.Source)
	form.Set(fieldAccountType, c.cfg.AccountType)

	// Caller-supplied fields are merged last so overrides win.
	for key, value := range extra {
		form.Set(key, value)
	}

	route, err := url.JoinPath(c.baseURL, clientLoginURI)
	if err != nil {
		return nil, err
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, route, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}

	request.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	response, err := c.httpClient.Do(request)
	if err != nil {
		return nil, err
	}

	defer response.Body.Close() //nolint:errcheck // Error on close is not critical here.

	body, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, err
	}

	loginResponse := parseLoginResponse(response.StatusCode, string(body))
	if loginResponse.Success {
		c.email = email
		c.token = loginResponse.Token
		c.tokenKind = TokenKindClientLogin

		logger.DebugKV(ctx, "Login succeeded",
			"email", email, "service", c.cfg.Service, "token", utils.MaskToken(c.token))
	} else {
		c.clearSession()

		logger.DebugKV(ctx, "Login failed",
			"email", email, "service", c.cfg.Service, "error_code", loginResponse.ErrorCode)
	}

	return loginResponse, nil
}

// RegisterToken records a token obtained through the AuthSub redirect flow.
// It always succeeds and performs no validation; a bad token simply fails at
// the first service that sees it.
func (c *ClientImpl) RegisterToken(email, token string) {
	c.email = email
	c.token = token
	c.tokenKind = TokenKindAuthSub
}

// RevokeToken invalidates the stored AuthSub token server-side and clears
// the session.
func (c *ClientImpl) RevokeToken(ctx context.Context) error {
	if err := c.requireAuthSubToken(); err != nil {
		return err
	}

	statusCode, _, err := c.fetchAuthSub(ctx, authSubRevokeTokenURI)
	if err != nil {
		return err
	}

	if statusCode != http.StatusOK {
		return fmt.Errorf("%w: %d", ErrUnexpectedHTTPStatus, statusCode)
	}

	logger.DebugKV(ctx, "Revoked AuthSub token", "email", c.email)

	c.clearSession()

	return nil
}

// TokenInfo fetches metadata about the stored AuthSub token.
func (c *ClientImpl) TokenInfo(ctx context.Context) (*TokenInfo, error) {
	if err := c.requireAuthSubToken(); err != nil {
		return nil, err
	}

	statusCode, body, err := c.fetchAuthSub(ctx, authSubTokenInfoURI)
	if err != nil {
		return nil, err
	}

	if statusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %d", ErrUnexpectedHTTPStatus, statusCode)
	}

	return parseTokenInfo(body), nil
}

// requireAuthSubToken guards the operations that only make sense with a
// redirect-derived token.
func (c *ClientImpl) requireAuthSubToken() error {
	if !c.IsAuthenticated() {
		return ErrNotAuthenticated
	}

	if c.tokenKind != TokenKindAuthSub {
		return ErrNotAuthSubToken
	}

	return nil
}

// clearSession empties the session state.
func (c *ClientImpl) clearSession() {
	c.email = ""
	c.token = ""
	c.tokenKind = TokenKindClientLogin
}

// fetchAuthSub issues an authorized GET to one of the AuthSub management
// endpoints and returns the status code and raw body.
func (c *ClientImpl) fetchAuthSub(ctx context.Context, uri string) (int, string, error) {
	route, err := url.JoinPath(c.baseURL, uri)
	if err != nil {
		return 0, "", err
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, route, http.NoBody)
	if err != nil {
		return 0, "", err
	}

	for key, value := range c.AuthHeaders() {
		request.Header.Set(key, value)
	}

	response, err := c.httpClient.Do(request)
	if err != nil {
		return 0, "", err
	}

	defer response.Body.Close() //nolint:errcheck // Error on close is not critical here.

	body, err := io.ReadAll(response.Body)
	if err != nil {
		return 0, "", err
	}

	return response.StatusCode, string(body), nil
}
