package google

// TokenKind identifies how the stored token was obtained, which determines
// the Authorization scheme presented to services. It is only meaningful
// while a token is present.
type TokenKind uint8

const (
	// TokenKindClientLogin marks a token issued for submitted credentials.
	TokenKindClientLogin TokenKind = iota
	// TokenKindAuthSub marks a token captured from an AuthSub redirect.
	TokenKindAuthSub
)

// String returns the protocol name of the token kind.
func (k TokenKind) String() string {
	switch k {
	case TokenKindClientLogin:
		return "ClientLogin"
	case TokenKindAuthSub:
		return "AuthSub"
	default:
		return "unknown"
	}
}

// scheme returns the Authorization value prefix for the token kind.
func (k TokenKind) scheme() string {
	if k == TokenKindAuthSub {
		return schemeAuthSub
	}

	return schemeClientLogin
}

// LoginResponse is the parsed outcome of one login attempt.
// It is returned to the caller unchanged whether the attempt succeeded or not.
type LoginResponse struct {
	// Success reports whether the attempt produced a token.
	Success bool
	// Token is the bearer token, present iff Success.
	Token string
	// ErrorCode is one of the fixed protocol error codes, present iff not Success.
	ErrorCode string
	// CaptchaToken is the challenge token to echo back through the
	// logintoken form field. Set only when ErrorCode is CaptchaRequired.
	CaptchaToken string
	// CaptchaURL locates the challenge image, usually relative to the
	// accounts path. Set only when ErrorCode is CaptchaRequired.
	CaptchaURL string
}

// IsCaptchaRequired reports whether the failed attempt demands a CAPTCHA answer.
func (r *LoginResponse) IsCaptchaRequired() bool {
	return !r.Success && r.ErrorCode == ErrorCodeCaptchaRequired
}

// ErrorDescription returns a human readable description of the failure.
func (r *LoginResponse) ErrorDescription() string {
	if r.Success {
		return ""
	}

	return ErrorCodeDescription(r.ErrorCode)
}

// TokenInfo describes a stored AuthSub token as reported by the accounts endpoints.
type TokenInfo struct {
	// Target is the account the token acts on behalf of.
	Target string
	// Scope is the service URL prefix the token is valid for.
	Scope string
	// Secure reports whether requests with this token must be signed.
	Secure bool
}
