package google

const (
	// DefaultBaseURL is the root of the production accounts endpoints.
	DefaultBaseURL = "https://www.google.com"

	// DefaultAccountType is used when the configuration does not name one.
	DefaultAccountType = AccountTypeHostedOrGoogle
)

// Account type values accepted by the login endpoint.
const (
	// AccountTypeGoogle restricts authentication to regular Google accounts.
	AccountTypeGoogle = "GOOGLE"
	// AccountTypeHosted restricts authentication to hosted (Google Apps) accounts.
	AccountTypeHosted = "HOSTED"
	// AccountTypeHostedOrGoogle tries the hosted account first and falls back
	// to the regular Google account.
	AccountTypeHostedOrGoogle = "HOSTED_OR_GOOGLE"
)

const (
	// clientLoginURI is the URI path for the credential login endpoint.
	clientLoginURI = "accounts/ClientLogin"
	// authSubRequestURI is the URI path for the AuthSub consent page.
	authSubRequestURI = "accounts/AuthSubRequest"
	// authSubSessionTokenURI is the URI path for the session token exchange endpoint.
	authSubSessionTokenURI = "accounts/AuthSubSessionToken"
	// authSubRevokeTokenURI is the URI path for the token revocation endpoint.
	authSubRevokeTokenURI = "accounts/AuthSubRevokeToken"
	// authSubTokenInfoURI is the URI path for the token metadata endpoint.
	authSubTokenInfoURI = "accounts/AuthSubTokenInfo"
	// captchaURIPrefix is the URI path that relative CAPTCHA image URLs resolve against.
	captchaURIPrefix = "accounts/"
)

// Form fields of the login request.
const (
	fieldEmail       = "Email"
	fieldPassword    = "Passwd"
	fieldService     = "service"
	fieldSource      = "source"
	fieldAccountType = "accountType"

	// FieldLoginToken echoes the CaptchaToken of a challenge back to the endpoint.
	FieldLoginToken = "logintoken"
	// FieldLoginCaptcha carries the user's answer to the CAPTCHA challenge.
	FieldLoginCaptcha = "logincaptcha"
)

// Keys recognized in response bodies.
const (
	responseKeyAuth         = "Auth"
	responseKeyError        = "Error"
	responseKeyCaptchaToken = "CaptchaToken"
	responseKeyCaptchaURL   = "CaptchaUrl"
	responseKeyToken        = "Token"
	responseKeyTarget       = "Target"
	responseKeyScope        = "Scope"
	responseKeySecure       = "Secure"
)

// Error codes returned by the login endpoint.
const (
	// ErrorCodeBadAuthentication means the username or password was not recognized.
	ErrorCodeBadAuthentication = "BadAuthentication"
	// ErrorCodeNotVerified means the account email address has not been verified.
	ErrorCodeNotVerified = "NotVerified"
	// ErrorCodeTermsNotAgreed means the user has not agreed to the terms of service.
	ErrorCodeTermsNotAgreed = "TermsNotAgreed"
	// ErrorCodeCaptchaRequired means the endpoint demands a CAPTCHA answer before
	// it will consider the credentials again.
	ErrorCodeCaptchaRequired = "CaptchaRequired"
	// ErrorCodeUnknown means the request was invalid, malformed, or failed for an
	// unspecified reason. Unparsable response bodies map here as well.
	ErrorCodeUnknown = "Unknown"
	// ErrorCodeAccountDeleted means the user account has been deleted.
	ErrorCodeAccountDeleted = "AccountDeleted"
	// ErrorCodeAccountDisabled means the user account has been disabled.
	ErrorCodeAccountDisabled = "AccountDisabled"
	// ErrorCodeServiceDisabled means the account's access to this service has been disabled.
	ErrorCodeServiceDisabled = "ServiceDisabled"
	// ErrorCodeServiceUnavailable means the service is temporarily unavailable.
	ErrorCodeServiceUnavailable = "ServiceUnavailable"
)

// Authorization header formatting.
const (
	authorizationHeader = "Authorization"
	schemeClientLogin   = "GoogleLogin auth"
	schemeAuthSub       = "AuthSub token"
)

//nolint:gochecknoglobals // This is an immutable lookup table used as a constant.
var errorCodeDescriptions = map[string]string{
	ErrorCodeBadAuthentication:  "username or password not recognized",
	ErrorCodeNotVerified:        "account email address not verified",
	ErrorCodeTermsNotAgreed:     "terms of service not agreed to",
	ErrorCodeCaptchaRequired:    "a CAPTCHA answer is required",
	ErrorCodeUnknown:            "invalid or malformed request",
	ErrorCodeAccountDeleted:     "account has been deleted",
	ErrorCodeAccountDisabled:    "account has been disabled",
	ErrorCodeServiceDisabled:    "access to this service is disabled for the account",
	ErrorCodeServiceUnavailable: "service temporarily unavailable, try again later",
}

// ErrorCodeDescription returns a human readable description of a login error code.
// Unknown codes are returned as is.
func ErrorCodeDescription(code string) string {
	if description, ok := errorCodeDescriptions[code]; ok {
		return description
	}

	return code
}

// IsValidAccountType reports whether the value is part of the protocol vocabulary.
func IsValidAccountType(accountType string) bool {
	switch accountType {
	case AccountTypeGoogle, AccountTypeHosted, AccountTypeHostedOrGoogle:
		return true
	default:
		return false
	}
}

// AccountTypes lists the account type values accepted by the login endpoint.
func AccountTypes() []string {
	return []string{AccountTypeGoogle, AccountTypeHosted, AccountTypeHostedOrGoogle}
}
