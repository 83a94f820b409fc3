package google

import (
	"net/http"
	"strings"
)

// parseLoginResponse interprets a login endpoint response.
// A 200 carries the token in an Auth line; any other status carries an error
// code in the same line format, with CAPTCHA challenge fields alongside when
// the code demands one. Bodies that fit neither shape produce a generic failure.
func parseLoginResponse(statusCode int, body string) *LoginResponse {
	values := parseKeyValueBody(body)

	if statusCode == http.StatusOK {
		token := values[responseKeyAuth]
		if token == "" {
			return &LoginResponse{ErrorCode: ErrorCodeUnknown}
		}

		return &LoginResponse{Success: true, Token: token}
	}

	errorCode := values[responseKeyError]
	if errorCode == "" {
		errorCode = ErrorCodeUnknown
	}

	response := &LoginResponse{ErrorCode: errorCode}
	if errorCode == ErrorCodeCaptchaRequired {
		response.CaptchaToken = values[responseKeyCaptchaToken]
		response.CaptchaURL = values[responseKeyCaptchaURL]
	}

	return response
}

// parseTokenInfo interprets a token metadata response body.
func parseTokenInfo(body string) *TokenInfo {
	values := parseKeyValueBody(body)

	return &TokenInfo{
		Target: values[responseKeyTarget],
		Scope:  values[responseKeyScope],
		Secure: parseBoolFlag(values[responseKeySecure]),
	}
}

// parseKeyValueBody splits a plain text body into its Key=Value lines.
// The split is on the first separator, so values may themselves contain '='.
// Empty lines and lines without a separator are ignored; keys are case-sensitive.
func parseKeyValueBody(body string) map[string]string {
	values := make(map[string]string)

	for _, line := range strings.Split(body, "\n") {
		line = strings.TrimRight(line, "\r")
		if line == "" {
			continue
		}

		key, value, found := strings.Cut(line, "=")
		if !found || key == "" {
			continue
		}

		values[key] = value
	}

	return values
}

// parseBoolFlag interprets the loose boolean spellings the endpoints use.
func parseBoolFlag(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "true", "1", "yes":
		return true
	default:
		return false
	}
}

// boolFlagValue renders a boolean the way the consent page expects it.
func boolFlagValue(value bool) string {
	if value {
		return "1"
	}

	return "0"
}
