// Package google provides a client for Google's legacy AuthSub and
// ClientLogin authentication endpoints.
// It submits credentials as a form POST, parses the plain text key=value
// response bodies, keeps the issued bearer token in memory, and formats
// the Authorization header for subsequent requests.
// The AuthSub side covers consent URL construction, registration of
// redirect-delivered tokens, session token exchange, revocation, and
// token metadata lookup.
// CAPTCHA challenges are surfaced to the caller, which owns the retry;
// the client never retries, refreshes, or persists anything on its own.
package google
