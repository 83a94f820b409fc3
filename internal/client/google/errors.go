package google

import "errors"

// Static error definitions for better error handling.
// Ordinary authentication failures are not errors: they come back inside
// the LoginResponse and callers must check its Success flag.
var (
	// ErrNotAuthenticated indicates an operation that needs a stored token was
	// called on an unauthenticated client.
	ErrNotAuthenticated = errors.New("not authenticated")
	// ErrNotAuthSubToken indicates an AuthSub-only operation was called while
	// the stored token came from a credential login.
	ErrNotAuthSubToken = errors.New("operation requires an AuthSub token")
	// ErrUnexpectedHTTPStatus indicates an unexpected HTTP status code was received.
	ErrUnexpectedHTTPStatus = errors.New("unexpected HTTP status")
	// ErrNoSessionToken indicates the exchange endpoint answered without a token.
	ErrNoSessionToken = errors.New("no session token in response")
	// ErrMissingNextURL indicates the AuthSub consent URL was requested without
	// a redirect target.
	ErrMissingNextURL = errors.New("next URL cannot be empty")
	// ErrMissingScope indicates the AuthSub consent URL was requested without a scope.
	ErrMissingScope = errors.New("scope cannot be empty")
)
