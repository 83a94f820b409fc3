// Package auth provides browser-based capture of single-use tokens.
//
// The consent flow requires a real user to sign in and approve access,
// so this package drives a visible browser via go-rod: it opens the
// consent page, waits for the user to grant access, and pulls the token
// off the redirect URL the consent screen sends the browser to.
package auth
