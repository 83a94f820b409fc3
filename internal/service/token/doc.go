// Package token hands out per-service Authorization headers.
//
// Tokens are scoped to a single service code, so an application talking
// to several services needs one session per code. The provider logs in
// lazily and keeps authenticated sessions in a bounded in-memory LRU.
package token
