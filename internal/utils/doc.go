// Package utils provides small helpers shared across the application:
// safe numeric conversions, token masking for log output, and content
// type classification.
package utils
