package utils

import (
	"math"
	"mime"
	"regexp"
	"strings"

	"github.com/ogaidukov/gauth/internal/constants"
)

const (
	// ImageJPEGMimeType is the MIME type for JPEG images.
	ImageJPEGMimeType = "image/jpeg"

	// ImagePNGMimeType is the MIME type for PNG images.
	ImagePNGMimeType = "image/png"

	// ImageGIFMimeType is the MIME type for GIF images.
	ImageGIFMimeType = "image/gif"
)

// maskVisibleRunes is how many leading and trailing runes of a token survive masking.
const maskVisibleRunes = 4

// textContentTypePatterns is a slice of regular expressions that match content types
// considered to be text-based. This includes "text/*", "application/json", and
// "application/x-www-form-urlencoded".
//
//nolint:gochecknoglobals // These are immutable, pre-compiled regex patterns and used as constants.
var textContentTypePatterns = []*regexp.Regexp{
	regexp.MustCompile("^text/.+"),
	regexp.MustCompile("^application/json$"),
	regexp.MustCompile(`^application/x-www-form-urlencoded$`),
}

// SafeIntToUint8 converts an int value to an uint8 safely,
// ensuring that the value does not exceed the maximum limit of uint8.
func SafeIntToUint8(val int) uint8 {
	if val < 0 {
		return 0
	}

	if val > math.MaxUint8 {
		return math.MaxUint8
	}

	return uint8(val)
}

// SafeUint64ToInt converts a uint64 value to an int safely,
// ensuring that the value does not exceed the maximum limit of int.
func SafeUint64ToInt(val uint64) int {
	if val > math.MaxInt {
		return math.MaxInt
	}

	return int(val)
}

// MaskToken hides the middle of a token so it can appear in logs and terminal
// output without leaking the credential. Tokens too short to keep anything
// visible are masked entirely.
func MaskToken(token string) string {
	runes := []rune(token)
	if len(runes) <= maskVisibleRunes*2 {
		return strings.Repeat("*", len(runes))
	}

	return string(runes[:maskVisibleRunes]) + "..." + string(runes[len(runes)-maskVisibleRunes:])
}

// ExtensionForImageContentType maps the content type of a downloaded CAPTCHA
// challenge image to a file extension. Unknown or unparsable content types
// fall back to a generic binary extension.
func ExtensionForImageContentType(contentType string) string {
	parsedType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return constants.ExtensionBin
	}

	switch parsedType {
	case ImageJPEGMimeType:
		return constants.ExtensionJPEG
	case ImagePNGMimeType:
		return constants.ExtensionPNG
	case ImageGIFMimeType:
		return constants.ExtensionGIF
	default:
		return constants.ExtensionBin
	}
}

// IsTextContentType checks if the given content type represents a text-based format.
// It supports common text content types like "text/*", "application/json", and
// "application/x-www-form-urlencoded".
// It also checks that the charset, if present, is either "utf-8" or "us-ascii".
func IsTextContentType(contentType string) bool {
	parsedType, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}

	for _, pattern := range textContentTypePatterns {
		if !pattern.MatchString(parsedType) {
			continue
		}

		charset := strings.ToLower(params["charset"])

		return charset == "" || charset == "utf-8" || charset == "us-ascii"
	}

	return false
}
