package http

import (
	"errors"
	"net/http"
	"net/http/httputil"
	"regexp"
	"time"

	"github.com/ogaidukov/gauth/internal/config"
	"github.com/ogaidukov/gauth/internal/logger"
	"github.com/ogaidukov/gauth/internal/utils"
)

// LogTransport is a custom http.RoundTripper that logs HTTP requests and responses.
// It wraps another http.RoundTripper and logs debug information for each request/response cycle.
// Credentials never reach the log: submitted password and CAPTCHA form fields,
// Authorization headers, and token lines in accounts responses are blanked before dumping.
type LogTransport struct {
	// next is the underlying HTTP round tripper.
	next http.RoundTripper
	// maxLogLength is the maximum length of logged request/response data.
	maxLogLength uint64
}

// Static error definitions for better error handling.
var (
	// ErrNilRequest indicates that the HTTP request is nil.
	ErrNilRequest = errors.New("request is nil")
)

//nolint:gochecknoglobals // These are immutable, pre-compiled regex patterns and used as constants.
var (
	// secretFormFieldsPattern matches form fields whose values must not be logged.
	secretFormFieldsPattern = regexp.MustCompile(`(Passwd|logincaptcha)=[^&\r\n]*`)

	// authorizationHeaderPattern matches the Authorization header line in a request dump.
	authorizationHeaderPattern = regexp.MustCompile(`(?mi)^(authorization:)[^\r\n]*`)

	// tokenResponseLinesPattern matches token-carrying lines in an accounts response body.
	tokenResponseLinesPattern = regexp.MustCompile(`(?m)^(Auth|Token|SID|LSID)=[^\r\n]*`)
)

// NewLogTransport creates and returns a new instance of LogTransport.
// If maxLogLength is 0, it defaults to config.DefaultMaxLogLength.
func NewLogTransport(next http.RoundTripper, maxLogLength uint64) http.RoundTripper {
	if maxLogLength == 0 {
		maxLogLength = config.DefaultMaxLogLength
	}

	return &LogTransport{
		next:         next,
		maxLogLength: maxLogLength,
	}
}

// RoundTrip executes a single HTTP transaction and logs the request and response.
// It implements the http.RoundTripper interface.
func (t *LogTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req == nil {
		return nil, ErrNilRequest
	}

	// Skip logging if the logger is not at debug level.
	if !logger.IsDebugLevel() {
		return t.next.RoundTrip(req)
	}

	ctx := req.Context()

	requestDump := t.dumpRequest(req)

	// Record the start time to measure the duration of the request.
	startTime := time.Now()

	// Forward the request to the underlying RoundTripper.
	resp, err := t.next.RoundTrip(req)

	// Calculate the duration of the request.
	duration := time.Since(startTime)

	if err != nil {
		logger.Debugf(ctx, "Request failed: %s %s | Error: %v", req.Method, req.URL.String(), err)

		return nil, err
	}

	responseDump := t.dumpResponse(resp)

	logger.Debugf(ctx, "%s %s [%d] %s\nRequest: %s\nResponse: %s",
		req.Method, req.URL.Path, resp.StatusCode, duration, requestDump, responseDump)

	return resp, nil
}

func (t *LogTransport) dumpRequest(req *http.Request) string {
	// Include the request body in the dump.
	dump, err := httputil.DumpRequest(req, true)
	if err != nil {
		return err.Error()
	}

	return t.truncate(redactSecrets(dump))
}

func (t *LogTransport) dumpResponse(resp *http.Response) string {
	// Check the Content-Type header to determine if the response body should be dumped.
	contentType := resp.Header.Get("Content-Type")

	dump, err := httputil.DumpResponse(resp, utils.IsTextContentType(contentType))
	if err != nil {
		return err.Error()
	}

	return t.truncate(redactSecrets(dump))
}

func (t *LogTransport) truncate(data []byte) string {
	if uint64(len(data)) > t.maxLogLength {
		return string(data[:utils.SafeUint64ToInt(t.maxLogLength)]) + "... [truncated]"
	}

	return string(data)
}

// redactSecrets blanks credentials and tokens in a request or response dump.
func redactSecrets(dump []byte) []byte {
	dump = secretFormFieldsPattern.ReplaceAll(dump, []byte("${1}=[redacted]"))
	dump = authorizationHeaderPattern.ReplaceAll(dump, []byte("${1} [redacted]"))

	return tokenResponseLinesPattern.ReplaceAll(dump, []byte("${1}=[redacted]"))
}
