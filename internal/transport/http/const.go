package http

// DefaultUserAgent identifies requests when no source string is configured.
// Installed applications are expected to send their own identifier rather
// than mimic a browser.
const DefaultUserAgent = "ogaidukov-gauth-1.0"
