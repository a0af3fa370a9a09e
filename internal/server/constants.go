package server

import "time"

// HTTP error messages for middleware responses
const (
	ErrMsgUnauthorized    = "Unauthorized"
	ErrMsgTooManyRequests = "Too Many Requests"
)

// Security alert message templates
const (
	SecurityAlertFailedAuth = "SECURITY ALERT: Multiple failed authentication attempts"
	SecurityAlertHighRate   = "SECURITY ALERT: Blocking high request rate"
)

// Log messages for server lifecycle and request handling
const (
	LogMsgServerStarting   = "Server starting"
	LogMsgRequestStarted   = "Request started"
	LogMsgRequestCompleted = "Request completed"
	LogMsgRequestHeaders   = "Request headers"
	LogMsgAuthFailed       = "Authentication failed"
	LogMsgTiersDisabled    = "Tier table not loaded, tier routes disabled"
)

// HTTP header names
const (
	HeaderAPIKey         = "X-API-Key"
	HeaderAuthorization  = "Authorization"
	HeaderForwardedFor   = "X-Forwarded-For"
	HeaderContentType    = "X-Content-Type-Options"
	HeaderFrameOptions   = "X-Frame-Options"
	HeaderXSSProtection  = "X-XSS-Protection"
	HeaderReferrerPolicy = "Referrer-Policy"
)

// Security header values
const (
	HeaderValueNoSniff              = "nosniff"
	HeaderValueSameOrigin           = "SAMEORIGIN"
	HeaderValueXSSBlock             = "1; mode=block"
	HeaderValueReferrerStrictOrigin = "strict-origin-when-cross-origin"
)

var securityHeaders = map[string]string{
	HeaderContentType:    HeaderValueNoSniff,
	HeaderFrameOptions:   HeaderValueSameOrigin,
	HeaderXSSProtection:  HeaderValueXSSBlock,
	HeaderReferrerPolicy: HeaderValueReferrerStrictOrigin,
}

// QuietPaths are probed often enough that request logging skips them
var QuietPaths = []string{
	"/healthz",
	"/readyz",
	"/metrics",
}

// Header redaction marker
const (
	RedactedValue = "[REDACTED]"
)

// Limits
const (
	maxRequestBytes   = 1 << 16
	readHeaderTimeout = 5 * time.Second

	// Rate limiting window per client IP
	trackedClients    = 10000
	rateWindow        = 5 * time.Minute
	rateLimit         = 1000
	rateLogEvery      = 100
	failedAuthAlertAt = 5
)
