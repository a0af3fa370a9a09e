package server

import (
	"crypto/subtle"
	"log/slog"
	"net"
	"net/http"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/hypernum/internal/logger"
)

// AuthMiddleware requires the API key on every request it wraps. An empty key
// disables the check.
func AuthMiddleware(apiKey string, trustedProxies []string, detector *SuspiciousActivityDetector) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if apiKey == "" {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			providedKey := r.Header.Get(HeaderAPIKey)

			if subtle.ConstantTimeCompare([]byte(providedKey), []byte(apiKey)) != 1 {
				ip := extractIP(r, trustedProxies)
				detector.RecordFailedAuth(ip)

				logger.FromContext(r.Context()).Warn(LogMsgAuthFailed,
					"remote_addr", r.RemoteAddr,
					"path", r.URL.Path,
					"has_key", providedKey != "",
					"ip", ip)

				http.Error(w, ErrMsgUnauthorized, http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequestSizeLimitMiddleware caps request bodies at maxBytes. Handlers see
// the overflow as a decode error.
func RequestSizeLimitMiddleware(maxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			next.ServeHTTP(w, r)
		})
	}
}

// SuspiciousActivityDetector tracks request and failed-auth counts per client
// IP. Each IP's window starts with its first request and the number of
// tracked IPs is bounded.
type SuspiciousActivityDetector struct {
	mu      sync.Mutex
	clients *expirable.LRU[string, *clientActivity]
}

type clientActivity struct {
	requests   int
	failedAuth int
}

func NewSuspiciousActivityDetector() *SuspiciousActivityDetector {
	return newDetector(trackedClients, rateWindow)
}

func newDetector(size int, window time.Duration) *SuspiciousActivityDetector {
	return &SuspiciousActivityDetector{
		clients: expirable.NewLRU[string, *clientActivity](size, nil, window),
	}
}

// activity returns the live counters for ip. Caller must hold the mutex.
// Counters are updated in place so the window keeps its original expiry.
func (s *SuspiciousActivityDetector) activity(ip string) *clientActivity {
	if a, ok := s.clients.Get(ip); ok {
		return a
	}
	a := &clientActivity{}
	s.clients.Add(ip, a)
	return a
}

// RecordFailedAuth records a failed authentication attempt
func (s *SuspiciousActivityDetector) RecordFailedAuth(ip string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a := s.activity(ip)
	a.failedAuth++
	if a.failedAuth >= failedAuthAlertAt {
		slog.Warn(SecurityAlertFailedAuth, "ip", ip, "count", a.failedAuth)
	}
}

// RecordRequest records a request and returns false once the IP is over the limit
func (s *SuspiciousActivityDetector) RecordRequest(ip string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	a := s.activity(ip)
	a.requests++
	if a.requests <= rateLimit {
		return true
	}
	if a.requests%rateLogEvery == 0 {
		slog.Warn(SecurityAlertHighRate, "ip", ip, "count_in_window", a.requests)
	}
	return false
}

// counts reports the current window's counters for ip.
func (s *SuspiciousActivityDetector) counts(ip string) (requests, failedAuth int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if a, ok := s.clients.Peek(ip); ok {
		return a.requests, a.failedAuth
	}
	return 0, 0
}

// RateLimitMiddleware rejects clients over the request limit
func RateLimitMiddleware(trustedProxies []string, detector *SuspiciousActivityDetector) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !detector.RecordRequest(extractIP(r, trustedProxies)) {
				http.Error(w, ErrMsgTooManyRequests, http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// extractIP returns the client address, honoring X-Forwarded-For only when the
// direct peer is a trusted proxy.
func extractIP(r *http.Request, trustedProxies []string) string {
	remoteIP, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		remoteIP = r.RemoteAddr
	}

	forwarded := r.Header.Get(HeaderForwardedFor)
	if forwarded == "" || !slices.Contains(trustedProxies, remoteIP) {
		return remoteIP
	}
	// The rightmost entry is the hop that reached our trusted proxy
	if i := strings.LastIndexByte(forwarded, ','); i >= 0 {
		forwarded = forwarded[i+1:]
	}
	return strings.TrimSpace(forwarded)
}

// SecurityHeadersMiddleware sets securityHeaders on every response
func SecurityHeadersMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			for name, value := range securityHeaders {
				h.Set(name, value)
			}
			next.ServeHTTP(w, r)
		})
	}
}
