package server

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateLimitMiddleware(t *testing.T) {
	detector := NewSuspiciousActivityDetector()
	handler := RateLimitMiddleware(nil, detector)(okHandler())

	ip := "192.168.1.100"
	req := httptest.NewRequest(http.MethodGet, "/api/v1/format", nil)
	req.RemoteAddr = ip + ":1234"

	for i := 0; i < rateLimit; i++ {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code, "request %d", i)
	}

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)

	count, _ := detector.counts(ip)
	assert.Equal(t, rateLimit+1, count)

	// another client is unaffected
	other := httptest.NewRequest(http.MethodGet, "/api/v1/format", nil)
	other.RemoteAddr = "192.168.1.101:1234"
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, other)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRateLimit_WindowExpires(t *testing.T) {
	detector := newDetector(10, 20*time.Millisecond)
	for i := 0; i < rateLimit; i++ {
		detector.RecordRequest("10.0.0.1")
	}
	assert.False(t, detector.RecordRequest("10.0.0.1"))

	time.Sleep(60 * time.Millisecond)
	assert.True(t, detector.RecordRequest("10.0.0.1"))
	count, _ := detector.counts("10.0.0.1")
	assert.Equal(t, 1, count)
}

func TestDetector_BoundsTrackedClients(t *testing.T) {
	detector := newDetector(2, time.Minute)
	detector.RecordRequest("10.0.0.1")
	detector.RecordRequest("10.0.0.2")
	detector.RecordRequest("10.0.0.3")

	count, _ := detector.counts("10.0.0.1")
	assert.Equal(t, 0, count, "oldest client evicted")
	count, _ = detector.counts("10.0.0.3")
	assert.Equal(t, 1, count)
}
