package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/osse101/hypernum/internal/format"
	"github.com/osse101/hypernum/internal/handler"
	"github.com/osse101/hypernum/internal/logger"
	"github.com/osse101/hypernum/internal/metrics"
)

var errTiersNotLoaded = errors.New("tier table not loaded")

// Options wires the server to its dependencies
type Options struct {
	Port           int
	APIKey         string
	TrustedProxies []string

	Formatter *format.Formatter
	Defaults  format.Options

	// Tiers serves the tier routes. Nil leaves them unregistered and the
	// service not ready.
	Tiers handler.TierService
}

type Server struct {
	httpServer *http.Server
}

// NewServer creates a new Server instance
func NewServer(opts Options) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", opts.Port),
			Handler:           NewRouter(opts),
			ReadHeaderTimeout: readHeaderTimeout,
		},
	}
}

// NewRouter builds the route tree
func NewRouter(opts Options) http.Handler {
	if opts.Formatter == nil {
		opts.Formatter = format.Default()
	}
	f, defaults := opts.Formatter, opts.Defaults

	r := chi.NewRouter()

	// Middleware executes in the order defined, outermost first
	detector := NewSuspiciousActivityDetector()
	r.Use(SecurityHeadersMiddleware())
	r.Use(RateLimitMiddleware(opts.TrustedProxies, detector))
	r.Use(RequestSizeLimitMiddleware(maxRequestBytes))
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	tiersReady := handler.HealthCheckerFunc(func(context.Context) error {
		if opts.Tiers == nil {
			return errTiersNotLoaded
		}
		return nil
	})

	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(tiersReady))
	r.Get("/version", handler.HandleVersion())
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/format", handler.HandleFormat(f, defaults))
		r.Post("/slog", handler.HandleSlog(f, defaults))
		r.Post("/overflow", handler.HandleOverflow(f, defaults))

		if opts.Tiers == nil {
			slog.Warn(LogMsgTiersDisabled)
			return
		}
		svc := opts.Tiers
		r.Route("/tiers", func(r chi.Router) {
			r.Get("/", handler.HandleListTiers(svc, f, defaults))
			r.Post("/{tier}/cost", handler.HandleTierCost(svc, f, defaults))
			r.Post("/{tier}/max", handler.HandleTierMax(svc))

			// Routes that change tier state
			r.Group(func(r chi.Router) {
				r.Use(AuthMiddleware(opts.APIKey, opts.TrustedProxies, detector))
				r.Post("/{tier}/buy-max", handler.HandleTierBuyMax(svc, f, defaults))
				r.Post("/{tier}/reset", handler.HandleTierReset(svc))
			})
		})
	})

	return r
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK,
	}
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if !rw.written {
		rw.statusCode = statusCode
		rw.written = true
		rw.ResponseWriter.WriteHeader(statusCode)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

func isQuiet(path string) bool {
	for _, p := range QuietPaths {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		if isQuiet(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		ctx := logger.WithRequestID(r.Context(), logger.GenerateRequestID())
		r = r.WithContext(ctx)
		log := logger.FromContext(ctx)

		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())

		sanitizedHeaders := make(http.Header)
		for k, v := range r.Header {
			if strings.EqualFold(k, HeaderAPIKey) || strings.EqualFold(k, HeaderAuthorization) {
				sanitizedHeaders[k] = []string{RedactedValue}
			} else {
				sanitizedHeaders[k] = v
			}
		}
		log.Debug(LogMsgRequestHeaders, "headers", sanitizedHeaders)

		rw := newResponseWriter(w)
		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds(),
			"duration", duration)
	})
}

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
