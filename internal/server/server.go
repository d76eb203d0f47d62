package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/mkarlsen/BloxClicker_Go/internal/game"
	"github.com/mkarlsen/BloxClicker_Go/internal/handler"
	"github.com/mkarlsen/BloxClicker_Go/internal/hatch"
	"github.com/mkarlsen/BloxClicker_Go/internal/logger"
	"github.com/mkarlsen/BloxClicker_Go/internal/metrics"
	"github.com/mkarlsen/BloxClicker_Go/internal/sse"
)

type Server struct {
	httpServer   *http.Server
	gameService  game.Service
	hatchService hatch.Service
	hub          *sse.Hub
}

// NewServer creates a new Server instance
func NewServer(port int, adminKey string, trustedProxies []string, checker handler.HealthChecker, gameService game.Service, hatchService hatch.Service, hub *sse.Hub) *Server {
	r := chi.NewRouter()

	// Middleware stack
	// Chi middleware executes in order defined (outermost to innermost)
	detector := NewSuspiciousActivityDetector()

	r.Use(SecurityHeadersMiddleware())
	r.Use(SecurityLoggingMiddleware(trustedProxies, detector))
	r.Use(RequestSizeLimitMiddleware(1 << 20)) // 1MB limit
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	// Health check routes (unversioned)
	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(checker))

	// Version endpoint (public, for deployment verification)
	r.Get("/version", handler.HandleVersion())

	// Metrics endpoint (public, for Prometheus scraping)
	r.Handle("/metrics", promhttp.Handler())

	// Live event stream (chat lines, event starts, hatch results)
	r.Get("/events", sse.Handler(hub))

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/state", handler.HandleGetState(gameService))
		r.Post("/click", handler.HandleClick(gameService))
		r.Post("/upgrade", handler.HandleBuyUpgrade(gameService))
		r.Post("/rebirth", handler.HandleRebirth(gameService))
		r.Post("/gamepass", handler.HandleBuyGamepass(gameService))

		r.Route("/island", func(r chi.Router) {
			r.Post("/buy", handler.HandleBuyIsland(gameService))
			r.Post("/select", handler.HandleSelectIsland(gameService))
		})

		r.Post("/boss/defeat", handler.HandleDefeatBoss(gameService))

		r.Route("/shop", func(r chi.Router) {
			r.Post("/gempack", handler.HandleBuyGemPack(gameService))
			r.Post("/nametag", handler.HandleBuyNameTag(gameService))
		})

		r.Post("/achievement/claim", handler.HandleClaimAchievement(gameService))

		r.Route("/hatch", func(r chi.Router) {
			r.Post("/egg", handler.HandleHatchEgg(hatchService))
			r.Post("/block", handler.HandleOpenLuckyBlock(hatchService))
		})

		r.Route("/chat", func(r chi.Router) {
			r.Get("/", handler.HandleGetChat(gameService))
			r.Post("/", handler.HandleSendChat(gameService))
		})

		// Admin routes, gated by the shared admin key
		r.Route("/admin", func(r chi.Router) {
			r.Use(AdminKeyMiddleware(adminKey, trustedProxies, detector))

			r.Post("/event", handler.HandleTriggerEvent(gameService))
			r.Post("/balance", handler.HandleAddBalance(gameService))
			r.Post("/reset", handler.HandleResetState(gameService))
			r.Post("/announce", handler.HandleAnnounce(gameService))
		})
	})

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           r,
			ReadHeaderTimeout: 5 * time.Second,
		},
		gameService:  gameService,
		hatchService: hatchService,
		hub:          hub,
	}
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
		statusCode:     http.StatusOK, // default status
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

// Flush forwards flushes so the SSE stream keeps working through the wrapper.
func (rw *responseWriter) Flush() {
	if f, ok := rw.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		// Skip logging for probe endpoints
		for _, path := range QuietPaths {
			if strings.HasPrefix(r.URL.Path, path) {
				next.ServeHTTP(w, r)
				return
			}
		}

		// Generate unique request ID
		requestID := logger.GenerateRequestID()

		// Add request ID to context
		ctx := logger.WithRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)

		log := logger.FromContext(ctx)

		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())

		// Sanitize headers for logging
		sanitizedHeaders := make(http.Header)
		for k, v := range r.Header {
			if strings.EqualFold(k, HeaderAdminKey) || strings.EqualFold(k, HeaderAuthorization) {
				sanitizedHeaders[k] = []string{RedactedValue}
			} else {
				sanitizedHeaders[k] = v
			}
		}
		log.Debug(LogMsgRequestHeaders, "headers", sanitizedHeaders)

		// Wrap response writer to capture status code
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
