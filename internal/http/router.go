// Package httpapi wires the HTTP transport (Gin) to the registry engine,
// middleware, and route handlers. It centralizes cross-cutting concerns such
// as tracing, correlation IDs, logging, panic recovery, metrics, CORS,
// security headers, and rate limiting.
//
// Design goals:
//   - Put observability first (OTel + Prometheus)
//   - Safe-by-default middleware ordering (RequestID → logging → recovery)
//   - Deterministic, minimal router setup; all dependencies injected
//   - Production-ready CORS and security header posture
package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/offerhub/go-reputation-registry/internal/config"
	"github.com/offerhub/go-reputation-registry/internal/domain"
	"github.com/offerhub/go-reputation-registry/internal/http/handlers"
	"github.com/offerhub/go-reputation-registry/internal/http/middleware"
	"github.com/offerhub/go-reputation-registry/internal/registry"
)

// headerAuthenticator confirms a principal by matching it against the one
// carried in the request context by the Principal middleware. The service
// trusts the gateway in front of it to have authenticated the header; this
// check only prevents acting on behalf of a different identity.
type headerAuthenticator struct{}

// Confirm implements registry.Authenticator.
func (headerAuthenticator) Confirm(ctx context.Context, principal string) error {
	if p := middleware.PrincipalFrom(ctx); p == principal {
		return nil
	}
	return domain.ErrUnauthorized
}

// RegisterRoutes attaches all middleware and HTTP endpoints to the given Gin
// engine. It configures observability (tracing, metrics), rate limiting,
// CORS and security headers, health and metrics endpoints, and then mounts
// the versioned public API under /api/v*.
//
// Middleware order matters:
//  1. OpenTelemetry: trace everything
//  2. RequestID: generate/propagate correlation id
//  3. Principal: resolve the caller identity header
//  4. Logger: structured request logs
//  5. Recovery: capture panics after logger
//  6. Body size limiter
//  7. Metrics
//  8. Rate limiter (per principal/IP)
//  9. CORS, security headers, gzip
func RegisterRoutes(r *gin.Engine, reg *registry.Registry, cfg config.Config) {
	r.HandleMethodNotAllowed = true

	// 1) Trace all HTTP requests
	r.Use(otelgin.Middleware(cfg.OTEL.ServiceName))

	// 2) Correlate requests and logs
	r.Use(middleware.RequestID())

	// 3) Caller identity from X-Principal
	r.Use(middleware.Principal())

	// 4) Structured request logging
	r.Use(middleware.Logger())

	// 5) Panic recovery to JSON 500 (with request id)
	r.Use(middleware.Recovery())

	// 6) Global body size limit (1 MiB)
	r.Use(limitBody(1 << 20))

	// 7) Prometheus metrics and /metrics endpoint
	r.Use(middleware.Metrics())
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// 8) Token-bucket rate limiter per principal/IP
	rl := middleware.NewRateLimiter(cfg.RateRPS, cfg.RateBurst, middleware.KeyByPrincipalOrIP())
	r.Use(rl.Handler())

	// 9) CORS posture (safe defaults: allow all if none configured)
	if len(cfg.CORS.AllowedOrigins) == 0 {
		r.Use(cors.New(cors.Config{
			AllowAllOrigins:  true,
			AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", middleware.HeaderPrincipal},
			ExposeHeaders:    []string{"X-Request-ID", "Content-Length"},
			AllowCredentials: false, // must remain false with AllowAllOrigins
			MaxAge:           12 * time.Hour,
		}))
	} else {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     cfg.CORS.AllowedOrigins,
			AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", middleware.HeaderPrincipal},
			ExposeHeaders:    []string{"X-Request-ID", "Content-Length"},
			AllowCredentials: false,
			MaxAge:           12 * time.Hour,
		}))
	}

	// Security headers (HSTS only when enabled and request is HTTPS)
	r.Use(middleware.SecurityHeaders(middleware.SecurityOptions{
		EnableHSTS: cfg.Security.EnableHSTS,
		HSTSMaxAge: cfg.Security.HSTSMaxAge,
		NoStore:    false,
	}))

	// Compress list-shaped responses (leaderboard, user records)
	r.Use(gzip.Gzip(gzip.DefaultCompression))

	// Fallbacks
	r.NoRoute(func(c *gin.Context) {
		handlers.Fail(c, http.StatusNotFound, handlers.ErrCodeNotFound, "route not found")
	})
	r.NoMethod(func(c *gin.Context) {
		handlers.Fail(c, http.StatusMethodNotAllowed, handlers.ErrCodeMethodNotAllowed, "method not allowed")
	})

	// Liveness/health
	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })

	h := handlers.New(reg)

	// Public API
	apiBase := cfg.APIBasePath // e.g. "/api/v1"
	api := groupWithPrefix(r, apiBase)
	{
		// Records
		api.POST("/records", h.MintRecord)
		api.POST("/records/batch", h.BatchMintRecords)
		api.GET("/records/:id", h.GetRecord)
		api.POST("/records/:id/transfer", h.TransferRecord)
		api.PUT("/records/:id/metadata", h.ReissueRecordMetadata)
		api.DELETE("/records/:id", h.BurnRecord)

		// Curated achievements
		api.POST("/achievements", h.MintAchievement)
		api.POST("/achievements/rating", h.MintRatingAchievement)

		// Reputation scores and threshold milestones
		api.POST("/reputation/:principal", h.UpdateScore)
		api.GET("/reputation/:principal", h.GetScore)

		// Per-user views
		api.GET("/users/:principal/records", h.UserRecords)
		api.GET("/users/:principal/rank", h.UserRank)

		// Aggregates
		api.GET("/leaderboard", h.Leaderboard)
		api.GET("/stats", h.Stats)

		// Administration
		api.GET("/admin", h.GetAdmin)
		api.POST("/admin/transfer", h.TransferAdmin)
		api.POST("/minters", h.AddMinter)
		api.GET("/minters/:principal", h.CheckMinter)
		api.DELETE("/minters/:principal", h.RemoveMinter)
	}
}

// NewAuthenticator returns the request-context authenticator used by the
// HTTP deployment of the registry.
func NewAuthenticator() registry.Authenticator {
	return headerAuthenticator{}
}

// limitBody returns a Gin middleware that caps the request body size for all
// endpoints to maxBytes using http.MaxBytesReader. Requests exceeding the cap
// will cause downstream body reads to error.
func limitBody(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}

// groupWithPrefix mounts a group at prefix, treating "/" (or empty) as root.
func groupWithPrefix(r *gin.Engine, prefix string) *gin.RouterGroup {
	if prefix == "" || prefix == "/" {
		return r.Group("")
	}
	return r.Group(prefix)
}
