// Package handlers provides the HTTP handler implementations for the public
// API.
//
// This file defines the standard response utilities shared by all endpoints:
// the structured error envelope, the domain-error → HTTP translation table,
// and small helpers for success responses. Uniform envelopes keep the API
// predictable for machine clients.
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/offerhub/go-reputation-registry/internal/domain"
	"github.com/offerhub/go-reputation-registry/internal/http/middleware"
)

// ErrorResponse is the standard error envelope returned by all endpoints.
type ErrorResponse struct {
	// Correlates server logs and client errors
	RequestID string `json:"request_id,omitempty"`
	// Stable, machine-readable code (see errors.go constants)
	Code string `json:"code"`
	// Human-readable message (safe to show to users)
	Message string `json:"message"`
}

// fail aborts the request with a structured error and logs server-side
// errors using the request-scoped logger.
func fail(c *gin.Context, status int, code, msg string) {
	reqID := c.Writer.Header().Get("X-Request-ID")
	resp := ErrorResponse{
		RequestID: reqID,
		Code:      code,
		Message:   msg,
	}

	if status >= http.StatusInternalServerError {
		lg := middleware.LoggerFrom(c)
		lg.Error().
			Int("status", status).
			Str("code", code).
			Str("message", msg).
			Msg("api error")
	}

	c.AbortWithStatusJSON(status, resp)
}

// Fail is the exported variant of fail(), for router-level fallbacks.
func Fail(c *gin.Context, status int, code, msg string) { fail(c, status, code, msg) }

// failDomain translates a registry error into the matching HTTP response and
// returns the error code it chose (for mutation metrics).
func failDomain(c *gin.Context, err error) string {
	switch {
	case errors.Is(err, domain.ErrUnauthorized):
		fail(c, http.StatusForbidden, ErrCodeUnauthorized, "caller is not authorized")
		return ErrCodeUnauthorized
	case errors.Is(err, domain.ErrRecordNotFound):
		fail(c, http.StatusNotFound, ErrCodeNotFound, "record does not exist")
		return ErrCodeNotFound
	case errors.Is(err, domain.ErrRecordExists):
		fail(c, http.StatusConflict, ErrCodeRecordExists, "record already exists")
		return ErrCodeRecordExists
	case errors.Is(err, domain.ErrNonTransferable):
		fail(c, http.StatusConflict, ErrCodeNonTransferable, "record is non-transferable")
		return ErrCodeNonTransferable
	case errors.Is(err, domain.ErrAlreadyInitialized):
		fail(c, http.StatusConflict, ErrCodeAlreadyInitialized, "registry already initialized")
		return ErrCodeAlreadyInitialized
	case errors.Is(err, domain.ErrNotInitialized):
		fail(c, http.StatusConflict, ErrCodeNotInitialized, "registry not initialized")
		return ErrCodeNotInitialized
	default:
		fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		return ErrCodeInternal
	}
}

// ok writes a success JSON response.
func ok(c *gin.Context, status int, body any) {
	c.JSON(status, body)
}

// noContent writes an HTTP 204 No Content response.
func noContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}
