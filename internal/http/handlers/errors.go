// Package handlers defines HTTP-layer error codes used across all API
// endpoints.
//
// These symbolic codes are mapped to HTTP responses via the fail() helper
// and give clients a stable, machine-readable error taxonomy on top of the
// status line. Handlers pick the most specific code; clients branch on it.
//
// Example response:
//
//	{
//	  "request_id": "e1b9be03-4999-4289-9f03-999b042d65d6",
//	  "code": "record_exists",
//	  "message": "record already exists"
//	}
package handlers

const (
	ErrCodeBadRequest   = "bad_request"
	ErrCodeUnauthorized = "unauthorized"
	ErrCodeForbidden    = "forbidden"
	ErrCodeNotFound     = "not_found"
	ErrCodeConflict     = "conflict"
	ErrCodeRateLimited  = "too_many_requests"
	ErrCodeInternal     = "internal_error"

	// Domain-specific:
	ErrCodeRecordExists       = "record_exists"
	ErrCodeNonTransferable    = "non_transferable"
	ErrCodeAlreadyInitialized = "already_initialized"
	ErrCodeNotInitialized     = "not_initialized"
	ErrCodeMethodNotAllowed   = "method_not_allowed"
)
