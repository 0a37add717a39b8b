// Package handlers implements the HTTP endpoints of the achievement
// registry API.
//
// Each handler is a thin adapter: it binds and validates the request,
// resolves the caller principal from the request context, invokes the
// registry engine, and translates domain errors into the standard error
// envelope. All mutating endpoints are serialized through a single mutex so
// multi-key registry updates never interleave.
package handlers

import (
	"net/http"
	"strconv"
	"sync"

	"github.com/gin-gonic/gin"

	"github.com/offerhub/go-reputation-registry/internal/domain"
	"github.com/offerhub/go-reputation-registry/internal/http/middleware"
	"github.com/offerhub/go-reputation-registry/internal/registry"
)

// Handlers bundles the registry engine with the HTTP endpoint methods.
type Handlers struct {
	reg *registry.Registry

	// mu serializes mutating operations. The engine performs multi-key
	// updates without transactions, so overlapping writers must not run.
	mu sync.Mutex
}

// New constructs the handler set around a registry engine.
func New(reg *registry.Registry) *Handlers {
	return &Handlers{reg: reg}
}

// caller resolves the request principal. Mutating endpoints require one;
// when absent the request is rejected with 401 and ok reports false.
func caller(c *gin.Context) (string, bool) {
	p := middleware.CallerFrom(c)
	if p == "" {
		fail(c, http.StatusUnauthorized, ErrCodeUnauthorized,
			"missing "+middleware.HeaderPrincipal+" header")
		return "", false
	}
	return p, true
}

// recordID parses the :id path parameter. Invalid values yield a 400 and
// ok reports false.
func recordID(c *gin.Context) (domain.RecordID, bool) {
	raw := c.Param("id")
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid record id")
		return 0, false
	}
	return domain.RecordID(id), true
}

// finishMutation translates err into an HTTP response (or the given success
// status) and records the outcome metric for op.
func finishMutation(c *gin.Context, op string, err error, status int, body any) {
	if err != nil {
		code := failDomain(c, err)
		middleware.CountMutation(op, code)
		return
	}
	middleware.CountMutation(op, "ok")
	if body == nil {
		noContent(c)
		return
	}
	ok(c, status, body)
}
