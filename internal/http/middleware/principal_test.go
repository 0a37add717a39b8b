package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestPrincipal_HeaderFlowsToBothContexts(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Principal())
	r.GET("/whoami", func(c *gin.Context) {
		if got := CallerFrom(c); got != "GBOB" {
			t.Fatalf("CallerFrom = %q; want GBOB", got)
		}
		if got := PrincipalFrom(c.Request.Context()); got != "GBOB" {
			t.Fatalf("PrincipalFrom = %q; want GBOB", got)
		}
		c.String(http.StatusOK, "ok")
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set(HeaderPrincipal, "GBOB")
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("unexpected status %d", w.Code)
	}
}

func TestPrincipal_AbsentHeaderLeavesContextsEmpty(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Principal())
	r.GET("/whoami", func(c *gin.Context) {
		if got := CallerFrom(c); got != "" {
			t.Fatalf("CallerFrom = %q; want empty", got)
		}
		if got := PrincipalFrom(c.Request.Context()); got != "" {
			t.Fatalf("PrincipalFrom = %q; want empty", got)
		}
		c.Status(http.StatusNoContent)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/whoami", nil))
	if w.Code != http.StatusNoContent {
		t.Fatalf("unexpected status %d", w.Code)
	}
}

func TestPrincipalFrom_PlainContext(t *testing.T) {
	if got := PrincipalFrom(context.Background()); got != "" {
		t.Fatalf("expected empty principal from bare context, got %q", got)
	}
}
