package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func TestKeyByPrincipalOrIP(t *testing.T) {
	gin.SetMode(gin.TestMode)

	// Principal present -> principal namespace
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Set("principal", "GCAROL")
	if key := KeyByPrincipalOrIP()(c); key != "principal:GCAROL" {
		t.Fatalf("key = %q; want principal:GCAROL", key)
	}

	// No principal -> IP namespace
	c2, _ := gin.CreateTestContext(httptest.NewRecorder())
	c2.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c2.Request.RemoteAddr = "10.1.2.3:5555"
	key := KeyByPrincipalOrIP()(c2)
	if key != "ip:10.1.2.3" {
		t.Fatalf("key = %q; want ip:10.1.2.3", key)
	}
}

func TestNewRateLimiter_CoercesBurst(t *testing.T) {
	rl := NewRateLimiter(2.0, 0, KeyByPrincipalOrIP())
	if rl.burst != 1 {
		t.Fatalf("burst = %d; want coerced to 1", rl.burst)
	}
}

func TestRateLimiter_AllowsThenRejects(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rl := NewRateLimiter(0.0, 1, KeyByPrincipalOrIP()) // one token, no refill

	r := gin.New()
	r.Use(Principal(), rl.Handler())
	r.GET("/x", func(c *gin.Context) { c.String(http.StatusOK, "ok") })

	mk := func() *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/x", nil)
		req.Header.Set(HeaderPrincipal, "GDAVE")
		r.ServeHTTP(w, req)
		return w
	}

	if w := mk(); w.Code != http.StatusOK {
		t.Fatalf("first request should pass, got %d", w.Code)
	}
	w := mk()
	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("second request should be limited, got %d", w.Code)
	}
	if w.Header().Get("Retry-After") != "1" {
		t.Fatalf("expected Retry-After header")
	}
}

func TestRateLimiter_SeparateKeysSeparateBuckets(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rl := NewRateLimiter(0.0, 1, KeyByPrincipalOrIP())

	r := gin.New()
	r.Use(Principal(), rl.Handler())
	r.GET("/x", func(c *gin.Context) { c.String(http.StatusOK, "ok") })

	for _, p := range []string{"GONE", "GTWO"} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/x", nil)
		req.Header.Set(HeaderPrincipal, p)
		r.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("principal %s should have its own bucket, got %d", p, w.Code)
		}
	}
}

func TestRateLimiter_EvictsIdleVisitors(t *testing.T) {
	rl := NewRateLimiter(1.0, 1, KeyByPrincipalOrIP())
	rl.ttl = time.Millisecond

	_ = rl.getVisitor("principal:GSTALE")
	time.Sleep(5 * time.Millisecond)

	// Force a GC cycle on the next lookup.
	rl.mu.Lock()
	rl.cleanupN = 4999
	rl.mu.Unlock()
	_ = rl.getVisitor("principal:GFRESH")

	rl.mu.Lock()
	_, stale := rl.visitors["principal:GSTALE"]
	_, fresh := rl.visitors["principal:GFRESH"]
	rl.mu.Unlock()
	if stale {
		t.Fatalf("idle visitor should be evicted")
	}
	if !fresh {
		t.Fatalf("fresh visitor should remain")
	}
}
