package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func captureLogger(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := log.Logger
	t.Cleanup(func() { log.Logger = prev })
	log.Logger = zerolog.New(&buf) // plain JSON lines
	return &buf
}

func TestRequestID_GenerateAndPropagate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID())
	r.GET("/rid", func(c *gin.Context) {
		if v, ok := c.Get(requestIDKey); !ok || v == "" {
			t.Fatalf("requestID not set in context")
		}
		c.String(http.StatusOK, "ok")
	})

	// No header -> generated
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/rid", nil)
	r.ServeHTTP(w, req)
	if w.Header().Get(requestIDHeader) == "" {
		t.Fatalf("expected generated request id")
	}

	// Incoming header -> reused
	w2 := httptest.NewRecorder()
	req2 := httptest.NewRequest(http.MethodGet, "/rid", nil)
	req2.Header.Set(requestIDHeader, "fixed-id")
	r.ServeHTTP(w2, req2)
	if got := w2.Header().Get(requestIDHeader); got != "fixed-id" {
		t.Fatalf("expected propagated request id, got %q", got)
	}
}

func TestLogger_EmitsAccessLogWithPrincipal(t *testing.T) {
	buf := captureLogger(t)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID(), Principal(), Logger())
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(HeaderPrincipal, "GALICE")
	r.ServeHTTP(w, req)

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("access log is not JSON: %v (%s)", err, buf.String())
	}
	if entry["principal"] != "GALICE" {
		t.Fatalf("expected principal field, got %v", entry["principal"])
	}
	if entry["path"] != "/ping" || entry["method"] != http.MethodGet {
		t.Fatalf("unexpected access log: %v", entry)
	}
	if entry["level"] != "info" {
		t.Fatalf("2xx should log at info, got %v", entry["level"])
	}
}

func TestLogger_WarnOn4xx_ErrorOn5xx(t *testing.T) {
	buf := captureLogger(t)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID(), Logger())
	r.GET("/bad", func(c *gin.Context) { c.String(http.StatusBadRequest, "no") })
	r.GET("/boom", func(c *gin.Context) { c.String(http.StatusInternalServerError, "no") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/bad", nil))
	if !strings.Contains(buf.String(), `"level":"warn"`) {
		t.Fatalf("4xx should log at warn: %s", buf.String())
	}

	buf.Reset()
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))
	if !strings.Contains(buf.String(), `"level":"error"`) {
		t.Fatalf("5xx should log at error: %s", buf.String())
	}
}

func TestRecovery_PanicBecomesJSON500(t *testing.T) {
	_ = captureLogger(t)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID(), Recovery())
	r.GET("/panic", func(c *gin.Context) { panic("kaboom") })

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/panic", nil)
	req.Header.Set(requestIDHeader, "rid-1")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("500 body is not JSON: %v", err)
	}
	if body["code"] != "internal_error" || body["request_id"] != "rid-1" {
		t.Fatalf("unexpected 500 envelope: %v", body)
	}
}

func TestLoggerFrom_FallbackWithoutMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	if LoggerFrom(c) == nil {
		t.Fatalf("LoggerFrom must never return nil")
	}
}
