package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoggingMiddleware_CapturesStatus(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte("not found"))
	})

	handler := LoggingMiddleware(logger)(next)

	r := httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)

	out := buf.String()
	assert.Contains(t, out, "status=404")
	assert.Contains(t, out, "path=/api/v1/cart")
	assert.Contains(t, out, "level=WARN")
}

func TestSanitizePath(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{path: "/api/v1/auth/salt/alice", want: "/api/v1/auth/salt/***"},
		{path: "/api/v1/auth/salt/", want: "/api/v1/auth/salt/"},
		{path: "/api/v1/cart", want: "/api/v1/cart"},
		{path: "/api/v1/products/prod-1/price", want: "/api/v1/products/prod-1/price"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, sanitizePath(tt.path))
	}
}

func TestLoggingWithSkip(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	handler := LoggingWithSkip(logger, []string{"/api/v1/health"})(next)

	r := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)
	assert.Empty(t, buf.String())

	r = httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil)
	w = httptest.NewRecorder()
	handler.ServeHTTP(w, r)
	assert.Contains(t, buf.String(), "path=/api/v1/cart")
}
