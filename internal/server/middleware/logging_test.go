package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoggingMiddleware(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("hello"))
	})

	wrapped := LoggingMiddleware(logger)(handler)

	req := httptest.NewRequest(http.MethodGet, "/pingServer", nil)
	req.RemoteAddr = "192.168.1.1:5000"
	w := httptest.NewRecorder()
	wrapped.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	logged := buf.String()
	assert.Contains(t, logged, "method=GET")
	assert.Contains(t, logged, "path=/pingServer")
	assert.Contains(t, logged, "status=200")
	assert.Contains(t, logged, "client_ip=192.168.1.1")
	assert.Contains(t, logged, "bytes_written=5")
}

func TestLoggingMiddleware_WarnOn4xx(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	wrapped := LoggingMiddleware(logger)(handler)

	req := httptest.NewRequest(http.MethodGet, "/isUserAuth", nil)
	w := httptest.NewRecorder()
	wrapped.ServeHTTP(w, req)

	assert.Contains(t, buf.String(), "level=WARN")
}

func TestLoggingMiddleware_ErrorOn5xx(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	wrapped := LoggingMiddleware(logger)(handler)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	wrapped.ServeHTTP(w, req)

	assert.Contains(t, buf.String(), "level=ERROR")
}

func TestLoggingMiddleware_DoesNotLogToken(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	wrapped := LoggingMiddleware(logger)(handler)

	req := httptest.NewRequest(http.MethodGet, "/isUserAuth", nil)
	req.Header.Set(TokenHeader, "secret-token-value")
	w := httptest.NewRecorder()
	wrapped.ServeHTTP(w, req)

	assert.NotContains(t, buf.String(), "secret-token-value")
}
