package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClientIP_PeerAddress(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "203.0.113.7:54321"

	assert.Equal(t, "203.0.113.7", ClientIP(req))
}

func TestClientIP_PeerWinsOverForwardedFor(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "203.0.113.7:54321"
	req.Header.Set("X-Forwarded-For", "198.51.100.1, 10.0.0.1")

	assert.Equal(t, "203.0.113.7", ClientIP(req))
}

func TestClientIP_ForwardedForFallback(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = ""
	req.Header.Set("X-Forwarded-For", "198.51.100.1, 10.0.0.1")

	assert.Equal(t, "198.51.100.1", ClientIP(req))
}

func TestClientIP_UnmapsIPv6(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "[::ffff:203.0.113.7]:54321"

	assert.Equal(t, "203.0.113.7", ClientIP(req))
}

func TestClientIP_LastResortNotEmpty(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = ""

	assert.NotEmpty(t, ClientIP(req))
}
