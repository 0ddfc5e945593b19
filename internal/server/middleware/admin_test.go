package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminOnly_AdminPasses(t *testing.T) {
	logger := setupTestLogger()
	tokens := setupTokenService(t)

	tokenString, err := tokens.Issue(adminUser())
	require.NoError(t, err)

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("admin content"))
	})

	wrapped := AuthMiddleware(logger, tokens)(AdminOnly(logger)(handler))

	req := httptest.NewRequest(http.MethodGet, "/getUsers", nil)
	req.Header.Set(TokenHeader, tokenString)

	w := httptest.NewRecorder()
	wrapped.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "admin content", w.Body.String())
}

func TestAdminOnly_DeveloperGetsBenignRejection(t *testing.T) {
	logger := setupTestLogger()
	tokens := setupTokenService(t)

	tokenString, err := tokens.Issue(developerUser())
	require.NoError(t, err)

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("Handler should not be called")
	})

	wrapped := AuthMiddleware(logger, tokens)(AdminOnly(logger)(handler))

	req := httptest.NewRequest(http.MethodGet, "/getUsers", nil)
	req.Header.Set(TokenHeader, tokenString)

	w := httptest.NewRecorder()
	wrapped.ServeHTTP(w, req)

	// Не 403: совместимый benign отказ под 200
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `"Not Admin"`, w.Body.String())
}

func TestAdminOnly_NoTokenIsUnauthenticated(t *testing.T) {
	logger := setupTestLogger()
	tokens := setupTokenService(t)

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("Handler should not be called")
	})

	wrapped := AuthMiddleware(logger, tokens)(AdminOnly(logger)(handler))

	req := httptest.NewRequest(http.MethodGet, "/getUsers", nil)

	w := httptest.NewRecorder()
	wrapped.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "No Token Found!", w.Body.String())
}

func TestAdminOnly_WithoutAuthContext(t *testing.T) {
	logger := setupTestLogger()

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("Handler should not be called")
	})

	// AdminOnly без AuthMiddleware: claims в контексте нет
	wrapped := AdminOnly(logger)(handler)

	req := httptest.NewRequest(http.MethodGet, "/getUsers", nil)

	w := httptest.NewRecorder()
	wrapped.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
