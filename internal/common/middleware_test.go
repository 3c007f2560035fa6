package common

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func protectedHandler(t *testing.T) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := CurrentUser(r.Context())
		require.True(t, ok)
		WriteJSON(w, http.StatusOK, map[string]interface{}{"userId": id.UserID, "name": id.Name})
	})
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	m := testJWTManager("test-secret")
	token, err := m.GenerateToken(7, "carol")
	require.NoError(t, err)

	handler := AuthMiddleware(m)(protectedHandler(t))

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, float64(7), body["userId"])
	assert.Equal(t, "carol", body["name"])
}

func TestAuthMiddleware_Rejections(t *testing.T) {
	m := testJWTManager("test-secret")
	handler := AuthMiddleware(m)(protectedHandler(t))

	tests := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"not bearer", "Basic abc123"},
		{"malformed", "Bearer"},
		{"garbage token", "Bearer not.a.token"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

func decodeErrors(t *testing.T, rec *httptest.ResponseRecorder) []string {
	t.Helper()
	var body struct {
		Errors []string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body.Errors
}

func TestWriteError_Mapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"not found", ErrNotFound, http.StatusNotFound, "not found"},
		{"wrapped not found", fmt.Errorf("get photo: %w", ErrNotFound), http.StatusNotFound, "not found"},
		{"forbidden", ErrForbidden, http.StatusUnprocessableEntity, "permission denied, please try again later"},
		{"already liked", ErrAlreadyLiked, http.StatusUnprocessableEntity, "you already liked this photo"},
		{"validation", NewValidationError("title is required"), http.StatusUnprocessableEntity, "title is required"},
		{"unknown", fmt.Errorf("connection reset"), http.StatusInternalServerError, "an error occurred, please try again later"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			WriteError(rec, tt.err)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, decodeErrors(t, rec), tt.wantMsg)
		})
	}
}

func TestWriteError_ValidationKeepsAllMessages(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteError(rec, NewValidationError("title is required", "image is required"))

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, []string{"title is required", "image is required"}, decodeErrors(t, rec))
}

func TestLoggingMiddleware_PassesThrough(t *testing.T) {
	handler := LoggingMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.Equal(t, http.StatusTeapot, rec.Code)
}
