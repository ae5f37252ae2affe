package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"befach-store/internal/config"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthTestHandler() *AuthHandler {
	return NewAuthHandler(config.AuthConfig{
		Username:        "admin",
		Password:        "secret123",
		SessionTTLHours: 24,
	}, zerolog.Nop())
}

func findSessionCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range rec.Result().Cookies() {
		if c.Name == SessionCookieName {
			return c
		}
	}
	return nil
}

func TestAuthHandler_Login(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		expectedStatus int
		expectCookie   bool
	}{
		{
			name:           "Valid credentials set session cookie",
			body:           `{"username":"admin","password":"secret123"}`,
			expectedStatus: http.StatusOK,
			expectCookie:   true,
		},
		{
			name:           "Wrong password",
			body:           `{"username":"admin","password":"wrong"}`,
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Wrong username",
			body:           `{"username":"root","password":"secret123"}`,
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Missing fields",
			body:           `{"username":"admin"}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Invalid JSON",
			body:           `{username}`,
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newAuthTestHandler()

			req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewBufferString(tt.body))
			rec := httptest.NewRecorder()
			h.Login(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)

			cookie := findSessionCookie(t, rec)
			if tt.expectCookie {
				require.NotNil(t, cookie)
				assert.NotEmpty(t, cookie.Value)
				assert.True(t, cookie.HttpOnly)
			} else {
				assert.Nil(t, cookie)
			}
		})
	}
}

func TestAuthHandler_Check(t *testing.T) {
	h := newAuthTestHandler()

	t.Run("With session cookie", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/auth/check", nil)
		req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "token"})
		rec := httptest.NewRecorder()
		h.Check(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var got map[string]bool
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
		assert.True(t, got["authenticated"])
	})

	t.Run("Without session cookie", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/auth/check", nil)
		rec := httptest.NewRecorder()
		h.Check(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)

		var got map[string]bool
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
		assert.False(t, got["authenticated"])
	})
}

func TestAuthHandler_Logout(t *testing.T) {
	h := newAuthTestHandler()

	req := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
	rec := httptest.NewRecorder()
	h.Logout(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	cookie := findSessionCookie(t, rec)
	require.NotNil(t, cookie)
	assert.Empty(t, cookie.Value)
	assert.Negative(t, cookie.MaxAge)
}
