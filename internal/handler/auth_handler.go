package handler

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"befach-store/internal/config"
	"befach-store/internal/model"

	"github.com/rs/zerolog"
)

// SessionCookieName is the admin session cookie set on login.
const SessionCookieName = "admin_session"

// AuthHandler implements the admin login gate: a single static
// credential pair and an unsigned opaque session cookie. The cookie is
// only ever checked for presence; there is no server-side session state
// and no signing.
type AuthHandler struct {
	cfg    config.AuthConfig
	logger zerolog.Logger
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(cfg config.AuthConfig, logger zerolog.Logger) *AuthHandler {
	return &AuthHandler{
		cfg:    cfg,
		logger: logger.With().Str("handler", "auth").Logger(),
	}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login handles POST /api/auth/login requests.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}

	if req.Username == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "Username and password are required", h.logger)
		return
	}

	if req.Username != h.cfg.Username || req.Password != h.cfg.Password {
		h.logger.Warn().Str("username", req.Username).Msg("failed login attempt")
		writeDomainError(w, model.ErrInvalidCredentials, h.logger)
		return
	}

	token := base64.StdEncoding.EncodeToString(
		[]byte(fmt.Sprintf("%s:%d", req.Username, time.Now().UnixMilli())),
	)

	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(time.Duration(h.cfg.SessionTTLHours) * time.Hour),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	h.logger.Info().Str("username", req.Username).Msg("admin logged in")

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Login successful",
	})
}

// Check handles GET /api/auth/check requests.
func (h *AuthHandler) Check(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	cookie, err := r.Cookie(SessionCookieName)
	if err != nil || cookie.Value == "" {
		writeJSON(w, http.StatusUnauthorized, map[string]interface{}{
			"authenticated": false,
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"authenticated": true,
	})
}

// Logout handles POST /api/auth/logout requests by expiring the cookie.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
	})
}
