package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gamesapx/gamesapx/internal/api/middleware"
	"github.com/gamesapx/gamesapx/internal/api/request"
	"github.com/gamesapx/gamesapx/internal/api/response"
	"github.com/gamesapx/gamesapx/internal/services/auth"
)

// AuthHandler handles registration, login, logout and the current-user
// endpoints
type AuthHandler struct {
	authService *auth.Service
	// secureCookie marks the session cookie Secure; enable in production
	secureCookie bool
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *auth.Service, secureCookie bool) *AuthHandler {
	return &AuthHandler{
		authService:  authService,
		secureCookie: secureCookie,
	}
}

// Register handles POST /api/v1/auth/register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req request.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if req.Username == "" || req.Password == "" || req.Email == "" {
		WriteError(w, NewInvalidRequestError("All fields are required"))
		return
	}

	user, err := h.authService.Register(r.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		WriteError(w, err)
		return
	}

	// Registration does not log the user in; login is a separate step
	response.JSON(w, http.StatusCreated, response.UserFromModel(user))
}

// Login handles POST /api/v1/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req request.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if req.Username == "" || req.Password == "" {
		WriteError(w, NewInvalidRequestError("Username and password are required"))
		return
	}

	session, err := h.authService.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		WriteError(w, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    session.Token,
		Path:     "/",
		Expires:  session.ExpiresAt,
		HttpOnly: true,
		Secure:   h.secureCookie,
		SameSite: http.SameSiteLaxMode,
	})

	response.JSON(w, http.StatusOK, response.AuthResponseFromSession(session))
}

// Logout handles POST /api/v1/auth/logout. Only the presented token is
// destroyed; other sessions of the same user stay valid. Logout always
// succeeds, even without a live session.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if token := middleware.ExtractToken(r); token != "" {
		_ = h.authService.InvalidateSession(token)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.secureCookie,
		SameSite: http.SameSiteLaxMode,
	})

	response.NoContent(w)
}

// GetMe handles GET /api/v1/users/me
func (h *AuthHandler) GetMe(w http.ResponseWriter, r *http.Request) {
	session := middleware.MustGetSession(r.Context())

	// The profile re-reads the stored row for the email field; the
	// session snapshot still governs authorization
	user, err := h.authService.Profile(r.Context(), session.Token)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.ProfileFromModel(user))
}
