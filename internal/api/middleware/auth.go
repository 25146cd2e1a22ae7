package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gamesapx/gamesapx/internal/api/apierr"
	"github.com/gamesapx/gamesapx/internal/services/auth"
)

type contextKey string

const sessionContextKey contextKey = "session"

// SessionCookieName is the cookie carrying the opaque session token. The
// cookie holds only the lookup key, never user data.
const SessionCookieName = "session"

// Auth creates authentication middleware. It resolves the session token
// and blocks the request with 401 when there is none.
func Auth(authService *auth.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session, err := resolveSession(authService, r)
			if err != nil {
				apierr.WriteError(w, err)
				return
			}

			next.ServeHTTP(w, r.WithContext(withSession(r.Context(), session)))
		})
	}
}

// Admin creates authorization middleware implying Auth. The admin claim
// is read from the session snapshot taken at login, not re-fetched per
// request; an admin-flag change takes effect on the next login. Lacking
// the claim yields 403, distinct from the 401 for a missing session.
func Admin(authService *auth.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session, err := resolveSession(authService, r)
			if err != nil {
				apierr.WriteError(w, err)
				return
			}

			if !session.IsAdmin {
				apierr.WriteError(w, apierr.NewForbiddenError())
				return
			}

			next.ServeHTTP(w, r.WithContext(withSession(r.Context(), session)))
		})
	}
}

func resolveSession(authService *auth.Service, r *http.Request) (*auth.Session, error) {
	token := ExtractToken(r)
	if token == "" {
		return nil, apierr.NewUnauthorizedError()
	}
	return authService.ValidateSession(token)
}

func withSession(ctx context.Context, session *auth.Session) context.Context {
	return context.WithValue(ctx, sessionContextKey, session)
}

// ExtractToken extracts the session token from the request
func ExtractToken(r *http.Request) string {
	// Check Authorization header first
	authHeader := r.Header.Get("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}

	// Fall back to cookie
	cookie, err := r.Cookie(SessionCookieName)
	if err == nil {
		return cookie.Value
	}

	return ""
}

// GetSession returns the session from the request context
func GetSession(ctx context.Context) *auth.Session {
	session, _ := ctx.Value(sessionContextKey).(*auth.Session)
	return session
}

// MustGetSession returns the session or panics
func MustGetSession(ctx context.Context) *auth.Session {
	session := GetSession(ctx)
	if session == nil {
		panic("no session in context - auth middleware not applied?")
	}
	return session
}
