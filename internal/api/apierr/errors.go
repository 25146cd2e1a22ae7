package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gamesapx/gamesapx/internal/model"
	"github.com/gamesapx/gamesapx/internal/services/auth"
)

// APIError represents an API error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps an APIError
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// Common error codes
const (
	CodeInvalidRequest     = "INVALID_REQUEST"
	CodeWeakPassword       = "WEAK_PASSWORD"
	CodeInvalidEmail       = "INVALID_EMAIL"
	CodeDuplicateIdentity  = "DUPLICATE_IDENTITY"
	CodeInvalidCredentials = "INVALID_CREDENTIALS"
	CodeUnauthorized       = "UNAUTHORIZED"
	CodeForbidden          = "FORBIDDEN"
	CodeUserNotFound       = "USER_NOT_FOUND"
	CodeGameNotFound       = "GAME_NOT_FOUND"
	CodeDuplicateGame      = "DUPLICATE_GAME"
	CodeInvalidScore       = "INVALID_SCORE"
	CodeInternalError      = "INTERNAL_ERROR"
)

// httpError combines an HTTP status code with an APIError
type httpError struct {
	status   int
	apiError APIError
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.apiError.Message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.apiError})
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	// Check for specific error types
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	// Map model errors
	switch {
	case errors.Is(err, model.ErrDuplicateUser):
		// Deliberately does not say whether the username or the email
		// collided
		return &httpError{http.StatusConflict, APIError{CodeDuplicateIdentity, "Username or email may already exist"}}
	case errors.Is(err, model.ErrUserNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeUserNotFound, "User not found"}}
	case errors.Is(err, model.ErrGameNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeGameNotFound, "Game not found"}}
	case errors.Is(err, model.ErrDuplicateGameName):
		return &httpError{http.StatusConflict, APIError{CodeDuplicateGame, "Game already exists"}}
	case errors.Is(err, model.ErrGameNameRequired):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, "Name and file path are required"}}
	case errors.Is(err, model.ErrGamePathRequired):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, "Name and file path are required"}}
	case errors.Is(err, model.ErrInvalidScore):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidScore, "Score must be a non-negative integer"}}

	// Map auth errors
	case errors.Is(err, auth.ErrWeakPassword):
		return &httpError{http.StatusBadRequest, APIError{CodeWeakPassword, "Password must be at least 8 characters long"}}
	case errors.Is(err, auth.ErrInvalidEmail):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidEmail, "Invalid email format"}}
	case errors.Is(err, auth.ErrInvalidCredentials):
		return &httpError{http.StatusUnauthorized, APIError{CodeInvalidCredentials, "Invalid credentials"}}
	case errors.Is(err, auth.ErrNoSession):
		return &httpError{http.StatusUnauthorized, APIError{CodeUnauthorized, "Authentication required"}}

	default:
		return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, message}}
}

// NewUnauthorizedError creates an unauthorized error
func NewUnauthorizedError() error {
	return &httpError{http.StatusUnauthorized, APIError{CodeUnauthorized, "Authentication required"}}
}

// NewForbiddenError creates an authorization-denied error, distinct from
// the authentication-required one
func NewForbiddenError() error {
	return &httpError{http.StatusForbidden, APIError{CodeForbidden, "Admin access required"}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
}
