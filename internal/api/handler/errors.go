package handler

import (
	"net/http"

	"github.com/gamesapx/gamesapx/internal/api/apierr"
)

// Re-export from apierr for convenience
type APIError = apierr.APIError
type ErrorResponse = apierr.ErrorResponse

// Re-export error codes
const (
	CodeInvalidRequest     = apierr.CodeInvalidRequest
	CodeWeakPassword       = apierr.CodeWeakPassword
	CodeInvalidEmail       = apierr.CodeInvalidEmail
	CodeDuplicateIdentity  = apierr.CodeDuplicateIdentity
	CodeInvalidCredentials = apierr.CodeInvalidCredentials
	CodeUnauthorized       = apierr.CodeUnauthorized
	CodeForbidden          = apierr.CodeForbidden
	CodeUserNotFound       = apierr.CodeUserNotFound
	CodeGameNotFound       = apierr.CodeGameNotFound
	CodeDuplicateGame      = apierr.CodeDuplicateGame
	CodeInvalidScore       = apierr.CodeInvalidScore
	CodeInternalError      = apierr.CodeInternalError
)

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	apierr.WriteError(w, err)
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return apierr.NewInvalidRequestError(message)
}

// NewUnauthorizedError creates an unauthorized error
func NewUnauthorizedError() error {
	return apierr.NewUnauthorizedError()
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return apierr.NewInternalError()
}
