package model

import "errors"

// Common errors used across the application
var (
	// User errors
	ErrUserNotFound = errors.New("user not found")
	// ErrDuplicateUser covers both username and email collisions; callers
	// are not told which field collided
	ErrDuplicateUser = errors.New("username or email already exists")

	// Game errors
	ErrGameNotFound      = errors.New("game not found")
	ErrDuplicateGameName = errors.New("game name already exists")
	ErrGameNameRequired  = errors.New("game name is required")
	ErrGamePathRequired  = errors.New("game launch path is required")

	// Score errors
	ErrInvalidScore = errors.New("score must be a non-negative integer")
)
