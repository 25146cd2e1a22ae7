package storage

import (
	"context"

	"github.com/gamesapx/gamesapx/internal/model"
)

// Storage defines the interface for data persistence.
//
// Uniqueness of usernames, emails and game names is enforced here so that
// concurrent duplicate writes surface as ErrDuplicateUser /
// ErrDuplicateGameName rather than corrupting state. List operations
// return rows in insertion order; ranking and filtering are service
// concerns.
type Storage interface {
	// User operations
	// CreateUser assigns user.ID on success
	CreateUser(ctx context.Context, user *model.User) error
	GetUser(ctx context.Context, id model.UserID) (*model.User, error)
	GetUserByUsername(ctx context.Context, username string) (*model.User, error)
	// SetUserAdmin flips the operator-managed admin flag; it does not
	// touch issued sessions
	SetUserAdmin(ctx context.Context, id model.UserID, isAdmin bool) error

	// Game operations
	// CreateGame assigns game.ID on success
	CreateGame(ctx context.Context, game *model.Game) error
	GetGame(ctx context.Context, id model.GameID) (*model.Game, error)
	ListGames(ctx context.Context) ([]*model.Game, error)
	// DeactivateGame is idempotent; it fails only for an unknown ID
	DeactivateGame(ctx context.Context, id model.GameID) error

	// Score operations (append-only)
	// CreateScore assigns score.ID on success
	CreateScore(ctx context.Context, score *model.Score) error
	ScoresForGame(ctx context.Context, gameID model.GameID) ([]*model.Score, error)
	ScoresForUser(ctx context.Context, userID model.UserID) ([]*model.Score, error)

	// Close releases any underlying resources
	Close() error
}
