package factory

import (
	"context"
	"errors"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"github.com/gamesapx/gamesapx/internal/model"
)

// SeedConfig holds the default records created at first startup
type SeedConfig struct {
	AdminUsername string
	AdminEmail    string
	AdminPassword string
}

// DefaultSeedConfig returns the stock admin account. Override the
// password in production.
func DefaultSeedConfig() SeedConfig {
	return SeedConfig{
		AdminUsername: "admin",
		AdminEmail:    "admin@gamesapx.com",
		AdminPassword: "admin123",
	}
}

// defaultGames are the games the platform ships with
var defaultGames = []model.Game{
	{
		Name:        "Tic-Tac-Toe",
		Description: "Classic Tic-Tac-Toe game",
		Thumbnail:   "/images/tictactoe.png",
		LaunchPath:  "/games/tictactoe.html",
	},
	{
		Name:        "Snake",
		Description: "Classic Snake game",
		Thumbnail:   "/images/snake.png",
		LaunchPath:  "/games/snake.html",
	},
	{
		Name:        "Memory Match",
		Description: "Memory card matching game",
		Thumbnail:   "/images/memory.png",
		LaunchPath:  "/games/memory.html",
	},
}

// Seed creates the default admin account and stock games. It is
// idempotent: duplicates from earlier runs are skipped, so calling it on
// every startup is safe.
func (a *App) Seed(ctx context.Context, cfg SeedConfig, logger *slog.Logger) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := &model.User{
		Username:     cfg.AdminUsername,
		Email:        cfg.AdminEmail,
		PasswordHash: string(hash),
		IsAdmin:      true,
		CreatedAt:    a.Clock.Now(),
	}
	if err := a.Storage.CreateUser(ctx, admin); err != nil {
		if !errors.Is(err, model.ErrDuplicateUser) {
			return err
		}
	} else {
		logger.Info("seeded admin user", slog.String("username", cfg.AdminUsername))
	}

	for _, g := range defaultGames {
		game := g
		game.Lifecycle = model.LifecycleActive
		game.CreatedAt = a.Clock.Now()

		if err := a.Storage.CreateGame(ctx, &game); err != nil {
			if !errors.Is(err, model.ErrDuplicateGameName) {
				return err
			}
			continue
		}
		logger.Info("seeded game", slog.String("name", game.Name))
	}

	return nil
}
