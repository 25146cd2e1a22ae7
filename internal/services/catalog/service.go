package catalog

import (
	"context"
	"log/slog"

	"github.com/gamesapx/gamesapx/internal/dependencies/clock"
	"github.com/gamesapx/gamesapx/internal/model"
	"github.com/gamesapx/gamesapx/internal/storage"
)

// Service manages the game catalog. Games are soft-deleted: removal
// flips the lifecycle to inactive and the row stays put so historical
// scores keep a valid reference.
type Service struct {
	storage storage.Storage
	clock   clock.Clock
	logger  *slog.Logger
}

// New creates a new catalog Service
func New(storage storage.Storage, clock clock.Clock, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		clock:   clock,
		logger:  logger,
	}
}

// ListActive returns the publicly visible games in insertion order
func (s *Service) ListActive(ctx context.Context) ([]*model.Game, error) {
	games, err := s.storage.ListGames(ctx)
	if err != nil {
		return nil, err
	}

	active := make([]*model.Game, 0, len(games))
	for _, g := range games {
		if g.IsActive() {
			active = append(active, g)
		}
	}
	return active, nil
}

// ListAll returns every game, active and inactive, in insertion order
func (s *Service) ListAll(ctx context.Context) ([]*model.Game, error) {
	return s.storage.ListGames(ctx)
}

// Get returns a single game by ID
func (s *Service) Get(ctx context.Context, id model.GameID) (*model.Game, error) {
	return s.storage.GetGame(ctx, id)
}

// Add registers a new game. Name and launch path are required;
// description and thumbnail are optional. A name collision, whether with
// an active or an inactive game, is model.ErrDuplicateGameName.
func (s *Service) Add(ctx context.Context, name, description, thumbnail, launchPath string) (*model.Game, error) {
	if name == "" {
		return nil, model.ErrGameNameRequired
	}
	if launchPath == "" {
		return nil, model.ErrGamePathRequired
	}

	game := &model.Game{
		Name:        name,
		Description: description,
		Thumbnail:   thumbnail,
		LaunchPath:  launchPath,
		Lifecycle:   model.LifecycleActive,
		CreatedAt:   s.clock.Now(),
	}

	if err := s.storage.CreateGame(ctx, game); err != nil {
		return nil, err
	}

	s.logger.Info("game added",
		slog.Int64("game_id", int64(game.ID)),
		slog.String("name", game.Name),
	)
	return game, nil
}

// Deactivate soft-deletes a game. The operation is idempotent:
// deactivating an already-inactive game succeeds as a no-op. It fails
// only for an unknown ID.
func (s *Service) Deactivate(ctx context.Context, id model.GameID) error {
	if err := s.storage.DeactivateGame(ctx, id); err != nil {
		return err
	}

	s.logger.Info("game deactivated", slog.Int64("game_id", int64(id)))
	return nil
}
