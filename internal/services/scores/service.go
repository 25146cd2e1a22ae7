package scores

import (
	"context"
	"log/slog"
	"sort"

	"github.com/gamesapx/gamesapx/internal/dependencies/clock"
	"github.com/gamesapx/gamesapx/internal/model"
	"github.com/gamesapx/gamesapx/internal/storage"
)

// DefaultLeaderboardLimit is the number of rows a leaderboard shows when
// the caller does not ask for a specific limit
const DefaultLeaderboardLimit = 10

// Service is the score ledger and the leaderboard engine over it. The
// ledger is append-only and does not deduplicate: a user replaying the
// same game with the same score yields two rows.
type Service struct {
	storage storage.Storage
	clock   clock.Clock
	logger  *slog.Logger
}

// New creates a new scores Service
func New(storage storage.Storage, clock clock.Clock, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		clock:   clock,
		logger:  logger,
	}
}

// Record appends a play result to the ledger. The score must be
// non-negative and the game must exist, but it need not be active: a
// score against a since-deactivated game is valid history.
func (s *Service) Record(ctx context.Context, userID model.UserID, gameID model.GameID, value int) (*model.Score, error) {
	if value < 0 {
		return nil, model.ErrInvalidScore
	}

	if _, err := s.storage.GetGame(ctx, gameID); err != nil {
		return nil, err
	}

	score := &model.Score{
		UserID:    userID,
		GameID:    gameID,
		Value:     value,
		CreatedAt: s.clock.Now(),
	}

	if err := s.storage.CreateScore(ctx, score); err != nil {
		return nil, err
	}

	s.logger.Info("score recorded",
		slog.Int64("score_id", int64(score.ID)),
		slog.Int64("user_id", int64(userID)),
		slog.Int64("game_id", int64(gameID)),
		slog.Int("score", value),
	)
	return score, nil
}

// TopForGame returns the highest-scoring rows for a game, score
// descending. Ties keep insertion order (first recorded wins precedence)
// and rows are not deduplicated per user, so one user can occupy several
// slots. An unknown game yields an empty leaderboard, not an error.
func (s *Service) TopForGame(ctx context.Context, gameID model.GameID, limit int) ([]model.LeaderboardEntry, error) {
	if limit <= 0 {
		limit = DefaultLeaderboardLimit
	}

	rows, err := s.storage.ScoresForGame(ctx, gameID)
	if err != nil {
		return nil, err
	}

	// rows arrive in insertion order; the stable sort preserves it as the
	// tie-break
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Value > rows[j].Value
	})
	if len(rows) > limit {
		rows = rows[:limit]
	}

	usernames := make(map[model.UserID]string)
	entries := make([]model.LeaderboardEntry, 0, len(rows))
	for _, row := range rows {
		name, ok := usernames[row.UserID]
		if !ok {
			user, err := s.storage.GetUser(ctx, row.UserID)
			if err != nil {
				return nil, err
			}
			name = user.Username
			usernames[row.UserID] = name
		}
		entries = append(entries, model.LeaderboardEntry{
			Username:  name,
			Score:     row.Value,
			CreatedAt: row.CreatedAt,
		})
	}
	return entries, nil
}

// History returns a user's full play history, most recent first,
// including scores for games deactivated since
func (s *Service) History(ctx context.Context, userID model.UserID) ([]model.UserScore, error) {
	rows, err := s.storage.ScoresForUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	gameNames := make(map[model.GameID]string)
	history := make([]model.UserScore, 0, len(rows))
	// rows arrive oldest first; walk backwards for recency order
	for i := len(rows) - 1; i >= 0; i-- {
		row := rows[i]
		name, ok := gameNames[row.GameID]
		if !ok {
			game, err := s.storage.GetGame(ctx, row.GameID)
			if err != nil {
				return nil, err
			}
			name = game.Name
			gameNames[row.GameID] = name
		}
		history = append(history, model.UserScore{
			GameName:  name,
			Score:     row.Value,
			CreatedAt: row.CreatedAt,
		})
	}
	return history, nil
}
