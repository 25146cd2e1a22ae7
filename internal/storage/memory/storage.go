package memory

import (
	"context"
	"sync"

	"github.com/gamesapx/gamesapx/internal/model"
	"github.com/gamesapx/gamesapx/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu sync.RWMutex

	users         map[model.UserID]*model.User
	usernameIndex map[string]model.UserID
	emailIndex    map[string]model.UserID
	nextUserID    model.UserID

	games         map[model.GameID]*model.Game
	gameNameIndex map[string]model.GameID
	gameOrder     []model.GameID
	nextGameID    model.GameID

	scores      map[model.ScoreID]*model.Score
	scoreOrder  []model.ScoreID
	nextScoreID model.ScoreID
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		users:         make(map[model.UserID]*model.User),
		usernameIndex: make(map[string]model.UserID),
		emailIndex:    make(map[string]model.UserID),
		games:         make(map[model.GameID]*model.Game),
		gameNameIndex: make(map[string]model.GameID),
		scores:        make(map[model.ScoreID]*model.Score),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// User operations

func (s *Storage) CreateUser(ctx context.Context, user *model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, taken := s.usernameIndex[user.Username]; taken {
		return model.ErrDuplicateUser
	}
	if _, taken := s.emailIndex[user.Email]; taken {
		return model.ErrDuplicateUser
	}

	s.nextUserID++
	user.ID = s.nextUserID

	s.users[user.ID] = user
	s.usernameIndex[user.Username] = user.ID
	s.emailIndex[user.Email] = user.ID
	return nil
}

func (s *Storage) GetUser(ctx context.Context, id model.UserID) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	user, ok := s.users[id]
	if !ok {
		return nil, model.ErrUserNotFound
	}
	u := *user
	return &u, nil
}

func (s *Storage) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.usernameIndex[username]
	if !ok {
		return nil, model.ErrUserNotFound
	}
	u := *s.users[id]
	return &u, nil
}

func (s *Storage) SetUserAdmin(ctx context.Context, id model.UserID, isAdmin bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[id]
	if !ok {
		return model.ErrUserNotFound
	}
	user.IsAdmin = isAdmin
	return nil
}

// Game operations

func (s *Storage) CreateGame(ctx context.Context, game *model.Game) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Name uniqueness spans active and inactive games alike
	if _, taken := s.gameNameIndex[game.Name]; taken {
		return model.ErrDuplicateGameName
	}

	s.nextGameID++
	game.ID = s.nextGameID

	s.games[game.ID] = game
	s.gameNameIndex[game.Name] = game.ID
	s.gameOrder = append(s.gameOrder, game.ID)
	return nil
}

func (s *Storage) GetGame(ctx context.Context, id model.GameID) (*model.Game, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	game, ok := s.games[id]
	if !ok {
		return nil, model.ErrGameNotFound
	}
	g := *game
	return &g, nil
}

func (s *Storage) ListGames(ctx context.Context) ([]*model.Game, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	games := make([]*model.Game, 0, len(s.gameOrder))
	for _, id := range s.gameOrder {
		g := *s.games[id]
		games = append(games, &g)
	}
	return games, nil
}

func (s *Storage) DeactivateGame(ctx context.Context, id model.GameID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	game, ok := s.games[id]
	if !ok {
		return model.ErrGameNotFound
	}
	game.Deactivate()
	return nil
}

// Score operations

func (s *Storage) CreateScore(ctx context.Context, score *model.Score) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextScoreID++
	score.ID = s.nextScoreID

	s.scores[score.ID] = score
	s.scoreOrder = append(s.scoreOrder, score.ID)
	return nil
}

func (s *Storage) ScoresForGame(ctx context.Context, gameID model.GameID) ([]*model.Score, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var scores []*model.Score
	for _, id := range s.scoreOrder {
		if s.scores[id].GameID == gameID {
			sc := *s.scores[id]
			scores = append(scores, &sc)
		}
	}
	return scores, nil
}

func (s *Storage) ScoresForUser(ctx context.Context, userID model.UserID) ([]*model.Score, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var scores []*model.Score
	for _, id := range s.scoreOrder {
		if s.scores[id].UserID == userID {
			sc := *s.scores[id]
			scores = append(scores, &sc)
		}
	}
	return scores, nil
}

// Close is a no-op for the in-memory backend
func (s *Storage) Close() error {
	return nil
}
