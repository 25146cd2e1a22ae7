package redis

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/gamesapx/gamesapx/internal/model"
	"github.com/gamesapx/gamesapx/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Storage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// User operations

func (s *Storage) CreateUser(ctx context.Context, user *model.User) error {
	id, err := s.client.Incr(ctx, userSeqKey()).Result()
	if err != nil {
		return err
	}
	user.ID = model.UserID(id)

	// Claim both uniqueness indexes atomically via SETNX; a lost race on
	// either one surfaces as the single undifferentiated duplicate error
	ok, err := s.client.SetNX(ctx, usernameIndexKey(user.Username), id, 0).Result()
	if err != nil {
		return err
	}
	if !ok {
		return model.ErrDuplicateUser
	}

	ok, err = s.client.SetNX(ctx, emailIndexKey(user.Email), id, 0).Result()
	if err != nil {
		return err
	}
	if !ok {
		// Roll back the username claim so the name stays available
		_ = s.client.Del(ctx, usernameIndexKey(user.Username)).Err()
		return model.ErrDuplicateUser
	}

	data, err := json.Marshal(user)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, userKey(user.ID), data, 0).Err()
}

func (s *Storage) GetUser(ctx context.Context, id model.UserID) (*model.User, error) {
	data, err := s.client.Get(ctx, userKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrUserNotFound
		}
		return nil, err
	}

	var user model.User
	if err := json.Unmarshal(data, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *Storage) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	idStr, err := s.client.Get(ctx, usernameIndexKey(username)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrUserNotFound
		}
		return nil, err
	}

	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		return nil, err
	}
	return s.GetUser(ctx, model.UserID(id))
}

func (s *Storage) SetUserAdmin(ctx context.Context, id model.UserID, isAdmin bool) error {
	user, err := s.GetUser(ctx, id)
	if err != nil {
		return err
	}

	user.IsAdmin = isAdmin
	data, err := json.Marshal(user)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, userKey(id), data, 0).Err()
}

// Game operations

func (s *Storage) CreateGame(ctx context.Context, game *model.Game) error {
	id, err := s.client.Incr(ctx, gameSeqKey()).Result()
	if err != nil {
		return err
	}
	game.ID = model.GameID(id)

	// Name uniqueness spans active and inactive games; the index entry is
	// never released on deactivation
	ok, err := s.client.SetNX(ctx, gameNameIndexKey(game.Name), id, 0).Result()
	if err != nil {
		return err
	}
	if !ok {
		return model.ErrDuplicateGameName
	}

	data, err := json.Marshal(game)
	if err != nil {
		return err
	}

	// Pipeline for atomic save + insertion-order index update
	pipe := s.client.Pipeline()
	pipe.Set(ctx, gameKey(game.ID), data, 0)
	pipe.RPush(ctx, gameOrderKey(), gameKey(game.ID))
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) GetGame(ctx context.Context, id model.GameID) (*model.Game, error) {
	data, err := s.client.Get(ctx, gameKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrGameNotFound
		}
		return nil, err
	}

	var game model.Game
	if err := json.Unmarshal(data, &game); err != nil {
		return nil, err
	}
	return &game, nil
}

func (s *Storage) ListGames(ctx context.Context) ([]*model.Game, error) {
	keys, err := s.client.LRange(ctx, gameOrderKey(), 0, -1).Result()
	if err != nil {
		return nil, err
	}
	if len(keys) == 0 {
		return []*model.Game{}, nil
	}

	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}

	games := make([]*model.Game, 0, len(values))
	for _, val := range values {
		if val == nil {
			continue
		}
		var game model.Game
		if err := json.Unmarshal([]byte(val.(string)), &game); err != nil {
			continue // Skip invalid data
		}
		games = append(games, &game)
	}
	return games, nil
}

func (s *Storage) DeactivateGame(ctx context.Context, id model.GameID) error {
	game, err := s.GetGame(ctx, id)
	if err != nil {
		return err
	}

	game.Deactivate()
	data, err := json.Marshal(game)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, gameKey(id), data, 0).Err()
}

// Score operations

func (s *Storage) CreateScore(ctx context.Context, score *model.Score) error {
	id, err := s.client.Incr(ctx, scoreSeqKey()).Result()
	if err != nil {
		return err
	}
	score.ID = model.ScoreID(id)

	data, err := json.Marshal(score)
	if err != nil {
		return err
	}

	// Pipeline for atomic save + per-game and per-user insertion-order
	// index updates
	pipe := s.client.Pipeline()
	pipe.Set(ctx, scoreKey(score.ID), data, 0)
	pipe.RPush(ctx, scoresForGameKey(score.GameID), scoreKey(score.ID))
	pipe.RPush(ctx, scoresForUserKey(score.UserID), scoreKey(score.ID))
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) ScoresForGame(ctx context.Context, gameID model.GameID) ([]*model.Score, error) {
	return s.scoresByIndex(ctx, scoresForGameKey(gameID))
}

func (s *Storage) ScoresForUser(ctx context.Context, userID model.UserID) ([]*model.Score, error) {
	return s.scoresByIndex(ctx, scoresForUserKey(userID))
}

func (s *Storage) scoresByIndex(ctx context.Context, indexKey string) ([]*model.Score, error) {
	keys, err := s.client.LRange(ctx, indexKey, 0, -1).Result()
	if err != nil {
		return nil, err
	}
	if len(keys) == 0 {
		return nil, nil
	}

	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}

	scores := make([]*model.Score, 0, len(values))
	for _, val := range values {
		if val == nil {
			continue
		}
		var score model.Score
		if err := json.Unmarshal([]byte(val.(string)), &score); err != nil {
			continue // Skip invalid data
		}
		scores = append(scores, &score)
	}
	return scores, nil
}
