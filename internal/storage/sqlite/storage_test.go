package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/gamesapx/gamesapx/internal/model"
)

type StorageSuite struct {
	suite.Suite
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	storage, err := New(":memory:")
	s.Require().NoError(err)
	s.storage = storage
	s.ctx = context.Background()
}

func (s *StorageSuite) TearDownTest() {
	if s.storage != nil {
		_ = s.storage.Close()
	}
}

func (s *StorageSuite) createUser(username string) *model.User {
	user := &model.User{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: "hash123",
		CreatedAt:    time.Now().UTC(),
	}
	s.Require().NoError(s.storage.CreateUser(s.ctx, user))
	return user
}

func (s *StorageSuite) createGame(name string) *model.Game {
	game := &model.Game{
		Name:       name,
		LaunchPath: "/games/" + name + ".html",
		Lifecycle:  model.LifecycleActive,
		CreatedAt:  time.Now().UTC(),
	}
	s.Require().NoError(s.storage.CreateGame(s.ctx, game))
	return game
}

// User tests

func (s *StorageSuite) TestCreateAndGetUser() {
	user := s.createUser("alice")
	s.NotZero(user.ID)

	retrieved, err := s.storage.GetUser(s.ctx, user.ID)
	s.Require().NoError(err)
	s.Equal("alice", retrieved.Username)
	s.Equal("alice@example.com", retrieved.Email)
	s.Equal("hash123", retrieved.PasswordHash)
	s.False(retrieved.IsAdmin)
}

func (s *StorageSuite) TestGetUserNotFound() {
	_, err := s.storage.GetUser(s.ctx, 999)
	s.ErrorIs(err, model.ErrUserNotFound)
}

func (s *StorageSuite) TestGetUserByUsername() {
	user := s.createUser("alice")

	retrieved, err := s.storage.GetUserByUsername(s.ctx, "alice")
	s.Require().NoError(err)
	s.Equal(user.ID, retrieved.ID)
}

func (s *StorageSuite) TestGetUserByUsernameNotFound() {
	_, err := s.storage.GetUserByUsername(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrUserNotFound)
}

func (s *StorageSuite) TestDuplicateUsernameRejected() {
	s.createUser("alice")

	dup := &model.User{
		Username:     "alice",
		Email:        "other@example.com",
		PasswordHash: "hash123",
		CreatedAt:    time.Now().UTC(),
	}
	err := s.storage.CreateUser(s.ctx, dup)
	s.ErrorIs(err, model.ErrDuplicateUser)
}

func (s *StorageSuite) TestDuplicateEmailRejected() {
	s.createUser("alice")

	dup := &model.User{
		Username:     "bob",
		Email:        "alice@example.com",
		PasswordHash: "hash123",
		CreatedAt:    time.Now().UTC(),
	}
	err := s.storage.CreateUser(s.ctx, dup)
	s.ErrorIs(err, model.ErrDuplicateUser)
}

func (s *StorageSuite) TestSetUserAdmin() {
	user := s.createUser("alice")

	err := s.storage.SetUserAdmin(s.ctx, user.ID, true)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetUser(s.ctx, user.ID)
	s.Require().NoError(err)
	s.True(retrieved.IsAdmin)
}

func (s *StorageSuite) TestSetUserAdminNotFound() {
	err := s.storage.SetUserAdmin(s.ctx, 999, true)
	s.ErrorIs(err, model.ErrUserNotFound)
}

// Game tests

func (s *StorageSuite) TestCreateAndGetGame() {
	game := s.createGame("Snake")
	s.NotZero(game.ID)

	retrieved, err := s.storage.GetGame(s.ctx, game.ID)
	s.Require().NoError(err)
	s.Equal("Snake", retrieved.Name)
	s.Equal("/games/Snake.html", retrieved.LaunchPath)
	s.Equal(model.LifecycleActive, retrieved.Lifecycle)
}

func (s *StorageSuite) TestGetGameNotFound() {
	_, err := s.storage.GetGame(s.ctx, 999)
	s.ErrorIs(err, model.ErrGameNotFound)
}

func (s *StorageSuite) TestDuplicateGameNameRejected() {
	s.createGame("Snake")

	dup := &model.Game{
		Name:       "Snake",
		LaunchPath: "/games/snake2.html",
		Lifecycle:  model.LifecycleActive,
		CreatedAt:  time.Now().UTC(),
	}
	err := s.storage.CreateGame(s.ctx, dup)
	s.ErrorIs(err, model.ErrDuplicateGameName)
}

func (s *StorageSuite) TestDuplicateGameNameSpansInactiveGames() {
	game := s.createGame("Snake")
	s.Require().NoError(s.storage.DeactivateGame(s.ctx, game.ID))

	dup := &model.Game{
		Name:       "Snake",
		LaunchPath: "/games/snake2.html",
		Lifecycle:  model.LifecycleActive,
		CreatedAt:  time.Now().UTC(),
	}
	err := s.storage.CreateGame(s.ctx, dup)
	s.ErrorIs(err, model.ErrDuplicateGameName)
}

func (s *StorageSuite) TestListGamesInsertionOrder() {
	s.createGame("Snake")
	s.createGame("Pong")
	s.createGame("Tetris")

	games, err := s.storage.ListGames(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(games, 3)
	s.Equal("Snake", games[0].Name)
	s.Equal("Pong", games[1].Name)
	s.Equal("Tetris", games[2].Name)
}

func (s *StorageSuite) TestListGamesEmpty() {
	games, err := s.storage.ListGames(s.ctx)
	s.Require().NoError(err)
	s.Empty(games)
}

func (s *StorageSuite) TestDeactivateGame() {
	game := s.createGame("Snake")

	err := s.storage.DeactivateGame(s.ctx, game.ID)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetGame(s.ctx, game.ID)
	s.Require().NoError(err)
	s.False(retrieved.IsActive())
}

func (s *StorageSuite) TestDeactivateGameNotFound() {
	err := s.storage.DeactivateGame(s.ctx, 999)
	s.ErrorIs(err, model.ErrGameNotFound)
}

// Score tests

func (s *StorageSuite) TestCreateScore() {
	user := s.createUser("alice")
	game := s.createGame("Snake")

	score := &model.Score{
		UserID:    user.ID,
		GameID:    game.ID,
		Value:     100,
		CreatedAt: time.Now().UTC(),
	}
	err := s.storage.CreateScore(s.ctx, score)
	s.Require().NoError(err)
	s.NotZero(score.ID)
}

func (s *StorageSuite) TestCreateScoreRejectsNegative() {
	user := s.createUser("alice")
	game := s.createGame("Snake")

	score := &model.Score{
		UserID:    user.ID,
		GameID:    game.ID,
		Value:     -1,
		CreatedAt: time.Now().UTC(),
	}
	err := s.storage.CreateScore(s.ctx, score)
	s.ErrorIs(err, model.ErrInvalidScore)
}

func (s *StorageSuite) TestScoresForGameInsertionOrder() {
	user := s.createUser("alice")
	snake := s.createGame("Snake")
	pong := s.createGame("Pong")

	for _, v := range []int{50, 90, 30} {
		score := &model.Score{UserID: user.ID, GameID: snake.ID, Value: v, CreatedAt: time.Now().UTC()}
		s.Require().NoError(s.storage.CreateScore(s.ctx, score))
	}
	other := &model.Score{UserID: user.ID, GameID: pong.ID, Value: 77, CreatedAt: time.Now().UTC()}
	s.Require().NoError(s.storage.CreateScore(s.ctx, other))

	scores, err := s.storage.ScoresForGame(s.ctx, snake.ID)
	s.Require().NoError(err)
	s.Require().Len(scores, 3)
	s.Equal(50, scores[0].Value)
	s.Equal(90, scores[1].Value)
	s.Equal(30, scores[2].Value)
}

func (s *StorageSuite) TestScoresForGameEmpty() {
	scores, err := s.storage.ScoresForGame(s.ctx, 999)
	s.Require().NoError(err)
	s.Empty(scores)
}

func (s *StorageSuite) TestScoresForUser() {
	alice := s.createUser("alice")
	bob := s.createUser("bob")
	game := s.createGame("Snake")

	mine := &model.Score{UserID: alice.ID, GameID: game.ID, Value: 10, CreatedAt: time.Now().UTC()}
	theirs := &model.Score{UserID: bob.ID, GameID: game.ID, Value: 20, CreatedAt: time.Now().UTC()}
	s.Require().NoError(s.storage.CreateScore(s.ctx, mine))
	s.Require().NoError(s.storage.CreateScore(s.ctx, theirs))

	scores, err := s.storage.ScoresForUser(s.ctx, alice.ID)
	s.Require().NoError(err)
	s.Require().Len(scores, 1)
	s.Equal(10, scores[0].Value)
}

func (s *StorageSuite) TestDuplicateScoresBothStored() {
	user := s.createUser("alice")
	game := s.createGame("Snake")

	for i := 0; i < 2; i++ {
		score := &model.Score{UserID: user.ID, GameID: game.ID, Value: 100, CreatedAt: time.Now().UTC()}
		s.Require().NoError(s.storage.CreateScore(s.ctx, score))
	}

	scores, err := s.storage.ScoresForGame(s.ctx, game.ID)
	s.Require().NoError(err)
	s.Len(scores, 2)
}
