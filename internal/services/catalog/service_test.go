package catalog

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/gamesapx/gamesapx/internal/dependencies/mocks"
	"github.com/gamesapx/gamesapx/internal/model"
	"github.com/gamesapx/gamesapx/internal/storage/memory"
	"github.com/gamesapx/gamesapx/internal/testutil"
)

type ServiceSuite struct {
	suite.Suite
	storage *memory.Storage
	service *Service
	ctx     context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.storage = memory.New()
	clk := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	s.service = New(s.storage, clk, testutil.NopLogger())
	s.ctx = context.Background()
}

func (s *ServiceSuite) TestAddSucceeds() {
	game, err := s.service.Add(s.ctx, "Snake", "Classic Snake game", "/images/snake.png", "/games/snake.html")
	s.Require().NoError(err)

	s.NotZero(game.ID)
	s.Equal("Snake", game.Name)
	s.Equal(model.LifecycleActive, game.Lifecycle)
	s.True(game.IsActive())
}

func (s *ServiceSuite) TestAddAllowsOptionalFieldsEmpty() {
	game, err := s.service.Add(s.ctx, "Snake", "", "", "/games/snake.html")
	s.Require().NoError(err)
	s.Empty(game.Description)
	s.Empty(game.Thumbnail)
}

func (s *ServiceSuite) TestAddRequiresName() {
	_, err := s.service.Add(s.ctx, "", "desc", "thumb", "/games/snake.html")
	s.ErrorIs(err, model.ErrGameNameRequired)
}

func (s *ServiceSuite) TestAddRequiresLaunchPath() {
	_, err := s.service.Add(s.ctx, "Snake", "desc", "thumb", "")
	s.ErrorIs(err, model.ErrGamePathRequired)
}

func (s *ServiceSuite) TestAddRejectsDuplicateName() {
	_, err := s.service.Add(s.ctx, "Snake", "", "", "/games/snake.html")
	s.Require().NoError(err)

	_, err = s.service.Add(s.ctx, "Snake", "other", "", "/games/snake2.html")
	s.ErrorIs(err, model.ErrDuplicateGameName)
}

func (s *ServiceSuite) TestAddRejectsNameOfInactiveGame() {
	game, err := s.service.Add(s.ctx, "Snake", "", "", "/games/snake.html")
	s.Require().NoError(err)
	s.Require().NoError(s.service.Deactivate(s.ctx, game.ID))

	// Name uniqueness spans inactive games; no re-use
	_, err = s.service.Add(s.ctx, "Snake", "", "", "/games/snake2.html")
	s.ErrorIs(err, model.ErrDuplicateGameName)
}

func (s *ServiceSuite) TestListActiveExcludesDeactivated() {
	snake, err := s.service.Add(s.ctx, "Snake", "", "", "/games/snake.html")
	s.Require().NoError(err)
	_, err = s.service.Add(s.ctx, "Tic-Tac-Toe", "", "", "/games/tictactoe.html")
	s.Require().NoError(err)

	s.Require().NoError(s.service.Deactivate(s.ctx, snake.ID))

	active, err := s.service.ListActive(s.ctx)
	s.Require().NoError(err)
	s.Len(active, 1)
	s.Equal("Tic-Tac-Toe", active[0].Name)
}

func (s *ServiceSuite) TestListAllIncludesDeactivated() {
	snake, err := s.service.Add(s.ctx, "Snake", "", "", "/games/snake.html")
	s.Require().NoError(err)
	_, err = s.service.Add(s.ctx, "Tic-Tac-Toe", "", "", "/games/tictactoe.html")
	s.Require().NoError(err)

	s.Require().NoError(s.service.Deactivate(s.ctx, snake.ID))

	all, err := s.service.ListAll(s.ctx)
	s.Require().NoError(err)
	s.Len(all, 2)
}

func (s *ServiceSuite) TestListKeepsInsertionOrder() {
	names := []string{"Snake", "Tic-Tac-Toe", "Memory Match"}
	for _, name := range names {
		_, err := s.service.Add(s.ctx, name, "", "", "/games/x.html")
		s.Require().NoError(err)
	}

	all, err := s.service.ListAll(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(all, 3)
	for i, name := range names {
		s.Equal(name, all[i].Name)
	}
}

func (s *ServiceSuite) TestDeactivateIsIdempotent() {
	game, err := s.service.Add(s.ctx, "Snake", "", "", "/games/snake.html")
	s.Require().NoError(err)

	s.Require().NoError(s.service.Deactivate(s.ctx, game.ID))
	s.Require().NoError(s.service.Deactivate(s.ctx, game.ID))

	active, err := s.service.ListActive(s.ctx)
	s.Require().NoError(err)
	s.Empty(active)
}

func (s *ServiceSuite) TestDeactivateUnknownGameFails() {
	err := s.service.Deactivate(s.ctx, 999)
	s.ErrorIs(err, model.ErrGameNotFound)
}
