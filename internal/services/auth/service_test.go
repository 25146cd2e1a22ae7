package auth

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
	clock   *mocks.MockClock
	service *Service
	ctx     context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.storage = memory.New()
	s.clock = mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	s.service = New(s.storage, s.clock, DefaultConfig(), testutil.NopLogger())
	s.ctx = context.Background()
}

// Register tests

func (s *ServiceSuite) TestRegisterSucceeds() {
	user, err := s.service.Register(s.ctx, "alice", "alice@example.com", "password1")
	s.Require().NoError(err)

	s.NotZero(user.ID)
	s.Equal("alice", user.Username)
	s.Equal("alice@example.com", user.Email)
	s.False(user.IsAdmin)
}

func (s *ServiceSuite) TestRegisterHashesPassword() {
	user, err := s.service.Register(s.ctx, "alice", "alice@example.com", "password1")
	s.Require().NoError(err)

	stored, err := s.storage.GetUser(s.ctx, user.ID)
	s.Require().NoError(err)
	s.NotEmpty(stored.PasswordHash)
	s.NotEqual("password1", stored.PasswordHash)
}

func (s *ServiceSuite) TestRegisterDoesNotCreateSession() {
	_, err := s.service.Register(s.ctx, "alice", "alice@example.com", "password1")
	s.Require().NoError(err)

	// A separate login is required after registration
	_, err = s.service.Login(s.ctx, "alice", "password1")
	s.NoError(err)
}

func (s *ServiceSuite) TestRegisterRejectsShortPassword() {
	_, err := s.service.Register(s.ctx, "alice", "alice@example.com", "short7c")
	s.ErrorIs(err, ErrWeakPassword)
}

func (s *ServiceSuite) TestRegisterAcceptsExactlyEightCharPassword() {
	_, err := s.service.Register(s.ctx, "alice", "alice@example.com", "12345678")
	s.NoError(err)
}

func (s *ServiceSuite) TestRegisterRejectsBadEmail() {
	for _, email := range []string{"not-an-email", "missing@tld", "@nodomain.com", "spaces in@mail.com"} {
		_, err := s.service.Register(s.ctx, "alice", email, "password1")
		s.ErrorIs(err, ErrInvalidEmail, "email %q", email)
	}
}

func (s *ServiceSuite) TestRegisterDuplicateUsername() {
	_, err := s.service.Register(s.ctx, "alice", "alice@example.com", "password1")
	s.Require().NoError(err)

	_, err = s.service.Register(s.ctx, "alice", "other@example.com", "password1")
	s.ErrorIs(err, model.ErrDuplicateUser)
}

func (s *ServiceSuite) TestRegisterDuplicateEmail() {
	_, err := s.service.Register(s.ctx, "alice", "alice@example.com", "password1")
	s.Require().NoError(err)

	_, err = s.service.Register(s.ctx, "alice2", "alice@example.com", "password1")
	s.ErrorIs(err, model.ErrDuplicateUser)
}

// Login tests

func (s *ServiceSuite) TestLoginSucceeds() {
	_, err := s.service.Register(s.ctx, "alice", "alice@example.com", "password1")
	s.Require().NoError(err)

	session, err := s.service.Login(s.ctx, "alice", "password1")
	s.Require().NoError(err)

	s.NotEmpty(session.Token)
	s.Equal("alice", session.Username)
	s.False(session.IsAdmin)
	s.Equal(s.clock.Now().Add(24*time.Hour), session.ExpiresAt)
}

func (s *ServiceSuite) TestLoginFailsWithWrongPassword() {
	_, _ = s.service.Register(s.ctx, "alice", "alice@example.com", "password1")

	_, err := s.service.Login(s.ctx, "alice", "wrongpassword")
	s.ErrorIs(err, ErrInvalidCredentials)
}

func (s *ServiceSuite) TestLoginFailsWithUnknownUser() {
	_, err := s.service.Login(s.ctx, "nobody", "password1")
	s.ErrorIs(err, ErrInvalidCredentials)
}

func (s *ServiceSuite) TestConcurrentSessionsAreIndependent() {
	_, _ = s.service.Register(s.ctx, "alice", "alice@example.com", "password1")

	first, err := s.service.Login(s.ctx, "alice", "password1")
	s.Require().NoError(err)
	second, err := s.service.Login(s.ctx, "alice", "password1")
	s.Require().NoError(err)
	s.NotEqual(first.Token, second.Token)

	s.Require().NoError(s.service.InvalidateSession(first.Token))

	_, err = s.service.ValidateSession(first.Token)
	s.ErrorIs(err, ErrNoSession)
	_, err = s.service.ValidateSession(second.Token)
	s.NoError(err)
}

// Session claim snapshot tests

func (s *ServiceSuite) TestAdminClaimIsSnapshotAtLogin() {
	user, err := s.service.Register(s.ctx, "alice", "alice@example.com", "password1")
	s.Require().NoError(err)

	session, err := s.service.Login(s.ctx, "alice", "password1")
	s.Require().NoError(err)
	s.False(session.IsAdmin)

	// Promote after login: the issued session keeps its stale claim
	s.Require().NoError(s.storage.SetUserAdmin(s.ctx, user.ID, true))

	resolved, err := s.service.ValidateSession(session.Token)
	s.Require().NoError(err)
	s.False(resolved.IsAdmin)

	// The flag takes effect on the next login
	fresh, err := s.service.Login(s.ctx, "alice", "password1")
	s.Require().NoError(err)
	s.True(fresh.IsAdmin)
}

// ValidateSession tests

func (s *ServiceSuite) TestValidateSessionFailsWithInvalidToken() {
	_, err := s.service.ValidateSession("invalid_token")
	s.ErrorIs(err, ErrNoSession)
}

func (s *ServiceSuite) TestValidateSessionFailsWhenExpired() {
	_, _ = s.service.Register(s.ctx, "alice", "alice@example.com", "password1")
	session, err := s.service.Login(s.ctx, "alice", "password1")
	s.Require().NoError(err)

	// Advance time past the absolute 24h expiry
	s.clock.Advance(25 * time.Hour)

	_, err = s.service.ValidateSession(session.Token)
	s.ErrorIs(err, ErrNoSession)
}

// InvalidateSession tests

func (s *ServiceSuite) TestInvalidateSessionRemovesSession() {
	_, _ = s.service.Register(s.ctx, "alice", "alice@example.com", "password1")
	session, err := s.service.Login(s.ctx, "alice", "password1")
	s.Require().NoError(err)

	s.Require().NoError(s.service.InvalidateSession(session.Token))

	_, err = s.service.ValidateSession(session.Token)
	s.ErrorIs(err, ErrNoSession)
}

func (s *ServiceSuite) TestInvalidateSessionFailsForUnknownToken() {
	err := s.service.InvalidateSession("unknown_token")
	s.ErrorIs(err, ErrNoSession)
}

// Profile tests

func (s *ServiceSuite) TestProfileReturnsStoredRecord() {
	_, err := s.service.Register(s.ctx, "alice", "alice@example.com", "password1")
	s.Require().NoError(err)
	session, err := s.service.Login(s.ctx, "alice", "password1")
	s.Require().NoError(err)

	user, err := s.service.Profile(s.ctx, session.Token)
	s.Require().NoError(err)
	s.Equal("alice", user.Username)
	s.Equal("alice@example.com", user.Email)
}

func (s *ServiceSuite) TestProfileFailsWithInvalidToken() {
	_, err := s.service.Profile(s.ctx, "invalid_token")
	s.ErrorIs(err, ErrNoSession)
}

// CleanExpiredSessions tests

func (s *ServiceSuite) TestCleanExpiredSessionsRemovesExpired() {
	_, _ = s.service.Register(s.ctx, "alice", "alice@example.com", "password1")
	stale, err := s.service.Login(s.ctx, "alice", "password1")
	s.Require().NoError(err)

	s.clock.Advance(25 * time.Hour)

	fresh, err := s.service.Login(s.ctx, "alice", "password1")
	s.Require().NoError(err)

	s.service.CleanExpiredSessions()

	_, err = s.service.ValidateSession(stale.Token)
	s.ErrorIs(err, ErrNoSession)
	_, err = s.service.ValidateSession(fresh.Token)
	s.NoError(err)
}
