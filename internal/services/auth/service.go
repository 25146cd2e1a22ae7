package auth

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"log/slog"
	"regexp"
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/gamesapx/gamesapx/internal/dependencies/clock"
	"github.com/gamesapx/gamesapx/internal/model"
	"github.com/gamesapx/gamesapx/internal/storage"
)

// Errors
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNoSession          = errors.New("invalid or expired session")
	ErrWeakPassword       = errors.New("password must be at least 8 characters long")
	ErrInvalidEmail       = errors.New("invalid email format")
)

// MinPasswordLength is the only enforced password policy
const MinPasswordLength = 8

// emailPattern accepts the basic local@domain.tld shape
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Session is an authenticated session. Username and IsAdmin are a
// snapshot taken at login; an admin-flag change takes effect only on the
// next login (trust-on-login).
type Session struct {
	Token     string
	UserID    model.UserID
	Username  string
	IsAdmin   bool
	CreatedAt time.Time
	ExpiresAt time.Time
}

// Service handles credentials and session management
type Service struct {
	storage storage.Storage
	clock   clock.Clock
	logger  *slog.Logger

	mu       sync.RWMutex
	sessions map[string]*Session

	sessionDuration time.Duration
}

// Config holds configuration for the auth service
type Config struct {
	SessionDuration time.Duration
}

// DefaultConfig returns default auth configuration
func DefaultConfig() Config {
	return Config{
		SessionDuration: 24 * time.Hour,
	}
}

// New creates a new auth Service
func New(storage storage.Storage, clock clock.Clock, cfg Config, logger *slog.Logger) *Service {
	if cfg.SessionDuration == 0 {
		cfg.SessionDuration = DefaultConfig().SessionDuration
	}
	return &Service{
		storage:         storage,
		clock:           clock,
		logger:          logger,
		sessions:        make(map[string]*Session),
		sessionDuration: cfg.SessionDuration,
	}
}

// Register creates a new user account. It does not create a session;
// login is a separate step. Username and email collisions are reported
// as the single undifferentiated model.ErrDuplicateUser.
func (s *Service) Register(ctx context.Context, username, email, password string) (*model.User, error) {
	if len(password) < MinPasswordLength {
		return nil, ErrWeakPassword
	}
	if !emailPattern.MatchString(email) {
		return nil, ErrInvalidEmail
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    s.clock.Now(),
	}

	if err := s.storage.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("user registered", slog.Int64("user_id", int64(user.ID)))
	return user, nil
}

// Login authenticates a user and creates a session carrying a snapshot
// of the username and admin flag at this moment
func (s *Service) Login(ctx context.Context, username, password string) (*Session, error) {
	user, err := s.storage.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.createSession(user), nil
}

// ValidateSession checks if a session token is valid and returns the
// session. Expiry is checked lazily here; there is no background sweep.
func (s *Service) ValidateSession(token string) (*Session, error) {
	s.mu.RLock()
	session, ok := s.sessions[token]
	s.mu.RUnlock()

	if !ok {
		return nil, ErrNoSession
	}

	if s.clock.Now().After(session.ExpiresAt) {
		s.mu.Lock()
		delete(s.sessions, token)
		s.mu.Unlock()
		return nil, ErrNoSession
	}

	return session, nil
}

// InvalidateSession destroys a single session. Other concurrent sessions
// of the same user stay valid.
func (s *Service) InvalidateSession(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[token]; !ok {
		return ErrNoSession
	}
	delete(s.sessions, token)
	return nil
}

// Profile resolves a session and re-reads the full user record. The
// stored record backs the profile fields (email in particular);
// authorization decisions still use the session snapshot.
func (s *Service) Profile(ctx context.Context, token string) (*model.User, error) {
	session, err := s.ValidateSession(token)
	if err != nil {
		return nil, err
	}
	return s.storage.GetUser(ctx, session.UserID)
}

// createSession creates a new session for a user
func (s *Service) createSession(user *model.User) *Session {
	token := generateToken()
	now := s.clock.Now()

	session := &Session{
		Token:     token,
		UserID:    user.ID,
		Username:  user.Username,
		IsAdmin:   user.IsAdmin,
		CreatedAt: now,
		ExpiresAt: now.Add(s.sessionDuration),
	}

	s.mu.Lock()
	s.sessions[token] = session
	s.mu.Unlock()

	return session
}

// generateToken generates an unguessable opaque session token
func generateToken() string {
	b := make([]byte, 32)
	_, _ = rand.Read(b)
	return "sess_" + base64.RawURLEncoding.EncodeToString(b)
}

// CleanExpiredSessions removes expired sessions (call periodically)
func (s *Service) CleanExpiredSessions() {
	now := s.clock.Now()
	s.mu.Lock()
	defer s.mu.Unlock()

	for token, session := range s.sessions {
		if now.After(session.ExpiresAt) {
			delete(s.sessions, token)
		}
	}
}
