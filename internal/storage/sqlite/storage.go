package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	sqlite3 "github.com/mattn/go-sqlite3"

	"github.com/gamesapx/gamesapx/internal/model"
	"github.com/gamesapx/gamesapx/internal/storage"
)

// schema mirrors the original platform tables: users, games, scores.
// Games carry a lifecycle column instead of being deleted so historical
// scores keep a valid reference.
var schema = `CREATE TABLE IF NOT EXISTS users (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  username TEXT UNIQUE NOT NULL,
  email TEXT UNIQUE NOT NULL,
  password TEXT NOT NULL,
  is_admin INTEGER NOT NULL DEFAULT 0,
  created_at TIMESTAMP NOT NULL
);

CREATE TABLE IF NOT EXISTS games (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  name TEXT UNIQUE NOT NULL,
  description TEXT NOT NULL DEFAULT '',
  thumbnail TEXT NOT NULL DEFAULT '',
  launch_path TEXT NOT NULL,
  lifecycle TEXT NOT NULL DEFAULT 'active',
  created_at TIMESTAMP NOT NULL
);

CREATE TABLE IF NOT EXISTS scores (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  user_id INTEGER NOT NULL REFERENCES users(id),
  game_id INTEGER NOT NULL REFERENCES games(id),
  score INTEGER NOT NULL,
  created_at TIMESTAMP NOT NULL,

  CONSTRAINT non_negative_score CHECK (score >= 0)
);`

// Storage is a SQLite-backed implementation of the storage interface
type Storage struct {
	db *sqlx.DB
}

// New opens (creating if needed) the SQLite database at path and applies
// the schema. Use ":memory:" for an ephemeral database in tests.
func New(path string) (*Storage, error) {
	db, err := sqlx.Connect("sqlite3", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Storage{db: db}, nil
}

// Close closes the database connection
func (s *Storage) Close() error {
	return s.db.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Row types carry the db tags so the domain model stays free of
// persistence concerns

type userRow struct {
	ID        int64     `db:"id"`
	Username  string    `db:"username"`
	Email     string    `db:"email"`
	Password  string    `db:"password"`
	IsAdmin   bool      `db:"is_admin"`
	CreatedAt time.Time `db:"created_at"`
}

func (r userRow) toModel() *model.User {
	return &model.User{
		ID:           model.UserID(r.ID),
		Username:     r.Username,
		Email:        r.Email,
		PasswordHash: r.Password,
		IsAdmin:      r.IsAdmin,
		CreatedAt:    r.CreatedAt,
	}
}

type gameRow struct {
	ID          int64     `db:"id"`
	Name        string    `db:"name"`
	Description string    `db:"description"`
	Thumbnail   string    `db:"thumbnail"`
	LaunchPath  string    `db:"launch_path"`
	Lifecycle   string    `db:"lifecycle"`
	CreatedAt   time.Time `db:"created_at"`
}

func (r gameRow) toModel() *model.Game {
	return &model.Game{
		ID:          model.GameID(r.ID),
		Name:        r.Name,
		Description: r.Description,
		Thumbnail:   r.Thumbnail,
		LaunchPath:  r.LaunchPath,
		Lifecycle:   model.Lifecycle(r.Lifecycle),
		CreatedAt:   r.CreatedAt,
	}
}

type scoreRow struct {
	ID        int64     `db:"id"`
	UserID    int64     `db:"user_id"`
	GameID    int64     `db:"game_id"`
	Score     int       `db:"score"`
	CreatedAt time.Time `db:"created_at"`
}

func (r scoreRow) toModel() *model.Score {
	return &model.Score{
		ID:        model.ScoreID(r.ID),
		UserID:    model.UserID(r.UserID),
		GameID:    model.GameID(r.GameID),
		Value:     r.Score,
		CreatedAt: r.CreatedAt,
	}
}

// isConstraintErr reports whether err is a SQLite uniqueness/check
// constraint violation
func isConstraintErr(err error) bool {
	var se sqlite3.Error
	return errors.As(err, &se) && se.Code == sqlite3.ErrConstraint
}

// User operations

func (s *Storage) CreateUser(ctx context.Context, user *model.User) error {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO users (username, email, password, is_admin, created_at) VALUES (?, ?, ?, ?, ?)`,
		user.Username, user.Email, user.PasswordHash, user.IsAdmin, user.CreatedAt)
	if err != nil {
		if isConstraintErr(err) {
			return model.ErrDuplicateUser
		}
		return err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	user.ID = model.UserID(id)
	return nil
}

func (s *Storage) GetUser(ctx context.Context, id model.UserID) (*model.User, error) {
	var row userRow
	err := s.db.GetContext(ctx, &row, `SELECT * FROM users WHERE id = ?`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrUserNotFound
		}
		return nil, err
	}
	return row.toModel(), nil
}

func (s *Storage) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	var row userRow
	err := s.db.GetContext(ctx, &row, `SELECT * FROM users WHERE username = ?`, username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrUserNotFound
		}
		return nil, err
	}
	return row.toModel(), nil
}

func (s *Storage) SetUserAdmin(ctx context.Context, id model.UserID, isAdmin bool) error {
	res, err := s.db.ExecContext(ctx, `UPDATE users SET is_admin = ? WHERE id = ?`, isAdmin, id)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return model.ErrUserNotFound
	}
	return nil
}

// Game operations

func (s *Storage) CreateGame(ctx context.Context, game *model.Game) error {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO games (name, description, thumbnail, launch_path, lifecycle, created_at) VALUES (?, ?, ?, ?, ?, ?)`,
		game.Name, game.Description, game.Thumbnail, game.LaunchPath, string(game.Lifecycle), game.CreatedAt)
	if err != nil {
		if isConstraintErr(err) {
			return model.ErrDuplicateGameName
		}
		return err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	game.ID = model.GameID(id)
	return nil
}

func (s *Storage) GetGame(ctx context.Context, id model.GameID) (*model.Game, error) {
	var row gameRow
	err := s.db.GetContext(ctx, &row, `SELECT * FROM games WHERE id = ?`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrGameNotFound
		}
		return nil, err
	}
	return row.toModel(), nil
}

func (s *Storage) ListGames(ctx context.Context) ([]*model.Game, error) {
	var rows []gameRow
	if err := s.db.SelectContext(ctx, &rows, `SELECT * FROM games ORDER BY id`); err != nil {
		return nil, err
	}

	games := make([]*model.Game, len(rows))
	for i, row := range rows {
		games[i] = row.toModel()
	}
	return games, nil
}

func (s *Storage) DeactivateGame(ctx context.Context, id model.GameID) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE games SET lifecycle = ? WHERE id = ?`, string(model.LifecycleInactive), id)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return model.ErrGameNotFound
	}
	return nil
}

// Score operations

func (s *Storage) CreateScore(ctx context.Context, score *model.Score) error {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO scores (user_id, game_id, score, created_at) VALUES (?, ?, ?, ?)`,
		score.UserID, score.GameID, score.Value, score.CreatedAt)
	if err != nil {
		if isConstraintErr(err) {
			return model.ErrInvalidScore
		}
		return err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	score.ID = model.ScoreID(id)
	return nil
}

func (s *Storage) ScoresForGame(ctx context.Context, gameID model.GameID) ([]*model.Score, error) {
	var rows []scoreRow
	err := s.db.SelectContext(ctx, &rows, `SELECT * FROM scores WHERE game_id = ? ORDER BY id`, gameID)
	if err != nil {
		return nil, err
	}

	scores := make([]*model.Score, len(rows))
	for i, row := range rows {
		scores[i] = row.toModel()
	}
	return scores, nil
}

func (s *Storage) ScoresForUser(ctx context.Context, userID model.UserID) ([]*model.Score, error) {
	var rows []scoreRow
	err := s.db.SelectContext(ctx, &rows, `SELECT * FROM scores WHERE user_id = ? ORDER BY id`, userID)
	if err != nil {
		return nil, err
	}

	scores := make([]*model.Score, len(rows))
	for i, row := range rows {
		scores[i] = row.toModel()
	}
	return scores, nil
}
