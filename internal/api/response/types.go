package response

import (
	"time"

	"github.com/gamesapx/gamesapx/internal/model"
	"github.com/gamesapx/gamesapx/internal/services/auth"
)

// User represents a user in API responses
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	IsAdmin  bool   `json:"is_admin"`
}

// UserFromModel converts a model.User to a response User
func UserFromModel(u *model.User) User {
	return User{
		ID:       int64(u.ID),
		Username: u.Username,
		IsAdmin:  u.IsAdmin,
	}
}

// Profile is the current-user response; unlike User it carries the email
type Profile struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	IsAdmin  bool   `json:"is_admin"`
}

// ProfileFromModel converts a model.User to a response Profile
func ProfileFromModel(u *model.User) Profile {
	return Profile{
		ID:       int64(u.ID),
		Username: u.Username,
		Email:    u.Email,
		IsAdmin:  u.IsAdmin,
	}
}

// AuthResponse is the response for the login endpoint
type AuthResponse struct {
	User         User   `json:"user"`
	SessionToken string `json:"session_token"`
}

// AuthResponseFromSession creates an AuthResponse from a session's
// claims snapshot
func AuthResponseFromSession(s *auth.Session) AuthResponse {
	return AuthResponse{
		User: User{
			ID:       int64(s.UserID),
			Username: s.Username,
			IsAdmin:  s.IsAdmin,
		},
		SessionToken: s.Token,
	}
}

// Game represents a catalog entry in API responses
type Game struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Thumbnail   string    `json:"thumbnail"`
	FilePath    string    `json:"file_path"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}

// GameFromModel converts a model.Game to a response Game
func GameFromModel(g *model.Game) Game {
	return Game{
		ID:          int64(g.ID),
		Name:        g.Name,
		Description: g.Description,
		Thumbnail:   g.Thumbnail,
		FilePath:    g.LaunchPath,
		IsActive:    g.IsActive(),
		CreatedAt:   g.CreatedAt,
	}
}

// GamesFromModel converts a slice of games
func GamesFromModel(games []*model.Game) []Game {
	out := make([]Game, len(games))
	for i, g := range games {
		out[i] = GameFromModel(g)
	}
	return out
}

// Score represents a recorded score in API responses
type Score struct {
	ID        int64     `json:"id"`
	GameID    int64     `json:"game_id"`
	Score     int       `json:"score"`
	CreatedAt time.Time `json:"created_at"`
}

// ScoreFromModel converts a model.Score to a response Score
func ScoreFromModel(s *model.Score) Score {
	return Score{
		ID:        int64(s.ID),
		GameID:    int64(s.GameID),
		Score:     s.Value,
		CreatedAt: s.CreatedAt,
	}
}

// LeaderboardEntry is a single leaderboard row
type LeaderboardEntry struct {
	Username  string    `json:"username"`
	Score     int       `json:"score"`
	CreatedAt time.Time `json:"created_at"`
}

// LeaderboardFromModel converts derived leaderboard rows
func LeaderboardFromModel(entries []model.LeaderboardEntry) []LeaderboardEntry {
	out := make([]LeaderboardEntry, len(entries))
	for i, e := range entries {
		out[i] = LeaderboardEntry{
			Username:  e.Username,
			Score:     e.Score,
			CreatedAt: e.CreatedAt,
		}
	}
	return out
}

// UserScore is a single row of a user's play history
type UserScore struct {
	GameName  string    `json:"game_name"`
	Score     int       `json:"score"`
	CreatedAt time.Time `json:"created_at"`
}

// UserScoresFromModel converts derived history rows
func UserScoresFromModel(rows []model.UserScore) []UserScore {
	out := make([]UserScore, len(rows))
	for i, r := range rows {
		out[i] = UserScore{
			GameName:  r.GameName,
			Score:     r.Score,
			CreatedAt: r.CreatedAt,
		}
	}
	return out
}
