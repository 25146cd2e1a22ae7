package model

import "time"

// ScoreID uniquely identifies a recorded score
type ScoreID int64

// Score is a single play result. The ledger is append-only: rows are
// never updated or deleted, and identical submissions are not
// deduplicated (each play is recorded).
type Score struct {
	ID        ScoreID
	UserID    UserID
	GameID    GameID
	Value     int // >= 0
	CreatedAt time.Time
}

// LeaderboardEntry is a derived, read-only leaderboard row
type LeaderboardEntry struct {
	Username  string
	Score     int
	CreatedAt time.Time
}

// UserScore is a derived row of a user's play history
type UserScore struct {
	GameName  string
	Score     int
	CreatedAt time.Time
}
