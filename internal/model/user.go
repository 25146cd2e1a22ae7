package model

import "time"

// UserID uniquely identifies a user across the system
type UserID int64

// User represents a registered account.
// The password is stored only as a bcrypt hash; the clear text never
// leaves the auth service.
type User struct {
	ID           UserID
	Username     string // login username, unique (immutable)
	Email        string // unique
	PasswordHash string // bcrypt hash
	IsAdmin      bool   // operator-managed; takes effect on next login
	CreatedAt    time.Time
}
