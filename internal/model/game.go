package model

import "time"

// GameID uniquely identifies a game in the catalog
type GameID int64

// Lifecycle represents the catalog state of a game
type Lifecycle string

const (
	// LifecycleActive means the game is playable and listed publicly
	LifecycleActive Lifecycle = "active"
	// LifecycleInactive means the game has been soft-deleted; the row is
	// retained so historical scores keep a valid reference
	LifecycleInactive Lifecycle = "inactive"
)

// Game represents a playable game in the catalog.
// Games are never physically deleted; removal flips the lifecycle to
// inactive. Names are unique across active and inactive games alike.
type Game struct {
	ID          GameID
	Name        string // unique, required
	Description string
	Thumbnail   string
	LaunchPath  string // required
	Lifecycle   Lifecycle
	CreatedAt   time.Time
}

// IsActive reports whether the game is publicly listed
func (g *Game) IsActive() bool {
	return g.Lifecycle == LifecycleActive
}

// Deactivate forces the game inactive. Deactivating an already-inactive
// game is a no-op.
func (g *Game) Deactivate() {
	g.Lifecycle = LifecycleInactive
}
