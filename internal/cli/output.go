package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case User:
		o.printUser(v)
	case Profile:
		o.printProfile(v)
	case AuthResult:
		o.printAuthResult(v)
	case Game:
		o.printGame(v)
	case []Game:
		o.printGames(v)
	case ScoreResult:
		o.printScoreResult(v)
	case []LeaderboardEntry:
		o.printLeaderboard(v)
	case []UserScore:
		o.printUserScores(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// User response type (matches API)
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	IsAdmin  bool   `json:"is_admin"`
}

// Profile response type, the current-user view
type Profile struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	IsAdmin  bool   `json:"is_admin"`
}

// AuthResult combines user and token
type AuthResult struct {
	User         User   `json:"user"`
	SessionToken string `json:"session_token"`
}

// Game response type
type Game struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Thumbnail   string    `json:"thumbnail"`
	FilePath    string    `json:"file_path"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}

// ScoreResult response type
type ScoreResult struct {
	ID        int64     `json:"id"`
	GameID    int64     `json:"game_id"`
	Score     int       `json:"score"`
	CreatedAt time.Time `json:"created_at"`
}

// LeaderboardEntry response type
type LeaderboardEntry struct {
	Username  string    `json:"username"`
	Score     int       `json:"score"`
	CreatedAt time.Time `json:"created_at"`
}

// UserScore response type
type UserScore struct {
	GameName  string    `json:"game_name"`
	Score     int       `json:"score"`
	CreatedAt time.Time `json:"created_at"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printUser(u User) {
	adminStr := "no"
	if u.IsAdmin {
		adminStr = "yes"
	}
	fmt.Printf("User: %s (#%d)\n", u.Username, u.ID)
	fmt.Printf("Admin: %s\n", adminStr)
}

func (o *Output) printProfile(p Profile) {
	o.printUser(User{ID: p.ID, Username: p.Username, IsAdmin: p.IsAdmin})
	fmt.Printf("Email: %s\n", p.Email)
}

func (o *Output) printAuthResult(a AuthResult) {
	o.printUser(a.User)
	fmt.Printf("Token: %s\n", a.SessionToken)
}

func (o *Output) printGame(g Game) {
	activeStr := "active"
	if !g.IsActive {
		activeStr = "inactive"
	}
	fmt.Printf("Game: %s (#%d) [%s]\n", g.Name, g.ID, activeStr)
	if g.Description != "" {
		fmt.Printf("  %s\n", g.Description)
	}
	fmt.Printf("  Path: %s\n", g.FilePath)
}

func (o *Output) printGames(games []Game) {
	if len(games) == 0 {
		fmt.Println("No games")
		return
	}
	for _, g := range games {
		o.printGame(g)
	}
}

func (o *Output) printScoreResult(s ScoreResult) {
	fmt.Printf("Score recorded: %d (game #%d, score #%d)\n", s.Score, s.GameID, s.ID)
}

func (o *Output) printLeaderboard(entries []LeaderboardEntry) {
	if len(entries) == 0 {
		fmt.Println("No scores yet")
		return
	}
	for i, e := range entries {
		fmt.Printf("%2d. %-20s %8d  %s\n", i+1, e.Username, e.Score, e.CreatedAt.Format(time.RFC3339))
	}
}

func (o *Output) printUserScores(rows []UserScore) {
	if len(rows) == 0 {
		fmt.Println("No scores yet")
		return
	}
	for _, r := range rows {
		fmt.Printf("%-20s %8d  %s\n", r.GameName, r.Score, r.CreatedAt.Format(time.RFC3339))
	}
}

func (o *Output) printHealthResult(h HealthResult) {
	fmt.Printf("Status: %s\n", h.Status)
}
