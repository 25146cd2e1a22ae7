package request

// RegisterRequest is the request body for registering an account
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the request body for logging in
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// SubmitScoreRequest is the request body for submitting a play result
type SubmitScoreRequest struct {
	GameID int64 `json:"game_id"`
	Score  *int  `json:"score"` // pointer so a missing score is distinguishable from 0
}

// AddGameRequest is the request body for adding a game to the catalog
type AddGameRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Thumbnail   string `json:"thumbnail,omitempty"`
	FilePath    string `json:"file_path"`
}
