package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gamesapx/gamesapx/internal/api/middleware"
	"github.com/gamesapx/gamesapx/internal/api/request"
	"github.com/gamesapx/gamesapx/internal/api/response"
	"github.com/gamesapx/gamesapx/internal/model"
	"github.com/gamesapx/gamesapx/internal/services/scores"
)

// ScoresHandler handles score submission, leaderboards and per-user
// history
type ScoresHandler struct {
	scoreService *scores.Service
}

// NewScoresHandler creates a new scores handler
func NewScoresHandler(scoreService *scores.Service) *ScoresHandler {
	return &ScoresHandler{
		scoreService: scoreService,
	}
}

// Submit handles POST /api/v1/scores (requires authentication)
func (h *ScoresHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req request.SubmitScoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if req.GameID == 0 || req.Score == nil {
		WriteError(w, NewInvalidRequestError("Game ID and score are required"))
		return
	}

	session := middleware.MustGetSession(r.Context())

	score, err := h.scoreService.Record(r.Context(), session.UserID, model.GameID(req.GameID), *req.Score)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.ScoreFromModel(score))
}

// Leaderboard handles GET /api/v1/leaderboard/{game_id} (public). Top 10
// rows; an unknown game yields an empty list.
func (h *ScoresHandler) Leaderboard(w http.ResponseWriter, r *http.Request) {
	gameID, err := gameIDVar(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	entries, err := h.scoreService.TopForGame(r.Context(), gameID, scores.DefaultLeaderboardLimit)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.LeaderboardFromModel(entries))
}

// History handles GET /api/v1/users/me/scores (requires authentication)
func (h *ScoresHandler) History(w http.ResponseWriter, r *http.Request) {
	session := middleware.MustGetSession(r.Context())

	rows, err := h.scoreService.History(r.Context(), session.UserID)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.UserScoresFromModel(rows))
}
