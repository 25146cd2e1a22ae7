package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/gamesapx/gamesapx/internal/api/request"
	"github.com/gamesapx/gamesapx/internal/api/response"
	"github.com/gamesapx/gamesapx/internal/model"
	"github.com/gamesapx/gamesapx/internal/services/catalog"
)

// GamesHandler handles catalog endpoints, public and admin
type GamesHandler struct {
	catalogService *catalog.Service
}

// NewGamesHandler creates a new games handler
func NewGamesHandler(catalogService *catalog.Service) *GamesHandler {
	return &GamesHandler{
		catalogService: catalogService,
	}
}

// List handles GET /api/v1/games (active games only, public)
func (h *GamesHandler) List(w http.ResponseWriter, r *http.Request) {
	games, err := h.catalogService.ListActive(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.GamesFromModel(games))
}

// ListAll handles GET /api/v1/admin/games (all games, admin only)
func (h *GamesHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	games, err := h.catalogService.ListAll(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.GamesFromModel(games))
}

// Add handles POST /api/v1/admin/games
func (h *GamesHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req request.AddGameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	game, err := h.catalogService.Add(r.Context(), req.Name, req.Description, req.Thumbnail, req.FilePath)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.GameFromModel(game))
}

// Remove handles DELETE /api/v1/admin/games/{game_id}; a soft delete,
// idempotent for already-inactive games
func (h *GamesHandler) Remove(w http.ResponseWriter, r *http.Request) {
	gameID, err := gameIDVar(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	if err := h.catalogService.Deactivate(r.Context(), gameID); err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}

// gameIDVar parses the {game_id} path variable
func gameIDVar(r *http.Request) (model.GameID, error) {
	raw := mux.Vars(r)["game_id"]
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, NewInvalidRequestError("invalid game id")
	}
	return model.GameID(id), nil
}
