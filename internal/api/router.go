package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/gamesapx/gamesapx/internal/api/handler"
	"github.com/gamesapx/gamesapx/internal/api/middleware"
	"github.com/gamesapx/gamesapx/internal/services/auth"
	"github.com/gamesapx/gamesapx/internal/services/catalog"
	"github.com/gamesapx/gamesapx/internal/services/scores"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger         *slog.Logger
	AuthService    *auth.Service
	CatalogService *catalog.Service
	ScoreService   *scores.Service
	// SecureCookie marks the session cookie Secure; enable in production
	SecureCookie bool
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	authHandler := handler.NewAuthHandler(cfg.AuthService, cfg.SecureCookie)
	gamesHandler := handler.NewGamesHandler(cfg.CatalogService)
	scoresHandler := handler.NewScoresHandler(cfg.ScoreService)

	// Create middleware
	authMiddleware := middleware.Auth(cfg.AuthService)
	adminMiddleware := middleware.Admin(cfg.AuthService)
	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(recoveryMiddleware)
	api.Use(loggingMiddleware)

	// Auth routes (no auth required; logout tolerates a missing session)
	api.HandleFunc("/auth/register", authHandler.Register).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", authHandler.Login).Methods(http.MethodPost)
	api.HandleFunc("/auth/logout", authHandler.Logout).Methods(http.MethodPost)

	// Public catalog and leaderboard reads
	api.HandleFunc("/games", gamesHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/leaderboard/{game_id}", scoresHandler.Leaderboard).Methods(http.MethodGet)

	// Authenticated routes
	users := api.PathPrefix("/users").Subrouter()
	users.Use(authMiddleware)
	users.HandleFunc("/me", authHandler.GetMe).Methods(http.MethodGet)
	users.HandleFunc("/me/scores", scoresHandler.History).Methods(http.MethodGet)

	scoresRoutes := api.PathPrefix("/scores").Subrouter()
	scoresRoutes.Use(authMiddleware)
	scoresRoutes.HandleFunc("", scoresHandler.Submit).Methods(http.MethodPost)

	// Admin routes (admin claim from the login-time snapshot)
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(adminMiddleware)
	admin.HandleFunc("/games", gamesHandler.ListAll).Methods(http.MethodGet)
	admin.HandleFunc("/games", gamesHandler.Add).Methods(http.MethodPost)
	admin.HandleFunc("/games/{game_id}", gamesHandler.Remove).Methods(http.MethodDelete)

	// Health check endpoint (no auth)
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
