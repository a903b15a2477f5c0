package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/raceleague/steward/internal/api/handler"
	"github.com/raceleague/steward/internal/api/middleware"
	"github.com/raceleague/steward/internal/api/response"
	"github.com/raceleague/steward/internal/services/auth"
	"github.com/raceleague/steward/internal/services/steward"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger      *slog.Logger
	AuthService *auth.Service
	Controller  *steward.Controller
}

// NewRouter creates a new API router with all routes configured.
// Read endpoints are public; mutating endpoints require a steward
// session.
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	stewardHandler := handler.NewStewardHandler(cfg.AuthService)
	driverHandler := handler.NewDriverHandler(cfg.Controller)
	penaltyHandler := handler.NewPenaltyHandler(cfg.Controller)
	banHandler := handler.NewBanHandler(cfg.Controller)

	// Create middleware
	authMiddleware := middleware.Auth(cfg.AuthService)
	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(recoveryMiddleware)
	api.Use(loggingMiddleware)

	// Steward account routes
	api.HandleFunc("/stewards/login", stewardHandler.Login).Methods(http.MethodPost)

	// Public read routes
	api.HandleFunc("/drivers", driverHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/drivers/{driver_id}/points", penaltyHandler.Total).Methods(http.MethodGet)
	api.HandleFunc("/drivers/{driver_id}/penalties", penaltyHandler.History).Methods(http.MethodGet)
	api.HandleFunc("/bans", banHandler.List).Methods(http.MethodGet)

	// Mutating routes require a steward session
	protected := api.NewRoute().Subrouter()
	protected.Use(authMiddleware)
	protected.HandleFunc("/stewards", stewardHandler.Create).Methods(http.MethodPost)
	protected.HandleFunc("/drivers", driverHandler.Register).Methods(http.MethodPost)
	protected.HandleFunc("/drivers/{driver_id}", driverHandler.Remove).Methods(http.MethodDelete)
	protected.HandleFunc("/drivers/{driver_id}/penalties", penaltyHandler.Award).Methods(http.MethodPost)
	protected.HandleFunc("/drivers/{driver_id}/penalties/remove", penaltyHandler.Remove).Methods(http.MethodPost)
	protected.HandleFunc("/drivers/{driver_id}/bans", banHandler.Add).Methods(http.MethodPost)
	protected.HandleFunc("/drivers/{driver_id}/bans/{kind}", banHandler.Remove).Methods(http.MethodDelete)
	protected.HandleFunc("/bans/sweep", banHandler.Sweep).Methods(http.MethodPost)

	// Health check endpoint (no auth)
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

// healthHandler reports service liveness
func healthHandler(w http.ResponseWriter, _ *http.Request) {
	response.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
