package handler

import (
	"encoding/json"
	"net/http"

	"github.com/raceleague/steward/internal/api/request"
	"github.com/raceleague/steward/internal/api/response"
	"github.com/raceleague/steward/internal/services/auth"
)

// StewardHandler handles steward account endpoints
type StewardHandler struct {
	authService *auth.Service
}

// NewStewardHandler creates a new steward handler
func NewStewardHandler(authService *auth.Service) *StewardHandler {
	return &StewardHandler{
		authService: authService,
	}
}

// Login handles POST /api/v1/stewards/login
func (h *StewardHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req request.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if req.Username == "" {
		WriteError(w, NewInvalidRequestError("username is required"))
		return
	}
	if req.Password == "" {
		WriteError(w, NewInvalidRequestError("password is required"))
		return
	}

	session, err := h.authService.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.AuthResponseFromSession(session))
}

// Create handles POST /api/v1/stewards
// Only an authenticated steward can add another steward.
func (h *StewardHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateStewardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if req.Username == "" {
		WriteError(w, NewInvalidRequestError("username is required"))
		return
	}
	if req.Password == "" {
		WriteError(w, NewInvalidRequestError("password is required"))
		return
	}

	if err := h.authService.RegisterSteward(r.Context(), req.Username, req.Password); err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, map[string]string{"username": req.Username})
}
