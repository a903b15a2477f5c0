package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/raceleague/steward/internal/api/request"
	"github.com/raceleague/steward/internal/api/response"
	"github.com/raceleague/steward/internal/model"
	"github.com/raceleague/steward/internal/services/steward"
)

// BanHandler handles ban endpoints
type BanHandler struct {
	controller *steward.Controller
}

// NewBanHandler creates a new ban handler
func NewBanHandler(controller *steward.Controller) *BanHandler {
	return &BanHandler{
		controller: controller,
	}
}

// Add handles POST /api/v1/drivers/{driver_id}/bans
func (h *BanHandler) Add(w http.ResponseWriter, r *http.Request) {
	driverID := model.DriverID(mux.Vars(r)["driver_id"])

	var req request.AddBanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	kind, err := model.ParseBanKind(req.Kind)
	if err != nil {
		WriteError(w, err)
		return
	}

	ban, err := h.controller.AddBan(r.Context(), driverID, kind, req.Reason)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.BanFromModel(ban))
}

// Remove handles DELETE /api/v1/drivers/{driver_id}/bans/{kind}
func (h *BanHandler) Remove(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	driverID := model.DriverID(vars["driver_id"])

	kind, err := model.ParseBanKind(vars["kind"])
	if err != nil {
		WriteError(w, err)
		return
	}

	removed, err := h.controller.RemoveBan(r.Context(), driverID, kind)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.BanRemovalResult{
		DriverID: string(driverID),
		Kind:     string(kind),
		Removed:  removed,
	})
}

// List handles GET /api/v1/bans
func (h *BanHandler) List(w http.ResponseWriter, r *http.Request) {
	bans, err := h.controller.ListActiveBans(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.BanListFromModel(bans))
}

// Sweep handles POST /api/v1/bans/sweep
func (h *BanHandler) Sweep(w http.ResponseWriter, r *http.Request) {
	removed, err := h.controller.SweepExpiredBans(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.SweepResult{Removed: removed})
}
