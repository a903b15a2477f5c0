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

// PenaltyHandler handles penalty ledger endpoints
type PenaltyHandler struct {
	controller *steward.Controller
}

// NewPenaltyHandler creates a new penalty handler
func NewPenaltyHandler(controller *steward.Controller) *PenaltyHandler {
	return &PenaltyHandler{
		controller: controller,
	}
}

// Award handles POST /api/v1/drivers/{driver_id}/penalties
func (h *PenaltyHandler) Award(w http.ResponseWriter, r *http.Request) {
	driverID := model.DriverID(mux.Vars(r)["driver_id"])

	var req request.AwardPenaltyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	total, err := h.controller.AwardPoints(r.Context(), driverID, req.Points, req.Reason)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.AwardResult{
		DriverID:    string(driverID),
		Points:      req.Points,
		TotalPoints: total,
	})
}

// Remove handles POST /api/v1/drivers/{driver_id}/penalties/remove
func (h *PenaltyHandler) Remove(w http.ResponseWriter, r *http.Request) {
	driverID := model.DriverID(mux.Vars(r)["driver_id"])

	var req request.RemovePenaltyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	removed, total, err := h.controller.RemovePoints(r.Context(), driverID, req.Amount, req.Reason)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.RemovalResult{
		DriverID:    string(driverID),
		Removed:     removed,
		TotalPoints: total,
	})
}

// History handles GET /api/v1/drivers/{driver_id}/penalties
func (h *PenaltyHandler) History(w http.ResponseWriter, r *http.Request) {
	driverID := model.DriverID(mux.Vars(r)["driver_id"])

	entries, err := h.controller.PenaltyHistory(r.Context(), driverID)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.PenaltyHistoryFromModel(driverID, entries))
}

// Total handles GET /api/v1/drivers/{driver_id}/points
func (h *PenaltyHandler) Total(w http.ResponseWriter, r *http.Request) {
	driverID := model.DriverID(mux.Vars(r)["driver_id"])

	total, err := h.controller.TotalPoints(r.Context(), driverID)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.PointTotal{
		DriverID:    string(driverID),
		TotalPoints: total,
	})
}
