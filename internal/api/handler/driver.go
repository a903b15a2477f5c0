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

// DriverHandler handles driver roster endpoints
type DriverHandler struct {
	controller *steward.Controller
}

// NewDriverHandler creates a new driver handler
func NewDriverHandler(controller *steward.Controller) *DriverHandler {
	return &DriverHandler{
		controller: controller,
	}
}

// Register handles POST /api/v1/drivers
func (h *DriverHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req request.RegisterDriverRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if req.DriverID == "" {
		WriteError(w, NewInvalidRequestError("driver_id is required"))
		return
	}

	driver, err := h.controller.RegisterDriver(r.Context(), model.DriverID(req.DriverID), req.DisplayName)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.DriverFromModel(driver))
}

// List handles GET /api/v1/drivers
func (h *DriverHandler) List(w http.ResponseWriter, r *http.Request) {
	drivers, err := h.controller.ListDrivers(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.DriverListFromModel(drivers))
}

// Remove handles DELETE /api/v1/drivers/{driver_id}
func (h *DriverHandler) Remove(w http.ResponseWriter, r *http.Request) {
	driverID := model.DriverID(mux.Vars(r)["driver_id"])

	if err := h.controller.RemoveDriver(r.Context(), driverID); err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}
