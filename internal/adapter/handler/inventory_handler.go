package handler

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/railstack/railseat/internal/core/services"
)

type InventoryHandler struct {
	svc *services.InventoryService
}

func NewInventoryHandler(svc *services.InventoryService) *InventoryHandler {
	return &InventoryHandler{svc: svc}
}

type seatCountRequest struct {
	TotalSeats int `json:"total_seats"`
}

func (h *InventoryHandler) GenerateSeats(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	trainID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid train id")
		return
	}

	var req seatCountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json body")
		return
	}

	if err := h.svc.GenerateSeats(r.Context(), trainID, req.TotalSeats); err != nil {
		writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]any{"total_seats": req.TotalSeats})
}

func (h *InventoryHandler) ResizeSeats(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	trainID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid train id")
		return
	}

	var req seatCountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json body")
		return
	}

	actual, err := h.svc.ResizeSeats(r.Context(), trainID, req.TotalSeats)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	json.NewEncoder(w).Encode(map[string]any{"actual_total": actual})
}
