package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/railstack/railseat/internal/core/domain"
	"github.com/railstack/railseat/internal/core/services"
)

type BookingHandler struct {
	svc *services.AllocationService
}

func NewBookingHandler(svc *services.AllocationService) *BookingHandler {
	return &BookingHandler{svc: svc}
}

func (h *BookingHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req services.AllocateSeatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json body")
		return
	}

	resp, err := h.svc.AllocateSeat(r.Context(), req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(resp)
}

func (h *BookingHandler) GetBooking(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	bookingID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid booking id")
		return
	}

	// Identity comes from the caller; authentication is handled
	// upstream of this service.
	userID, err := uuid.Parse(r.Header.Get("X-User-ID"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "missing or invalid user id")
		return
	}

	booking, err := h.svc.LookupBooking(r.Context(), bookingID, userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	json.NewEncoder(w).Encode(map[string]any{
		"booking_id":     booking.ID.String(),
		"train_name":     booking.TrainName,
		"seat_number":    booking.SeatNumber,
		"source":         booking.Source,
		"destination":    booking.Destination,
		"passenger_name": booking.PassengerName,
		"booking_date":   booking.BookingDate,
		"pnr":            booking.PNR,
		"status":         booking.Status,
	})
}

func (h *BookingHandler) GetSeats(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	trainID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid train id")
		return
	}

	seats, err := h.svc.GetSeats(r.Context(), trainID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	json.NewEncoder(w).Encode(map[string]any{"seats": seats})
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrTrainNotFound),
		errors.Is(err, domain.ErrBookingNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrNotAStop),
		errors.Is(err, domain.ErrWrongDirection),
		errors.Is(err, domain.ErrInvalidInput),
		errors.Is(err, domain.ErrInvalidSeatCount),
		errors.Is(err, domain.ErrLayoutExhausted):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrNoCapacity):
		writeError(w, http.StatusConflict, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}
