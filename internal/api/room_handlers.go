package api

import (
	"net/http"

	"github.com/gorilla/mux"

	httperrors "roomdesk/internal/errors"
	"roomdesk/internal/service"
)

type RoomHandler struct {
	Service *service.BookingService
}

func NewRoomHandler(svc *service.BookingService) *RoomHandler {
	return &RoomHandler{Service: svc}
}

// ListRooms returns the room catalog. The date parameter is required so
// clients can follow up with per-room availability, but it does not filter
// which rooms come back.
func (h *RoomHandler) ListRooms(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("date") == "" {
		writeError(w, httperrors.Validation("Date parameter is required"))
		return
	}
	rooms, err := h.Service.ListRooms(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rooms)
}

// GetRoom returns one room with its booked slots and per-slot availability
// for the requested date.
func (h *RoomHandler) GetRoom(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		writeError(w, httperrors.Validation("Date parameter is required"))
		return
	}
	availability, err := h.Service.RoomAvailability(r.Context(), mux.Vars(r)["id"], date)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, availability)
}
