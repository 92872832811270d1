package api

import (
	"net/http"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"

	httperrors "roomdesk/internal/errors"
	"roomdesk/internal/service"
)

// NewRouter wires the API routes and the CORS policy. Every response,
// including errors and the JSON 404 fallback, passes through the CORS
// middleware so browser clients can always read the body.
func NewRouter(svc *service.BookingService) http.Handler {
	roomHandler := NewRoomHandler(svc)
	bookingHandler := NewBookingHandler(svc)

	r := mux.NewRouter()
	r.HandleFunc("/rooms", roomHandler.ListRooms).Methods(http.MethodGet)
	r.HandleFunc(`/rooms/{id:\w+}`, roomHandler.GetRoom).Methods(http.MethodGet)
	r.HandleFunc("/bookings", bookingHandler.ListBookings).Methods(http.MethodGet)
	r.HandleFunc("/bookings", bookingHandler.CreateBooking).Methods(http.MethodPost)
	r.HandleFunc(`/bookings/{id:[\w-]+}`, bookingHandler.CancelBooking).Methods(http.MethodDelete)

	notFound := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, httperrors.NotFound("Not found"))
	})
	r.NotFoundHandler = notFound
	r.MethodNotAllowedHandler = notFound

	cors := handlers.CORS(
		handlers.AllowedOriginValidator(func(string) bool { return true }),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions}),
		handlers.AllowedHeaders([]string{"Content-Type", "Authorization"}),
		handlers.MaxAge(86400),
		handlers.OptionStatusCode(http.StatusNoContent),
	)
	return cors(r)
}
