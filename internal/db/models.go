package db

import "time"

// Room is one entry of the static meeting room catalog. Rooms are provisioned
// at deploy time and never mutated through the API.
type Room struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Capacity int      `json:"capacity"`
	Features []string `json:"features"`
}

// Booking reserves one room for one hourly slot on one date. Bookings are
// immutable after creation; they only ever get deleted.
type Booking struct {
	ID        string    `json:"id"`
	RoomID    string    `json:"roomId"`
	Date      string    `json:"date"`
	Time      string    `json:"time"`
	Email     string    `json:"email"`
	Title     string    `json:"title"`
	Attendees int       `json:"attendees"`
	CreatedAt time.Time `json:"createdAt"`
}

// BookingWithRoom is a booking joined with its room's display name, used by
// the per-email listing. RoomName falls back to "Unknown Room" when the room
// record is missing.
type BookingWithRoom struct {
	Booking
	RoomName string `json:"roomName"`
}
