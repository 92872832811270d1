package entities

import "roomdesk/internal/db"

const (
	SlotAvailable = "available"
	SlotBooked    = "booked"
)

// SlotStatus tags one grid slot as available or booked.
type SlotStatus struct {
	Time   string `json:"time"`
	Status string `json:"status"`
}

// RoomAvailability is the room detail response: the room itself, the booked
// slot times for the requested date, and the full per-slot status list.
type RoomAvailability struct {
	db.Room
	BookedSlots  []string     `json:"bookedSlots"`
	Availability []SlotStatus `json:"availability"`
}
