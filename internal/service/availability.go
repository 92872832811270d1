package service

import (
	"roomdesk/internal/db"
	"roomdesk/internal/entities"
)

// SlotGrid is the fixed sequence of hourly booking windows, identical for
// every room and every date.
var SlotGrid = []string{"09:00", "10:00", "11:00", "12:00", "13:00", "14:00", "15:00", "16:00", "17:00"}

// ValidSlot reports whether t is one of the grid values.
func ValidSlot(t string) bool {
	for _, s := range SlotGrid {
		if s == t {
			return true
		}
	}
	return false
}

// DeriveAvailability tags every grid slot as available or booked given the
// bookings already on file for one room and date. Output follows grid order
// regardless of booking order.
func DeriveAvailability(bookings []db.Booking) []entities.SlotStatus {
	booked := make(map[string]bool, len(bookings))
	for _, b := range bookings {
		booked[b.Time] = true
	}

	slots := make([]entities.SlotStatus, 0, len(SlotGrid))
	for _, t := range SlotGrid {
		status := entities.SlotAvailable
		if booked[t] {
			status = entities.SlotBooked
		}
		slots = append(slots, entities.SlotStatus{Time: t, Status: status})
	}
	return slots
}
