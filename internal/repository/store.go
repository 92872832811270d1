package repository

import (
	"context"
	"errors"

	"roomdesk/internal/db"
)

var (
	// ErrNotFound is returned when no record matches the lookup.
	ErrNotFound = errors.New("record not found")
	// ErrSlotTaken is returned when an insert would double-book a
	// (room, date, time) slot.
	ErrSlotTaken = errors.New("slot already booked")
)

// BookingStore is the contract both store backings implement. At most one
// booking may exist per (roomID, date, slot); Insert enforces this
// atomically, so callers that pre-check can still lose the race and must
// handle ErrSlotTaken.
type BookingStore interface {
	FindByRoomDateTime(ctx context.Context, roomID, date, slot string) (*db.Booking, error)
	FindByRoomDate(ctx context.Context, roomID, date string) ([]db.Booking, error)
	FindByID(ctx context.Context, id string) (*db.Booking, error)
	FindByEmail(ctx context.Context, email string) ([]db.BookingWithRoom, error)
	Insert(ctx context.Context, booking *db.Booking) error
	DeleteByID(ctx context.Context, id string) (bool, error)
	DeleteOlderThan(ctx context.Context, date string) (int64, error)
}

// RoomStore reads the static room catalog.
type RoomStore interface {
	FindByID(ctx context.Context, id string) (*db.Room, error)
	List(ctx context.Context) ([]db.Room, error)
}
