package repository

import (
	"context"
	"sort"
	"sync"

	"roomdesk/internal/db"
)

// MemoryRoomStore holds the room catalog in process memory. It is used when
// no DATABASE_URL is configured and as the store fake in tests.
type MemoryRoomStore struct {
	mu    sync.RWMutex
	rooms []db.Room
}

func NewMemoryRoomStore(rooms []db.Room) *MemoryRoomStore {
	return &MemoryRoomStore{rooms: rooms}
}

// DefaultRooms is the built-in catalog for the memory backing. The Postgres
// backing seeds the same rooms via migration.
func DefaultRooms() []db.Room {
	return []db.Room{
		{ID: "1", Name: "Executive Room", Capacity: 10, Features: []string{"Projector", "Whiteboard", "Video conferencing"}},
		{ID: "2", Name: "Conference Room A", Capacity: 20, Features: []string{"Projector", "Whiteboard", "Large display"}},
		{ID: "3", Name: "Meeting Room B", Capacity: 8, Features: []string{"Whiteboard", "Video conferencing"}},
		{ID: "4", Name: "Brainstorming Space", Capacity: 6, Features: []string{"Whiteboards", "Flexible seating"}},
		{ID: "5", Name: "Large Auditorium", Capacity: 50, Features: []string{"Stage", "Sound system", "Multiple displays"}},
	}
}

func (s *MemoryRoomStore) FindByID(ctx context.Context, id string) (*db.Room, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, room := range s.rooms {
		if room.ID == id {
			r := room
			return &r, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryRoomStore) List(ctx context.Context) ([]db.Room, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rooms := make([]db.Room, len(s.rooms))
	copy(rooms, s.rooms)
	return rooms, nil
}

// MemoryBookingStore is the volatile booking backing with the same contract
// as BookingRepository. The duplicate check and the append happen under one
// write lock, so two concurrent inserts for the same slot cannot both
// succeed.
type MemoryBookingStore struct {
	mu       sync.RWMutex
	rooms    *MemoryRoomStore
	bookings []db.Booking
}

func NewMemoryBookingStore(rooms *MemoryRoomStore) *MemoryBookingStore {
	return &MemoryBookingStore{rooms: rooms}
}

func (s *MemoryBookingStore) FindByRoomDateTime(ctx context.Context, roomID, date, slot string) (*db.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, b := range s.bookings {
		if b.RoomID == roomID && b.Date == date && b.Time == slot {
			found := b
			return &found, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryBookingStore) FindByRoomDate(ctx context.Context, roomID, date string) ([]db.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	bookings := make([]db.Booking, 0)
	for _, b := range s.bookings {
		if b.RoomID == roomID && b.Date == date {
			bookings = append(bookings, b)
		}
	}
	sort.Slice(bookings, func(i, j int) bool { return bookings[i].Time < bookings[j].Time })
	return bookings, nil
}

func (s *MemoryBookingStore) FindByID(ctx context.Context, id string) (*db.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, b := range s.bookings {
		if b.ID == id {
			found := b
			return &found, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryBookingStore) FindByEmail(ctx context.Context, email string) ([]db.BookingWithRoom, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	bookings := make([]db.BookingWithRoom, 0)
	for _, b := range s.bookings {
		if b.Email != email {
			continue
		}
		roomName := "Unknown Room"
		if room, err := s.rooms.FindByID(ctx, b.RoomID); err == nil {
			roomName = room.Name
		}
		bookings = append(bookings, db.BookingWithRoom{Booking: b, RoomName: roomName})
	}
	return bookings, nil
}

func (s *MemoryBookingStore) Insert(ctx context.Context, booking *db.Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, b := range s.bookings {
		if b.RoomID == booking.RoomID && b.Date == booking.Date && b.Time == booking.Time {
			return ErrSlotTaken
		}
	}
	s.bookings = append(s.bookings, *booking)
	return nil
}

func (s *MemoryBookingStore) DeleteByID(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, b := range s.bookings {
		if b.ID == id {
			s.bookings = append(s.bookings[:i], s.bookings[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (s *MemoryBookingStore) DeleteOlderThan(ctx context.Context, date string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.bookings[:0]
	var deleted int64
	for _, b := range s.bookings {
		// ISO dates compare correctly as strings.
		if b.Date < date {
			deleted++
			continue
		}
		kept = append(kept, b)
	}
	s.bookings = kept
	return deleted, nil
}
