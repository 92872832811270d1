package repository

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"roomdesk/internal/db"
)

func newMemoryStores() (*MemoryRoomStore, *MemoryBookingStore) {
	rooms := NewMemoryRoomStore(DefaultRooms())
	return rooms, NewMemoryBookingStore(rooms)
}

func testBooking(id, roomID, date, slot, email string) *db.Booking {
	return &db.Booking{
		ID:        id,
		RoomID:    roomID,
		Date:      date,
		Time:      slot,
		Email:     email,
		Title:     "Sync",
		Attendees: 5,
		CreatedAt: time.Now().UTC(),
	}
}

func TestRoomStore_FindByID(t *testing.T) {
	rooms, _ := newMemoryStores()
	ctx := context.Background()

	room, err := rooms.FindByID(ctx, "1")
	if err != nil {
		t.Fatalf("FindByID() failed: %v", err)
	}
	if room.Name != "Executive Room" {
		t.Errorf("FindByID() name mismatch: got %q, want %q", room.Name, "Executive Room")
	}

	if _, err := rooms.FindByID(ctx, "nope"); !errors.Is(err, ErrNotFound) {
		t.Errorf("FindByID() for unknown room: got %v, want ErrNotFound", err)
	}
}

func TestRoomStore_List(t *testing.T) {
	rooms, _ := newMemoryStores()

	list, err := rooms.List(context.Background())
	if err != nil {
		t.Fatalf("List() failed: %v", err)
	}
	if len(list) != 5 {
		t.Errorf("List() length mismatch: got %d, want 5", len(list))
	}
}

func TestInsertAndFindByRoomDateTime(t *testing.T) {
	_, bookings := newMemoryStores()
	ctx := context.Background()

	if _, err := bookings.FindByRoomDateTime(ctx, "1", "2024-06-01", "09:00"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("FindByRoomDateTime() on empty store: got %v, want ErrNotFound", err)
	}

	b := testBooking("b1", "1", "2024-06-01", "09:00", "a@x.com")
	if err := bookings.Insert(ctx, b); err != nil {
		t.Fatalf("Insert() failed: %v", err)
	}

	found, err := bookings.FindByRoomDateTime(ctx, "1", "2024-06-01", "09:00")
	if err != nil {
		t.Fatalf("FindByRoomDateTime() after insert failed: %v", err)
	}
	if found.ID != "b1" {
		t.Errorf("FindByRoomDateTime() id mismatch: got %q, want %q", found.ID, "b1")
	}
}

func TestInsert_Conflict(t *testing.T) {
	_, bookings := newMemoryStores()
	ctx := context.Background()

	if err := bookings.Insert(ctx, testBooking("b1", "1", "2024-06-01", "09:00", "a@x.com")); err != nil {
		t.Fatalf("first Insert() failed: %v", err)
	}
	err := bookings.Insert(ctx, testBooking("b2", "1", "2024-06-01", "09:00", "b@x.com"))
	if !errors.Is(err, ErrSlotTaken) {
		t.Errorf("second Insert() for same slot: got %v, want ErrSlotTaken", err)
	}

	// Same room and time on another date is fine.
	if err := bookings.Insert(ctx, testBooking("b3", "1", "2024-06-02", "09:00", "b@x.com")); err != nil {
		t.Errorf("Insert() for different date failed: %v", err)
	}
}

func TestDeleteByID_RoundTrip(t *testing.T) {
	_, bookings := newMemoryStores()
	ctx := context.Background()

	if err := bookings.Insert(ctx, testBooking("b1", "1", "2024-06-01", "09:00", "a@x.com")); err != nil {
		t.Fatalf("Insert() failed: %v", err)
	}

	deleted, err := bookings.DeleteByID(ctx, "b1")
	if err != nil {
		t.Fatalf("DeleteByID() failed: %v", err)
	}
	if !deleted {
		t.Error("DeleteByID() returned false for existing booking")
	}

	if _, err := bookings.FindByRoomDateTime(ctx, "1", "2024-06-01", "09:00"); !errors.Is(err, ErrNotFound) {
		t.Errorf("FindByRoomDateTime() after delete: got %v, want ErrNotFound", err)
	}

	deleted, err = bookings.DeleteByID(ctx, "b1")
	if err != nil {
		t.Fatalf("second DeleteByID() failed: %v", err)
	}
	if deleted {
		t.Error("DeleteByID() returned true for already deleted booking")
	}
}

func TestFindByRoomDate_SortedBySlot(t *testing.T) {
	_, bookings := newMemoryStores()
	ctx := context.Background()

	for _, slot := range []string{"15:00", "09:00", "11:00"} {
		b := testBooking("b-"+slot, "2", "2024-06-01", slot, "a@x.com")
		if err := bookings.Insert(ctx, b); err != nil {
			t.Fatalf("Insert(%s) failed: %v", slot, err)
		}
	}
	// A different room on the same date must not appear.
	if err := bookings.Insert(ctx, testBooking("other", "3", "2024-06-01", "09:00", "a@x.com")); err != nil {
		t.Fatalf("Insert() failed: %v", err)
	}

	list, err := bookings.FindByRoomDate(ctx, "2", "2024-06-01")
	if err != nil {
		t.Fatalf("FindByRoomDate() failed: %v", err)
	}
	want := []string{"09:00", "11:00", "15:00"}
	if len(list) != len(want) {
		t.Fatalf("FindByRoomDate() length mismatch: got %d, want %d", len(list), len(want))
	}
	for i, slot := range want {
		if list[i].Time != slot {
			t.Errorf("FindByRoomDate()[%d] = %q, want %q", i, list[i].Time, slot)
		}
	}
}

func TestFindByEmail_JoinsRoomName(t *testing.T) {
	_, bookings := newMemoryStores()
	ctx := context.Background()

	if err := bookings.Insert(ctx, testBooking("b1", "1", "2024-06-01", "09:00", "a@x.com")); err != nil {
		t.Fatalf("Insert() failed: %v", err)
	}
	// Room "99" does not exist in the catalog.
	if err := bookings.Insert(ctx, testBooking("b2", "99", "2024-06-01", "10:00", "a@x.com")); err != nil {
		t.Fatalf("Insert() failed: %v", err)
	}
	if err := bookings.Insert(ctx, testBooking("b3", "1", "2024-06-01", "11:00", "someone@else.com")); err != nil {
		t.Fatalf("Insert() failed: %v", err)
	}

	list, err := bookings.FindByEmail(ctx, "a@x.com")
	if err != nil {
		t.Fatalf("FindByEmail() failed: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("FindByEmail() length mismatch: got %d, want 2", len(list))
	}
	if list[0].RoomName != "Executive Room" {
		t.Errorf("FindByEmail()[0] roomName = %q, want %q", list[0].RoomName, "Executive Room")
	}
	if list[1].RoomName != "Unknown Room" {
		t.Errorf("FindByEmail()[1] roomName = %q, want %q", list[1].RoomName, "Unknown Room")
	}
}

func TestFindByEmail_EmptyResultIsNotNil(t *testing.T) {
	_, bookings := newMemoryStores()

	list, err := bookings.FindByEmail(context.Background(), "nobody@x.com")
	if err != nil {
		t.Fatalf("FindByEmail() failed: %v", err)
	}
	if list == nil {
		t.Error("FindByEmail() returned nil, want empty slice")
	}
	if len(list) != 0 {
		t.Errorf("FindByEmail() length mismatch: got %d, want 0", len(list))
	}
}

func TestDeleteOlderThan(t *testing.T) {
	_, bookings := newMemoryStores()
	ctx := context.Background()

	dates := []string{"2024-05-01", "2024-05-31", "2024-06-01", "2024-06-02"}
	for i, date := range dates {
		b := testBooking(fmt.Sprintf("b%d", i), "1", date, "09:00", "a@x.com")
		if err := bookings.Insert(ctx, b); err != nil {
			t.Fatalf("Insert(%s) failed: %v", date, err)
		}
	}

	deleted, err := bookings.DeleteOlderThan(ctx, "2024-06-01")
	if err != nil {
		t.Fatalf("DeleteOlderThan() failed: %v", err)
	}
	if deleted != 2 {
		t.Errorf("DeleteOlderThan() deleted = %d, want 2", deleted)
	}

	remaining, err := bookings.FindByEmail(ctx, "a@x.com")
	if err != nil {
		t.Fatalf("FindByEmail() failed: %v", err)
	}
	if len(remaining) != 2 {
		t.Errorf("remaining bookings = %d, want 2", len(remaining))
	}
}

func TestConcurrentInsert_SingleWinner(t *testing.T) {
	_, bookings := newMemoryStores()
	ctx := context.Background()

	const attempts = 20
	var wg sync.WaitGroup
	results := make(chan error, attempts)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			b := testBooking(fmt.Sprintf("b%d", n), "1", "2024-06-01", "09:00", "a@x.com")
			results <- bookings.Insert(ctx, b)
		}(i)
	}
	wg.Wait()
	close(results)

	var wins, conflicts int
	for err := range results {
		switch {
		case err == nil:
			wins++
		case errors.Is(err, ErrSlotTaken):
			conflicts++
		default:
			t.Errorf("unexpected Insert() error: %v", err)
		}
	}
	if wins != 1 {
		t.Errorf("concurrent Insert() winners = %d, want exactly 1", wins)
	}
	if conflicts != attempts-1 {
		t.Errorf("concurrent Insert() conflicts = %d, want %d", conflicts, attempts-1)
	}
}
