package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"roomdesk/internal/db"
	"roomdesk/internal/entities"
	httperrors "roomdesk/internal/errors"
	"roomdesk/internal/repository"
	"roomdesk/internal/utils"
)

type BookingService struct {
	Rooms    repository.RoomStore
	Bookings repository.BookingStore
	notifier *NotifyService
}

func NewBookingService(rooms repository.RoomStore, bookings repository.BookingStore, notifier *NotifyService) *BookingService {
	return &BookingService{
		Rooms:    rooms,
		Bookings: bookings,
		notifier: notifier,
	}
}

func (s *BookingService) ListRooms(ctx context.Context) ([]db.Room, error) {
	return s.Rooms.List(ctx)
}

// RoomAvailability resolves a room and derives its slot availability for one
// date.
func (s *BookingService) RoomAvailability(ctx context.Context, roomID, date string) (*entities.RoomAvailability, error) {
	room, err := s.Rooms.FindByID(ctx, roomID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, httperrors.NotFound("Room not found")
		}
		return nil, err
	}

	bookings, err := s.Bookings.FindByRoomDate(ctx, roomID, date)
	if err != nil {
		return nil, err
	}

	bookedSlots := make([]string, 0, len(bookings))
	for _, b := range bookings {
		bookedSlots = append(bookedSlots, b.Time)
	}

	return &entities.RoomAvailability{
		Room:         *room,
		BookedSlots:  bookedSlots,
		Availability: DeriveAvailability(bookings),
	}, nil
}

// CreateBooking validates the request, checks the slot is free, and persists
// a new booking. The store-level uniqueness guard is the authority: even
// after the pre-check passes, Insert can reject a concurrent duplicate.
func (s *BookingService) CreateBooking(ctx context.Context, req entities.CreateBookingRequest) (*db.Booking, error) {
	if err := validateBookingRequest(req); err != nil {
		return nil, err
	}

	room, err := s.Rooms.FindByID(ctx, req.RoomID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, httperrors.NotFound("Room not found")
		}
		return nil, err
	}

	if _, err := s.Bookings.FindByRoomDateTime(ctx, req.RoomID, req.Date, req.Time); err == nil {
		return nil, httperrors.Conflict("This time slot is already booked")
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	booking := &db.Booking{
		ID:        uuid.NewString(),
		RoomID:    req.RoomID,
		Date:      req.Date,
		Time:      req.Time,
		Email:     utils.NormalizeEmail(req.Email),
		Title:     req.Title,
		Attendees: int(req.Attendees),
		CreatedAt: time.Now().UTC(),
	}

	if err := s.Bookings.Insert(ctx, booking); err != nil {
		if errors.Is(err, repository.ErrSlotTaken) {
			// Lost the race between the pre-check and the insert.
			return nil, httperrors.Conflict("This time slot is already booked")
		}
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"booking_id": booking.ID,
		"room_id":    booking.RoomID,
		"date":       booking.Date,
		"slot":       booking.Time,
	}).Info("Booking created")

	s.notifier.SendBookingEmail(booking, room.Name, StatusConfirmed)
	return booking, nil
}

func (s *BookingService) ListBookings(ctx context.Context, email string) ([]db.BookingWithRoom, error) {
	return s.Bookings.FindByEmail(ctx, utils.NormalizeEmail(email))
}

func (s *BookingService) CancelBooking(ctx context.Context, id string) error {
	booking, err := s.Bookings.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return httperrors.NotFound("Booking not found")
		}
		return err
	}

	deleted, err := s.Bookings.DeleteByID(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return httperrors.NotFound("Booking not found")
	}

	roomName := "Unknown Room"
	if room, err := s.Rooms.FindByID(ctx, booking.RoomID); err == nil {
		roomName = room.Name
	}

	logrus.WithField("booking_id", id).Info("Booking cancelled")
	s.notifier.SendBookingEmail(booking, roomName, StatusCancelled)
	return nil
}

func validateBookingRequest(req entities.CreateBookingRequest) error {
	if req.RoomID == "" || req.Date == "" || req.Time == "" || req.Email == "" || req.Title == "" || req.Attendees == 0 {
		return httperrors.Validation("All fields are required")
	}
	if _, err := time.Parse("2006-01-02", req.Date); err != nil {
		return httperrors.Validation("Date must be in YYYY-MM-DD format")
	}
	if !ValidSlot(req.Time) {
		return httperrors.Validation("Time must be one of the hourly slots between 09:00 and 17:00")
	}
	if !strings.Contains(req.Email, "@") {
		return httperrors.Validation("Email address is not valid")
	}
	if req.Attendees < 1 {
		return httperrors.Validation("Attendees must be a positive number")
	}
	return nil
}
