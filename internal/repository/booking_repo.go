package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"roomdesk/internal/db"
)

// Postgres error code for unique_violation, raised by the
// (room_id, booking_date, slot_time) constraint.
const uniqueViolation = "23505"

type BookingRepository struct {
	DB *sql.DB
}

func NewBookingRepository(database *sql.DB) *BookingRepository {
	return &BookingRepository{DB: database}
}

func (r *BookingRepository) FindByRoomDateTime(ctx context.Context, roomID, date, slot string) (*db.Booking, error) {
	query := `
		SELECT id, room_id, booking_date::text, slot_time, email, title, attendees, created_at
		FROM bookings
		WHERE room_id = $1 AND booking_date = $2::date AND slot_time = $3`
	return scanBooking(r.DB.QueryRowContext(ctx, query, roomID, date, slot))
}

func (r *BookingRepository) FindByRoomDate(ctx context.Context, roomID, date string) ([]db.Booking, error) {
	query := `
		SELECT id, room_id, booking_date::text, slot_time, email, title, attendees, created_at
		FROM bookings
		WHERE room_id = $1 AND booking_date = $2::date
		ORDER BY slot_time`
	rows, err := r.DB.QueryContext(ctx, query, roomID, date)
	if err != nil {
		return nil, fmt.Errorf("error querying bookings for room and date: %w", err)
	}
	defer rows.Close()

	bookings := make([]db.Booking, 0)
	for rows.Next() {
		var b db.Booking
		if err := rows.Scan(&b.ID, &b.RoomID, &b.Date, &b.Time, &b.Email, &b.Title, &b.Attendees, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning booking: %w", err)
		}
		bookings = append(bookings, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error after iterating booking rows: %w", err)
	}
	return bookings, nil
}

func (r *BookingRepository) FindByID(ctx context.Context, id string) (*db.Booking, error) {
	query := `
		SELECT id, room_id, booking_date::text, slot_time, email, title, attendees, created_at
		FROM bookings
		WHERE id = $1`
	return scanBooking(r.DB.QueryRowContext(ctx, query, id))
}

func (r *BookingRepository) FindByEmail(ctx context.Context, email string) ([]db.BookingWithRoom, error) {
	query := `
		SELECT
			b.id, b.room_id, b.booking_date::text, b.slot_time, b.email, b.title, b.attendees, b.created_at,
			COALESCE(rm.name, 'Unknown Room') AS room_name
		FROM bookings b
		LEFT JOIN rooms rm ON rm.id = b.room_id
		WHERE b.email = lower($1)
		ORDER BY b.created_at, b.id`
	rows, err := r.DB.QueryContext(ctx, query, email)
	if err != nil {
		return nil, fmt.Errorf("error querying bookings by email: %w", err)
	}
	defer rows.Close()

	bookings := make([]db.BookingWithRoom, 0)
	for rows.Next() {
		var b db.BookingWithRoom
		if err := rows.Scan(&b.ID, &b.RoomID, &b.Date, &b.Time, &b.Email, &b.Title, &b.Attendees, &b.CreatedAt, &b.RoomName); err != nil {
			return nil, fmt.Errorf("error scanning booking with room: %w", err)
		}
		bookings = append(bookings, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error after iterating booking rows: %w", err)
	}
	return bookings, nil
}

func (r *BookingRepository) Insert(ctx context.Context, b *db.Booking) error {
	query := `
		INSERT INTO bookings (id, room_id, booking_date, slot_time, email, title, attendees, created_at)
		VALUES ($1, $2, $3::date, $4, $5, $6, $7, $8)`
	_, err := r.DB.ExecContext(ctx, query,
		b.ID,
		b.RoomID,
		b.Date,
		b.Time,
		b.Email,
		b.Title,
		b.Attendees,
		b.CreatedAt,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return ErrSlotTaken
		}
		return fmt.Errorf("error inserting booking: %w", err)
	}
	return nil
}

func (r *BookingRepository) DeleteByID(ctx context.Context, id string) (bool, error) {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM bookings WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("error deleting booking: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("error reading rows affected: %w", err)
	}
	return affected > 0, nil
}

func (r *BookingRepository) DeleteOlderThan(ctx context.Context, date string) (int64, error) {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM bookings WHERE booking_date < $1::date`, date)
	if err != nil {
		return 0, fmt.Errorf("error deleting expired bookings: %w", err)
	}
	return result.RowsAffected()
}

func scanBooking(row *sql.Row) (*db.Booking, error) {
	var b db.Booking
	err := row.Scan(&b.ID, &b.RoomID, &b.Date, &b.Time, &b.Email, &b.Title, &b.Attendees, &b.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error scanning booking: %w", err)
	}
	return &b, nil
}
