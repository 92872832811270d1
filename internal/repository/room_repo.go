package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"roomdesk/internal/db"
)

type RoomRepository struct {
	DB *sql.DB
}

func NewRoomRepository(database *sql.DB) *RoomRepository {
	return &RoomRepository{DB: database}
}

func (r *RoomRepository) FindByID(ctx context.Context, id string) (*db.Room, error) {
	var room db.Room
	query := `SELECT id, name, capacity, features FROM rooms WHERE id = $1`
	err := r.DB.QueryRowContext(ctx, query, id).Scan(&room.ID, &room.Name, &room.Capacity, pq.Array(&room.Features))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error scanning room: %w", err)
	}
	return &room, nil
}

func (r *RoomRepository) List(ctx context.Context) ([]db.Room, error) {
	query := `SELECT id, name, capacity, features FROM rooms ORDER BY id`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error querying rooms: %w", err)
	}
	defer rows.Close()

	rooms := make([]db.Room, 0)
	for rows.Next() {
		var room db.Room
		if err := rows.Scan(&room.ID, &room.Name, &room.Capacity, pq.Array(&room.Features)); err != nil {
			return nil, fmt.Errorf("error scanning room: %w", err)
		}
		rooms = append(rooms, room)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error after iterating room rows: %w", err)
	}
	return rooms, nil
}
