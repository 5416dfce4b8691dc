package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"strconv"

	"rentacar/internal/db"
)

// BookingFilter narrows Find results. Zero values mean "any".
type BookingFilter struct {
	VehicleID  int
	CustomerID string
	ExcludeID  int
}

// BookingStore is the persistence boundary for bookings. Lookups return
// (nil, nil) when the record is absent; DeleteByID returns the deleted
// row, or (nil, nil) when there was nothing to delete.
type BookingStore interface {
	Find(f BookingFilter) ([]db.Booking, error)
	FindByID(id int) (*db.Booking, error)
	Create(b *db.Booking) error
	Update(id int, b *db.Booking) (*db.Booking, error)
	DeleteByID(id int) (*db.Booking, error)
}

type PostgresBookingStore struct {
	DB *sql.DB
}

func NewPostgresBookingStore(database *sql.DB) *PostgresBookingStore {
	return &PostgresBookingStore{DB: database}
}

func (r *PostgresBookingStore) Find(f BookingFilter) ([]db.Booking, error) {
	query := `
		SELECT id, vehicle_id, customer_id, start_date, end_date, total_price, created_at, updated_at
		FROM bookings WHERE 1=1`
	args := []interface{}{}
	idx := 1

	if f.VehicleID != 0 {
		query += " AND vehicle_id = $" + strconv.Itoa(idx)
		args = append(args, f.VehicleID)
		idx++
	}
	if f.CustomerID != "" {
		query += " AND customer_id = $" + strconv.Itoa(idx)
		args = append(args, f.CustomerID)
		idx++
	}
	if f.ExcludeID != 0 {
		query += " AND id <> $" + strconv.Itoa(idx)
		args = append(args, f.ExcludeID)
		idx++
	}
	query += " ORDER BY start_date"

	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying bookings: %w", err)
	}
	defer rows.Close()

	var bookings []db.Booking
	for rows.Next() {
		var b db.Booking
		if err := rows.Scan(
			&b.ID, &b.VehicleID, &b.CustomerID, &b.StartDate, &b.EndDate,
			&b.TotalPrice, &b.CreatedAt, &b.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("error scanning booking: %w", err)
		}
		bookings = append(bookings, b)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error after iterating booking rows: %w", err)
	}
	return bookings, nil
}

func (r *PostgresBookingStore) FindByID(id int) (*db.Booking, error) {
	var b db.Booking
	query := `
		SELECT id, vehicle_id, customer_id, start_date, end_date, total_price, created_at, updated_at
		FROM bookings WHERE id = $1`
	err := r.DB.QueryRow(query, id).Scan(
		&b.ID, &b.VehicleID, &b.CustomerID, &b.StartDate, &b.EndDate,
		&b.TotalPrice, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error querying booking %d: %w", id, err)
	}
	return &b, nil
}

func (r *PostgresBookingStore) Create(b *db.Booking) error {
	query := `
		INSERT INTO bookings (vehicle_id, customer_id, start_date, end_date, total_price, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING id, created_at, updated_at`
	return r.DB.QueryRow(query,
		b.VehicleID, b.CustomerID, b.StartDate, b.EndDate, b.TotalPrice,
	).Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt)
}

func (r *PostgresBookingStore) Update(id int, b *db.Booking) (*db.Booking, error) {
	var updated db.Booking
	query := `
		UPDATE bookings
		SET customer_id = $1, start_date = $2, end_date = $3, total_price = $4, updated_at = NOW()
		WHERE id = $5
		RETURNING id, vehicle_id, customer_id, start_date, end_date, total_price, created_at, updated_at`
	err := r.DB.QueryRow(query, b.CustomerID, b.StartDate, b.EndDate, b.TotalPrice, id).Scan(
		&updated.ID, &updated.VehicleID, &updated.CustomerID, &updated.StartDate, &updated.EndDate,
		&updated.TotalPrice, &updated.CreatedAt, &updated.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error updating booking %d: %w", id, err)
	}
	return &updated, nil
}

func (r *PostgresBookingStore) DeleteByID(id int) (*db.Booking, error) {
	var b db.Booking
	query := `
		DELETE FROM bookings WHERE id = $1
		RETURNING id, vehicle_id, customer_id, start_date, end_date, total_price, created_at, updated_at`
	err := r.DB.QueryRow(query, id).Scan(
		&b.ID, &b.VehicleID, &b.CustomerID, &b.StartDate, &b.EndDate,
		&b.TotalPrice, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error deleting booking %d: %w", id, err)
	}
	return &b, nil
}
