package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"rentacar/internal/db"
)

// VehicleStore is the persistence boundary for vehicles. FindByID returns
// (nil, nil) when no vehicle exists so the service decides the error kind.
type VehicleStore interface {
	FindByID(id int) (*db.Vehicle, error)
	Save(v *db.Vehicle) error
}

type PostgresVehicleStore struct {
	DB *sql.DB
}

func NewPostgresVehicleStore(database *sql.DB) *PostgresVehicleStore {
	return &PostgresVehicleStore{DB: database}
}

func (r *PostgresVehicleStore) FindByID(id int) (*db.Vehicle, error) {
	var v db.Vehicle
	query := `
		SELECT id, make, model, price_per_day, available, created_at, updated_at
		FROM vehicles WHERE id = $1`
	err := r.DB.QueryRow(query, id).Scan(
		&v.ID, &v.Make, &v.Model, &v.PricePerDay, &v.Available, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error querying vehicle %d: %w", id, err)
	}
	return &v, nil
}

// Save upserts on the vehicle's identity. A zero ID inserts a new row and
// fills in the generated ID and timestamps.
func (r *PostgresVehicleStore) Save(v *db.Vehicle) error {
	if v.ID == 0 {
		query := `
			INSERT INTO vehicles (make, model, price_per_day, available, created_at, updated_at)
			VALUES ($1, $2, $3, $4, NOW(), NOW())
			RETURNING id, created_at, updated_at`
		return r.DB.QueryRow(query, v.Make, v.Model, v.PricePerDay, v.Available).
			Scan(&v.ID, &v.CreatedAt, &v.UpdatedAt)
	}

	query := `
		INSERT INTO vehicles (id, make, model, price_per_day, available, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		ON CONFLICT (id) DO UPDATE SET
			make = EXCLUDED.make,
			model = EXCLUDED.model,
			price_per_day = EXCLUDED.price_per_day,
			available = EXCLUDED.available,
			updated_at = NOW()
		RETURNING created_at, updated_at`
	return r.DB.QueryRow(query, v.ID, v.Make, v.Model, v.PricePerDay, v.Available).
		Scan(&v.CreatedAt, &v.UpdatedAt)
}
