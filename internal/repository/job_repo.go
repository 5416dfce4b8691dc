package repository

import (
	"database/sql"
	"fmt"
	"log"

	"github.com/lib/pq"
)

type JobRepository struct {
	DB *sql.DB
}

func NewJobRepository(database *sql.DB) *JobRepository {
	return &JobRepository{DB: database}
}

// GetExpiredBookingIDs returns IDs of bookings whose end date has passed.
func (r *JobRepository) GetExpiredBookingIDs() ([]int, error) {
	query := `SELECT id FROM bookings WHERE end_date < NOW()`
	rows, err := r.DB.Query(query)
	if err != nil {
		return nil, fmt.Errorf("error querying expired bookings: %w", err)
	}
	defer rows.Close()

	var ids []int
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("error scanning booking ID: %w", err)
		}
		ids = append(ids, id)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error after iterating rows: %w", err)
	}
	return ids, nil
}

// DeleteBookings removes the given bookings in one statement.
func (r *JobRepository) DeleteBookings(ids []int) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	result, err := r.DB.Exec(`DELETE FROM bookings WHERE id = ANY($1)`, pq.Array(ids))
	if err != nil {
		return 0, fmt.Errorf("error deleting bookings: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Printf("Could not get rows affected: %v", err)
		return 0, nil
	}
	return rowsAffected, nil
}

// ReleaseIdleVehicles flips available back to true for vehicles marked
// reserved that no booking references anymore. This repairs flag drift
// left by a fault between the booking write and the vehicle write.
func (r *JobRepository) ReleaseIdleVehicles() (int64, error) {
	result, err := r.DB.Exec(`
		UPDATE vehicles v SET available = TRUE, updated_at = NOW()
		WHERE v.available = FALSE
		AND NOT EXISTS (SELECT 1 FROM bookings b WHERE b.vehicle_id = v.id)`)
	if err != nil {
		return 0, fmt.Errorf("error releasing idle vehicles: %w", err)
	}
	return result.RowsAffected()
}

// MarkBookedVehicles is the inverse repair: vehicles still flagged
// available although an active booking references them.
func (r *JobRepository) MarkBookedVehicles() (int64, error) {
	result, err := r.DB.Exec(`
		UPDATE vehicles v SET available = FALSE, updated_at = NOW()
		WHERE v.available = TRUE
		AND EXISTS (SELECT 1 FROM bookings b WHERE b.vehicle_id = v.id AND b.end_date >= NOW())`)
	if err != nil {
		return 0, fmt.Errorf("error marking booked vehicles: %w", err)
	}
	return result.RowsAffected()
}
