package service

import (
	"fmt"
	"log"

	"rentacar/internal/repository"
)

type JobService struct {
	Repo *repository.JobRepository
}

func NewJobService(repo *repository.JobRepository) *JobService {
	return &JobService{Repo: repo}
}

// CleanupExpiredBookings removes bookings whose end date has passed and
// then reconciles the vehicle availability flags.
func (s *JobService) CleanupExpiredBookings() error {
	log.Println("Cron Job: checking for bookings past their end date...")

	ids, err := s.Repo.GetExpiredBookingIDs()
	if err != nil {
		return fmt.Errorf("cron job: failed to get expired bookings: %w", err)
	}

	if len(ids) == 0 {
		log.Println("Cron Job: no expired bookings found.")
	} else {
		deleted, err := s.Repo.DeleteBookings(ids)
		if err != nil {
			return fmt.Errorf("cron job: failed to delete expired bookings: %w", err)
		}
		log.Printf("Cron Job: deleted %d expired bookings. IDs: %v", deleted, ids)
	}

	return s.ReconcileAvailability()
}

// ReconcileAvailability repairs availability flags that drifted from the
// booking set, in either direction. Drift appears when a fault lands
// between the booking write and the vehicle write.
func (s *JobService) ReconcileAvailability() error {
	released, err := s.Repo.ReleaseIdleVehicles()
	if err != nil {
		return fmt.Errorf("cron job: failed to release idle vehicles: %w", err)
	}
	marked, err := s.Repo.MarkBookedVehicles()
	if err != nil {
		return fmt.Errorf("cron job: failed to mark booked vehicles: %w", err)
	}
	if released > 0 || marked > 0 {
		log.Printf("Cron Job: reconciled availability flags (released %d, marked %d)", released, marked)
	}
	return nil
}
