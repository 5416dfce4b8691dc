package entities

import "time"

type AvailabilityRequest struct {
	VehicleID int    `json:"vehicle_id"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

// AvailabilityResponse answers "is this vehicle free for the interval",
// derived from the active booking set rather than the stored flag.
type AvailabilityResponse struct {
	VehicleID          int       `json:"vehicle_id"`
	RequestedStartDate time.Time `json:"requested_start_date"`
	RequestedEndDate   time.Time `json:"requested_end_date"`
	Available          bool      `json:"available"`
	ConflictingBooking *int      `json:"conflicting_booking_id,omitempty"`
}
