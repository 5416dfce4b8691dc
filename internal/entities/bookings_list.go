package entities

import "rentacar/internal/db"

type BookingsList struct {
	Total    int          `json:"total"`
	Bookings []db.Booking `json:"bookings"`
}
