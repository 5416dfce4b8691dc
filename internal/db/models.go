package db

import "time"

type Vehicle struct {
	ID          int       `json:"id"`
	Make        string    `json:"make"`
	Model       string    `json:"model"`
	PricePerDay float64   `json:"price_per_day"`
	Available   bool      `json:"available"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type Booking struct {
	ID         int       `json:"id"`
	VehicleID  int       `json:"vehicle_id"`
	CustomerID string    `json:"customer_id"`
	StartDate  time.Time `json:"start_date"`
	EndDate    time.Time `json:"end_date"`
	TotalPrice float64   `json:"total_price"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
