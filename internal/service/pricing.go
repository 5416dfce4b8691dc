package service

import (
	"math"
	"time"

	"rentacar/internal/errors"
)

const secondsPerDay = 86400

// RentalPrice computes the total cost of renting at pricePerDay over the
// interval. The duration is a fractional day count and is not rounded.
func RentalPrice(start, end time.Time, pricePerDay float64) (float64, error) {
	days := end.Sub(start).Seconds() / secondsPerDay
	total := days * pricePerDay
	if math.IsNaN(total) || math.IsInf(total, 0) || total <= 0 {
		return 0, errors.Validation("invalid total price calculation")
	}
	return total, nil
}
