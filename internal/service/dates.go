package service

import (
	"time"

	"rentacar/internal/errors"
)

// Clients send dates in a handful of formats; parse them permissively
// and treat anything else as a validation failure.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func ParseDate(field, value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, errors.Validation("%s is required", field)
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, errors.Validation("invalid %s format: %q", field, value)
}

// parseInterval validates a start/end pair for a booking: both present,
// both parseable, start strictly before end.
func parseInterval(startValue, endValue string) (time.Time, time.Time, error) {
	start, err := ParseDate("start_date", startValue)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err := ParseDate("end_date", endValue)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if !start.Before(end) {
		return time.Time{}, time.Time{}, errors.Validation("start date must be before end date")
	}
	return start, end, nil
}
