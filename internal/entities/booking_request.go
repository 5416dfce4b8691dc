package entities

// CreateBookingRequest is the payload for a new booking. Dates arrive as
// strings and are parsed permissively by the service layer.
type CreateBookingRequest struct {
	VehicleID  int    `json:"vehicle_id"`
	CustomerID string `json:"customer_id"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
}

// UpdateBookingRequest carries a partial update. Nil fields are left
// untouched; if either date is supplied both must be present and valid.
type UpdateBookingRequest struct {
	CustomerID *string `json:"customer_id,omitempty"`
	StartDate  *string `json:"start_date,omitempty"`
	EndDate    *string `json:"end_date,omitempty"`
}

// HasDates reports whether the update touches the booking interval.
func (u UpdateBookingRequest) HasDates() bool {
	return u.StartDate != nil || u.EndDate != nil
}
