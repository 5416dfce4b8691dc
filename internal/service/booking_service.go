package service

import (
	"sync"

	"rentacar/internal/db"
	"rentacar/internal/entities"
	"rentacar/internal/errors"
	"rentacar/internal/repository"
)

// BookingService orchestrates the booking lifecycle: it validates input,
// scans for conflicting bookings, computes the price and keeps the
// vehicle availability flag in step with the booking set.
type BookingService struct {
	vehicles repository.VehicleStore
	bookings repository.BookingStore

	mu    sync.Mutex
	locks map[int]*sync.Mutex
}

func NewBookingService(vehicles repository.VehicleStore, bookings repository.BookingStore) *BookingService {
	return &BookingService{
		vehicles: vehicles,
		bookings: bookings,
		locks:    make(map[int]*sync.Mutex),
	}
}

// vehicleLock returns the mutex serializing booking operations on one
// vehicle. The conflict scan and the writes that follow it are not one
// store transaction, so the check-then-write section runs under this lock.
func (s *BookingService) vehicleLock(vehicleID int) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.locks[vehicleID]
	if !ok {
		l = &sync.Mutex{}
		s.locks[vehicleID] = l
	}
	return l
}

func (s *BookingService) CreateBooking(req entities.CreateBookingRequest) (*db.Booking, error) {
	start, end, err := parseInterval(req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}

	lock := s.vehicleLock(req.VehicleID)
	lock.Lock()
	defer lock.Unlock()

	vehicle, err := s.vehicles.FindByID(req.VehicleID)
	if err != nil {
		return nil, errors.Store("could not load vehicle", err)
	}
	if vehicle == nil {
		return nil, errors.NotFound("vehicle %d not found", req.VehicleID)
	}
	if !vehicle.Available {
		return nil, errors.Conflict("vehicle %d is not available for booking", req.VehicleID)
	}
	if !(vehicle.PricePerDay > 0) {
		return nil, errors.Validation("invalid rental price for vehicle %d", req.VehicleID)
	}

	existing, err := s.bookings.Find(repository.BookingFilter{VehicleID: req.VehicleID})
	if err != nil {
		return nil, errors.Store("could not scan existing bookings", err)
	}
	for _, b := range existing {
		if Overlaps(start, end, b.StartDate, b.EndDate) {
			return nil, errors.Conflict("vehicle %d is already booked for the selected dates", req.VehicleID)
		}
	}

	total, err := RentalPrice(start, end, vehicle.PricePerDay)
	if err != nil {
		return nil, err
	}

	booking := &db.Booking{
		VehicleID:  req.VehicleID,
		CustomerID: req.CustomerID,
		StartDate:  start,
		EndDate:    end,
		TotalPrice: total,
	}
	if err := s.bookings.Create(booking); err != nil {
		return nil, errors.Store("could not create booking", err)
	}

	vehicle.Available = false
	if err := s.vehicles.Save(vehicle); err != nil {
		// The booking row exists at this point; the reconciliation sweep
		// repairs the flag on its next pass.
		return nil, errors.Store("booking created but vehicle update failed", err)
	}
	return booking, nil
}

func (s *BookingService) UpdateBooking(id int, req entities.UpdateBookingRequest) (*db.Booking, error) {
	if req.HasDates() {
		return s.updateBookingDates(id, req)
	}

	booking, err := s.bookings.FindByID(id)
	if err != nil {
		return nil, errors.Store("could not load booking", err)
	}
	if booking == nil {
		return nil, errors.NotFound("booking %d not found", id)
	}

	merged := *booking
	if req.CustomerID != nil {
		merged.CustomerID = *req.CustomerID
	}
	updated, err := s.bookings.Update(id, &merged)
	if err != nil {
		return nil, errors.Store("could not update booking", err)
	}
	if updated == nil {
		return nil, errors.NotFound("booking %d not found", id)
	}
	return updated, nil
}

func (s *BookingService) updateBookingDates(id int, req entities.UpdateBookingRequest) (*db.Booking, error) {
	if req.StartDate == nil || req.EndDate == nil {
		return nil, errors.Validation("both start date and end date are required")
	}
	start, end, err := parseInterval(*req.StartDate, *req.EndDate)
	if err != nil {
		return nil, err
	}

	booking, err := s.bookings.FindByID(id)
	if err != nil {
		return nil, errors.Store("could not load booking", err)
	}
	if booking == nil {
		return nil, errors.NotFound("booking %d not found", id)
	}

	lock := s.vehicleLock(booking.VehicleID)
	lock.Lock()
	defer lock.Unlock()

	others, err := s.bookings.Find(repository.BookingFilter{
		VehicleID: booking.VehicleID,
		ExcludeID: id,
	})
	if err != nil {
		return nil, errors.Store("could not scan existing bookings", err)
	}
	for _, b := range others {
		if Overlaps(start, end, b.StartDate, b.EndDate) {
			return nil, errors.Conflict("vehicle %d is already booked for the selected dates", booking.VehicleID)
		}
	}

	vehicle, err := s.vehicles.FindByID(booking.VehicleID)
	if err != nil {
		return nil, errors.Store("could not load vehicle", err)
	}
	if vehicle == nil {
		return nil, errors.NotFound("vehicle %d not found", booking.VehicleID)
	}
	total, err := RentalPrice(start, end, vehicle.PricePerDay)
	if err != nil {
		return nil, err
	}

	merged := *booking
	merged.StartDate = start
	merged.EndDate = end
	merged.TotalPrice = total
	if req.CustomerID != nil {
		merged.CustomerID = *req.CustomerID
	}
	updated, err := s.bookings.Update(id, &merged)
	if err != nil {
		return nil, errors.Store("could not update booking", err)
	}
	if updated == nil {
		return nil, errors.NotFound("booking %d not found", id)
	}
	return updated, nil
}

// CancelBooking deletes the booking and releases its vehicle. It returns
// the booking as it was before deletion. A missing vehicle is tolerated:
// the booking is still removed.
func (s *BookingService) CancelBooking(id int) (*db.Booking, error) {
	booking, err := s.bookings.FindByID(id)
	if err != nil {
		return nil, errors.Store("could not load booking", err)
	}
	if booking == nil {
		return nil, errors.NotFound("booking %d not found", id)
	}

	lock := s.vehicleLock(booking.VehicleID)
	lock.Lock()
	defer lock.Unlock()

	vehicle, err := s.vehicles.FindByID(booking.VehicleID)
	if err != nil {
		return nil, errors.Store("could not load vehicle", err)
	}
	if vehicle != nil {
		vehicle.Available = true
		if err := s.vehicles.Save(vehicle); err != nil {
			return nil, errors.Store("could not release vehicle", err)
		}
	}

	if _, err := s.bookings.DeleteByID(id); err != nil {
		return nil, errors.Store("could not delete booking", err)
	}
	return booking, nil
}

func (s *BookingService) GetBooking(id int) (*db.Booking, error) {
	booking, err := s.bookings.FindByID(id)
	if err != nil {
		return nil, errors.Store("could not load booking", err)
	}
	if booking == nil {
		return nil, errors.NotFound("booking %d not found", id)
	}
	return booking, nil
}

func (s *BookingService) ListBookings(f repository.BookingFilter) (*entities.BookingsList, error) {
	bookings, err := s.bookings.Find(f)
	if err != nil {
		return nil, errors.Store("could not list bookings", err)
	}
	return &entities.BookingsList{Total: len(bookings), Bookings: bookings}, nil
}

// CheckAvailability answers whether a vehicle is free for an interval,
// derived from the booking set instead of the stored flag.
func (s *BookingService) CheckAvailability(req entities.AvailabilityRequest) (*entities.AvailabilityResponse, error) {
	start, end, err := parseInterval(req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}

	vehicle, err := s.vehicles.FindByID(req.VehicleID)
	if err != nil {
		return nil, errors.Store("could not load vehicle", err)
	}
	if vehicle == nil {
		return nil, errors.NotFound("vehicle %d not found", req.VehicleID)
	}

	existing, err := s.bookings.Find(repository.BookingFilter{VehicleID: req.VehicleID})
	if err != nil {
		return nil, errors.Store("could not scan existing bookings", err)
	}

	resp := &entities.AvailabilityResponse{
		VehicleID:          req.VehicleID,
		RequestedStartDate: start,
		RequestedEndDate:   end,
		Available:          true,
	}
	for _, b := range existing {
		if Overlaps(start, end, b.StartDate, b.EndDate) {
			id := b.ID
			resp.Available = false
			resp.ConflictingBooking = &id
			break
		}
	}
	return resp, nil
}

// SaveVehicle upserts a vehicle record for fleet maintenance.
func (s *BookingService) SaveVehicle(v *db.Vehicle) error {
	if !(v.PricePerDay > 0) {
		return errors.Validation("price per day must be positive")
	}
	if err := s.vehicles.Save(v); err != nil {
		return errors.Store("could not save vehicle", err)
	}
	return nil
}
