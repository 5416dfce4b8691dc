package service

import (
	"sync"

	"rentacar/internal/db"
	"rentacar/internal/repository"
)

// In-memory store fakes. Errors can be injected per call site to drive
// the store-failure paths.

type fakeVehicleStore struct {
	mu       sync.Mutex
	nextID   int
	vehicles map[int]db.Vehicle
	findErr  error
	saveErr  error
}

func newFakeVehicleStore() *fakeVehicleStore {
	return &fakeVehicleStore{vehicles: make(map[int]db.Vehicle)}
}

func (f *fakeVehicleStore) FindByID(id int) (*db.Vehicle, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.findErr != nil {
		return nil, f.findErr
	}
	v, ok := f.vehicles[id]
	if !ok {
		return nil, nil
	}
	cp := v
	return &cp, nil
}

func (f *fakeVehicleStore) Save(v *db.Vehicle) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.saveErr != nil {
		return f.saveErr
	}
	if v.ID == 0 {
		f.nextID++
		v.ID = f.nextID
	}
	f.vehicles[v.ID] = *v
	return nil
}

type fakeBookingStore struct {
	mu        sync.Mutex
	nextID    int
	bookings  map[int]db.Booking
	findErr   error
	createErr error
}

func newFakeBookingStore() *fakeBookingStore {
	return &fakeBookingStore{bookings: make(map[int]db.Booking)}
}

func (f *fakeBookingStore) Find(filter repository.BookingFilter) ([]db.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.findErr != nil {
		return nil, f.findErr
	}
	var out []db.Booking
	for _, b := range f.bookings {
		if filter.VehicleID != 0 && b.VehicleID != filter.VehicleID {
			continue
		}
		if filter.CustomerID != "" && b.CustomerID != filter.CustomerID {
			continue
		}
		if filter.ExcludeID != 0 && b.ID == filter.ExcludeID {
			continue
		}
		out = append(out, b)
	}
	return out, nil
}

func (f *fakeBookingStore) FindByID(id int) (*db.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	b, ok := f.bookings[id]
	if !ok {
		return nil, nil
	}
	cp := b
	return &cp, nil
}

func (f *fakeBookingStore) Create(b *db.Booking) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return f.createErr
	}
	f.nextID++
	b.ID = f.nextID
	f.bookings[b.ID] = *b
	return nil
}

func (f *fakeBookingStore) Update(id int, b *db.Booking) (*db.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	existing, ok := f.bookings[id]
	if !ok {
		return nil, nil
	}
	existing.CustomerID = b.CustomerID
	existing.StartDate = b.StartDate
	existing.EndDate = b.EndDate
	existing.TotalPrice = b.TotalPrice
	f.bookings[id] = existing
	cp := existing
	return &cp, nil
}

func (f *fakeBookingStore) DeleteByID(id int) (*db.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	b, ok := f.bookings[id]
	if !ok {
		return nil, nil
	}
	delete(f.bookings, id)
	cp := b
	return &cp, nil
}
