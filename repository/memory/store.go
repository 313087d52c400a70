// Package memory implements repository.Store on in-process maps. It backs
// the service tests and carries the same semantics as the Postgres store:
// sentinel errors, uniqueness checks, and all-or-nothing transactions.
package memory

import (
	"sync"

	"garagepro-backend/models"
	"garagepro-backend/repository"
)

type itemKey struct {
	bookingID uint
	partID    string
}

type data struct {
	users    map[uint]models.User
	brands   map[uint]models.VehicleBrand
	types    map[uint]models.VehicleType
	vehicles map[uint]models.Vehicle
	parts    map[string]models.Part
	bookings map[uint]models.Booking
	items    map[itemKey]models.RepairItem
	reviews  map[uint]models.Review

	nextUser    uint
	nextBrand   uint
	nextType    uint
	nextVehicle uint
	nextBooking uint
	nextReview  uint
}

func newData() *data {
	return &data{
		users:    make(map[uint]models.User),
		brands:   make(map[uint]models.VehicleBrand),
		types:    make(map[uint]models.VehicleType),
		vehicles: make(map[uint]models.Vehicle),
		parts:    make(map[string]models.Part),
		bookings: make(map[uint]models.Booking),
		items:    make(map[itemKey]models.RepairItem),
		reviews:  make(map[uint]models.Review),
	}
}

func (d *data) clone() *data {
	c := newData()
	for k, v := range d.users {
		c.users[k] = v
	}
	for k, v := range d.brands {
		c.brands[k] = v
	}
	for k, v := range d.types {
		c.types[k] = v
	}
	for k, v := range d.vehicles {
		c.vehicles[k] = v
	}
	for k, v := range d.parts {
		c.parts[k] = v
	}
	for k, v := range d.bookings {
		c.bookings[k] = v
	}
	for k, v := range d.items {
		c.items[k] = v
	}
	for k, v := range d.reviews {
		c.reviews[k] = v
	}
	c.nextUser = d.nextUser
	c.nextBrand = d.nextBrand
	c.nextType = d.nextType
	c.nextVehicle = d.nextVehicle
	c.nextBooking = d.nextBooking
	c.nextReview = d.nextReview
	return c
}

type Store struct {
	mu   sync.RWMutex // guards d
	txMu sync.Mutex   // serializes transactions
	d    *data
}

func New() *Store {
	return &Store{d: newData()}
}

func (s *Store) Users() repository.UserRepository             { return &userRepo{s: s} }
func (s *Store) Brands() repository.BrandRepository           { return &brandRepo{s: s} }
func (s *Store) Types() repository.TypeRepository             { return &typeRepo{s: s} }
func (s *Store) Vehicles() repository.VehicleRepository       { return &vehicleRepo{s: s} }
func (s *Store) Parts() repository.PartRepository             { return &partRepo{s: s} }
func (s *Store) Bookings() repository.BookingRepository       { return &bookingRepo{s: s} }
func (s *Store) RepairItems() repository.RepairItemRepository { return &repairItemRepo{s: s} }
func (s *Store) Reviews() repository.ReviewRepository         { return &reviewRepo{s: s} }

// Transaction snapshots the data set, runs fn, and restores the snapshot if
// fn fails. Concurrent transactions serialize on txMu.
func (s *Store) Transaction(fn func(repository.Store) error) error {
	s.txMu.Lock()
	defer s.txMu.Unlock()

	s.mu.Lock()
	snapshot := s.d.clone()
	s.mu.Unlock()

	if err := fn(s); err != nil {
		s.mu.Lock()
		s.d = snapshot
		s.mu.Unlock()
		return err
	}
	return nil
}
