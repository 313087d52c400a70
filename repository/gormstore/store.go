// Package gormstore implements repository.Store on Postgres via gorm.
package gormstore

import (
	"errors"

	"garagepro-backend/repository"

	"gorm.io/gorm"
)

type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Users() repository.UserRepository             { return &userRepo{db: s.db} }
func (s *Store) Brands() repository.BrandRepository           { return &brandRepo{db: s.db} }
func (s *Store) Types() repository.TypeRepository             { return &typeRepo{db: s.db} }
func (s *Store) Vehicles() repository.VehicleRepository       { return &vehicleRepo{db: s.db} }
func (s *Store) Parts() repository.PartRepository             { return &partRepo{db: s.db} }
func (s *Store) Bookings() repository.BookingRepository       { return &bookingRepo{db: s.db} }
func (s *Store) RepairItems() repository.RepairItemRepository { return &repairItemRepo{db: s.db} }
func (s *Store) Reviews() repository.ReviewRepository         { return &reviewRepo{db: s.db} }

// Transaction hands fn a store bound to a database transaction; a non-nil
// error from fn rolls everything back.
func (s *Store) Transaction(fn func(repository.Store) error) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		return fn(&Store{db: tx})
	})
}

// translate maps gorm errors onto the repository sentinels. Requires the
// connection to be opened with TranslateError so driver uniqueness
// violations surface as gorm.ErrDuplicatedKey.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return repository.ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return repository.ErrDuplicate
	default:
		return err
	}
}
