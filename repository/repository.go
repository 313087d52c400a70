package repository

import (
	"errors"

	"garagepro-backend/models"
)

var (
	// ErrNotFound is returned when a referenced row does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate is returned on a uniqueness violation.
	ErrDuplicate = errors.New("duplicate record")
)

type UserRepository interface {
	Create(user *models.User) error
	FindByID(id uint) (models.User, error)
	FindByEmail(email string) (models.User, error)
	List() ([]models.User, error)
	ListByRole(role string) ([]models.User, error)
	Update(user *models.User) error
	Delete(id uint) error
	CountCustomers() (int64, error)
}

type BrandRepository interface {
	List() ([]models.VehicleBrand, error)
	FindByID(id uint) (models.VehicleBrand, error)
	Create(brand *models.VehicleBrand) error
	Update(brand *models.VehicleBrand) error
	Delete(id uint) error
}

type TypeRepository interface {
	List() ([]models.VehicleType, error)
	FindByID(id uint) (models.VehicleType, error)
	Create(t *models.VehicleType) error
	Update(t *models.VehicleType) error
	Delete(id uint) error
}

type VehicleRepository interface {
	Create(vehicle *models.Vehicle) error
	FindByID(id uint) (models.Vehicle, error)
	ListByOwner(userID uint) ([]models.Vehicle, error)
	List() ([]models.Vehicle, error)
	Update(vehicle *models.Vehicle) error
	Delete(id uint) error
	Count() (int64, error)
	CountByOwner(userID uint) (int64, error)
	CountByBrandID(brandID uint) (int64, error)
	CountByTypeID(typeID uint) (int64, error)
	CountPerBrand() ([]models.LabelCount, error)
	CountPerType() ([]models.LabelCount, error)
}

type PartRepository interface {
	List() ([]models.Part, error)
	FindByID(id string) (models.Part, error)
	// FindByIDForUpdate locks the part row for the rest of the enclosing
	// transaction so concurrent stock mutations serialize.
	FindByIDForUpdate(id string) (models.Part, error)
	MaxID() (string, error)
	Create(part *models.Part) error
	Update(part *models.Part) error
	Delete(id string) error
	ListBelow(threshold int) ([]models.Part, error)
}

type BookingRepository interface {
	Create(booking *models.Booking) error
	FindByID(id uint) (models.Booking, error)
	ListByOwner(userID uint) ([]models.Booking, error)
	ListByStatus(statusID uint) ([]models.Booking, error)
	List() ([]models.Booking, error)
	Update(booking *models.Booking) error
	Count() (int64, error)
	CountByVehicle(vehicleID uint) (int64, error)
	CountPerStatus() ([]models.LabelCount, error)
}

type RepairItemRepository interface {
	Find(bookingID uint, partID string) (models.RepairItem, error)
	ListByBooking(bookingID uint) ([]models.RepairItemLine, error)
	Create(item *models.RepairItem) error
	Update(item *models.RepairItem) error
	Delete(bookingID uint, partID string) error
	CountByPart(partID string) (int64, error)
	MaterialCost(bookingID uint) (float64, error)
}

type ReviewRepository interface {
	Create(review *models.Review) error
	FindByBooking(bookingID uint) (models.Review, error)
	List() ([]models.Review, error)
}

// Store bundles the per-entity repositories behind one handle. Transaction
// runs fn against a store bound to a single all-or-nothing unit of work;
// any error rolls the whole unit back.
type Store interface {
	Users() UserRepository
	Brands() BrandRepository
	Types() TypeRepository
	Vehicles() VehicleRepository
	Parts() PartRepository
	Bookings() BookingRepository
	RepairItems() RepairItemRepository
	Reviews() ReviewRepository

	Transaction(fn func(Store) error) error
}
