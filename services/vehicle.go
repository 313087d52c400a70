package services

import (
	"errors"
	"strings"

	"garagepro-backend/models"
	"garagepro-backend/repository"

	"go.uber.org/zap"
)

// VehicleRegistry owns vehicle records and their ownership rules.
type VehicleRegistry struct {
	store repository.Store
	log   *zap.Logger
}

func NewVehicleRegistry(store repository.Store, log *zap.Logger) *VehicleRegistry {
	return &VehicleRegistry{store: store, log: log}
}

type CreateVehicleInput struct {
	OwnerID      uint // ignored unless the actor is an admin
	LicensePlate string
	Model        string
	BrandID      uint
	TypeID       uint
}

type UpdateVehicleInput struct {
	OwnerID      *uint // admin only
	LicensePlate *string
	Model        *string
	BrandID      *uint
	TypeID       *uint
}

func normalizePlate(plate string) string {
	return strings.ToUpper(strings.TrimSpace(plate))
}

func (r *VehicleRegistry) checkRefs(brandID, typeID uint) error {
	if _, err := r.store.Brands().FindByID(brandID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return validationErr("unknown vehicle brand %d", brandID)
		}
		return unavailableErr(err)
	}
	if _, err := r.store.Types().FindByID(typeID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return validationErr("unknown vehicle type %d", typeID)
		}
		return unavailableErr(err)
	}
	return nil
}

// Create registers a vehicle. A customer always creates for themselves; an
// admin may name any existing owner.
func (r *VehicleRegistry) Create(input CreateVehicleInput, actor ActingUser) (models.Vehicle, error) {
	ownerID := actor.ID
	if actor.IsAdmin() && input.OwnerID != 0 {
		ownerID = input.OwnerID
		if _, err := r.store.Users().FindByID(ownerID); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return models.Vehicle{}, notFoundErr("owner not found")
			}
			return models.Vehicle{}, unavailableErr(err)
		}
	}

	plate := normalizePlate(input.LicensePlate)
	if plate == "" {
		return models.Vehicle{}, validationErr("license plate is required")
	}
	if input.Model == "" {
		return models.Vehicle{}, validationErr("model is required")
	}
	if err := r.checkRefs(input.BrandID, input.TypeID); err != nil {
		return models.Vehicle{}, err
	}

	vehicle := models.Vehicle{
		UserID:       ownerID,
		LicensePlate: plate,
		Model:        input.Model,
		BrandID:      input.BrandID,
		TypeID:       input.TypeID,
	}
	if err := r.store.Vehicles().Create(&vehicle); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return models.Vehicle{}, conflictErr("license plate %s is already registered", plate)
		}
		return models.Vehicle{}, unavailableErr(err)
	}
	r.log.Info("vehicle registered",
		zap.Uint("vehicle_id", vehicle.ID),
		zap.String("plate", plate),
		zap.Uint("owner_id", ownerID))
	return r.store.Vehicles().FindByID(vehicle.ID)
}

func (r *VehicleRegistry) GetByID(vehicleID uint, actor ActingUser) (models.Vehicle, error) {
	vehicle, err := r.store.Vehicles().FindByID(vehicleID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return models.Vehicle{}, notFoundErr("vehicle not found")
		}
		return models.Vehicle{}, unavailableErr(err)
	}
	if !actor.IsAdmin() && vehicle.UserID != actor.ID {
		return models.Vehicle{}, forbiddenErr("vehicle belongs to another customer")
	}
	return vehicle, nil
}

func (r *VehicleRegistry) Update(vehicleID uint, input UpdateVehicleInput, actor ActingUser) (models.Vehicle, error) {
	vehicle, err := r.GetByID(vehicleID, actor)
	if err != nil {
		return models.Vehicle{}, err
	}

	if input.OwnerID != nil {
		if !actor.IsAdmin() {
			return models.Vehicle{}, forbiddenErr("only an admin may reassign ownership")
		}
		if _, err := r.store.Users().FindByID(*input.OwnerID); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return models.Vehicle{}, notFoundErr("owner not found")
			}
			return models.Vehicle{}, unavailableErr(err)
		}
		vehicle.UserID = *input.OwnerID
	}
	if input.LicensePlate != nil {
		plate := normalizePlate(*input.LicensePlate)
		if plate == "" {
			return models.Vehicle{}, validationErr("license plate is required")
		}
		vehicle.LicensePlate = plate
	}
	if input.Model != nil {
		vehicle.Model = *input.Model
	}
	if input.BrandID != nil {
		vehicle.BrandID = *input.BrandID
	}
	if input.TypeID != nil {
		vehicle.TypeID = *input.TypeID
	}
	if input.BrandID != nil || input.TypeID != nil {
		if err := r.checkRefs(vehicle.BrandID, vehicle.TypeID); err != nil {
			return models.Vehicle{}, err
		}
	}

	vehicle.Owner, vehicle.Brand, vehicle.Type = nil, nil, nil
	if err := r.store.Vehicles().Update(&vehicle); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return models.Vehicle{}, conflictErr("license plate %s is already registered", vehicle.LicensePlate)
		}
		return models.Vehicle{}, unavailableErr(err)
	}
	return r.store.Vehicles().FindByID(vehicle.ID)
}

// Delete removes a vehicle. Vehicles with bookings are kept: bookings are
// financial records that must stay resolvable to an owner.
func (r *VehicleRegistry) Delete(vehicleID uint, actor ActingUser) error {
	if _, err := r.GetByID(vehicleID, actor); err != nil {
		return err
	}
	n, err := r.store.Bookings().CountByVehicle(vehicleID)
	if err != nil {
		return unavailableErr(err)
	}
	if n > 0 {
		return conflictErr("vehicle has %d booking(s) and cannot be deleted", n)
	}
	if err := r.store.Vehicles().Delete(vehicleID); err != nil {
		return unavailableErr(err)
	}
	r.log.Info("vehicle deleted", zap.Uint("vehicle_id", vehicleID), zap.Uint("user_id", actor.ID))
	return nil
}

func (r *VehicleRegistry) ListMine(actor ActingUser) ([]models.Vehicle, error) {
	vehicles, err := r.store.Vehicles().ListByOwner(actor.ID)
	if err != nil {
		return nil, unavailableErr(err)
	}
	return vehicles, nil
}

func (r *VehicleRegistry) ListAll(actor ActingUser) ([]models.Vehicle, error) {
	if !actor.IsAdmin() {
		return nil, forbiddenErr("admin only")
	}
	vehicles, err := r.store.Vehicles().List()
	if err != nil {
		return nil, unavailableErr(err)
	}
	return vehicles, nil
}

// CountByBrand returns (brand, count) pairs ordered by count descending.
func (r *VehicleRegistry) CountByBrand(actor ActingUser) ([]models.LabelCount, error) {
	if !actor.IsAdmin() {
		return nil, forbiddenErr("admin only")
	}
	rows, err := r.store.Vehicles().CountPerBrand()
	if err != nil {
		return nil, unavailableErr(err)
	}
	return rows, nil
}

// CountByType returns (type, count) pairs ordered by count descending.
func (r *VehicleRegistry) CountByType(actor ActingUser) ([]models.LabelCount, error) {
	if !actor.IsAdmin() {
		return nil, forbiddenErr("admin only")
	}
	rows, err := r.store.Vehicles().CountPerType()
	if err != nil {
		return nil, unavailableErr(err)
	}
	return rows, nil
}
