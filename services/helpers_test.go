package services

import (
	"testing"

	"garagepro-backend/models"
	"garagepro-backend/repository"
	"garagepro-backend/repository/memory"
	"garagepro-backend/utils"

	"go.uber.org/zap"
)

func testLogger() *zap.Logger {
	return zap.NewNop()
}

func seedCustomer(t *testing.T, store repository.Store, email string) models.User {
	t.Helper()
	hash, err := utils.HashPassword("password123")
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	user := models.User{
		Email:    email,
		Password: hash,
		Name:     "Test Customer",
		Role:     models.RoleCustomer,
	}
	if err := store.Users().Create(&user); err != nil {
		t.Fatalf("seed customer %s: %v", email, err)
	}
	return user
}

func seedAdmin(t *testing.T, store repository.Store) models.User {
	t.Helper()
	admin := models.User{
		Email:    "admin@garage.test",
		Password: "irrelevant",
		Name:     "Admin",
		Role:     models.RoleAdmin,
	}
	if err := store.Users().Create(&admin); err != nil {
		t.Fatalf("seed admin: %v", err)
	}
	return admin
}

func seedCatalogRefs(t *testing.T, store repository.Store) (models.VehicleBrand, models.VehicleType) {
	t.Helper()
	brand := models.VehicleBrand{Name: "Toyota"}
	if err := store.Brands().Create(&brand); err != nil {
		t.Fatalf("seed brand: %v", err)
	}
	vtype := models.VehicleType{Name: "Sedan"}
	if err := store.Types().Create(&vtype); err != nil {
		t.Fatalf("seed type: %v", err)
	}
	return brand, vtype
}

func seedVehicle(t *testing.T, store repository.Store, ownerID uint, plate string) models.Vehicle {
	t.Helper()
	brand, vtype := seedCatalogRefs(t, store)
	vehicle := models.Vehicle{
		UserID:       ownerID,
		LicensePlate: plate,
		Model:        "Corolla",
		BrandID:      brand.ID,
		TypeID:       vtype.ID,
	}
	if err := store.Vehicles().Create(&vehicle); err != nil {
		t.Fatalf("seed vehicle %s: %v", plate, err)
	}
	return vehicle
}

func seedBooking(t *testing.T, store repository.Store, vehicleID, statusID uint) models.Booking {
	t.Helper()
	booking := models.Booking{
		VehicleID: vehicleID,
		Date:      "2026-09-01",
		TimeSlot:  "09:00",
		StatusID:  statusID,
	}
	if err := store.Bookings().Create(&booking); err != nil {
		t.Fatalf("seed booking: %v", err)
	}
	return booking
}

func seedPart(t *testing.T, store repository.Store, id string, qty int, price float64) models.Part {
	t.Helper()
	part := models.Part{ID: id, Name: "part " + id, Quantity: qty, UnitPrice: price}
	if err := store.Parts().Create(&part); err != nil {
		t.Fatalf("seed part %s: %v", id, err)
	}
	return part
}

func asActor(u models.User) ActingUser {
	return ActingUser{ID: u.ID, Role: u.Role, Email: u.Email}
}

func newStore() repository.Store {
	return memory.New()
}

func wantKind(t *testing.T, err error, kind Kind) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected error of kind %d, got nil", kind)
	}
	if got := KindOf(err); got != kind {
		t.Fatalf("error kind = %d, want %d (err: %v)", got, kind, err)
	}
}
