package services

import (
	"testing"

	"garagepro-backend/models"
)

func TestCatalogPartCodes(t *testing.T) {
	store := newStore()
	owner := seedCustomer(t, store, "owner@garage.test")
	admin := seedAdmin(t, store)
	svc := NewCatalogService(store, testLogger())

	if _, err := svc.CreatePart(CreatePartInput{Name: "Brake pad"}, asActor(owner)); KindOf(err) != KindForbidden {
		t.Fatalf("customer create: kind = %d, want forbidden", KindOf(err))
	}

	first, err := svc.CreatePart(CreatePartInput{Name: "Brake pad", Quantity: 20, UnitPrice: 45}, asActor(admin))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if first.ID != "P001" {
		t.Errorf("first code = %q, want P001", first.ID)
	}
	second, err := svc.CreatePart(CreatePartInput{Name: "Oil filter", Quantity: 50, UnitPrice: 12}, asActor(admin))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if second.ID != "P002" {
		t.Errorf("second code = %q, want P002", second.ID)
	}

	// Codes continue after the highest existing one, not after the count.
	if err := svc.DeletePart("P001", asActor(admin)); err != nil {
		t.Fatalf("delete: %v", err)
	}
	third, err := svc.CreatePart(CreatePartInput{Name: "Air filter", Quantity: 5, UnitPrice: 18}, asActor(admin))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if third.ID != "P003" {
		t.Errorf("code after gap = %q, want P003", third.ID)
	}
}

func TestCatalogPartValidation(t *testing.T) {
	store := newStore()
	admin := seedAdmin(t, store)
	svc := NewCatalogService(store, testLogger())

	if _, err := svc.CreatePart(CreatePartInput{Name: ""}, asActor(admin)); KindOf(err) != KindValidation {
		t.Errorf("empty name: kind = %d, want validation", KindOf(err))
	}
	if _, err := svc.CreatePart(CreatePartInput{Name: "x", Quantity: -1}, asActor(admin)); KindOf(err) != KindValidation {
		t.Errorf("negative quantity: kind = %d, want validation", KindOf(err))
	}
	if _, err := svc.CreatePart(CreatePartInput{Name: "x", UnitPrice: -1}, asActor(admin)); KindOf(err) != KindValidation {
		t.Errorf("negative price: kind = %d, want validation", KindOf(err))
	}
}

func TestCatalogPartDeleteReferenced(t *testing.T) {
	store := newStore()
	owner := seedCustomer(t, store, "owner@garage.test")
	admin := seedAdmin(t, store)
	vehicle := seedVehicle(t, store, owner.ID, "ABC-123")
	booking := seedBooking(t, store, vehicle.ID, models.StatusInRepair)
	seedPart(t, store, "P001", 10, 50)

	ledger := NewRepairLedger(store, testLogger())
	if err := ledger.AddItem(booking.ID, "P001", 1, 50); err != nil {
		t.Fatalf("add item: %v", err)
	}

	svc := NewCatalogService(store, testLogger())
	err := svc.DeletePart("P001", asActor(admin))
	wantKind(t, err, KindConflict)

	// Once the reference is gone the delete goes through.
	if err := ledger.DeleteItem(booking.ID, "P001"); err != nil {
		t.Fatalf("delete item: %v", err)
	}
	if err := svc.DeletePart("P001", asActor(admin)); err != nil {
		t.Fatalf("delete part: %v", err)
	}
}

func TestCatalogBrandAndTypeDeleteReferenced(t *testing.T) {
	store := newStore()
	owner := seedCustomer(t, store, "owner@garage.test")
	admin := seedAdmin(t, store)
	vehicle := seedVehicle(t, store, owner.ID, "ABC-123")
	svc := NewCatalogService(store, testLogger())

	wantKind(t, svc.DeleteBrand(vehicle.BrandID, asActor(admin)), KindConflict)
	wantKind(t, svc.DeleteType(vehicle.TypeID, asActor(admin)), KindConflict)

	unused, err := svc.CreateBrand("Suzuki", asActor(admin))
	if err != nil {
		t.Fatalf("create brand: %v", err)
	}
	if err := svc.DeleteBrand(unused.ID, asActor(admin)); err != nil {
		t.Fatalf("delete unused brand: %v", err)
	}
}
