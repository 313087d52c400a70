package services

import (
	"math/rand"
	"testing"

	"garagepro-backend/models"
)

func TestRepairLedgerAddAndDelete(t *testing.T) {
	store := newStore()
	owner := seedCustomer(t, store, "owner@garage.test")
	vehicle := seedVehicle(t, store, owner.ID, "ABC-123")
	booking := seedBooking(t, store, vehicle.ID, models.StatusInRepair)
	seedPart(t, store, "P001", 10, 50)
	ledger := NewRepairLedger(store, testLogger())

	if err := ledger.AddItem(booking.ID, "P001", 3, 50); err != nil {
		t.Fatalf("add item: %v", err)
	}

	part, err := store.Parts().FindByID("P001")
	if err != nil {
		t.Fatalf("find part: %v", err)
	}
	if part.Quantity != 7 {
		t.Errorf("stock after add = %d, want 7", part.Quantity)
	}
	item, err := store.RepairItems().Find(booking.ID, "P001")
	if err != nil {
		t.Fatalf("find item: %v", err)
	}
	if item.Quantity != 3 || item.UnitPrice != 50 {
		t.Errorf("line = (%d @ %v), want (3 @ 50)", item.Quantity, item.UnitPrice)
	}

	if err := ledger.DeleteItem(booking.ID, "P001"); err != nil {
		t.Fatalf("delete item: %v", err)
	}
	part, _ = store.Parts().FindByID("P001")
	if part.Quantity != 10 {
		t.Errorf("stock after delete = %d, want 10", part.Quantity)
	}
	if _, err := store.RepairItems().Find(booking.ID, "P001"); err == nil {
		t.Error("line item still present after delete")
	}
}

// Re-adding the same part grows the line and keeps the first unit price.
func TestRepairLedgerUpsertKeepsFirstPrice(t *testing.T) {
	store := newStore()
	owner := seedCustomer(t, store, "owner@garage.test")
	vehicle := seedVehicle(t, store, owner.ID, "ABC-123")
	booking := seedBooking(t, store, vehicle.ID, models.StatusInRepair)
	seedPart(t, store, "P001", 10, 50)
	ledger := NewRepairLedger(store, testLogger())

	if err := ledger.AddItem(booking.ID, "P001", 2, 50); err != nil {
		t.Fatalf("first add: %v", err)
	}
	if err := ledger.AddItem(booking.ID, "P001", 3, 80); err != nil {
		t.Fatalf("second add: %v", err)
	}

	item, err := store.RepairItems().Find(booking.ID, "P001")
	if err != nil {
		t.Fatalf("find item: %v", err)
	}
	if item.Quantity != 5 {
		t.Errorf("quantity = %d, want 5", item.Quantity)
	}
	if item.UnitPrice != 50 {
		t.Errorf("unit price = %v, want the first captured 50", item.UnitPrice)
	}
	part, _ := store.Parts().FindByID("P001")
	if part.Quantity != 5 {
		t.Errorf("stock = %d, want 5", part.Quantity)
	}
}

func TestRepairLedgerInsufficientStock(t *testing.T) {
	store := newStore()
	owner := seedCustomer(t, store, "owner@garage.test")
	vehicle := seedVehicle(t, store, owner.ID, "ABC-123")
	booking := seedBooking(t, store, vehicle.ID, models.StatusInRepair)
	seedPart(t, store, "P001", 2, 50)
	ledger := NewRepairLedger(store, testLogger())

	err := ledger.AddItem(booking.ID, "P001", 3, 50)
	wantKind(t, err, KindInsufficientStock)

	// The failed add must leave both the stock and the ledger untouched.
	part, _ := store.Parts().FindByID("P001")
	if part.Quantity != 2 {
		t.Errorf("stock after refusal = %d, want 2", part.Quantity)
	}
	if _, err := store.RepairItems().Find(booking.ID, "P001"); err == nil {
		t.Error("line item created despite refusal")
	}
}

func TestRepairLedgerValidation(t *testing.T) {
	store := newStore()
	owner := seedCustomer(t, store, "owner@garage.test")
	vehicle := seedVehicle(t, store, owner.ID, "ABC-123")
	booking := seedBooking(t, store, vehicle.ID, models.StatusInRepair)
	seedPart(t, store, "P001", 10, 50)
	ledger := NewRepairLedger(store, testLogger())

	wantKind(t, ledger.AddItem(booking.ID, "P001", 0, 50), KindValidation)
	wantKind(t, ledger.AddItem(booking.ID, "P001", -1, 50), KindValidation)
	wantKind(t, ledger.AddItem(booking.ID, "P001", 1, -5), KindValidation)
	wantKind(t, ledger.AddItem(9999, "P001", 1, 50), KindNotFound)
	wantKind(t, ledger.AddItem(booking.ID, "P404", 1, 50), KindNotFound)
	wantKind(t, ledger.DeleteItem(booking.ID, "P001"), KindNotFound)
}

// Stock conservation: across any interleaving of adds and deletes, shelf
// stock plus ledgered quantity always equals the opening stock, and the
// shelf never goes negative.
func TestRepairLedgerConservation(t *testing.T) {
	const opening = 40

	store := newStore()
	owner := seedCustomer(t, store, "owner@garage.test")
	vehicle := seedVehicle(t, store, owner.ID, "ABC-123")
	booking := seedBooking(t, store, vehicle.ID, models.StatusInRepair)
	seedPart(t, store, "P001", opening, 25)
	ledger := NewRepairLedger(store, testLogger())

	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 200; i++ {
		if rng.Intn(3) == 0 {
			ledger.DeleteItem(booking.ID, "P001")
		} else {
			ledger.AddItem(booking.ID, "P001", 1+rng.Intn(10), 25)
		}

		part, err := store.Parts().FindByID("P001")
		if err != nil {
			t.Fatalf("find part: %v", err)
		}
		if part.Quantity < 0 {
			t.Fatalf("step %d: stock went negative (%d)", i, part.Quantity)
		}
		ledgered := 0
		if item, err := store.RepairItems().Find(booking.ID, "P001"); err == nil {
			ledgered = item.Quantity
		}
		if part.Quantity+ledgered != opening {
			t.Fatalf("step %d: stock %d + ledgered %d != opening %d",
				i, part.Quantity, ledgered, opening)
		}
	}
}

func TestRepairLedgerListByBooking(t *testing.T) {
	store := newStore()
	owner := seedCustomer(t, store, "owner@garage.test")
	vehicle := seedVehicle(t, store, owner.ID, "ABC-123")
	booking := seedBooking(t, store, vehicle.ID, models.StatusInRepair)
	seedPart(t, store, "P001", 10, 50)
	seedPart(t, store, "P002", 10, 30)
	ledger := NewRepairLedger(store, testLogger())

	if err := ledger.AddItem(booking.ID, "P001", 2, 50); err != nil {
		t.Fatalf("add P001: %v", err)
	}
	if err := ledger.AddItem(booking.ID, "P002", 1, 30); err != nil {
		t.Fatalf("add P002: %v", err)
	}

	lines, err := ledger.ListByBooking(booking.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	var total float64
	for _, line := range lines {
		if line.Subtotal != float64(line.Quantity)*line.UnitPrice {
			t.Errorf("line %s subtotal = %v, want %v", line.PartID,
				line.Subtotal, float64(line.Quantity)*line.UnitPrice)
		}
		total += line.Subtotal
	}
	if total != 130 {
		t.Errorf("material total = %v, want 130", total)
	}
}
