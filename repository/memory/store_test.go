package memory

import (
	"errors"
	"testing"

	"garagepro-backend/models"
	"garagepro-backend/repository"
)

func TestTransactionRollback(t *testing.T) {
	store := New()
	part := models.Part{ID: "P001", Name: "Brake pad", Quantity: 10, UnitPrice: 45}
	if err := store.Parts().Create(&part); err != nil {
		t.Fatalf("create part: %v", err)
	}

	boom := errors.New("boom")
	err := store.Transaction(func(tx repository.Store) error {
		p, err := tx.Parts().FindByIDForUpdate("P001")
		if err != nil {
			return err
		}
		p.Quantity = 0
		if err := tx.Parts().Update(&p); err != nil {
			return err
		}
		if err := tx.Parts().Create(&models.Part{ID: "P002", Name: "Oil filter"}); err != nil {
			return err
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("transaction error = %v, want boom", err)
	}

	got, err := store.Parts().FindByID("P001")
	if err != nil {
		t.Fatalf("find after rollback: %v", err)
	}
	if got.Quantity != 10 {
		t.Errorf("quantity after rollback = %d, want 10", got.Quantity)
	}
	if _, err := store.Parts().FindByID("P002"); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("P002 should not survive the rollback, err = %v", err)
	}
}

func TestTransactionCommit(t *testing.T) {
	store := New()
	if err := store.Parts().Create(&models.Part{ID: "P001", Quantity: 10}); err != nil {
		t.Fatalf("create part: %v", err)
	}

	err := store.Transaction(func(tx repository.Store) error {
		p, err := tx.Parts().FindByIDForUpdate("P001")
		if err != nil {
			return err
		}
		p.Quantity = 3
		return tx.Parts().Update(&p)
	})
	if err != nil {
		t.Fatalf("transaction: %v", err)
	}
	got, _ := store.Parts().FindByID("P001")
	if got.Quantity != 3 {
		t.Errorf("quantity after commit = %d, want 3", got.Quantity)
	}
}

func TestUniqueConstraints(t *testing.T) {
	store := New()

	u := models.User{Email: "a@b.test", Name: "A", Password: "x"}
	if err := store.Users().Create(&u); err != nil {
		t.Fatalf("create user: %v", err)
	}
	dup := models.User{Email: "a@b.test", Name: "B", Password: "x"}
	if err := store.Users().Create(&dup); !errors.Is(err, repository.ErrDuplicate) {
		t.Errorf("duplicate email err = %v, want ErrDuplicate", err)
	}

	brand := models.VehicleBrand{Name: "Toyota"}
	vtype := models.VehicleType{Name: "Sedan"}
	if err := store.Brands().Create(&brand); err != nil {
		t.Fatalf("create brand: %v", err)
	}
	if err := store.Types().Create(&vtype); err != nil {
		t.Fatalf("create type: %v", err)
	}
	v := models.Vehicle{UserID: u.ID, LicensePlate: "ABC-123", Model: "M", BrandID: brand.ID, TypeID: vtype.ID}
	if err := store.Vehicles().Create(&v); err != nil {
		t.Fatalf("create vehicle: %v", err)
	}
	dupV := models.Vehicle{UserID: u.ID, LicensePlate: "ABC-123", Model: "M", BrandID: brand.ID, TypeID: vtype.ID}
	if err := store.Vehicles().Create(&dupV); !errors.Is(err, repository.ErrDuplicate) {
		t.Errorf("duplicate plate err = %v, want ErrDuplicate", err)
	}
}
