package services

import (
	"testing"

	"garagepro-backend/models"
)

func TestCustomerRegister(t *testing.T) {
	store := newStore()
	svc := NewCustomerService(store, testLogger())

	user, err := svc.Register(RegisterInput{
		Email:    "  Jane@Garage.Test ",
		Password: "password123",
		Name:     "Jane",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if user.Email != "jane@garage.test" {
		t.Errorf("email = %q, want lowercased trimmed", user.Email)
	}
	if user.Role != models.RoleCustomer {
		t.Errorf("role = %q, want customer", user.Role)
	}
	if user.Password == "password123" {
		t.Error("password stored in the clear")
	}

	_, err = svc.Register(RegisterInput{Email: "jane@garage.test", Password: "password123", Name: "Jane"})
	wantKind(t, err, KindConflict)

	_, err = svc.Register(RegisterInput{Email: "short@garage.test", Password: "short", Name: "S"})
	wantKind(t, err, KindValidation)
}

func TestCustomerAuthenticate(t *testing.T) {
	store := newStore()
	customer := seedCustomer(t, store, "jane@garage.test")
	admin := seedAdmin(t, store)
	svc := NewCustomerService(store, testLogger())

	if _, err := svc.Authenticate("jane@garage.test", "password123"); err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if _, err := svc.Authenticate("jane@garage.test", "wrong-password"); KindOf(err) != KindValidation {
		t.Errorf("wrong password: kind = %d, want validation", KindOf(err))
	}
	if _, err := svc.Authenticate("nobody@garage.test", "password123"); KindOf(err) != KindValidation {
		t.Errorf("unknown email: kind = %d, want validation", KindOf(err))
	}

	if _, err := svc.Ban(customer.ID, "spam bookings", asActor(admin)); err != nil {
		t.Fatalf("ban: %v", err)
	}
	_, err := svc.Authenticate("jane@garage.test", "password123")
	wantKind(t, err, KindForbidden)

	if _, err := svc.Unban(customer.ID, asActor(admin)); err != nil {
		t.Fatalf("unban: %v", err)
	}
	if _, err := svc.Authenticate("jane@garage.test", "password123"); err != nil {
		t.Errorf("authenticate after unban: %v", err)
	}
}

func TestCustomerBanRules(t *testing.T) {
	store := newStore()
	customer := seedCustomer(t, store, "jane@garage.test")
	admin := seedAdmin(t, store)
	svc := NewCustomerService(store, testLogger())

	if _, err := svc.Ban(admin.ID, "nope", asActor(admin)); KindOf(err) != KindValidation {
		t.Errorf("banning an admin: kind = %d, want validation", KindOf(err))
	}
	if _, err := svc.Ban(customer.ID, "x", asActor(customer)); KindOf(err) != KindForbidden {
		t.Errorf("customer banning: kind = %d, want forbidden", KindOf(err))
	}
}

func TestCustomerChangePassword(t *testing.T) {
	store := newStore()
	customer := seedCustomer(t, store, "jane@garage.test")
	other := seedCustomer(t, store, "other@garage.test")
	svc := NewCustomerService(store, testLogger())

	if err := svc.ChangePassword(customer.ID, "password123", "new-password-1", asActor(other)); KindOf(err) != KindForbidden {
		t.Errorf("someone else's password: kind = %d, want forbidden", KindOf(err))
	}
	if err := svc.ChangePassword(customer.ID, "wrong", "new-password-1", asActor(customer)); KindOf(err) != KindValidation {
		t.Errorf("wrong current password: kind = %d, want validation", KindOf(err))
	}
	if err := svc.ChangePassword(customer.ID, "password123", "new-password-1", asActor(customer)); err != nil {
		t.Fatalf("change password: %v", err)
	}
	if _, err := svc.Authenticate("jane@garage.test", "new-password-1"); err != nil {
		t.Errorf("authenticate with new password: %v", err)
	}
}

func TestCustomerDelete(t *testing.T) {
	store := newStore()
	customer := seedCustomer(t, store, "jane@garage.test")
	admin := seedAdmin(t, store)
	seedVehicle(t, store, customer.ID, "ABC-123")
	svc := NewCustomerService(store, testLogger())

	err := svc.Delete(customer.ID, asActor(admin))
	wantKind(t, err, KindConflict)

	empty := seedCustomer(t, store, "empty@garage.test")
	if err := svc.Delete(empty.ID, asActor(admin)); err != nil {
		t.Fatalf("delete customer without vehicles: %v", err)
	}
}
