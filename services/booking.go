package services

import (
	"errors"
	"time"

	"garagepro-backend/models"
	"garagepro-backend/repository"

	"go.uber.org/zap"
)

// BookingManager owns the booking lifecycle: creation, reads, the status
// state machine, charges, and total computation.
type BookingManager struct {
	store repository.Store
	log   *zap.Logger
}

func NewBookingManager(store repository.Store, log *zap.Logger) *BookingManager {
	return &BookingManager{store: store, log: log}
}

type CreateBookingInput struct {
	VehicleID         uint
	Date              string // YYYY-MM-DD
	TimeSlot          string
	Description       string
	TransportRequired bool
}

func (m *BookingManager) Create(input CreateBookingInput, actor ActingUser) (models.Booking, error) {
	if _, err := time.Parse("2006-01-02", input.Date); err != nil {
		return models.Booking{}, validationErr("date must be YYYY-MM-DD")
	}
	if input.TimeSlot == "" {
		return models.Booking{}, validationErr("time slot is required")
	}

	vehicle, err := m.store.Vehicles().FindByID(input.VehicleID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return models.Booking{}, notFoundErr("vehicle not found")
		}
		return models.Booking{}, unavailableErr(err)
	}
	if !actor.IsAdmin() && vehicle.UserID != actor.ID {
		return models.Booking{}, validationErr("vehicle does not belong to you")
	}

	booking := models.Booking{
		VehicleID:         vehicle.ID,
		Date:              input.Date,
		TimeSlot:          input.TimeSlot,
		Description:       input.Description,
		TransportRequired: input.TransportRequired,
		StatusID:          models.StatusAwaitingTechnician,
	}
	if err := m.store.Bookings().Create(&booking); err != nil {
		return models.Booking{}, unavailableErr(err)
	}
	m.log.Info("booking created",
		zap.Uint("booking_id", booking.ID),
		zap.Uint("vehicle_id", vehicle.ID),
		zap.Uint("user_id", actor.ID))
	return m.store.Bookings().FindByID(booking.ID)
}

func (m *BookingManager) Get(bookingID uint, actor ActingUser) (models.Booking, error) {
	booking, err := m.store.Bookings().FindByID(bookingID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return models.Booking{}, notFoundErr("booking not found")
		}
		return models.Booking{}, unavailableErr(err)
	}
	if !actor.IsAdmin() && (booking.Vehicle == nil || booking.Vehicle.UserID != actor.ID) {
		return models.Booking{}, forbiddenErr("booking belongs to another customer")
	}
	return booking, nil
}

// ListMine returns the caller's bookings, most recent first.
func (m *BookingManager) ListMine(actor ActingUser) ([]models.Booking, error) {
	bookings, err := m.store.Bookings().ListByOwner(actor.ID)
	if err != nil {
		return nil, unavailableErr(err)
	}
	return bookings, nil
}

func (m *BookingManager) ListAll(actor ActingUser) ([]models.Booking, error) {
	if !actor.IsAdmin() {
		return nil, forbiddenErr("admin only")
	}
	bookings, err := m.store.Bookings().List()
	if err != nil {
		return nil, unavailableErr(err)
	}
	return bookings, nil
}

// UpdateStatus applies a state-machine transition. A customer may only
// cancel, and only before work starts; everything else is admin-only.
// Moving into cancelled never reverses consumed stock: parts already pulled
// from the shelf stay consumed unless a line item is explicitly deleted.
func (m *BookingManager) UpdateStatus(bookingID, newStatus uint, actor ActingUser) (models.Booking, error) {
	if models.StatusName(newStatus) == "" {
		return models.Booking{}, validationErr("unknown status %d", newStatus)
	}

	booking, err := m.Get(bookingID, actor)
	if err != nil {
		return models.Booking{}, err
	}

	if !actor.IsAdmin() {
		customerCancel := newStatus == models.StatusCancelled &&
			booking.StatusID == models.StatusAwaitingTechnician
		if !customerCancel {
			return models.Booking{}, forbiddenErr("customers may only cancel a booking that is still awaiting a technician")
		}
	}
	if !models.CanTransition(booking.StatusID, newStatus) {
		return models.Booking{}, validationErr("cannot move booking from %q to %q",
			models.StatusName(booking.StatusID), models.StatusName(newStatus))
	}

	booking.StatusID = newStatus
	booking.Vehicle, booking.Status = nil, nil
	if err := m.store.Bookings().Update(&booking); err != nil {
		return models.Booking{}, unavailableErr(err)
	}
	m.log.Info("booking status changed",
		zap.Uint("booking_id", booking.ID),
		zap.String("status", models.StatusName(newStatus)),
		zap.Uint("user_id", actor.ID))
	return m.store.Bookings().FindByID(booking.ID)
}

// UpdateCharges sets the service and freight charges. Freight is stored as
// sent but only counts toward the total while transport is required.
func (m *BookingManager) UpdateCharges(bookingID uint, service, freight float64, actor ActingUser) (models.Booking, error) {
	if !actor.IsAdmin() {
		return models.Booking{}, forbiddenErr("admin only")
	}
	if service < 0 || freight < 0 {
		return models.Booking{}, validationErr("charges must not be negative")
	}

	booking, err := m.Get(bookingID, actor)
	if err != nil {
		return models.Booking{}, err
	}
	booking.ServiceCharge = service
	booking.FreightCharge = freight
	booking.Vehicle, booking.Status = nil, nil
	if err := m.store.Bookings().Update(&booking); err != nil {
		return models.Booking{}, unavailableErr(err)
	}
	return m.store.Bookings().FindByID(booking.ID)
}

// Total derives the booking total from the captured line items plus charges.
// It is recomputed on demand rather than stored.
func (m *BookingManager) Total(bookingID uint, actor ActingUser) (float64, error) {
	booking, err := m.Get(bookingID, actor)
	if err != nil {
		return 0, err
	}
	material, err := m.store.RepairItems().MaterialCost(bookingID)
	if err != nil {
		return 0, unavailableErr(err)
	}
	return booking.Total(material), nil
}
