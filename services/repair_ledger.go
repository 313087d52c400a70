package services

import (
	"errors"

	"garagepro-backend/models"
	"garagepro-backend/repository"

	"go.uber.org/zap"
)

// RepairLedger attaches parts to bookings and is the only writer of part
// stock besides direct admin catalog edits. Every mutation pairs a ledger
// write with the matching stock move inside one transaction, keeping
// Part.Quantity >= 0 at all times.
type RepairLedger struct {
	store repository.Store
	log   *zap.Logger
}

func NewRepairLedger(store repository.Store, log *zap.Logger) *RepairLedger {
	return &RepairLedger{store: store, log: log}
}

// AddItem consumes qty units of a part for a booking. Re-adding the same
// part increments the existing line and keeps the unit price captured by
// the first insertion.
func (l *RepairLedger) AddItem(bookingID uint, partID string, qty int, unitPrice float64) error {
	if qty <= 0 {
		return validationErr("quantity must be positive")
	}
	if unitPrice < 0 {
		return validationErr("unit price must not be negative")
	}
	if _, err := l.store.Bookings().FindByID(bookingID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFoundErr("booking not found")
		}
		return unavailableErr(err)
	}

	err := l.store.Transaction(func(tx repository.Store) error {
		part, err := tx.Parts().FindByIDForUpdate(partID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return notFoundErr("part %s not found", partID)
			}
			return unavailableErr(err)
		}
		if part.Quantity < qty {
			return insufficientStockErr("part %s has %d in stock, %d requested",
				partID, part.Quantity, qty)
		}

		item, err := tx.RepairItems().Find(bookingID, partID)
		switch {
		case err == nil:
			item.Quantity += qty
			if err := tx.RepairItems().Update(&item); err != nil {
				return unavailableErr(err)
			}
		case errors.Is(err, repository.ErrNotFound):
			item = models.RepairItem{
				BookingID: bookingID,
				PartID:    partID,
				Quantity:  qty,
				UnitPrice: unitPrice,
			}
			if err := tx.RepairItems().Create(&item); err != nil {
				return unavailableErr(err)
			}
		default:
			return unavailableErr(err)
		}

		part.Quantity -= qty
		if err := tx.Parts().Update(&part); err != nil {
			return unavailableErr(err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	l.log.Info("repair item added",
		zap.Uint("booking_id", bookingID),
		zap.String("part_id", partID),
		zap.Int("quantity", qty))
	return nil
}

// DeleteItem removes a line item and returns its full quantity to stock.
func (l *RepairLedger) DeleteItem(bookingID uint, partID string) error {
	err := l.store.Transaction(func(tx repository.Store) error {
		item, err := tx.RepairItems().Find(bookingID, partID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return notFoundErr("no such line item")
			}
			return unavailableErr(err)
		}
		if err := tx.RepairItems().Delete(bookingID, partID); err != nil {
			return unavailableErr(err)
		}

		part, err := tx.Parts().FindByIDForUpdate(partID)
		if err != nil {
			return unavailableErr(err)
		}
		part.Quantity += item.Quantity
		if err := tx.Parts().Update(&part); err != nil {
			return unavailableErr(err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	l.log.Info("repair item removed",
		zap.Uint("booking_id", bookingID),
		zap.String("part_id", partID))
	return nil
}

func (l *RepairLedger) ListByBooking(bookingID uint) ([]models.RepairItemLine, error) {
	lines, err := l.store.RepairItems().ListByBooking(bookingID)
	if err != nil {
		return nil, unavailableErr(err)
	}
	return lines, nil
}
