package models

import "time"

type Booking struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	VehicleID uint `gorm:"index;not null" json:"vehicle_id"`

	Date        string `gorm:"type:varchar(10);not null" json:"date"` // YYYY-MM-DD
	TimeSlot    string `gorm:"not null" json:"time"`
	Description string `json:"description"`

	TransportRequired bool    `gorm:"not null;default:false" json:"transport_required"`
	ServiceCharge     float64 `gorm:"type:decimal(10,2);default:0.0" json:"service"`
	FreightCharge     float64 `gorm:"type:decimal(10,2);default:0.0" json:"freight"`

	StatusID uint `gorm:"index;not null" json:"status_id"`

	Vehicle *Vehicle `gorm:"foreignKey:VehicleID" json:"vehicle,omitempty"`
	Status  *Status  `gorm:"foreignKey:StatusID" json:"status,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Total combines captured material cost with the booking's charges. Freight
// only counts when the shop collects/delivers the vehicle; it stays stored
// either way so flipping the flag back does not lose the figure.
func (b *Booking) Total(materialCost float64) float64 {
	total := materialCost + b.ServiceCharge
	if b.TransportRequired {
		total += b.FreightCharge
	}
	return total
}

// RepairItem is one part attached to one booking. The unit price is captured
// at first insertion so historical invoices survive catalog price changes.
type RepairItem struct {
	BookingID uint   `gorm:"primaryKey" json:"booking_id"`
	PartID    string `gorm:"primaryKey;type:varchar(16)" json:"part_id"`

	Quantity  int     `gorm:"not null" json:"quantity"`
	UnitPrice float64 `gorm:"type:decimal(10,2);not null" json:"unit_price"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// RepairItemLine is a ledger row joined with its part for display.
type RepairItemLine struct {
	PartID    string  `json:"part_id"`
	PartName  string  `json:"partname"`
	Marque    string  `json:"marque"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
	Subtotal  float64 `json:"subtotal"`
}
