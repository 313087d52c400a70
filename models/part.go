package models

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Part is a catalog entry. The primary key is the human-facing code
// ("P001", "P002", ...) assigned sequentially at creation time.
type Part struct {
	ID        string  `gorm:"primaryKey;type:varchar(16)" json:"part_id"`
	Name      string  `gorm:"not null" json:"partname"`
	Marque    string  `json:"marque"`
	Quantity  int     `gorm:"not null;default:0" json:"quantity"`
	UnitPrice float64 `gorm:"type:decimal(10,2);not null" json:"unit_price"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NextPartID derives the successor of the highest existing part code.
// An empty catalog counts as "P000", so the first assigned code is "P001".
// Past P999 the sequence widens naturally: P1000, P1001, ...
func NextPartID(highest string) string {
	n := 0
	if digits := strings.TrimPrefix(highest, "P"); digits != "" {
		if v, err := strconv.Atoi(digits); err == nil {
			n = v
		}
	}
	return fmt.Sprintf("P%03d", n+1)
}
