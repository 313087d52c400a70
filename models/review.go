package models

import "time"

// Review is written once per completed booking and never edited.
type Review struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	BookingID uint `gorm:"uniqueIndex;not null" json:"booking_id"`
	UserID    uint `gorm:"index;not null" json:"user_id"`

	Rating  int    `gorm:"not null" json:"rating"` // 1..5
	Comment string `json:"comment"`

	Reviewer *User `gorm:"foreignKey:UserID" json:"reviewer,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}
