package models

import "time"

// Booking ocupa um slot (service, date, time); o índice único composto é a
// garantia final contra duas reservas no mesmo slot.
type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name  string `gorm:"size:100;not null" json:"name"`
	Phone string `gorm:"size:20" json:"phone"`

	ServiceID uint    `gorm:"not null;uniqueIndex:idx_bookings_slot,priority:1" json:"service_id"`
	Service   Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	Date string `gorm:"size:10;not null;uniqueIndex:idx_bookings_slot,priority:2" json:"date"`
	Time string `gorm:"size:8;not null;uniqueIndex:idx_bookings_slot,priority:3" json:"time"`

	UserID uint `gorm:"index" json:"user_id"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	CreatedAt time.Time `json:"created_at"`
}
