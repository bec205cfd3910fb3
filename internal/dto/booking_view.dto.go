package dto

import "time"

// BookingView é a linha denormalizada devolvida nas listagens e no feed:
// booking + dados do serviço para exibição.
type BookingView struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	ServiceID uint      `json:"service_id"`
	Date      string    `json:"date"`
	Time      string    `json:"time"`
	CreatedAt time.Time `json:"created_at"`
	UserID    uint      `json:"user_id"`

	ServiceName string  `json:"service_name"`
	Duration    int     `json:"duration"`
	Price       float64 `json:"price"`
}
