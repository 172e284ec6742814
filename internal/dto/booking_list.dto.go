package dto

import "time"

type BookingListDTO struct {
	ID            uint      `json:"id"`
	PublicID      string    `json:"public_id"`
	Date          time.Time `json:"date"`
	Status        string    `json:"status"`
	ClientName    string    `json:"client_name"`
	ServiceName   string    `json:"service_name"`
	DurationMin   int       `json:"duration_min"`
	Price         float64   `json:"price"`
	PaymentMethod string    `json:"payment_method"`
	PaymentStatus string    `json:"payment_status"`
	Observations  string    `json:"observations"`
}
