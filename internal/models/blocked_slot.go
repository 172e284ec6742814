package models

import "time"

// Bloqueio pontual em data/hora absoluta (ex.: férias, consulta médica).
// Diferente de Break, não é recorrência semanal.
type BlockedSlot struct {
	ID uint `gorm:"primaryKey" json:"id"`

	BarberID uint `gorm:"index" json:"barber_id"`

	StartAt time.Time `json:"start_at"`
	EndAt   time.Time `json:"end_at"`
	Reason  string    `gorm:"size:255" json:"reason"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
