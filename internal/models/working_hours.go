package models

import "time"

// Dono do registro de expediente: a barbearia (padrão da casa)
// ou um barbeiro específico (agenda própria).
const (
	OwnerKindBarbershop = "barbershop"
	OwnerKindBarber     = "barber"
)

// WorkingHours guarda o expediente de um dia da semana (0 = domingo).
// Horários no formato "HH:MM"; Active=false significa fechado no dia.
type WorkingHours struct {
	ID uint `gorm:"primaryKey" json:"id"`

	OwnerID   uint   `gorm:"uniqueIndex:idx_working_hours_owner_day" json:"owner_id"`
	OwnerKind string `gorm:"size:20;uniqueIndex:idx_working_hours_owner_day" json:"owner_kind"`
	Weekday   int    `gorm:"uniqueIndex:idx_working_hours_owner_day" json:"weekday"`

	StartTime string `gorm:"size:5" json:"start_time"`
	EndTime   string `gorm:"size:5" json:"end_time"`
	Active    bool   `json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
