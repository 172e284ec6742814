package dto

import "github.com/ArielVinis/france-barbershop/internal/models"

// BarberScheduleDTO é a visão do dono sobre a agenda de um barbeiro:
// expediente em vigor, pausas semanais e bloqueios pontuais.
type BarberScheduleDTO struct {
	BarberID uint `json:"barber_id"`

	// true quando o barbeiro não tem agenda própria e herda o
	// expediente da barbearia
	UsingShopHours bool `json:"using_shop_hours"`

	WorkingHours []models.WorkingHours `json:"working_hours"`
	Breaks       []models.Break        `json:"breaks"`
	BlockedSlots []models.BlockedSlot  `json:"blocked_slots"`
}
