package models

import "time"

type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	// Referência pública usada nas URLs e respostas da API
	PublicID string `gorm:"size:36;uniqueIndex" json:"public_id"`

	UserID uint `json:"user_id"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"user"`

	BarberID uint   `gorm:"index" json:"barber_id"`
	Barber   Barber `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"barber"`

	ServiceID uint    `json:"service_id"`
	Service   Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"service"`

	// Instante exato de início; a duração vem do serviço.
	// O índice único parcial (barber_id, date) criado em internal/db
	// é quem fecha a corrida de criação.
	Date time.Time `json:"date"`

	Status string `gorm:"size:20;default:'CONFIRMED'" json:"status"`

	PaymentMethod string `gorm:"size:20" json:"payment_method"`
	PaymentStatus string `gorm:"size:20;default:'PENDING'" json:"payment_status"`

	Observations string `gorm:"size:255" json:"observations"`

	CancelledAt *time.Time `json:"cancelled_at"`
	FinishedAt  *time.Time `json:"finished_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
