package booking

import (
	"context"
	"time"

	"github.com/ArielVinis/france-barbershop/internal/models"
)

type Repository interface {
	// -------- Barber / Service --------
	GetBarber(
		ctx context.Context,
		id uint,
	) (*models.Barber, error)

	GetService(
		ctx context.Context,
		id uint,
	) (*models.Service, error)

	// -------- Agenda (leitura para disponibilidade) --------
	ListWorkingHours(
		ctx context.Context,
		ownerID uint,
		ownerKind string,
	) ([]models.WorkingHours, error)

	ListBreaks(
		ctx context.Context,
		barberID uint,
	) ([]models.Break, error)

	ListBlockedSlots(
		ctx context.Context,
		barberID uint,
	) ([]models.BlockedSlot, error)

	// Agendamentos que ainda ocupam horário no intervalo [start, end).
	ListBookings(
		ctx context.Context,
		barberID uint,
		start time.Time,
		end time.Time,
	) ([]models.Booking, error)

	// -------- Booking (escrita) --------
	CreateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	GetBooking(
		ctx context.Context,
		id uint,
	) (*models.Booking, error)

	UpdateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	// -------- Listagens / dashboard --------
	ListBookingsDetailed(
		ctx context.Context,
		barberID uint,
		start time.Time,
		end time.Time,
	) ([]models.Booking, error)

	ListShopBookings(
		ctx context.Context,
		barbershopID uint,
		start time.Time,
		end time.Time,
	) ([]models.Booking, error)

	CountActiveBarbers(
		ctx context.Context,
		barbershopID uint,
	) (int64, error)
}
