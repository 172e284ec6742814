package booking

import (
	"context"
	"time"

	domain "github.com/ArielVinis/france-barbershop/internal/domain/booking"
	"github.com/ArielVinis/france-barbershop/internal/dto"
)

type ListBookingsByDate struct {
	repo domain.Repository
}

func NewListBookingsByDate(repo domain.Repository) *ListBookingsByDate {
	return &ListBookingsByDate{repo: repo}
}

// Execute devolve a agenda do barbeiro no dia (meia-noite a meia-noite
// do calendário local), em ordem crescente de horário.
func (uc *ListBookingsByDate) Execute(
	ctx context.Context,
	barberID uint,
	date time.Time,
) ([]dto.BookingListDTO, error) {

	start := time.Date(
		date.Year(), date.Month(), date.Day(),
		0, 0, 0, 0,
		date.Location(),
	)
	// AddDate em vez de +24h: em dias de virada de horário de verão
	// o próximo dia não tem 24 horas
	end := start.AddDate(0, 0, 1)

	bookings, err := uc.repo.ListBookingsDetailed(ctx, barberID, start, end)
	if err != nil {
		return nil, err
	}

	out := make([]dto.BookingListDTO, 0, len(bookings))
	for _, bk := range bookings {
		out = append(out, dto.BookingListDTO{
			ID:            bk.ID,
			PublicID:      bk.PublicID,
			Date:          bk.Date,
			Status:        bk.Status,
			ClientName:    bk.User.Name,
			ServiceName:   bk.Service.Name,
			DurationMin:   bk.Service.DurationMin,
			Price:         bk.Service.Price,
			PaymentMethod: bk.PaymentMethod,
			PaymentStatus: bk.PaymentStatus,
			Observations:  bk.Observations,
		})
	}

	return out, nil
}
