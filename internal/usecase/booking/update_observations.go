package booking

import (
	"context"
	"strings"

	domain "github.com/ArielVinis/france-barbershop/internal/domain/booking"
	"github.com/ArielVinis/france-barbershop/internal/httperr"
	"github.com/ArielVinis/france-barbershop/internal/models"
)

type UpdateObservations struct {
	repo domain.Repository
}

func NewUpdateObservations(repo domain.Repository) *UpdateObservations {
	return &UpdateObservations{repo: repo}
}

// Execute atualiza a anotação livre do atendimento (ex.: "degradê na
// tesoura, cliente alérgico a talco").
func (uc *UpdateObservations) Execute(
	ctx context.Context,
	bookingID uint,
	actor domain.Actor,
	observations string,
) (*models.Booking, error) {

	bk, err := uc.repo.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeNotFound)
	}

	service, err := uc.repo.GetService(ctx, bk.ServiceID)
	if err != nil {
		return nil, err
	}

	if err := domain.Authorize(actor, bk.BarberID, service.BarbershopID); err != nil {
		return nil, err
	}

	bk.Observations = strings.TrimSpace(observations)

	if err := uc.repo.UpdateBooking(ctx, bk); err != nil {
		return nil, err
	}

	return bk, nil
}
