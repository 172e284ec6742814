package booking

import (
	"context"
	"time"

	"github.com/ArielVinis/france-barbershop/internal/audit"
	domain "github.com/ArielVinis/france-barbershop/internal/domain/booking"
	"github.com/ArielVinis/france-barbershop/internal/httperr"
	"github.com/ArielVinis/france-barbershop/internal/models"
)

type TransitionBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	now   func() time.Time
}

func NewTransitionBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *TransitionBooking {
	return &TransitionBooking{
		repo:  repo,
		audit: audit,
		now:   time.Now,
	}
}

// Execute aplica uma mudança de status disparada pelo barbeiro ou pelo
// dono. Nenhuma transição é automática — sempre há um ator.
func (uc *TransitionBooking) Execute(
	ctx context.Context,
	bookingID uint,
	target domain.Status,
	actor domain.Actor,
	opts domain.TransitionOptions,
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

	if err := domain.Transition(bk, target, uc.now(), opts); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateBooking(ctx, bk); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		BarbershopID: service.BarbershopID,
		UserID:       &actor.UserID,
		Action:       audit.ActionBookingStatusChanged,
		Entity:       "booking",
		EntityID:     &bk.ID,
		Metadata:     map[string]string{"status": string(target)},
	})

	return bk, nil
}
