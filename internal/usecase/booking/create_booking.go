package booking

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/ArielVinis/france-barbershop/internal/audit"
	"github.com/ArielVinis/france-barbershop/internal/cache"
	domain "github.com/ArielVinis/france-barbershop/internal/domain/booking"
	"github.com/ArielVinis/france-barbershop/internal/httperr"
	"github.com/ArielVinis/france-barbershop/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateBookingInput struct {
	UserID    uint
	BarberID  uint
	ServiceID uint
	DateTime  time.Time
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	repo  domain.Repository
	avail *GetAvailability
	cache *cache.SlotCache
	audit *audit.Dispatcher
}

func NewCreateBooking(
	repo domain.Repository,
	avail *GetAvailability,
	slotCache *cache.SlotCache,
	audit *audit.Dispatcher,
) *CreateBooking {
	return &CreateBooking{
		repo:  repo,
		avail: avail,
		cache: slotCache,
		audit: audit,
	}
}

// Execute revalida a disponibilidade na hora da escrita antes de
// inserir. É a defesa rápida contra o slot ter sido tomado entre a
// consulta do cliente e a confirmação; quem fecha a corrida de verdade
// é o índice único (barber_id, date) no banco.
func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*models.Booking, error) {

	start := in.DateTime.Truncate(time.Minute)

	barber, err := uc.repo.GetBarber(ctx, in.BarberID)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeNotFound)
	}

	service, err := uc.repo.GetService(ctx, in.ServiceID)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeNotFound)
	}

	// serviço e barbeiro precisam ser da mesma barbearia
	if service.BarbershopID != barber.BarbershopID {
		return nil, httperr.ErrBusiness(httperr.CodeNotFound)
	}

	// --------------------------------------------------
	// 1️⃣ Revalidação: o horário ainda está livre?
	// --------------------------------------------------
	slots, err := uc.avail.Execute(ctx, AvailabilityInput{
		BarberID:  barber.ID,
		ServiceID: service.ID,
		Date:      start,
	})
	if err != nil {
		return nil, err
	}

	requested := start.Format("15:04")

	free := false
	for _, s := range slots {
		if s == requested {
			free = true
			break
		}
	}
	if !free {
		return nil, httperr.ErrBusiness(httperr.CodeSlotUnavailable)
	}

	// --------------------------------------------------
	// 2️⃣ Criação (status inicial centralizado no domínio)
	// --------------------------------------------------
	bk := &models.Booking{
		PublicID:      uuid.NewString(),
		UserID:        in.UserID,
		BarberID:      barber.ID,
		ServiceID:     service.ID,
		Date:          start,
		Status:        string(domain.InitialStatus()),
		PaymentStatus: string(domain.PaymentPending),
	}

	if err := uc.repo.CreateBooking(ctx, bk); err != nil {
		return nil, err
	}

	uc.cache.InvalidateDay(ctx, barber.ID, start)

	// --------------------------------------------------
	// 3️⃣ Auditoria
	// --------------------------------------------------
	uc.audit.Dispatch(audit.Event{
		BarbershopID: barber.BarbershopID,
		UserID:       &in.UserID,
		Action:       audit.ActionBookingCreated,
		Entity:       "booking",
		EntityID:     &bk.ID,
	})

	return bk, nil
}
