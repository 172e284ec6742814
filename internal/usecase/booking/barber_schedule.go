package booking

import (
	"context"

	domain "github.com/ArielVinis/france-barbershop/internal/domain/booking"
	"github.com/ArielVinis/france-barbershop/internal/dto"
	"github.com/ArielVinis/france-barbershop/internal/httperr"
	"github.com/ArielVinis/france-barbershop/internal/models"
)

type GetBarberSchedule struct {
	repo domain.Repository
}

func NewGetBarberSchedule(repo domain.Repository) *GetBarberSchedule {
	return &GetBarberSchedule{repo: repo}
}

// Execute monta a visão do dono sobre a agenda de um barbeiro da sua
// barbearia. Sem agenda própria, vale o expediente da casa por inteiro,
// nunca uma mistura dia a dia.
func (uc *GetBarberSchedule) Execute(
	ctx context.Context,
	barberID uint,
	actor domain.Actor,
) (*dto.BarberScheduleDTO, error) {

	barber, err := uc.repo.GetBarber(ctx, barberID)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeNotFound)
	}

	if err := domain.Authorize(actor, barber.ID, barber.BarbershopID); err != nil {
		return nil, err
	}

	hours, err := uc.repo.ListWorkingHours(ctx, barber.ID, models.OwnerKindBarber)
	if err != nil {
		return nil, err
	}

	usingShop := len(hours) == 0
	if usingShop {
		hours, err = uc.repo.ListWorkingHours(ctx, barber.BarbershopID, models.OwnerKindBarbershop)
		if err != nil {
			return nil, err
		}
	}

	breaks, err := uc.repo.ListBreaks(ctx, barber.ID)
	if err != nil {
		return nil, err
	}

	blocked, err := uc.repo.ListBlockedSlots(ctx, barber.ID)
	if err != nil {
		return nil, err
	}

	return &dto.BarberScheduleDTO{
		BarberID:       barber.ID,
		UsingShopHours: usingShop,
		WorkingHours:   hours,
		Breaks:         breaks,
		BlockedSlots:   blocked,
	}, nil
}
