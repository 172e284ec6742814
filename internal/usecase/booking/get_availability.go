package booking

import (
	"context"
	"time"

	"github.com/ArielVinis/france-barbershop/internal/cache"
	domain "github.com/ArielVinis/france-barbershop/internal/domain/booking"
	"github.com/ArielVinis/france-barbershop/internal/domain/schedule"
	"github.com/ArielVinis/france-barbershop/internal/httperr"
	"github.com/ArielVinis/france-barbershop/internal/models"
)

type AvailabilityInput struct {
	BarberID  uint
	ServiceID uint
	Date      time.Time
}

type GetAvailability struct {
	repo  domain.Repository
	cache *cache.SlotCache
	now   func() time.Time
}

func NewGetAvailability(repo domain.Repository, slotCache *cache.SlotCache) *GetAvailability {
	return &GetAvailability{
		repo:  repo,
		cache: slotCache,
		now:   time.Now,
	}
}

// Execute calcula os horários livres do barbeiro no dia pedido, sempre
// direto do banco: expediente resolvido → slots candidatos → pipeline
// de filtros. Somente leitura; dia fechado devolve lista vazia, não erro.
func (uc *GetAvailability) Execute(
	ctx context.Context,
	in AvailabilityInput,
) ([]string, error) {

	barber, err := uc.repo.GetBarber(ctx, in.BarberID)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeNotFound)
	}

	if _, err := uc.repo.GetService(ctx, in.ServiceID); err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeNotFound)
	}

	// --------------------------------------------------
	// 1️⃣ Expediente efetivo do dia
	// --------------------------------------------------
	weekday := schedule.DayOfWeek(in.Date)

	barberHours, err := uc.repo.ListWorkingHours(ctx, barber.ID, models.OwnerKindBarber)
	if err != nil {
		return nil, err
	}

	shopHours, err := uc.repo.ListWorkingHours(ctx, barber.BarbershopID, models.OwnerKindBarbershop)
	if err != nil {
		return nil, err
	}

	wh, open := schedule.ResolveDaySchedule(barberHours, shopHours, weekday)
	if !open {
		return []string{}, nil
	}

	// --------------------------------------------------
	// 2️⃣ Slots candidatos
	// --------------------------------------------------
	slots := schedule.GenerateSlots(wh, schedule.DefaultSlotInterval)

	// --------------------------------------------------
	// 3️⃣ Dados do dia para os filtros
	// --------------------------------------------------
	dayStart := time.Date(
		in.Date.Year(), in.Date.Month(), in.Date.Day(),
		0, 0, 0, 0,
		in.Date.Location(),
	)
	dayEnd := dayStart.AddDate(0, 0, 1)

	breaks, err := uc.repo.ListBreaks(ctx, barber.ID)
	if err != nil {
		return nil, err
	}

	blocked, err := uc.repo.ListBlockedSlots(ctx, barber.ID)
	if err != nil {
		return nil, err
	}

	bookings, err := uc.repo.ListBookings(ctx, barber.ID, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 4️⃣ Pipeline de filtros (ordem fixa)
	// --------------------------------------------------
	slots = schedule.FilterPastSlots(slots, in.Date, uc.now())
	slots = schedule.FilterByBreaks(slots, in.Date, breaks)
	slots = schedule.FilterByBlockedSlots(slots, in.Date, blocked)
	slots = schedule.FilterByBookings(slots, in.Date, bookings)

	if slots == nil {
		slots = []string{}
	}

	return slots, nil
}

// ExecuteCached atende a consulta pública de disponibilidade passando
// pelo cache. O dia de hoje não é cacheado: o filtro de horários
// passados muda o resultado a cada minuto.
func (uc *GetAvailability) ExecuteCached(
	ctx context.Context,
	in AvailabilityInput,
) ([]string, error) {

	today := schedule.SameLocalDay(in.Date, uc.now())

	if !today {
		if slots, ok := uc.cache.Get(ctx, in.BarberID, in.ServiceID, in.Date); ok {
			return slots, nil
		}
	}

	slots, err := uc.Execute(ctx, in)
	if err != nil {
		return nil, err
	}

	if !today {
		uc.cache.Set(ctx, in.BarberID, in.ServiceID, in.Date, slots)
	}

	return slots, nil
}
