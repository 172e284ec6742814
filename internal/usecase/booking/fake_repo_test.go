package booking

import (
	"context"
	"sync"
	"time"

	"gorm.io/gorm"

	domain "github.com/ArielVinis/france-barbershop/internal/domain/booking"
	"github.com/ArielVinis/france-barbershop/internal/httperr"
	"github.com/ArielVinis/france-barbershop/internal/models"
)

// fakeRepo implementa domain.Repository em memória, imitando o
// comportamento do repositório gorm: leituras de agenda só enxergam
// agendamentos que ocupam horário e a criação rejeita duplicata de
// (barbeiro, instante) como faria o índice único parcial.
type fakeRepo struct {
	mu sync.Mutex

	barbers      map[uint]models.Barber
	services     map[uint]models.Service
	workingHours []models.WorkingHours
	breaks       []models.Break
	blocked      []models.BlockedSlot
	bookings     []models.Booking

	nextID uint
}

var _ domain.Repository = (*fakeRepo)(nil)

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		barbers:  map[uint]models.Barber{},
		services: map[uint]models.Service{},
	}
}

func blockingStatus(status string) bool {
	switch status {
	case "CONFIRMED", "IN_PROGRESS", "FINISHED":
		return true
	}
	return false
}

func (r *fakeRepo) GetBarber(_ context.Context, id uint) (*models.Barber, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.barbers[id]
	if !ok || !b.Active {
		return nil, gorm.ErrRecordNotFound
	}
	return &b, nil
}

func (r *fakeRepo) GetService(_ context.Context, id uint) (*models.Service, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.services[id]
	if !ok || !s.Active {
		return nil, gorm.ErrRecordNotFound
	}
	return &s, nil
}

func (r *fakeRepo) ListWorkingHours(_ context.Context, ownerID uint, ownerKind string) ([]models.WorkingHours, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []models.WorkingHours
	for _, wh := range r.workingHours {
		if wh.OwnerID == ownerID && wh.OwnerKind == ownerKind {
			out = append(out, wh)
		}
	}
	return out, nil
}

func (r *fakeRepo) ListBreaks(_ context.Context, barberID uint) ([]models.Break, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []models.Break
	for _, b := range r.breaks {
		if b.BarberID == barberID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *fakeRepo) ListBlockedSlots(_ context.Context, barberID uint) ([]models.BlockedSlot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []models.BlockedSlot
	for _, b := range r.blocked {
		if b.BarberID == barberID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *fakeRepo) ListBookings(_ context.Context, barberID uint, start, end time.Time) ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []models.Booking
	for _, bk := range r.bookings {
		if bk.BarberID != barberID || !blockingStatus(bk.Status) {
			continue
		}
		if bk.Date.Before(start) || !bk.Date.Before(end) {
			continue
		}
		out = append(out, bk)
	}
	return out, nil
}

func (r *fakeRepo) CreateBooking(_ context.Context, b *models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.bookings {
		if existing.BarberID == b.BarberID &&
			existing.Date.Equal(b.Date) &&
			blockingStatus(existing.Status) {
			return httperr.ErrBusiness(httperr.CodeSlotUnavailable)
		}
	}

	r.nextID++
	b.ID = r.nextID
	r.bookings = append(r.bookings, *b)
	return nil
}

func (r *fakeRepo) GetBooking(_ context.Context, id uint) (*models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, bk := range r.bookings {
		if bk.ID == id {
			out := bk
			return &out, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeRepo) UpdateBooking(_ context.Context, b *models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, bk := range r.bookings {
		if bk.ID == b.ID {
			r.bookings[i] = *b
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *fakeRepo) ListBookingsDetailed(_ context.Context, barberID uint, start, end time.Time) ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []models.Booking
	for _, bk := range r.bookings {
		if bk.BarberID != barberID {
			continue
		}
		if bk.Date.Before(start) || !bk.Date.Before(end) {
			continue
		}
		bk.Service = r.services[bk.ServiceID]
		out = append(out, bk)
	}
	return out, nil
}

func (r *fakeRepo) ListShopBookings(_ context.Context, barbershopID uint, start, end time.Time) ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []models.Booking
	for _, bk := range r.bookings {
		svc, ok := r.services[bk.ServiceID]
		if !ok || svc.BarbershopID != barbershopID {
			continue
		}
		if bk.Date.Before(start) || !bk.Date.Before(end) {
			continue
		}
		bk.Service = svc
		out = append(out, bk)
	}
	return out, nil
}

func (r *fakeRepo) CountActiveBarbers(_ context.Context, barbershopID uint) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var n int64
	for _, b := range r.barbers {
		if b.BarbershopID == barbershopID && b.Active {
			n++
		}
	}
	return n, nil
}

// ======================================================
// Cenário padrão dos testes
// ======================================================
//
// Barbearia 1 com barbeiro 1 e serviço 1 (R$ 50, 30min).
// Expediente da casa na terça-feira: 09:00–12:00.

func seedShop(r *fakeRepo) {
	r.barbers[1] = models.Barber{ID: 1, BarbershopID: 1, UserID: 100, Active: true}
	r.services[1] = models.Service{
		ID:           1,
		BarbershopID: 1,
		Name:         "Corte",
		Price:        50,
		DurationMin:  30,
		Active:       true,
	}
	r.workingHours = append(r.workingHours, models.WorkingHours{
		OwnerID:   1,
		OwnerKind: models.OwnerKindBarbershop,
		Weekday:   2,
		StartTime: "09:00",
		EndTime:   "12:00",
		Active:    true,
	})
}

// terça-feira
var testDay = time.Date(2026, 3, 10, 0, 0, 0, 0, time.Local)

// véspera do dia de teste: o filtro de passado nunca interfere
func fixedNow() time.Time {
	return time.Date(2026, 3, 9, 12, 0, 0, 0, time.Local)
}
