package booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ArielVinis/france-barbershop/internal/models"
)

func addPaidBooking(repo *fakeRepo, serviceID uint, date time.Time) {
	repo.nextID++
	repo.bookings = append(repo.bookings, models.Booking{
		ID:            repo.nextID,
		BarberID:      1,
		ServiceID:     serviceID,
		Date:          date,
		Status:        "FINISHED",
		PaymentStatus: "PAID",
	})
}

func TestOwnerStatsRevenueCountsOnlyPaid(t *testing.T) {
	repo := newFakeRepo()
	seedShop(repo)

	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.Local)

	addPaidBooking(repo, 1, day.Add(9*time.Hour))
	addPaidBooking(repo, 1, day.Add(10*time.Hour))

	// confirmado mas ainda não pago: conta no volume, não na receita
	repo.nextID++
	repo.bookings = append(repo.bookings, models.Booking{
		ID: repo.nextID, BarberID: 1, ServiceID: 1,
		Date:          day.Add(11 * time.Hour),
		Status:        "CONFIRMED",
		PaymentStatus: "PENDING",
	})

	uc := NewOwnerStats(repo)

	stats, err := uc.Execute(context.Background(), 1, PeriodDay, day)

	require.NoError(t, err)
	assert.Equal(t, 100.0, stats.Revenue)
	assert.Equal(t, 3, stats.BookingsCount)
	assert.Equal(t, int64(1), stats.ActiveBarbersCount)
}

func TestOwnerStatsTopServicesOrdering(t *testing.T) {
	repo := newFakeRepo()
	seedShop(repo)
	repo.services[2] = models.Service{
		ID: 2, BarbershopID: 1, Name: "Barba", Price: 30, DurationMin: 30, Active: true,
	}

	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.Local)

	addPaidBooking(repo, 2, day.Add(9*time.Hour))
	addPaidBooking(repo, 2, day.Add(10*time.Hour))
	addPaidBooking(repo, 1, day.Add(11*time.Hour))

	uc := NewOwnerStats(repo)

	stats, err := uc.Execute(context.Background(), 1, PeriodDay, day)

	require.NoError(t, err)
	require.Len(t, stats.TopServices, 2)
	assert.Equal(t, uint(2), stats.TopServices[0].ServiceID)
	assert.Equal(t, 2, stats.TopServices[0].Count)
	assert.Equal(t, uint(1), stats.TopServices[1].ServiceID)
}

func TestOwnerStatsIgnoresOtherShops(t *testing.T) {
	repo := newFakeRepo()
	seedShop(repo)
	repo.services[9] = models.Service{
		ID: 9, BarbershopID: 2, Name: "Outro", Price: 500, Active: true,
	}

	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.Local)
	addPaidBooking(repo, 9, day.Add(9*time.Hour))

	uc := NewOwnerStats(repo)

	stats, err := uc.Execute(context.Background(), 1, PeriodDay, day)

	require.NoError(t, err)
	assert.Zero(t, stats.Revenue)
	assert.Zero(t, stats.BookingsCount)
}

func TestPeriodRange(t *testing.T) {
	// quarta-feira, meio do dia
	ref := time.Date(2026, 3, 11, 15, 30, 0, 0, time.Local)

	start, end := periodRange(PeriodDay, ref)
	assert.Equal(t, time.Date(2026, 3, 11, 0, 0, 0, 0, time.Local), start)
	assert.Equal(t, time.Date(2026, 3, 12, 0, 0, 0, 0, time.Local), end)

	// semana começa no domingo
	start, end = periodRange(PeriodWeek, ref)
	assert.Equal(t, time.Date(2026, 3, 8, 0, 0, 0, 0, time.Local), start)
	assert.Equal(t, time.Date(2026, 3, 15, 0, 0, 0, 0, time.Local), end)

	start, end = periodRange(PeriodMonth, ref)
	assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.Local), start)
	assert.Equal(t, time.Date(2026, 4, 1, 0, 0, 0, 0, time.Local), end)
}

func TestPeriodRangeDayEndsAtNextMidnightOnDST(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skipf("tzdata indisponível: %v", err)
	}

	// 8 de março de 2026: o relógio pula das 2h para as 3h,
	// então o dia tem 23 horas e +24h cairia em 01:00 do dia 9
	ref := time.Date(2026, 3, 8, 12, 0, 0, 0, loc)

	start, end := periodRange(PeriodDay, ref)

	assert.Equal(t, time.Date(2026, 3, 8, 0, 0, 0, 0, loc), start)
	assert.Equal(t, time.Date(2026, 3, 9, 0, 0, 0, 0, loc), end)
}

func TestOwnerStatsWeekWindow(t *testing.T) {
	repo := newFakeRepo()
	seedShop(repo)

	// dentro da semana de 8 a 14 de março
	addPaidBooking(repo, 1, time.Date(2026, 3, 9, 10, 0, 0, 0, time.Local))
	// fora da janela
	addPaidBooking(repo, 1, time.Date(2026, 3, 16, 10, 0, 0, 0, time.Local))

	uc := NewOwnerStats(repo)

	stats, err := uc.Execute(context.Background(), 1, PeriodWeek,
		time.Date(2026, 3, 11, 0, 0, 0, 0, time.Local))

	require.NoError(t, err)
	assert.Equal(t, 1, stats.BookingsCount)
	assert.Equal(t, 50.0, stats.Revenue)
}
