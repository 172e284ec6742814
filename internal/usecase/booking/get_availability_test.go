package booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ArielVinis/france-barbershop/internal/httperr"
	"github.com/ArielVinis/france-barbershop/internal/models"
)

func newAvailabilityUC(repo *fakeRepo) *GetAvailability {
	uc := NewGetAvailability(repo, nil)
	uc.now = fixedNow
	return uc
}

func TestGetAvailabilityFullMorning(t *testing.T) {
	repo := newFakeRepo()
	seedShop(repo)
	uc := newAvailabilityUC(repo)

	slots, err := uc.Execute(context.Background(), AvailabilityInput{
		BarberID: 1, ServiceID: 1, Date: testDay,
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"09:00", "09:30", "10:00", "10:30", "11:00", "11:30"}, slots)
}

func TestGetAvailabilityRemovesBookedSlot(t *testing.T) {
	repo := newFakeRepo()
	seedShop(repo)
	repo.bookings = append(repo.bookings, models.Booking{
		ID: 1, BarberID: 1, ServiceID: 1,
		Date:   time.Date(2026, 3, 10, 10, 0, 0, 0, time.Local),
		Status: "CONFIRMED",
	})
	uc := newAvailabilityUC(repo)

	slots, err := uc.Execute(context.Background(), AvailabilityInput{
		BarberID: 1, ServiceID: 1, Date: testDay,
	})

	require.NoError(t, err)
	assert.NotContains(t, slots, "10:00")
	assert.Contains(t, slots, "10:30")
}

func TestGetAvailabilityCancelledBookingFreesSlot(t *testing.T) {
	repo := newFakeRepo()
	seedShop(repo)
	repo.bookings = append(repo.bookings,
		models.Booking{
			ID: 1, BarberID: 1, ServiceID: 1,
			Date:   time.Date(2026, 3, 10, 10, 0, 0, 0, time.Local),
			Status: "CANCELLED",
		},
		models.Booking{
			ID: 2, BarberID: 1, ServiceID: 1,
			Date:   time.Date(2026, 3, 10, 11, 0, 0, 0, time.Local),
			Status: "NO_SHOW",
		},
	)
	uc := newAvailabilityUC(repo)

	slots, err := uc.Execute(context.Background(), AvailabilityInput{
		BarberID: 1, ServiceID: 1, Date: testDay,
	})

	require.NoError(t, err)
	assert.Contains(t, slots, "10:00")
	assert.Contains(t, slots, "11:00")
}

func TestGetAvailabilityAppliesBreaks(t *testing.T) {
	repo := newFakeRepo()
	seedShop(repo)
	repo.breaks = append(repo.breaks, models.Break{
		BarberID: 1, Weekday: 2, StartTime: "10:00", EndTime: "11:00",
	})
	uc := newAvailabilityUC(repo)

	slots, err := uc.Execute(context.Background(), AvailabilityInput{
		BarberID: 1, ServiceID: 1, Date: testDay,
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"09:00", "09:30", "11:00", "11:30"}, slots)
}

func TestGetAvailabilityAppliesBlockedRange(t *testing.T) {
	repo := newFakeRepo()
	seedShop(repo)
	repo.blocked = append(repo.blocked, models.BlockedSlot{
		BarberID: 1,
		StartAt:  time.Date(2026, 3, 10, 9, 0, 0, 0, time.Local),
		EndAt:    time.Date(2026, 3, 10, 10, 0, 0, 0, time.Local),
	})
	uc := newAvailabilityUC(repo)

	slots, err := uc.Execute(context.Background(), AvailabilityInput{
		BarberID: 1, ServiceID: 1, Date: testDay,
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"10:00", "10:30", "11:00", "11:30"}, slots)
}

func TestGetAvailabilityBarberHoursOverrideShop(t *testing.T) {
	repo := newFakeRepo()
	seedShop(repo)
	repo.workingHours = append(repo.workingHours, models.WorkingHours{
		OwnerID:   1,
		OwnerKind: models.OwnerKindBarber,
		Weekday:   2,
		StartTime: "10:00",
		EndTime:   "11:00",
		Active:    true,
	})
	uc := newAvailabilityUC(repo)

	slots, err := uc.Execute(context.Background(), AvailabilityInput{
		BarberID: 1, ServiceID: 1, Date: testDay,
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"10:00", "10:30"}, slots)
}

func TestGetAvailabilityClosedDayReturnsEmptyList(t *testing.T) {
	repo := newFakeRepo()
	seedShop(repo)
	uc := newAvailabilityUC(repo)

	// quarta-feira: sem expediente configurado
	wednesday := testDay.AddDate(0, 0, 1)

	slots, err := uc.Execute(context.Background(), AvailabilityInput{
		BarberID: 1, ServiceID: 1, Date: wednesday,
	})

	require.NoError(t, err)
	assert.NotNil(t, slots)
	assert.Empty(t, slots)
}

func TestGetAvailabilityPastSlotsRemovedToday(t *testing.T) {
	repo := newFakeRepo()
	seedShop(repo)
	uc := NewGetAvailability(repo, nil)
	uc.now = func() time.Time {
		return time.Date(2026, 3, 10, 10, 15, 0, 0, time.Local)
	}

	slots, err := uc.Execute(context.Background(), AvailabilityInput{
		BarberID: 1, ServiceID: 1, Date: testDay,
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"10:30", "11:00", "11:30"}, slots)
}

func TestGetAvailabilityUnknownBarber(t *testing.T) {
	repo := newFakeRepo()
	seedShop(repo)
	uc := newAvailabilityUC(repo)

	_, err := uc.Execute(context.Background(), AvailabilityInput{
		BarberID: 99, ServiceID: 1, Date: testDay,
	})

	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeNotFound))
}

func TestGetAvailabilityUnknownService(t *testing.T) {
	repo := newFakeRepo()
	seedShop(repo)
	uc := newAvailabilityUC(repo)

	_, err := uc.Execute(context.Background(), AvailabilityInput{
		BarberID: 1, ServiceID: 99, Date: testDay,
	})

	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeNotFound))
}

func TestGetAvailabilityIsIdempotent(t *testing.T) {
	repo := newFakeRepo()
	seedShop(repo)
	repo.breaks = append(repo.breaks, models.Break{
		BarberID: 1, Weekday: 2, StartTime: "09:00", EndTime: "09:30",
	})
	uc := newAvailabilityUC(repo)

	in := AvailabilityInput{BarberID: 1, ServiceID: 1, Date: testDay}

	first, err := uc.Execute(context.Background(), in)
	require.NoError(t, err)

	second, err := uc.Execute(context.Background(), in)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
