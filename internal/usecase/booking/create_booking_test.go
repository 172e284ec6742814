package booking

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ArielVinis/france-barbershop/internal/httperr"
	"github.com/ArielVinis/france-barbershop/internal/models"
)

func newCreateUC(repo *fakeRepo) *CreateBooking {
	return NewCreateBooking(repo, newAvailabilityUC(repo), nil, nil)
}

func TestCreateBookingSuccess(t *testing.T) {
	repo := newFakeRepo()
	seedShop(repo)
	uc := newCreateUC(repo)

	bk, err := uc.Execute(context.Background(), CreateBookingInput{
		UserID:    7,
		BarberID:  1,
		ServiceID: 1,
		DateTime:  time.Date(2026, 3, 10, 10, 0, 0, 0, time.Local),
	})

	require.NoError(t, err)
	assert.NotZero(t, bk.ID)
	assert.Equal(t, "CONFIRMED", bk.Status)
	assert.Equal(t, "PENDING", bk.PaymentStatus)
	assert.Equal(t, uint(7), bk.UserID)

	_, err = uuid.Parse(bk.PublicID)
	assert.NoError(t, err)
}

func TestCreateBookingTruncatesSeconds(t *testing.T) {
	repo := newFakeRepo()
	seedShop(repo)
	uc := newCreateUC(repo)

	bk, err := uc.Execute(context.Background(), CreateBookingInput{
		UserID:    7,
		BarberID:  1,
		ServiceID: 1,
		DateTime:  time.Date(2026, 3, 10, 10, 0, 42, 999, time.Local),
	})

	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 10, 10, 0, 0, 0, time.Local), bk.Date)
}

func TestCreateBookingSlotAlreadyTaken(t *testing.T) {
	repo := newFakeRepo()
	seedShop(repo)
	uc := newCreateUC(repo)

	in := CreateBookingInput{
		UserID:    7,
		BarberID:  1,
		ServiceID: 1,
		DateTime:  time.Date(2026, 3, 10, 10, 0, 0, 0, time.Local),
	}

	_, err := uc.Execute(context.Background(), in)
	require.NoError(t, err)

	in.UserID = 8
	_, err = uc.Execute(context.Background(), in)

	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeSlotUnavailable))
}

func TestCreateBookingAfterCancellationSucceeds(t *testing.T) {
	repo := newFakeRepo()
	seedShop(repo)
	repo.bookings = append(repo.bookings, models.Booking{
		ID: 1, BarberID: 1, ServiceID: 1,
		Date:   time.Date(2026, 3, 10, 10, 0, 0, 0, time.Local),
		Status: "CANCELLED",
	})
	repo.nextID = 1
	uc := newCreateUC(repo)

	bk, err := uc.Execute(context.Background(), CreateBookingInput{
		UserID:    8,
		BarberID:  1,
		ServiceID: 1,
		DateTime:  time.Date(2026, 3, 10, 10, 0, 0, 0, time.Local),
	})

	require.NoError(t, err)
	assert.Equal(t, "CONFIRMED", bk.Status)
}

func TestCreateBookingInsideBreak(t *testing.T) {
	repo := newFakeRepo()
	seedShop(repo)
	repo.breaks = append(repo.breaks, models.Break{
		BarberID: 1, Weekday: 2, StartTime: "10:00", EndTime: "11:00",
	})
	uc := newCreateUC(repo)

	_, err := uc.Execute(context.Background(), CreateBookingInput{
		UserID:    7,
		BarberID:  1,
		ServiceID: 1,
		DateTime:  time.Date(2026, 3, 10, 10, 30, 0, 0, time.Local),
	})

	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeSlotUnavailable))
}

func TestCreateBookingOutsideWorkingHours(t *testing.T) {
	repo := newFakeRepo()
	seedShop(repo)
	uc := newCreateUC(repo)

	_, err := uc.Execute(context.Background(), CreateBookingInput{
		UserID:    7,
		BarberID:  1,
		ServiceID: 1,
		DateTime:  time.Date(2026, 3, 10, 14, 0, 0, 0, time.Local),
	})

	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeSlotUnavailable))
}

func TestCreateBookingOffGridTime(t *testing.T) {
	repo := newFakeRepo()
	seedShop(repo)
	uc := newCreateUC(repo)

	// 10:10 não é um slot ofertado, mesmo dentro do expediente
	_, err := uc.Execute(context.Background(), CreateBookingInput{
		UserID:    7,
		BarberID:  1,
		ServiceID: 1,
		DateTime:  time.Date(2026, 3, 10, 10, 10, 0, 0, time.Local),
	})

	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeSlotUnavailable))
}

func TestCreateBookingUnknownBarber(t *testing.T) {
	repo := newFakeRepo()
	seedShop(repo)
	uc := newCreateUC(repo)

	_, err := uc.Execute(context.Background(), CreateBookingInput{
		UserID:    7,
		BarberID:  99,
		ServiceID: 1,
		DateTime:  time.Date(2026, 3, 10, 10, 0, 0, 0, time.Local),
	})

	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeNotFound))
}

func TestCreateBookingServiceFromAnotherShop(t *testing.T) {
	repo := newFakeRepo()
	seedShop(repo)
	repo.services[2] = models.Service{
		ID: 2, BarbershopID: 2, Name: "Corte alheio", Price: 80, DurationMin: 30, Active: true,
	}
	uc := newCreateUC(repo)

	_, err := uc.Execute(context.Background(), CreateBookingInput{
		UserID:    7,
		BarberID:  1,
		ServiceID: 2,
		DateTime:  time.Date(2026, 3, 10, 10, 0, 0, 0, time.Local),
	})

	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeNotFound))
}

func TestCreateBookingInactiveBarber(t *testing.T) {
	repo := newFakeRepo()
	seedShop(repo)
	b := repo.barbers[1]
	b.Active = false
	repo.barbers[1] = b
	uc := newCreateUC(repo)

	_, err := uc.Execute(context.Background(), CreateBookingInput{
		UserID:    7,
		BarberID:  1,
		ServiceID: 1,
		DateTime:  time.Date(2026, 3, 10, 10, 0, 0, 0, time.Local),
	})

	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeNotFound))
}
