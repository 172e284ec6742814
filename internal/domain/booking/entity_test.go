package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ArielVinis/france-barbershop/internal/httperr"
	"github.com/ArielVinis/france-barbershop/internal/models"
)

func confirmedBooking() *models.Booking {
	return &models.Booking{
		Status:        string(StatusConfirmed),
		PaymentStatus: string(PaymentPending),
	}
}

func TestTransitionHappyPath(t *testing.T) {
	bk := confirmedBooking()
	now := time.Date(2026, 3, 10, 14, 0, 0, 0, time.Local)

	require.NoError(t, Transition(bk, StatusInProgress, now, TransitionOptions{}))
	assert.Equal(t, "IN_PROGRESS", bk.Status)
	assert.Nil(t, bk.FinishedAt)

	finish := now.Add(40 * time.Minute)
	require.NoError(t, Transition(bk, StatusFinished, finish, TransitionOptions{
		PaymentMethod: string(PaymentPix),
	}))

	assert.Equal(t, "FINISHED", bk.Status)
	require.NotNil(t, bk.FinishedAt)
	assert.Equal(t, finish, *bk.FinishedAt)
	assert.Equal(t, "PIX", bk.PaymentMethod)
	assert.Equal(t, "PAID", bk.PaymentStatus)
}

func TestTransitionSkippingInProgressFails(t *testing.T) {
	bk := confirmedBooking()

	err := Transition(bk, StatusFinished, time.Now(), TransitionOptions{})

	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidTransition))
	assert.Equal(t, "CONFIRMED", bk.Status)
}

func TestTransitionCancelStampsCancelledAt(t *testing.T) {
	bk := confirmedBooking()
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.Local)

	require.NoError(t, Transition(bk, StatusCancelled, now, TransitionOptions{}))

	assert.Equal(t, "CANCELLED", bk.Status)
	require.NotNil(t, bk.CancelledAt)
	assert.Equal(t, now, *bk.CancelledAt)
	assert.Nil(t, bk.FinishedAt)
}

func TestTransitionNoShowLeavesTimestampsAlone(t *testing.T) {
	bk := confirmedBooking()

	require.NoError(t, Transition(bk, StatusNoShow, time.Now(), TransitionOptions{}))

	assert.Equal(t, "NO_SHOW", bk.Status)
	assert.Nil(t, bk.CancelledAt)
	assert.Nil(t, bk.FinishedAt)
}

func TestTransitionTerminalStatesAreFinal(t *testing.T) {
	for _, terminal := range []Status{StatusFinished, StatusCancelled, StatusNoShow} {
		bk := &models.Booking{Status: string(terminal)}

		err := Transition(bk, StatusConfirmed, time.Now(), TransitionOptions{})

		require.Error(t, err, "from %s", terminal)
		assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidTransition))
	}
}

func TestTransitionFinishWithoutPaymentKeepsPending(t *testing.T) {
	bk := confirmedBooking()
	bk.Status = string(StatusInProgress)

	require.NoError(t, Transition(bk, StatusFinished, time.Now(), TransitionOptions{}))

	assert.Equal(t, "PENDING", bk.PaymentStatus)
	assert.Empty(t, bk.PaymentMethod)
}

func TestTransitionExplicitPaymentStatusWins(t *testing.T) {
	bk := confirmedBooking()
	bk.Status = string(StatusInProgress)

	require.NoError(t, Transition(bk, StatusFinished, time.Now(), TransitionOptions{
		PaymentMethod: string(PaymentCash),
		PaymentStatus: string(PaymentRefunded),
	}))

	assert.Equal(t, "CASH", bk.PaymentMethod)
	assert.Equal(t, "REFUNDED", bk.PaymentStatus)
}

func TestTransitionRejectsUnknownPayment(t *testing.T) {
	bk := confirmedBooking()
	bk.Status = string(StatusInProgress)

	err := Transition(bk, StatusFinished, time.Now(), TransitionOptions{
		PaymentMethod: "CHEQUE",
	})
	require.Error(t, err)

	bk = confirmedBooking()
	bk.Status = string(StatusInProgress)

	err = Transition(bk, StatusFinished, time.Now(), TransitionOptions{
		PaymentStatus: "MAYBE",
	})
	require.Error(t, err)
}

func TestTransitionRejectedLeavesBookingUntouched(t *testing.T) {
	for name, opts := range map[string]TransitionOptions{
		"payment method": {PaymentMethod: "CHEQUE"},
		"payment status": {PaymentStatus: "MAYBE"},
	} {
		bk := confirmedBooking()
		bk.Status = string(StatusInProgress)

		err := Transition(bk, StatusFinished, time.Now(), opts)

		require.Error(t, err, name)
		assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidTransition), name)
		assert.Equal(t, "IN_PROGRESS", bk.Status, name)
		assert.Nil(t, bk.FinishedAt, name)
		assert.Equal(t, "PENDING", bk.PaymentStatus, name)
		assert.Empty(t, bk.PaymentMethod, name)
	}
}

func TestTransitionUnknownCurrentStatus(t *testing.T) {
	bk := &models.Booking{Status: "LIMBO"}

	err := Transition(bk, StatusCancelled, time.Now(), TransitionOptions{})

	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidTransition))
}

func TestInitialStatus(t *testing.T) {
	assert.Equal(t, StatusConfirmed, InitialStatus())
}
