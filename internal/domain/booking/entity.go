package booking

import (
	"time"

	"github.com/ArielVinis/france-barbershop/internal/httperr"
	"github.com/ArielVinis/france-barbershop/internal/models"
)

// ===============================
// Ações de domínio
// ===============================

type TransitionOptions struct {
	PaymentMethod string
	PaymentStatus string
}

// Transition aplica uma mudança de status validada pela tabela de
// transições. Ao finalizar com método de pagamento informado, o status
// de pagamento é carimbado como PAID (salvo status explícito nas opções).
func Transition(b *models.Booking, target Status, now time.Time, opts TransitionOptions) error {
	current, err := ParseStatus(b.Status)
	if err != nil {
		return err
	}

	if !current.CanTransitionTo(target) {
		return httperr.ErrBusiness(httperr.CodeInvalidTransition)
	}

	// valida tudo antes de tocar no booking: erro não pode deixar
	// o struct pela metade para quem reaproveita o ponteiro
	if target == StatusFinished {
		if opts.PaymentMethod != "" && !ValidPaymentMethod(opts.PaymentMethod) {
			return httperr.ErrBusiness(httperr.CodeInvalidTransition)
		}
		if opts.PaymentStatus != "" && !ValidPaymentStatus(opts.PaymentStatus) {
			return httperr.ErrBusiness(httperr.CodeInvalidTransition)
		}
	}

	b.Status = string(target)

	switch target {
	case StatusCancelled:
		b.CancelledAt = &now

	case StatusFinished:
		b.FinishedAt = &now

		if opts.PaymentMethod != "" {
			b.PaymentMethod = opts.PaymentMethod
			b.PaymentStatus = string(PaymentPaid)
		}
		if opts.PaymentStatus != "" {
			b.PaymentStatus = opts.PaymentStatus
		}
	}

	return nil
}

// InitialStatus é o status de todo agendamento recém-criado.
func InitialStatus() Status {
	return StatusConfirmed
}
