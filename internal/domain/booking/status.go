package booking

import "github.com/ArielVinis/france-barbershop/internal/httperr"

// ===============================
// Status do agendamento
// ===============================

type Status string

const (
	StatusConfirmed  Status = "CONFIRMED"
	StatusInProgress Status = "IN_PROGRESS"
	StatusFinished   Status = "FINISHED"
	StatusCancelled  Status = "CANCELLED"
	StatusNoShow     Status = "NO_SHOW"
)

// Tabela de transições — fonte única da verdade do ciclo de vida.
// FINISHED, CANCELLED e NO_SHOW são terminais.
var allowedTransitions = map[Status][]Status{
	StatusConfirmed:  {StatusInProgress, StatusCancelled, StatusNoShow},
	StatusInProgress: {StatusFinished, StatusCancelled, StatusNoShow},
	StatusFinished:   {},
	StatusCancelled:  {},
	StatusNoShow:     {},
}

func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusConfirmed, StatusInProgress, StatusFinished, StatusCancelled, StatusNoShow:
		return Status(s), nil
	}
	return "", httperr.ErrBusiness(httperr.CodeInvalidTransition)
}

func (s Status) IsTerminal() bool {
	return len(allowedTransitions[s]) == 0
}

func (s Status) CanTransitionTo(target Status) bool {
	for _, next := range allowedTransitions[s] {
		if next == target {
			return true
		}
	}
	return false
}
