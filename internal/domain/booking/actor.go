package booking

import "github.com/ArielVinis/france-barbershop/internal/httperr"

// ===============================
// Ator autenticado
// ===============================
//
// Quem executa a operação chega como valor explícito — o domínio
// não lê sessão nem contexto de request.

type Role string

const (
	RoleClient Role = "client"
	RoleBarber Role = "barber"
	RoleOwner  Role = "owner"
)

type Actor struct {
	UserID       uint
	Role         Role
	BarberID     uint // preenchido quando Role == barber
	BarbershopID uint // preenchido quando Role == owner ou barber
}

// Authorize verifica se o ator pode mexer em um agendamento: o barbeiro
// responsável por ele, ou o dono da barbearia onde ele acontece.
func Authorize(actor Actor, barberID uint, barbershopID uint) error {
	switch actor.Role {
	case RoleBarber:
		if actor.BarberID == barberID {
			return nil
		}
	case RoleOwner:
		if actor.BarbershopID == barbershopID {
			return nil
		}
	}
	return httperr.ErrBusiness(httperr.CodeForbidden)
}
