package schedule

import (
	"time"

	"github.com/ArielVinis/france-barbershop/internal/models"
)

// ======================================================
// Pipeline de filtros de disponibilidade
//
// Ordem fixa: passado → pausas → bloqueios → agendamentos.
// Cada filtro recebe a lista sobrevivente do anterior e
// preserva a ordem crescente. Intervalos são semiabertos:
// [início, fim) — um slot exatamente no fim sobrevive.
// ======================================================

// FilterPastSlots remove horários já passados quando o dia alvo é hoje
// (comparação pelo dia do calendário local). Para dias futuros a lista
// volta intacta, seja qual for o horário atual.
func FilterPastSlots(slots []string, day time.Time, now time.Time) []string {
	if !SameLocalDay(day, now) {
		return slots
	}

	out := make([]string, 0, len(slots))
	for _, s := range slots {
		min, err := ToMinutes(s)
		if err != nil {
			continue
		}
		if SlotInstant(day, min).Before(now) {
			continue
		}
		out = append(out, s)
	}
	return out
}

// FilterByBreaks remove horários que caem dentro de uma pausa recorrente
// do barbeiro no dia da semana alvo.
func FilterByBreaks(slots []string, day time.Time, breaks []models.Break) []string {
	if len(breaks) == 0 {
		return slots
	}

	weekday := DayOfWeek(day)

	out := make([]string, 0, len(slots))
	for _, s := range slots {
		min, err := ToMinutes(s)
		if err != nil {
			continue
		}

		inside := false
		for _, b := range breaks {
			if b.Weekday != weekday {
				continue
			}
			start, err := ToMinutes(b.StartTime)
			if err != nil {
				continue
			}
			end, err := ToMinutes(b.EndTime)
			if err != nil {
				continue
			}
			if min >= start && min < end {
				inside = true
				break
			}
		}

		if !inside {
			out = append(out, s)
		}
	}
	return out
}

// FilterByBlockedSlots remove horários cujo instante absoluto cai dentro
// de um bloqueio pontual do barbeiro (férias, compromisso etc.).
func FilterByBlockedSlots(slots []string, day time.Time, blocked []models.BlockedSlot) []string {
	if len(blocked) == 0 {
		return slots
	}

	out := make([]string, 0, len(slots))
	for _, s := range slots {
		min, err := ToMinutes(s)
		if err != nil {
			continue
		}
		instant := SlotInstant(day, min)

		inside := false
		for _, b := range blocked {
			if !instant.Before(b.StartAt) && instant.Before(b.EndAt) {
				inside = true
				break
			}
		}

		if !inside {
			out = append(out, s)
		}
	}
	return out
}

// FilterByBookings remove horários que coincidem exatamente (ano, mês,
// dia, hora e minuto) com o início de um agendamento existente.
//
// A comparação é por instante exato, não por sobreposição com a duração
// do serviço — um agendamento de 60min às 14:00 não esconde o slot das
// 14:30. Simplificação herdada do modelo atual de agenda.
func FilterByBookings(slots []string, day time.Time, bookings []models.Booking) []string {
	if len(bookings) == 0 {
		return slots
	}

	out := make([]string, 0, len(slots))
	for _, s := range slots {
		min, err := ToMinutes(s)
		if err != nil {
			continue
		}

		taken := false
		for _, bk := range bookings {
			if bk.Date.Year() == day.Year() &&
				bk.Date.Month() == day.Month() &&
				bk.Date.Day() == day.Day() &&
				bk.Date.Hour() == min/60 &&
				bk.Date.Minute() == min%60 {
				taken = true
				break
			}
		}

		if !taken {
			out = append(out, s)
		}
	}
	return out
}
