package schedule

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/ArielVinis/france-barbershop/internal/httperr"
)

// Intervalo padrão entre horários ofertados, em minutos.
// Configuração global do sistema, não varia por serviço.
const DefaultSlotInterval = 30

var timeRegex = regexp.MustCompile(`^([0-2]?[0-9]):([0-5][0-9])$`)

// ToMinutes converte "HH:MM" em minutos desde a meia-noite.
func ToMinutes(hm string) (int, error) {
	m := timeRegex.FindStringSubmatch(strings.TrimSpace(hm))
	if m == nil {
		return 0, httperr.ErrBusiness(httperr.CodeInvalidTimeFormat)
	}

	hour, _ := strconv.Atoi(m[1])
	minute, _ := strconv.Atoi(m[2])

	if hour > 23 {
		return 0, httperr.ErrBusiness(httperr.CodeInvalidTimeFormat)
	}

	return hour*60 + minute, nil
}

// ToTimeString é o inverso de ToMinutes para entradas válidas.
func ToTimeString(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// DayOfWeek devolve o dia da semana (0 = domingo) do calendário local.
func DayOfWeek(t time.Time) int {
	return int(t.Weekday())
}

// SameLocalDay compara duas datas pelo dia do calendário local,
// ignorando o horário.
func SameLocalDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// SlotInstant ancora um horário "HH:MM" já validado no dia informado.
func SlotInstant(day time.Time, slotMin int) time.Time {
	return time.Date(
		day.Year(), day.Month(), day.Day(),
		slotMin/60, slotMin%60, 0, 0,
		day.Location(),
	)
}
