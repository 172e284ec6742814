package schedule

import "github.com/ArielVinis/france-barbershop/internal/models"

// GenerateSlots produz os horários candidatos do expediente, em ordem
// crescente, começando em StartTime e avançando de intervalMin em
// intervalMin. O horário exatamente igual a EndTime fica de fora: um
// slot representa um início de atendimento, não um intervalo fechado.
func GenerateSlots(wh models.WorkingHours, intervalMin int) []string {
	if !wh.Active || intervalMin <= 0 {
		return nil
	}

	start, err := ToMinutes(wh.StartTime)
	if err != nil {
		return nil
	}
	end, err := ToMinutes(wh.EndTime)
	if err != nil {
		return nil
	}

	var slots []string
	for cur := start; cur < end; cur += intervalMin {
		slots = append(slots, ToTimeString(cur))
	}

	return slots
}
