package schedule

import "github.com/ArielVinis/france-barbershop/internal/models"

// ResolveDaySchedule decide qual expediente vale para o barbeiro no dia
// da semana pedido. Retorna ok=false quando o dia está fechado.
//
// Regra tudo-ou-nada: se o barbeiro configurou QUALQUER agenda própria,
// só a agenda dele conta — um dia ausente ou inativo significa fechado,
// mesmo que a barbearia abra nesse dia. O fallback para o expediente da
// barbearia só acontece para barbeiros sem nenhum registro próprio.
func ResolveDaySchedule(
	barberHours []models.WorkingHours,
	shopHours []models.WorkingHours,
	weekday int,
) (models.WorkingHours, bool) {

	if len(barberHours) > 0 {
		return pickDay(barberHours, weekday)
	}

	return pickDay(shopHours, weekday)
}

func pickDay(hours []models.WorkingHours, weekday int) (models.WorkingHours, bool) {
	for _, wh := range hours {
		if wh.Weekday == weekday {
			if !wh.Active {
				return models.WorkingHours{}, false
			}
			return wh, true
		}
	}
	return models.WorkingHours{}, false
}
