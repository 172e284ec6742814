package handlers

import "time"

// --------------------------------------------------
// Datas no fuso local do servidor
//
// O sistema trabalha com o dia do calendário local do
// host; não há normalização de timezone por barbearia.
// --------------------------------------------------

func parseLocalDate(dateStr string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", dateStr, time.Local)
}

func parseLocalDateTime(dateStr, timeStr string) (time.Time, error) {
	return time.ParseInLocation(
		"2006-01-02 15:04",
		dateStr+" "+timeStr,
		time.Local,
	)
}
