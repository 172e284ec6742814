package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ArielVinis/france-barbershop/internal/httperr"
	"github.com/ArielVinis/france-barbershop/internal/middleware"
	ucBooking "github.com/ArielVinis/france-barbershop/internal/usecase/booking"
)

type DashboardHandler struct {
	statsUC *ucBooking.OwnerStats
}

func NewDashboardHandler(statsUC *ucBooking.OwnerStats) *DashboardHandler {
	return &DashboardHandler{statsUC: statsUC}
}

// Stats devolve o resumo do período para o dono: faturamento,
// quantidade de agendamentos e serviços mais pedidos.
func (h *DashboardHandler) Stats(c *gin.Context) {
	shopID := c.MustGet(middleware.ContextBarbershopID).(uint)

	period := ucBooking.StatsPeriod(c.DefaultQuery("period", "day"))
	switch period {
	case ucBooking.PeriodDay, ucBooking.PeriodWeek, ucBooking.PeriodMonth:
	default:
		httperr.BadRequest(c, "invalid_period", "Período deve ser day, week ou month.")
		return
	}

	date := time.Now()
	if dateStr := c.Query("date"); dateStr != "" {
		parsed, err := parseLocalDate(dateStr)
		if err != nil {
			httperr.BadRequest(c, "invalid_date", "Data inválida.")
			return
		}
		date = parsed
	}

	stats, err := h.statsUC.Execute(c.Request.Context(), shopID, period, date)
	if err != nil {
		httperr.Internal(c, "stats_failed", "Erro ao calcular estatísticas.")
		return
	}

	c.JSON(http.StatusOK, stats)
}
