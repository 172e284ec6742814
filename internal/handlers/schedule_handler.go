package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ArielVinis/france-barbershop/internal/audit"
	"github.com/ArielVinis/france-barbershop/internal/cache"
	"github.com/ArielVinis/france-barbershop/internal/domain/schedule"
	"github.com/ArielVinis/france-barbershop/internal/httperr"
	"github.com/ArielVinis/france-barbershop/internal/httpresp"
	"github.com/ArielVinis/france-barbershop/internal/middleware"
	"github.com/ArielVinis/france-barbershop/internal/models"
)

////////////////////////////////////////////////////////
// HANDLER
////////////////////////////////////////////////////////

// ScheduleHandler cuida do expediente, das pausas e dos bloqueios —
// do barbeiro (agenda própria) e da barbearia (padrão da casa).
type ScheduleHandler struct {
	db    *gorm.DB
	cache *cache.SlotCache
	audit *audit.Dispatcher
}

func NewScheduleHandler(db *gorm.DB, slotCache *cache.SlotCache, audit *audit.Dispatcher) *ScheduleHandler {
	return &ScheduleHandler{
		db:    db,
		cache: slotCache,
		audit: audit,
	}
}

////////////////////////////////////////////////////////
// DTOs
////////////////////////////////////////////////////////

type WorkingDayConfig struct {
	Weekday   int    `json:"weekday" binding:"min=0,max=6"`
	Active    bool   `json:"active"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

type WorkingHoursUpdateRequest struct {
	Days []WorkingDayConfig `json:"days" binding:"required"`
}

type CreateBreakRequest struct {
	Weekday   int    `json:"weekday" binding:"min=0,max=6"`
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time" binding:"required"`
}

type CreateBlockedSlotRequest struct {
	StartAt time.Time `json:"start_at" binding:"required"`
	EndAt   time.Time `json:"end_at" binding:"required"`
	Reason  string    `json:"reason"`
}

////////////////////////////////////////////////////////
// EXPEDIENTE
////////////////////////////////////////////////////////

func (h *ScheduleHandler) GetBarberHours(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextBarberID).(uint)
	h.listHours(c, barberID, models.OwnerKindBarber)
}

func (h *ScheduleHandler) UpdateBarberHours(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextBarberID).(uint)

	if h.replaceHours(c, barberID, models.OwnerKindBarber) {
		h.cache.InvalidateBarber(c.Request.Context(), barberID)

		userID := c.MustGet(middleware.ContextUserID).(uint)
		h.audit.Dispatch(audit.Event{
			BarbershopID: c.GetUint(middleware.ContextBarbershopID),
			UserID:       &userID,
			Action:       audit.ActionScheduleUpdated,
			Entity:       "working_hours",
		})
	}
}

func (h *ScheduleHandler) GetShopHours(c *gin.Context) {
	shopID := c.MustGet(middleware.ContextBarbershopID).(uint)
	h.listHours(c, shopID, models.OwnerKindBarbershop)
}

func (h *ScheduleHandler) UpdateShopHours(c *gin.Context) {
	shopID := c.MustGet(middleware.ContextBarbershopID).(uint)

	if h.replaceHours(c, shopID, models.OwnerKindBarbershop) {
		// o expediente da casa vale para todo barbeiro sem agenda
		// própria, então os slots cacheados de todos ficam velhos
		var barberIDs []uint
		h.db.Model(&models.Barber{}).
			Where("barbershop_id = ?", shopID).
			Pluck("id", &barberIDs)

		for _, barberID := range barberIDs {
			h.cache.InvalidateBarber(c.Request.Context(), barberID)
		}

		userID := c.MustGet(middleware.ContextUserID).(uint)
		h.audit.Dispatch(audit.Event{
			BarbershopID: shopID,
			UserID:       &userID,
			Action:       audit.ActionScheduleUpdated,
			Entity:       "working_hours",
		})
	}
}

func (h *ScheduleHandler) listHours(c *gin.Context, ownerID uint, ownerKind string) {
	var hours []models.WorkingHours
	if err := h.db.
		Where("owner_id = ? AND owner_kind = ?", ownerID, ownerKind).
		Order("weekday ASC").
		Find(&hours).Error; err != nil {

		httperr.Internal(c, "failed_to_get_working_hours", "Erro ao buscar expediente.")
		return
	}

	httpresp.List(c, hours)
}

// replaceHours troca o expediente inteiro do dono (estratégia
// delete + insert, igual ao fluxo de configuração semanal da UI).
func (h *ScheduleHandler) replaceHours(c *gin.Context, ownerID uint, ownerKind string) bool {
	var req WorkingHoursUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return false
	}

	for _, d := range req.Days {
		if !d.Active {
			continue
		}
		if err := validateTimeRange(d.StartTime, d.EndTime); err != nil {
			httperr.BadRequest(c, httperr.CodeInvalidTimeFormat, "Expediente com horário inválido.")
			return false
		}
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("owner_id = ? AND owner_kind = ?", ownerID, ownerKind).
			Delete(&models.WorkingHours{}).Error; err != nil {
			return err
		}

		var toCreate []models.WorkingHours
		for _, d := range req.Days {
			toCreate = append(toCreate, models.WorkingHours{
				OwnerID:   ownerID,
				OwnerKind: ownerKind,
				Weekday:   d.Weekday,
				Active:    d.Active,
				StartTime: d.StartTime,
				EndTime:   d.EndTime,
			})
		}

		if len(toCreate) > 0 {
			return tx.Create(&toCreate).Error
		}
		return nil
	})

	if err != nil {
		httperr.Internal(c, "failed_to_save_working_hours", "Erro ao salvar expediente.")
		return false
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
	return true
}

////////////////////////////////////////////////////////
// PAUSAS
////////////////////////////////////////////////////////

func (h *ScheduleHandler) ListBreaks(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextBarberID).(uint)

	var breaks []models.Break
	if err := h.db.
		Where("barber_id = ?", barberID).
		Order("weekday ASC, start_time ASC").
		Find(&breaks).Error; err != nil {

		httperr.Internal(c, "failed_to_list_breaks", "Erro ao listar pausas.")
		return
	}

	httpresp.List(c, breaks)
}

func (h *ScheduleHandler) CreateBreak(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextBarberID).(uint)

	var req CreateBreakRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if err := validateTimeRange(req.StartTime, req.EndTime); err != nil {
		httperr.BadRequest(c, httperr.CodeInvalidTimeFormat, "Pausa com horário inválido.")
		return
	}

	br := models.Break{
		BarberID:  barberID,
		Weekday:   req.Weekday,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	}

	if err := h.db.Create(&br).Error; err != nil {
		httperr.Internal(c, "failed_to_create_break", "Erro ao criar pausa.")
		return
	}

	h.cache.InvalidateBarber(c.Request.Context(), barberID)
	h.dispatchScheduleEvent(c, audit.ActionBreakCreated, "break", br.ID)

	c.JSON(http.StatusCreated, br)
}

func (h *ScheduleHandler) DeleteBreak(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextBarberID).(uint)

	id, ok := paramID(c)
	if !ok {
		return
	}

	res := h.db.Where("id = ? AND barber_id = ?", id, barberID).Delete(&models.Break{})
	if res.Error != nil {
		httperr.Internal(c, "failed_to_delete_break", "Erro ao remover pausa.")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, httperr.CodeNotFound, "Pausa não encontrada.")
		return
	}

	h.cache.InvalidateBarber(c.Request.Context(), barberID)
	h.dispatchScheduleEvent(c, audit.ActionBreakDeleted, "break", id)

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

////////////////////////////////////////////////////////
// BLOQUEIOS
////////////////////////////////////////////////////////

func (h *ScheduleHandler) ListBlockedSlots(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextBarberID).(uint)

	var blocked []models.BlockedSlot
	if err := h.db.
		Where("barber_id = ?", barberID).
		Order("start_at ASC").
		Find(&blocked).Error; err != nil {

		httperr.Internal(c, "failed_to_list_blocked_slots", "Erro ao listar bloqueios.")
		return
	}

	httpresp.List(c, blocked)
}

func (h *ScheduleHandler) CreateBlockedSlot(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextBarberID).(uint)

	var req CreateBlockedSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if !req.StartAt.Before(req.EndAt) {
		httperr.BadRequest(c, "invalid_range", "Fim do bloqueio deve ser após o início.")
		return
	}

	blocked := models.BlockedSlot{
		BarberID: barberID,
		StartAt:  req.StartAt,
		EndAt:    req.EndAt,
		Reason:   req.Reason,
	}

	if err := h.db.Create(&blocked).Error; err != nil {
		httperr.Internal(c, "failed_to_create_blocked_slot", "Erro ao criar bloqueio.")
		return
	}

	h.cache.InvalidateBarber(c.Request.Context(), barberID)
	h.dispatchScheduleEvent(c, audit.ActionBlockedSlotCreated, "blocked_slot", blocked.ID)

	c.JSON(http.StatusCreated, blocked)
}

func (h *ScheduleHandler) DeleteBlockedSlot(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextBarberID).(uint)

	id, ok := paramID(c)
	if !ok {
		return
	}

	res := h.db.Where("id = ? AND barber_id = ?", id, barberID).Delete(&models.BlockedSlot{})
	if res.Error != nil {
		httperr.Internal(c, "failed_to_delete_blocked_slot", "Erro ao remover bloqueio.")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, httperr.CodeNotFound, "Bloqueio não encontrado.")
		return
	}

	h.cache.InvalidateBarber(c.Request.Context(), barberID)
	h.dispatchScheduleEvent(c, audit.ActionBlockedSlotDeleted, "blocked_slot", id)

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

////////////////////////////////////////////////////////
// Helpers
////////////////////////////////////////////////////////

func validateTimeRange(start, end string) error {
	startMin, err := schedule.ToMinutes(start)
	if err != nil {
		return err
	}
	endMin, err := schedule.ToMinutes(end)
	if err != nil {
		return err
	}
	if startMin >= endMin {
		return httperr.ErrBusiness(httperr.CodeInvalidTimeFormat)
	}
	return nil
}

func (h *ScheduleHandler) dispatchScheduleEvent(c *gin.Context, action, entity string, entityID uint) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	h.audit.Dispatch(audit.Event{
		BarbershopID: c.GetUint(middleware.ContextBarbershopID),
		UserID:       &userID,
		Action:       action,
		Entity:       entity,
		EntityID:     &entityID,
	})
}
