package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/ArielVinis/france-barbershop/internal/cache"
	"github.com/ArielVinis/france-barbershop/internal/httperr"
	"github.com/ArielVinis/france-barbershop/internal/httpresp"
	"github.com/ArielVinis/france-barbershop/internal/middleware"
	"github.com/ArielVinis/france-barbershop/internal/models"
	ucBooking "github.com/ArielVinis/france-barbershop/internal/usecase/booking"
)

// BarberHandler: gestão de barbeiros pelo dono da barbearia.
type BarberHandler struct {
	db         *gorm.DB
	cache      *cache.SlotCache
	scheduleUC *ucBooking.GetBarberSchedule
}

func NewBarberHandler(
	db *gorm.DB,
	slotCache *cache.SlotCache,
	scheduleUC *ucBooking.GetBarberSchedule,
) *BarberHandler {
	return &BarberHandler{
		db:         db,
		cache:      slotCache,
		scheduleUC: scheduleUC,
	}
}

type CreateBarberRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Phone    string `json:"phone"`
}

func (h *BarberHandler) List(c *gin.Context) {
	shopID := c.MustGet(middleware.ContextBarbershopID).(uint)

	var barbers []models.Barber
	if err := h.db.
		Preload("User").
		Where("barbershop_id = ?", shopID).
		Order("id ASC").
		Find(&barbers).Error; err != nil {

		httperr.Internal(c, "failed_to_list_barbers", "Erro ao listar barbeiros.")
		return
	}

	httpresp.List(c, barbers)
}

// Create cria a conta de login do barbeiro junto com o vínculo à
// barbearia. A agenda própria nasce vazia: vale o expediente da casa.
func (h *BarberHandler) Create(c *gin.Context) {
	shopID := c.MustGet(middleware.ContextBarbershopID).(uint)

	var req CreateBarberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		httperr.Internal(c, "failed_to_hash_password", "Erro ao criar barbeiro.")
		return
	}

	var barber models.Barber

	err = h.db.Transaction(func(tx *gorm.DB) error {
		user := models.User{
			Name:         req.Name,
			Email:        strings.ToLower(strings.TrimSpace(req.Email)),
			PasswordHash: string(hashed),
			Phone:        req.Phone,
			Role:         "barber",
		}

		if err := tx.Create(&user).Error; err != nil {
			return err
		}

		barber = models.Barber{
			BarbershopID: shopID,
			UserID:       user.ID,
			Active:       true,
		}

		return tx.Create(&barber).Error
	})

	if err != nil {
		httperr.Internal(c, "failed_to_create_barber", "Erro ao criar barbeiro.")
		return
	}

	c.JSON(http.StatusCreated, barber)
}

// ToggleActive liga/desliga o barbeiro sem apagar histórico.
func (h *BarberHandler) ToggleActive(c *gin.Context) {
	shopID := c.MustGet(middleware.ContextBarbershopID).(uint)

	id, ok := paramID(c)
	if !ok {
		return
	}

	var barber models.Barber
	if err := h.db.
		Where("id = ? AND barbershop_id = ?", id, shopID).
		First(&barber).Error; err != nil {

		httperr.NotFound(c, httperr.CodeNotFound, "Barbeiro não encontrado.")
		return
	}

	barber.Active = !barber.Active

	if err := h.db.Save(&barber).Error; err != nil {
		httperr.Internal(c, "failed_to_update_barber", "Erro ao atualizar barbeiro.")
		return
	}

	c.JSON(http.StatusOK, barber)
}

// Delete desvincula o barbeiro da barbearia. A conta de usuário fica,
// rebaixada para cliente; histórico de agendamentos não é apagado.
func (h *BarberHandler) Delete(c *gin.Context) {
	shopID := c.MustGet(middleware.ContextBarbershopID).(uint)

	id, ok := paramID(c)
	if !ok {
		return
	}

	var barber models.Barber
	if err := h.db.
		Where("id = ? AND barbershop_id = ?", id, shopID).
		First(&barber).Error; err != nil {

		httperr.NotFound(c, httperr.CodeNotFound, "Barbeiro não encontrado.")
		return
	}

	var pending int64
	h.db.Model(&models.Booking{}).
		Where("barber_id = ? AND date >= NOW() AND status IN ?",
			id, []string{"CONFIRMED", "IN_PROGRESS"}).
		Count(&pending)

	if pending > 0 {
		httperr.Conflict(c, httperr.CodeTimeConflict, "Barbeiro tem agendamentos futuros.")
		return
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&barber).Error; err != nil {
			return err
		}
		return tx.Model(&models.User{}).
			Where("id = ?", barber.UserID).
			Update("role", "client").Error
	})

	if err != nil {
		httperr.Internal(c, "failed_to_delete_barber", "Erro ao remover barbeiro.")
		return
	}

	h.cache.InvalidateBarber(c.Request.Context(), barber.ID)

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Schedule mostra ao dono a agenda de um barbeiro da casa: expediente
// em vigor, pausas e bloqueios.
func (h *BarberHandler) Schedule(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	schedule, err := h.scheduleUC.Execute(c.Request.Context(), id, middleware.CurrentActor(c))
	if err != nil {
		mapBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, schedule)
}
