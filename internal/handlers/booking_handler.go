package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/ArielVinis/france-barbershop/internal/domain/booking"
	"github.com/ArielVinis/france-barbershop/internal/httperr"
	"github.com/ArielVinis/france-barbershop/internal/middleware"
	"github.com/ArielVinis/france-barbershop/internal/models"
	ucBooking "github.com/ArielVinis/france-barbershop/internal/usecase/booking"
)

////////////////////////////////////////////////////////
// HANDLER
////////////////////////////////////////////////////////

type BookingHandler struct {
	db           *gorm.DB
	createUC     *ucBooking.CreateBooking
	transitionUC *ucBooking.TransitionBooking
	obsUC        *ucBooking.UpdateObservations
	listByDateUC *ucBooking.ListBookingsByDate
}

func NewBookingHandler(
	db *gorm.DB,
	createUC *ucBooking.CreateBooking,
	transitionUC *ucBooking.TransitionBooking,
	obsUC *ucBooking.UpdateObservations,
	listByDateUC *ucBooking.ListBookingsByDate,
) *BookingHandler {
	return &BookingHandler{
		db:           db,
		createUC:     createUC,
		transitionUC: transitionUC,
		obsUC:        obsUC,
		listByDateUC: listByDateUC,
	}
}

////////////////////////////////////////////////////////
// DTOs
////////////////////////////////////////////////////////

type CreateBookingRequest struct {
	BarberID  uint   `json:"barber_id" binding:"required"`
	ServiceID uint   `json:"service_id" binding:"required"`
	Date      string `json:"date" binding:"required"` // YYYY-MM-DD
	Time      string `json:"time" binding:"required"` // HH:MM
}

type TransitionRequest struct {
	Status        string `json:"status" binding:"required"`
	PaymentMethod string `json:"payment_method"`
	PaymentStatus string `json:"payment_status"`
}

type ObservationsRequest struct {
	Observations string `json:"observations"`
}

////////////////////////////////////////////////////////
// CLIENTE
////////////////////////////////////////////////////////

func (h *BookingHandler) Create(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	dateTime, err := parseLocalDateTime(req.Date, req.Time)
	if err != nil {
		httperr.BadRequest(c, "invalid_date_or_time", "Data ou horário inválido.")
		return
	}

	bk, err := h.createUC.Execute(
		c.Request.Context(),
		ucBooking.CreateBookingInput{
			UserID:    userID,
			BarberID:  req.BarberID,
			ServiceID: req.ServiceID,
			DateTime:  dateTime,
		},
	)

	if err != nil {
		mapBookingError(c, err)
		return
	}

	c.JSON(http.StatusCreated, bk)
}

// ListMine lista os agendamentos do cliente logado, separados em
// confirmados (futuro) e concluídos (histórico).
func (h *BookingHandler) ListMine(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	scope := c.DefaultQuery("scope", "upcoming")

	q := h.db.
		Preload("Barber.User").
		Preload("Service").
		Where("user_id = ?", userID)

	switch scope {
	case "concluded":
		q = q.Where("status IN ?", []string{
			string(domain.StatusFinished),
			string(domain.StatusCancelled),
			string(domain.StatusNoShow),
		}).Order("date DESC")
	default:
		q = q.Where("status IN ?", []string{
			string(domain.StatusConfirmed),
			string(domain.StatusInProgress),
		}).Order("date ASC")
	}

	var bookings []models.Booking
	if err := q.Find(&bookings).Error; err != nil {
		httperr.Internal(c, "failed_to_list_bookings", "Erro ao listar agendamentos.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

////////////////////////////////////////////////////////
// BARBEIRO
////////////////////////////////////////////////////////

// Agenda devolve os atendimentos do barbeiro logado em um dia.
func (h *BookingHandler) Agenda(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextBarberID).(uint)

	dateStr := c.DefaultQuery("date", "")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "Data obrigatória.")
		return
	}

	date, err := parseLocalDate(dateStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inválida.")
		return
	}

	bookings, err := h.listByDateUC.Execute(c.Request.Context(), barberID, date)
	if err != nil {
		httperr.Internal(c, "failed_to_list_bookings", "Erro ao listar agendamentos.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"date":     dateStr,
		"bookings": bookings,
	})
}

////////////////////////////////////////////////////////
// TRANSIÇÕES DE STATUS (barbeiro e dono)
////////////////////////////////////////////////////////

func (h *BookingHandler) Transition(c *gin.Context) {
	bookingID, ok := paramID(c)
	if !ok {
		return
	}

	var req TransitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	target, err := domain.ParseStatus(req.Status)
	if err != nil {
		httperr.BadRequest(c, httperr.CodeInvalidTransition, "Status desconhecido.")
		return
	}

	bk, err := h.transitionUC.Execute(
		c.Request.Context(),
		bookingID,
		target,
		middleware.CurrentActor(c),
		domain.TransitionOptions{
			PaymentMethod: req.PaymentMethod,
			PaymentStatus: req.PaymentStatus,
		},
	)

	if err != nil {
		mapBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, bk)
}

func (h *BookingHandler) UpdateObservations(c *gin.Context) {
	bookingID, ok := paramID(c)
	if !ok {
		return
	}

	var req ObservationsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	bk, err := h.obsUC.Execute(
		c.Request.Context(),
		bookingID,
		middleware.CurrentActor(c),
		req.Observations,
	)

	if err != nil {
		mapBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, bk)
}

////////////////////////////////////////////////////////
// Helpers
////////////////////////////////////////////////////////

func paramID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return 0, false
	}
	return uint(id), true
}

// mapBookingError traduz a taxonomia de negócio para HTTP.
func mapBookingError(c *gin.Context, err error) {
	switch {
	case httperr.IsBusiness(err, httperr.CodeNotFound):
		httperr.NotFound(c, httperr.CodeNotFound, "Registro não encontrado.")

	case httperr.IsBusiness(err, httperr.CodeSlotUnavailable):
		httperr.Conflict(c, httperr.CodeSlotUnavailable, "Horário não está mais disponível.")

	case httperr.IsBusiness(err, httperr.CodeInvalidTransition):
		httperr.BadRequest(c, httperr.CodeInvalidTransition, "Mudança de status não permitida.")

	case httperr.IsBusiness(err, httperr.CodeForbidden):
		httperr.Forbidden(c, httperr.CodeForbidden, "Sem permissão sobre este agendamento.")

	case httperr.IsBusiness(err, httperr.CodeInvalidTimeFormat):
		httperr.BadRequest(c, httperr.CodeInvalidTimeFormat, "Horário em formato inválido.")

	default:
		httperr.Internal(c, "internal_error", "Erro interno.")
	}
}
