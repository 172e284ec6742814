package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	domain "github.com/ArielVinis/france-barbershop/internal/domain/booking"
	"github.com/ArielVinis/france-barbershop/internal/httperr"
	"github.com/ArielVinis/france-barbershop/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// Status que ainda seguram o horário na agenda: cancelamento e
// no-show liberam o slot para reagendamento.
var blockingStatuses = []string{
	string(domain.StatusConfirmed),
	string(domain.StatusInProgress),
	string(domain.StatusFinished),
}

// --------------------------------------------------
// Barber / Service
// --------------------------------------------------

func (r *BookingGormRepository) GetBarber(
	ctx context.Context,
	id uint,
) (*models.Barber, error) {

	var barber models.Barber
	if err := r.db.WithContext(ctx).
		Where("id = ? AND active = true", id).
		First(&barber).Error; err != nil {
		return nil, err
	}
	return &barber, nil
}

func (r *BookingGormRepository) GetService(
	ctx context.Context,
	id uint,
) (*models.Service, error) {

	var service models.Service
	if err := r.db.WithContext(ctx).First(&service, id).Error; err != nil {
		return nil, err
	}
	return &service, nil
}

// --------------------------------------------------
// Agenda (expediente, pausas, bloqueios)
// --------------------------------------------------

func (r *BookingGormRepository) ListWorkingHours(
	ctx context.Context,
	ownerID uint,
	ownerKind string,
) ([]models.WorkingHours, error) {

	var hours []models.WorkingHours
	if err := r.db.WithContext(ctx).
		Where("owner_id = ? AND owner_kind = ?", ownerID, ownerKind).
		Order("weekday ASC").
		Find(&hours).Error; err != nil {
		return nil, err
	}
	return hours, nil
}

func (r *BookingGormRepository) ListBreaks(
	ctx context.Context,
	barberID uint,
) ([]models.Break, error) {

	var breaks []models.Break
	if err := r.db.WithContext(ctx).
		Where("barber_id = ?", barberID).
		Order("weekday ASC, start_time ASC").
		Find(&breaks).Error; err != nil {
		return nil, err
	}
	return breaks, nil
}

func (r *BookingGormRepository) ListBlockedSlots(
	ctx context.Context,
	barberID uint,
) ([]models.BlockedSlot, error) {

	var blocked []models.BlockedSlot
	if err := r.db.WithContext(ctx).
		Where("barber_id = ?", barberID).
		Order("start_at ASC").
		Find(&blocked).Error; err != nil {
		return nil, err
	}
	return blocked, nil
}

// --------------------------------------------------
// Booking
// --------------------------------------------------

func (r *BookingGormRepository) ListBookings(
	ctx context.Context,
	barberID uint,
	start time.Time,
	end time.Time,
) ([]models.Booking, error) {

	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Select("id", "barber_id", "service_id", "date", "status").
		Where(
			"barber_id = ? AND status IN ? AND date >= ? AND date < ?",
			barberID, blockingStatuses, start, end,
		).
		Order("date ASC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *BookingGormRepository) CreateBooking(
	ctx context.Context,
	bk *models.Booking,
) error {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(bk).Error
	})

	// O índice único parcial (barber_id, date) é quem decide corridas
	// entre criações concorrentes do mesmo horário.
	if isUniqueViolation(err) {
		return httperr.ErrBusiness(httperr.CodeSlotUnavailable)
	}
	return err
}

func (r *BookingGormRepository) GetBooking(
	ctx context.Context,
	id uint,
) (*models.Booking, error) {

	var bk models.Booking
	if err := r.db.WithContext(ctx).First(&bk, id).Error; err != nil {
		return nil, err
	}
	return &bk, nil
}

func (r *BookingGormRepository) UpdateBooking(
	ctx context.Context,
	bk *models.Booking,
) error {
	return r.db.WithContext(ctx).Save(bk).Error
}

// --------------------------------------------------
// Listagens / dashboard
// --------------------------------------------------

func (r *BookingGormRepository) ListBookingsDetailed(
	ctx context.Context,
	barberID uint,
	start time.Time,
	end time.Time,
) ([]models.Booking, error) {

	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Service").
		Where(
			"barber_id = ? AND date >= ? AND date < ?",
			barberID, start, end,
		).
		Order("date ASC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *BookingGormRepository) ListShopBookings(
	ctx context.Context,
	barbershopID uint,
	start time.Time,
	end time.Time,
) ([]models.Booking, error) {

	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Preload("Service").
		Joins("JOIN services ON services.id = bookings.service_id").
		Where(
			"services.barbershop_id = ? AND bookings.date >= ? AND bookings.date < ?",
			barbershopID, start, end,
		).
		Order("bookings.date ASC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *BookingGormRepository) CountActiveBarbers(
	ctx context.Context,
	barbershopID uint,
) (int64, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Barber{}).
		Where("barbershop_id = ? AND active = true", barbershopID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
