package db

import (
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/ArielVinis/france-barbershop/internal/config"
	"github.com/ArielVinis/france-barbershop/internal/models"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.User{},
		&models.Barbershop{},
		&models.Barber{},
		&models.Service{},
		&models.WorkingHours{},
		&models.Break{},
		&models.BlockedSlot{},
		&models.Booking{},
		&models.AuditLog{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	// Índice único parcial: fecha a corrida de criação no mesmo horário,
	// mas deixa reagendar slots liberados por cancelamento/no-show.
	if err := db.Exec(`
        CREATE UNIQUE INDEX IF NOT EXISTS idx_booking_barber_date
        ON bookings (barber_id, date)
        WHERE status NOT IN ('CANCELLED', 'NO_SHOW')
    `).Error; err != nil {
		log.Fatalf("failed to create booking index: %v", err)
	}

	return db
}
