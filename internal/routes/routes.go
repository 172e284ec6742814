package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/ArielVinis/france-barbershop/internal/audit"
	"github.com/ArielVinis/france-barbershop/internal/cache"
	"github.com/ArielVinis/france-barbershop/internal/config"
	"github.com/ArielVinis/france-barbershop/internal/handlers"
	infraRepo "github.com/ArielVinis/france-barbershop/internal/infra/repository"
	"github.com/ArielVinis/france-barbershop/internal/middleware"
	ucBooking "github.com/ArielVinis/france-barbershop/internal/usecase/booking"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, rdb *redis.Client, cfg *config.Config) {

	// ======================================================
	// 🌍 MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db)
	slotCache := cache.NewSlotCache(rdb)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// 🧠 USE CASES — BOOKINGS
	// ======================================================
	availabilityUC := ucBooking.NewGetAvailability(bookingRepo, slotCache)

	createBookingUC := ucBooking.NewCreateBooking(
		bookingRepo,
		availabilityUC,
		slotCache,
		auditDispatcher,
	)

	transitionBookingUC := ucBooking.NewTransitionBooking(
		bookingRepo,
		auditDispatcher,
	)

	updateObservationsUC := ucBooking.NewUpdateObservations(bookingRepo)

	listBookingsByDateUC := ucBooking.NewListBookingsByDate(bookingRepo)

	ownerStatsUC := ucBooking.NewOwnerStats(bookingRepo)

	barberScheduleUC := ucBooking.NewGetBarberSchedule(bookingRepo)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)

	publicHandler := handlers.NewPublicHandler(db, availabilityUC)

	bookingHandler := handlers.NewBookingHandler(
		db,
		createBookingUC,
		transitionBookingUC,
		updateObservationsUC,
		listBookingsByDateUC,
	)

	scheduleHandler := handlers.NewScheduleHandler(db, slotCache, auditDispatcher)
	serviceHandler := handlers.NewServiceHandler(db)
	barberHandler := handlers.NewBarberHandler(db, slotCache, barberScheduleUC)
	dashboardHandler := handlers.NewDashboardHandler(ownerStatsUC)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// 🌐 API PÚBLICA
		// ------------------------------
		publicAPI := api.Group("/public")
		{
			publicAPI.GET("/barbershops", publicHandler.SearchBarbershops)
			publicAPI.GET("/barbershops/:slug", publicHandler.GetBarbershop)
			publicAPI.GET("/availability", publicHandler.Availability)
		}

		// ------------------------------
		// 🔐 AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/register-owner", authHandler.RegisterOwner)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// 🔐 API PRIVADA
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)

			// ------------------------------
			// BOOKINGS (cliente)
			// ------------------------------
			secured.POST("/bookings", bookingHandler.Create)
			secured.GET("/me/bookings", bookingHandler.ListMine)

			// ------------------------------
			// BOOKINGS (barbeiro / dono)
			// ------------------------------
			staff := secured.Group("/")
			staff.Use(middleware.RequireRole("barber", "owner"))
			{
				staff.PATCH("/bookings/:id/status", bookingHandler.Transition)
				staff.PATCH("/bookings/:id/observations", bookingHandler.UpdateObservations)
			}

			// ------------------------------
			// AGENDA DO BARBEIRO
			// ------------------------------
			barber := secured.Group("/me")
			barber.Use(middleware.RequireRole("barber"))
			{
				barber.GET("/agenda", bookingHandler.Agenda)

				barber.GET("/working-hours", scheduleHandler.GetBarberHours)
				barber.PUT("/working-hours", scheduleHandler.UpdateBarberHours)

				barber.GET("/breaks", scheduleHandler.ListBreaks)
				barber.POST("/breaks", scheduleHandler.CreateBreak)
				barber.DELETE("/breaks/:id", scheduleHandler.DeleteBreak)

				barber.GET("/blocked-slots", scheduleHandler.ListBlockedSlots)
				barber.POST("/blocked-slots", scheduleHandler.CreateBlockedSlot)
				barber.DELETE("/blocked-slots/:id", scheduleHandler.DeleteBlockedSlot)
			}

			// ------------------------------
			// GESTÃO DA BARBEARIA (dono)
			// ------------------------------
			owner := secured.Group("/me/barbershop")
			owner.Use(middleware.RequireRole("owner"))
			{
				owner.GET("/working-hours", scheduleHandler.GetShopHours)
				owner.PUT("/working-hours", scheduleHandler.UpdateShopHours)

				owner.GET("/services", serviceHandler.List)
				owner.POST("/services", serviceHandler.Create)
				owner.PATCH("/services/:id", serviceHandler.Update)
				owner.DELETE("/services/:id", serviceHandler.Delete)

				owner.GET("/barbers", barberHandler.List)
				owner.POST("/barbers", barberHandler.Create)
				owner.PATCH("/barbers/:id/active", barberHandler.ToggleActive)
				owner.DELETE("/barbers/:id", barberHandler.Delete)
				owner.GET("/barbers/:id/schedule", barberHandler.Schedule)

				owner.GET("/stats", dashboardHandler.Stats)
				owner.GET("/audit-logs", auditLogsHandler.List)
			}
		}
	}
}
