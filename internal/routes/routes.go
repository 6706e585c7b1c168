package routes

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-booking/internal/audit"
	"github.com/BruksfildServices01/salon-booking/internal/config"
	"github.com/BruksfildServices01/salon-booking/internal/handlers"
	infraRepo "github.com/BruksfildServices01/salon-booking/internal/infra/repository"
	"github.com/BruksfildServices01/salon-booking/internal/middleware"
	"github.com/BruksfildServices01/salon-booking/internal/notify"
	"github.com/BruksfildServices01/salon-booking/internal/payments"
	ucBooking "github.com/BruksfildServices01/salon-booking/internal/usecase/booking"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	cfg *config.Config,
	paymentsClient payments.Client,
	notifier notify.Notifier,
	log *zap.Logger,
) {

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger, log)

	// ======================================================
	// 🧩 USE CASES
	// ======================================================
	getAvailabilityUC := ucBooking.NewGetAvailability(bookingRepo)

	createBookingUC := ucBooking.NewCreateBooking(
		bookingRepo,
		paymentsClient,
		cfg.MaxSlotsPerDay,
		cfg.SalonTimezone,
	)

	confirmBookingUC := ucBooking.NewConfirmBooking(
		bookingRepo,
		notifier,
		auditDispatcher,
		log,
		cfg.MaxSlotsPerDay,
		cfg.SalonTimezone,
	)

	unavailableDatesUC := ucBooking.NewListUnavailableDates(
		bookingRepo,
		cfg.MaxSlotsPerDay,
		cfg.SalonTimezone,
	)

	purgePastDatesUC := ucBooking.NewPurgePastDates(bookingRepo, cfg.SalonTimezone)
	purgePastBookingsUC := ucBooking.NewPurgePastBookings(bookingRepo, cfg.SalonTimezone)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)

	bookingHandler := handlers.NewBookingHandler(
		cfg,
		getAvailabilityUC,
		createBookingUC,
		unavailableDatesUC,
		notifier,
	)

	webhookHandler := handlers.NewWebhookHandler(
		cfg,
		paymentsClient,
		confirmBookingUC,
		log,
	)

	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	adminHandler := handlers.NewAdminHandler(
		cfg,
		bookingRepo,
		auditDispatcher,
		unavailableDatesUC,
		purgePastDatesUC,
		purgePastBookingsUC,
	)

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
			publicAPI.GET("/availability", bookingHandler.CheckAvailability)
			publicAPI.GET("/unavailable-dates", bookingHandler.UnavailableDates)
			publicAPI.POST("/bookings", bookingHandler.CreateBooking)
			publicAPI.POST("/contact", bookingHandler.SendMessage)
		}

		// ------------------------------
		// 💳 WEBHOOK DE PAGAMENTO
		// ------------------------------
		api.POST("/webhook/payments", webhookHandler.HandlePaymentEvent)

		// ------------------------------
		// 🔐 AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)
		api.POST("/auth/reset-password", middleware.AuthMiddleware(cfg), authHandler.ResetPassword)

		// ------------------------------
		// 🔐 ADMIN
		// ------------------------------
		admin := api.Group("/admin")
		admin.Use(middleware.AuthMiddleware(cfg))
		{
			admin.POST("/unavailable-dates", adminHandler.SetUnavailableDates)
			admin.GET("/unavailable-dates", adminHandler.GetUnavailableDates)
			admin.DELETE("/unavailable-dates", adminHandler.RemoveUnavailableDate)
			admin.POST("/unavailable-dates/purge-past", adminHandler.RemovePastUnavailableDates)

			admin.GET("/bookings", adminHandler.ListBookings)
			admin.DELETE("/bookings/:id", adminHandler.DeleteBooking)
			admin.POST("/bookings/purge-past", adminHandler.RemovePastBookings)

			admin.GET("/audit-logs", auditLogsHandler.List)
		}
	}
}
