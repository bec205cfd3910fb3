package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/bellasalon/booking-api/internal/cache"
	"github.com/bellasalon/booking-api/internal/config"
	"github.com/bellasalon/booking-api/internal/feed"
	"github.com/bellasalon/booking-api/internal/handlers"
	infraRepo "github.com/bellasalon/booking-api/internal/infra/repository"
	"github.com/bellasalon/booking-api/internal/middleware"
	"github.com/bellasalon/booking-api/internal/notify"
	ucBooking "github.com/bellasalon/booking-api/internal/usecase/booking"
	ucIdentity "github.com/bellasalon/booking-api/internal/usecase/identity"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	cfg *config.Config,
	hub *feed.Hub,
	dispatcher *notify.Dispatcher,
) {

	// ======================================================
	// 🔧 INFRA
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db)
	userRepo := infraRepo.NewUserGormRepository(db)

	publisher := feed.NewPublisher(hub, bookingRepo)
	serviceCache := cache.NewServiceCache(cfg)

	// ======================================================
	// 🧠 USE CASES
	// ======================================================
	createBookingUC := ucBooking.NewCreateBooking(bookingRepo, publisher)
	revokeBookingUC := ucBooking.NewRevokeBooking(bookingRepo, publisher)
	listBookingsUC := ucBooking.NewListBookings(bookingRepo)

	identityService := ucIdentity.NewService(userRepo, dispatcher, cfg.AppURL)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(identityService, cfg)
	bookingHandler := handlers.NewBookingHandler(
		createBookingUC,
		revokeBookingUC,
		listBookingsUC,
		userRepo,
	)
	serviceHandler := handlers.NewServiceHandler(bookingRepo, serviceCache)
	eventsHandler := handlers.NewEventsHandler(hub)

	// ======================================================
	// 🌐 FEED (SSE)
	// ======================================================
	r.GET("/events", eventsHandler.Stream)

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// 🌐 PÚBLICO
		// ------------------------------
		api.GET("/services", serviceHandler.List)

		api.POST("/register", authHandler.Register)
		api.POST("/login", authHandler.Login)
		api.POST("/resend-verification", authHandler.ResendVerification)
		api.GET("/verify", authHandler.Verify)
		api.POST("/password-reset-request", authHandler.RequestPasswordReset)
		api.POST("/password-reset", authHandler.CompletePasswordReset)

		// ------------------------------
		// 🔐 RESERVAS
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/bookings", bookingHandler.List)
			secured.POST("/bookings", bookingHandler.Create)
			secured.DELETE("/bookings/:id", bookingHandler.Cancel)
		}
	}
}
