package routes

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-marketplace/internal/audit"
	"github.com/BruksfildServices01/barber-marketplace/internal/auth"
	"github.com/BruksfildServices01/barber-marketplace/internal/cache"
	"github.com/BruksfildServices01/barber-marketplace/internal/config"
	"github.com/BruksfildServices01/barber-marketplace/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-marketplace/internal/domain/catalog"
	"github.com/BruksfildServices01/barber-marketplace/internal/handlers"
	"github.com/BruksfildServices01/barber-marketplace/internal/middleware"
	ucAppointment "github.com/BruksfildServices01/barber-marketplace/internal/usecase/appointment"
	ucCatalog "github.com/BruksfildServices01/barber-marketplace/internal/usecase/catalog"
	ucPortfolio "github.com/BruksfildServices01/barber-marketplace/internal/usecase/portfolio"
)

// Deps are the long-lived collaborators the API is built from. A nil
// Objects store leaves the photo upload route unregistered.
type Deps struct {
	Config       *config.Config
	Log          *slog.Logger
	Appointments appointment.Repository
	Catalog      catalog.Repository
	AuditStore   audit.Store
	Audit        *audit.Dispatcher
	Cache        cache.Cache
	Objects      ucPortfolio.ObjectStore
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	cfg := d.Config

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.RequestLogger(d.Log))
	r.Use(middleware.CORSMiddleware(cfg.CORSOrigins))

	verifier := auth.NewVerifier(cfg.JWTSecret)
	requireAuth := middleware.AuthMiddleware(verifier)
	optionalAuth := middleware.OptionalAuth(verifier)
	bookingLimit := middleware.NewRateLimiter(cfg.BookingRatePerMinute)

	// ======================================================
	// USE CASES
	// ======================================================
	createAppointmentUC := ucAppointment.NewCreateAppointment(d.Appointments, d.Audit)
	listAppointmentsUC := ucAppointment.NewListAppointments(d.Appointments)
	updateStatusUC := ucAppointment.NewUpdateStatus(d.Appointments, d.Audit)
	statsUC := ucAppointment.NewGetBarberStats(d.Appointments)

	barbersUC := ucCatalog.NewBarbers(d.Catalog, d.Cache, cfg.CacheTTL, d.Audit, d.Log)
	servicesUC := ucCatalog.NewServices(d.Catalog, d.Cache, cfg.CacheTTL, d.Audit, d.Log)
	subscriptionsUC := ucCatalog.NewSubscriptions(d.Catalog, d.Cache, cfg.CacheTTL, d.Log)

	// ======================================================
	// HANDLERS
	// ======================================================
	appointmentHandler := handlers.NewAppointmentHandler(createAppointmentUC, listAppointmentsUC, updateStatusUC)
	barberHandler := handlers.NewBarberHandler(barbersUC, statsUC)
	serviceHandler := handlers.NewServiceHandler(servicesUC)
	subscriptionHandler := handlers.NewSubscriptionHandler(subscriptionsUC)
	auditLogsHandler := handlers.NewAuditLogsHandler(audit.New(d.AuditStore), barbersUC)

	// ======================================================
	// HEALTH
	// ======================================================
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")

	// ======================================================
	// PUBLIC
	// ======================================================
	api.GET("/barbers", barberHandler.List)
	api.GET("/barbers/:id", barberHandler.Get)
	api.GET("/barbers/:id/services", optionalAuth, serviceHandler.List)
	api.GET("/subscriptions", subscriptionHandler.List)

	// ======================================================
	// AUTHENTICATED
	// ======================================================
	private := api.Group("")
	private.Use(requireAuth)
	{
		private.POST("/barbers", barberHandler.Create)
		private.PUT("/barbers/:id", barberHandler.Update)
		private.GET("/barbers/:id/stats", barberHandler.Stats)
		private.POST("/barbers/:id/services", serviceHandler.Create)
		private.PATCH("/services/:id", serviceHandler.Update)

		private.GET("/me/barber", barberHandler.Mine)
		private.GET("/me/audit-logs", auditLogsHandler.List)

		private.GET("/appointments", appointmentHandler.List)
		private.POST("/appointments", bookingLimit.Middleware(), appointmentHandler.Create)
		private.PATCH("/appointments/:id/status", appointmentHandler.UpdateStatus)
	}

	// ======================================================
	// PORTFOLIO
	// ======================================================
	listPhotosUC := ucPortfolio.NewListPhotos(d.Catalog)
	if d.Objects != nil {
		uploadUC := ucPortfolio.NewUploadPhoto(d.Catalog, d.Objects, d.Audit, cfg.UploadMaxBytes)
		portfolioHandler := handlers.NewPortfolioHandler(uploadUC, listPhotosUC, cfg.UploadMaxBytes)
		api.GET("/barbers/:id/photos", portfolioHandler.List)
		private.POST("/barbers/:id/photos", portfolioHandler.Upload)
	} else {
		portfolioHandler := handlers.NewPortfolioHandler(nil, listPhotosUC, cfg.UploadMaxBytes)
		api.GET("/barbers/:id/photos", portfolioHandler.List)
	}
}
