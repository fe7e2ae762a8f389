package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"

	"github.com/studiosandyyasmin/salon-scheduler/internal/cache"
	"github.com/studiosandyyasmin/salon-scheduler/internal/config"
	"github.com/studiosandyyasmin/salon-scheduler/internal/handlers"
	"github.com/studiosandyyasmin/salon-scheduler/internal/history"
	infraRepo "github.com/studiosandyyasmin/salon-scheduler/internal/infra/repository"
	"github.com/studiosandyyasmin/salon-scheduler/internal/media"
	"github.com/studiosandyyasmin/salon-scheduler/internal/middleware"
	"github.com/studiosandyyasmin/salon-scheduler/internal/sweeper"
	ucAppointment "github.com/studiosandyyasmin/salon-scheduler/internal/usecase/appointment"
)

// Dependencies agrupa a infraestrutura construída no main e
// compartilhada com a varredura.
type Dependencies struct {
	History  *history.Dispatcher
	Cache    *cache.AvailabilityCache
	Uploader *media.Uploader
	Sweeper  *sweeper.Sweeper
}

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, deps Dependencies) {

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	scheduleRepo := infraRepo.NewScheduleGormRepository(db)

	// ======================================================
	// 🧠 USE CASES — APPOINTMENTS
	// ======================================================
	availabilityUC := ucAppointment.NewGetAvailability(scheduleRepo, deps.Cache)
	calendarUC := ucAppointment.NewGetCalendarMonth(scheduleRepo)

	createUC := ucAppointment.NewCreateAppointment(scheduleRepo, deps.History, deps.Cache)
	completeUC := ucAppointment.NewCompleteAppointment(scheduleRepo, deps.History)
	cancelUC := ucAppointment.NewCancelAppointment(scheduleRepo, deps.History, deps.Cache)
	rescheduleUC := ucAppointment.NewRescheduleAppointment(scheduleRepo, deps.History, deps.Cache)
	deleteUC := ucAppointment.NewDeleteAppointment(scheduleRepo, deps.Cache)

	listByDateUC := ucAppointment.NewListAppointmentsByDate(scheduleRepo)
	listByMonthUC := ucAppointment.NewListAppointmentsByMonth(scheduleRepo)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)

	publicHandler := handlers.NewPublicHandler(db, availabilityUC, calendarUC, createUC)

	appointmentHandler := handlers.NewAppointmentHandler(
		db,
		createUC,
		completeUC,
		cancelUC,
		rescheduleUC,
		deleteUC,
		listByDateUC,
		listByMonthUC,
	)

	professionalHandler := handlers.NewProfessionalHandler(db, deps.Uploader)
	serviceHandler := handlers.NewServiceHandler(db)
	clientHandler := handlers.NewClientHandler(db)
	blockHandler := handlers.NewBlockHandler(db)
	holidayHandler := handlers.NewHolidayHandler(db)
	templateHandler := handlers.NewTemplateHandler(db)
	historyHandler := handlers.NewHistoryHandler(db)
	sweepHandler := handlers.NewSweepHandler(deps.Sweeper)

	// ======================================================
	// 📈 OBSERVABILIDADE
	// ======================================================
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// 🌐 API PÚBLICA (fluxo de reserva)
		// ------------------------------
		publicAPI := api.Group("/public")
		{
			publicAPI.GET("/services", publicHandler.ListServices)
			publicAPI.GET("/professionals", publicHandler.ListProfessionals)
			publicAPI.GET("/calendar", publicHandler.Calendar)
			publicAPI.GET("/availability", publicHandler.Availability)
			publicAPI.POST("/appointments", publicHandler.CreateAppointment)
		}

		// ------------------------------
		// 🔐 AUTH
		// ------------------------------
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// 🔐 API PRIVADA (painel)
		// ------------------------------
		admin := api.Group("/admin")
		admin.Use(middleware.AuthMiddleware(cfg))
		{
			admin.GET("/me", meHandler.GetMe)

			// ------------------------------
			// APPOINTMENTS
			// ------------------------------
			admin.POST("/appointments", appointmentHandler.Create)
			admin.GET("/appointments", appointmentHandler.ListByDate)
			admin.GET("/appointments/month", appointmentHandler.ListByMonth)
			admin.PATCH("/appointments/:id/complete", appointmentHandler.Complete)
			admin.PATCH("/appointments/:id/cancel", appointmentHandler.Cancel)
			admin.PATCH("/appointments/:id/reschedule", appointmentHandler.Reschedule)
			admin.DELETE("/appointments/:id", appointmentHandler.Delete)
			admin.GET("/appointments/:id/history", appointmentHandler.History)

			// ------------------------------
			// CADASTROS
			// ------------------------------
			admin.GET("/professionals", professionalHandler.List)
			admin.POST("/professionals", professionalHandler.Create)
			admin.PATCH("/professionals/:id", professionalHandler.Update)
			admin.DELETE("/professionals/:id", professionalHandler.Delete)
			admin.POST("/professionals/:id/photo", professionalHandler.UploadPhoto)

			admin.GET("/services", serviceHandler.List)
			admin.POST("/services", serviceHandler.Create)
			admin.PATCH("/services/:id", serviceHandler.Update)
			admin.DELETE("/services/:id", serviceHandler.Delete)

			admin.GET("/clients", clientHandler.List)

			admin.GET("/blocks", blockHandler.List)
			admin.POST("/blocks", blockHandler.Create)
			admin.DELETE("/blocks/:id", blockHandler.Delete)

			admin.GET("/holidays", holidayHandler.List)
			admin.POST("/holidays", holidayHandler.Create)
			admin.DELETE("/holidays/:id", holidayHandler.Delete)

			admin.GET("/message-templates", templateHandler.List)
			admin.POST("/message-templates", templateHandler.Create)
			admin.PATCH("/message-templates/:id", templateHandler.Update)
			admin.DELETE("/message-templates/:id", templateHandler.Delete)

			admin.GET("/history", historyHandler.List)
			admin.POST("/sweeps/run", sweepHandler.Run)
		}
	}
}
