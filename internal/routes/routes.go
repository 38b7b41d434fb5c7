package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/garagedesk/garage-scheduler/internal/audit"
	"github.com/garagedesk/garage-scheduler/internal/config"
	"github.com/garagedesk/garage-scheduler/internal/handlers"
	infraRepo "github.com/garagedesk/garage-scheduler/internal/infra/repository"
	"github.com/garagedesk/garage-scheduler/internal/middleware"
	"github.com/garagedesk/garage-scheduler/internal/store/notify"
	"github.com/garagedesk/garage-scheduler/internal/store/treestore"
	ucAppointment "github.com/garagedesk/garage-scheduler/internal/usecase/appointment"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, rdb *redis.Client, cfg *config.Config) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	tree := treestore.NewRedisStore(rdb)
	bus := notify.NewRedisBus(rdb)

	userRepo := infraRepo.NewUserTreeRepository(tree)
	clientRepo := infraRepo.NewClientTreeRepository(tree, bus)
	serviceRepo := infraRepo.NewServiceGormRepository(db, bus)
	chatRepo := infraRepo.NewChatGormRepository(db, bus)
	appointmentRepo := infraRepo.NewAppointmentRepository(db, userRepo, clientRepo, serviceRepo)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// USE CASES — APPOINTMENTS
	// ======================================================
	createAppointmentUC := ucAppointment.NewCreateAppointment(
		appointmentRepo,
		auditDispatcher,
	)

	deleteAppointmentUC := ucAppointment.NewDeleteAppointment(
		appointmentRepo,
		auditDispatcher,
	)

	listAppointmentsByDateUC := ucAppointment.NewListAppointmentsByDate(
		appointmentRepo,
	)

	listAppointmentsByMonthUC := ucAppointment.NewListAppointmentsByMonth(
		appointmentRepo,
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(userRepo, cfg)
	meHandler := handlers.NewMeHandler(userRepo)
	clientHandler := handlers.NewClientHandler(clientRepo)
	serviceHandler := handlers.NewServiceHandler(serviceRepo)
	chatHandler := handlers.NewChatHandler(chatRepo)

	appointmentHandler := handlers.NewAppointmentHandler(
		createAppointmentUC,
		deleteAppointmentUC,
		listAppointmentsByDateUC,
		listAppointmentsByMonthUC,
	)

	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// PRIVATE API
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)
			secured.PATCH("/me", meHandler.UpdateMe)
			secured.DELETE("/me", meHandler.DeleteMe)

			secured.GET("/me/clients", clientHandler.List)
			secured.POST("/me/clients", clientHandler.Create)
			secured.GET("/me/clients/:id", clientHandler.Get)
			secured.PUT("/me/clients/:id", clientHandler.Update)
			secured.DELETE("/me/clients/:id", clientHandler.Delete)

			secured.GET("/me/services", serviceHandler.List)
			secured.POST("/me/services", serviceHandler.Create)
			secured.GET("/me/services/:id", serviceHandler.Get)
			secured.PUT("/me/services/:id", serviceHandler.Update)
			secured.DELETE("/me/services/:id", serviceHandler.Delete)

			// ------------------------------
			// APPOINTMENTS
			// ------------------------------
			secured.POST("/me/appointments", appointmentHandler.Create)
			secured.GET("/me/appointments", appointmentHandler.ListByDate)
			secured.GET("/me/appointments/month", appointmentHandler.ListByMonth)
			secured.DELETE("/me/appointments/:id", appointmentHandler.Delete)

			// ------------------------------
			// CHAT
			// ------------------------------
			secured.GET("/me/chat/:participant", chatHandler.Conversation)
			secured.POST("/me/chat/:participant", chatHandler.Send)
			secured.PATCH("/me/chat/messages/:id/read", chatHandler.MarkRead)

			secured.GET("/me/audit-logs", auditLogsHandler.List)
		}
	}
}
