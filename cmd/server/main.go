package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"smart-healthcare-backend/internal/config"
	"smart-healthcare-backend/internal/database"
	"smart-healthcare-backend/internal/geo"
	"smart-healthcare-backend/internal/handler"
	"smart-healthcare-backend/internal/middleware"
	"smart-healthcare-backend/internal/repository"
	"smart-healthcare-backend/internal/service"
	"smart-healthcare-backend/pkg/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	// 1. Load configuration
	cfg := config.LoadConfig()

	// 2. Initialize logger and JWT utilities
	utils.InitializeLogger()
	logger := utils.GetLogger()
	defer logger.Sync()

	utils.InitJWT(cfg.JWT.AccessSecret, cfg.JWT.AccessTokenExpiry)

	// 3. Initialize database connection and run migrations
	db := database.Connect(cfg)
	database.Migrate(db)

	// 4. Initialize repositories
	hospitalRepo := repository.NewHospitalRepo(db)
	doctorRepo := repository.NewDoctorRepo(db)
	patientRepo := repository.NewPatientRepo(db)
	appointmentRepo := repository.NewAppointmentRepo(db)
	auditRepo := repository.NewAuditRepo(db)

	// 5. Initialize services
	ledger := service.NewSlotLedger(appointmentRepo)
	appointmentService := service.NewAppointmentService(ledger, doctorRepo, patientRepo, auditRepo)
	locatorService := service.NewLocatorService(geo.NewIndex(hospitalRepo))
	hospitalService := service.NewHospitalService(hospitalRepo)
	doctorService := service.NewDoctorService(doctorRepo, hospitalRepo)

	// 6. Setup Gin mode
	gin.SetMode(cfg.Server.GinMode)

	// 7. Setup Gin router
	r := gin.Default()

	// Apply CORS middleware
	r.Use(middleware.CORS(cfg))

	// 8. Register handlers
	hospitalHandler := handler.NewHospitalHandler(hospitalService, locatorService)
	doctorHandler := handler.NewDoctorHandler(doctorService)
	appointmentHandler := handler.NewAppointmentHandler(appointmentService)

	// 9. Define routes
	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		utils.SuccessResponse(c, gin.H{
			"status":  "healthy",
			"service": "smart-healthcare-backend",
		})
	})

	api := r.Group("/api")
	{
		// Hospital discovery (public)
		api.GET("/hospitals", hospitalHandler.GetAllHospitals)
		api.GET("/hospitals/find-nearest", hospitalHandler.FindNearest)
		api.GET("/hospitals/:id", hospitalHandler.GetHospital)
		api.GET("/hospitals/:id/doctors", doctorHandler.ListDoctorsByHospital)

		// Doctor discovery (public)
		api.GET("/doctors", doctorHandler.ListDoctors)
		api.GET("/doctors/:id", doctorHandler.GetDoctor)

		// Appointments (authenticated patient)
		appointments := api.Group("")
		appointments.Use(middleware.AuthMiddleware())
		{
			appointments.POST("/appointments", appointmentHandler.Book)
			appointments.GET("/appointments", appointmentHandler.ListMyAppointments)
			appointments.GET("/appointments/:id", appointmentHandler.GetAppointment)
			appointments.PUT("/appointments/:id/cancel", appointmentHandler.Cancel)
			appointments.GET("/doctors/:id/appointments", appointmentHandler.ListDoctorAppointments)
		}
	}

	// 10. Setup graceful shutdown
	go func() {
		logger.Info("Server starting", zap.String("port", cfg.Server.Port))
		if err := r.Run(":" + cfg.Server.Port); err != nil {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Server exited")
}
