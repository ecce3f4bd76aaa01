package routes

import (
	"MediBook/cache"
	"MediBook/config"
	"MediBook/controllers"
	"MediBook/handlers"
	"MediBook/middlewares"
	"MediBook/repositories"
	"MediBook/services"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRoutes initializes the routes and middleware for the server
func SetupRoutes(cache *cache.Cache, cfg *config.AppConfig, db *gorm.DB) http.Handler {
	// Set Gin to release mode
	gin.SetMode(gin.ReleaseMode)

	router := gin.Default()

	// Create and apply CORS middleware configuration
	corsConfig := &middlewares.CorsConfig{
		AllowedOrigins:   []string{"http://localhost:3000", "https://www.medibook.example"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}
	router.Use(middlewares.CorsMiddleware(corsConfig))

	// Apply rate limiter middleware
	router.Use(middlewares.NewRateLimiterMiddleware(middlewares.RateLimiterConfig{
		RequestsPerSecond: 15,
		Burst:             30,
	}))

	// Apply logging middleware
	router.Use(middlewares.LoggingMiddleware())

	// Initialize repositories, services, and handlers
	userRepo := repositories.NewUserRepository(db, cache)
	doctorRepo := repositories.NewDoctorRepository(db, cache)
	patientRepo := repositories.NewPatientRepository(db)
	availabilityRepo := repositories.NewAvailabilityRepository(db)
	appointmentRepo := repositories.NewAppointmentRepository(db, cache)
	treatmentRepo := repositories.NewTreatmentRepository(db)

	notifier := services.NewNotifier(func(m services.Mail) error {
		return services.SendWithConfig(cfg.Mail, m)
	})

	authService := services.NewAuthService(userRepo, patientRepo)
	doctorService := services.NewDoctorService(doctorRepo, availabilityRepo, appointmentRepo)
	bookingService := services.NewBookingService(doctorRepo, patientRepo, availabilityRepo, appointmentRepo, userRepo, notifier)
	appointmentService := services.NewAppointmentService(appointmentRepo, patientRepo)
	treatmentService := services.NewTreatmentService(appointmentRepo, treatmentRepo)
	statsService := services.NewStatsService(doctorRepo, patientRepo, appointmentRepo)

	authHandler := handlers.NewAuthHandler(authService, notifier)
	doctorHandler := handlers.NewDoctorHandler(doctorService)
	appointmentHandler := handlers.NewAppointmentHandler(bookingService, appointmentService, treatmentService, doctorService)
	availabilityHandler := handlers.NewAvailabilityHandler(doctorService)
	adminHandler := handlers.NewAdminHandler(statsService, doctorService)

	// Register routes
	controllers.SetupHospitalRoutes(router, doctorHandler, appointmentHandler, availabilityHandler, adminHandler)

	authController := controllers.NewAuthController(authHandler)
	authController.RegisterRoutes(router)

	controllers.SetupRootRoute(router)

	return router
}
