package controllers

import (
	"MediBook/handlers"
	"MediBook/middlewares"
	"MediBook/models"

	"github.com/gin-gonic/gin"
)

// SetupHospitalRoutes registers the public API plus the role-gated
// patient, doctor and admin surfaces.
func SetupHospitalRoutes(
	router *gin.Engine,
	doctorHandler *handlers.DoctorHandler,
	appointmentHandler *handlers.AppointmentHandler,
	availabilityHandler *handlers.AvailabilityHandler,
	adminHandler *handlers.AdminHandler,
) {
	// Public read-only JSON API
	router.GET("/api/doctors", doctorHandler.SearchDoctors)
	router.GET("/api/doctors/:doctor_id/availability", doctorHandler.GetAvailability)

	// Patient surface; admins may also cancel
	patientGroup := router.Group("/appointments").Use(middlewares.TokenAuthMiddleware())
	{
		patientGroup.POST("", middlewares.RoleAuthMiddleware(models.RolePatient), appointmentHandler.BookAppointment)
		patientGroup.GET("", middlewares.RoleAuthMiddleware(models.RolePatient), appointmentHandler.ListMyAppointments)
		patientGroup.POST("/:appointment_id/cancel",
			middlewares.RoleAuthMiddleware(models.RolePatient, models.RoleAdmin),
			appointmentHandler.CancelAppointment)
		patientGroup.POST("/:appointment_id/complete",
			middlewares.RoleAuthMiddleware(models.RoleDoctor),
			appointmentHandler.CompleteAppointment)
	}

	// Doctor surface
	doctorGroup := router.Group("/doctor").Use(
		middlewares.TokenAuthMiddleware(),
		middlewares.RoleAuthMiddleware(models.RoleDoctor),
	)
	{
		doctorGroup.GET("/schedule", availabilityHandler.GetSchedule)
		doctorGroup.POST("/availabilities", availabilityHandler.AddAvailability)
		doctorGroup.DELETE("/availabilities/:availability_id", availabilityHandler.DeleteAvailability)
	}

	// Admin surface
	adminGroup := router.Group("/admin").Use(
		middlewares.TokenAuthMiddleware(),
		middlewares.RoleAuthMiddleware(models.RoleAdmin),
	)
	{
		adminGroup.GET("/stats", adminHandler.GetStats)
		adminGroup.GET("/doctors", adminHandler.SearchDoctors)
		adminGroup.POST("/doctors", adminHandler.CreateDoctor)
		adminGroup.POST("/doctors/:doctor_id/blacklist", adminHandler.SetBlacklist)
	}
}
