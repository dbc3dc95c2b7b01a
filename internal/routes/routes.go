package routes

import (
	"doctor-appointment-server/internal/config"
	"doctor-appointment-server/internal/handlers"
	"doctor-appointment-server/internal/middleware"
	"doctor-appointment-server/internal/session"
	"doctor-appointment-server/internal/storage"

	"github.com/gin-gonic/gin"
)

// SetupRoutes configures the application routes.
func SetupRoutes(router *gin.Engine, store *storage.Store, sessions *session.Store, cfg *config.Config) {
	// Initialize handlers
	authHandler := handlers.NewAuthHandler(store, sessions, cfg)
	doctorHandler := handlers.NewDoctorHandler(store)
	appointmentHandler := handlers.NewAppointmentHandler(store)

	// Public routes (no session required)
	public := router.Group("/api")
	{
		public.POST("/login", authHandler.Login)
		public.POST("/logout", authHandler.Logout)
		public.GET("/auth/status", authHandler.Status)
		public.GET("/doctors", doctorHandler.GetDoctors)

		// Patients book without an account
		public.POST("/appointments", appointmentHandler.CreateAppointment)
	}

	// Doctor routes, gated behind a valid session
	private := router.Group("/api")
	private.Use(middleware.RequireSession(sessions))
	{
		private.GET("/appointments", appointmentHandler.GetAppointments)
		private.GET("/my-appointments", appointmentHandler.GetMyAppointments)
		private.GET("/appointments/doctor/:doctorId", appointmentHandler.GetAppointmentsByDoctor)
		private.GET("/appointments/date/:date", appointmentHandler.GetAppointmentsByDate)
		private.PATCH("/appointments/:id/status", appointmentHandler.UpdateAppointmentStatus)
		private.DELETE("/appointments/:id", appointmentHandler.DeleteAppointment)
	}

	// Simple health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "UP"})
	})
}
