package routes

import (
	"github.com/gin-gonic/gin"

	"teleconsult-server/internal/handlers"
	"teleconsult-server/internal/llm"
	"teleconsult-server/internal/services"
	"teleconsult-server/internal/store"
)

// SetupRoutes configures the application routes, building the services and
// handlers from the stores and the LLM collaborator client.
func SetupRoutes(router *gin.Engine, tenants *store.TenantStore, doctors *store.DoctorStore, sessions *store.SessionStore, llmClient llm.Client) {
	matcher := services.NewMatchingEngine(doctors)
	consultationService := services.NewConsultationService(tenants, matcher, sessions, llmClient)
	prescriptionService := services.NewPrescriptionService(llmClient)

	tenantHandler := handlers.NewTenantHandler(tenants, doctors)
	doctorHandler := handlers.NewDoctorHandler(doctors, sessions)
	consultationHandler := handlers.NewConsultationHandler(consultationService, prescriptionService, sessions)

	api := router.Group("/api/v1")
	{
		tenantRoutes := api.Group("/tenants")
		{
			tenantRoutes.GET("", tenantHandler.ListTenants)
			tenantRoutes.POST("", tenantHandler.CreateTenant)
			tenantRoutes.GET("/:id", tenantHandler.GetTenant)
			tenantRoutes.GET("/:id/doctors", tenantHandler.ListTenantDoctors)
		}

		doctorRoutes := api.Group("/doctors")
		{
			doctorRoutes.POST("", doctorHandler.CreateDoctor)
			doctorRoutes.PATCH("/:id/online", doctorHandler.ToggleOnline)
			doctorRoutes.GET("/:id/consultations", doctorHandler.ListActiveConsultations)
		}

		consultationRoutes := api.Group("/consultations")
		{
			consultationRoutes.POST("", consultationHandler.StartConsultation)
			consultationRoutes.GET("/:id", consultationHandler.GetConsultation)
			consultationRoutes.POST("/:id/messages", consultationHandler.SendMessage)
			consultationRoutes.GET("/:id/messages", consultationHandler.ListMessages)
			consultationRoutes.POST("/:id/complete", consultationHandler.CompleteConsultation)
			consultationRoutes.POST("/:id/cancel", consultationHandler.CancelConsultation)
			consultationRoutes.POST("/:id/prescription", consultationHandler.GeneratePrescription)
		}
	}

	// Simple health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "UP"})
	})
}
