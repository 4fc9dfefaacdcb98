package handlers

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"lead-management-api/internal/config"
	"lead-management-api/internal/middleware"
	"lead-management-api/internal/services"
)

// RouterConfig holds configuration for setting up routes
type RouterConfig struct {
	LeadService     services.LeadService
	InterestService services.InterestService
	FormService     services.FormService
	AuthService     *middleware.AuthService
	AuthConfig      *config.AuthConfig
}

// SetupRoutes configures all API routes. Every endpoint is gated by the
// configured authorizer except the public lead form, which is rate limited
// instead.
func SetupRoutes(router *gin.Engine, config *RouterConfig) {
	// Create handlers
	leadHandler := NewLeadHandler(config.LeadService)
	interestHandler := NewInterestHandler(config.InterestService)
	formHandler := NewFormHandler(config.FormService)

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"service": "lead-management-api",
			"version": "1.0.0",
		})
	})

	// Protected routes
	protected := router.Group("")
	protected.Use(middleware.Authentication(config.AuthService, config.AuthConfig))
	{
		lead := protected.Group("/lead")
		{
			lead.POST("/create", leadHandler.CreateLead)
			lead.GET("", leadHandler.GetLead)
			lead.POST("", leadHandler.GetLead)
			lead.POST("/list", leadHandler.ListLeads)
			lead.POST("/update", leadHandler.UpdateLead)
		}

		interest := protected.Group("/interest")
		{
			interest.POST("/create", interestHandler.CreateInterest)
			interest.GET("", interestHandler.GetInterest)
			interest.POST("", interestHandler.GetInterest)
			interest.POST("/update", interestHandler.UpdateInterest)
			interest.POST("/delete", interestHandler.DeleteInterest)
		}
	}

	// Public form routes
	form := router.Group("/form")
	form.Use(middleware.RateLimiter(5, 10))
	{
		form.POST("/lead-form", formHandler.SubmitLeadForm)
	}
}

// SetupMiddleware configures global middleware
func SetupMiddleware(router *gin.Engine) {
	router.Use(middleware.CORS())
	router.Use(middleware.RequestLogger())
}
