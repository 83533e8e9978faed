package routes

import (
	"time"

	"github.com/gin-gonic/gin"

	"internship-noc-api/controllers"
	"internship-noc-api/middleware"
	"internship-noc-api/models"
)

func SetupRoutes(router *gin.Engine) {
	// API v1 group
	v1 := router.Group("/api/v1")
	{
		// Public routes
		public := v1.Group("")
		{
			// Student intake
			public.POST("/submissions", controllers.SubmitApplication)

			// Per-portal logins
			loginLimit := middleware.LoginRateLimit(10, time.Minute)
			public.POST("/reviewer/login", loginLimit, controllers.Login(models.RoleReviewer))
			public.POST("/hod/login", loginLimit, controllers.Login(models.RoleHOD))
			public.POST("/admin/login", loginLimit, controllers.Login(models.RoleAdmin))

			// Health check
			public.GET("/health", func(c *gin.Context) {
				c.JSON(200, gin.H{
					"status":  "ok",
					"message": "Internship NOC API is running",
				})
			})
		}

		// Protected routes (require authentication)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware())
		{
			protected.GET("/profile", controllers.GetProfile)

			// Reviewer stage
			reviewer := protected.Group("/reviewer", middleware.RequireRole(models.RoleReviewer))
			{
				reviewer.GET("/submissions", controllers.GetReviewerSubmissions)
				reviewer.POST("/decision", controllers.ReviewerDecision)
			}

			// HOD stage
			hod := protected.Group("/hod", middleware.RequireRole(models.RoleHOD))
			{
				hod.GET("/submissions", controllers.GetHODSubmissions)
				hod.POST("/decision", controllers.HODDecision)
			}

			// Admin account management
			admin := protected.Group("/admin", middleware.RequireRole(models.RoleAdmin))
			{
				admin.GET("/hods", controllers.ListAccounts(models.RoleHOD))
				admin.POST("/hods", controllers.CreateAccount(models.RoleHOD))
				admin.GET("/spcs", controllers.ListAccounts(models.RoleReviewer))
				admin.POST("/spcs", controllers.CreateAccount(models.RoleReviewer))
			}

			// Stored attachments
			documents := protected.Group("/documents",
				middleware.RequireRole(models.RoleReviewer, models.RoleHOD))
			{
				documents.GET("/:id/download", controllers.DownloadDocument)
			}
		}
	}
}
