package routes

import (
	"strategic-planning-backend/internal/admin"
	"strategic-planning-backend/internal/api/handlers"
	"strategic-planning-backend/internal/api/middleware"
	"strategic-planning-backend/internal/auth"
	"strategic-planning-backend/internal/config"
	"strategic-planning-backend/internal/logger"
	"strategic-planning-backend/internal/repository"
	"strategic-planning-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validator := validator.New()

	// Initialize repositories
	organizationRepo := repository.NewOrganizationRepository(db)
	organizationUserRepo := repository.NewOrganizationUserRepository(db)
	objectiveRepo := repository.NewStrategicObjectiveRepository(db)
	catalogRepo := repository.NewStrategyCatalogRepository(db)
	planRepo := repository.NewPlanRepository(db)
	teamDeskPlanRepo := repository.NewTeamDeskPlanRepository(db)
	reviewRepo := repository.NewTeamDeskPlanReviewRepository(db)
	adminRepo := repository.NewAdminRepository(db)

	// Initialize services
	organizationService := service.NewOrganizationService(organizationRepo, validator)
	objectiveService := service.NewStrategicObjectiveService(objectiveRepo, validator)
	planService := service.NewPlanService(planRepo, organizationRepo, objectiveRepo, validator)
	teamDeskPlanService := service.NewTeamDeskPlanService(service.TeamDeskPlanRepositories{
		Plans:      teamDeskPlanRepo,
		Reviews:    reviewRepo,
		Orgs:       organizationRepo,
		LeoEoPlans: planRepo,
		Members:    organizationUserRepo,
		Objectives: objectiveRepo,
		Catalog:    catalogRepo,
	}, validator)
	adminService := service.NewAdminService(admin.DefaultSite(), adminRepo, validator)

	tokenService := auth.NewTokenService(cfg.JWTSecret)
	authMiddleware := auth.NewAuthMiddleware(tokenService)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	authHandler := auth.NewAuthHandler(tokenService)
	organizationHandler := handlers.NewOrganizationHandler(organizationService)
	objectiveHandler := handlers.NewStrategicObjectiveHandler(objectiveService)
	planHandler := handlers.NewPlanHandler(planService)
	teamDeskPlanHandler := handlers.NewTeamDeskPlanHandler(teamDeskPlanService)
	adminHandler := handlers.NewAdminHandler(adminService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/api/v1")
	v1.POST("/auth/validate", authHandler.ValidateToken)

	// Every other API v1 endpoint is staff only
	api := v1.Group("")
	if cfg.AdminAuthEnabled {
		api.Use(authMiddleware.RequireStaff())
	} else {
		logger.New().Warn("Admin authentication is disabled; API endpoints are open")
	}

	{
		organizations := api.Group("/organizations")
		{
			organizations.GET("", organizationHandler.ListOrganizations)
			organizations.POST("", organizationHandler.CreateOrganization)
			organizations.GET("/:id", organizationHandler.GetOrganization)
			organizations.PUT("/:id", organizationHandler.UpdateOrganization)
			organizations.DELETE("/:id", organizationHandler.DeleteOrganization)
			organizations.GET("/:id/children", organizationHandler.GetOrganizationChildren)
		}

		objectives := api.Group("/strategic-objectives")
		{
			objectives.GET("", objectiveHandler.ListStrategicObjectives)
			objectives.POST("", objectiveHandler.CreateStrategicObjective)
			objectives.GET("/:id", objectiveHandler.GetStrategicObjective)
			objectives.PUT("/:id", objectiveHandler.UpdateStrategicObjective)
			objectives.DELETE("/:id", objectiveHandler.DeleteStrategicObjective)
		}

		plans := api.Group("/plans")
		{
			plans.GET("", planHandler.ListPlans) // Requires organization_id parameter
			plans.POST("", planHandler.CreatePlan)
			plans.GET("/:id", planHandler.GetPlan)
			plans.PUT("/:id/objectives", planHandler.SelectObjectives)
			plans.GET("/:id/objective-weights", planHandler.GetObjectiveWeights)
			plans.PUT("/:id/objective-weights", planHandler.SetObjectiveWeights)
			plans.POST("/:id/submit", planHandler.SubmitPlan)
		}

		teamDeskPlans := api.Group("/team-desk-plans")
		{
			teamDeskPlans.GET("", teamDeskPlanHandler.ListTeamDeskPlans)
			teamDeskPlans.POST("", teamDeskPlanHandler.CreateTeamDeskPlan)
			teamDeskPlans.GET("/:id", teamDeskPlanHandler.GetTeamDeskPlan)
			teamDeskPlans.PUT("/:id/content", teamDeskPlanHandler.UpdateTeamDeskPlanContent)
			teamDeskPlans.POST("/:id/submit", teamDeskPlanHandler.SubmitTeamDeskPlan)
			teamDeskPlans.POST("/:id/reviews", teamDeskPlanHandler.AddReview)
			teamDeskPlans.GET("/:id/reviews", teamDeskPlanHandler.ListReviews)
		}

		adminGroup := api.Group("/admin")
		{
			adminGroup.GET("", adminHandler.ListEntities)
			adminGroup.GET("/:entity", adminHandler.List)
			adminGroup.POST("/:entity", adminHandler.Create)
			adminGroup.GET("/:entity/:id", adminHandler.Get)
			adminGroup.PUT("/:entity/:id", adminHandler.Update)
			adminGroup.DELETE("/:entity/:id", adminHandler.Delete)
			adminGroup.POST("/:entity/:id/inlines/:inline", adminHandler.CreateInline)
		}
	}

	// Catch-all route for undefined endpoints
	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{
			"error":      "Endpoint not found",
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": c.GetString("request_id"),
		})
	})

	return router
}

// SetupHealthRoutes sets up only health check routes (useful for testing)
func SetupHealthRoutes(db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())

	healthHandler := handlers.NewHealthHandler(db)
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	return router
}
