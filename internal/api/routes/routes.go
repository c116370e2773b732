package routes

import (
	"property-portal-backend/internal/api/handlers"
	"property-portal-backend/internal/api/middleware"
	"property-portal-backend/internal/auth"
	"property-portal-backend/internal/config"
	"property-portal-backend/internal/repository"
	"property-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))
	router.Use(middleware.Metrics())

	// Initialize validator
	validator := validator.New()

	// Initialize repositories
	propertyRepo := repository.NewPropertyRepository(db)
	tenantRepo := repository.NewTenantRepository(db)
	noteRepo := repository.NewNoteRepository(db)
	documentRepo := repository.NewDocumentRepository(db)

	// Initialize services
	tenantService := service.NewTenantService(tenantRepo, noteRepo, validator)
	propertyService := service.NewPropertyService(propertyRepo, tenantRepo, validator)
	noteService := service.NewNoteService(noteRepo, tenantRepo)
	documentService := service.NewDocumentService(documentRepo, cfg.UploadDir)
	repairService := service.NewRepairService(tenantRepo, propertyRepo)

	webflowFields, err := service.LoadWebflowFieldMap("config/webflow.yaml")
	if err != nil {
		logrus.Warnf("Failed to load Webflow field map, using defaults: %v", err)
	}
	webflowService := service.NewWebflowService(cfg, webflowFields)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	tenantHandler := handlers.NewTenantHandler(tenantService)
	propertyHandler := handlers.NewPropertyHandler(propertyService)
	noteHandler := handlers.NewNoteHandler(noteService)
	documentHandler := handlers.NewDocumentHandler(documentService)
	repairHandler := handlers.NewRepairHandler(repairService)
	webflowHandler := handlers.NewWebflowHandler(webflowService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Prometheus metrics
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Admin gate for maintenance and CMS mutation routes
	requireAdmin := auth.RequireAdmin(cfg.AdminSecret)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Tenant routes
		tenants := v1.Group("/tenants")
		{
			tenants.GET("", tenantHandler.ListTenants)
			tenants.POST("", tenantHandler.CreateTenant)
			tenants.DELETE("/:id", tenantHandler.ArchiveTenant)
			tenants.GET("/:id/notes", noteHandler.ListTenantNotes)
			tenants.POST("/:id/notes", noteHandler.CreateTenantNote)
		}

		// Note routes
		v1.DELETE("/notes/:id", noteHandler.DeleteNote)

		// Property routes
		properties := v1.Group("/properties")
		{
			properties.GET("", propertyHandler.ListProperties)
			properties.POST("", propertyHandler.CreateProperty)
			properties.DELETE("/:id", propertyHandler.DeleteProperty)
		}

		// Document routes
		documents := v1.Group("/documents")
		{
			documents.GET("", documentHandler.ListDocuments)
			documents.POST("", documentHandler.UploadDocument)
		}

		// Admin maintenance routes
		repair := v1.Group("/repair", requireAdmin)
		{
			repair.POST("/tenant-property-ids", repairHandler.RepairTenantPropertyIDs)
		}

		// Webflow CMS mirror routes; reads are open, mutations admin-gated
		webflow := v1.Group("/webflow")
		{
			webflow.GET("/properties", webflowHandler.ListProperties)
			webflow.POST("/properties", requireAdmin, webflowHandler.CreateProperty)
			webflow.DELETE("/properties/:id", requireAdmin, webflowHandler.DeleteProperty)
			webflow.POST("/properties/bulk-update", requireAdmin, webflowHandler.BulkUpdate)
		}
	}

	return router
}
