package router

import (
	"saas-landing-api/internal/adapter/gin/handler"
	"saas-landing-api/internal/adapter/gin/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SetupRouter configures and returns a Gin router with all routes and middleware
func SetupRouter(
	authHandler *handler.AuthHandler,
	catalogHandler *handler.CatalogHandler,
	systemHandler *handler.SystemHandler,
	log *zap.Logger,
) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Global middleware
	router.Use(middleware.Recovery(log))
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(log))
	router.Use(middleware.CORS())

	// Liveness and diagnostics
	router.GET("/", systemHandler.Root)
	router.GET("/health", systemHandler.Health)
	router.GET("/test", systemHandler.Diagnostics)

	// Pricing catalog
	router.GET("/pricing", catalogHandler.Pricing)

	// Authentication
	authGroup := router.Group("/auth")
	{
		authGroup.POST("/signup", authHandler.Signup)
		authGroup.POST("/login", authHandler.Login)
	}

	return router
}
