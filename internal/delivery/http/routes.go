package http

import (
	"github.com/gin-gonic/gin"

	"github.com/nutrilens/backend/config"
)

// SetupRouter creates and configures the Gin router
func SetupRouter(cfg *config.Config, handler *Handler) *gin.Engine {
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Global middleware
	router.Use(RecoveryMiddleware())
	router.Use(LoggerMiddleware())
	router.Use(CORSMiddleware(cfg.Server.AllowedOrigins))
	router.Use(UserMiddleware())

	// Health check endpoint
	router.GET("/health", handler.HealthCheck)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		foods := v1.Group("/foods")
		{
			foods.POST("/search", handler.SearchFoods)
			foods.GET("/:id", handler.GetFood)
			foods.POST("/custom", handler.CreateCustomFood)
		}

		logs := v1.Group("/logs")
		{
			logs.POST("", handler.AddLogs)
			logs.GET("", handler.ListLogs)
			logs.DELETE("/:id", handler.DeleteLog)
		}

		nutrition := v1.Group("/nutrition")
		{
			nutrition.GET("/daily", handler.DailyNutrition)
		}

		goals := v1.Group("/goals")
		{
			goals.GET("", handler.GetGoals)
			goals.PUT("", handler.UpdateGoal)
			goals.POST("/macros", handler.ApplyMacroGoals)
			goals.POST("/macros/rebalance", handler.RebalanceMacros)
		}

		v1.POST("/profile/metrics", handler.CalculateMetrics)
	}

	return router
}
