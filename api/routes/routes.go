package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/loterialab/sorteos-backend/internal/config"
	"github.com/loterialab/sorteos-backend/internal/handlers"
	"github.com/loterialab/sorteos-backend/internal/middleware"
)

// HandlerDependencies collects the handlers the router wires up.
type HandlerDependencies struct {
	DrawHandler    *handlers.DrawHandler
	FeatureHandler *handlers.FeatureHandler
	HistoryHandler *handlers.HistoryHandler
	StatsHandler   *handlers.StatsHandler
	ScrapeHandler  *handlers.ScrapeHandler
	AuthHandler    *handlers.AuthHandler
}

// SetupRouter sets up the router
func SetupRouter(cfg *config.Config, deps *HandlerDependencies) *gin.Engine {
	router := gin.New()

	// Add middleware
	router.Use(gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.Server.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.MetricsMiddleware())

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Public routes
	public := router.Group("/api")
	{
		public.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		public.POST("/auth/login", deps.AuthHandler.Login)

		public.GET("/draws", deps.DrawHandler.GetDraws)

		lottery := public.Group("/:lottery")
		{
			lottery.GET("/features", deps.FeatureHandler.GetFeatures)
			lottery.GET("/number-history", deps.HistoryHandler.GetNumberHistory)
			lottery.GET("/gaps", deps.HistoryHandler.GetGaps)
			lottery.GET("/apuestas", deps.StatsHandler.GetBetsSeries)
		}
	}

	// Protected routes
	protected := router.Group("/api")
	protected.Use(middleware.JWTAuthMiddleware(cfg))
	{
		protected.POST("/auth/register", deps.AuthHandler.Register)

		protected.GET("/scrape", deps.ScrapeHandler.Scrape)
		protected.POST("/scrape/daily", deps.ScrapeHandler.ScrapeDaily)
		protected.POST("/scrape/import", deps.ScrapeHandler.Import)

		protected.POST("/:lottery/features/rebuild", deps.FeatureHandler.RebuildFeatures)
	}

	return router
}
