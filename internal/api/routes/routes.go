// Package routes defines the HTTP routes of the local chat client surface.
package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/unifiedui/chat-client/internal/api/handlers"
	"github.com/unifiedui/chat-client/internal/api/middleware"
)

// BasePath is the prefix of every route.
const BasePath = "/api/v1/chat-client"

// Config holds the dependencies for setting up routes.
type Config struct {
	HealthHandler    *handlers.HealthHandler
	MessagesHandler  *handlers.MessagesHandler
	AnalyticsHandler *handlers.AnalyticsHandler
	EventsHandler    *handlers.EventsHandler
}

// Setup configures all routes on the Gin engine.
func Setup(r *gin.Engine, cfg *Config) {
	v1 := r.Group(BasePath)
	{
		// Health check routes
		v1.GET("/health", cfg.HealthHandler.Health)
		v1.GET("/ready", cfg.HealthHandler.Ready)
		v1.GET("/live", cfg.HealthHandler.Live)

		// Session and input
		v1.GET("/session", cfg.MessagesHandler.GetSession)
		v1.GET("/state", cfg.MessagesHandler.GetState)
		v1.PUT("/input", cfg.MessagesHandler.SetInput)

		// Messages
		v1.GET("/messages", cfg.MessagesHandler.GetMessages)
		v1.POST("/messages", cfg.MessagesHandler.SendMessage)
		v1.GET("/events", cfg.EventsHandler.Stream)

		// Analytics panel
		analytics := v1.Group("/analytics")
		{
			analytics.POST("", cfg.AnalyticsHandler.RequestAnalytics)
			analytics.GET("", cfg.AnalyticsHandler.GetAnalytics)
			analytics.DELETE("", cfg.AnalyticsHandler.DismissAnalytics)

			analytics.POST("/sentiment", cfg.AnalyticsHandler.RequestSentiment)
			analytics.GET("/sentiment", cfg.AnalyticsHandler.GetSentiment)
			analytics.DELETE("/sentiment", cfg.AnalyticsHandler.DismissSentiment)
		}
	}

	// Preflights for any path reach the CORS middleware through these chains
	r.HandleMethodNotAllowed = true
	r.NoRoute(middleware.NotFound())
	r.NoMethod(middleware.MethodNotAllowed())
}

// SetupWithMiddleware sets up routes with common middleware.
func SetupWithMiddleware(r *gin.Engine, cfg *Config, loggingMw *middleware.LoggingMiddleware, errorMw *middleware.ErrorMiddleware, corsCfg middleware.CORSConfig) {
	// Apply global middleware
	r.Use(loggingMw.RequestLogger())
	r.Use(loggingMw.Logger())
	r.Use(errorMw.Recovery())
	r.Use(middleware.NewCORSMiddleware(corsCfg))

	// Setup routes
	Setup(r, cfg)
}
