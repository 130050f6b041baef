// Package main is the entry point for the UnifiedUI Chat Client server.
// @title UnifiedUI Chat Client API
// @version 1.0
// @description Local HTTP surface of the chat client: conversation thread, send state and analytics panel

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8090
// @BasePath /
// @schemes http
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/unifiedui/chat-client/docs"
	"github.com/unifiedui/chat-client/internal/api/handlers"
	"github.com/unifiedui/chat-client/internal/api/middleware"
	"github.com/unifiedui/chat-client/internal/api/routes"
	"github.com/unifiedui/chat-client/internal/app"
	"github.com/unifiedui/chat-client/internal/config"
	"github.com/unifiedui/chat-client/internal/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	appLogger := logger.Setup(cfg.Log)

	// Initialize session, clients and controller
	chatApp, err := app.New(cfg, appLogger)
	if err != nil {
		appLogger.Fatal().Err(err).Msg("failed to initialize chat client")
	}

	// Set Gin mode
	gin.SetMode(cfg.Server.GinMode)

	// Setup router
	router := setupRouter(cfg, chatApp, appLogger)

	// Create HTTP server
	srv := &http.Server{
		Addr:              cfg.Server.Address(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Start server in goroutine
	go func() {
		appLogger.Info().Str("address", cfg.Server.Address()).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info().Msg("shutting down server")

	// Abort the in-flight send first so open SSE streams see its reply
	if err := chatApp.Close(); err != nil {
		appLogger.Warn().Err(err).Msg("failed to close chat client")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLogger.Fatal().Err(err).Msg("server forced to shutdown")
	}

	appLogger.Info().Msg("server exited")
}

// setupRouter creates and configures the Gin router.
func setupRouter(cfg *config.Config, chatApp *app.App, appLogger zerolog.Logger) *gin.Engine {
	router := gin.New()

	// Create middleware
	loggingMw := middleware.NewLoggingMiddlewareWithLogger(appLogger,
		routes.BasePath+"/health",
		routes.BasePath+"/ready",
		routes.BasePath+"/live",
	)
	errorMw := middleware.NewErrorMiddleware(chatApp.Controller.Session().ID)
	corsCfg := middleware.DefaultCORSConfig(cfg.Server.AllowedOrigins)

	// Create handlers
	routesCfg := &routes.Config{
		HealthHandler:    handlers.NewHealthHandler(chatApp.Conversation, chatApp.Notifier),
		MessagesHandler:  handlers.NewMessagesHandler(chatApp.Controller),
		AnalyticsHandler: handlers.NewAnalyticsHandler(chatApp.Controller),
		EventsHandler:    handlers.NewEventsHandler(chatApp.Controller, handlers.DefaultKeepAliveInterval),
	}

	routes.SetupWithMiddleware(router, routesCfg, loggingMw, errorMw, corsCfg)

	// Swagger documentation endpoint
	router.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return router
}
