// Package main is the entry point for the UnifiedUI Chat Client terminal.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"

	"github.com/unifiedui/chat-client/internal/app"
	"github.com/unifiedui/chat-client/internal/cli"
	"github.com/unifiedui/chat-client/internal/config"
	"github.com/unifiedui/chat-client/internal/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	// Keep logs off the conversation unless asked for
	if os.Getenv("LOG_LEVEL") == "" {
		cfg.Log.Level = "warn"
	}
	appLogger := logger.Setup(cfg.Log)

	chatApp, err := app.New(cfg, appLogger)
	if err != nil {
		appLogger.Fatal().Err(err).Msg("failed to initialize chat client")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	runErr := cli.New(chatApp.Controller, os.Stdin, os.Stdout).Run(ctx)
	stop()

	if err := chatApp.Close(); err != nil {
		appLogger.Warn().Err(err).Msg("failed to close chat client")
	}
	if runErr != nil {
		appLogger.Error().Err(runErr).Msg("terminal session failed")
		os.Exit(1)
	}
}
