// Package app wires configuration into the clients, notifier and controller
// shared by the server and the terminal client.
package app

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/unifiedui/chat-client/internal/config"
	"github.com/unifiedui/chat-client/internal/core/notify"
	redisnotify "github.com/unifiedui/chat-client/internal/infrastructure/notify/redis"
	"github.com/unifiedui/chat-client/internal/services/analytics"
	"github.com/unifiedui/chat-client/internal/services/chat"
	"github.com/unifiedui/chat-client/internal/services/conversation"
	"github.com/unifiedui/chat-client/internal/services/session"
)

// App holds the wired components of one client session.
type App struct {
	Conversation conversation.Client
	Analytics    analytics.Client
	Notifier     notify.Notifier
	Controller   chat.Controller
}

// New builds the components described by cfg.
func New(cfg *config.Config, logger zerolog.Logger) (*App, error) {
	notifier, err := NewNotifier(cfg.Notifier)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize notifier: %w", err)
	}

	conversationClient := conversation.NewClient(&conversation.ClientConfig{
		BaseURL: cfg.Backend.URL,
		Timeout: cfg.Backend.ChatTimeout,
		Logger:  &logger,
	})
	analyticsClient := analytics.NewClient(&analytics.ClientConfig{
		BaseURL: cfg.Backend.URL,
		Timeout: cfg.Backend.AnalyticsTimeout,
		Logger:  &logger,
	})

	sess := session.Create()
	controller, err := chat.NewController(&chat.Config{
		Conversation: conversationClient,
		Analytics:    analyticsClient,
		Session:      sess,
		Notifier:     notifier,
		Logger:       &logger,
	})
	if err != nil {
		_ = notifier.Close()
		return nil, fmt.Errorf("failed to initialize chat controller: %w", err)
	}

	logger.Info().
		Str("session_id", sess.ID).
		Str("backend_url", cfg.Backend.URL).
		Str("notifier", cfg.Notifier.Type).
		Msg("chat session created")

	return &App{
		Conversation: conversationClient,
		Analytics:    analyticsClient,
		Notifier:     notifier,
		Controller:   controller,
	}, nil
}

// Close aborts any in-flight send and releases the notifier.
func (a *App) Close() error {
	if err := a.Controller.Close(); err != nil {
		return err
	}
	return a.Notifier.Close()
}

// NewNotifier creates a notifier based on the configuration.
func NewNotifier(cfg config.NotifierConfig) (notify.Notifier, error) {
	switch notify.Type(cfg.Type) {
	case notify.TypeNone, "":
		return notify.NewNopNotifier(), nil
	case notify.TypeRedis:
		notifier, err := redisnotify.NewNotifier(redisnotify.Config{
			Host:          cfg.Host,
			Port:          cfg.Port,
			Password:      cfg.Password,
			DB:            cfg.DB,
			ChannelPrefix: cfg.ChannelPrefix,
		})
		if err != nil {
			return nil, err
		}
		return notifier, nil
	default:
		return nil, fmt.Errorf("unsupported notifier type: %s", cfg.Type)
	}
}
