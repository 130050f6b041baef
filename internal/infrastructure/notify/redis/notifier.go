// Package redis provides the Redis pub/sub notifier implementation.
package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/unifiedui/chat-client/internal/domain/models"
)

// DefaultChannelPrefix is used when Config.ChannelPrefix is empty.
const DefaultChannelPrefix = "chat"

// Config holds Redis connection configuration.
type Config struct {
	Host          string
	Port          string
	Password      string
	DB            int
	ChannelPrefix string
}

// Notifier implements notify.Notifier over Redis PUBLISH.
type Notifier struct {
	client *redis.Client
	prefix string
}

// NewNotifier creates a new Redis notifier and checks the connection.
func NewNotifier(cfg Config) (*Notifier, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	prefix := cfg.ChannelPrefix
	if prefix == "" {
		prefix = DefaultChannelPrefix
	}

	return &Notifier{
		client: client,
		prefix: prefix,
	}, nil
}

// Channel returns the pub/sub channel for a session.
func (n *Notifier) Channel(sessionID string) string {
	return fmt.Sprintf("%s:%s:messages", n.prefix, sessionID)
}

// Publish publishes msg as JSON on the session channel.
func (n *Notifier) Publish(ctx context.Context, sessionID string, msg *models.Message) error {
	if msg == nil {
		return fmt.Errorf("message is required")
	}

	payload, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	channel := n.Channel(sessionID)
	if err := n.client.Publish(ctx, channel, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish to %s: %w", channel, err)
	}
	return nil
}

// Ping checks if the Redis connection is alive.
func (n *Notifier) Ping(ctx context.Context) error {
	if err := n.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}
	return nil
}

// Close closes the Redis connection.
func (n *Notifier) Close() error {
	if err := n.client.Close(); err != nil {
		return fmt.Errorf("failed to close redis connection: %w", err)
	}
	return nil
}
