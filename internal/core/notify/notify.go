// Package notify defines the interface used to announce appended messages
// to observers outside the process.
package notify

import (
	"context"

	"github.com/unifiedui/chat-client/internal/domain/models"
)

// Notifier publishes each message appended to a session's conversation.
type Notifier interface {
	// Publish announces msg for the given session.
	Publish(ctx context.Context, sessionID string, msg *models.Message) error

	// Ping checks if the notifier backend is reachable.
	Ping(ctx context.Context) error

	// Close releases the notifier connection.
	Close() error
}

// NopNotifier discards every message.
type NopNotifier struct{}

// NewNopNotifier creates a notifier that does nothing.
func NewNopNotifier() *NopNotifier {
	return &NopNotifier{}
}

// Publish discards msg.
func (NopNotifier) Publish(context.Context, string, *models.Message) error { return nil }

// Ping always succeeds.
func (NopNotifier) Ping(context.Context) error { return nil }

// Close is a no-op.
func (NopNotifier) Close() error { return nil }
