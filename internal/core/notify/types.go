// Package notify provides the notifier type constants.
package notify

// Type represents the type of notifier.
type Type string

const (
	// TypeNone disables external notification.
	TypeNone Type = "none"
	// TypeRedis publishes appended messages over Redis pub/sub.
	TypeRedis Type = "redis"
)
