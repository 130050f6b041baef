// Package store provides the ordered, append-only message log of a conversation.
package store

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/unifiedui/chat-client/internal/core/notify"
	"github.com/unifiedui/chat-client/internal/domain/models"
)

const (
	// DefaultSubscriberBuffer is the channel buffer of each subscriber.
	DefaultSubscriberBuffer = 64

	// publishTimeout bounds a single external notification.
	publishTimeout = 2 * time.Second
)

// Store is the ordered message log. It has no delete or reorder operation.
type Store interface {
	// Append adds msg to the end of the log, assigns its ID and notifies observers.
	// It never fails; the stored copy is returned.
	Append(msg *models.Message) models.Message

	// All returns a snapshot of the log in append order.
	All() []models.Message

	// Len returns the number of messages in the log.
	Len() int

	// Subscribe registers an observer that receives every message appended after the call.
	// The returned func unsubscribes and closes the channel.
	Subscribe() (<-chan models.Message, func())
}

// Config holds the configuration for the message store.
type Config struct {
	SessionID        string
	Notifier         notify.Notifier
	Logger           *zerolog.Logger
	SubscriberBuffer int
	// Clock returns the current time; IDs derive from it. Defaults to time.Now.
	Clock func() time.Time
}

type memoryStore struct {
	mu          sync.RWMutex
	messages    []models.Message
	lastID      int64
	subscribers map[int]chan models.Message
	nextSubID   int

	publishMu sync.Mutex
	sessionID string
	notifier  notify.Notifier
	logger    zerolog.Logger
	buffer    int
	clock     func() time.Time
}

// NewStore creates an empty in-memory message store.
func NewStore(cfg *Config) Store {
	if cfg == nil {
		cfg = &Config{}
	}

	notifier := cfg.Notifier
	if notifier == nil {
		notifier = notify.NewNopNotifier()
	}
	logger := log.Logger
	if cfg.Logger != nil {
		logger = *cfg.Logger
	}
	buffer := cfg.SubscriberBuffer
	if buffer <= 0 {
		buffer = DefaultSubscriberBuffer
	}
	clock := cfg.Clock
	if clock == nil {
		clock = time.Now
	}

	return &memoryStore{
		subscribers: make(map[int]chan models.Message),
		sessionID:   cfg.SessionID,
		notifier:    notifier,
		logger:      logger,
		buffer:      buffer,
		clock:       clock,
	}
}

// Append adds msg to the log.
func (s *memoryStore) Append(msg *models.Message) models.Message {
	s.mu.Lock()

	id := s.clock().UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id

	stored := *msg
	stored.ID = id
	msg.ID = id
	s.messages = append(s.messages, stored)

	for subID, ch := range s.subscribers {
		select {
		case ch <- stored:
		default:
			// slow observer: drop it so the appender never blocks
			close(ch)
			delete(s.subscribers, subID)
			s.logger.Warn().Int("subscriber", subID).Msg("dropping slow message subscriber")
		}
	}

	// keep external notifications in append order
	s.publishMu.Lock()
	s.mu.Unlock()
	defer s.publishMu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
	defer cancel()
	if err := s.notifier.Publish(ctx, s.sessionID, &stored); err != nil {
		s.logger.Warn().
			Err(err).
			Str("session_id", s.sessionID).
			Int64("message_id", stored.ID).
			Msg("failed to publish appended message")
	}

	return stored
}

// All returns a copy of the log.
func (s *memoryStore) All() []models.Message {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Message, len(s.messages))
	copy(out, s.messages)
	return out
}

// Len returns the number of stored messages.
func (s *memoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.messages)
}

// Subscribe registers a new observer.
func (s *memoryStore) Subscribe() (<-chan models.Message, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextSubID
	s.nextSubID++
	ch := make(chan models.Message, s.buffer)
	s.subscribers[id] = ch

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			if existing, ok := s.subscribers[id]; ok {
				close(existing)
				delete(s.subscribers, id)
			}
		})
	}
	return ch, cancel
}
