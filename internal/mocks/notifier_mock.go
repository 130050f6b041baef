package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/unifiedui/chat-client/internal/core/notify"
	"github.com/unifiedui/chat-client/internal/domain/models"
)

// MockNotifier is a mock implementation of notify.Notifier.
type MockNotifier struct {
	mock.Mock
}

// NewMockNotifier creates a new MockNotifier.
func NewMockNotifier() *MockNotifier {
	return &MockNotifier{}
}

// Publish mocks the Publish method.
func (m *MockNotifier) Publish(ctx context.Context, sessionID string, msg *models.Message) error {
	args := m.Called(ctx, sessionID, msg)
	return args.Error(0)
}

// Ping mocks the Ping method.
func (m *MockNotifier) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// Close mocks the Close method.
func (m *MockNotifier) Close() error {
	args := m.Called()
	return args.Error(0)
}

// Ensure MockNotifier implements notify.Notifier interface.
var _ notify.Notifier = (*MockNotifier)(nil)
