// Package mocks provides mock implementations for testing.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/unifiedui/chat-client/internal/domain/models"
	"github.com/unifiedui/chat-client/internal/services/analytics"
	"github.com/unifiedui/chat-client/internal/services/conversation"
)

// MockConversationClient is a mock implementation of conversation.Client.
type MockConversationClient struct {
	mock.Mock
}

// Send mocks the Send method.
func (m *MockConversationClient) Send(ctx context.Context, session *models.Session, text string) *models.Message {
	args := m.Called(ctx, session, text)
	return args.Get(0).(*models.Message)
}

// Ping mocks the Ping method.
func (m *MockConversationClient) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// Ensure MockConversationClient implements conversation.Client interface.
var _ conversation.Client = (*MockConversationClient)(nil)

// MockAnalyticsClient is a mock implementation of analytics.Client.
type MockAnalyticsClient struct {
	mock.Mock
}

// FetchSnapshot mocks the FetchSnapshot method.
func (m *MockAnalyticsClient) FetchSnapshot(ctx context.Context) (*models.AnalyticsSnapshot, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.AnalyticsSnapshot), args.Error(1)
}

// FetchSentimentTrends mocks the FetchSentimentTrends method.
func (m *MockAnalyticsClient) FetchSentimentTrends(ctx context.Context) (*models.SentimentTrends, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SentimentTrends), args.Error(1)
}

// Ensure MockAnalyticsClient implements analytics.Client interface.
var _ analytics.Client = (*MockAnalyticsClient)(nil)
