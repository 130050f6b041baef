package testutils

import (
	"github.com/unifiedui/chat-client/internal/domain/models"
)

// Test constants
const (
	TestSessionID = "session_test-123"
	TestReplyText = "Hi"
)

// NewTestSession creates a session with a fixed id.
func NewTestSession() *models.Session {
	return models.NewSession(TestSessionID)
}

// NewTestMetadata creates the metadata of a greeting reply.
func NewTestMetadata() *models.Metadata {
	return &models.Metadata{
		Intent:              map[string]interface{}{"intent": "greeting", "confidence": 0.9},
		Sentiment:           map[string]interface{}{"label": "positive", "score": 0.8},
		ResponseTimeSeconds: 0.42,
	}
}

// NewTestReply creates a successful bot reply.
func NewTestReply() *models.Message {
	return models.NewBotReply(TestReplyText, NewTestMetadata())
}

// NewTestSnapshot creates an analytics snapshot.
func NewTestSnapshot() *models.AnalyticsSnapshot {
	return &models.AnalyticsSnapshot{
		TotalConversations:         5,
		AverageResponseTimeSeconds: 1.23,
	}
}

// NewTestSentimentTrends creates sentiment trends.
func NewTestSentimentTrends() *models.SentimentTrends {
	return &models.SentimentTrends{
		OverallSentiment:   "positive",
		PositivePercentage: 65.2,
		NegativePercentage: 15.8,
		NeutralPercentage:  19.0,
		Trend:              "improving",
	}
}
