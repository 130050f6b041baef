package dto

import (
	"time"

	"github.com/unifiedui/chat-client/internal/domain/models"
	"github.com/unifiedui/chat-client/internal/services/chat"
)

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	Details   string `json:"details,omitempty"`
	RequestID string `json:"requestId,omitempty"`
}

// HealthResponse represents a health check response.
type HealthResponse struct {
	Status     string            `json:"status"`
	Components map[string]string `json:"components,omitempty"`
}

// SessionResponse represents the client session.
type SessionResponse struct {
	SessionID string `json:"sessionId"`
	CreatedAt time.Time `json:"createdAt"`
}

// StateResponse represents the controller state.
type StateResponse = chat.View

// GetMessagesResponse represents the response for listing messages.
type GetMessagesResponse struct {
	Messages []models.Message `json:"messages"`
	Total    int              `json:"total"`
}

// SendMessageResponse represents the response for sending a message.
// Reply is set only when the request waited for it.
type SendMessageResponse struct {
	Message *models.Message `json:"message"`
	Reply   *models.Message `json:"reply,omitempty"`
	State   chat.State      `json:"state"`
}

// AnalyticsResponse represents the shown analytics snapshot.
type AnalyticsResponse struct {
	Snapshot *models.AnalyticsSnapshot `json:"snapshot"`
}

// SentimentResponse represents the shown sentiment trends.
type SentimentResponse struct {
	Trends *models.SentimentTrends `json:"trends"`
}
