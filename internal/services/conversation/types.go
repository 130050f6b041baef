package conversation

import (
	"fmt"

	"github.com/unifiedui/chat-client/internal/domain/models"
)

// ChatRequest is the body of POST /api/chat.
type ChatRequest struct {
	Message   string `json:"message"`
	SessionID string `json:"session_id"`
}

// ChatResponse is the success body of POST /api/chat.
// Pointer fields distinguish absent from zero.
type ChatResponse struct {
	Response     *string                `json:"response"`
	Intent       map[string]interface{} `json:"intent"`
	Sentiment    map[string]interface{} `json:"sentiment"`
	ResponseTime *float64               `json:"response_time"`
}

// Validate checks that every field read for display is present:
// response, intent.intent, sentiment.label and response_time.
func (r *ChatResponse) Validate() error {
	if r.Response == nil {
		return fmt.Errorf("malformed response: missing response")
	}
	if _, ok := r.Intent["intent"].(string); !ok {
		return fmt.Errorf("malformed response: missing intent.intent")
	}
	if _, ok := r.Sentiment["label"].(string); !ok {
		return fmt.Errorf("malformed response: missing sentiment.label")
	}
	if r.ResponseTime == nil {
		return fmt.Errorf("malformed response: missing response_time")
	}
	return nil
}

// ToMessage converts a validated response into a bot message.
func (r *ChatResponse) ToMessage() *models.Message {
	return models.NewBotReply(*r.Response, &models.Metadata{
		Intent:              r.Intent,
		Sentiment:           r.Sentiment,
		ResponseTimeSeconds: *r.ResponseTime,
	})
}
