package analytics

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/unifiedui/chat-client/internal/domain/models"
)

// ConversationAnalyticsResponse is the body of GET /api/analytics/conversations.
// Only metrics.total_conversations and metrics.average_response_time are
// required; the other fields are kept raw and read best-effort.
type ConversationAnalyticsResponse struct {
	Metrics    *MetricsPayload `json:"metrics"`
	Timestamp  json.RawMessage `json:"timestamp,omitempty"`
	TopIntents json.RawMessage `json:"top_intents,omitempty"`
}

// MetricsPayload holds the aggregate metrics. Required fields are pointers.
type MetricsPayload struct {
	TotalConversations  *int64          `json:"total_conversations"`
	AverageResponseTime *float64        `json:"average_response_time"`
	UserSatisfaction    json.RawMessage `json:"user_satisfaction,omitempty"`
	ErrorRate           json.RawMessage `json:"error_rate,omitempty"`
	CommonIntents       json.RawMessage `json:"common_intents,omitempty"`
}

// ToSnapshot validates the payload and converts it into a snapshot.
func (r *ConversationAnalyticsResponse) ToSnapshot(fetchedAt time.Time) (*models.AnalyticsSnapshot, error) {
	if r.Metrics == nil {
		return nil, fmt.Errorf("malformed response: missing metrics")
	}
	m := r.Metrics
	if m.TotalConversations == nil {
		return nil, fmt.Errorf("malformed response: missing metrics.total_conversations")
	}
	if m.AverageResponseTime == nil {
		return nil, fmt.Errorf("malformed response: missing metrics.average_response_time")
	}
	if *m.TotalConversations < 0 || *m.AverageResponseTime < 0 {
		return nil, fmt.Errorf("malformed response: negative metrics")
	}

	return &models.AnalyticsSnapshot{
		TotalConversations:         *m.TotalConversations,
		AverageResponseTimeSeconds: *m.AverageResponseTime,
		UserSatisfaction:           optionalFloat(m.UserSatisfaction),
		ErrorRate:                  optionalFloat(m.ErrorRate),
		CommonIntents:              optionalCounts(m.CommonIntents),
		TopIntents:                 optionalCounts(r.TopIntents),
		Timestamp:                  optionalString(r.Timestamp),
		FetchedAt:                  fetchedAt,
	}, nil
}

// optionalFloat returns 0 when raw is absent or not a number.
func optionalFloat(raw json.RawMessage) float64 {
	var v float64
	if len(raw) == 0 || json.Unmarshal(raw, &v) != nil {
		return 0
	}
	return v
}

// optionalString returns a JSON string as is and any other scalar in its
// literal form, so a numeric timestamp still shows.
func optionalString(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if json.Unmarshal(raw, &s) == nil {
		return s
	}
	literal := strings.TrimSpace(string(raw))
	if literal == "null" || strings.HasPrefix(literal, "{") || strings.HasPrefix(literal, "[") {
		return ""
	}
	return literal
}

// optionalCounts reads an object of counts. Fractional counts are rounded and
// entries that are not numbers are skipped.
func optionalCounts(raw json.RawMessage) map[string]int64 {
	if len(raw) == 0 {
		return nil
	}
	var entries map[string]json.RawMessage
	if json.Unmarshal(raw, &entries) != nil {
		return nil
	}
	counts := make(map[string]int64, len(entries))
	for name, value := range entries {
		var n float64
		if json.Unmarshal(value, &n) != nil {
			continue
		}
		counts[name] = int64(math.Round(n))
	}
	if len(counts) == 0 {
		return nil
	}
	return counts
}

// SentimentTrendsResponse is the body of GET /api/analytics/sentiment.
type SentimentTrendsResponse struct {
	OverallSentiment   string  `json:"overall_sentiment"`
	PositivePercentage float64 `json:"positive_percentage"`
	NegativePercentage float64 `json:"negative_percentage"`
	NeutralPercentage  float64 `json:"neutral_percentage"`
	Trend              string  `json:"trend"`
}

// ToTrends validates the payload and converts it into sentiment trends.
func (r *SentimentTrendsResponse) ToTrends(fetchedAt time.Time) (*models.SentimentTrends, error) {
	if r.OverallSentiment == "" {
		return nil, fmt.Errorf("malformed response: missing overall_sentiment")
	}
	return &models.SentimentTrends{
		OverallSentiment:   r.OverallSentiment,
		PositivePercentage: r.PositivePercentage,
		NegativePercentage: r.NegativePercentage,
		NeutralPercentage:  r.NeutralPercentage,
		Trend:              r.Trend,
		FetchedAt:          fetchedAt,
	}, nil
}
