package models

import "time"

// AnalyticsSnapshot is a read-only, backend-computed aggregate of usage metrics.
type AnalyticsSnapshot struct {
	TotalConversations         int64            `json:"totalConversations"`
	AverageResponseTimeSeconds float64          `json:"averageResponseTimeSeconds"`
	UserSatisfaction           float64          `json:"userSatisfaction,omitempty"`
	ErrorRate                  float64          `json:"errorRate,omitempty"`
	CommonIntents              map[string]int64 `json:"commonIntents,omitempty"`
	TopIntents                 map[string]int64 `json:"topIntents,omitempty"`
	// Timestamp is the backend's own generation time, verbatim.
	Timestamp string    `json:"timestamp,omitempty"`
	FetchedAt time.Time `json:"fetchedAt"`
}

// SentimentTrends is the backend's aggregate sentiment summary.
type SentimentTrends struct {
	OverallSentiment   string    `json:"overallSentiment"`
	PositivePercentage float64   `json:"positivePercentage"`
	NegativePercentage float64   `json:"negativePercentage"`
	NeutralPercentage  float64   `json:"neutralPercentage"`
	Trend              string    `json:"trend"`
	FetchedAt          time.Time `json:"fetchedAt"`
}
