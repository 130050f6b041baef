// Package analytics provides the client for the backend analytics endpoints.
package analytics

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	domainerrors "github.com/unifiedui/chat-client/internal/domain/errors"
	"github.com/unifiedui/chat-client/internal/domain/models"
	"github.com/unifiedui/chat-client/internal/pkg/httpclient"
)

const (
	// ConversationsPath is the aggregate conversation metrics endpoint.
	ConversationsPath = "/api/analytics/conversations"
	// SentimentPath is the aggregate sentiment endpoint.
	SentimentPath = "/api/analytics/sentiment"

	// DefaultTimeout bounds a single analytics call when ClientConfig.Timeout is zero.
	DefaultTimeout = 10 * time.Second
)

// Client defines the interface for the analytics client.
// Failures are returned as *errors.DomainError with code UPSTREAM_ERROR.
type Client interface {
	// FetchSnapshot retrieves the aggregate conversation metrics.
	FetchSnapshot(ctx context.Context) (*models.AnalyticsSnapshot, error)

	// FetchSentimentTrends retrieves the aggregate sentiment summary.
	FetchSentimentTrends(ctx context.Context) (*models.SentimentTrends, error)
}

// ClientConfig holds the configuration for the analytics client.
type ClientConfig struct {
	BaseURL    string
	Timeout    time.Duration
	HTTPClient *http.Client
	Logger     *zerolog.Logger
}

// client implements the Client interface.
type client struct {
	base    *httpclient.BaseClient
	timeout time.Duration
	logger  zerolog.Logger
	now     func() time.Time
}

// NewClient creates a new analytics client.
func NewClient(cfg *ClientConfig) Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	logger := log.Logger
	if cfg.Logger != nil {
		logger = *cfg.Logger
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = httpclient.New(httpclient.Config{Timeout: timeout, Logger: &logger})
	}

	return &client{
		base:    httpclient.NewBaseClient(httpClient, cfg.BaseURL),
		timeout: timeout,
		logger:  logger,
		now:     time.Now,
	}
}

// FetchSnapshot implements Client.
func (c *client) FetchSnapshot(ctx context.Context) (*models.AnalyticsSnapshot, error) {
	var resp ConversationAnalyticsResponse
	if err := c.get(ctx, ConversationsPath, &resp); err != nil {
		return nil, c.failure("fetch analytics snapshot", err)
	}

	snapshot, err := resp.ToSnapshot(c.now().UTC())
	if err != nil {
		return nil, c.failure("fetch analytics snapshot", err)
	}
	return snapshot, nil
}

// FetchSentimentTrends implements Client.
func (c *client) FetchSentimentTrends(ctx context.Context) (*models.SentimentTrends, error) {
	var resp SentimentTrendsResponse
	if err := c.get(ctx, SentimentPath, &resp); err != nil {
		return nil, c.failure("fetch sentiment trends", err)
	}

	trends, err := resp.ToTrends(c.now().UTC())
	if err != nil {
		return nil, c.failure("fetch sentiment trends", err)
	}
	return trends, nil
}

func (c *client) get(ctx context.Context, relPath string, out interface{}) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := c.base.NewRequest(ctx, http.MethodGet, relPath, nil)
	if err != nil {
		return err
	}

	body, err := c.base.Do(req)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func (c *client) failure(operation string, err error) error {
	c.logger.Warn().Err(err).Str("operation", operation).Msg("analytics fetch failed")
	return domainerrors.NewUpstreamError(operation, err)
}
