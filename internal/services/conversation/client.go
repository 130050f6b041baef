// Package conversation provides the client for the backend chat endpoint.
package conversation

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/unifiedui/chat-client/internal/domain/models"
	"github.com/unifiedui/chat-client/internal/pkg/httpclient"
)

const (
	// ChatPath is the backend chat endpoint.
	ChatPath = "/api/chat"
	// HealthPath is the backend health endpoint.
	HealthPath = "/health"

	// DefaultTimeout bounds a single chat call when ClientConfig.Timeout is zero.
	DefaultTimeout = 30 * time.Second
)

// Client defines the interface for the conversation client.
type Client interface {
	// Send posts text for the session and returns the resulting bot message.
	// It never returns an error: every failure resolves to a message with
	// status error and the fixed error text.
	Send(ctx context.Context, session *models.Session, text string) *models.Message

	// Ping checks that the backend answers its health endpoint.
	Ping(ctx context.Context) error
}

// ClientConfig holds the configuration for the conversation client.
type ClientConfig struct {
	BaseURL string
	Timeout time.Duration
	// HTTPClient overrides the default logging client.
	HTTPClient *http.Client
	Logger     *zerolog.Logger
}

// client implements the Client interface.
type client struct {
	base    *httpclient.BaseClient
	timeout time.Duration
	logger  zerolog.Logger
}

// NewClient creates a new conversation client.
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
	}
}

// Send implements Client.
func (c *client) Send(ctx context.Context, session *models.Session, text string) *models.Message {
	start := time.Now()

	reply, err := c.send(ctx, session, text)
	if err != nil {
		event := c.logger.Warn().Err(err).Dur("duration", time.Since(start))
		if session != nil {
			event = event.Str("session_id", session.ID)
		}
		event.Msg("chat send failed")
		return models.NewErrorReply()
	}

	c.logger.Debug().
		Str("session_id", session.ID).
		Str("intent", reply.Metadata.IntentLabel()).
		Str("sentiment", reply.Metadata.SentimentLabel()).
		Dur("duration", time.Since(start)).
		Msg("chat reply received")
	return reply
}

func (c *client) send(ctx context.Context, session *models.Session, text string) (*models.Message, error) {
	if session == nil {
		return nil, fmt.Errorf("session is required")
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	body, err := json.Marshal(&ChatRequest{
		Message:   text,
		SessionID: session.ID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := c.base.NewRequest(ctx, http.MethodPost, ChatPath, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	respBody, err := c.base.Do(req)
	if err != nil {
		return nil, err
	}

	var resp ChatResponse
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	if err := resp.Validate(); err != nil {
		return nil, err
	}

	return resp.ToMessage(), nil
}

// Ping implements Client.
func (c *client) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := c.base.NewRequest(ctx, http.MethodGet, HealthPath, nil)
	if err != nil {
		return err
	}
	if _, err := c.base.Do(req); err != nil {
		return fmt.Errorf("backend health check failed: %w", err)
	}
	return nil
}
