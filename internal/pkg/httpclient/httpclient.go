// Package httpclient provides the shared outbound HTTP client for the chat backend.
package httpclient

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// DefaultTimeout is used when Config.Timeout is zero.
const DefaultTimeout = 30 * time.Second

// MaxBodySize caps how much of a backend response body is read.
const MaxBodySize = 5 * 1024 * 1024

// Config holds the outbound HTTP client configuration.
type Config struct {
	Timeout   time.Duration
	Transport http.RoundTripper
	Logger    *zerolog.Logger
}

// HTTPError is returned for non-2xx responses.
type HTTPError struct {
	StatusCode int
	Body       string
}

// MaxErrorBodyLen caps how much of the body HTTPError.Error includes.
const MaxErrorBodyLen = 256

func (e *HTTPError) Error() string {
	body := strings.TrimSpace(e.Body)
	if len(body) > MaxErrorBodyLen {
		body = strings.ToValidUTF8(body[:MaxErrorBodyLen], "") + "...(truncated)"
	}
	return fmt.Sprintf("backend request failed: status %d: %s", e.StatusCode, body)
}

// New creates an http.Client that logs every outbound call.
func New(cfg Config) *http.Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	inner := cfg.Transport
	if inner == nil {
		inner = http.DefaultTransport
	}
	logger := log.Logger
	if cfg.Logger != nil {
		logger = *cfg.Logger
	}
	return &http.Client{
		Timeout:   timeout,
		Transport: &loggingRoundTripper{inner: inner, logger: logger},
	}
}

// loggingRoundTripper logs method, url, status and duration of each call.
type loggingRoundTripper struct {
	inner  http.RoundTripper
	logger zerolog.Logger
}

func (l *loggingRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()
	resp, err := l.inner.RoundTrip(req)
	duration := time.Since(start)

	if err != nil {
		l.logger.Error().
			Err(err).
			Str("method", req.Method).
			Str("url", req.URL.String()).
			Dur("duration", duration).
			Msg("backend request failed")
		return nil, err
	}

	l.logger.Debug().
		Str("method", req.Method).
		Str("url", req.URL.String()).
		Int("status", resp.StatusCode).
		Dur("duration", duration).
		Msg("backend request completed")
	return resp, nil
}

// BaseClient binds an http.Client to the backend base URL.
type BaseClient struct {
	HTTPClient *http.Client
	BaseURL    string
}

// NewBaseClient creates a BaseClient. A nil httpClient gets the logging default.
func NewBaseClient(httpClient *http.Client, baseURL string) *BaseClient {
	if httpClient == nil {
		httpClient = New(Config{})
	}
	return &BaseClient{
		HTTPClient: httpClient,
		BaseURL:    baseURL,
	}
}

// NewRequest builds a request for relPath under the base URL.
// relPath must not carry a query string.
func (c *BaseClient) NewRequest(ctx context.Context, method, relPath string, body io.Reader) (*http.Request, error) {
	if c.BaseURL == "" {
		return nil, fmt.Errorf("backend URL not configured")
	}
	if strings.Contains(relPath, "?") {
		return nil, fmt.Errorf("relPath must not contain a query string: %s", relPath)
	}
	base, err := url.Parse(c.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse backend URL: %w", err)
	}
	if relPath != "" {
		base.Path = path.Join(base.Path, relPath)
	}

	req, err := http.NewRequestWithContext(ctx, method, base.String(), body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req, nil
}

// Do executes req and returns the (size capped) body of a 2xx response.
// Non-2xx responses yield an *HTTPError.
func (c *BaseClient) Do(req *http.Request) ([]byte, error) {
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, MaxBodySize))
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &HTTPError{StatusCode: resp.StatusCode, Body: string(body)}
	}
	return body, nil
}
