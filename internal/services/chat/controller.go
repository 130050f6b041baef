// Package chat provides the controller that ties the session, the message log
// and the backend clients together.
package chat

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/unifiedui/chat-client/internal/core/notify"
	domainerrors "github.com/unifiedui/chat-client/internal/domain/errors"
	"github.com/unifiedui/chat-client/internal/domain/models"
	"github.com/unifiedui/chat-client/internal/services/analytics"
	"github.com/unifiedui/chat-client/internal/services/conversation"
	"github.com/unifiedui/chat-client/internal/services/session"
	"github.com/unifiedui/chat-client/internal/services/store"
)

// State is the send state of the controller.
type State string

const (
	StateIdle    State = "idle"
	StateSending State = "sending"
)

// Submission is the result of an accepted submit.
type Submission struct {
	// Message is the stored user message.
	Message models.Message
	// Reply yields the resolved reply once it is appended and the controller
	// is idle again, then closes.
	Reply <-chan *models.Message
}

// View is a point-in-time summary of the controller.
type View struct {
	SessionID      string `json:"sessionId"`
	State          State  `json:"state"`
	Input          string `json:"input"`
	MessageCount   int    `json:"messageCount"`
	AnalyticsShown bool   `json:"analyticsShown"`
	SentimentShown bool   `json:"sentimentShown"`
}

// Controller defines the interface for the chat controller.
type Controller interface {
	// Submit appends text as a user message and sends it to the backend.
	Submit(text string) (*Submission, error)

	// SetInput replaces the pending input buffer.
	SetInput(text string)
	// Input returns the pending input buffer.
	Input() string
	// SubmitInput submits the pending input buffer.
	SubmitInput() (*Submission, error)

	State() State
	View() View
	Session() *models.Session
	Messages() []models.Message
	Subscribe() (<-chan models.Message, func())

	// RequestAnalytics fetches a snapshot and shows it. On failure the
	// shown snapshot is left unchanged.
	RequestAnalytics(ctx context.Context) (*models.AnalyticsSnapshot, error)
	DismissAnalytics()
	// Analytics returns the shown snapshot, or nil when hidden.
	Analytics() *models.AnalyticsSnapshot

	RequestSentiment(ctx context.Context) (*models.SentimentTrends, error)
	DismissSentiment()
	Sentiment() *models.SentimentTrends

	// Close aborts an in-flight send and waits for it to resolve.
	Close() error
	// Done is closed once Close has returned; every reply is appended by then.
	Done() <-chan struct{}
}

// Config holds the configuration for the chat controller.
type Config struct {
	Conversation conversation.Client
	Analytics    analytics.Client
	// Session defaults to a freshly created one.
	Session *models.Session
	// Store defaults to an in-memory store publishing to Notifier.
	Store    store.Store
	Notifier notify.Notifier
	Logger   *zerolog.Logger
}

type controller struct {
	mu        sync.Mutex
	state     State
	input     string
	analytics *models.AnalyticsSnapshot
	sentiment *models.SentimentTrends
	closed    bool

	session      *models.Session
	store        store.Store
	conversation conversation.Client
	analyticsCli analytics.Client
	logger       zerolog.Logger

	ctx       context.Context
	cancel    context.CancelFunc
	inflight  sync.WaitGroup
	done      chan struct{}
	closeOnce sync.Once
}

// NewController creates a new chat controller in the idle state.
func NewController(cfg *Config) (Controller, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}
	if cfg.Conversation == nil {
		return nil, fmt.Errorf("conversation client is required")
	}
	if cfg.Analytics == nil {
		return nil, fmt.Errorf("analytics client is required")
	}

	logger := log.Logger
	if cfg.Logger != nil {
		logger = *cfg.Logger
	}
	sess := cfg.Session
	if sess == nil {
		sess = session.Create()
	}
	msgStore := cfg.Store
	if msgStore == nil {
		msgStore = store.NewStore(&store.Config{
			SessionID: sess.ID,
			Notifier:  cfg.Notifier,
			Logger:    &logger,
		})
	}

	ctx, cancel := context.WithCancel(context.Background())
	return &controller{
		state:        StateIdle,
		session:      sess,
		store:        msgStore,
		conversation: cfg.Conversation,
		analyticsCli: cfg.Analytics,
		logger:       logger.With().Str("session_id", sess.ID).Logger(),
		ctx:          ctx,
		cancel:       cancel,
		done:         make(chan struct{}),
	}, nil
}

// Submit implements Controller.
func (c *controller) Submit(text string) (*Submission, error) {
	c.mu.Lock()
	if strings.TrimSpace(text) == "" {
		c.mu.Unlock()
		return nil, domainerrors.NewValidationError("message text is required", "text must contain a non-whitespace character")
	}
	if c.closed {
		c.mu.Unlock()
		return nil, domainerrors.NewConflictError("chat is closed", c.session.ID)
	}
	if c.state == StateSending {
		c.mu.Unlock()
		return nil, domainerrors.NewConflictError("a message is already being sent", c.session.ID)
	}
	c.state = StateSending
	c.input = ""
	c.inflight.Add(1)
	c.mu.Unlock()

	// state is sending, so no other submit can append until the reply lands
	stored := c.store.Append(models.NewUserMessage(text))
	c.logger.Debug().Int64("message_id", stored.ID).Int("length", len(text)).Msg("message submitted")

	done := make(chan *models.Message, 1)
	go c.resolve(text, done)
	return &Submission{Message: stored, Reply: done}, nil
}

func (c *controller) resolve(text string, done chan<- *models.Message) {
	defer c.inflight.Done()
	defer close(done)

	reply := c.conversation.Send(c.ctx, c.session, text)
	if reply == nil {
		reply = models.NewErrorReply()
	}
	stored := c.store.Append(reply)

	c.mu.Lock()
	c.state = StateIdle
	c.mu.Unlock()

	if stored.IsError() {
		c.logger.Debug().Int64("message_id", stored.ID).Msg("send resolved with error reply")
	}
	done <- &stored
}

// SetInput implements Controller.
func (c *controller) SetInput(text string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.input = text
}

// Input implements Controller.
func (c *controller) Input() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.input
}

// SubmitInput implements Controller.
func (c *controller) SubmitInput() (*Submission, error) {
	return c.Submit(c.Input())
}

// State implements Controller.
func (c *controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// View implements Controller.
func (c *controller) View() View {
	c.mu.Lock()
	defer c.mu.Unlock()
	return View{
		SessionID:      c.session.ID,
		State:          c.state,
		Input:          c.input,
		MessageCount:   c.store.Len(),
		AnalyticsShown: c.analytics != nil,
		SentimentShown: c.sentiment != nil,
	}
}

// Session implements Controller.
func (c *controller) Session() *models.Session {
	return c.session
}

// Messages implements Controller.
func (c *controller) Messages() []models.Message {
	return c.store.All()
}

// Subscribe implements Controller.
func (c *controller) Subscribe() (<-chan models.Message, func()) {
	return c.store.Subscribe()
}

// RequestAnalytics implements Controller.
func (c *controller) RequestAnalytics(ctx context.Context) (*models.AnalyticsSnapshot, error) {
	snapshot, err := c.analyticsCli.FetchSnapshot(ctx)
	if err != nil {
		c.logger.Warn().Err(err).Msg("analytics request failed; keeping shown snapshot")
		return nil, err
	}

	// overlapping requests: last to resolve wins
	c.mu.Lock()
	c.analytics = snapshot
	c.mu.Unlock()
	return snapshot, nil
}

// DismissAnalytics implements Controller.
func (c *controller) DismissAnalytics() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.analytics = nil
}

// Analytics implements Controller.
func (c *controller) Analytics() *models.AnalyticsSnapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.analytics
}

// RequestSentiment implements Controller.
func (c *controller) RequestSentiment(ctx context.Context) (*models.SentimentTrends, error) {
	trends, err := c.analyticsCli.FetchSentimentTrends(ctx)
	if err != nil {
		c.logger.Warn().Err(err).Msg("sentiment request failed; keeping shown trends")
		return nil, err
	}

	c.mu.Lock()
	c.sentiment = trends
	c.mu.Unlock()
	return trends, nil
}

// DismissSentiment implements Controller.
func (c *controller) DismissSentiment() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sentiment = nil
}

// Sentiment implements Controller.
func (c *controller) Sentiment() *models.SentimentTrends {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sentiment
}

// Close implements Controller.
func (c *controller) Close() error {
	c.mu.Lock()
	c.closed = true
	c.mu.Unlock()

	c.cancel()
	c.inflight.Wait()
	c.closeOnce.Do(func() { close(c.done) })
	return nil
}

// Done implements Controller.
func (c *controller) Done() <-chan struct{} {
	return c.done
}
