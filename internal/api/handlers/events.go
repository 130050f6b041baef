package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/unifiedui/chat-client/internal/api/middleware"
	"github.com/unifiedui/chat-client/internal/api/sse"
	"github.com/unifiedui/chat-client/internal/domain/errors"
	"github.com/unifiedui/chat-client/internal/domain/models"
	"github.com/unifiedui/chat-client/internal/services/chat"
)

// DefaultKeepAliveInterval is the interval of SSE keep-alive comments.
const DefaultKeepAliveInterval = 15 * time.Second

// EventsHandler streams appended messages over SSE.
type EventsHandler struct {
	controller chat.Controller
	keepAlive  time.Duration
}

// NewEventsHandler creates a new EventsHandler.
func NewEventsHandler(controller chat.Controller, keepAlive time.Duration) *EventsHandler {
	if keepAlive <= 0 {
		keepAlive = DefaultKeepAliveInterval
	}
	return &EventsHandler{
		controller: controller,
		keepAlive:  keepAlive,
	}
}

// Stream handles GET /events
// @Summary Stream messages
// @Description Streams one message event per appended message. Messages after Last-Event-ID are replayed first.
// @Tags Messages
// @Produce text/event-stream
// @Param Last-Event-ID header string false "Last message id received"
// @Success 200 {string} string "event stream"
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/v1/chat-client/events [get]
func (h *EventsHandler) Stream(c *gin.Context) {
	logger := middleware.GetRequestLogger(c)

	var lastID int64
	if header := c.GetHeader("Last-Event-ID"); header != "" {
		parsed, err := strconv.ParseInt(header, 10, 64)
		if err != nil {
			middleware.HandleError(c, errors.NewValidationError("invalid Last-Event-ID", header))
			return
		}
		lastID = parsed
	}

	writer, err := sse.NewWriter(c.Writer)
	if err != nil {
		middleware.HandleError(c, errors.NewInternalError("streaming not supported", err))
		return
	}

	// subscribe before replaying so nothing appended in between is lost
	events, cancel := h.controller.Subscribe()
	defer cancel()

	if err := writer.WriteReady(h.controller.Session().ID); err != nil {
		return
	}
	for _, msg := range h.controller.Messages() {
		if msg.ID <= lastID {
			continue
		}
		if err := writer.WriteMessage(&msg); err != nil {
			return
		}
		lastID = msg.ID
	}

	ticker := time.NewTicker(h.keepAlive)
	defer ticker.Stop()

	ctx := c.Request.Context()
	for {
		select {
		case <-ctx.Done():
			return
		case <-h.controller.Done():
			flushPending(writer, events, lastID)
			_ = writer.WriteDone()
			return
		case msg, ok := <-events:
			if !ok {
				logger.Warn().Msg("event subscriber dropped; closing stream")
				_ = writer.WriteError(errors.ErrCodeConflict, "stream fell behind", "reconnect with Last-Event-ID")
				return
			}
			if msg.ID <= lastID {
				continue
			}
			if err := writer.WriteMessage(&msg); err != nil {
				logger.Debug().Err(err).Msg("event stream write failed")
				return
			}
			lastID = msg.ID
		case <-ticker.C:
			if err := writer.WriteKeepAlive(); err != nil {
				return
			}
		}
	}
}

// flushPending writes the messages already buffered for the subscriber.
func flushPending(writer *sse.Writer, events <-chan models.Message, lastID int64) {
	for {
		select {
		case msg, ok := <-events:
			if !ok {
				return
			}
			if msg.ID <= lastID {
				continue
			}
			if err := writer.WriteMessage(&msg); err != nil {
				return
			}
			lastID = msg.ID
		default:
			return
		}
	}
}
