// Package sse provides Server-Sent Events support for streaming the message log.
package sse

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/unifiedui/chat-client/internal/domain/models"
)

// EventType represents the type of SSE event.
type EventType string

const (
	// EventReady is sent once when the stream opens.
	EventReady EventType = "ready"
	// EventMessage carries one appended message.
	EventMessage EventType = "message"
	// EventError is an error event.
	EventError EventType = "error"
	// EventDone signals that the server is closing the stream.
	EventDone EventType = "done"
)

// Writer writes Server-Sent Events to an HTTP response.
type Writer struct {
	writer  http.ResponseWriter
	flusher http.Flusher
}

// NewWriter creates a new SSE writer.
func NewWriter(w http.ResponseWriter) (*Writer, error) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		return nil, fmt.Errorf("streaming not supported")
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")

	return &Writer{
		writer:  w,
		flusher: flusher,
	}, nil
}

// WriteEvent writes an SSE event with the given type and data.
func (w *Writer) WriteEvent(eventType EventType, data string) error {
	_, err := fmt.Fprintf(w.writer, "event: %s\ndata: %s\n\n", eventType, data)
	if err != nil {
		return fmt.Errorf("failed to write event: %w", err)
	}
	w.flusher.Flush()
	return nil
}

// WriteEventWithID writes an SSE event with an ID.
func (w *Writer) WriteEventWithID(eventType EventType, id string, data string) error {
	_, err := fmt.Fprintf(w.writer, "id: %s\nevent: %s\ndata: %s\n\n", id, eventType, data)
	if err != nil {
		return fmt.Errorf("failed to write event with id: %w", err)
	}
	w.flusher.Flush()
	return nil
}

// WriteJSON writes an SSE event with JSON-encoded data.
func (w *Writer) WriteJSON(eventType EventType, data interface{}) error {
	jsonData, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal data: %w", err)
	}
	return w.WriteEvent(eventType, string(jsonData))
}

// WriteMessage writes a message event using the message ID as the event ID,
// so a reconnecting browser can resume with Last-Event-ID.
func (w *Writer) WriteMessage(msg *models.Message) error {
	jsonData, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}
	return w.WriteEventWithID(EventMessage, strconv.FormatInt(msg.ID, 10), string(jsonData))
}

// ReadyEvent is the payload of the ready event.
type ReadyEvent struct {
	SessionID string `json:"sessionId"`
}

// WriteReady writes the ready event.
func (w *Writer) WriteReady(sessionID string) error {
	return w.WriteJSON(EventReady, &ReadyEvent{SessionID: sessionID})
}

// ErrorEvent represents an error event.
type ErrorEvent struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// WriteError writes an error event.
func (w *Writer) WriteError(code, message string, details string) error {
	return w.WriteJSON(EventError, &ErrorEvent{
		Code:    code,
		Message: message,
		Details: details,
	})
}

// WriteKeepAlive writes a comment line that keeps idle proxies from closing the stream.
func (w *Writer) WriteKeepAlive() error {
	if _, err := fmt.Fprint(w.writer, ": keep-alive\n\n"); err != nil {
		return fmt.Errorf("failed to write keep-alive: %w", err)
	}
	w.flusher.Flush()
	return nil
}

// WriteDone writes a done event to signal stream completion.
func (w *Writer) WriteDone() error {
	return w.WriteEvent(EventDone, "stream completed")
}
