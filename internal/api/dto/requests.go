// Package dto provides Data Transfer Objects for API requests and responses.
package dto

// SendMessageRequest represents the request body for sending a message.
// Blank text is rejected by the controller, not by binding, so the error
// code matches the one the REPL reports.
type SendMessageRequest struct {
	Text string `json:"text" binding:"max=32000"`
	// Wait blocks the request until the reply has been appended.
	Wait bool `json:"wait"`
}

// SetInputRequest represents the request body for replacing the pending input.
type SetInputRequest struct {
	Text string `json:"text" binding:"max=32000"`
}

// GetMessagesRequest represents the query parameters for listing messages.
type GetMessagesRequest struct {
	// AfterID returns only messages with a greater ID.
	AfterID int64 `form:"afterId" binding:"omitempty,min=0"`
}
