// Package models contains domain models for the chat client.
package models

import "time"

// Sender identifies who produced a message.
type Sender string

const (
	// SenderUser represents a message typed by the user.
	SenderUser Sender = "user"
	// SenderBot represents a message produced for the bot side of the thread.
	SenderBot Sender = "bot"
)

// MessageStatus represents the status of a message.
type MessageStatus string

const (
	// MessageStatusNormal marks a regular message.
	MessageStatusNormal MessageStatus = "normal"
	// MessageStatusError marks a synthetic bot message produced because the backend call failed.
	MessageStatusError MessageStatus = "error"
)

// ErrorReplyText is the fixed text shown when a send fails.
const ErrorReplyText = "Sorry, I encountered an error. Please try again."

// TimestampLayout is the display layout of Message.Timestamp.
const TimestampLayout = "15:04:05"

// Metadata holds the backend annotations of a successful bot reply.
// Intent and Sentiment are passed through verbatim from the backend.
type Metadata struct {
	Intent              map[string]interface{} `json:"intent"`
	Sentiment           map[string]interface{} `json:"sentiment"`
	ResponseTimeSeconds float64                `json:"responseTimeSeconds"`
}

// IntentLabel returns intent.intent, or "" when absent.
func (m *Metadata) IntentLabel() string {
	if m == nil {
		return ""
	}
	return stringField(m.Intent, "intent")
}

// SentimentLabel returns sentiment.label, or "" when absent.
func (m *Metadata) SentimentLabel() string {
	if m == nil {
		return ""
	}
	return stringField(m.Sentiment, "label")
}

// Message is one line of the conversation.
type Message struct {
	// ID is assigned by the message store on append.
	ID        int64         `json:"id"`
	Text      string        `json:"text"`
	Sender    Sender        `json:"sender"`
	Timestamp string        `json:"timestamp"`
	CreatedAt time.Time     `json:"createdAt"`
	Status    MessageStatus `json:"status"`
	Metadata  *Metadata     `json:"metadata,omitempty"`
}

// NewUserMessage creates a new user Message.
func NewUserMessage(text string) *Message {
	return newMessage(SenderUser, text, MessageStatusNormal, nil)
}

// NewBotReply creates a successful bot Message carrying metadata.
func NewBotReply(text string, metadata *Metadata) *Message {
	return newMessage(SenderBot, text, MessageStatusNormal, metadata)
}

// NewErrorReply creates the synthetic bot Message used when a send fails.
func NewErrorReply() *Message {
	return newMessage(SenderBot, ErrorReplyText, MessageStatusError, nil)
}

func newMessage(sender Sender, text string, status MessageStatus, metadata *Metadata) *Message {
	now := time.Now()
	return &Message{
		Text:      text,
		Sender:    sender,
		Timestamp: now.Format(TimestampLayout),
		CreatedAt: now.UTC(),
		Status:    status,
		Metadata:  metadata,
	}
}

// IsUserMessage returns true if this is a user message.
func (m *Message) IsUserMessage() bool {
	return m.Sender == SenderUser
}

// IsBotMessage returns true if this is a bot message.
func (m *Message) IsBotMessage() bool {
	return m.Sender == SenderBot
}

// IsError returns true if this message stands in for a failed send.
func (m *Message) IsError() bool {
	return m.Status == MessageStatusError
}

func stringField(obj map[string]interface{}, key string) string {
	if obj == nil {
		return ""
	}
	s, _ := obj[key].(string)
	return s
}
