package models

import "time"

// Session identifies one conversation for the backend's benefit.
type Session struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewSession creates a new session with the given id.
func NewSession(id string) *Session {
	return &Session{
		ID:        id,
		CreatedAt: time.Now().UTC(),
	}
}
