// Package session provides the client-side session identity.
package session

import (
	"github.com/google/uuid"

	"github.com/unifiedui/chat-client/internal/domain/models"
)

// IDPrefix prefixes every generated session id.
const IDPrefix = "session_"

// Create returns a new session with a random 128-bit identifier.
func Create() *models.Session {
	return models.NewSession(IDPrefix + uuid.NewString())
}
