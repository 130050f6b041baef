// Package handlers provides HTTP handlers for the API.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/unifiedui/chat-client/internal/api/dto"
	"github.com/unifiedui/chat-client/internal/core/notify"
	"github.com/unifiedui/chat-client/internal/services/conversation"
)

// HealthHandler handles health check endpoints.
type HealthHandler struct {
	backend  conversation.Client
	notifier notify.Notifier
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(backend conversation.Client, notifier notify.Notifier) *HealthHandler {
	if notifier == nil {
		notifier = notify.NewNopNotifier()
	}
	return &HealthHandler{
		backend:  backend,
		notifier: notifier,
	}
}

// Health handles the /health endpoint.
// @Summary Health check
// @Description Returns the overall health status and component statuses
// @Tags Health
// @Produce json
// @Success 200 {object} dto.HealthResponse "Client healthy"
// @Failure 503 {object} dto.HealthResponse "Client unhealthy"
// @Router /api/v1/chat-client/health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	components := make(map[string]string)
	healthy := true

	// Check backend
	if err := h.backend.Ping(c.Request.Context()); err != nil {
		components["backend"] = "unhealthy"
		healthy = false
	} else {
		components["backend"] = "healthy"
	}

	// Check notifier
	if err := h.notifier.Ping(c.Request.Context()); err != nil {
		components["notifier"] = "unhealthy"
		healthy = false
	} else {
		components["notifier"] = "healthy"
	}

	status := "healthy"
	statusCode := http.StatusOK
	if !healthy {
		status = "unhealthy"
		statusCode = http.StatusServiceUnavailable
	}

	c.JSON(statusCode, dto.HealthResponse{
		Status:     status,
		Components: components,
	})
}

// Ready handles the /ready endpoint.
// The backend is not required: sends fail soft into error messages.
// @Summary Readiness check
// @Description Returns 200 if the client is ready to accept traffic
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]string "Client ready"
// @Failure 503 {object} map[string]string "Client not ready"
// @Router /api/v1/chat-client/ready [get]
func (h *HealthHandler) Ready(c *gin.Context) {
	if err := h.notifier.Ping(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "not ready",
			"reason": "notifier unavailable",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "ready",
	})
}

// Live handles the /live endpoint.
// @Summary Liveness check
// @Description Returns 200 if the client is alive
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]string "Client alive"
// @Router /api/v1/chat-client/live [get]
func (h *HealthHandler) Live(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "alive",
	})
}
