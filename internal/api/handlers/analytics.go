package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/unifiedui/chat-client/internal/api/dto"
	"github.com/unifiedui/chat-client/internal/api/middleware"
	"github.com/unifiedui/chat-client/internal/domain/errors"
	"github.com/unifiedui/chat-client/internal/services/chat"
)

// AnalyticsHandler handles the analytics panel endpoints.
type AnalyticsHandler struct {
	controller chat.Controller
}

// NewAnalyticsHandler creates a new AnalyticsHandler.
func NewAnalyticsHandler(controller chat.Controller) *AnalyticsHandler {
	return &AnalyticsHandler{
		controller: controller,
	}
}

// RequestAnalytics handles POST /analytics
// @Summary Request analytics
// @Description Fetches a snapshot from the backend and shows it. On failure the shown snapshot is unchanged.
// @Tags Analytics
// @Produce json
// @Success 200 {object} dto.AnalyticsResponse
// @Failure 502 {object} dto.ErrorResponse
// @Router /api/v1/chat-client/analytics [post]
func (h *AnalyticsHandler) RequestAnalytics(c *gin.Context) {
	snapshot, err := h.controller.RequestAnalytics(c.Request.Context())
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.AnalyticsResponse{Snapshot: snapshot})
}

// GetAnalytics handles GET /analytics
// @Summary Get shown analytics
// @Description Returns the shown snapshot
// @Tags Analytics
// @Produce json
// @Success 200 {object} dto.AnalyticsResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/v1/chat-client/analytics [get]
func (h *AnalyticsHandler) GetAnalytics(c *gin.Context) {
	snapshot := h.controller.Analytics()
	if snapshot == nil {
		middleware.HandleError(c, errors.NewNotFoundError("analytics snapshot", "no snapshot shown"))
		return
	}

	c.JSON(http.StatusOK, dto.AnalyticsResponse{Snapshot: snapshot})
}

// DismissAnalytics handles DELETE /analytics
// @Summary Dismiss analytics
// @Description Clears the shown snapshot
// @Tags Analytics
// @Success 204
// @Router /api/v1/chat-client/analytics [delete]
func (h *AnalyticsHandler) DismissAnalytics(c *gin.Context) {
	h.controller.DismissAnalytics()
	c.Status(http.StatusNoContent)
}

// RequestSentiment handles POST /analytics/sentiment
// @Summary Request sentiment trends
// @Description Fetches sentiment trends from the backend and shows them
// @Tags Analytics
// @Produce json
// @Success 200 {object} dto.SentimentResponse
// @Failure 502 {object} dto.ErrorResponse
// @Router /api/v1/chat-client/analytics/sentiment [post]
func (h *AnalyticsHandler) RequestSentiment(c *gin.Context) {
	trends, err := h.controller.RequestSentiment(c.Request.Context())
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.SentimentResponse{Trends: trends})
}

// GetSentiment handles GET /analytics/sentiment
// @Summary Get shown sentiment trends
// @Tags Analytics
// @Produce json
// @Success 200 {object} dto.SentimentResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/v1/chat-client/analytics/sentiment [get]
func (h *AnalyticsHandler) GetSentiment(c *gin.Context) {
	trends := h.controller.Sentiment()
	if trends == nil {
		middleware.HandleError(c, errors.NewNotFoundError("sentiment trends", "no trends shown"))
		return
	}

	c.JSON(http.StatusOK, dto.SentimentResponse{Trends: trends})
}

// DismissSentiment handles DELETE /analytics/sentiment
// @Summary Dismiss sentiment trends
// @Tags Analytics
// @Success 204
// @Router /api/v1/chat-client/analytics/sentiment [delete]
func (h *AnalyticsHandler) DismissSentiment(c *gin.Context) {
	h.controller.DismissSentiment()
	c.Status(http.StatusNoContent)
}
