package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/unifiedui/chat-client/internal/api/dto"
	"github.com/unifiedui/chat-client/internal/api/middleware"
	"github.com/unifiedui/chat-client/internal/domain/errors"
	"github.com/unifiedui/chat-client/internal/domain/models"
	"github.com/unifiedui/chat-client/internal/services/chat"
)

// MessagesHandler handles session, input and message endpoints.
type MessagesHandler struct {
	controller chat.Controller
}

// NewMessagesHandler creates a new MessagesHandler.
func NewMessagesHandler(controller chat.Controller) *MessagesHandler {
	return &MessagesHandler{
		controller: controller,
	}
}

// GetSession handles GET /session
// @Summary Get session
// @Description Returns the client session sent with every chat request
// @Tags Session
// @Produce json
// @Success 200 {object} dto.SessionResponse
// @Router /api/v1/chat-client/session [get]
func (h *MessagesHandler) GetSession(c *gin.Context) {
	session := h.controller.Session()
	c.JSON(http.StatusOK, dto.SessionResponse{
		SessionID: session.ID,
		CreatedAt: session.CreatedAt,
	})
}

// GetState handles GET /state
// @Summary Get state
// @Description Returns the send state, pending input and panel visibility
// @Tags Session
// @Produce json
// @Success 200 {object} dto.StateResponse
// @Router /api/v1/chat-client/state [get]
func (h *MessagesHandler) GetState(c *gin.Context) {
	c.JSON(http.StatusOK, h.controller.View())
}

// SetInput handles PUT /input
// @Summary Set input
// @Description Replaces the pending input buffer
// @Tags Session
// @Accept json
// @Produce json
// @Param request body dto.SetInputRequest true "Pending input"
// @Success 200 {object} dto.StateResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/v1/chat-client/input [put]
func (h *MessagesHandler) SetInput(c *gin.Context) {
	var req dto.SetInputRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	h.controller.SetInput(req.Text)
	c.JSON(http.StatusOK, h.controller.View())
}

// GetMessages handles GET /messages
// @Summary Get messages
// @Description Returns the conversation in append order
// @Tags Messages
// @Produce json
// @Param afterId query int false "Only messages with a greater id" minimum(0)
// @Success 200 {object} dto.GetMessagesResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/v1/chat-client/messages [get]
func (h *MessagesHandler) GetMessages(c *gin.Context) {
	var req dto.GetMessagesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		middleware.HandleError(c, errors.NewValidationError("invalid query parameters", err.Error()))
		return
	}

	all := h.controller.Messages()
	messages := make([]models.Message, 0, len(all))
	for _, msg := range all {
		if msg.ID > req.AfterID {
			messages = append(messages, msg)
		}
	}

	c.JSON(http.StatusOK, dto.GetMessagesResponse{
		Messages: messages,
		Total:    len(all),
	})
}

// SendMessage handles POST /messages
// @Summary Send a message
// @Description Appends the user message and sends it to the backend. With wait=true the reply is returned as well.
// @Tags Messages
// @Accept json
// @Produce json
// @Param request body dto.SendMessageRequest true "Message text"
// @Success 200 {object} dto.SendMessageResponse "Reply appended"
// @Success 202 {object} dto.SendMessageResponse "Send in flight"
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /api/v1/chat-client/messages [post]
func (h *MessagesHandler) SendMessage(c *gin.Context) {
	var req dto.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	submission, err := h.controller.Submit(req.Text)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	if !req.Wait {
		c.JSON(http.StatusAccepted, dto.SendMessageResponse{
			Message: &submission.Message,
			State:   h.controller.State(),
		})
		return
	}

	select {
	case reply := <-submission.Reply:
		c.JSON(http.StatusOK, dto.SendMessageResponse{
			Message: &submission.Message,
			Reply:   reply,
			State:   h.controller.State(),
		})
	case <-c.Request.Context().Done():
		// client went away; the reply is still appended to the log
	}
}
