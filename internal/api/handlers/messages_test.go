package handlers_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/unifiedui/chat-client/internal/api/dto"
	"github.com/unifiedui/chat-client/internal/api/handlers"
	domainerrors "github.com/unifiedui/chat-client/internal/domain/errors"
	"github.com/unifiedui/chat-client/internal/domain/models"
	"github.com/unifiedui/chat-client/internal/mocks"
	"github.com/unifiedui/chat-client/internal/services/chat"
	"github.com/unifiedui/chat-client/internal/testutils"
)

type handlerFixture struct {
	conversation *mocks.MockConversationClient
	analytics    *mocks.MockAnalyticsClient
	controller   chat.Controller
	router       *gin.Engine
}

func newHandlerFixture(t *testing.T) *handlerFixture {
	t.Helper()
	f := &handlerFixture{
		conversation: &mocks.MockConversationClient{},
		analytics:    &mocks.MockAnalyticsClient{},
	}
	ctrl, err := chat.NewController(&chat.Config{
		Conversation: f.conversation,
		Analytics:    f.analytics,
		Session:      testutils.NewTestSession(),
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = ctrl.Close() })
	f.controller = ctrl

	messages := handlers.NewMessagesHandler(ctrl)
	analytics := handlers.NewAnalyticsHandler(ctrl)

	f.router = testutils.SetupTestRouter()
	f.router.GET("/session", messages.GetSession)
	f.router.GET("/state", messages.GetState)
	f.router.PUT("/input", messages.SetInput)
	f.router.GET("/messages", messages.GetMessages)
	f.router.POST("/messages", messages.SendMessage)
	f.router.POST("/analytics", analytics.RequestAnalytics)
	f.router.GET("/analytics", analytics.GetAnalytics)
	f.router.DELETE("/analytics", analytics.DismissAnalytics)
	f.router.POST("/analytics/sentiment", analytics.RequestSentiment)
	f.router.GET("/analytics/sentiment", analytics.GetSentiment)
	f.router.DELETE("/analytics/sentiment", analytics.DismissSentiment)
	return f
}

func waitIdle(t *testing.T, ctrl chat.Controller) {
	t.Helper()
	require.Eventually(t, func() bool {
		return ctrl.State() == chat.StateIdle
	}, 2*time.Second, 5*time.Millisecond)
}

func TestMessagesHandler_GetSession(t *testing.T) {
	f := newHandlerFixture(t)

	w := testutils.PerformRequest(f.router, "GET", "/session", nil, nil)

	testutils.AssertStatusCode(t, http.StatusOK, w)
	var response dto.SessionResponse
	testutils.ParseJSONResponse(t, w, &response)
	assert.Equal(t, testutils.TestSessionID, response.SessionID)
}

func TestMessagesHandler_SetInputAndState(t *testing.T) {
	f := newHandlerFixture(t)

	w := testutils.PerformRequest(f.router, "PUT", "/input", dto.SetInputRequest{Text: "draft"}, nil)

	testutils.AssertStatusCode(t, http.StatusOK, w)
	assert.Equal(t, "draft", f.controller.Input())

	w = testutils.PerformRequest(f.router, "GET", "/state", nil, nil)
	testutils.AssertStatusCode(t, http.StatusOK, w)

	var state dto.StateResponse
	testutils.ParseJSONResponse(t, w, &state)
	assert.Equal(t, chat.StateIdle, state.State)
	assert.Equal(t, "draft", state.Input)
	assert.Equal(t, 0, state.MessageCount)
	assert.False(t, state.AnalyticsShown)
}

func TestMessagesHandler_SendMessage_Wait(t *testing.T) {
	f := newHandlerFixture(t)
	f.conversation.On("Send", mock.Anything, mock.Anything, "hello").Return(testutils.NewTestReply())

	w := testutils.PerformRequest(f.router, "POST", "/messages", dto.SendMessageRequest{Text: "hello", Wait: true}, nil)

	testutils.AssertStatusCode(t, http.StatusOK, w)
	var response dto.SendMessageResponse
	testutils.ParseJSONResponse(t, w, &response)
	require.NotNil(t, response.Message)
	require.NotNil(t, response.Reply)
	assert.Equal(t, "hello", response.Message.Text)
	assert.Equal(t, models.SenderUser, response.Message.Sender)
	assert.Equal(t, "Hi", response.Reply.Text)
	assert.Equal(t, "greeting", response.Reply.Metadata.IntentLabel())
	assert.Equal(t, chat.StateIdle, response.State)
}

func TestMessagesHandler_SendMessage_Accepted(t *testing.T) {
	f := newHandlerFixture(t)
	f.conversation.On("Send", mock.Anything, mock.Anything, "hello").Return(models.NewErrorReply())

	w := testutils.PerformRequest(f.router, "POST", "/messages", dto.SendMessageRequest{Text: "hello"}, nil)

	testutils.AssertStatusCode(t, http.StatusAccepted, w)
	var response dto.SendMessageResponse
	testutils.ParseJSONResponse(t, w, &response)
	assert.Equal(t, "hello", response.Message.Text)
	assert.Nil(t, response.Reply)

	waitIdle(t, f.controller)
	messages := f.controller.Messages()
	require.Len(t, messages, 2)
	assert.True(t, messages[1].IsError())
}

func TestMessagesHandler_SendMessage_Blank(t *testing.T) {
	f := newHandlerFixture(t)

	w := testutils.PerformRequest(f.router, "POST", "/messages", dto.SendMessageRequest{Text: "   "}, nil)

	testutils.AssertStatusCode(t, http.StatusBadRequest, w)
	testutils.AssertErrorCode(t, domainerrors.ErrCodeValidation, w)
	assert.Empty(t, f.controller.Messages())
}

func TestMessagesHandler_SendMessage_InvalidBody(t *testing.T) {
	f := newHandlerFixture(t)

	w := testutils.PerformRawRequest(f.router, "POST", "/messages", `{"text":`)

	testutils.AssertStatusCode(t, http.StatusBadRequest, w)
	testutils.AssertErrorCode(t, domainerrors.ErrCodeValidation, w)
}

func TestMessagesHandler_SendMessage_Conflict(t *testing.T) {
	f := newHandlerFixture(t)
	release := make(chan struct{})
	f.conversation.On("Send", mock.Anything, mock.Anything, "first").
		Run(func(mock.Arguments) { <-release }).
		Return(testutils.NewTestReply())

	w := testutils.PerformRequest(f.router, "POST", "/messages", dto.SendMessageRequest{Text: "first"}, nil)
	testutils.AssertStatusCode(t, http.StatusAccepted, w)

	w = testutils.PerformRequest(f.router, "POST", "/messages", dto.SendMessageRequest{Text: "second"}, nil)

	testutils.AssertStatusCode(t, http.StatusConflict, w)
	testutils.AssertErrorCode(t, domainerrors.ErrCodeConflict, w)
	assert.Len(t, f.controller.Messages(), 1)

	close(release)
	waitIdle(t, f.controller)
}

func TestMessagesHandler_GetMessages(t *testing.T) {
	f := newHandlerFixture(t)
	f.conversation.On("Send", mock.Anything, mock.Anything, "hello").Return(testutils.NewTestReply())

	w := testutils.PerformRequest(f.router, "POST", "/messages", dto.SendMessageRequest{Text: "hello", Wait: true}, nil)
	testutils.AssertStatusCode(t, http.StatusOK, w)

	w = testutils.PerformRequest(f.router, "GET", "/messages", nil, nil)
	testutils.AssertStatusCode(t, http.StatusOK, w)

	var response dto.GetMessagesResponse
	testutils.ParseJSONResponse(t, w, &response)
	require.Len(t, response.Messages, 2)
	assert.Equal(t, 2, response.Total)
	assert.Equal(t, models.SenderUser, response.Messages[0].Sender)
	assert.Equal(t, models.SenderBot, response.Messages[1].Sender)

	path := fmt.Sprintf("/messages?afterId=%d", response.Messages[0].ID)
	w = testutils.PerformRequest(f.router, "GET", path, nil, nil)
	testutils.AssertStatusCode(t, http.StatusOK, w)

	var after dto.GetMessagesResponse
	testutils.ParseJSONResponse(t, w, &after)
	require.Len(t, after.Messages, 1)
	assert.Equal(t, "Hi", after.Messages[0].Text)
	assert.Equal(t, 2, after.Total)
}

func TestMessagesHandler_GetMessages_InvalidQuery(t *testing.T) {
	f := newHandlerFixture(t)

	w := testutils.PerformRequest(f.router, "GET", "/messages?afterId=abc", nil, nil)

	testutils.AssertStatusCode(t, http.StatusBadRequest, w)
}
