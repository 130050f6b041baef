package routes_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unifiedui/chat-client/internal/api/dto"
	"github.com/unifiedui/chat-client/internal/api/handlers"
	"github.com/unifiedui/chat-client/internal/api/middleware"
	"github.com/unifiedui/chat-client/internal/api/routes"
	"github.com/unifiedui/chat-client/internal/core/notify"
	domainerrors "github.com/unifiedui/chat-client/internal/domain/errors"
	"github.com/unifiedui/chat-client/internal/mocks"
	"github.com/unifiedui/chat-client/internal/services/chat"
	"github.com/unifiedui/chat-client/internal/testutils"
)

const origin = "http://localhost:3000"

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	conversation := &mocks.MockConversationClient{}
	ctrl, err := chat.NewController(&chat.Config{
		Conversation: conversation,
		Analytics:    &mocks.MockAnalyticsClient{},
		Session:      testutils.NewTestSession(),
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = ctrl.Close() })

	cfg := &routes.Config{
		HealthHandler:    handlers.NewHealthHandler(conversation, notify.NewNopNotifier()),
		MessagesHandler:  handlers.NewMessagesHandler(ctrl),
		AnalyticsHandler: handlers.NewAnalyticsHandler(ctrl),
		EventsHandler:    handlers.NewEventsHandler(ctrl, time.Second),
	}

	router := testutils.SetupTestRouter()
	routes.SetupWithMiddleware(router, cfg,
		middleware.NewLoggingMiddlewareWithLogger(zerolog.Nop()),
		middleware.NewErrorMiddleware(ctrl.Session().ID),
		middleware.DefaultCORSConfig([]string{origin}),
	)
	return router
}

func TestRoutes_UnknownPath(t *testing.T) {
	router := newTestRouter(t)

	w := testutils.PerformRequest(router, "GET", routes.BasePath+"/nope", nil, nil)

	testutils.AssertStatusCode(t, http.StatusNotFound, w)
	var response dto.ErrorResponse
	testutils.ParseJSONResponse(t, w, &response)
	assert.Equal(t, domainerrors.ErrCodeNotFound, response.Code)
	assert.NotEmpty(t, response.RequestID)
}

func TestRoutes_WrongMethod(t *testing.T) {
	router := newTestRouter(t)

	w := testutils.PerformRequest(router, "DELETE", routes.BasePath+"/messages", nil, nil)

	testutils.AssertStatusCode(t, http.StatusMethodNotAllowed, w)
	testutils.AssertErrorCode(t, "METHOD_NOT_ALLOWED", w)
}

func TestRoutes_Preflight(t *testing.T) {
	router := newTestRouter(t)

	for _, path := range []string{routes.BasePath + "/messages", routes.BasePath + "/analytics/sentiment"} {
		t.Run(path, func(t *testing.T) {
			w := testutils.PerformRequest(router, "OPTIONS", path, nil, map[string]string{
				"Origin":                         origin,
				"Access-Control-Request-Method":  "POST",
				"Access-Control-Request-Headers": "content-type",
			})

			testutils.AssertStatusCode(t, http.StatusNoContent, w)
			assert.Equal(t, origin, w.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}
