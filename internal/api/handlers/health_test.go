// Package handlers_test provides unit tests for the API handlers.
package handlers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/unifiedui/chat-client/internal/api/dto"
	"github.com/unifiedui/chat-client/internal/api/handlers"
	"github.com/unifiedui/chat-client/internal/mocks"
	"github.com/unifiedui/chat-client/internal/testutils"
)

func TestHealthHandler_Health_AllHealthy(t *testing.T) {
	// Setup
	mockBackend := &mocks.MockConversationClient{}
	mockNotifier := mocks.NewMockNotifier()

	mockBackend.On("Ping", mock.Anything).Return(nil)
	mockNotifier.On("Ping", mock.Anything).Return(nil)

	handler := handlers.NewHealthHandler(mockBackend, mockNotifier)

	router := testutils.SetupTestRouter()
	router.GET("/health", handler.Health)

	// Execute
	w := testutils.PerformRequest(router, "GET", "/health", nil, nil)

	// Assert
	testutils.AssertStatusCode(t, http.StatusOK, w)

	var response dto.HealthResponse
	testutils.ParseJSONResponse(t, w, &response)

	assert.Equal(t, "healthy", response.Status)
	assert.Equal(t, "healthy", response.Components["backend"])
	assert.Equal(t, "healthy", response.Components["notifier"])

	mockBackend.AssertExpectations(t)
	mockNotifier.AssertExpectations(t)
}

func TestHealthHandler_Health_BackendUnhealthy(t *testing.T) {
	// Setup
	mockBackend := &mocks.MockConversationClient{}
	mockNotifier := mocks.NewMockNotifier()

	mockBackend.On("Ping", mock.Anything).Return(assert.AnError)
	mockNotifier.On("Ping", mock.Anything).Return(nil)

	handler := handlers.NewHealthHandler(mockBackend, mockNotifier)

	router := testutils.SetupTestRouter()
	router.GET("/health", handler.Health)

	// Execute
	w := testutils.PerformRequest(router, "GET", "/health", nil, nil)

	// Assert
	testutils.AssertStatusCode(t, http.StatusServiceUnavailable, w)

	var response dto.HealthResponse
	testutils.ParseJSONResponse(t, w, &response)

	assert.Equal(t, "unhealthy", response.Status)
	assert.Equal(t, "unhealthy", response.Components["backend"])
	assert.Equal(t, "healthy", response.Components["notifier"])
}

func TestHealthHandler_Health_NilNotifier(t *testing.T) {
	mockBackend := &mocks.MockConversationClient{}
	mockBackend.On("Ping", mock.Anything).Return(nil)

	handler := handlers.NewHealthHandler(mockBackend, nil)

	router := testutils.SetupTestRouter()
	router.GET("/health", handler.Health)

	w := testutils.PerformRequest(router, "GET", "/health", nil, nil)

	testutils.AssertStatusCode(t, http.StatusOK, w)
}

func TestHealthHandler_Ready_IgnoresBackend(t *testing.T) {
	// Setup
	mockBackend := &mocks.MockConversationClient{}
	mockNotifier := mocks.NewMockNotifier()

	mockNotifier.On("Ping", mock.Anything).Return(nil)

	handler := handlers.NewHealthHandler(mockBackend, mockNotifier)

	router := testutils.SetupTestRouter()
	router.GET("/ready", handler.Ready)

	// Execute
	w := testutils.PerformRequest(router, "GET", "/ready", nil, nil)

	// Assert
	testutils.AssertStatusCode(t, http.StatusOK, w)
	mockBackend.AssertNotCalled(t, "Ping", mock.Anything)
}

func TestHealthHandler_Ready_NotReady(t *testing.T) {
	// Setup
	mockBackend := &mocks.MockConversationClient{}
	mockNotifier := mocks.NewMockNotifier()

	mockNotifier.On("Ping", mock.Anything).Return(assert.AnError)

	handler := handlers.NewHealthHandler(mockBackend, mockNotifier)

	router := testutils.SetupTestRouter()
	router.GET("/ready", handler.Ready)

	// Execute
	w := testutils.PerformRequest(router, "GET", "/ready", nil, nil)

	// Assert
	testutils.AssertStatusCode(t, http.StatusServiceUnavailable, w)
}

func TestHealthHandler_Live(t *testing.T) {
	handler := handlers.NewHealthHandler(&mocks.MockConversationClient{}, mocks.NewMockNotifier())

	router := testutils.SetupTestRouter()
	router.GET("/live", handler.Live)

	w := testutils.PerformRequest(router, "GET", "/live", nil, nil)

	testutils.AssertStatusCode(t, http.StatusOK, w)
}
