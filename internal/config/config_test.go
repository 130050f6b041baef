package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unifiedui/chat-client/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("BACKEND_URL", "")
	t.Setenv("CHAT_TIMEOUT_SECONDS", "")
	t.Setenv("ALLOWED_ORIGINS", "")
	t.Setenv("NOTIFIER_TYPE", "")

	cfg, err := config.Load()

	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8000", cfg.Backend.URL)
	assert.Equal(t, 30*time.Second, cfg.Backend.ChatTimeout)
	assert.Equal(t, 10*time.Second, cfg.Backend.AnalyticsTimeout)
	assert.Equal(t, []string{"http://localhost:3000", "http://127.0.0.1:3000"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, "none", cfg.Notifier.Type)
	assert.Equal(t, "chat", cfg.Notifier.ChannelPrefix)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("BACKEND_URL", "http://chatbot:9000/")
	t.Setenv("CHAT_TIMEOUT_SECONDS", "5")
	t.Setenv("SERVER_PORT", "9999")
	t.Setenv("ALLOWED_ORIGINS", "http://a.example, ,http://b.example")
	t.Setenv("NOTIFIER_TYPE", "redis")
	t.Setenv("REDIS_DB", "3")

	cfg, err := config.Load()

	require.NoError(t, err)
	assert.Equal(t, "http://chatbot:9000", cfg.Backend.URL)
	assert.Equal(t, 5*time.Second, cfg.Backend.ChatTimeout)
	assert.Equal(t, "127.0.0.1:9999", cfg.Server.Address())
	assert.Equal(t, []string{"http://a.example", "http://b.example"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, "redis", cfg.Notifier.Type)
	assert.Equal(t, 3, cfg.Notifier.DB)
}

func TestLoad_InvalidIntFallsBackToDefault(t *testing.T) {
	t.Setenv("CHAT_TIMEOUT_SECONDS", "soon")

	cfg, err := config.Load()

	require.NoError(t, err)
	assert.Equal(t, 30*time.Second, cfg.Backend.ChatTimeout)
}

func TestLoad_NonPositiveTimeout(t *testing.T) {
	t.Setenv("CHAT_TIMEOUT_SECONDS", "0")

	cfg, err := config.Load()

	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "CHAT_TIMEOUT_SECONDS")
}
