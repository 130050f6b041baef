package models_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unifiedui/chat-client/internal/domain/models"
)

func TestNewUserMessage(t *testing.T) {
	msg := models.NewUserMessage("hello")

	assert.Equal(t, "hello", msg.Text)
	assert.Equal(t, models.SenderUser, msg.Sender)
	assert.Equal(t, models.MessageStatusNormal, msg.Status)
	assert.Nil(t, msg.Metadata)
	assert.True(t, msg.IsUserMessage())
	assert.False(t, msg.IsBotMessage())
	assert.NotEmpty(t, msg.Timestamp)
	assert.False(t, msg.CreatedAt.IsZero())
}

func TestNewErrorReply(t *testing.T) {
	msg := models.NewErrorReply()

	assert.Equal(t, models.ErrorReplyText, msg.Text)
	assert.Equal(t, models.SenderBot, msg.Sender)
	assert.True(t, msg.IsError())
	assert.Nil(t, msg.Metadata)
}

func TestNewBotReply(t *testing.T) {
	meta := &models.Metadata{
		Intent:              map[string]interface{}{"intent": "greeting", "confidence": 0.9},
		Sentiment:           map[string]interface{}{"label": "positive"},
		ResponseTimeSeconds: 0.42,
	}

	msg := models.NewBotReply("Hi", meta)

	assert.Equal(t, "Hi", msg.Text)
	assert.True(t, msg.IsBotMessage())
	assert.False(t, msg.IsError())
	require.NotNil(t, msg.Metadata)
	assert.Equal(t, "greeting", msg.Metadata.IntentLabel())
	assert.Equal(t, "positive", msg.Metadata.SentimentLabel())
}

func TestMetadata_LabelsAreNilSafe(t *testing.T) {
	var nilMeta *models.Metadata
	assert.Equal(t, "", nilMeta.IntentLabel())
	assert.Equal(t, "", nilMeta.SentimentLabel())

	meta := &models.Metadata{Intent: map[string]interface{}{"intent": 7}}
	assert.Equal(t, "", meta.IntentLabel())
	assert.Equal(t, "", meta.SentimentLabel())
}

func TestMessage_JSONOmitsMissingMetadata(t *testing.T) {
	data, err := json.Marshal(models.NewErrorReply())
	require.NoError(t, err)

	var raw map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.NotContains(t, raw, "metadata")
	assert.Equal(t, "error", raw["status"])
	assert.Equal(t, "bot", raw["sender"])
}
