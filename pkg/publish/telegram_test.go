package publish

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTelegramSenderSend(t *testing.T) {
	var gotPath string
	var gotBody map[string]interface{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	sender := NewTelegramSender("bot-token", "chat-42", WithBaseURL(server.URL))
	require.NoError(t, sender.Send(context.Background(), "digest text"))

	assert.Equal(t, "/botbot-token/sendMessage", gotPath)
	assert.Equal(t, "chat-42", gotBody["chat_id"])
	assert.Equal(t, "digest text", gotBody["text"])
	assert.Equal(t, true, gotBody["disable_web_page_preview"])
}

func TestTelegramSenderStatusError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad request", http.StatusBadRequest)
	}))
	defer server.Close()

	sender := NewTelegramSender("bot-token", "chat-42", WithBaseURL(server.URL))
	err := sender.Send(context.Background(), "digest text")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 400")
}

func TestTelegramSenderRequiresConfig(t *testing.T) {
	sender := NewTelegramSender("", "")
	err := sender.Send(context.Background(), "digest text")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "TG_BOT_TOKEN")
}
