// Package publish delivers digest text to outbound destinations.
package publish

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

// Sender delivers one text payload to a destination channel.
type Sender interface {
	Send(ctx context.Context, text string) error
}

// TelegramSender posts digests to a Telegram chat via the bot API.
type TelegramSender struct {
	botToken   string
	chatID     string
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// TelegramOption customizes the sender.
type TelegramOption func(*TelegramSender)

// WithBaseURL overrides the Telegram API base URL.
func WithBaseURL(baseURL string) TelegramOption {
	return func(s *TelegramSender) { s.baseURL = baseURL }
}

// WithHTTPClient overrides the HTTP client.
func WithHTTPClient(hc *http.Client) TelegramOption {
	return func(s *TelegramSender) { s.httpClient = hc }
}

// NewTelegramSender creates a sender for the given bot and chat.
func NewTelegramSender(botToken, chatID string, opts ...TelegramOption) *TelegramSender {
	s := &TelegramSender{
		botToken:   botToken,
		chatID:     chatID,
		baseURL:    "https://api.telegram.org",
		httpClient: &http.Client{Timeout: 20 * time.Second},
		logger:     slog.Default().With("component", "telegram_publisher"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Send posts the text with web page previews disabled.
func (s *TelegramSender) Send(ctx context.Context, text string) error {
	if s.botToken == "" || s.chatID == "" {
		return fmt.Errorf("TG_BOT_TOKEN and TG_VIP_CHAT_ID must be configured to publish digests")
	}

	body, err := json.Marshal(map[string]interface{}{
		"chat_id":                  s.chatID,
		"text":                     text,
		"disable_web_page_preview": true,
	})
	if err != nil {
		return fmt.Errorf("failed to encode telegram payload: %w", err)
	}

	url := fmt.Sprintf("%s/bot%s/sendMessage", s.baseURL, s.botToken)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build telegram request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("telegram request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 500))
		s.logger.Error("telegram_publish_failed", "status", resp.StatusCode, "body", string(snippet))
		return fmt.Errorf("telegram returned status %d", resp.StatusCode)
	}

	s.logger.Info("telegram_publish_ok", "status", resp.StatusCode)
	return nil
}
