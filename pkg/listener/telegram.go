package listener

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// Source yields new feed messages in arrival order. Implementations track
// their own cursor so each message is returned once.
type Source interface {
	Poll(ctx context.Context) ([]Message, error)
}

// BotSource reads channel posts through the Telegram bot API getUpdates
// long-poll cursor.
type BotSource struct {
	botToken   string
	channel    string
	baseURL    string
	httpClient *http.Client
	offset     int64
	logger     *slog.Logger
}

// BotSourceOption customizes the source.
type BotSourceOption func(*BotSource)

// WithSourceBaseURL overrides the Telegram API base URL.
func WithSourceBaseURL(baseURL string) BotSourceOption {
	return func(s *BotSource) { s.baseURL = baseURL }
}

// WithSourceHTTPClient overrides the HTTP client.
func WithSourceHTTPClient(hc *http.Client) BotSourceOption {
	return func(s *BotSource) { s.httpClient = hc }
}

// NewBotSource creates a source for one channel. The channel is matched by
// @username or numeric chat id.
func NewBotSource(botToken, channel string, opts ...BotSourceOption) *BotSource {
	s := &BotSource{
		botToken:   botToken,
		channel:    channel,
		baseURL:    "https://api.telegram.org",
		httpClient: &http.Client{Timeout: 25 * time.Second},
		logger:     slog.Default().With("component", "listener_source"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

type getUpdatesResponse struct {
	OK     bool     `json:"ok"`
	Result []update `json:"result"`
}

type update struct {
	UpdateID    int64        `json:"update_id"`
	ChannelPost *channelPost `json:"channel_post"`
}

type channelPost struct {
	MessageID     int64          `json:"message_id"`
	Date          int64          `json:"date"`
	Text          string         `json:"text"`
	Chat          chat           `json:"chat"`
	ForwardOrigin *forwardOrigin `json:"forward_origin"`
}

type chat struct {
	ID       int64  `json:"id"`
	Title    string `json:"title"`
	Username string `json:"username"`
}

type forwardOrigin struct {
	SenderUserName string `json:"sender_user_name"`
	Chat           *chat  `json:"chat"`
}

// Poll fetches pending updates past the cursor and returns the channel
// posts from the configured channel, oldest first.
func (s *BotSource) Poll(ctx context.Context) ([]Message, error) {
	body, err := json.Marshal(map[string]interface{}{
		"offset":          s.offset,
		"timeout":         0,
		"allowed_updates": []string{"channel_post"},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode getUpdates request: %w", err)
	}

	url := fmt.Sprintf("%s/bot%s/getUpdates", s.baseURL, s.botToken)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build getUpdates request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("getUpdates request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("getUpdates returned status %d", resp.StatusCode)
	}

	var decoded getUpdatesResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("failed to decode getUpdates response: %w", err)
	}
	if !decoded.OK {
		return nil, fmt.Errorf("getUpdates reported not ok")
	}

	var messages []Message
	for _, u := range decoded.Result {
		if u.UpdateID >= s.offset {
			s.offset = u.UpdateID + 1
		}
		post := u.ChannelPost
		if post == nil || !s.matchesChannel(post.Chat) {
			continue
		}

		msg := Message{
			ID:        post.MessageID,
			ChannelID: strconv.FormatInt(post.Chat.ID, 10),
			Timestamp: time.Unix(post.Date, 0).UTC(),
			Text:      post.Text,
		}
		if name := chatName(post.Chat); name != "" {
			msg.ChannelName = &name
		}
		if fwd := forwardName(post.ForwardOrigin); fwd != "" {
			msg.ForwardedFrom = &fwd
		}
		messages = append(messages, msg)
	}
	return messages, nil
}

func (s *BotSource) matchesChannel(c chat) bool {
	want := strings.TrimPrefix(s.channel, "@")
	if c.Username != "" && strings.EqualFold(c.Username, want) {
		return true
	}
	return strconv.FormatInt(c.ID, 10) == s.channel
}

func chatName(c chat) string {
	if c.Title != "" {
		return c.Title
	}
	return c.Username
}

func forwardName(origin *forwardOrigin) string {
	if origin == nil {
		return ""
	}
	if origin.SenderUserName != "" {
		return origin.SenderUserName
	}
	if origin.Chat != nil {
		return chatName(*origin.Chat)
	}
	return ""
}
