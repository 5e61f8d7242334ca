package listener

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func updatesJSON(updates ...string) string {
	out := "["
	for i, u := range updates {
		if i > 0 {
			out += ","
		}
		out += u
	}
	return fmt.Sprintf(`{"ok": true, "result": %s]}`, out)
}

func channelUpdate(updateID, messageID int64, username, text string) string {
	return fmt.Sprintf(`{
		"update_id": %d,
		"channel_post": {
			"message_id": %d,
			"date": 1787000000,
			"text": %q,
			"chat": {"id": -1001234, "title": "Macro Wire", "username": %q}
		}
	}`, updateID, messageID, text, username)
}

func TestPollFiltersAndMapsChannelPosts(t *testing.T) {
	var gotOffsets []int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/botbot-token/getUpdates", r.URL.Path)
		var req struct {
			Offset         int64    `json:"offset"`
			AllowedUpdates []string `json:"allowed_updates"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		gotOffsets = append(gotOffsets, req.Offset)
		assert.Equal(t, []string{"channel_post"}, req.AllowedUpdates)

		if len(gotOffsets) == 1 {
			fmt.Fprint(w, updatesJSON(
				channelUpdate(10, 1, "macrowire", "CPI prints 3.1%"),
				channelUpdate(11, 2, "othernews", "ignored"),
				channelUpdate(12, 3, "macrowire", "Fed holds rates"),
			))
			return
		}
		fmt.Fprint(w, `{"ok": true, "result": []}`)
	}))
	defer srv.Close()

	src := NewBotSource("bot-token", "@macrowire", WithSourceBaseURL(srv.URL))

	messages, err := src.Poll(context.Background())
	require.NoError(t, err)
	require.Len(t, messages, 2)

	assert.Equal(t, int64(1), messages[0].ID)
	assert.Equal(t, "-1001234", messages[0].ChannelID)
	require.NotNil(t, messages[0].ChannelName)
	assert.Equal(t, "Macro Wire", *messages[0].ChannelName)
	assert.Equal(t, time.Unix(1787000000, 0).UTC(), messages[0].Timestamp)
	assert.Equal(t, "CPI prints 3.1%", messages[0].Text)
	assert.Nil(t, messages[0].ForwardedFrom)
	assert.Equal(t, "Fed holds rates", messages[1].Text)

	// The cursor advances past everything seen, including filtered updates.
	messages, err = src.Poll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, messages)
	assert.Equal(t, []int64{0, 13}, gotOffsets)
}

func TestPollMatchesNumericChannelID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, updatesJSON(channelUpdate(5, 9, "", "numeric match")))
	}))
	defer srv.Close()

	src := NewBotSource("bot-token", "-1001234", WithSourceBaseURL(srv.URL))
	messages, err := src.Poll(context.Background())
	require.NoError(t, err)
	require.Len(t, messages, 1)
	assert.Equal(t, "numeric match", messages[0].Text)
}

func TestPollMapsForwardOrigin(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"ok": true, "result": [{
			"update_id": 1,
			"channel_post": {
				"message_id": 7,
				"date": 1787000000,
				"text": "forwarded",
				"chat": {"id": -1001234, "username": "macrowire"},
				"forward_origin": {"chat": {"id": 5, "title": "Original Desk"}}
			}
		}]}`)
	}))
	defer srv.Close()

	src := NewBotSource("bot-token", "@macrowire", WithSourceBaseURL(srv.URL))
	messages, err := src.Poll(context.Background())
	require.NoError(t, err)
	require.Len(t, messages, 1)
	require.NotNil(t, messages[0].ForwardedFrom)
	assert.Equal(t, "Original Desk", *messages[0].ForwardedFrom)
}

func TestPollReportsAPIErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	src := NewBotSource("bad-token", "@macrowire", WithSourceBaseURL(srv.URL))
	_, err := src.Poll(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 401")
}
