package extraction

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderExtractionPrompt(t *testing.T) {
	messageTime := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

	rendered, err := RenderExtractionPrompt("Fed cuts rates by 25bp", messageTime, "macro_wire")
	require.NoError(t, err)

	assert.Equal(t, "extraction_agent_v2", rendered.PromptVersion)
	assert.Contains(t, rendered.PromptText, "Fed cuts rates by 25bp")
	assert.Contains(t, rendered.PromptText, "2026-03-14T09:30:00Z")
	assert.Contains(t, rendered.PromptText, "macro_wire")
	assert.NotContains(t, rendered.PromptText, "{{normalized_text}}")
	assert.NotContains(t, rendered.PromptText, "{{message_time}}")
	assert.NotContains(t, rendered.PromptText, "{{source_channel_name}}")
}

func TestRenderExtractionPromptEmptyChannelName(t *testing.T) {
	rendered, err := RenderExtractionPrompt("text", time.Now().UTC(), "")
	require.NoError(t, err)
	assert.NotContains(t, rendered.PromptText, "{{source_channel_name}}")
}

func TestRenderExtractionPromptPreservesClaimGuidance(t *testing.T) {
	rendered, err := RenderExtractionPrompt("text", time.Now().UTC(), "")
	require.NoError(t, err)
	assert.Contains(t, rendered.PromptText, "literal reported claim")
	assert.Contains(t, rendered.PromptText, "not convert reported claims into confirmed facts")
}
