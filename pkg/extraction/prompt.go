// Package extraction drives the model side of the pipeline: prompt
// rendering, the external model HTTP client, strict validation of the
// model's JSON output, and the deterministic canonicalization pass.
package extraction

import (
	"embed"
	"fmt"
	"strings"
	"time"
)

// PromptVersion identifies the prompt template recorded on every extraction.
const PromptVersion = "extraction_agent_v2"

//go:embed prompts/*.txt
var promptTemplates embed.FS

// RenderedPrompt is a prompt template with all placeholders substituted.
type RenderedPrompt struct {
	PromptVersion string
	PromptText    string
}

// RenderExtractionPrompt renders the versioned extraction template.
// messageTime is rendered in UTC ISO-8601; an absent channel name renders
// as the empty string. Fails if the template is missing or any placeholder
// survives substitution.
func RenderExtractionPrompt(normalizedText string, messageTime time.Time, sourceChannelName string) (*RenderedPrompt, error) {
	raw, err := promptTemplates.ReadFile(fmt.Sprintf("prompts/%s.txt", PromptVersion))
	if err != nil {
		return nil, fmt.Errorf("missing prompt template %s: %w", PromptVersion, err)
	}

	rendered := strings.NewReplacer(
		"{{normalized_text}}", normalizedText,
		"{{message_time}}", messageTime.UTC().Format(time.RFC3339),
		"{{source_channel_name}}", sourceChannelName,
	).Replace(string(raw))

	var missing []string
	for _, key := range []string{"normalized_text", "message_time", "source_channel_name"} {
		if strings.Contains(rendered, "{{"+key+"}}") {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("template placeholders not replaced: %v", missing)
	}

	return &RenderedPrompt{
		PromptVersion: PromptVersion,
		PromptText:    rendered,
	}, nil
}
