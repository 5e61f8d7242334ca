package extraction

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

// DefaultEndpoint is the chat-completions endpoint used unless overridden.
const DefaultEndpoint = "https://api.openai.com/v1/chat/completions"

const systemInstruction = "Return only strict JSON matching the requested schema."

// ProviderError is a model-provider failure: transport faults, non-2xx
// statuses, undecodable bodies, and empty responses. Kind carries the
// category of the last error seen before retries were exhausted.
type ProviderError struct {
	Kind string
	Err  error
}

func (e *ProviderError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	}
	return e.Kind
}

func (e *ProviderError) Unwrap() error { return e.Err }

// Response is the outcome of a successful model call. Retries counts the
// failed attempts before the one that succeeded.
type Response struct {
	ExtractorName     string
	UsedExternalModel bool
	ModelName         string
	ResponseID        string
	LatencyMS         int64
	Retries           int
	RawText           string
}

// ModelClient is the extraction-provider surface the batch processor
// depends on. Tests substitute a local fake.
type ModelClient interface {
	Extract(ctx context.Context, promptText string) (*Response, error)
}

// Client calls an external chat-completions endpoint and extracts the
// generated text, tolerating both flat-string and content-block response
// shapes.
type Client struct {
	httpClient *http.Client
	endpoint   string
	apiKey     string
	model      string
	maxRetries int
	logger     *slog.Logger
}

// ClientOption customizes a Client.
type ClientOption func(*Client)

// WithEndpoint overrides the provider endpoint, used by tests to point at
// a local server.
func WithEndpoint(endpoint string) ClientOption {
	return func(c *Client) { c.endpoint = endpoint }
}

// WithHTTPClient substitutes the underlying HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) { c.httpClient = hc }
}

// NewClient creates a model client. timeout bounds each individual attempt;
// maxRetries is the number of retries after the first attempt.
func NewClient(apiKey, model string, timeout time.Duration, maxRetries int, opts ...ClientOption) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: timeout},
		endpoint:   DefaultEndpoint,
		apiKey:     apiKey,
		model:      model,
		maxRetries: maxRetries,
		logger:     slog.Default().With("component", "extraction_client"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type chatRequest struct {
	Model          string        `json:"model"`
	Temperature    float64       `json:"temperature"`
	ResponseFormat responseFmt   `json:"response_format"`
	Messages       []chatMessage `json:"messages"`
}

type responseFmt struct {
	Type string `json:"type"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	ID      string       `json:"id"`
	Choices []chatChoice `json:"choices"`
}

type chatChoice struct {
	Message struct {
		// Content is either a flat string or a list of content blocks,
		// depending on the provider. Decoded per-shape below.
		Content json.RawMessage `json:"content"`
	} `json:"message"`
}

type contentBlock struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// Extract sends the rendered prompt and returns the model's raw text.
// Attempts up to maxRetries+1 times; after exhaustion it returns a
// ProviderError carrying the kind of the last failure.
func (c *Client) Extract(ctx context.Context, promptText string) (*Response, error) {
	body, err := json.Marshal(chatRequest{
		Model:          c.model,
		Temperature:    0,
		ResponseFormat: responseFmt{Type: "json_object"},
		Messages: []chatMessage{
			{Role: "system", Content: systemInstruction},
			{Role: "user", Content: promptText},
		},
	})
	if err != nil {
		return nil, &ProviderError{Kind: "encode_error", Err: err}
	}

	start := time.Now()
	var lastErr *ProviderError
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, &ProviderError{Kind: "canceled", Err: err}
		}

		rawText, responseID, perr := c.attempt(ctx, body)
		if perr != nil {
			lastErr = perr
			c.logger.Warn("model request attempt failed",
				"attempt", attempt+1,
				"kind", perr.Kind,
				"error", perr.Err)
			continue
		}

		return &Response{
			ExtractorName:     "openai_chat",
			UsedExternalModel: true,
			ModelName:         c.model,
			ResponseID:        responseID,
			LatencyMS:         time.Since(start).Milliseconds(),
			Retries:           attempt,
			RawText:           rawText,
		}, nil
	}

	return nil, &ProviderError{
		Kind: lastErr.Kind,
		Err:  fmt.Errorf("model request failed after %d attempts: %w", c.maxRetries+1, lastErr.Err),
	}
}

func (c *Client) attempt(ctx context.Context, body []byte) (rawText, responseID string, perr *ProviderError) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", "", &ProviderError{Kind: "transport_error", Err: err}
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", "", &ProviderError{Kind: "transport_error", Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", "", &ProviderError{Kind: "transport_error", Err: err}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", "", &ProviderError{
			Kind: "status_error",
			Err:  fmt.Errorf("provider returned status %d", resp.StatusCode),
		}
	}

	var decoded chatResponse
	if err := json.Unmarshal(respBody, &decoded); err != nil {
		return "", "", &ProviderError{Kind: "decode_error", Err: err}
	}
	if len(decoded.Choices) == 0 {
		return "", "", &ProviderError{Kind: "shape_error", Err: fmt.Errorf("response has no choices")}
	}

	text, err := decodeContent(decoded.Choices[0].Message.Content)
	if err != nil {
		return "", "", &ProviderError{Kind: "shape_error", Err: err}
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return "", "", &ProviderError{Kind: "empty_response", Err: fmt.Errorf("empty model response")}
	}
	return text, decoded.ID, nil
}

// decodeContent accepts the two content shapes providers emit: a flat
// string, or a list of typed blocks whose text-typed entries concatenate.
func decodeContent(raw json.RawMessage) (string, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return "", fmt.Errorf("response content missing")
	}

	var flat string
	if err := json.Unmarshal(raw, &flat); err == nil {
		return flat, nil
	}

	var blocks []contentBlock
	if err := json.Unmarshal(raw, &blocks); err != nil {
		return "", fmt.Errorf("unrecognized content shape")
	}
	var segments []string
	for _, b := range blocks {
		if b.Type == "text" && b.Text != "" {
			segments = append(segments, b.Text)
		}
	}
	return strings.Join(segments, ""), nil
}
