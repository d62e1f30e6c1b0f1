// Package ollama provides an adapter for the Ollama LLM service.
// It completes chat prompts against a local Ollama instance in JSON mode.
package ollama

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/goodudetheboy/Floowy-backend/internal/core/domain"
	"github.com/goodudetheboy/Floowy-backend/internal/core/ports"
)

const (
	defaultBaseURL = "http://localhost:11434"
	DefaultModel   = "llama3.1:8b"
	defaultTimeout = 60 * time.Second
)

type Client struct {
	baseURL    string
	model      string
	httpClient *http.Client
}

var _ ports.TextCompleter = (*Client)(nil)

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
	Stream   bool          `json:"stream"`
	Format   string        `json:"format,omitempty"`
}

type chatResponse struct {
	Message chatMessage `json:"message"`
	Error   string      `json:"error,omitempty"`
}

func NewClient(baseURL, model string, timeout time.Duration) *Client {
	baseURL = strings.TrimRight(baseURL, "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if model == "" {
		model = DefaultModel
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL: baseURL,
		model:   model,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Complete sends a system and a user message and returns the assistant reply
// verbatim. Interpreting the reply is left to the caller.
func (c *Client) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	payload := chatRequest{
		Model:  c.model,
		Stream: false,
		Format: "json",
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt},
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("ollama: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/chat", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("ollama: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("ollama: request failed: %w", err)
	}
	defer resp.Body.Close()

	var parsed chatResponse
	decodeErr := json.NewDecoder(resp.Body).Decode(&parsed)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		if decodeErr == nil && parsed.Error != "" {
			return "", fmt.Errorf("ollama: status %d: %s", resp.StatusCode, parsed.Error)
		}
		return "", fmt.Errorf("ollama: unexpected status %d", resp.StatusCode)
	}

	if decodeErr != nil {
		return "", fmt.Errorf("ollama: decode response: %w: %w", domain.ErrMalformedResponse, decodeErr)
	}
	if parsed.Error != "" {
		return "", fmt.Errorf("ollama: %s", parsed.Error)
	}

	return parsed.Message.Content, nil
}
