// Package suno talks to a Suno API gateway that generates songs from a text
// prompt.
package suno

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/goodudetheboy/Floowy-backend/internal/core/domain"
	"github.com/goodudetheboy/Floowy-backend/internal/core/ports"
)

const (
	DefaultBaseURL = "http://localhost:3000"
	// Waiting for audio keeps the request open until the clips render.
	defaultTimeout = 5 * time.Minute
	maxErrorBody   = 4 << 10
)

type Config struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

var _ ports.SongGenerator = (*Client)(nil)

type generateRequest struct {
	Prompt           string `json:"prompt"`
	MakeInstrumental bool   `json:"make_instrumental"`
	WaitAudio        bool   `json:"wait_audio"`
}

type clip struct {
	ID       string `json:"id"`
	AudioURL string `json:"audio_url"`
}

func NewClient(cfg Config) *Client {
	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL:    baseURL,
		apiKey:     cfg.APIKey,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Generate requests a song and waits for its audio. The clips are returned in
// variant order.
func (c *Client) Generate(ctx context.Context, prompt string, instrumental bool) ([]domain.GeneratedClip, error) {
	body, err := json.Marshal(generateRequest{
		Prompt:           prompt,
		MakeInstrumental: instrumental,
		WaitAudio:        true,
	})
	if err != nil {
		return nil, fmt.Errorf("suno: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/custom_generate", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("suno: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("suno: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("suno: API request failed: status %d%s", resp.StatusCode, errorDetail(resp.Body))
	}

	var items []json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&items); err != nil {
		return nil, fmt.Errorf("suno: decode response: %w: %w", domain.ErrMalformedResponse, err)
	}

	clips, err := parseClips(items)
	if err != nil {
		return nil, fmt.Errorf("suno: %w", err)
	}
	return clips, nil
}

// parseClips accepts both reply shapes seen from gateways: a list of clips,
// or a list whose first element maps variant slots ("0", "1", ...) to clips.
func parseClips(items []json.RawMessage) ([]domain.GeneratedClip, error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("empty reply: %w", domain.ErrMalformedResponse)
	}

	var first map[string]json.RawMessage
	if err := json.Unmarshal(items[0], &first); err != nil {
		return nil, fmt.Errorf("reply item is not an object: %w", domain.ErrMalformedResponse)
	}

	if _, plain := first["id"]; plain {
		clips := make([]domain.GeneratedClip, 0, len(items))
		for i, raw := range items {
			c, err := decodeClip(raw)
			if err != nil {
				return nil, fmt.Errorf("clip %d: %w", i, err)
			}
			clips = append(clips, c)
		}
		return clips, nil
	}

	slots := make([]int, 0, len(first))
	for key := range first {
		n, err := strconv.Atoi(key)
		if err != nil {
			return nil, fmt.Errorf("unexpected variant key %q: %w", key, domain.ErrMalformedResponse)
		}
		slots = append(slots, n)
	}
	slices.Sort(slots)

	clips := make([]domain.GeneratedClip, 0, len(slots))
	for _, n := range slots {
		c, err := decodeClip(first[strconv.Itoa(n)])
		if err != nil {
			return nil, fmt.Errorf("variant %d: %w", n, err)
		}
		clips = append(clips, c)
	}
	return clips, nil
}

func decodeClip(raw json.RawMessage) (domain.GeneratedClip, error) {
	var c clip
	if err := json.Unmarshal(raw, &c); err != nil {
		return domain.GeneratedClip{}, fmt.Errorf("%w: %w", domain.ErrMalformedResponse, err)
	}
	if c.ID == "" || c.AudioURL == "" {
		return domain.GeneratedClip{}, fmt.Errorf("clip lacks id or audio_url: %w", domain.ErrMalformedResponse)
	}
	return domain.GeneratedClip{ID: c.ID, AudioURL: c.AudioURL}, nil
}

func errorDetail(body io.Reader) string {
	raw, err := io.ReadAll(io.LimitReader(body, maxErrorBody))
	if err != nil || len(bytes.TrimSpace(raw)) == 0 {
		return ""
	}

	var payload struct {
		Error  string `json:"error"`
		Detail string `json:"detail"`
	}
	if json.Unmarshal(raw, &payload) == nil {
		switch {
		case payload.Error != "":
			return ": " + payload.Error
		case payload.Detail != "":
			return ": " + payload.Detail
		}
	}
	return ": " + strings.TrimSpace(string(raw))
}
