// Package lyrics fetches song lyrics from a lyrics.ovh compatible API.
package lyrics

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/goodudetheboy/Floowy-backend/internal/core/domain"
	"github.com/goodudetheboy/Floowy-backend/internal/core/ports"
)

const (
	DefaultBaseURL = "https://api.lyrics.ovh"
	defaultTimeout = 10 * time.Second

	// lyrics.ovh prefixes some texts with a French attribution line.
	attributionPrefix = "Paroles de la chanson"
)

type Client struct {
	baseURL    string
	httpClient *http.Client
}

var _ ports.LyricsProvider = (*Client)(nil)

type lyricsResponse struct {
	Lyrics string `json:"lyrics"`
	Error  string `json:"error"`
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	baseURL = strings.TrimRight(baseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Lyrics returns the lyrics of a song, or ports.ErrLyricsNotFound when the API
// has none.
func (c *Client) Lyrics(ctx context.Context, artist, title string) (string, error) {
	artist, title = strings.TrimSpace(artist), strings.TrimSpace(title)
	if artist == "" || title == "" {
		return "", ports.ErrLyricsNotFound
	}

	endpoint := fmt.Sprintf("%s/v1/%s/%s", c.baseURL, url.PathEscape(artist), url.PathEscape(title))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("lyrics: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("lyrics: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return "", ports.ErrLyricsNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("lyrics: unexpected status %d", resp.StatusCode)
	}

	var body lyricsResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("lyrics: decode response: %w: %w", domain.ErrMalformedResponse, err)
	}

	text := cleanLyrics(body.Lyrics)
	if text == "" {
		return "", ports.ErrLyricsNotFound
	}
	return text, nil
}

func cleanLyrics(raw string) string {
	text := strings.ReplaceAll(raw, "\r\n", "\n")
	text = strings.TrimSpace(text)
	if strings.HasPrefix(text, attributionPrefix) {
		if nl := strings.IndexByte(text, '\n'); nl != -1 {
			text = text[nl+1:]
		} else {
			text = ""
		}
	}
	return strings.TrimSpace(text)
}
