package spotify

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"

	"github.com/goodudetheboy/Floowy-backend/internal/core/domain"
	"github.com/goodudetheboy/Floowy-backend/internal/core/ports"
)

const (
	DefaultBaseURL  = "https://api.spotify.com/v1"
	DefaultTokenURL = "https://accounts.spotify.com/api/token"

	defaultTimeout = 15 * time.Second
	maxErrorBody   = 64 << 10
)

// Config holds the settings of the catalog client.
type Config struct {
	ClientID     string
	ClientSecret string
	BaseURL      string
	TokenURL     string
	Timeout      time.Duration
	MaxRetries   int
	RetryBackoff time.Duration
}

// Client is an HTTP client for the Spotify Web API.
type Client struct {
	httpClient  *http.Client
	baseURL     string
	maxRetries  int
	baseBackoff time.Duration
}

// compile-time interface assertion
var _ ports.CatalogProvider = (*Client)(nil)

// NewClient constructs a client authenticated with the client credentials
// flow. Tokens are fetched lazily and refreshed on expiry.
func NewClient(ctx context.Context, cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	tokenURL := cfg.TokenURL
	if tokenURL == "" {
		tokenURL = DefaultTokenURL
	}
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	creds := clientcredentials.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		TokenURL:     tokenURL,
	}

	// The token endpoint is called through this client as well.
	ctx = context.WithValue(ctx, oauth2.HTTPClient, &http.Client{Timeout: timeout})
	httpClient := creds.Client(ctx)
	httpClient.Timeout = timeout

	c := NewClientWithBaseURL(httpClient, baseURL)
	c.maxRetries = cfg.MaxRetries
	c.baseBackoff = cfg.RetryBackoff
	return c
}

// NewClientWithBaseURL constructs a client around an already authorized
// HTTP client. Tests use it to point the client at a fake server.
func NewClientWithBaseURL(httpClient *http.Client, baseURL string) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(baseURL, "/"),
	}
}

// APIError is a non-2xx reply from the Web API.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("status %d", e.StatusCode)
	}
	return fmt.Sprintf("status %d: %s", e.StatusCode, e.Message)
}

// getJSON issues a GET through the retry helper and decodes a 200 reply into
// out. Replies that do not decode wrap domain.ErrMalformedResponse.
func (c *Client) getJSON(ctx context.Context, rawURL string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.doRequestWithRetry(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return readAPIError(resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode reply: %w: %w", domain.ErrMalformedResponse, err)
	}
	return nil
}

func readAPIError(resp *http.Response) error {
	apiErr := &APIError{StatusCode: resp.StatusCode}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err != nil {
		return apiErr
	}

	var payload struct {
		Error json.RawMessage `json:"error"`
	}
	if json.Unmarshal(body, &payload) != nil || len(payload.Error) == 0 {
		apiErr.Message = strings.TrimSpace(string(body))
		return apiErr
	}

	// Regular endpoints reply {"error":{"status":..,"message":..}}, the
	// accounts service {"error":"invalid_client",...}.
	var detail struct {
		Message string `json:"message"`
	}
	var code string
	switch {
	case json.Unmarshal(payload.Error, &detail) == nil && detail.Message != "":
		apiErr.Message = detail.Message
	case json.Unmarshal(payload.Error, &code) == nil:
		apiErr.Message = code
	}
	return apiErr
}
