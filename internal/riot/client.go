package riot

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"
)

const defaultRegionalURL = "https://americas.api.riotgames.com"

// platformURLFormat builds the per-platform host used by the summoner and
// spectator APIs, which are sharded by platform (la1, na1, ...) rather than
// by regional routing value.
const platformURLFormat = "https://%s.api.riotgames.com"

// Logger is the subset of the application logger the client needs.
type Logger interface {
	Warn(format string, v ...interface{})
	Debug(format string, v ...interface{})
}

// Client is a Riot Games API client with simple client-side request spacing.
type Client struct {
	apiKey     string
	httpClient *http.Client
	logger     Logger

	regionalURL    string
	platformFormat string
	platforms      []string

	mu          sync.Mutex
	lastRequest time.Time
	minInterval time.Duration
}

// NewClient creates a Riot API client. platforms is the ordered list of
// platform subdomains probed by live-game lookups.
func NewClient(apiKey string, platforms []string, logger Logger) *Client {
	return &Client{
		apiKey: apiKey,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		logger:         logger,
		regionalURL:    defaultRegionalURL,
		platformFormat: platformURLFormat,
		platforms:      platforms,
		// ~20 requests per second
		minInterval: 50 * time.Millisecond,
	}
}

func (c *Client) platformURL(platform string) string {
	return fmt.Sprintf(c.platformFormat, platform)
}

// get performs a GET request, maps upstream statuses to the error taxonomy
// and decodes the JSON body into result.
func (c *Client) get(ctx context.Context, url string, result interface{}) error {
	c.mu.Lock()
	elapsed := time.Since(c.lastRequest)
	if elapsed < c.minInterval {
		time.Sleep(c.minInterval - elapsed)
	}
	c.lastRequest = time.Now()
	c.mu.Unlock()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("X-Riot-Token", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return ErrNotFound
	case resp.StatusCode == http.StatusTooManyRequests:
		return ErrRateLimited
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return &APIError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
