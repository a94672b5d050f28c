// Package datadragon resolves champion IDs against Riot's versioned Data
// Dragon reference dataset. The champion table is fetched once and refreshed
// only when the published dataset version changes.
package datadragon

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"
)

const defaultBaseURL = "https://ddragon.leagueoflegends.com"

// fallbackVersion keeps icon URLs working before the first successful
// version lookup.
const fallbackVersion = "15.14.1"

type Logger interface {
	Warn(format string, v ...interface{})
	Debug(format string, v ...interface{})
}

type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     Logger

	mu            sync.RWMutex
	version       string
	champions     map[int64]string
	lastChecked   time.Time
	checkInterval time.Duration
}

func NewClient(logger Logger) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		baseURL:       defaultBaseURL,
		logger:        logger,
		checkInterval: time.Hour,
	}
}

// ChampionName resolves a champion ID, refreshing the table when the
// dataset version changed. Unknown IDs degrade to a Champion_<id> label so
// notifications still render during dataset lag after a new release.
func (c *Client) ChampionName(ctx context.Context, championID int64) string {
	if err := c.refresh(ctx); err != nil {
		c.logger.Warn("champion dataset refresh failed", "error", err.Error())
	}

	c.mu.RLock()
	name, ok := c.champions[championID]
	c.mu.RUnlock()
	if ok {
		return name
	}
	return fmt.Sprintf("Champion_%d", championID)
}

// Version returns the last known dataset version, used to build icon URLs.
func (c *Client) Version() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.version == "" {
		return fallbackVersion
	}
	return c.version
}

func (c *Client) refresh(ctx context.Context) error {
	c.mu.RLock()
	fresh := c.champions != nil && time.Since(c.lastChecked) < c.checkInterval
	c.mu.RUnlock()
	if fresh {
		return nil
	}

	latest, err := c.latestVersion(ctx)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.lastChecked = time.Now()
	if latest == c.version && c.champions != nil {
		return nil
	}

	table, err := c.fetchChampions(ctx, latest)
	if err != nil {
		return err
	}

	c.logger.Debug("champion dataset loaded", "version", latest, "champions", len(table))
	c.version = latest
	c.champions = table
	return nil
}

func (c *Client) latestVersion(ctx context.Context) (string, error) {
	var versions []string
	if err := c.getJSON(ctx, c.baseURL+"/api/versions.json", &versions); err != nil {
		return "", err
	}
	if len(versions) == 0 {
		return "", fmt.Errorf("empty version list")
	}
	return versions[0], nil
}

func (c *Client) fetchChampions(ctx context.Context, version string) (map[int64]string, error) {
	url := fmt.Sprintf("%s/cdn/%s/data/en_US/champion.json", c.baseURL, version)

	var payload struct {
		Data map[string]struct {
			Key  string `json:"key"`
			Name string `json:"name"`
		} `json:"data"`
	}
	if err := c.getJSON(ctx, url, &payload); err != nil {
		return nil, err
	}

	table := make(map[int64]string, len(payload.Data))
	for _, champ := range payload.Data {
		id, err := strconv.ParseInt(champ.Key, 10, 64)
		if err != nil {
			continue
		}
		table[id] = champ.Name
	}
	return table, nil
}

func (c *Client) getJSON(ctx context.Context, url string, result interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("data dragon request failed with status %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(result)
}
