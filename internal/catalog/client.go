package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sync"
	"time"

	"fyne.io/fyne/v2"

	"github.com/morikazuSuma/symbol-grounding/internal/model"
)

// Timeout constants
const (
	DefaultLoadTimeout  = 30 * time.Second
	DefaultImageTimeout = 15 * time.Second
)

// Client fetches the catalog and covers over HTTP. Covers are cached
// in-memory for the session so a tile refresh never re-downloads a file.
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client

	mu     sync.Mutex
	images map[string]fyne.Resource
}

// NewClient creates a client for the given data source base URL.
func NewClient(baseURL string) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid data source URL %q: %w", baseURL, err)
	}
	return &Client{
		baseURL:    u,
		httpClient: &http.Client{Timeout: DefaultLoadTimeout},
		images:     make(map[string]fyne.Resource),
	}, nil
}

// Load fetches and validates the item catalog. Any failure here is a load
// error: the caller shows a blank surface and never retries.
func (c *Client) Load(ctx context.Context) ([]model.Item, error) {
	endpoint := c.baseURL.JoinPath(model.DataPath).String()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build catalog request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch catalog: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("data source returned status %d", resp.StatusCode)
	}

	var items []model.Item
	if err := json.NewDecoder(resp.Body).Decode(&items); err != nil {
		return nil, fmt.Errorf("malformed catalog payload: %w", err)
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("catalog is empty")
	}
	return items, nil
}

// ImageResource returns the cover for an item, fetching it on first use.
func (c *Client) ImageResource(ctx context.Context, item model.Item) (fyne.Resource, error) {
	if res, ok := c.CachedImage(item); ok {
		return res, nil
	}

	endpoint := c.baseURL.JoinPath(item.Image).String()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build cover request for %s: %w", item.ID, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch cover for %s: %w", item.ID, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("cover for %s returned status %d", item.ID, resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read cover for %s: %w", item.ID, err)
	}

	res := fyne.NewStaticResource(item.ID, data)

	c.mu.Lock()
	c.images[item.ID] = res
	c.mu.Unlock()

	return res, nil
}

// CachedImage returns an already-fetched cover without touching the network.
func (c *Client) CachedImage(item model.Item) (fyne.Resource, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	res, ok := c.images[item.ID]
	return res, ok
}
