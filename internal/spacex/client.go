// Package spacex consumes the upstream launch REST source and normalizes
// its records into the canonical Launch entity. The upstream is treated
// as unordered; callers impose chronological order before paginating.
package spacex

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"launch-gateway/internal/models"
	"net/http"
	"net/url"
	"sync"
)

const DefaultBaseURL = "https://api.spacexdata.com/v3"

// Client fetches launch records over HTTP. Responses are cached in
// memory by URL for the lifetime of the client; the upstream data set
// changes rarely enough that re-fetching within one process is waste.
type Client struct {
	baseURL string
	httpc   *http.Client

	mu    sync.Mutex
	cache map[string][]byte
}

// NewClient returns a caching client. A nil httpc falls back to a
// default client.
func NewClient(baseURL string, httpc *http.Client) *Client {
	if httpc == nil {
		httpc = &http.Client{}
	}
	return &Client{
		baseURL: baseURL,
		httpc:   httpc,
		cache:   make(map[string][]byte),
	}
}

// NewClientNoCache returns a client that hits the upstream on every call.
func NewClientNoCache(baseURL string, httpc *http.Client) *Client {
	c := NewClient(baseURL, httpc)
	c.cache = nil
	return c
}

func (c *Client) get(ctx context.Context, rawURL string) ([]byte, error) {
	c.mu.Lock()
	if cached, ok := c.cache[rawURL]; ok {
		c.mu.Unlock()
		return cached, nil
	}
	c.mu.Unlock()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("upstream returned status %d for %s", resp.StatusCode, rawURL)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if c.cache != nil {
		c.mu.Lock()
		c.cache[rawURL] = body
		c.mu.Unlock()
	}
	return body, nil
}

// Launches fetches and normalizes every upstream launch record, in
// whatever order the upstream returns them.
func (c *Client) Launches(ctx context.Context) ([]models.Launch, error) {
	body, err := c.get(ctx, c.baseURL+"/launches")
	if err != nil {
		return nil, err
	}

	var records []record
	if err := json.Unmarshal(body, &records); err != nil {
		return nil, fmt.Errorf("decoding launches: %w", err)
	}

	launches := make([]models.Launch, 0, len(records))
	for _, rec := range records {
		launches = append(launches, normalize(rec))
	}
	return launches, nil
}

// Launch fetches a single launch by id. A missing launch is nil, not an
// error.
func (c *Client) Launch(ctx context.Context, id string) (*models.Launch, error) {
	u := fmt.Sprintf("%s/launches?flight_number=%s", c.baseURL, url.QueryEscape(id))
	body, err := c.get(ctx, u)
	if err != nil {
		return nil, err
	}

	var records []record
	if err := json.Unmarshal(body, &records); err != nil {
		return nil, fmt.Errorf("decoding launch %s: %w", id, err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	launch := normalize(records[0])
	return &launch, nil
}

// LaunchesByIDs resolves a batch of launch ids. Ids the upstream does not
// know are dropped silently; the result may be shorter than the input.
func (c *Client) LaunchesByIDs(ctx context.Context, ids []string) ([]models.Launch, error) {
	launches := make([]models.Launch, 0, len(ids))
	for _, id := range ids {
		launch, err := c.Launch(ctx, id)
		if err != nil {
			return nil, err
		}
		if launch != nil {
			launches = append(launches, *launch)
		}
	}
	return launches, nil
}
