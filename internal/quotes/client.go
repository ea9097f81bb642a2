package quotes

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"go.uber.org/zap"
)

// DefaultTimeout bounds the quote fetch; the detail page never waits
// longer than this for decoration.
const DefaultTimeout = 3 * time.Second

// Quote is the decoration shown on a project detail page.
type Quote struct {
	Text   string `json:"text"`
	Author string `json:"author"`
}

// Client fetches random quotes from the external quote API.
type Client struct {
	baseURL string
	client  *http.Client
	log     *zap.Logger

	mu       sync.RWMutex
	fallback *Quote
}

func NewClient(baseURL string, log *zap.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		client:  &http.Client{Timeout: DefaultTimeout},
		log:     log,
	}
}

// Random fetches one random quote.
func (c *Client) Random(ctx context.Context) (*Quote, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/quotes/random", nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("quote request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("quote API responded with %d", resp.StatusCode)
	}

	var body struct {
		Quote  string `json:"quote"`
		Author string `json:"author"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decode quote: %w", err)
	}

	return &Quote{Text: body.Quote, Author: body.Author}, nil
}

// RandomOrNil is the best-effort variant used by page handlers: any
// failure degrades to the prewarmed fallback, or to nil when none is
// warm. It never returns an error.
func (c *Client) RandomOrNil(ctx context.Context) *Quote {
	q, err := c.Random(ctx)
	if err != nil {
		c.log.Warn("quote fetch failed", zap.Error(err))
		c.mu.RLock()
		defer c.mu.RUnlock()
		return c.fallback
	}
	return q
}

func (c *Client) setFallback(q *Quote) {
	c.mu.Lock()
	c.fallback = q
	c.mu.Unlock()
}
