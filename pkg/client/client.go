package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"
)

// cacheTTL bounds how long a fetched schema is reused before the server is
// asked again.
const cacheTTL = 5 * time.Minute

// Client fetches introspected schemas from the admin service and caches them.
// It is safe for concurrent use.
type Client struct {
	baseURL string
	token   string
	httpc   *http.Client

	mu    sync.Mutex
	cache map[string]cacheEntry
}

type cacheEntry struct {
	schema    ModelSchema
	fetchedAt time.Time
}

// New builds a client for the given base URL, e.g. "http://localhost:3001".
// The token may be empty when the server runs without authentication.
func New(baseURL, token string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		httpc:   &http.Client{Timeout: 10 * time.Second},
		cache:   make(map[string]cacheEntry),
	}
}

// envelope is the server's uniform response wrapper.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Error   string          `json:"error"`
}

// Schema returns the introspected schema for one model, served from cache
// when a fresh enough copy exists.
func (c *Client) Schema(ctx context.Context, model string) (ModelSchema, error) {
	key := strings.ToLower(model)

	c.mu.Lock()
	entry, ok := c.cache[key]
	c.mu.Unlock()
	if ok && time.Since(entry.fetchedAt) < cacheTTL {
		return entry.schema, nil
	}

	var schema ModelSchema
	if err := c.get(ctx, "/api/schemas/"+model, &schema); err != nil {
		return ModelSchema{}, err
	}

	c.mu.Lock()
	c.cache[key] = cacheEntry{schema: schema, fetchedAt: time.Now()}
	c.mu.Unlock()
	return schema, nil
}

// Schemas returns every model schema keyed by lowercase model name. The
// result also refreshes the per-model cache.
func (c *Client) Schemas(ctx context.Context) (map[string]ModelSchema, error) {
	var schemas map[string]ModelSchema
	if err := c.get(ctx, "/api/schemas", &schemas); err != nil {
		return nil, err
	}

	now := time.Now()
	c.mu.Lock()
	for name, schema := range schemas {
		c.cache[name] = cacheEntry{schema: schema, fetchedAt: now}
	}
	c.mu.Unlock()
	return schemas, nil
}

// ModelNames lists the registered models for navigation.
func (c *Client) ModelNames(ctx context.Context) ([]ModelInfo, error) {
	var infos []ModelInfo
	if err := c.get(ctx, "/api/schemas/models", &infos); err != nil {
		return nil, err
	}
	return infos, nil
}

// ClearCache drops every cached schema, forcing the next calls to refetch.
func (c *Client) ClearCache() {
	c.mu.Lock()
	c.cache = make(map[string]cacheEntry)
	c.mu.Unlock()
}

func (c *Client) get(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	if resp.StatusCode != http.StatusOK || !env.Success {
		msg := env.Message
		if msg == "" {
			msg = resp.Status
		}
		return fmt.Errorf("GET %s: %s", path, msg)
	}
	return json.Unmarshal(env.Data, out)
}
