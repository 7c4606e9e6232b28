// Package mem0 is a thin pass-through to the external memory service.
// No caching, no batching, no retries: every call crosses the network
// and failures surface as *core.BackendError.
package mem0

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/sandevgo/suppd/internal/config"
	"github.com/sandevgo/suppd/internal/core"
)

type Client struct {
	client  *http.Client
	baseURL string
	apiKey  string
}

func NewClient(cfg *config.Mem0Config) *Client {
	return &Client{
		client: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
	}
}

var _ core.MemoryStore = (*Client)(nil)

// Close releases pooled connections to the memory service.
func (c *Client) Close() error {
	c.client.CloseIdleConnections()
	return nil
}

func (c *Client) Add(ctx context.Context, owner core.Owner, messages []core.Message, metadata map[string]any) error {
	payload := addRequest{
		Messages: messages,
		UserID:   owner.Key(),
		Metadata: metadata,
	}

	resp, err := c.doRequest(ctx, http.MethodPost, "/memories", payload)
	if err != nil {
		return core.NewBackendError("mem0", "add", err)
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return core.NewBackendError("mem0", "add", err)
	}
	return nil
}

func (c *Client) Search(ctx context.Context, owner core.Owner, query string, limit int) ([]core.MemoryItem, error) {
	payload := searchRequest{
		Query:  query,
		UserID: owner.Key(),
		Limit:  limit,
	}

	resp, err := c.doRequest(ctx, http.MethodPost, "/search", payload)
	if err != nil {
		return nil, core.NewBackendError("mem0", "search", err)
	}
	defer resp.Body.Close()

	items, err := parseItems(resp)
	if err != nil {
		return nil, core.NewBackendError("mem0", "search", err)
	}
	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}
	return items, nil
}

func (c *Client) ListAll(ctx context.Context, owner core.Owner) ([]core.MemoryItem, error) {
	path := "/memories?user_id=" + url.QueryEscape(owner.Key())

	resp, err := c.doRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, core.NewBackendError("mem0", "list_all", err)
	}
	defer resp.Body.Close()

	items, err := parseItems(resp)
	if err != nil {
		return nil, core.NewBackendError("mem0", "list_all", err)
	}
	return items, nil
}

// DeleteAll removes the owner's partition. Deleting an owner that holds
// nothing is a success.
func (c *Client) DeleteAll(ctx context.Context, owner core.Owner) error {
	path := "/memories?user_id=" + url.QueryEscape(owner.Key())

	resp, err := c.doRequest(ctx, http.MethodDelete, path, nil)
	if err != nil {
		return core.NewBackendError("mem0", "delete_all", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil
	}
	if err := checkStatus(resp); err != nil {
		return core.NewBackendError("mem0", "delete_all", err)
	}
	return nil
}

func (c *Client) doRequest(ctx context.Context, method, path string, body any) (*http.Response, error) {
	var bodyReader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal: %w", err)
		}
		bodyReader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", core.SuppUserAgent)
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Token "+c.apiKey)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request: %w", err)
	}
	return resp, nil
}

func checkStatus(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	data, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	return fmt.Errorf("http %d: %s", resp.StatusCode, string(data))
}
