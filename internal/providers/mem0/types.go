package mem0

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sandevgo/suppd/internal/core"
)

type addRequest struct {
	Messages []core.Message `json:"messages"`
	UserID   string         `json:"user_id"`
	Metadata map[string]any `json:"metadata,omitempty"`
}

type searchRequest struct {
	Query  string `json:"query"`
	UserID string `json:"user_id"`
	Limit  int    `json:"limit,omitempty"`
}

type memoryPayload struct {
	ID        string         `json:"id"`
	Memory    string         `json:"memory"`
	Metadata  map[string]any `json:"metadata"`
	Score     float64        `json:"score"`
	CreatedAt string         `json:"created_at"`
}

// parseItems accepts both response shapes the service is known to
// return: a bare array, or an object wrapping it under "results".
func parseItems(resp *http.Response) ([]core.MemoryItem, error) {
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("http %d: %s", resp.StatusCode, string(data))
	}

	var payloads []memoryPayload
	if err := json.Unmarshal(data, &payloads); err != nil {
		var wrapped struct {
			Results []memoryPayload `json:"results"`
		}
		if err := json.Unmarshal(data, &wrapped); err != nil {
			return nil, fmt.Errorf("decode: %w", err)
		}
		payloads = wrapped.Results
	}

	items := make([]core.MemoryItem, 0, len(payloads))
	for _, p := range payloads {
		item := core.MemoryItem{
			ID:       p.ID,
			Memory:   p.Memory,
			Metadata: p.Metadata,
			Score:    p.Score,
		}
		if p.CreatedAt != "" {
			if ts, err := time.Parse(time.RFC3339, p.CreatedAt); err == nil {
				item.CreatedAt = ts
			}
		}
		items = append(items, item)
	}
	return items, nil
}
