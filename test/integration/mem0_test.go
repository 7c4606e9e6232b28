//go:build integration

package integration

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/sandevgo/suppd/internal/config"
	"github.com/sandevgo/suppd/internal/core"
	"github.com/sandevgo/suppd/internal/providers/mem0"
)

// Requires a running memory service; set MEM0_BASE_URL to enable.
func newLiveClient(t *testing.T) *mem0.Client {
	baseURL := os.Getenv("MEM0_BASE_URL")
	if baseURL == "" {
		t.Skip("MEM0_BASE_URL not set")
	}
	return mem0.NewClient(&config.Mem0Config{
		BaseURL: baseURL,
		APIKey:  os.Getenv("MEM0_API_KEY"),
		Timeout: 15 * time.Second,
	})
}

func TestMem0RoundTrip(t *testing.T) {
	c := newLiveClient(t)
	ctx := context.Background()
	owner := core.CustomerOwner("integration_test_customer")

	// Start from a clean partition and leave one behind.
	if err := c.DeleteAll(ctx, owner); err != nil {
		t.Fatalf("DeleteAll failed: %v", err)
	}
	defer c.DeleteAll(ctx, owner)

	messages := []core.Message{
		{Role: core.RoleUser, Content: "I prefer to be contacted by email."},
	}
	if err := c.Add(ctx, owner, messages, map[string]any{"type": "preference"}); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	items, err := c.ListAll(ctx, owner)
	if err != nil {
		t.Fatalf("ListAll failed: %v", err)
	}
	if len(items) == 0 {
		t.Fatal("expected at least one stored item")
	}

	hits, err := c.Search(ctx, owner, "contact preference", 3)
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	t.Logf("search returned %d items", len(hits))

	if err := c.DeleteAll(ctx, owner); err != nil {
		t.Fatalf("DeleteAll failed: %v", err)
	}
	items, err = c.ListAll(ctx, owner)
	if err != nil {
		t.Fatalf("ListAll after delete failed: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("expected empty partition after delete, got %d items", len(items))
	}
}
