package core

import "context"

// Completer issues a single chat-style completion call. No streaming,
// no tool use, no retries.
type Completer interface {
	Complete(ctx context.Context, messages []Message) (Message, error)
}

// MemoryStore is the pass-through to the external memory service. All
// operations cross a network boundary; ordering within an owner is
// whatever the service provides.
type MemoryStore interface {
	// Add stores one exchange (or a single text wrapped as one message)
	// under the owner. Failures propagate as *BackendError.
	Add(ctx context.Context, owner Owner, messages []Message, metadata map[string]any) error
	// Search returns up to limit items ranked by the backend's relevance
	// measure. An owner with no data yields an empty slice, not an error.
	Search(ctx context.Context, owner Owner, query string, limit int) ([]MemoryItem, error)
	// ListAll returns the full unordered partition dump.
	ListAll(ctx context.Context, owner Owner) ([]MemoryItem, error)
	// DeleteAll removes the partition. Idempotent: deleting an owner
	// that holds nothing succeeds.
	DeleteAll(ctx context.Context, owner Owner) error
}
