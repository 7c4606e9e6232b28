package core

import "time"

const (
	SuppName      = "suppd"
	SuppUserAgent = "Suppd-Agent/0.1"
	SuppVersion   = "0.1.0"
)

const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// MemoryItem is a single record held by the remote memory service.
// The service owns the data; every read is a fresh fetch.
type MemoryItem struct {
	ID        string         `json:"id"`
	Memory    string         `json:"memory"`
	Metadata  map[string]any `json:"metadata,omitempty"`
	Score     float64        `json:"score,omitempty"`
	CreatedAt time.Time      `json:"created_at,omitempty"`
}

// Provenance tags where a context item was retrieved from.
type Provenance string

const (
	ProvenanceCustomerHistory Provenance = "customer_history"
	ProvenanceKnowledgeBase   Provenance = "knowledge_base"
)

// ContextItem is a MemoryItem annotated with its origin. Assembled
// transiently per query and discarded after prompt formatting.
type ContextItem struct {
	MemoryItem
	Provenance Provenance
}

// QueryResult is the envelope returned for every handled query.
// It is never persisted; saving the exchange happens as a side effect
// through the memory store.
type QueryResult struct {
	Response          string    `json:"response"`
	CustomerID        string    `json:"customer_id"`
	Query             string    `json:"query"`
	Timestamp         time.Time `json:"timestamp"`
	ContextUsed       bool      `json:"context_used"`
	ContextItemsCount int       `json:"context_items_count"`
	Error             string    `json:"error,omitempty"`
}

// OpResult is the envelope for memory maintenance operations that
// convert failures into a result instead of propagating them.
type OpResult struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}
