// Package agent implements the per-query support pipeline: gather
// context from the customer's history and the knowledge base, format
// one prompt, call the completion endpoint once, and persist the
// exchange back to the memory store.
package agent

import (
	"context"
	"time"

	"github.com/sandevgo/suppd/internal/config"
	"github.com/sandevgo/suppd/internal/core"
	"github.com/sandevgo/suppd/pkg/log"
)

// apologyResponse is returned as the response text whenever the
// pipeline fails; the underlying error still travels in the envelope.
const apologyResponse = "I apologize, but I'm experiencing technical difficulties. " +
	"Please try again or contact our technical support team."

type CompletionProvider interface {
	Complete(ctx context.Context, messages []core.Message) (core.Message, error)
}

type KnowledgeBase interface {
	Search(ctx context.Context, query string, limit int) []core.MemoryItem
}

type Agent struct {
	companyName  string
	store        core.MemoryStore
	kb           KnowledgeBase
	ai           CompletionProvider
	counter      TokenCounter
	contextLimit int
	tokenBudget  int
}

func New(
	cfg *config.AppConfig,
	store core.MemoryStore,
	kb KnowledgeBase,
	ai CompletionProvider,
	counter TokenCounter,
) *Agent {
	if counter == nil {
		counter = heuristicCounter{}
	}
	return &Agent{
		companyName:  cfg.CompanyName,
		store:        store,
		kb:           kb,
		ai:           ai,
		counter:      counter,
		contextLimit: cfg.ContextLimit,
		tokenBudget:  cfg.ContextTokenBudget,
	}
}

type QueryRequest struct {
	CustomerID      string
	Query           string
	CustomerName    string
	SaveInteraction bool
}

// HandleQuery runs the full query pipeline. It never returns an error:
// failures degrade into an apology envelope carrying the error detail.
func (a *Agent) HandleQuery(ctx context.Context, req QueryRequest) core.QueryResult {
	logger := log.FromCtx(ctx)

	result := core.QueryResult{
		CustomerID: req.CustomerID,
		Query:      req.Query,
		Timestamp:  time.Now(),
	}

	history := a.customerContext(ctx, req.CustomerID, req.Query)
	kbItems := a.kb.Search(ctx, req.Query, a.contextLimit)

	items := make([]core.ContextItem, 0, len(history)+len(kbItems))
	for _, item := range history {
		items = append(items, core.ContextItem{MemoryItem: item, Provenance: core.ProvenanceCustomerHistory})
	}
	for _, item := range kbItems {
		items = append(items, core.ContextItem{MemoryItem: item, Provenance: core.ProvenanceKnowledgeBase})
	}

	items = a.trimToBudget(ctx, items)
	block := formatContext(items, req.CustomerName, req.CustomerID)

	messages := []core.Message{
		{Role: core.RoleSystem, Content: systemPrompt(a.companyName)},
		{Role: core.RoleSystem, Content: block},
		{Role: core.RoleUser, Content: req.Query},
	}

	response, err := a.ai.Complete(ctx, messages)
	if err != nil {
		logger.Error().Err(err).Str("customer_id", req.CustomerID).Msg("completion call failed")
		result.Response = apologyResponse
		result.Error = err.Error()
		return result
	}

	result.Response = response.Content
	result.ContextUsed = len(history) > 0
	result.ContextItemsCount = len(history)

	if req.SaveInteraction {
		a.saveInteraction(ctx, req, response.Content)
	}

	logger.Info().
		Str("customer_id", req.CustomerID).
		Bool("context_used", result.ContextUsed).
		Int("context_items", result.ContextItemsCount).
		Msg("handled customer query")

	return result
}

// customerContext searches the customer's history partition. Failures
// are logged and degrade to no context rather than failing the query.
func (a *Agent) customerContext(ctx context.Context, customerID, query string) []core.MemoryItem {
	items, err := a.store.Search(ctx, core.CustomerOwner(customerID), query, a.contextLimit)
	if err != nil {
		log.FromCtx(ctx).Error().Err(err).Str("customer_id", customerID).Msg("failed to retrieve customer context")
		return nil
	}
	return items
}

// saveInteraction writes the exchange back to the customer's partition.
// Fire-and-forget with respect to the returned result: failures are
// logged, never surfaced.
func (a *Agent) saveInteraction(ctx context.Context, req QueryRequest, response string) {
	logger := log.FromCtx(ctx)

	exchange := []core.Message{
		{Role: core.RoleUser, Content: req.Query},
		{Role: core.RoleAssistant, Content: response},
	}
	metadata := map[string]any{
		"timestamp":        time.Now().Format(time.RFC3339),
		"interaction_type": "support_chat",
	}
	if req.CustomerName != "" {
		metadata["customer_name"] = req.CustomerName
	}

	if err := a.store.Add(ctx, core.CustomerOwner(req.CustomerID), exchange, metadata); err != nil {
		logger.Error().Err(err).Str("customer_id", req.CustomerID).Msg("failed to save interaction")
		return
	}
	logger.Debug().Str("customer_id", req.CustomerID).Msg("saved interaction to memory")
}

// AddPreference stores a single tagged preference item.
func (a *Agent) AddPreference(ctx context.Context, customerID, preference, category string) core.OpResult {
	if category == "" {
		category = "general"
	}

	messages := []core.Message{{Role: core.RoleUser, Content: preference}}
	metadata := map[string]any{
		"type":     "preference",
		"category": category,
	}

	if err := a.store.Add(ctx, core.CustomerOwner(customerID), messages, metadata); err != nil {
		log.FromCtx(ctx).Error().Err(err).Str("customer_id", customerID).Msg("failed to add preference")
		return core.OpResult{Error: err.Error()}
	}
	return core.OpResult{Success: true}
}

// History returns the customer's full partition dump. Failures degrade
// to an empty list.
func (a *Agent) History(ctx context.Context, customerID string) []core.MemoryItem {
	items, err := a.store.ListAll(ctx, core.CustomerOwner(customerID))
	if err != nil {
		log.FromCtx(ctx).Error().Err(err).Str("customer_id", customerID).Msg("failed to get customer history")
		return nil
	}
	return items
}

// ClearHistory deletes the customer's partition.
func (a *Agent) ClearHistory(ctx context.Context, customerID string) core.OpResult {
	if err := a.store.DeleteAll(ctx, core.CustomerOwner(customerID)); err != nil {
		log.FromCtx(ctx).Error().Err(err).Str("customer_id", customerID).Msg("failed to clear customer history")
		return core.OpResult{Error: err.Error()}
	}
	return core.OpResult{Success: true}
}
