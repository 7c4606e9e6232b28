// Package loader manages the knowledge base partition of the memory
// store: bulk loading the static catalog, searching it, and the
// clear-then-reload cycle.
package loader

import (
	"context"

	"github.com/sandevgo/suppd/internal/core"
	"github.com/sandevgo/suppd/internal/knowledge"
	"github.com/sandevgo/suppd/pkg/log"
)

// ItemError records one record that failed during a bulk load.
type ItemError struct {
	Record knowledge.Record `json:"-"`
	Kind   string           `json:"kind"`
	Error  string           `json:"error"`
}

// LoadResult is the outcome of a bulk load. Partial success is the
// intended behavior: one failing record does not block the rest.
type LoadResult struct {
	Success     bool        `json:"success"`
	LoadedCount int         `json:"loaded_count"`
	TotalItems  int         `json:"total_items"`
	Errors      []ItemError `json:"errors,omitempty"`
	Error       string      `json:"error,omitempty"`
}

type Loader struct {
	store core.MemoryStore
	owner core.Owner
}

func New(store core.MemoryStore) *Loader {
	return &Loader{
		store: store,
		owner: core.KnowledgeBaseOwner(),
	}
}

// Load flattens every knowledge record and adds it to the memory store
// one by one, accumulating per-item failures instead of aborting.
// Calling Load twice without a Clear in between duplicates entries;
// the store does not deduplicate.
func (l *Loader) Load(ctx context.Context) LoadResult {
	logger := log.FromCtx(ctx)

	records := knowledge.Records()
	result := LoadResult{
		Success:    true,
		TotalItems: len(records),
	}

	logger.Info().Int("total", len(records)).Msg("loading knowledge base items")

	for _, rec := range records {
		messages := []core.Message{{Role: core.RoleUser, Content: rec.Content}}
		if err := l.store.Add(ctx, l.owner, messages, rec.Metadata()); err != nil {
			logger.Error().Err(err).Str("kind", string(rec.Kind)).Msg("failed to load knowledge item")
			result.Errors = append(result.Errors, ItemError{
				Record: rec,
				Kind:   string(rec.Kind),
				Error:  err.Error(),
			})
			continue
		}
		result.LoadedCount++
	}

	logger.Info().
		Int("loaded", result.LoadedCount).
		Int("failed", len(result.Errors)).
		Msg("knowledge base load finished")

	return result
}

// Search delegates to the memory store scoped to the reserved owner.
// Search failures are logged and yield an empty result, matching the
// degraded-context behavior of the query pipeline.
func (l *Loader) Search(ctx context.Context, query string, limit int) []core.MemoryItem {
	items, err := l.store.Search(ctx, l.owner, query, limit)
	if err != nil {
		log.FromCtx(ctx).Error().Err(err).Msg("knowledge base search failed")
		return nil
	}
	return items
}

// Items returns the full knowledge base partition dump.
func (l *Loader) Items(ctx context.Context) ([]core.MemoryItem, error) {
	return l.store.ListAll(ctx, l.owner)
}

// Clear deletes the knowledge base partition. Idempotent.
func (l *Loader) Clear(ctx context.Context) core.OpResult {
	if err := l.store.DeleteAll(ctx, l.owner); err != nil {
		log.FromCtx(ctx).Error().Err(err).Msg("failed to clear knowledge base")
		return core.OpResult{Error: err.Error()}
	}
	return core.OpResult{Success: true}
}

// Reload clears the partition and loads it again. The two phases are
// not atomic: if the clear succeeds and the process dies before the
// load completes, the partition stays empty (never duplicated). A
// failed clear aborts the reload and its error is returned.
func (l *Loader) Reload(ctx context.Context) LoadResult {
	if res := l.Clear(ctx); !res.Success {
		return LoadResult{Error: res.Error}
	}
	return l.Load(ctx)
}

// Initialize loads the knowledge base only if the partition is empty,
// making process bootstrap idempotent across restarts. The check and
// the load are not fenced against each other, so two processes
// bootstrapping at once can both see zero items and double-load; this
// is a known limitation.
func (l *Loader) Initialize(ctx context.Context) (LoadResult, error) {
	logger := log.FromCtx(ctx)

	existing, err := l.Items(ctx)
	if err != nil {
		return LoadResult{Error: err.Error()}, err
	}

	if len(existing) > 0 {
		logger.Info().Int("count", len(existing)).Msg("knowledge base already loaded")
		return LoadResult{Success: true, LoadedCount: 0, TotalItems: len(existing)}, nil
	}

	return l.Load(ctx), nil
}
