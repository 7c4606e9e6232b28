package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/sandevgo/suppd/internal/config"
	"github.com/sandevgo/suppd/internal/core"
	"github.com/sandevgo/suppd/internal/knowledge"
	"github.com/sandevgo/suppd/internal/service/agent"
	"github.com/sandevgo/suppd/internal/service/loader"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	partitions map[string][]core.MemoryItem
	nextID     int
	failList   bool
}

func newFakeStore() *fakeStore {
	return &fakeStore{partitions: make(map[string][]core.MemoryItem)}
}

func (f *fakeStore) Add(ctx context.Context, owner core.Owner, messages []core.Message, metadata map[string]any) error {
	var parts []string
	for _, m := range messages {
		parts = append(parts, m.Content)
	}
	f.nextID++
	f.partitions[owner.Key()] = append(f.partitions[owner.Key()], core.MemoryItem{
		ID:       fmt.Sprintf("mem_%d", f.nextID),
		Memory:   strings.Join(parts, "\n"),
		Metadata: metadata,
	})
	return nil
}

func (f *fakeStore) Search(ctx context.Context, owner core.Owner, query string, limit int) ([]core.MemoryItem, error) {
	items := f.partitions[owner.Key()]
	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}
	return append([]core.MemoryItem(nil), items...), nil
}

func (f *fakeStore) ListAll(ctx context.Context, owner core.Owner) ([]core.MemoryItem, error) {
	if f.failList {
		return nil, core.NewBackendError("mem0", "list_all", errors.New("service unavailable"))
	}
	return append([]core.MemoryItem(nil), f.partitions[owner.Key()]...), nil
}

func (f *fakeStore) DeleteAll(ctx context.Context, owner core.Owner) error {
	delete(f.partitions, owner.Key())
	return nil
}

type stubCompleter struct {
	response string
}

func (s *stubCompleter) Complete(ctx context.Context, messages []core.Message) (core.Message, error) {
	return core.Message{Role: core.RoleAssistant, Content: s.response}, nil
}

func newTestServer(store *fakeStore) *Server {
	cfg := &config.AppConfig{
		CompanyName:        "TechCorp",
		ContextLimit:       3,
		ContextTokenBudget: 1500,
	}
	kb := loader.New(store)
	ag := agent.New(cfg, store, kb, &stubCompleter{response: "Happy to help."}, nil)
	return NewServer(":0", ag, kb)
}

func doRequest(t *testing.T, s *Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *strings.Reader
	if body != "" {
		reader = strings.NewReader(body)
	} else {
		reader = strings.NewReader("")
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.server.Handler.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), v))
}

func TestHandleHealth(t *testing.T) {
	s := newTestServer(newFakeStore())
	rec := doRequest(t, s, http.MethodGet, "/healthz", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]string
	decodeBody(t, rec, &body)
	assert.Equal(t, "ok", body["status"])
}

func TestHandleChat(t *testing.T) {
	t.Run("happy path", func(t *testing.T) {
		s := newTestServer(newFakeStore())
		rec := doRequest(t, s, http.MethodPost, "/v1/chat",
			`{"customer_id":"cust_1","customer_name":"Jane","query":"I cannot log in."}`)

		require.Equal(t, http.StatusOK, rec.Code)
		var result core.QueryResult
		decodeBody(t, rec, &result)
		assert.Equal(t, "Happy to help.", result.Response)
		assert.Equal(t, "cust_1", result.CustomerID)
		assert.Empty(t, result.Error)
	})

	t.Run("empty query rejected", func(t *testing.T) {
		s := newTestServer(newFakeStore())
		rec := doRequest(t, s, http.MethodPost, "/v1/chat", `{"customer_id":"cust_1","query":"  "}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("invalid body rejected", func(t *testing.T) {
		s := newTestServer(newFakeStore())
		rec := doRequest(t, s, http.MethodPost, "/v1/chat", `not json`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("anonymous session gets generated id", func(t *testing.T) {
		s := newTestServer(newFakeStore())
		rec := doRequest(t, s, http.MethodPost, "/v1/chat", `{"query":"hello"}`)

		require.Equal(t, http.StatusOK, rec.Code)
		var result core.QueryResult
		decodeBody(t, rec, &result)
		assert.NotEmpty(t, result.CustomerID)
	})

	t.Run("save defaults to true", func(t *testing.T) {
		store := newFakeStore()
		s := newTestServer(store)
		doRequest(t, s, http.MethodPost, "/v1/chat", `{"customer_id":"cust_1","query":"hello"}`)

		assert.Len(t, store.partitions[core.CustomerOwner("cust_1").Key()], 1)
	})

	t.Run("save disabled", func(t *testing.T) {
		store := newFakeStore()
		s := newTestServer(store)
		doRequest(t, s, http.MethodPost, "/v1/chat",
			`{"customer_id":"cust_1","query":"hello","save_interaction":false}`)

		assert.Empty(t, store.partitions[core.CustomerOwner("cust_1").Key()])
	})
}

func TestCustomerMemoryEndpoints(t *testing.T) {
	store := newFakeStore()
	s := newTestServer(store)

	rec := doRequest(t, s, http.MethodPost, "/v1/customers/cust_1/preferences",
		`{"preference":"Prefers email over phone","category":"contact"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	var op core.OpResult
	decodeBody(t, rec, &op)
	assert.True(t, op.Success)

	rec = doRequest(t, s, http.MethodGet, "/v1/customers/cust_1/memories", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var items struct {
		Count int               `json:"count"`
		Items []core.MemoryItem `json:"items"`
	}
	decodeBody(t, rec, &items)
	assert.Equal(t, 1, items.Count)
	assert.Contains(t, items.Items[0].Memory, "Prefers email")

	rec = doRequest(t, s, http.MethodDelete, "/v1/customers/cust_1/memories", "")
	require.Equal(t, http.StatusOK, rec.Code)
	decodeBody(t, rec, &op)
	assert.True(t, op.Success)

	rec = doRequest(t, s, http.MethodGet, "/v1/customers/cust_1/memories", "")
	decodeBody(t, rec, &items)
	assert.Zero(t, items.Count)
}

func TestHandleAddPreference_EmptyRejected(t *testing.T) {
	s := newTestServer(newFakeStore())
	rec := doRequest(t, s, http.MethodPost, "/v1/customers/cust_1/preferences", `{"preference":""}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestKnowledgeEndpoints(t *testing.T) {
	store := newFakeStore()
	s := newTestServer(store)

	rec := doRequest(t, s, http.MethodPost, "/v1/knowledge/reload", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var load loader.LoadResult
	decodeBody(t, rec, &load)
	assert.True(t, load.Success)
	assert.Equal(t, len(knowledge.Records()), load.LoadedCount)

	rec = doRequest(t, s, http.MethodGet, "/v1/knowledge/", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var items struct {
		Count int `json:"count"`
	}
	decodeBody(t, rec, &items)
	assert.Equal(t, len(knowledge.Records()), items.Count)
}

func TestHandleKnowledgeSearch(t *testing.T) {
	s := newTestServer(newFakeStore())

	t.Run("missing q rejected", func(t *testing.T) {
		rec := doRequest(t, s, http.MethodGet, "/v1/knowledge/search", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("invalid limit rejected", func(t *testing.T) {
		rec := doRequest(t, s, http.MethodGet, "/v1/knowledge/search?q=storage&limit=abc", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)

		rec = doRequest(t, s, http.MethodGet, "/v1/knowledge/search?q=storage&limit=-1", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("valid query", func(t *testing.T) {
		rec := doRequest(t, s, http.MethodGet, "/v1/knowledge/search?q=storage&limit=3", "")
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestHandleKnowledgeItems_BackendFailure(t *testing.T) {
	store := newFakeStore()
	store.failList = true
	s := newTestServer(store)

	rec := doRequest(t, s, http.MethodGet, "/v1/knowledge/", "")
	assert.Equal(t, http.StatusBadGateway, rec.Code)
}
