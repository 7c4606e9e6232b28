package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sandevgo/suppd/internal/core"
	"github.com/sandevgo/suppd/internal/service/agent"
)

type chatRequest struct {
	CustomerID      string `json:"customer_id"`
	CustomerName    string `json:"customer_name"`
	Query           string `json:"query"`
	SaveInteraction *bool  `json:"save_interaction"`
}

type preferenceRequest struct {
	Preference string `json:"preference"`
	Category   string `json:"category"`
}

type itemsResponse struct {
	Count int               `json:"count"`
	Items []core.MemoryItem `json:"items"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if strings.TrimSpace(req.Query) == "" {
		writeError(w, http.StatusBadRequest, "query must not be empty")
		return
	}

	// Anonymous sessions get a generated customer id the client can
	// carry across turns.
	if req.CustomerID == "" {
		req.CustomerID = uuid.NewString()
	}

	save := true
	if req.SaveInteraction != nil {
		save = *req.SaveInteraction
	}

	result := s.agent.HandleQuery(r.Context(), agent.QueryRequest{
		CustomerID:      req.CustomerID,
		Query:           req.Query,
		CustomerName:    req.CustomerName,
		SaveInteraction: save,
	})

	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	customerID := chi.URLParam(r, "customerID")
	items := s.agent.History(r.Context(), customerID)
	writeJSON(w, http.StatusOK, itemsResponse{Count: len(items), Items: items})
}

func (s *Server) handleClearHistory(w http.ResponseWriter, r *http.Request) {
	customerID := chi.URLParam(r, "customerID")
	writeJSON(w, http.StatusOK, s.agent.ClearHistory(r.Context(), customerID))
}

func (s *Server) handleAddPreference(w http.ResponseWriter, r *http.Request) {
	customerID := chi.URLParam(r, "customerID")

	var req preferenceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(req.Preference) == "" {
		writeError(w, http.StatusBadRequest, "preference must not be empty")
		return
	}

	writeJSON(w, http.StatusOK, s.agent.AddPreference(r.Context(), customerID, req.Preference, req.Category))
}

func (s *Server) handleKnowledgeItems(w http.ResponseWriter, r *http.Request) {
	items, err := s.kb.Items(r.Context())
	if err != nil {
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, itemsResponse{Count: len(items), Items: items})
}

func (s *Server) handleKnowledgeSearch(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if strings.TrimSpace(query) == "" {
		writeError(w, http.StatusBadRequest, "missing query parameter q")
		return
	}

	limit := 5
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			writeError(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = n
	}

	items := s.kb.Search(r.Context(), query, limit)
	writeJSON(w, http.StatusOK, itemsResponse{Count: len(items), Items: items})
}

func (s *Server) handleKnowledgeReload(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.kb.Reload(r.Context()))
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	// The response is already committed; an encode failure here only
	// means the client went away.
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
