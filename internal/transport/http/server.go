// Package http exposes the operations the chat UI invokes: the query
// pipeline, customer memory maintenance, and knowledge base admin.
package http

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/sandevgo/suppd/internal/service/agent"
	"github.com/sandevgo/suppd/internal/service/loader"
	"github.com/sandevgo/suppd/pkg/log"
)

type Server struct {
	agent  *agent.Agent
	kb     *loader.Loader
	server *http.Server
}

func NewServer(addr string, ag *agent.Agent, kb *loader.Loader) *Server {
	s := &Server{
		agent: ag,
		kb:    kb,
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))
	r.Use(requestLogger)

	r.Get("/healthz", s.handleHealth)
	r.Route("/v1", func(r chi.Router) {
		r.Post("/chat", s.handleChat)
		r.Route("/customers/{customerID}", func(r chi.Router) {
			r.Get("/memories", s.handleHistory)
			r.Delete("/memories", s.handleClearHistory)
			r.Post("/preferences", s.handleAddPreference)
		})
		r.Route("/knowledge", func(r chi.Router) {
			r.Get("/", s.handleKnowledgeItems)
			r.Get("/search", s.handleKnowledgeSearch)
			r.Post("/reload", s.handleKnowledgeReload)
		})
	})

	s.server = &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	return s
}

func (s *Server) Start(ctx context.Context) error {
	log.FromCtx(ctx).Info().Str("addr", s.server.Addr).Msg("starting http server")

	// Derive request contexts from the application context so the
	// logger travels into handlers.
	s.server.BaseContext = func(net.Listener) context.Context {
		return ctx
	}

	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return s.server.Shutdown(shutdownCtx)
}

func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.FromCtx(r.Context()).Debug().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Dur("duration", time.Since(start)).
			Msg("http request")
	})
}
