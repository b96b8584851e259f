// Package graphql serves the DSN parser over GraphQL.
package graphql

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/rediwo/redi-dsn/logger"
)

// ServerConfig contains configuration for the GraphQL server
type ServerConfig struct {
	Addr     string
	GraphiQL bool
	CORS     bool
	Pretty   bool
	Logger   logger.Logger
}

// Server represents a GraphQL server
type Server struct {
	config  ServerConfig
	handler *Handler
	http    *http.Server
	logger  logger.Logger
}

// NewServer creates a new GraphQL server
func NewServer(config ServerConfig) (*Server, error) {
	schema, err := NewSchema()
	if err != nil {
		return nil, fmt.Errorf("failed to build GraphQL schema: %w", err)
	}

	l := config.Logger
	if l == nil {
		l = logger.NewNullLogger()
	}

	h := NewHandler(&schema).SetPretty(config.Pretty).SetLogger(l)
	if config.GraphiQL {
		h.EnableGraphiQL()
	}

	s := &Server{
		config:  config,
		handler: h,
		logger:  l,
	}
	s.http = &http.Server{
		Addr:    config.Addr,
		Handler: s.routes(),
	}
	return s, nil
}

func (s *Server) routes() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/graphql", s.corsMiddleware(s.handler))
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/" {
			fmt.Fprintf(w, "redi-dsn GraphQL Server\n\nEndpoints:\n- /graphql - GraphQL API\n- /health - Health check\n")
			return
		}
		http.NotFound(w, r)
	})
	return mux
}

// Handler returns the routed HTTP handler
func (s *Server) Handler() http.Handler {
	return s.http.Handler
}

// Start listens until Shutdown is called
func (s *Server) Start() error {
	s.logger.Info("GraphQL server ready at http://%s/graphql", s.config.Addr)
	if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("graphql server: %w", err)
	}
	return nil
}

// Shutdown stops accepting requests and waits for in-flight ones
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("GraphQL server shutting down")
	return s.http.Shutdown(ctx)
}

// corsMiddleware adds CORS headers if enabled
func (s *Server) corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.config.CORS {
			w.Header().Set("Access-Control-Allow-Origin", "*")
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusOK)
				return
			}
		}
		next.ServeHTTP(w, r)
	})
}
