package graphql

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/graphql-go/graphql"
	"github.com/graphql-go/handler"
	"github.com/rediwo/redi-dsn/logger"
)

// Handler serves GraphQL requests against a schema
type Handler struct {
	schema          *graphql.Schema
	pretty          bool
	graphiQLEnabled bool
	logger          logger.Logger
}

// NewHandler creates a new GraphQL HTTP handler
func NewHandler(schema *graphql.Schema) *Handler {
	return &Handler{
		schema: schema,
		pretty: true,
		logger: logger.NewNullLogger(),
	}
}

// SetPretty enables or disables pretty printing of JSON responses
func (h *Handler) SetPretty(pretty bool) *Handler {
	h.pretty = pretty
	return h
}

// EnableGraphiQL serves the GraphiQL IDE to browsers
func (h *Handler) EnableGraphiQL() *Handler {
	h.graphiQLEnabled = true
	return h
}

// SetLogger sets the request logger
func (h *Handler) SetLogger(l logger.Logger) *Handler {
	if l == nil {
		l = logger.NewNullLogger()
	}
	h.logger = l
	return h
}

// ServeHTTP implements the http.Handler interface
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodPost || (r.Method == http.MethodGet && r.URL.Query().Get("query") != "") {
		h.ServeGraphQL(w, r)
		return
	}

	if r.Method == http.MethodGet && h.acceptsHTML(r) {
		if !h.graphiQLEnabled {
			http.Error(w, "GraphQL IDE not enabled", http.StatusNotFound)
			return
		}
		h.ServeGraphiQL(w, r)
		return
	}

	http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
}

// ServeGraphQL handles GraphQL query execution
func (h *Handler) ServeGraphQL(w http.ResponseWriter, r *http.Request) {
	startTime := time.Now()

	params, status, err := h.readParams(r)
	if err != nil {
		h.writeError(w, err.Error(), status)
		return
	}

	h.logger.Debug("Query: %s", truncateString(params.Query, 100))

	result := graphql.Do(graphql.Params{
		Schema:         *h.schema,
		RequestString:  params.Query,
		VariableValues: params.Variables,
		OperationName:  params.OperationName,
		Context:        r.Context(),
	})

	duration := time.Since(startTime)
	if len(result.Errors) > 0 {
		h.logger.Error("GraphQL failed in %v - %d error(s)", duration, len(result.Errors))
		for i, e := range result.Errors {
			h.logger.Error("  %d: %s", i+1, e.Message)
		}
	} else {
		h.logger.Info("GraphQL success in %v", duration)
	}

	w.Header().Set("Content-Type", "application/json")
	encoder := json.NewEncoder(w)
	if h.pretty {
		encoder.SetIndent("", "  ")
	}
	if err := encoder.Encode(result); err != nil {
		h.logger.Error("Failed to write response: %v", err)
	}
}

// readParams extracts query, variables and operation name from GET or POST requests
func (h *Handler) readParams(r *http.Request) (graphQLParams, int, error) {
	var params graphQLParams

	if r.Method == http.MethodGet {
		query := r.URL.Query()
		params.Query = query.Get("query")
		params.OperationName = query.Get("operationName")
		if variables := query.Get("variables"); variables != "" {
			if err := json.Unmarshal([]byte(variables), &params.Variables); err != nil {
				return params, http.StatusBadRequest, errors.New("Invalid variables")
			}
		}
		return params, http.StatusOK, nil
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		return params, http.StatusBadRequest, errors.New("Failed to read request body")
	}
	defer r.Body.Close()

	contentType := r.Header.Get("Content-Type")
	switch {
	case strings.Contains(contentType, "application/json"):
		if err := json.Unmarshal(body, &params); err != nil {
			return params, http.StatusBadRequest, fmt.Errorf("Invalid JSON: %v", err)
		}
	case strings.Contains(contentType, "application/graphql"):
		params.Query = string(body)
	default:
		h.logger.Warn("Unsupported content type: %s", contentType)
		return params, http.StatusBadRequest, errors.New("Unsupported content type")
	}
	return params, http.StatusOK, nil
}

// ServeGraphiQL serves the GraphiQL interface
func (h *Handler) ServeGraphiQL(w http.ResponseWriter, r *http.Request) {
	handler.New(&handler.Config{
		Schema:   h.schema,
		Pretty:   h.pretty,
		GraphiQL: true,
	}).ServeHTTP(w, r)
}

// writeError writes an error response
func (h *Handler) writeError(w http.ResponseWriter, message string, code int) {
	h.logger.Error("HTTP %d: %s", code, message)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	response := map[string]any{
		"errors": []map[string]any{
			{"message": message},
		},
	}
	json.NewEncoder(w).Encode(response)
}

func (h *Handler) acceptsHTML(r *http.Request) bool {
	accept := r.Header.Get("Accept")
	return strings.Contains(accept, "text/html") || strings.Contains(accept, "*/*")
}

// truncateString truncates a string to the specified length, adding "..." if truncated
func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return "..."
	}
	return s[:maxLen-3] + "..."
}

type graphQLParams struct {
	Query         string         `json:"query"`
	Variables     map[string]any `json:"variables"`
	OperationName string         `json:"operationName"`
}
