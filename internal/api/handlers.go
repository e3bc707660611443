package api

import (
	"context"
	"encoding/json"
	"net/http"
	"reflect"
	"strconv"
)

// ReportProducer is the slice of the report assembler the handlers need.
type ReportProducer interface {
	ProduceReport(ctx context.Context, query string, useSearch bool) string
}

// Handlers holds the API handlers. A nil agent means the LLM credentials
// were missing at startup; analyze requests then get a 503.
type Handlers struct {
	agent ReportProducer
}

// NewHandlers creates new API handlers. A typed-nil agent (a nil assembler
// pointer inside the interface) is treated the same as no agent, so the
// unavailable guard fires instead of a nil dereference.
func NewHandlers(agent ReportProducer) *Handlers {
	if agent == nil {
		return &Handlers{}
	}
	if v := reflect.ValueOf(agent); v.Kind() == reflect.Ptr && v.IsNil() {
		return &Handlers{}
	}
	return &Handlers{agent: agent}
}

// Response helpers

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// Analyze runs the full analysis pipeline for a query. The search flag is
// ?search=true|false and defaults to true.
func (h *Handlers) Analyze(w http.ResponseWriter, r *http.Request) {
	if h.agent == nil {
		respondError(w, http.StatusServiceUnavailable, "Agent not available. API keys missing on server.")
		return
	}

	query := r.URL.Query().Get("q")
	if query == "" {
		respondError(w, http.StatusBadRequest, "Query parameter q is required")
		return
	}

	useSearch := true
	if v := r.URL.Query().Get("search"); v != "" {
		if parsed, err := strconv.ParseBool(v); err == nil {
			useSearch = parsed
		}
	}

	analysisText := h.agent.ProduceReport(r.Context(), query, useSearch)

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"query":       query,
		"search_used": useSearch,
		"analysis":    analysisText,
	})
}

// HealthCheck returns service health.
func (h *Handlers) HealthCheck(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "stratosphere",
	})
}
