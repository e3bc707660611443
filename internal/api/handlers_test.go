package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rajeev255/ai-market-analyst-agent-proj/internal/report"
)

type fakeProducer struct {
	lastQuery     string
	lastUseSearch bool
}

func (f *fakeProducer) ProduceReport(ctx context.Context, query string, useSearch bool) string {
	f.lastQuery = query
	f.lastUseSearch = useSearch
	return "the report"
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestAnalyze(t *testing.T) {
	producer := &fakeProducer{}
	h := NewHandlers(producer)

	req := httptest.NewRequest(http.MethodGet, "/api/analyze?q=NVIDIA+stock", nil)
	rec := httptest.NewRecorder()
	h.Analyze(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "NVIDIA stock", body["query"])
	assert.Equal(t, true, body["search_used"])
	assert.Equal(t, "the report", body["analysis"])
	assert.True(t, producer.lastUseSearch)
}

func TestAnalyzeSearchDisabled(t *testing.T) {
	producer := &fakeProducer{}
	h := NewHandlers(producer)

	req := httptest.NewRequest(http.MethodGet, "/api/analyze?q=Apple&search=false", nil)
	rec := httptest.NewRecorder()
	h.Analyze(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, false, body["search_used"])
	assert.False(t, producer.lastUseSearch)
}

func TestAnalyzeInvalidSearchFlagDefaultsTrue(t *testing.T) {
	producer := &fakeProducer{}
	h := NewHandlers(producer)

	req := httptest.NewRequest(http.MethodGet, "/api/analyze?q=Apple&search=banana", nil)
	rec := httptest.NewRecorder()
	h.Analyze(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, producer.lastUseSearch)
}

func TestAnalyzeMissingQuery(t *testing.T) {
	h := NewHandlers(&fakeProducer{})

	req := httptest.NewRequest(http.MethodGet, "/api/analyze", nil)
	rec := httptest.NewRecorder()
	h.Analyze(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAnalyzeAgentUnavailable(t *testing.T) {
	h := NewHandlers(nil)

	req := httptest.NewRequest(http.MethodGet, "/api/analyze?q=Apple", nil)
	rec := httptest.NewRecorder()
	h.Analyze(rec, req)

	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	body := decodeBody(t, rec)
	assert.Contains(t, body["error"], "Agent not available")
}

func TestAnalyzeTypedNilAssemblerUnavailable(t *testing.T) {
	// A nil *report.Assembler wrapped in the ReportProducer interface is
	// not == nil; it must still get the unavailable response, not a panic.
	var agent *report.Assembler
	srv := NewServer(agent, ":0")

	req := httptest.NewRequest(http.MethodGet, "/api/analyze?q=Apple", nil)
	rec := httptest.NewRecorder()
	srv.router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	body := decodeBody(t, rec)
	assert.Contains(t, body["error"], "Agent not available")
}

func TestHealthCheck(t *testing.T) {
	h := NewHandlers(nil)

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rec := httptest.NewRecorder()
	h.HealthCheck(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "healthy", body["status"])
}

func TestRouterRoutes(t *testing.T) {
	srv := NewServer(&fakeProducer{}, ":0")

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rec := httptest.NewRecorder()
	srv.router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/analyze?q=Apple", nil)
	rec = httptest.NewRecorder()
	srv.router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}
