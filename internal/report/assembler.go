// Package report assembles the final market-analysis report.
package report

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/Rajeev255/ai-market-analyst-agent-proj/internal/analysis"
	"github.com/Rajeev255/ai-market-analyst-agent-proj/internal/models"
	"github.com/Rajeev255/ai-market-analyst-agent-proj/internal/search"
)

// DefaultSearchResults is how many sources a report is grounded on.
const DefaultSearchResults = 2

// Grounding strings substituted when search is skipped, fails or finds
// nothing.
const (
	noResultsMarker    = "(No search results found.)"
	searchFailedMarker = "(Warning: search failed. Analysis will use general knowledge.)"

	emptyReportFallback = "(The analysis produced no displayable text.)"
)

// Searcher is the slice of the search client the assembler needs.
type Searcher interface {
	Search(ctx context.Context, query string, count int) ([]models.SearchRecord, error)
}

// Analyst is the slice of the analysis client the assembler needs.
type Analyst interface {
	Generate(ctx context.Context, systemInstruction, userMessage string) analysis.Result
}

// Assembler orchestrates search, grounding and generation into one report.
// A nil Searcher is valid: every report then falls back to general
// knowledge.
type Assembler struct {
	search  Searcher
	analyst Analyst
	results int
}

// NewAssembler creates an assembler requesting results sources per report.
func NewAssembler(searcher Searcher, analyst Analyst, results int) *Assembler {
	if results <= 0 {
		results = DefaultSearchResults
	}
	return &Assembler{search: searcher, analyst: analyst, results: results}
}

// ProduceReport runs the full pipeline for one query. It always returns a
// non-empty, presentation-safe string; every failure mode degrades into the
// report text instead of an error.
func (a *Assembler) ProduceReport(ctx context.Context, query string, useSearch bool) string {
	grounding := noResultsMarker
	if useSearch {
		grounding = a.grounding(ctx, query)
	}

	userMessage := fmt.Sprintf(userMessageFormat, query, grounding)

	log.Info().Str("query", query).Bool("use_search", useSearch).Msg("Requesting analysis")
	result := a.analyst.Generate(ctx, SystemInstruction, userMessage)
	if result.Outcome != analysis.OutcomeComplete {
		log.Warn().Str("outcome", result.Outcome.String()).Msg("Analysis degraded")
	}

	out := Sanitize(result.DisplayText)
	if out == "" {
		out = emptyReportFallback
	}
	return out
}

func (a *Assembler) grounding(ctx context.Context, query string) string {
	if a.search == nil {
		log.Warn().Msg("Search client not configured, falling back to general knowledge")
		return searchFailedMarker
	}

	records, err := a.search.Search(ctx, query, a.results)
	if err != nil {
		log.Warn().Err(err).Str("query", query).Msg("Search failed, falling back to general knowledge")
		return searchFailedMarker
	}
	if len(records) == 0 {
		log.Warn().Str("query", query).Msg("No search results found")
		return noResultsMarker
	}

	log.Info().Int("sources", len(records)).Str("query", query).Msg("Search complete")
	return search.BuildContext(records)
}
