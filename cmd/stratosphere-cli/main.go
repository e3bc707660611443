// Stratosphere CLI - interactive market analysis in the terminal.
package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/Rajeev255/ai-market-analyst-agent-proj/internal/analysis"
	"github.com/Rajeev255/ai-market-analyst-agent-proj/internal/cache"
	"github.com/Rajeev255/ai-market-analyst-agent-proj/internal/config"
	"github.com/Rajeev255/ai-market-analyst-agent-proj/internal/report"
	"github.com/Rajeev255/ai-market-analyst-agent-proj/internal/search"
)

func main() {
	// Keep the terminal output readable: warnings and up only.
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.WarnLevel)

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()

	store, err := cache.NewFileStore(cfg.CacheDir, cfg.CacheTTL)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		os.Exit(1)
	}

	var searcher report.Searcher
	searchClient, err := search.NewClient(search.Config{
		APIKey: cfg.SearchAPIKey,
		CX:     cfg.SearchCX,
	}, store)
	if err != nil {
		fmt.Fprintf(os.Stderr, "WARNING: %v, reports will use general knowledge\n", err)
	} else {
		searcher = searchClient
	}

	provider, err := analysis.NewGeminiProvider(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		os.Exit(1)
	}
	defer provider.Close()

	agent := report.NewAssembler(searcher, analysis.NewClient(provider), cfg.SearchResults)

	fmt.Println("Stratosphere initialized.")
	fmt.Println()
	fmt.Println("Enter a company name to analyze (e.g., 'Apple' or 'NVIDIA stock').")
	fmt.Println("Add '--no-search' to a query to skip real-time search (e.g., 'Apple --no-search').")
	fmt.Println("Type 'exit' to quit.")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("\nYou: ")
		if !scanner.Scan() {
			break
		}
		raw := strings.TrimSpace(scanner.Text())
		if raw == "" {
			continue
		}
		if l := strings.ToLower(raw); l == "exit" || l == "quit" {
			fmt.Println("Goodbye, take care!")
			break
		}

		useSearch := true
		query := raw
		if strings.Contains(raw, "--no-search") {
			useSearch = false
			query = strings.TrimSpace(strings.ReplaceAll(raw, "--no-search", ""))
		}

		// Short queries get a news-focused rewrite.
		if len(strings.Fields(query)) <= 4 {
			query = "recent news about " + query
		}

		out := agent.ProduceReport(ctx, query, useSearch)
		fmt.Println("\nAgent response:")
		fmt.Println()
		fmt.Println(out)
	}
}
