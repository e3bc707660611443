// Stratosphere - executive market-analysis agent.
// Serves grounded LLM market reports over HTTP.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/Rajeev255/ai-market-analyst-agent-proj/internal/analysis"
	"github.com/Rajeev255/ai-market-analyst-agent-proj/internal/api"
	"github.com/Rajeev255/ai-market-analyst-agent-proj/internal/cache"
	"github.com/Rajeev255/ai-market-analyst-agent-proj/internal/config"
	"github.com/Rajeev255/ai-market-analyst-agent-proj/internal/report"
	"github.com/Rajeev255/ai-market-analyst-agent-proj/internal/search"
)

func main() {
	// Setup logging
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	log.Info().Msg("Stratosphere - starting analysis service")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	if cfg.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration")
	}

	ctx := context.Background()

	// Initialize the search result cache
	store := buildCacheStore(ctx, cfg)

	// Initialize the search client; a missing credential only disables
	// grounding, reports then fall back to general knowledge.
	var searcher report.Searcher
	searchClient, err := search.NewClient(search.Config{
		APIKey: cfg.SearchAPIKey,
		CX:     cfg.SearchCX,
	}, store)
	if err != nil {
		log.Warn().Err(err).Msg("Search client not initialized")
	} else {
		searcher = searchClient
		log.Info().Msg("Search client initialized")
	}

	// Initialize the LLM provider. Without it the agent is unavailable,
	// but the process still serves health checks. The interface stays nil
	// unless the assembler was actually built.
	var agent api.ReportProducer
	provider, err := buildProvider(ctx, cfg)
	if err != nil {
		log.Warn().Err(err).Msg("LLM provider not initialized, analysis disabled")
	} else {
		defer provider.Close()
		agent = report.NewAssembler(searcher, analysis.NewClient(provider), cfg.SearchResults)
		log.Info().Str("provider", provider.Name()).Msg("Analysis agent initialized")
	}

	apiServer := api.NewServer(agent, cfg.HTTPAddr)

	// Setup signal handling
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := apiServer.Start(); err != nil {
			log.Error().Err(err).Msg("API server error")
		}
	}()

	log.Info().Str("api", cfg.HTTPAddr).Msg("Stratosphere running")

	// Wait for shutdown signal
	<-sigChan
	log.Info().Msg("Shutdown signal received")

	// Graceful shutdown
	shutdownCtx := context.Background()
	apiServer.Shutdown(shutdownCtx)
	if closer, ok := store.(interface{ Close(context.Context) error }); ok {
		closer.Close(shutdownCtx)
	}

	log.Info().Msg("Stratosphere stopped")
}

// buildCacheStore picks the cache backend, falling back to the file store
// and finally to memory so startup never fails on the cache.
func buildCacheStore(ctx context.Context, cfg *config.Config) cache.Store {
	switch cfg.CacheBackend {
	case "memory":
		log.Info().Msg("Using in-memory search cache")
		return cache.NewMemoryStore(0, cfg.CacheTTL)
	case "mongo":
		store, err := cache.NewMongoStore(ctx, cfg.MongoURI, cfg.MongoDB, cfg.CacheTTL)
		if err != nil {
			log.Warn().Err(err).Msg("Mongo cache unavailable, falling back to file cache")
		} else {
			return store
		}
	}

	store, err := cache.NewFileStore(cfg.CacheDir, cfg.CacheTTL)
	if err != nil {
		log.Warn().Err(err).Msg("File cache unavailable, using in-memory cache")
		return cache.NewMemoryStore(0, cfg.CacheTTL)
	}
	log.Info().Str("dir", cfg.CacheDir).Msg("Using file search cache")
	return store
}

func buildProvider(ctx context.Context, cfg *config.Config) (analysis.Provider, error) {
	switch cfg.LLMProvider {
	case "qwen":
		return analysis.NewQwenProvider(analysis.QwenConfig{
			APIKey:   cfg.DashScopeAPIKey,
			Endpoint: cfg.DashScopeEndpoint,
			Model:    cfg.QwenModel,
		})
	default:
		return analysis.NewGeminiProvider(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
	}
}
