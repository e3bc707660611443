// Package search provides the Google Custom Search client and the grounding
// context builder.
package search

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog/log"

	"github.com/Rajeev255/ai-market-analyst-agent-proj/internal/cache"
	"github.com/Rajeev255/ai-market-analyst-agent-proj/internal/config"
	"github.com/Rajeev255/ai-market-analyst-agent-proj/internal/models"
)

const (
	// CustomSearchBaseURL is the Google Custom Search JSON API host.
	CustomSearchBaseURL = "https://www.googleapis.com"

	customSearchPath = "/customsearch/v1"

	// MaxResults is the provider's per-call result limit.
	MaxResults = 10

	requestTimeout = 15 * time.Second
)

// Failure reports a failed search request. Status is zero when no HTTP
// response was received.
type Failure struct {
	Status int
	Err    error
}

func (f *Failure) Error() string {
	if f.Status != 0 {
		return fmt.Sprintf("search API returned %d: %v", f.Status, f.Err)
	}
	return fmt.Sprintf("search request failed: %v", f.Err)
}

func (f *Failure) Unwrap() error { return f.Err }

// Config holds the search client configuration.
type Config struct {
	APIKey  string
	CX      string
	BaseURL string        // defaults to CustomSearchBaseURL
	Timeout time.Duration // defaults to 15s
}

// Client queries Google Custom Search and caches normalized result sets.
type Client struct {
	client *resty.Client
	apiKey string
	cx     string
	store  cache.Store
}

// NewClient validates credentials before anything network-facing is built.
// Returns *config.ConfigurationError when the API key or CX is absent or a
// placeholder.
func NewClient(cfg Config, store cache.Store) (*Client, error) {
	if err := config.CheckCredential("GOOGLE_API_KEY", cfg.APIKey); err != nil {
		return nil, err
	}
	if err := config.CheckCredential("GOOGLE_CX", cfg.CX); err != nil {
		return nil, err
	}

	if cfg.BaseURL == "" {
		cfg.BaseURL = CustomSearchBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = requestTimeout
	}

	return &Client{
		client: resty.New().
			SetBaseURL(cfg.BaseURL).
			SetTimeout(cfg.Timeout),
		apiKey: cfg.APIKey,
		cx:     cfg.CX,
		store:  store,
	}, nil
}

type searchResponse struct {
	Items []searchItem `json:"items"`
}

type searchItem struct {
	Title   string `json:"title"`
	Snippet string `json:"snippet"`
	Link    string `json:"link"`
}

// Search returns up to count recent results for query, serving from the
// cache when a fresh entry exists. One upstream GET per miss, no retries.
func (c *Client) Search(ctx context.Context, query string, count int) ([]models.SearchRecord, error) {
	if count <= 0 || count > MaxResults {
		count = MaxResults
	}

	if entry, ok, err := c.store.Get(ctx, query); err != nil {
		log.Warn().Err(err).Msg("Search cache read failed")
	} else if ok {
		log.Debug().Str("query", query).Int("results", len(entry.Results)).Msg("Search cache hit")
		return entry.Results, nil
	}

	log.Debug().Str("query", query).Int("num", count).Msg("Custom Search request")

	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"key": c.apiKey,
			"cx":  c.cx,
			"q":   query,
			"num": strconv.Itoa(count),
		}).
		Get(customSearchPath)

	if err != nil {
		return nil, &Failure{Err: err}
	}
	if resp.StatusCode() < 200 || resp.StatusCode() >= 300 {
		return nil, &Failure{Status: resp.StatusCode(), Err: fmt.Errorf("%s", resp.String())}
	}

	var body searchResponse
	if err := json.Unmarshal(resp.Body(), &body); err != nil {
		return nil, &Failure{Err: fmt.Errorf("failed to parse search response: %w", err)}
	}

	records := make([]models.SearchRecord, 0, len(body.Items))
	for _, it := range body.Items {
		records = append(records, models.SearchRecord{
			Title:   it.Title,
			Snippet: it.Snippet,
			Link:    it.Link,
		})
	}

	if err := c.store.Put(ctx, query, records); err != nil {
		log.Warn().Err(err).Msg("Search cache write failed")
	}

	log.Debug().Int("results", len(records)).Msg("Custom Search complete")
	return records, nil
}
