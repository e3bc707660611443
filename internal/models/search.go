// Package models defines the data types shared across Stratosphere components.
package models

import "time"

// SearchRecord is one normalized web search result. Fields missing from the
// provider response are empty strings, never null.
type SearchRecord struct {
	Title   string `json:"title" bson:"title"`
	Snippet string `json:"snippet" bson:"snippet"`
	Link    string `json:"link" bson:"link"`
}

// CacheEntry is a cached search result set for a single query. Entries are
// read-only after creation and are logically ignored once older than the
// cache TTL.
type CacheEntry struct {
	Query     string         `json:"query" bson:"query"`
	Results   []SearchRecord `json:"results" bson:"results"`
	FetchedAt time.Time      `json:"fetched_at" bson:"fetched_at"`
}
