package cache

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Rajeev255/ai-market-analyst-agent-proj/internal/models"
)

// MongoStore keeps cache entries in a single MongoDB collection so several
// instances can share one search cache. TTL is enforced by the reader, not
// by a server-side expiry, matching the other backends.
type MongoStore struct {
	client  *mongo.Client
	entries *mongo.Collection
	ttl     time.Duration
	now     func() time.Time
}

type mongoEntry struct {
	Key   string            `bson:"key"`
	Entry models.CacheEntry `bson:"entry"`
}

// NewMongoStore connects, pings and prepares the search_cache collection.
func NewMongoStore(ctx context.Context, uri, dbName string, ttl time.Duration) (*MongoStore, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, err
	}

	if ttl <= 0 {
		ttl = DefaultTTL
	}

	db := client.Database(dbName)
	store := &MongoStore{
		client:  client,
		entries: db.Collection("search_cache"),
		ttl:     ttl,
		now:     time.Now,
	}

	index := mongo.IndexModel{
		Keys:    bson.D{{Key: "key", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	if _, err := store.entries.Indexes().CreateOne(ctx, index); err != nil {
		log.Warn().Err(err).Msg("Failed to create search cache index")
	}

	log.Info().Str("db", dbName).Msg("Connected to MongoDB search cache")
	return store, nil
}

// Close closes the database connection.
func (s *MongoStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// Get returns the cached entry for query, treating expired documents as
// misses.
func (s *MongoStore) Get(ctx context.Context, query string) (*models.CacheEntry, bool, error) {
	var doc mongoEntry
	err := s.entries.FindOne(ctx, bson.M{"key": Key(query)}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	if s.now().Sub(doc.Entry.FetchedAt) >= s.ttl {
		return nil, false, nil
	}
	return &doc.Entry, true, nil
}

// Put upserts a fresh entry for query.
func (s *MongoStore) Put(ctx context.Context, query string, results []models.SearchRecord) error {
	doc := mongoEntry{
		Key: Key(query),
		Entry: models.CacheEntry{
			Query:     query,
			Results:   results,
			FetchedAt: s.now(),
		},
	}

	opts := options.Replace().SetUpsert(true)
	_, err := s.entries.ReplaceOne(ctx, bson.M{"key": doc.Key}, doc, opts)
	return err
}
