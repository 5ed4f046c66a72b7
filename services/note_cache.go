package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"main/model"

	"github.com/redis/go-redis/v9"
)

// NoteCache is a redis read-through cache for note listings. Every mutation
// bumps a version counter that is part of each list key, so stale entries
// are never served; redis expires them via TTL. A nil *NoteCache is valid
// and behaves as a permanent cache miss, the service runs fine without redis.
type NoteCache struct {
	client *redis.Client
	ttl    time.Duration
}

const noteListVersionKey = "notes:list:version"

// NewNoteCache connects to redis and returns a note listing cache.
func NewNoteCache(redisURL string, ttl time.Duration) (*NoteCache, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %v", err)
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %v", err)
	}

	return &NoteCache{client: client, ttl: ttl}, nil
}

// ListKey builds the cache key for a listing request, folding in the current
// write version so BumpVersion invalidates all list entries at once.
func (nc *NoteCache) ListKey(ctx context.Context, requesterID string, tags []string, visibility string) string {
	if nc == nil || nc.client == nil {
		return ""
	}
	version, err := nc.client.Get(ctx, noteListVersionKey).Int64()
	if err != nil && err != redis.Nil {
		return ""
	}
	return fmt.Sprintf("notes:list:%d:%s:%s:%s", version, requesterID, strings.Join(tags, ","), visibility)
}

// GetList returns a cached listing, or ok=false on any miss or redis error.
func (nc *NoteCache) GetList(ctx context.Context, key string) ([]*model.Note, bool) {
	if nc == nil || nc.client == nil || key == "" {
		return nil, false
	}

	data, err := nc.client.Get(ctx, key).Bytes()
	if err != nil {
		return nil, false
	}

	var notes []*model.Note
	if err := json.Unmarshal(data, &notes); err != nil {
		return nil, false
	}
	return notes, true
}

// SetList caches a listing result. Failures are ignored, the cache is
// best-effort.
func (nc *NoteCache) SetList(ctx context.Context, key string, notes []*model.Note) {
	if nc == nil || nc.client == nil || key == "" {
		return
	}

	data, err := json.Marshal(notes)
	if err != nil {
		return
	}
	nc.client.Set(ctx, key, data, nc.ttl)
}

// BumpVersion invalidates every cached listing after a note mutation.
func (nc *NoteCache) BumpVersion(ctx context.Context) {
	if nc == nil || nc.client == nil {
		return
	}
	nc.client.Incr(ctx, noteListVersionKey)
}

// Close closes the Redis connection.
func (nc *NoteCache) Close() error {
	if nc == nil || nc.client == nil {
		return nil
	}
	return nc.client.Close()
}
