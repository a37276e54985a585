package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// DefaultRedisKey is the list holding the history.
const DefaultRedisKey = "homeverse:history"

// RedisStore keeps history in a redis list trimmed to the limit on every write.
type RedisStore struct {
	client *redis.Client
	key    string
	limit  int
	now    func() time.Time
}

// NewRedisStore creates a redis-backed store. An empty key uses DefaultRedisKey.
func NewRedisStore(client *redis.Client, key string, limit int) *RedisStore {
	if key == "" {
		key = DefaultRedisKey
	}
	return &RedisStore{client: client, key: key, limit: limitOrDefault(limit), now: time.Now}
}

// Append stamps entry, pushes it to the head of the list and trims the tail
// past the limit in one transaction.
func (s *RedisStore) Append(ctx context.Context, entry Entry) error {
	data, err := json.Marshal(Stamp(entry, s.now()))
	if err != nil {
		return fmt.Errorf("encode history entry: %w", err)
	}

	pipe := s.client.TxPipeline()
	pipe.LPush(ctx, s.key, data)
	pipe.LTrim(ctx, s.key, 0, int64(s.limit-1))
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("append history: %w", err)
	}
	return nil
}

// List returns up to limit entries, newest first. Entries that no longer
// decode are skipped.
func (s *RedisStore) List(ctx context.Context) ([]Entry, error) {
	raw, err := s.client.LRange(ctx, s.key, 0, int64(s.limit-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("list history: %w", err)
	}

	out := make([]Entry, 0, len(raw))
	for _, item := range raw {
		var e Entry
		if err := json.Unmarshal([]byte(item), &e); err != nil {
			// skip entries written by an incompatible version
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

// Clear deletes the whole list.
func (s *RedisStore) Clear(ctx context.Context) error {
	if err := s.client.Del(ctx, s.key).Err(); err != nil {
		return fmt.Errorf("clear history: %w", err)
	}
	return nil
}

// Ping reports whether redis is reachable.
func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

var _ Store = (*RedisStore)(nil)
