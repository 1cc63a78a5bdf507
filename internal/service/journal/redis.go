package journal

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisRecorder appends interaction entries to a capped Redis list so the log
// survives restarts and is shared across replicas.
type RedisRecorder struct {
	client *redis.Client
	key    string
	cap    int64
}

// NewRedisRecorder builds a recorder writing to the given list key. cap bounds
// the retained entries; 0 keeps the default of 10000.
func NewRedisRecorder(client *redis.Client, key string, cap int64) *RedisRecorder {
	if key == "" {
		key = "serein:interactions"
	}
	if cap <= 0 {
		cap = 10000
	}
	return &RedisRecorder{client: client, key: key, cap: cap}
}

func (r *RedisRecorder) Append(ctx context.Context, entry Entry) error {
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}
	raw, err := json.Marshal(entry)
	if err != nil {
		return err
	}
	if err := r.client.RPush(ctx, r.key, string(raw)).Err(); err != nil {
		return err
	}
	return r.client.LTrim(ctx, r.key, -r.cap, -1).Err()
}

func (r *RedisRecorder) Recent(ctx context.Context, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = 50
	}
	raws, err := r.client.LRange(ctx, r.key, int64(-limit), -1).Result()
	if err != nil {
		return nil, err
	}
	entries := make([]Entry, 0, len(raws))
	for _, raw := range raws {
		var entry Entry
		if err := json.Unmarshal([]byte(raw), &entry); err != nil {
			continue
		}
		entries = append(entries, entry)
	}
	return entries, nil
}
