package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "console:session:"

// RedisStore persists sessions in Redis with a per-key TTL matching the
// session expiry, so Redis evicts what the console would reject anyway.
type RedisStore struct {
	rdb *redis.Client
}

// NewRedisStore connects to the Redis instance at url (redis:// form) and
// verifies the connection before returning.
func NewRedisStore(ctx context.Context, url string) (*RedisStore, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	rdb := redis.NewClient(opts)
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return &RedisStore{rdb: rdb}, nil
}

func (r *RedisStore) Get(ctx context.Context, id string) (*Session, error) {
	raw, err := r.rdb.Get(ctx, redisKeyPrefix+id).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}

	var s Session
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}
	if s.Expired() {
		return nil, ErrNotFound
	}
	return &s, nil
}

func (r *RedisStore) Put(ctx context.Context, s *Session) error {
	raw, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	ttl := s.TTL()
	if ttl <= 0 {
		ttl = time.Second
	}
	if err := r.rdb.Set(ctx, redisKeyPrefix+s.ID, raw, ttl).Err(); err != nil {
		return fmt.Errorf("store session: %w", err)
	}
	return nil
}

func (r *RedisStore) Delete(ctx context.Context, id string) error {
	if err := r.rdb.Del(ctx, redisKeyPrefix+id).Err(); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

// Close releases the underlying Redis connection.
func (r *RedisStore) Close() error {
	return r.rdb.Close()
}
