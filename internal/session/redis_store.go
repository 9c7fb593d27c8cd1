package session

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"course-service/internal/logger"
)

type RedisStore struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewRedisStore creates a redis-backed session store with a fixed TTL.
func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{
		client: client,
		prefix: "session:",
		ttl:    ttl,
	}
}

func (r *RedisStore) key(token string) string {
	return r.prefix + token
}

func (r *RedisStore) Create(ctx context.Context) (string, error) {
	token, err := GenerateToken()
	if err != nil {
		return "", err
	}

	if err := r.client.Set(ctx, r.key(token), loggedIn, r.ttl).Err(); err != nil {
		return "", fmt.Errorf("session: failed to persist: %w", err)
	}

	return token, nil
}

func (r *RedisStore) IsLoggedIn(ctx context.Context, token string) bool {
	if token == "" {
		return false
	}

	val, err := r.client.Get(ctx, r.key(token)).Result()
	if err == redis.Nil {
		return false
	}
	if err != nil {
		// Fail closed: an unreachable store means nobody is logged in.
		logger.Warn("session lookup failed", map[string]any{"error": err.Error()})
		return false
	}

	return val == loggedIn
}

func (r *RedisStore) Destroy(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return r.client.Del(ctx, r.key(token)).Err()
}
