package catalog

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// catalogKey is the fixed key the whole course list lives under.
const catalogKey = "courses"

type RedisStore struct {
	client *redis.Client
}

// NewRedisStore creates a redis-backed catalog store. The entire catalog is
// one JSON value under a single key.
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (r *RedisStore) Load(ctx context.Context) ([]Course, error) {
	val, err := r.client.Get(ctx, catalogKey).Result()
	if err == redis.Nil {
		return []Course{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: load: %v", ErrStorage, err)
	}

	var courses []Course
	if err := json.Unmarshal([]byte(val), &courses); err != nil {
		return nil, fmt.Errorf("%w: decode: %v", ErrStorage, err)
	}
	if courses == nil {
		courses = []Course{}
	}

	return courses, nil
}

func (r *RedisStore) Save(ctx context.Context, courses []Course) error {
	data, err := json.Marshal(courses)
	if err != nil {
		return fmt.Errorf("%w: encode: %v", ErrStorage, err)
	}

	if err := r.client.Set(ctx, catalogKey, data, 0).Err(); err != nil {
		return fmt.Errorf("%w: save: %v", ErrStorage, err)
	}
	return nil
}

func (r *RedisStore) Update(ctx context.Context, fn func([]Course) ([]Course, error)) error {
	courses, err := r.Load(ctx)
	if err != nil {
		return err
	}

	updated, err := fn(courses)
	if err != nil {
		return err
	}

	return r.Save(ctx, updated)
}
