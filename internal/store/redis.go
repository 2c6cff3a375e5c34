package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	goredis "github.com/redis/go-redis/v9"
)

// RedisStore keeps the document as one JSON value under a single key,
// preserving the whole-document load/save contract. The mutex only
// serializes writers within this process; the deployment model is a
// single service instance per store key.
type RedisStore struct {
	client *goredis.Client
	key    string
	mu     sync.Mutex
}

func NewRedisStore(client *goredis.Client, key string) *RedisStore {
	if key == "" {
		key = "session-store"
	}
	return &RedisStore{client: client, key: key}
}

func (r *RedisStore) Load(ctx context.Context) (*State, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.load(ctx)
}

func (r *RedisStore) Save(ctx context.Context, st *State) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.save(ctx, st)
}

func (r *RedisStore) Update(ctx context.Context, fn func(*State) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	st, err := r.load(ctx)
	if err != nil {
		return err
	}
	if err := fn(st); err != nil {
		return err
	}
	return r.save(ctx, st)
}

func (r *RedisStore) load(ctx context.Context) (*State, error) {
	val, err := r.client.Get(ctx, r.key).Result()
	if err == goredis.Nil {
		// No document yet: a fresh, empty store.
		return NewState(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}

	var st State
	if err := json.Unmarshal([]byte(val), &st); err != nil {
		return nil, fmt.Errorf("%w: corrupt document: %w", ErrUnavailable, err)
	}
	st.normalize()
	return &st, nil
}

func (r *RedisStore) save(ctx context.Context, st *State) error {
	data, err := json.Marshal(st)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	if err := r.client.Set(ctx, r.key, data, 0).Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	return nil
}
