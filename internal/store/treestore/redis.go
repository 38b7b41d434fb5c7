package treestore

import (
	"context"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
)

const (
	retryAttempts = 3
	retryBackoff  = 100 * time.Millisecond
)

// RedisStore keeps each tree path as a plain Redis key. Transient transport
// errors are retried a bounded number of times; a cancelled context is never
// retried.
type RedisStore struct {
	rdb *redis.Client
}

func NewRedisStore(rdb *redis.Client) *RedisStore {
	return &RedisStore{rdb: rdb}
}

func (s *RedisStore) Get(ctx context.Context, path string) ([]byte, bool, error) {
	var val []byte
	err := withRetry(ctx, func() error {
		b, err := s.rdb.Get(ctx, path).Bytes()
		if err != nil {
			return err
		}
		val = b
		return nil
	})
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return val, true, nil
}

func (s *RedisStore) Set(ctx context.Context, path string, value []byte) error {
	return withRetry(ctx, func() error {
		return s.rdb.Set(ctx, path, value, 0).Err()
	})
}

func (s *RedisStore) Delete(ctx context.Context, path string) error {
	return withRetry(ctx, func() error {
		return s.rdb.Del(ctx, path).Err()
	})
}

func (s *RedisStore) List(ctx context.Context, prefix string) ([][]byte, error) {
	var keys []string
	err := withRetry(ctx, func() error {
		keys = keys[:0]
		iter := s.rdb.Scan(ctx, 0, prefix+"*", 0).Iterator()
		for iter.Next(ctx) {
			keys = append(keys, iter.Val())
		}
		return iter.Err()
	})
	if err != nil {
		return nil, err
	}
	if len(keys) == 0 {
		return nil, nil
	}

	vals, err := s.rdb.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}

	out := make([][]byte, 0, len(vals))
	for _, v := range vals {
		// keys can disappear between SCAN and MGET
		if str, ok := v.(string); ok {
			out = append(out, []byte(str))
		}
	}
	return out, nil
}

func withRetry(ctx context.Context, op func() error) error {
	var err error
	for attempt := 0; attempt < retryAttempts; attempt++ {
		if attempt > 0 {
			select {
			case <-time.After(time.Duration(attempt) * retryBackoff):
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		err = op()
		if err == nil || errors.Is(err, redis.Nil) || ctx.Err() != nil {
			return err
		}
	}
	return err
}
