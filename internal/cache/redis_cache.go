package cache

import (
	"context"
	"time"

	"github.com/redis/rueidis"
)

type RedisCache struct {
	client rueidis.Client
}

var _ Cache = (*RedisCache)(nil)

func NewRedisCache(client rueidis.Client) *RedisCache {
	return &RedisCache{client: client}
}

func (r *RedisCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	cmd := r.client.B().Get().Key(key).Build()
	value, err := r.client.Do(ctx, cmd).AsBytes()
	if err != nil {
		if rueidis.IsRedisNil(err) {
			return nil, false, nil
		}
		return nil, false, err
	}

	if len(value) == 0 {
		return nil, false, nil
	}

	return value, true, nil
}

func (r *RedisCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	seconds := int64(ttl / time.Second)
	if seconds < 1 {
		seconds = 1
	}
	cmd := r.client.B().Set().Key(key).Value(rueidis.BinaryString(value)).ExSeconds(seconds).Build()
	return r.client.Do(ctx, cmd).Error()
}

func (r *RedisCache) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	cmd := r.client.B().Del().Key(keys...).Build()
	return r.client.Do(ctx, cmd).Error()
}

func (r *RedisCache) Ping(ctx context.Context) error {
	return r.client.Do(ctx, r.client.B().Ping().Build()).Error()
}
