package kvstore

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "broilink:"

func NewRedis(client *redis.Client) Provider {
	return &redisImpl{
		client: client,
	}
}

type redisImpl struct {
	client *redis.Client
}

func (i redisImpl) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if ttl < 0 {
		ttl = 0
	}
	return i.client.Set(ctx, redisKeyPrefix+key, value, ttl).Err()
}

func (i redisImpl) Get(ctx context.Context, key string) ([]byte, bool, error) {
	value, err := i.client.Get(ctx, redisKeyPrefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return value, true, nil
}

func (i redisImpl) Delete(ctx context.Context, key string) error {
	return i.client.Del(ctx, redisKeyPrefix+key).Err()
}

func (i redisImpl) Incr(ctx context.Context, key string, ttl time.Duration) (int64, error) {
	fullKey := redisKeyPrefix + key
	count, err := i.client.Incr(ctx, fullKey).Result()
	if err != nil {
		return 0, err
	}
	if count == 1 && ttl > 0 {
		if err = i.client.Expire(ctx, fullKey, ttl).Err(); err != nil {
			return count, err
		}
	}
	return count, nil
}
