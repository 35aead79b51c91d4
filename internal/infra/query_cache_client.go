package infra

import (
	"context"
	"fmt"
	"time"

	"github.com/open-salary/salary-board/internal/domain/repository"
	"github.com/redis/go-redis/v9"
)

const queryCachePrefix = "compensation:"

type queryCacheClient struct {
	redis *redis.Client
}

func NewQueryCacheClient(rds *redis.Client) repository.QueryCache {
	return &queryCacheClient{
		redis: rds,
	}
}

func (c *queryCacheClient) Get(ctx context.Context, key string) ([]byte, bool, error) {
	value, err := c.redis.Get(ctx, queryCachePrefix+key).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get error: %w", err)
	}
	return value, true, nil
}

func (c *queryCacheClient) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := c.redis.Set(ctx, queryCachePrefix+key, value, ttl).Err(); err != nil {
		return fmt.Errorf("redis set error: %w", err)
	}
	return nil
}

// Flushは、キャッシュ済みのレスポンスを全て破棄します。
// インポートがストアを作り直した直後に呼ばれます。
func (c *queryCacheClient) Flush(ctx context.Context) error {
	var cursor uint64
	for {
		var keys []string
		var err error
		keys, cursor, err = c.redis.Scan(ctx, cursor, queryCachePrefix+"*", 100).Result()
		if err != nil {
			return fmt.Errorf("redis scan error: %w", err)
		}

		if len(keys) > 0 {
			if err := c.redis.Del(ctx, keys...).Err(); err != nil {
				return fmt.Errorf("redis del error: %w", err)
			}
		}

		if cursor == 0 {
			break
		}
	}
	return nil
}
