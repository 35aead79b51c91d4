package repository

import (
	"context"
	"time"
)

// QueryCacheは、一覧APIのレスポンスを一時的に保持するキャッシュです。
// インポートはストアを全面的に作り直すため、実行開始時にFlushで無効化します。
type QueryCache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Flush(ctx context.Context) error
}
