package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// 目錄列表的快取 key
const (
	KeyPlanets = "catalog:planets"
	KeyPeople  = "catalog:people"
)

// GetJSON 讀取並解碼快取，miss 時回傳 false, nil
func GetJSON(ctx context.Context, c Cache, key string, dst any) (bool, error) {
	raw, err := c.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return false, err
	}
	return true, nil
}

// SetJSON 編碼後寫入快取
func SetJSON(ctx context.Context, c Cache, key string, v any, ttl time.Duration) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return c.Set(ctx, key, raw, ttl).Err()
}

// Invalidate 刪除指定 key
func Invalidate(ctx context.Context, c Cache, keys ...string) error {
	return c.Del(ctx, keys...).Err()
}
