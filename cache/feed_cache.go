package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"soundcheck/db"
	"soundcheck/model"

	"github.com/go-redis/redis/v8"
)

// 事件聚合结果（好友出席、排序）按查看者缓存，写路径（关注、出席变更）
// 负责失效。缓存只是性能优化，未命中时直接重算。

// feedTTL 缓存过期时间
const feedTTL = 10 * time.Minute

// GetFeedKey 根据查看者ID生成事件流的Redis键
func GetFeedKey(viewerID string) string {
	return fmt.Sprintf("feed:%s", viewerID)
}

// GetFeed 读取查看者的事件流缓存，未命中返回 (nil, false)
func GetFeed(ctx context.Context, viewerID string) ([]model.EventWithFriends, bool) {
	if db.RedisClient == nil {
		return nil, false
	}

	data, err := db.RedisClient.Get(ctx, GetFeedKey(viewerID)).Bytes()
	if err != nil {
		return nil, false // redis.Nil or transient failure, recompute
	}

	var feed []model.EventWithFriends
	if err := json.Unmarshal(data, &feed); err != nil {
		return nil, false
	}
	return feed, true
}

// SetFeed 写入查看者的事件流缓存
func SetFeed(ctx context.Context, viewerID string, feed []model.EventWithFriends) error {
	if db.RedisClient == nil {
		return fmt.Errorf("Redis client not initialized")
	}

	data, err := json.Marshal(feed)
	if err != nil {
		return fmt.Errorf("failed to marshal feed: %w", err)
	}

	err = db.RedisClient.Set(ctx, GetFeedKey(viewerID), data, feedTTL).Err()
	if err != nil {
		return fmt.Errorf("failed to set feed cache: %w", err)
	}
	return nil
}

// InvalidateFeed 删除查看者的事件流缓存
func InvalidateFeed(ctx context.Context, viewerID string) error {
	if db.RedisClient == nil {
		return nil
	}

	err := db.RedisClient.Del(ctx, GetFeedKey(viewerID)).Err()
	if err != nil && err != redis.Nil {
		return fmt.Errorf("failed to invalidate feed cache: %w", err)
	}
	return nil
}
