package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	models "Playko/models/postgres"
	redis_utils "Playko/services/redis/utils"

	"github.com/redis/go-redis/v9"
)

// TTLs for the cached feed and the per-user presence marker. Presence lives
// longer than the feed: a user counts as online for a while after their last
// authenticated call, while the feed must go stale quickly.
const (
	FeedCacheTTL = 30 * time.Second
	PresenceTTL  = 5 * time.Minute
)

// RedisClient handles Redis operations
type RedisClient struct {
	client *redis.Client
	ctx    context.Context
}

// NewRedisClient creates a new Redis client instance
func NewRedisClient(Addr string, DB int) *RedisClient {
	var client *redis.Client
	if Addr != "localhost:6379" {
		log.Println("Connecting to remote Redis...")
		opt, err := redis.ParseURL(Addr)
		if err != nil {
			panic("Error parsing Redis URL")
		}
		client = redis.NewClient(opt)
	} else {
		client = redis.NewClient(&redis.Options{
			Addr: Addr,
			DB:   DB,
		})
	}
	return &RedisClient{
		client: client,
		ctx:    context.Background(),
	}
}

// SaveFeedCache stores the rendered global feed in Redis
// Key format: "feed:global"
func (rc *RedisClient) SaveFeedCache(posts []models.Post) error {
	data, err := json.Marshal(posts)
	if err != nil {
		return fmt.Errorf("error marshaling feed data: %v", err)
	}
	return rc.client.Set(rc.ctx, redis_utils.FormatFeedKey(), data, FeedCacheTTL).Err()
}

// GetFeedCache retrieves the cached global feed from Redis.
// Returns (nil, nil) on a cache miss so callers fall through to the store.
func (rc *RedisClient) GetFeedCache() ([]models.Post, error) {
	data, err := rc.client.Get(rc.ctx, redis_utils.FormatFeedKey()).Bytes()
	if err != nil {
		if err == redis.Nil {
			// Key does not exist
			return nil, nil
		}
		return nil, fmt.Errorf("error getting feed cache: %v", err)
	}

	var posts []models.Post
	if err := json.Unmarshal(data, &posts); err != nil {
		return nil, fmt.Errorf("error unmarshaling feed cache: %v", err)
	}
	return posts, nil
}

// InvalidateFeed drops the cached feed. Called after every post write so the
// next read rebuilds the cache from the store.
func (rc *RedisClient) InvalidateFeed() error {
	if err := rc.client.Del(rc.ctx, redis_utils.FormatFeedKey()).Err(); err != nil {
		return fmt.Errorf("error invalidating feed cache: %v", err)
	}
	return nil
}

// MarkUserOnline refreshes the presence marker for a user
// Key format: "presence:{userID}:online"
func (rc *RedisClient) MarkUserOnline(userID string) error {
	key := redis_utils.FormatPresenceKey(userID)
	return rc.client.Set(rc.ctx, key, "1", PresenceTTL).Err()
}

// IsUserOnline reports whether the presence marker for a user still exists
func (rc *RedisClient) IsUserOnline(userID string) (bool, error) {
	key := redis_utils.FormatPresenceKey(userID)
	count, err := rc.client.Exists(rc.ctx, key).Result()
	if err != nil {
		return false, fmt.Errorf("error checking presence: %v", err)
	}
	return count > 0, nil
}

// CleanupKeys removes the specified keys from Redis
func (rc *RedisClient) CleanupKeys(keys []string) error {
	for _, key := range keys {
		if err := rc.client.Del(rc.ctx, key).Err(); err != nil {
			return fmt.Errorf("failed to cleanup Redis key %s: %v", key, err)
		}
	}
	return nil
}
