// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"salonora/config"

	"github.com/go-redis/redis/v8"
)

var (
	// CacheClient is the generic cache client (dashboard stats, report caches).
	CacheClient *redis.Client
	// AuthCacheClient is the dedicated client for authorization caching.
	AuthCacheClient *redis.Client
	// DraftCacheClient holds in-progress booking drafts.
	DraftCacheClient *redis.Client
)

func newRedisClient(db int) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       db,
	})
}

func mustPing(client *redis.Client, name string) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := client.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (%s): %v", name, err)
	}
}

// InitRedis initializes all Redis clients used by the application.
func InitRedis() {
	CacheClient = newRedisClient(config.AppConfig.RedisCacheDB)
	mustPing(CacheClient, "Cache")
	AuthCacheClient = newRedisClient(config.AppConfig.RedisAuthDB)
	mustPing(AuthCacheClient, "Auth Cache")
	DraftCacheClient = newRedisClient(config.AppConfig.RedisDraftDB)
	mustPing(DraftCacheClient, "Draft Cache")
}

// GetCacheClient returns the generic cache client.
func GetCacheClient() *redis.Client {
	if CacheClient == nil {
		CacheClient = newRedisClient(config.AppConfig.RedisCacheDB)
		mustPing(CacheClient, "Cache")
	}
	return CacheClient
}

// GetAuthCacheClient returns the Redis client for authorization caching.
func GetAuthCacheClient() *redis.Client {
	if AuthCacheClient == nil {
		AuthCacheClient = newRedisClient(config.AppConfig.RedisAuthDB)
		mustPing(AuthCacheClient, "Auth Cache")
	}
	return AuthCacheClient
}

// GetDraftCacheClient returns the Redis client holding booking drafts.
func GetDraftCacheClient() *redis.Client {
	if DraftCacheClient == nil {
		DraftCacheClient = newRedisClient(config.AppConfig.RedisDraftDB)
		mustPing(DraftCacheClient, "Draft Cache")
	}
	return DraftCacheClient
}
