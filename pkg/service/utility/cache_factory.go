/*
 * @Description: 缓存服务工厂，根据 Redis 可用性选择实现
 * @Author: 安知鱼
 * @Date: 2025-08-22 09:55:30
 * @LastEditTime: 2025-09-28 17:10:41
 * @LastEditors: 安知鱼
 */
package utility

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// CacheServiceType 表示缓存服务的类型
type CacheServiceType string

const (
	// CacheTypeRedis Redis 缓存
	CacheTypeRedis CacheServiceType = "redis"
	// CacheTypeMemory 内存缓存
	CacheTypeMemory CacheServiceType = "memory"
)

// NewCacheServiceWithFallback 创建缓存服务。
// 优先使用 Redis，当 Redis 客户端为空或连接失败时降级为内存缓存。
func NewCacheServiceWithFallback(redisClient *redis.Client) (CacheService, CacheServiceType) {
	if redisClient == nil {
		log.Println("⚠️ 未配置 Redis，使用内存缓存（单机模式）")
		return NewMemoryCacheService(), CacheTypeMemory
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Printf("⚠️ Redis 连接失败，降级为内存缓存: %v", err)
		return NewMemoryCacheService(), CacheTypeMemory
	}

	log.Println("✅ Redis 连接成功，使用 Redis 缓存")
	return NewCacheService(redisClient), CacheTypeRedis
}
