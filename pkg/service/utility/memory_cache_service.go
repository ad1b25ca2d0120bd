/*
 * @Description: 基于内存的缓存服务实现，当 Redis 不可用时作为降级方案
 * @Author: 安知鱼
 * @Date: 2025-08-22 09:41:12
 * @LastEditTime: 2025-09-28 17:02:33
 * @LastEditors: 安知鱼
 */
package utility

import (
	"context"
	"fmt"
	"path/filepath"
	"strconv"
	"sync"
	"time"
)

// cacheItem 表示一个缓存项
type cacheItem struct {
	value      string
	expiration time.Time
	hasExpiry  bool
}

// isExpired 检查缓存项是否已过期
func (item *cacheItem) isExpired() bool {
	if !item.hasExpiry {
		return false
	}
	return time.Now().After(item.expiration)
}

// memoryCacheService 是基于内存的 CacheService 实现
type memoryCacheService struct {
	store   sync.Map
	mu      sync.RWMutex
	cleanup *time.Ticker
	done    chan struct{}
}

// NewMemoryCacheService 创建一个新的内存缓存服务
func NewMemoryCacheService() CacheService {
	service := &memoryCacheService{
		cleanup: time.NewTicker(time.Minute), // 每分钟清理一次过期项
		done:    make(chan struct{}),
	}

	// 启动后台清理协程
	go service.cleanupExpired()

	return service
}

// cleanupExpired 定期清理过期的缓存项
func (m *memoryCacheService) cleanupExpired() {
	for {
		select {
		case <-m.cleanup.C:
			m.store.Range(func(key, value interface{}) bool {
				if item, ok := value.(*cacheItem); ok && item.isExpired() {
					m.store.Delete(key)
				}
				return true
			})
		case <-m.done:
			return
		}
	}
}

// Stop 停止后台清理协程
func (m *memoryCacheService) Stop() {
	m.cleanup.Stop()
	close(m.done)
}

// Set 实现了设置缓存的方法
func (m *memoryCacheService) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	item := &cacheItem{
		value: fmt.Sprintf("%v", value),
	}

	if expiration > 0 {
		item.expiration = time.Now().Add(expiration)
		item.hasExpiry = true
	}

	m.store.Store(key, item)
	return nil
}

// Get 实现了获取缓存的方法
func (m *memoryCacheService) Get(ctx context.Context, key string) (string, error) {
	value, ok := m.store.Load(key)
	if !ok {
		return "", nil // Key 不存在，与 Redis 实现保持一致
	}

	item, ok := value.(*cacheItem)
	if !ok {
		m.store.Delete(key)
		return "", nil
	}

	if item.isExpired() {
		m.store.Delete(key)
		return "", nil
	}

	return item.value, nil
}

// Delete 实现了删除缓存的方法
func (m *memoryCacheService) Delete(ctx context.Context, key ...string) error {
	for _, k := range key {
		m.store.Delete(k)
	}
	return nil
}

// Increment 实现了原子递增
func (m *memoryCacheService) Increment(ctx context.Context, key string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var current int64
	if value, ok := m.store.Load(key); ok {
		if item, ok := value.(*cacheItem); ok && !item.isExpired() {
			parsed, err := strconv.ParseInt(item.value, 10, 64)
			if err != nil {
				return 0, fmt.Errorf("缓存值 %q 不是整数: %w", item.value, err)
			}
			current = parsed
		}
	}

	current++
	m.store.Store(key, &cacheItem{value: strconv.FormatInt(current, 10)})
	return current, nil
}

// Expire 实现了设置键的过期时间
func (m *memoryCacheService) Expire(ctx context.Context, key string, expiration time.Duration) error {
	value, ok := m.store.Load(key)
	if !ok {
		return nil
	}

	item, ok := value.(*cacheItem)
	if !ok || item.isExpired() {
		m.store.Delete(key)
		return nil
	}

	item.expiration = time.Now().Add(expiration)
	item.hasExpiry = true
	m.store.Store(key, item)
	return nil
}

// Scan 遍历所有匹配模式的键，模式语法与 Redis 的 glob 风格保持一致
func (m *memoryCacheService) Scan(ctx context.Context, pattern string) ([]string, error) {
	var keys []string
	m.store.Range(func(key, value interface{}) bool {
		k, ok := key.(string)
		if !ok {
			return true
		}
		item, ok := value.(*cacheItem)
		if !ok || item.isExpired() {
			return true
		}
		if matched, _ := filepath.Match(pattern, k); matched {
			keys = append(keys, k)
		}
		return true
	})
	return keys, nil
}
