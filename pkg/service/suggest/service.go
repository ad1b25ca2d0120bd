/*
 * @Description: 标签自动补全服务，带缓存
 * @Author: 安知鱼
 * @Date: 2025-08-23 10:15:27
 * @LastEditTime: 2025-09-29 09:20:33
 * @LastEditors: 安知鱼
 */
package suggest

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/anzhiyu-c/user-tags/pkg/domain/model"
	"github.com/anzhiyu-c/user-tags/pkg/domain/repository"
	"github.com/anzhiyu-c/user-tags/pkg/service/tag"
	"github.com/anzhiyu-c/user-tags/pkg/service/utility"
)

// 补全条数的硬上限，防止恶意的超大 limit 参数
const maxLimit = 50

// Options 是补全服务的运行参数
type Options struct {
	CacheTTL     time.Duration // 缓存有效期，<=0 表示不缓存
	DefaultLimit int           // 未指定 limit 时的默认条数
}

// Service 定义了标签自动补全服务的接口
type Service interface {
	// Suggest 按前缀匹配用户可见的标签，按引用数降序返回
	Suggest(ctx context.Context, ownerDBID uint, opts *model.SuggestOptions) (*model.SuggestResponse, error)
	// InvalidateCache 清除某个用户的补全缓存；ownerDBID 为 0 时清除所有用户的
	InvalidateCache(ctx context.Context, ownerDBID uint)
}

type service struct {
	groupRepo repository.TagGroupRepository
	tagRepo   repository.UserTagRepository
	cacheSvc  utility.CacheService
	opts      Options
}

// NewService 是补全服务的构造函数
func NewService(
	groupRepo repository.TagGroupRepository,
	tagRepo repository.UserTagRepository,
	cacheSvc utility.CacheService,
	opts Options,
) Service {
	if opts.DefaultLimit <= 0 {
		opts.DefaultLimit = 10
	}
	return &service{
		groupRepo: groupRepo,
		tagRepo:   tagRepo,
		cacheSvc:  cacheSvc,
		opts:      opts,
	}
}

func (s *service) Suggest(ctx context.Context, ownerDBID uint, opts *model.SuggestOptions) (*model.SuggestResponse, error) {
	field := tag.NormalizeTag(opts.Field)
	prefix := tag.NormalizeTag(opts.Prefix)

	limit := opts.Limit
	if limit <= 0 {
		limit = s.opts.DefaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	response := &model.SuggestResponse{
		Field:       field,
		Prefix:      prefix,
		Suggestions: []string{},
	}
	if field == "" || prefix == "" {
		return response, nil
	}

	cacheKey := s.cacheKey(ownerDBID, field, prefix, limit)
	if s.opts.CacheTTL > 0 {
		if cached, err := s.cacheSvc.Get(ctx, cacheKey); err == nil && cached != "" {
			var suggestions []string
			if err := json.Unmarshal([]byte(cached), &suggestions); err == nil {
				response.Suggestions = suggestions
				return response, nil
			}
		}
	}

	groupIDs, err := s.groupRepo.VisibleIDsByName(ctx, ownerDBID, field)
	if err != nil {
		return nil, fmt.Errorf("查询可见分组失败: %w", err)
	}

	tags, err := s.tagRepo.SearchByPrefix(ctx, groupIDs, prefix, limit)
	if err != nil {
		return nil, err
	}
	for _, t := range tags {
		response.Suggestions = append(response.Suggestions, t.Text)
	}

	if s.opts.CacheTTL > 0 {
		if data, err := json.Marshal(response.Suggestions); err == nil {
			if err := s.cacheSvc.Set(ctx, cacheKey, string(data), s.opts.CacheTTL); err != nil {
				log.Printf("警告: 写入补全缓存失败: %v", err)
			}
		}
	}
	return response, nil
}

// InvalidateCache 按用户清除补全缓存。标签写入后由事件监听器调用。
func (s *service) InvalidateCache(ctx context.Context, ownerDBID uint) {
	pattern := fmt.Sprintf("suggest:%d:*", ownerDBID)
	if ownerDBID == 0 {
		// 全局分组变更影响所有用户
		pattern = "suggest:*"
	}

	keys, err := s.cacheSvc.Scan(ctx, pattern)
	if err != nil {
		log.Printf("警告: 扫描补全缓存失败: %v", err)
		return
	}
	if len(keys) == 0 {
		return
	}
	if err := s.cacheSvc.Delete(ctx, keys...); err != nil {
		log.Printf("警告: 清除补全缓存失败: %v", err)
	}
}

// cacheKey 构造缓存键。前缀统一转小写，让大小写不同的输入命中同一条缓存。
func (s *service) cacheKey(ownerDBID uint, field, prefix string, limit int) string {
	return fmt.Sprintf("suggest:%d:%s:%s:%d", ownerDBID, field, strings.ToLower(prefix), limit)
}
