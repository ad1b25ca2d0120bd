/*
 * @Description: 监听标签写事件，清理补全缓存。
 * @Author: 安知鱼
 * @Date: 2025-08-23 11:05:00
 * @LastEditTime: 2025-09-29 10:12:36
 * @LastEditors: 安知鱼
 */
package listener

import (
	"context"
	"log"

	"github.com/anzhiyu-c/user-tags/internal/pkg/event"
	"github.com/anzhiyu-c/user-tags/pkg/service/suggest"
)

// SuggestCacheListener 订阅所有标签写事件，在标签集合变化后
// 让对应用户的补全缓存失效，保证建议结果不落后于真实数据太久。
type SuggestCacheListener struct {
	suggestSvc suggest.Service
}

// NewSuggestCacheListener 是 SuggestCacheListener 的构造函数。
// 它订阅全部标签写事件，并成为补全缓存失效的唯一入口。
func NewSuggestCacheListener(eventBus *event.EventBus, suggestSvc suggest.Service) *SuggestCacheListener {
	listener := &SuggestCacheListener{suggestSvc: suggestSvc}

	for _, topic := range []event.Topic{
		event.TagsApplied,
		event.TagRenamed,
		event.TagDeleted,
		event.TagGroupDeleted,
	} {
		eventBus.Subscribe(topic, listener.handleTagsChanged)
	}
	return listener
}

// handleTagsChanged 是事件处理器，按事件中的用户清理缓存。
func (l *SuggestCacheListener) handleTagsChanged(payload interface{}) {
	evt, ok := payload.(event.TagsChangedEvent)
	if !ok {
		log.Printf("[SuggestCacheListener] 错误：收到的事件负载类型不正确")
		return
	}

	l.suggestSvc.InvalidateCache(context.Background(), evt.OwnerDBID)
}
