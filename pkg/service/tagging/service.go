/*
 * @Description: 对象打标服务，负责标签的施加、查询与清除
 * @Author: 安知鱼
 * @Date: 2025-08-23 09:30:55
 * @LastEditTime: 2025-09-28 20:31:44
 * @LastEditors: 安知鱼
 */
package tagging

import (
	"context"
	"fmt"

	"github.com/anzhiyu-c/user-tags/internal/pkg/event"
	"github.com/anzhiyu-c/user-tags/pkg/constant"
	"github.com/anzhiyu-c/user-tags/pkg/domain/model"
	"github.com/anzhiyu-c/user-tags/pkg/domain/repository"
	"github.com/anzhiyu-c/user-tags/pkg/service/tag"
)

// Service 定义了对象打标服务的接口。
// 打标语义是整体替换：请求中的标签列表成为该对象在该字段下的全部标签。
type Service interface {
	// Apply 把逗号分隔的标签文本施加到对象的指定字段上，替换旧集合
	Apply(ctx context.Context, ownerDBID uint, contentType, objectID string, req *model.ApplyTagsRequest) (*model.ItemTagsResponse, error)
	// GetItemTags 查询对象上当前用户可见的标签，按字段分组
	GetItemTags(ctx context.Context, ownerDBID uint, contentType, objectID string) (*model.ItemTagsResponse, error)
	// Clear 清除对象上当前用户自己的标签；field 为空时清除全部字段
	Clear(ctx context.Context, ownerDBID uint, contentType, objectID, field string) error
}

type service struct {
	groupRepo repository.TagGroupRepository
	tagRepo   repository.UserTagRepository
	itemRepo  repository.TaggedItemRepository
	txManager repository.TransactionManager
	eventBus  *event.EventBus
}

// NewService 是对象打标服务的构造函数
func NewService(
	groupRepo repository.TagGroupRepository,
	tagRepo repository.UserTagRepository,
	itemRepo repository.TaggedItemRepository,
	txManager repository.TransactionManager,
	eventBus *event.EventBus,
) Service {
	return &service{
		groupRepo: groupRepo,
		tagRepo:   tagRepo,
		itemRepo:  itemRepo,
		txManager: txManager,
		eventBus:  eventBus,
	}
}

func (s *service) Apply(ctx context.Context, ownerDBID uint, contentType, objectID string, req *model.ApplyTagsRequest) (*model.ItemTagsResponse, error) {
	field := tag.NormalizeTag(req.Field)
	if field == "" {
		return nil, constant.ErrBadRequest
	}
	if len(field) > tag.MaxTagLength {
		return nil, constant.ErrTagTooLong
	}
	texts, err := tag.SplitTags(req.Tags)
	if err != nil {
		return nil, err
	}

	err = s.txManager.Do(ctx, func(repos repository.Repositories) error {
		group, err := repos.TagGroup.FindOrCreateOwned(ctx, ownerDBID, field)
		if err != nil {
			return fmt.Errorf("查找或创建标签分组失败: %w", err)
		}

		item, err := repos.TaggedItem.FindOrCreate(ctx, contentType, objectID)
		if err != nil {
			return fmt.Errorf("查找或创建打标对象失败: %w", err)
		}

		oldIDs, err := repos.UserTag.IDsByItemAndGroup(ctx, item.DBID, group.DBID)
		if err != nil {
			return fmt.Errorf("查询对象现有标签失败: %w", err)
		}

		newIDs := make([]uint, 0, len(texts))
		for _, text := range texts {
			t, err := repos.UserTag.FindOrCreate(ctx, group.DBID, text)
			if err != nil {
				return fmt.Errorf("查找或创建标签 %q 失败: %w", text, err)
			}
			newIDs = append(newIDs, t.DBID)
		}

		diff := computeDiff(oldIDs, newIDs)
		if diff.IsEmpty() {
			return nil
		}

		if err := repos.TaggedItem.UpdateTags(ctx, item.DBID, diff.Added, diff.Removed); err != nil {
			return fmt.Errorf("更新对象标签关联失败: %w", err)
		}
		if err := repos.UserTag.UpdateCount(ctx, diff.Added, diff.Removed); err != nil {
			return err
		}
		// 引用数归零的标签立即回收，与补全结果保持一致
		if err := repos.UserTag.DeleteIfUnused(ctx, diff.Removed); err != nil {
			return fmt.Errorf("回收未使用标签失败: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.eventBus.Publish(event.TagsApplied, event.TagsChangedEvent{
		OwnerDBID: ownerDBID,
		Field:     field,
	})

	return s.GetItemTags(ctx, ownerDBID, contentType, objectID)
}

func (s *service) GetItemTags(ctx context.Context, ownerDBID uint, contentType, objectID string) (*model.ItemTagsResponse, error) {
	response := &model.ItemTagsResponse{
		ContentType: contentType,
		ObjectID:    objectID,
		Fields:      make(map[string][]model.UserTagResponse),
	}

	item, err := s.itemRepo.FindByObject(ctx, contentType, objectID)
	if err != nil {
		if err == constant.ErrNotFound {
			// 对象还没被打过标签，返回空结果而非 404
			return response, nil
		}
		return nil, err
	}

	groupIDs, err := s.groupRepo.VisibleIDs(ctx, ownerDBID)
	if err != nil {
		return nil, fmt.Errorf("查询可见分组失败: %w", err)
	}

	tags, err := s.tagRepo.ListByItem(ctx, item.DBID, groupIDs)
	if err != nil {
		return nil, err
	}

	for _, t := range tags {
		response.Fields[t.GroupName] = append(response.Fields[t.GroupName], model.UserTagResponse{
			ID:        t.ID,
			CreatedAt: t.CreatedAt,
			UpdatedAt: t.UpdatedAt,
			Text:      t.Text,
			Count:     t.Count,
			GroupID:   t.GroupID,
			GroupName: t.GroupName,
		})
	}
	return response, nil
}

func (s *service) Clear(ctx context.Context, ownerDBID uint, contentType, objectID, field string) error {
	err := s.txManager.Do(ctx, func(repos repository.Repositories) error {
		item, err := repos.TaggedItem.FindByObject(ctx, contentType, objectID)
		if err != nil {
			if err == constant.ErrNotFound {
				return nil
			}
			return err
		}

		// 只清自己分组下的标签，全局分组的引用保持不动
		var groupIDs []uint
		if field != "" {
			group, err := repos.TagGroup.FindOwnedByName(ctx, ownerDBID, field)
			if err != nil {
				if err == constant.ErrNotFound {
					return nil
				}
				return err
			}
			groupIDs = []uint{group.DBID}
		} else {
			visible, err := repos.TagGroup.ListVisible(ctx, ownerDBID)
			if err != nil {
				return err
			}
			for _, g := range visible {
				if !g.IsGlobal {
					groupIDs = append(groupIDs, g.DBID)
				}
			}
		}

		var removed []uint
		for _, groupID := range groupIDs {
			ids, err := repos.UserTag.IDsByItemAndGroup(ctx, item.DBID, groupID)
			if err != nil {
				return err
			}
			removed = append(removed, ids...)
		}
		if len(removed) == 0 {
			return nil
		}

		if err := repos.TaggedItem.UpdateTags(ctx, item.DBID, nil, removed); err != nil {
			return fmt.Errorf("摘除对象标签失败: %w", err)
		}
		if err := repos.UserTag.UpdateCount(ctx, nil, removed); err != nil {
			return err
		}
		return repos.UserTag.DeleteIfUnused(ctx, removed)
	})
	if err != nil {
		return err
	}

	s.eventBus.Publish(event.TagsApplied, event.TagsChangedEvent{
		OwnerDBID: ownerDBID,
		Field:     field,
	})
	return nil
}
