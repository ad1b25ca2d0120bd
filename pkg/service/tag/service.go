/*
 * @Description: 标签与标签分组的管理服务
 * @Author: 安知鱼
 * @Date: 2025-08-22 14:35:08
 * @LastEditTime: 2025-09-28 19:40:26
 * @LastEditors: 安知鱼
 */
package tag

import (
	"context"
	"fmt"

	"github.com/anzhiyu-c/user-tags/internal/pkg/event"
	"github.com/anzhiyu-c/user-tags/pkg/constant"
	"github.com/anzhiyu-c/user-tags/pkg/domain/model"
	"github.com/anzhiyu-c/user-tags/pkg/domain/repository"
	"github.com/anzhiyu-c/user-tags/pkg/idgen"
)

// Service 定义了标签管理服务的接口。
// ownerDBID 均为当前登录用户的内部数据库ID。
type Service interface {
	// ListTags 列出用户可见的标签，options.Field 为空表示全部字段
	ListTags(ctx context.Context, ownerDBID uint, options *model.ListUserTagsOptions) ([]*model.UserTagResponse, error)
	// RenameTag 重命名用户自己分组下的标签
	RenameTag(ctx context.Context, ownerDBID uint, publicID string, req *model.UpdateUserTagRequest) (*model.UserTagResponse, error)
	// DeleteTag 删除用户自己分组下的标签，并从所有对象上摘除
	DeleteTag(ctx context.Context, ownerDBID uint, publicID string) error

	// ListGroups 列出用户可见的标签分组（自己的 + 全局的）
	ListGroups(ctx context.Context, ownerDBID uint) ([]*model.TagGroupResponse, error)
	// DeleteGroup 删除用户自己的分组及其全部标签
	DeleteGroup(ctx context.Context, ownerDBID uint, publicID string) error

	// CreateGlobalGroup 创建全局分组，仅管理员可用
	CreateGlobalGroup(ctx context.Context, req *model.CreateGlobalTagGroupRequest) (*model.TagGroupResponse, error)
	// ListAllGroups 分页列出所有分组，仅管理员可用
	ListAllGroups(ctx context.Context, page *repository.PageQuery) (*repository.PageResult[model.TagGroup], error)
	// DeleteGlobalGroup 删除全局分组及其全部标签，仅管理员可用
	DeleteGlobalGroup(ctx context.Context, publicID string) error
}

type service struct {
	groupRepo repository.TagGroupRepository
	tagRepo   repository.UserTagRepository
	txManager repository.TransactionManager
	eventBus  *event.EventBus
}

// NewService 是标签管理服务的构造函数
func NewService(
	groupRepo repository.TagGroupRepository,
	tagRepo repository.UserTagRepository,
	txManager repository.TransactionManager,
	eventBus *event.EventBus,
) Service {
	return &service{
		groupRepo: groupRepo,
		tagRepo:   tagRepo,
		txManager: txManager,
		eventBus:  eventBus,
	}
}

func (s *service) ListTags(ctx context.Context, ownerDBID uint, options *model.ListUserTagsOptions) ([]*model.UserTagResponse, error) {
	var (
		groupIDs []uint
		err      error
	)
	if options.Field != "" {
		groupIDs, err = s.groupRepo.VisibleIDsByName(ctx, ownerDBID, options.Field)
	} else {
		groupIDs, err = s.groupRepo.VisibleIDs(ctx, ownerDBID)
	}
	if err != nil {
		return nil, fmt.Errorf("查询可见分组失败: %w", err)
	}

	tags, err := s.tagRepo.List(ctx, groupIDs, options)
	if err != nil {
		return nil, err
	}
	return toTagResponses(tags), nil
}

func (s *service) RenameTag(ctx context.Context, ownerDBID uint, publicID string, req *model.UpdateUserTagRequest) (*model.UserTagResponse, error) {
	text := NormalizeTag(req.Text)
	if text == "" {
		return nil, constant.ErrBadRequest
	}
	if len(text) > MaxTagLength {
		return nil, constant.ErrTagTooLong
	}

	tag, err := s.tagRepo.GetByID(ctx, publicID)
	if err != nil {
		return nil, err
	}
	if err := s.ensureTagOwnership(ctx, ownerDBID, tag); err != nil {
		return nil, err
	}

	renamed, err := s.tagRepo.Rename(ctx, tag.DBID, text)
	if err != nil {
		return nil, err
	}

	s.eventBus.Publish(event.TagRenamed, event.TagsChangedEvent{
		OwnerDBID: ownerDBID,
		Field:     tag.GroupName,
	})
	return toTagResponse(renamed), nil
}

func (s *service) DeleteTag(ctx context.Context, ownerDBID uint, publicID string) error {
	tag, err := s.tagRepo.GetByID(ctx, publicID)
	if err != nil {
		return err
	}
	if err := s.ensureTagOwnership(ctx, ownerDBID, tag); err != nil {
		return err
	}

	err = s.txManager.Do(ctx, func(repos repository.Repositories) error {
		if err := repos.TaggedItem.RemoveTagFromAll(ctx, tag.DBID); err != nil {
			return fmt.Errorf("从对象上摘除标签失败: %w", err)
		}
		if err := repos.UserTag.Delete(ctx, tag.DBID); err != nil {
			return fmt.Errorf("删除标签失败: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.eventBus.Publish(event.TagDeleted, event.TagsChangedEvent{
		OwnerDBID: ownerDBID,
		Field:     tag.GroupName,
	})
	return nil
}

func (s *service) ListGroups(ctx context.Context, ownerDBID uint) ([]*model.TagGroupResponse, error) {
	groups, err := s.groupRepo.ListVisible(ctx, ownerDBID)
	if err != nil {
		return nil, err
	}
	responses := make([]*model.TagGroupResponse, len(groups))
	for i, g := range groups {
		responses[i] = toGroupResponse(g)
	}
	return responses, nil
}

func (s *service) DeleteGroup(ctx context.Context, ownerDBID uint, publicID string) error {
	group, err := s.groupRepo.GetByID(ctx, publicID)
	if err != nil {
		return err
	}
	ownerPublicID, err := idgen.GeneratePublicID(ownerDBID, idgen.EntityTypeUser)
	if err != nil {
		return err
	}
	if group.IsGlobal || group.OwnerID != ownerPublicID {
		return constant.ErrNotGroupOwner
	}

	if err := s.deleteGroupCascade(ctx, group); err != nil {
		return err
	}

	s.eventBus.Publish(event.TagGroupDeleted, event.TagsChangedEvent{
		OwnerDBID: ownerDBID,
		Field:     group.Name,
	})
	return nil
}

func (s *service) CreateGlobalGroup(ctx context.Context, req *model.CreateGlobalTagGroupRequest) (*model.TagGroupResponse, error) {
	name := NormalizeTag(req.Name)
	if name == "" {
		return nil, constant.ErrBadRequest
	}
	if len(name) > MaxTagLength {
		return nil, constant.ErrTagTooLong
	}
	group, err := s.groupRepo.CreateGlobal(ctx, name)
	if err != nil {
		return nil, err
	}
	return toGroupResponse(group), nil
}

func (s *service) ListAllGroups(ctx context.Context, page *repository.PageQuery) (*repository.PageResult[model.TagGroup], error) {
	return s.groupRepo.ListAll(ctx, page)
}

func (s *service) DeleteGlobalGroup(ctx context.Context, publicID string) error {
	group, err := s.groupRepo.GetByID(ctx, publicID)
	if err != nil {
		return err
	}
	if !group.IsGlobal {
		return constant.ErrForbidden
	}

	if err := s.deleteGroupCascade(ctx, group); err != nil {
		return err
	}

	// OwnerDBID 为 0，监听方会清掉所有用户的补全缓存
	s.eventBus.Publish(event.TagGroupDeleted, event.TagsChangedEvent{
		Field: group.Name,
	})
	return nil
}

// deleteGroupCascade 在一个事务内删除分组、分组下的标签及其对象关联
func (s *service) deleteGroupCascade(ctx context.Context, group *model.TagGroup) error {
	return s.txManager.Do(ctx, func(repos repository.Repositories) error {
		if err := repos.UserTag.DeleteByGroup(ctx, group.DBID); err != nil {
			return fmt.Errorf("删除分组下的标签失败: %w", err)
		}
		if err := repos.TagGroup.Delete(ctx, group.DBID); err != nil {
			return fmt.Errorf("删除分组失败: %w", err)
		}
		if _, err := repos.TaggedItem.DeleteOrphans(ctx); err != nil {
			return fmt.Errorf("清理无标签对象失败: %w", err)
		}
		return nil
	})
}

// ensureTagOwnership 确认标签属于当前用户自己的分组。
// 全局分组下的标签不允许普通用户改动。
func (s *service) ensureTagOwnership(ctx context.Context, ownerDBID uint, tag *model.UserTag) error {
	group, err := s.groupRepo.GetByID(ctx, tag.GroupID)
	if err != nil {
		return err
	}
	ownerPublicID, err := idgen.GeneratePublicID(ownerDBID, idgen.EntityTypeUser)
	if err != nil {
		return err
	}
	if group.IsGlobal || group.OwnerID != ownerPublicID {
		return constant.ErrNotGroupOwner
	}
	return nil
}

func toTagResponse(t *model.UserTag) *model.UserTagResponse {
	return &model.UserTagResponse{
		ID:        t.ID,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
		Text:      t.Text,
		Count:     t.Count,
		GroupID:   t.GroupID,
		GroupName: t.GroupName,
	}
}

func toTagResponses(tags []*model.UserTag) []*model.UserTagResponse {
	responses := make([]*model.UserTagResponse, len(tags))
	for i, t := range tags {
		responses[i] = toTagResponse(t)
	}
	return responses
}

func toGroupResponse(g *model.TagGroup) *model.TagGroupResponse {
	return &model.TagGroupResponse{
		ID:        g.ID,
		CreatedAt: g.CreatedAt,
		Name:      g.Name,
		OwnerID:   g.OwnerID,
		IsGlobal:  g.IsGlobal,
	}
}
