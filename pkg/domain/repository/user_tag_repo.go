/*
 * @Description:
 * @Author: 安知鱼
 * @Date: 2025-08-21 11:02:44
 * @LastEditTime: 2025-09-20 11:40:18
 * @LastEditors: 安知鱼
 */
package repository

import (
	"context"

	"github.com/anzhiyu-c/user-tags/pkg/domain/model"
)

// UserTagRepository 定义了用户标签的数据仓库接口。
// groupID / itemID 等均为内部数据库ID。
type UserTagRepository interface {
	GetByID(ctx context.Context, publicID string) (*model.UserTag, error)
	// FindOrCreate 在分组内按文本查找标签，不存在时创建
	FindOrCreate(ctx context.Context, groupID uint, text string) (*model.UserTag, error)
	// List 列出若干分组下的标签，支持排序
	List(ctx context.Context, groupIDs []uint, options *model.ListUserTagsOptions) ([]*model.UserTag, error)
	// ListByItem 列出对象上挂的、且属于指定分组的标签
	ListByItem(ctx context.Context, itemID uint, groupIDs []uint) ([]*model.UserTag, error)
	// IDsByItemAndGroup 返回对象上属于指定分组的标签内部ID
	IDsByItemAndGroup(ctx context.Context, itemID uint, groupID uint) ([]uint, error)
	// SearchByPrefix 在若干分组内做大小写不敏感的前缀匹配，
	// 按引用数降序、文本升序返回
	SearchByPrefix(ctx context.Context, groupIDs []uint, prefix string, limit int) ([]*model.UserTag, error)
	// Rename 重命名标签；同分组下文本冲突时返回 constant.ErrTagNameConflict
	Rename(ctx context.Context, id uint, text string) (*model.UserTag, error)
	// ExistsInGroup 检查分组内是否已存在指定文本的标签
	ExistsInGroup(ctx context.Context, groupID uint, text string) (bool, error)
	// UpdateCount 批量增减标签引用数
	UpdateCount(ctx context.Context, incIDs, decIDs []uint) error
	// DeleteIfUnused 删除引用数为 0 的标签
	DeleteIfUnused(ctx context.Context, ids []uint) error
	// DeleteUnusedBefore 删除所有引用数为 0 且早于指定天数未更新的标签，返回删除数量
	DeleteUnusedBefore(ctx context.Context, days int) (int, error)
	Delete(ctx context.Context, id uint) error
	// DeleteByGroup 删除分组下的全部标签
	DeleteByGroup(ctx context.Context, groupID uint) error
}
