/*
 * @Description:
 * @Author: 安知鱼
 * @Date: 2025-08-21 10:52:08
 * @LastEditTime: 2025-09-20 11:33:45
 * @LastEditors: 安知鱼
 */
package repository

import (
	"context"

	"github.com/anzhiyu-c/user-tags/pkg/domain/model"
)

// TagGroupRepository 定义了标签分组的数据仓库接口。
// ownerID 均为用户的内部数据库ID；可见的分组 = 用户自己的分组 + 全局分组。
type TagGroupRepository interface {
	GetByID(ctx context.Context, publicID string) (*model.TagGroup, error)
	// FindOrCreateOwned 按名称查找用户自己的分组，不存在时创建
	FindOrCreateOwned(ctx context.Context, ownerID uint, name string) (*model.TagGroup, error)
	// FindOwnedByName 按名称查找用户自己的分组，不存在时返回 constant.ErrNotFound
	FindOwnedByName(ctx context.Context, ownerID uint, name string) (*model.TagGroup, error)
	// CreateGlobal 创建全局（无归属）分组
	CreateGlobal(ctx context.Context, name string) (*model.TagGroup, error)
	// ListVisible 列出用户可见的全部分组
	ListVisible(ctx context.Context, ownerID uint) ([]*model.TagGroup, error)
	// VisibleIDsByName 返回指定名称下用户可见分组的内部ID（自己的 + 全局的）
	VisibleIDsByName(ctx context.Context, ownerID uint, name string) ([]uint, error)
	// VisibleIDs 返回用户可见的全部分组内部ID
	VisibleIDs(ctx context.Context, ownerID uint) ([]uint, error)
	// ListAll 分页列出所有分组（管理端）
	ListAll(ctx context.Context, page *PageQuery) (*PageResult[model.TagGroup], error)
	Delete(ctx context.Context, id uint) error
}
