/*
 * @Description:
 * @Author: 安知鱼
 * @Date: 2025-08-21 11:10:29
 * @LastEditTime: 2025-09-20 11:45:52
 * @LastEditors: 安知鱼
 */
package repository

import (
	"context"

	"github.com/anzhiyu-c/user-tags/pkg/domain/model"
)

// TaggedItemRepository 定义了被打标签对象的数据仓库接口。
type TaggedItemRepository interface {
	// FindByObject 按 (content_type, object_id) 查找，不存在时返回 constant.ErrNotFound
	FindByObject(ctx context.Context, contentType, objectID string) (*model.TaggedItem, error)
	// FindOrCreate 按 (content_type, object_id) 查找，不存在时创建
	FindOrCreate(ctx context.Context, contentType, objectID string) (*model.TaggedItem, error)
	// UpdateTags 原子地增删对象与标签的关联
	UpdateTags(ctx context.Context, itemID uint, addIDs, removeIDs []uint) error
	Delete(ctx context.Context, id uint) error
	// DeleteOrphans 删除不再挂任何标签的对象记录，返回删除数量
	DeleteOrphans(ctx context.Context) (int, error)
	// RemoveTagFromAll 从所有对象上摘除指定标签
	RemoveTagFromAll(ctx context.Context, tagID uint) error
}
