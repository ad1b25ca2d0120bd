/*
 * @Description:
 * @Author: 安知鱼
 * @Date: 2025-08-21 16:02:11
 * @LastEditTime: 2025-09-22 10:44:02
 * @LastEditors: 安知鱼
 */
package ent

import (
	"context"

	"github.com/anzhiyu-c/user-tags/ent"
	"github.com/anzhiyu-c/user-tags/ent/taggeditem"
	"github.com/anzhiyu-c/user-tags/ent/usertag"
	"github.com/anzhiyu-c/user-tags/pkg/constant"
	"github.com/anzhiyu-c/user-tags/pkg/domain/model"
	"github.com/anzhiyu-c/user-tags/pkg/domain/repository"
	"github.com/anzhiyu-c/user-tags/pkg/idgen"
)

type taggedItemRepo struct {
	db *ent.Client
}

// NewTaggedItemRepo 是 TaggedItemRepository 的构造函数。
func NewTaggedItemRepo(db *ent.Client) repository.TaggedItemRepository {
	return &taggedItemRepo{db: db}
}

func (r *taggedItemRepo) toModel(t *ent.TaggedItem) *model.TaggedItem {
	if t == nil {
		return nil
	}
	publicID, _ := idgen.GeneratePublicID(t.ID, idgen.EntityTypeTaggedItem)
	return &model.TaggedItem{
		ID:          publicID,
		DBID:        t.ID,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
		ContentType: t.ContentType,
		ObjectID:    t.ObjectID,
	}
}

func (r *taggedItemRepo) FindByObject(ctx context.Context, contentType, objectID string) (*model.TaggedItem, error) {
	entity, err := r.db.TaggedItem.Query().
		Where(
			taggeditem.ContentType(contentType),
			taggeditem.ObjectID(objectID),
			taggeditem.DeletedAtIsNil(),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, constant.ErrNotFound
		}
		return nil, err
	}
	return r.toModel(entity), nil
}

func (r *taggedItemRepo) FindOrCreate(ctx context.Context, contentType, objectID string) (*model.TaggedItem, error) {
	item, err := r.FindByObject(ctx, contentType, objectID)
	if err == nil {
		return item, nil
	}
	if err != constant.ErrNotFound {
		return nil, err
	}

	entity, err := r.db.TaggedItem.Create().
		SetContentType(contentType).
		SetObjectID(objectID).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			// 并发创建时回查
			return r.FindByObject(ctx, contentType, objectID)
		}
		return nil, err
	}
	return r.toModel(entity), nil
}

func (r *taggedItemRepo) UpdateTags(ctx context.Context, itemID uint, addIDs, removeIDs []uint) error {
	if len(addIDs) == 0 && len(removeIDs) == 0 {
		return nil
	}
	updater := r.db.TaggedItem.UpdateOneID(itemID)
	if len(addIDs) > 0 {
		updater.AddTagIDs(addIDs...)
	}
	if len(removeIDs) > 0 {
		updater.RemoveTagIDs(removeIDs...)
	}
	return updater.Exec(ctx)
}

func (r *taggedItemRepo) Delete(ctx context.Context, id uint) error {
	return r.db.TaggedItem.DeleteOneID(id).Exec(ctx)
}

func (r *taggedItemRepo) DeleteOrphans(ctx context.Context) (int, error) {
	return r.db.TaggedItem.Delete().
		Where(
			taggeditem.DeletedAtIsNil(),
			taggeditem.Not(taggeditem.HasTags()),
		).
		Exec(ctx)
}

func (r *taggedItemRepo) RemoveTagFromAll(ctx context.Context, tagID uint) error {
	items, err := r.db.TaggedItem.Query().
		Where(
			taggeditem.DeletedAtIsNil(),
			taggeditem.HasTagsWith(usertag.ID(tagID)),
		).
		All(ctx)
	if err != nil {
		return err
	}
	for _, item := range items {
		if err := r.db.TaggedItem.UpdateOne(item).RemoveTagIDs(tagID).Exec(ctx); err != nil {
			return err
		}
	}
	return nil
}
