/*
 * @Description:
 * @Author: 安知鱼
 * @Date: 2025-08-21 15:25:33
 * @LastEditTime: 2025-09-22 10:08:15
 * @LastEditors: 安知鱼
 */
package ent

import (
	"context"

	"github.com/anzhiyu-c/user-tags/ent"
	"github.com/anzhiyu-c/user-tags/ent/predicate"
	"github.com/anzhiyu-c/user-tags/ent/taggroup"
	"github.com/anzhiyu-c/user-tags/ent/user"
	"github.com/anzhiyu-c/user-tags/pkg/constant"
	"github.com/anzhiyu-c/user-tags/pkg/domain/model"
	"github.com/anzhiyu-c/user-tags/pkg/domain/repository"
	"github.com/anzhiyu-c/user-tags/pkg/idgen"
)

type tagGroupRepo struct {
	db *ent.Client
}

// NewTagGroupRepo 是 TagGroupRepository 的构造函数。
func NewTagGroupRepo(db *ent.Client) repository.TagGroupRepository {
	return &tagGroupRepo{db: db}
}

// toModel 将 ent 实体转换为领域模型。
func (r *tagGroupRepo) toModel(g *ent.TagGroup) *model.TagGroup {
	if g == nil {
		return nil
	}
	publicID, _ := idgen.GeneratePublicID(g.ID, idgen.EntityTypeTagGroup)
	m := &model.TagGroup{
		ID:        publicID,
		DBID:      g.ID,
		CreatedAt: g.CreatedAt,
		UpdatedAt: g.UpdatedAt,
		Name:      g.Name,
		IsGlobal:  true,
	}
	if owner := g.Edges.Owner; owner != nil {
		ownerPublicID, _ := idgen.GeneratePublicID(owner.ID, idgen.EntityTypeUser)
		m.OwnerID = ownerPublicID
		m.IsGlobal = false
	}
	return m
}

// visiblePredicate 构造 "用户自己的分组或全局分组" 的查询条件。
func visiblePredicate(ownerID uint) []predicate.TagGroup {
	return []predicate.TagGroup{
		taggroup.DeletedAtIsNil(),
		taggroup.Or(
			taggroup.HasOwnerWith(user.ID(ownerID)),
			taggroup.Not(taggroup.HasOwner()),
		),
	}
}

func (r *tagGroupRepo) GetByID(ctx context.Context, publicID string) (*model.TagGroup, error) {
	dbID, entityType, err := idgen.DecodePublicID(publicID)
	if err != nil || entityType != idgen.EntityTypeTagGroup {
		return nil, constant.ErrInvalidPublicID
	}
	entity, err := r.db.TagGroup.Query().
		Where(taggroup.ID(dbID), taggroup.DeletedAtIsNil()).
		WithOwner().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, constant.ErrNotFound
		}
		return nil, err
	}
	return r.toModel(entity), nil
}

func (r *tagGroupRepo) FindOrCreateOwned(ctx context.Context, ownerID uint, name string) (*model.TagGroup, error) {
	group, err := r.FindOwnedByName(ctx, ownerID, name)
	if err == nil {
		return group, nil
	}
	if err != constant.ErrNotFound {
		return nil, err
	}

	entity, err := r.db.TagGroup.Create().
		SetName(name).
		SetOwnerID(ownerID).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			// 并发创建时回查
			return r.FindOwnedByName(ctx, ownerID, name)
		}
		return nil, err
	}
	return r.GetByInternalID(ctx, entity.ID)
}

func (r *tagGroupRepo) FindOwnedByName(ctx context.Context, ownerID uint, name string) (*model.TagGroup, error) {
	entity, err := r.db.TagGroup.Query().
		Where(
			taggroup.Name(name),
			taggroup.DeletedAtIsNil(),
			taggroup.HasOwnerWith(user.ID(ownerID)),
		).
		WithOwner().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, constant.ErrNotFound
		}
		return nil, err
	}
	return r.toModel(entity), nil
}

// GetByInternalID 按内部ID查找分组，事务内部使用。
func (r *tagGroupRepo) GetByInternalID(ctx context.Context, id uint) (*model.TagGroup, error) {
	entity, err := r.db.TagGroup.Query().
		Where(taggroup.ID(id), taggroup.DeletedAtIsNil()).
		WithOwner().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, constant.ErrNotFound
		}
		return nil, err
	}
	return r.toModel(entity), nil
}

func (r *tagGroupRepo) CreateGlobal(ctx context.Context, name string) (*model.TagGroup, error) {
	exists, err := r.db.TagGroup.Query().
		Where(
			taggroup.Name(name),
			taggroup.DeletedAtIsNil(),
			taggroup.Not(taggroup.HasOwner()),
		).
		Exist(ctx)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, constant.ErrGroupNameConflict
	}

	entity, err := r.db.TagGroup.Create().
		SetName(name).
		Save(ctx)
	if err != nil {
		return nil, err
	}
	return r.toModel(entity), nil
}

func (r *tagGroupRepo) ListVisible(ctx context.Context, ownerID uint) ([]*model.TagGroup, error) {
	entities, err := r.db.TagGroup.Query().
		Where(visiblePredicate(ownerID)...).
		WithOwner().
		Order(ent.Asc(taggroup.FieldName)).
		All(ctx)
	if err != nil {
		return nil, err
	}

	models := make([]*model.TagGroup, len(entities))
	for i, entity := range entities {
		models[i] = r.toModel(entity)
	}
	return models, nil
}

func (r *tagGroupRepo) VisibleIDsByName(ctx context.Context, ownerID uint, name string) ([]uint, error) {
	predicates := append(visiblePredicate(ownerID), taggroup.Name(name))
	return r.db.TagGroup.Query().
		Where(predicates...).
		IDs(ctx)
}

func (r *tagGroupRepo) VisibleIDs(ctx context.Context, ownerID uint) ([]uint, error) {
	return r.db.TagGroup.Query().
		Where(visiblePredicate(ownerID)...).
		IDs(ctx)
}

func (r *tagGroupRepo) ListAll(ctx context.Context, page *repository.PageQuery) (*repository.PageResult[model.TagGroup], error) {
	query := r.db.TagGroup.Query().
		Where(taggroup.DeletedAtIsNil())

	total, err := query.Clone().Count(ctx)
	if err != nil {
		return nil, err
	}

	if page.Page < 1 {
		page.Page = 1
	}
	if page.PageSize < 1 {
		page.PageSize = 20
	}

	entities, err := query.
		WithOwner().
		Order(ent.Asc(taggroup.FieldName)).
		Offset((page.Page - 1) * page.PageSize).
		Limit(page.PageSize).
		All(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]*model.TagGroup, len(entities))
	for i, entity := range entities {
		items[i] = r.toModel(entity)
	}
	return &repository.PageResult[model.TagGroup]{
		Items: items,
		Total: int64(total),
	}, nil
}

func (r *tagGroupRepo) Delete(ctx context.Context, id uint) error {
	return r.db.TagGroup.DeleteOneID(id).Exec(ctx)
}
