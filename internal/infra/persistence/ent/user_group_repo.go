/*
 * @Description:
 * @Author: 安知鱼
 * @Date: 2025-08-21 15:10:42
 * @LastEditTime: 2025-09-20 14:14:21
 * @LastEditors: 安知鱼
 */
package ent

import (
	"context"

	"github.com/anzhiyu-c/user-tags/ent"
	"github.com/anzhiyu-c/user-tags/ent/usergroup"
	"github.com/anzhiyu-c/user-tags/pkg/constant"
	"github.com/anzhiyu-c/user-tags/pkg/domain/model"
	"github.com/anzhiyu-c/user-tags/pkg/domain/repository"
	"github.com/anzhiyu-c/user-tags/pkg/idgen"
)

type userGroupRepo struct {
	db *ent.Client
}

// NewUserGroupRepo 是 UserGroupRepository 的构造函数。
func NewUserGroupRepo(db *ent.Client) repository.UserGroupRepository {
	return &userGroupRepo{db: db}
}

func (r *userGroupRepo) toModel(g *ent.UserGroup) *model.UserGroup {
	if g == nil {
		return nil
	}
	publicID, _ := idgen.GeneratePublicID(g.ID, idgen.EntityTypeUserGroup)
	return &model.UserGroup{
		ID:          publicID,
		DBID:        g.ID,
		Name:        g.Name,
		Description: g.Description,
		Permissions: g.Permissions,
	}
}

func (r *userGroupRepo) FindByID(ctx context.Context, id uint) (*model.UserGroup, error) {
	entity, err := r.db.UserGroup.Query().
		Where(usergroup.ID(id), usergroup.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, constant.ErrNotFound
		}
		return nil, err
	}
	return r.toModel(entity), nil
}

func (r *userGroupRepo) FindByName(ctx context.Context, name string) (*model.UserGroup, error) {
	entity, err := r.db.UserGroup.Query().
		Where(usergroup.Name(name), usergroup.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, constant.ErrNotFound
		}
		return nil, err
	}
	return r.toModel(entity), nil
}

func (r *userGroupRepo) Create(ctx context.Context, name, description, permissions string) (*model.UserGroup, error) {
	entity, err := r.db.UserGroup.Create().
		SetName(name).
		SetDescription(description).
		SetPermissions(permissions).
		Save(ctx)
	if err != nil {
		return nil, err
	}
	return r.toModel(entity), nil
}

func (r *userGroupRepo) Count(ctx context.Context) (int, error) {
	return r.db.UserGroup.Query().
		Where(usergroup.DeletedAtIsNil()).
		Count(ctx)
}
