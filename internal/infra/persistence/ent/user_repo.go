/*
 * @Description:
 * @Author: 安知鱼
 * @Date: 2025-08-21 15:02:18
 * @LastEditTime: 2025-09-20 14:10:37
 * @LastEditors: 安知鱼
 */
package ent

import (
	"context"
	"time"

	"github.com/anzhiyu-c/user-tags/ent"
	"github.com/anzhiyu-c/user-tags/ent/user"
	"github.com/anzhiyu-c/user-tags/pkg/constant"
	"github.com/anzhiyu-c/user-tags/pkg/domain/model"
	"github.com/anzhiyu-c/user-tags/pkg/domain/repository"
	"github.com/anzhiyu-c/user-tags/pkg/idgen"
)

type userRepo struct {
	db *ent.Client
}

// NewUserRepo 是 UserRepository 的构造函数。
func NewUserRepo(db *ent.Client) repository.UserRepository {
	return &userRepo{db: db}
}

// toModel 将 ent 实体转换为领域模型。
func (r *userRepo) toModel(u *ent.User) *model.User {
	if u == nil {
		return nil
	}
	publicID, _ := idgen.GeneratePublicID(u.ID, idgen.EntityTypeUser)
	m := &model.User{
		ID:           publicID,
		DBID:         u.ID,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
		Username:     u.Username,
		PasswordHash: u.PasswordHash,
		Nickname:     u.Nickname,
		Email:        u.Email,
		LastLoginAt:  u.LastLoginAt,
		Status:       u.Status,
	}
	if g := u.Edges.UserGroup; g != nil {
		groupPublicID, _ := idgen.GeneratePublicID(g.ID, idgen.EntityTypeUserGroup)
		m.UserGroup = &model.UserGroup{
			ID:          groupPublicID,
			DBID:        g.ID,
			Name:        g.Name,
			Description: g.Description,
			Permissions: g.Permissions,
		}
	}
	return m
}

func (r *userRepo) Create(ctx context.Context, req *model.RegisterRequest, passwordHash string, groupID uint) (*model.User, error) {
	creator := r.db.User.Create().
		SetUsername(req.Username).
		SetPasswordHash(passwordHash).
		SetNickname(req.Nickname).
		SetStatus(model.UserStatusActive).
		SetUserGroupID(groupID)
	if req.Email != "" {
		creator.SetEmail(req.Email)
	}

	newUser, err := creator.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, constant.ErrConflict
		}
		return nil, err
	}
	return r.FindByID(ctx, newUser.ID)
}

func (r *userRepo) FindByID(ctx context.Context, id uint) (*model.User, error) {
	entity, err := r.db.User.Query().
		Where(user.ID(id), user.DeletedAtIsNil()).
		WithUserGroup().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, constant.ErrNotFound
		}
		return nil, err
	}
	return r.toModel(entity), nil
}

func (r *userRepo) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	entity, err := r.db.User.Query().
		Where(user.Username(username), user.DeletedAtIsNil()).
		WithUserGroup().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, constant.ErrNotFound
		}
		return nil, err
	}
	return r.toModel(entity), nil
}

func (r *userRepo) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	count, err := r.db.User.Query().
		Where(user.Username(username)).
		Count(ctx)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *userRepo) UpdateLastLogin(ctx context.Context, id uint) error {
	return r.db.User.UpdateOneID(id).
		SetLastLoginAt(time.Now()).
		Exec(ctx)
}

func (r *userRepo) Count(ctx context.Context) (int, error) {
	return r.db.User.Query().
		Where(user.DeletedAtIsNil()).
		Count(ctx)
}
