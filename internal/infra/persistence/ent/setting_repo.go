/*
 * @Description:
 * @Author: 安知鱼
 * @Date: 2025-08-21 15:16:05
 * @LastEditTime: 2025-08-21 15:19:54
 * @LastEditors: 安知鱼
 */
package ent

import (
	"context"

	"github.com/anzhiyu-c/user-tags/ent"
	"github.com/anzhiyu-c/user-tags/ent/setting"
	"github.com/anzhiyu-c/user-tags/pkg/constant"
	"github.com/anzhiyu-c/user-tags/pkg/domain/model"
	"github.com/anzhiyu-c/user-tags/pkg/domain/repository"
)

type settingRepo struct {
	db *ent.Client
}

// NewSettingRepo 是 SettingRepository 的构造函数。
func NewSettingRepo(db *ent.Client) repository.SettingRepository {
	return &settingRepo{db: db}
}

func (r *settingRepo) FindByKey(ctx context.Context, key string) (*model.Setting, error) {
	entity, err := r.db.Setting.Query().
		Where(setting.ConfigKey(key), setting.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, constant.ErrNotFound
		}
		return nil, err
	}
	return &model.Setting{
		ConfigKey: entity.ConfigKey,
		Value:     entity.Value,
		Comment:   entity.Comment,
	}, nil
}

func (r *settingRepo) Save(ctx context.Context, s *model.Setting) error {
	existing, err := r.db.Setting.Query().
		Where(setting.ConfigKey(s.ConfigKey)).
		Only(ctx)
	if err != nil {
		if !ent.IsNotFound(err) {
			return err
		}
		return r.db.Setting.Create().
			SetConfigKey(s.ConfigKey).
			SetValue(s.Value).
			SetComment(s.Comment).
			Exec(ctx)
	}
	return r.db.Setting.UpdateOne(existing).
		SetValue(s.Value).
		SetComment(s.Comment).
		Exec(ctx)
}
