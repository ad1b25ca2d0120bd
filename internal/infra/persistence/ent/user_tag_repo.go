/*
 * @Description:
 * @Author: 安知鱼
 * @Date: 2025-08-21 15:40:27
 * @LastEditTime: 2025-09-22 10:31:48
 * @LastEditors: 安知鱼
 */
package ent

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/anzhiyu-c/user-tags/ent"
	"github.com/anzhiyu-c/user-tags/ent/taggeditem"
	"github.com/anzhiyu-c/user-tags/ent/taggroup"
	"github.com/anzhiyu-c/user-tags/ent/usertag"
	"github.com/anzhiyu-c/user-tags/pkg/constant"
	"github.com/anzhiyu-c/user-tags/pkg/domain/model"
	"github.com/anzhiyu-c/user-tags/pkg/domain/repository"
	"github.com/anzhiyu-c/user-tags/pkg/idgen"

	"entgo.io/ent/dialect/sql"
)

// userTagRepo 持有 dbType，用于判断数据库方言
type userTagRepo struct {
	db     *ent.Client
	dbType string
}

// NewUserTagRepo 是 UserTagRepository 的构造函数，接收 dbType 作为参数
func NewUserTagRepo(db *ent.Client, dbType string) repository.UserTagRepository {
	return &userTagRepo{
		db:     db,
		dbType: dbType,
	}
}

// toModel 将 ent 实体转换为领域模型。
func (r *userTagRepo) toModel(t *ent.UserTag) *model.UserTag {
	if t == nil {
		return nil
	}
	publicID, _ := idgen.GeneratePublicID(t.ID, idgen.EntityTypeUserTag)
	m := &model.UserTag{
		ID:        publicID,
		DBID:      t.ID,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
		Text:      t.Text,
		Count:     t.Count,
	}
	if g := t.Edges.Group; g != nil {
		groupPublicID, _ := idgen.GeneratePublicID(g.ID, idgen.EntityTypeTagGroup)
		m.GroupID = groupPublicID
		m.GroupName = g.Name
	}
	return m
}

func (r *userTagRepo) toModels(entities []*ent.UserTag) []*model.UserTag {
	models := make([]*model.UserTag, len(entities))
	for i, entity := range entities {
		models[i] = r.toModel(entity)
	}
	return models
}

func (r *userTagRepo) GetByID(ctx context.Context, publicID string) (*model.UserTag, error) {
	dbID, entityType, err := idgen.DecodePublicID(publicID)
	if err != nil || entityType != idgen.EntityTypeUserTag {
		return nil, constant.ErrInvalidPublicID
	}
	entity, err := r.db.UserTag.Query().
		Where(usertag.ID(dbID), usertag.DeletedAtIsNil()).
		WithGroup().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, constant.ErrNotFound
		}
		return nil, err
	}
	return r.toModel(entity), nil
}

func (r *userTagRepo) FindOrCreate(ctx context.Context, groupID uint, text string) (*model.UserTag, error) {
	entity, err := r.db.UserTag.Query().
		Where(
			usertag.Text(text),
			usertag.DeletedAtIsNil(),
			usertag.HasGroupWith(taggroup.ID(groupID)),
		).
		WithGroup().
		Only(ctx)
	if err == nil {
		return r.toModel(entity), nil
	}
	if !ent.IsNotFound(err) {
		return nil, err
	}

	created, err := r.db.UserTag.Create().
		SetText(text).
		SetGroupID(groupID).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			// 并发创建时回查
			return r.FindOrCreate(ctx, groupID, text)
		}
		return nil, err
	}

	created, err = r.db.UserTag.Query().
		Where(usertag.ID(created.ID)).
		WithGroup().
		Only(ctx)
	if err != nil {
		return nil, err
	}
	return r.toModel(created), nil
}

// List 列出若干分组下的标签，支持排序
func (r *userTagRepo) List(ctx context.Context, groupIDs []uint, options *model.ListUserTagsOptions) ([]*model.UserTag, error) {
	if len(groupIDs) == 0 {
		return []*model.UserTag{}, nil
	}

	query := r.db.UserTag.Query().
		Where(
			usertag.DeletedAtIsNil(),
			usertag.HasGroupWith(taggroup.IDIn(groupIDs...)),
		).
		WithGroup()

	switch options.SortBy {
	case model.SortByText:
		query = query.Order(ent.Asc(usertag.FieldText))
	case model.SortByCount:
		fallthrough
	default:
		query = query.Order(ent.Desc(usertag.FieldCount), ent.Asc(usertag.FieldText))
	}

	entities, err := query.All(ctx)
	if err != nil {
		return nil, err
	}
	return r.toModels(entities), nil
}

func (r *userTagRepo) ListByItem(ctx context.Context, itemID uint, groupIDs []uint) ([]*model.UserTag, error) {
	if len(groupIDs) == 0 {
		return []*model.UserTag{}, nil
	}

	entities, err := r.db.UserTag.Query().
		Where(
			usertag.DeletedAtIsNil(),
			usertag.HasItemsWith(taggeditem.ID(itemID)),
			usertag.HasGroupWith(taggroup.IDIn(groupIDs...)),
		).
		WithGroup().
		Order(ent.Asc(usertag.FieldText)).
		All(ctx)
	if err != nil {
		return nil, err
	}
	return r.toModels(entities), nil
}

func (r *userTagRepo) IDsByItemAndGroup(ctx context.Context, itemID uint, groupID uint) ([]uint, error) {
	return r.db.UserTag.Query().
		Where(
			usertag.DeletedAtIsNil(),
			usertag.HasItemsWith(taggeditem.ID(itemID)),
			usertag.HasGroupWith(taggroup.ID(groupID)),
		).
		IDs(ctx)
}

// SearchByPrefix 在若干分组内做大小写不敏感的前缀匹配。
// MySQL 的 utf8mb4 排序规则本身大小写不敏感，直接用 LIKE；
// PostgreSQL 和 SQLite 需要显式 lower()，以命中迁移时创建的表达式索引。
func (r *userTagRepo) SearchByPrefix(ctx context.Context, groupIDs []uint, prefix string, limit int) ([]*model.UserTag, error) {
	if len(groupIDs) == 0 {
		return []*model.UserTag{}, nil
	}

	pattern := strings.ToLower(escapeLike(prefix)) + "%"

	query := r.db.UserTag.Query().
		Where(
			usertag.DeletedAtIsNil(),
			usertag.HasGroupWith(taggroup.IDIn(groupIDs...)),
		)

	switch r.dbType {
	case "mysql", "mariadb":
		query = query.Where(func(s *sql.Selector) {
			s.Where(sql.P(func(b *sql.Builder) {
				b.Ident(s.C(usertag.FieldText)).WriteString(" LIKE ").Arg(pattern)
			}))
		})
	default:
		query = query.Where(func(s *sql.Selector) {
			s.Where(sql.P(func(b *sql.Builder) {
				b.WriteString("LOWER(").Ident(s.C(usertag.FieldText)).WriteString(") LIKE ").Arg(pattern)
			}))
		})
	}

	entities, err := query.
		WithGroup().
		Order(ent.Desc(usertag.FieldCount), ent.Asc(usertag.FieldText)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, err
	}
	return r.toModels(entities), nil
}

// escapeLike 转义 LIKE 模式中的通配符
func escapeLike(s string) string {
	replacer := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return replacer.Replace(s)
}

func (r *userTagRepo) Rename(ctx context.Context, id uint, text string) (*model.UserTag, error) {
	entity, err := r.db.UserTag.Query().
		Where(usertag.ID(id), usertag.DeletedAtIsNil()).
		WithGroup().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, constant.ErrNotFound
		}
		return nil, err
	}

	group := entity.Edges.Group
	if group == nil {
		return nil, fmt.Errorf("标签 %d 缺少所属分组", id)
	}

	exists, err := r.ExistsInGroup(ctx, group.ID, text)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, constant.ErrTagNameConflict
	}

	updated, err := r.db.UserTag.UpdateOneID(id).
		SetText(text).
		Save(ctx)
	if err != nil {
		return nil, err
	}
	updated.Edges.Group = group
	return r.toModel(updated), nil
}

func (r *userTagRepo) ExistsInGroup(ctx context.Context, groupID uint, text string) (bool, error) {
	return r.db.UserTag.Query().
		Where(
			usertag.Text(text),
			usertag.DeletedAtIsNil(),
			usertag.HasGroupWith(taggroup.ID(groupID)),
		).
		Exist(ctx)
}

func (r *userTagRepo) UpdateCount(ctx context.Context, incIDs, decIDs []uint) error {
	if len(incIDs) > 0 {
		_, err := r.db.UserTag.Update().Where(usertag.IDIn(incIDs...)).AddCount(1).Save(ctx)
		if err != nil {
			return fmt.Errorf("增加标签计数失败: %w", err)
		}
	}
	if len(decIDs) > 0 {
		_, err := r.db.UserTag.Update().
			Where(usertag.IDIn(decIDs...), usertag.CountGT(0)).
			AddCount(-1).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("减少标签计数失败: %w", err)
		}
	}
	return nil
}

func (r *userTagRepo) DeleteIfUnused(ctx context.Context, ids []uint) error {
	if len(ids) == 0 {
		return nil
	}
	_, err := r.db.UserTag.Delete().
		Where(
			usertag.IDIn(ids...),
			usertag.CountLTE(0),
		).
		Exec(ctx)
	return err
}

func (r *userTagRepo) DeleteUnusedBefore(ctx context.Context, days int) (int, error) {
	cutoff := time.Now().AddDate(0, 0, -days)
	return r.db.UserTag.Delete().
		Where(
			usertag.DeletedAtIsNil(),
			usertag.CountLTE(0),
			usertag.UpdatedAtLT(cutoff),
		).
		Exec(ctx)
}

func (r *userTagRepo) Delete(ctx context.Context, id uint) error {
	return r.db.UserTag.DeleteOneID(id).Exec(ctx)
}

func (r *userTagRepo) DeleteByGroup(ctx context.Context, groupID uint) error {
	_, err := r.db.UserTag.Delete().
		Where(usertag.HasGroupWith(taggroup.ID(groupID))).
		Exec(ctx)
	return err
}
