/*
 * @Description:
 * @Author: 安知鱼
 * @Date: 2025-07-13 23:40:12
 * @LastEditTime: 2025-07-31 10:01:36
 * @LastEditors: 安知鱼
 */
package mixin

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/mixin"
)

type SoftDeleteMutator interface {
	SetOp(ent.Op)
	SetDeletedAt(time.Time)
}

// SoftDeleteMixin 实现了软删除的 mixin.
type SoftDeleteMixin struct {
	mixin.Schema
}

// Fields 定义了 deleted_at 字段.
func (SoftDeleteMixin) Fields() []ent.Field {
	return []ent.Field{
		field.Time("deleted_at").
			Optional().
			Nillable(),
	}
}

// Hooks 实现了拦截逻辑.
func (SoftDeleteMixin) Hooks() []ent.Hook {
	return []ent.Hook{
		func(next ent.Mutator) ent.Mutator {
			return ent.MutateFunc(func(ctx context.Context, m ent.Mutation) (ent.Value, error) {
				// 只拦截 DELETE 和 DELETE_ONE 操作
				if !m.Op().Is(ent.OpDelete | ent.OpDeleteOne) {
					return next.Mutate(ctx, m)
				}
				mx, ok := m.(SoftDeleteMutator)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				// 把 "删除" 改写为 "更新 deleted_at 字段"
				mx.SetOp(ent.OpUpdate)
				mx.SetDeletedAt(time.Now())
				return next.Mutate(ctx, m)
			})
		},
	}
}
