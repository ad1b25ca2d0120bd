/*
 * @Description:
 * @Author: 安知鱼
 * @Date: 2025-08-21 10:02:18
 * @LastEditTime: 2025-09-10 16:44:02
 * @LastEditors: 安知鱼
 */
package schema

import (
	"time"

	"github.com/anzhiyu-c/user-tags/ent/schema/mixin"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// TagGroup holds the schema definition for the TagGroup entity.
type TagGroup struct {
	ent.Schema
}

// Annotations of the TagGroup.
func (TagGroup) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.WithComments(true),
		schema.Comment("标签分组表"),
	}
}

// Mixin of the TagGroup.
func (TagGroup) Mixin() []ent.Mixin {
	return []ent.Mixin{
		mixin.SoftDeleteMixin{},
	}
}

// Fields of the TagGroup.
func (TagGroup) Fields() []ent.Field {
	return []ent.Field{
		field.Uint("id"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
		field.String("name").
			MaxLen(100).
			NotEmpty().
			Comment("分组名称，即标签字段名，如 skills"),
	}
}

// Edges of the TagGroup.
func (TagGroup) Edges() []ent.Edge {
	return []ent.Edge{
		// 分组属于一个用户；没有 owner 的分组为全局分组，对所有用户可见
		edge.From("owner", User.Type).
			Ref("tag_groups").
			Unique(),

		// 一个分组下可以有多个标签
		edge.To("tags", UserTag.Type).
			StorageKey(edge.Column("tag_group_id")),
	}
}

// Indexes of the TagGroup.
func (TagGroup) Indexes() []ent.Index {
	return []ent.Index{
		// 同一个用户下分组名称唯一
		index.Fields("name").
			Edges("owner").
			Unique(),
	}
}
