/*
 * @Description:
 * @Author: 安知鱼
 * @Date: 2025-08-21 10:31:40
 * @LastEditTime: 2025-09-10 16:47:09
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

// TaggedItem holds the schema definition for the TaggedItem entity.
type TaggedItem struct {
	ent.Schema
}

// Annotations of the TaggedItem.
func (TaggedItem) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.WithComments(true),
		schema.Comment("被打标签的对象表"),
	}
}

// Mixin of the TaggedItem.
func (TaggedItem) Mixin() []ent.Mixin {
	return []ent.Mixin{
		mixin.SoftDeleteMixin{},
	}
}

// Fields of the TaggedItem.
func (TaggedItem) Fields() []ent.Field {
	return []ent.Field{
		field.Uint("id"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
		field.String("content_type").
			MaxLen(100).
			NotEmpty().
			Comment("对象类型标识，如 article、photo"),
		field.String("object_id").
			MaxLen(100).
			NotEmpty().
			Comment("对象在宿主系统中的ID"),
	}
}

// Edges of the TaggedItem.
func (TaggedItem) Edges() []ent.Edge {
	return []ent.Edge{
		// 一个对象可以挂多个标签，多对多
		edge.To("tags", UserTag.Type),
	}
}

// Indexes of the TaggedItem.
func (TaggedItem) Indexes() []ent.Index {
	return []ent.Index{
		// 每个对象只有一条记录
		index.Fields("content_type", "object_id").
			Unique(),
	}
}
