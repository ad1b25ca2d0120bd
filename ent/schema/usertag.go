/*
 * @Description:
 * @Author: 安知鱼
 * @Date: 2025-08-21 10:15:56
 * @LastEditTime: 2025-09-10 16:45:33
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

// UserTag holds the schema definition for the UserTag entity.
type UserTag struct {
	ent.Schema
}

// Annotations of the UserTag.
func (UserTag) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.WithComments(true),
		schema.Comment("用户标签表"),
	}
}

// Mixin of the UserTag.
func (UserTag) Mixin() []ent.Mixin {
	return []ent.Mixin{
		mixin.SoftDeleteMixin{},
	}
}

// Fields of the UserTag.
func (UserTag) Fields() []ent.Field {
	return []ent.Field{
		field.Uint("id"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
		field.String("text").
			MaxLen(100).
			NotEmpty().
			Comment("标签文本"),
		field.Int("count").
			Comment("引用该标签的对象数量").
			Default(0).
			NonNegative(),
	}
}

// Edges of the UserTag.
func (UserTag) Edges() []ent.Edge {
	return []ent.Edge{
		// 标签属于一个分组
		edge.From("group", TagGroup.Type).
			Ref("tags").
			Unique().
			Required(),

		// 被打标签的对象，多对多反向边
		edge.From("items", TaggedItem.Type).
			Ref("tags"),
	}
}

// Indexes of the UserTag.
func (UserTag) Indexes() []ent.Index {
	return []ent.Index{
		// 同一个分组内标签文本唯一
		index.Fields("text").
			Edges("group").
			Unique(),
	}
}
