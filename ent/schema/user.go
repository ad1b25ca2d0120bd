/*
 * @Description:
 * @Author: 安知鱼
 * @Date: 2025-08-20 14:12:31
 * @LastEditTime: 2025-09-03 18:40:12
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
)

// User holds the schema definition for the User entity.
type User struct {
	ent.Schema
}

// Annotations of the User.
func (User) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.WithComments(true),
		schema.Comment("用户表"),
	}
}

// Mixin of the User.
func (User) Mixin() []ent.Mixin {
	return []ent.Mixin{
		mixin.SoftDeleteMixin{},
	}
}

// Fields of the User.
func (User) Fields() []ent.Field {
	return []ent.Field{
		field.Uint("id"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
		field.String("username").
			MaxLen(50).
			Unique().
			NotEmpty().
			Comment("用户账号"),
		field.String("password_hash").
			MaxLen(255).
			NotEmpty().
			Sensitive(),
		field.String("nickname").
			MaxLen(50).
			Optional().
			Comment("用户昵称"),
		field.String("email").
			MaxLen(100).
			Unique().
			Optional().
			Comment("用户邮箱"),
		field.Time("last_login_at").
			Optional().
			Nillable(),
		field.Int("status").
			Default(1).
			Comment("用户状态 1:正常 2:未激活 3:已封禁"),
	}
}

// Edges of the User.
func (User) Edges() []ent.Edge {
	return []ent.Edge{
		// 一个用户属于一个用户组
		edge.From("user_group", UserGroup.Type).
			Ref("users").
			Unique().
			Required(),

		// 一个用户可以拥有多个标签分组
		edge.To("tag_groups", TagGroup.Type).
			StorageKey(edge.Column("owner_id")),
	}
}
