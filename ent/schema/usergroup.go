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

// UserGroup holds the schema definition for the UserGroup entity.
type UserGroup struct {
	ent.Schema
}

// Annotations of the UserGroup.
func (UserGroup) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.WithComments(true),
		schema.Comment("用户组表"),
	}
}

// Mixin of the UserGroup.
func (UserGroup) Mixin() []ent.Mixin {
	return []ent.Mixin{
		mixin.SoftDeleteMixin{},
	}
}

// Fields of the UserGroup.
func (UserGroup) Fields() []ent.Field {
	return []ent.Field{
		field.Uint("id"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
		field.String("name").
			MaxLen(50).
			NotEmpty().
			Comment("用户组名称/角色名称"),
		field.String("description").
			MaxLen(255).
			Optional().
			Comment("用户组描述/角色描述"),
		field.Text("permissions").
			Optional().
			Comment("权限集, Base64编码的字节"),
	}
}

// Edges of the UserGroup.
func (UserGroup) Edges() []ent.Edge {
	return []ent.Edge{
		// 定义一对多关系：一个用户组可以有多个用户
		edge.To("users", User.Type).
			// 告诉 Ent 在 users 表中使用名为 user_group_id 的列
			StorageKey(edge.Column("user_group_id")),
	}
}
