// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// SettingsColumns holds the columns for the "settings" table.
	SettingsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
		{Name: "config_key", Type: field.TypeString, Unique: true, Size: 100, Comment: "配置键"},
		{Name: "value", Type: field.TypeString, Size: 2147483647, Comment: "配置值"},
		{Name: "comment", Type: field.TypeString, Nullable: true, Size: 255, Comment: "配置注释"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// SettingsTable holds the schema information for the "settings" table.
	SettingsTable = &schema.Table{
		Name:       "settings",
		Comment:    "系统设置表",
		Columns:    SettingsColumns,
		PrimaryKey: []*schema.Column{SettingsColumns[0]},
	}
	// TagGroupsColumns holds the columns for the "tag_groups" table.
	TagGroupsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUint, Increment: true},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "name", Type: field.TypeString, Size: 100, Comment: "分组名称，即标签字段名，如 skills"},
		{Name: "owner_id", Type: field.TypeUint, Nullable: true},
	}
	// TagGroupsTable holds the schema information for the "tag_groups" table.
	TagGroupsTable = &schema.Table{
		Name:       "tag_groups",
		Comment:    "标签分组表",
		Columns:    TagGroupsColumns,
		PrimaryKey: []*schema.Column{TagGroupsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "tag_groups_users_tag_groups",
				Columns:    []*schema.Column{TagGroupsColumns[5]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "taggroup_name_owner_id",
				Unique:  true,
				Columns: []*schema.Column{TagGroupsColumns[4], TagGroupsColumns[5]},
			},
		},
	}
	// TaggedItemsColumns holds the columns for the "tagged_items" table.
	TaggedItemsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUint, Increment: true},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "content_type", Type: field.TypeString, Size: 100, Comment: "对象类型标识，如 article、photo"},
		{Name: "object_id", Type: field.TypeString, Size: 100, Comment: "对象在宿主系统中的ID"},
	}
	// TaggedItemsTable holds the schema information for the "tagged_items" table.
	TaggedItemsTable = &schema.Table{
		Name:       "tagged_items",
		Comment:    "被打标签的对象表",
		Columns:    TaggedItemsColumns,
		PrimaryKey: []*schema.Column{TaggedItemsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "taggeditem_content_type_object_id",
				Unique:  true,
				Columns: []*schema.Column{TaggedItemsColumns[4], TaggedItemsColumns[5]},
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUint, Increment: true},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "username", Type: field.TypeString, Unique: true, Size: 50, Comment: "用户账号"},
		{Name: "password_hash", Type: field.TypeString, Size: 255},
		{Name: "nickname", Type: field.TypeString, Nullable: true, Size: 50, Comment: "用户昵称"},
		{Name: "email", Type: field.TypeString, Unique: true, Nullable: true, Size: 100, Comment: "用户邮箱"},
		{Name: "last_login_at", Type: field.TypeTime, Nullable: true},
		{Name: "status", Type: field.TypeInt, Comment: "用户状态 1:正常 2:未激活 3:已封禁", Default: 1},
		{Name: "user_group_id", Type: field.TypeUint},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Comment:    "用户表",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "users_user_groups_users",
				Columns:    []*schema.Column{UsersColumns[10]},
				RefColumns: []*schema.Column{UserGroupsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
	}
	// UserGroupsColumns holds the columns for the "user_groups" table.
	UserGroupsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUint, Increment: true},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "name", Type: field.TypeString, Size: 50, Comment: "用户组名称/角色名称"},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 255, Comment: "用户组描述/角色描述"},
		{Name: "permissions", Type: field.TypeString, Nullable: true, Size: 2147483647, Comment: "权限集, Base64编码的字节"},
	}
	// UserGroupsTable holds the schema information for the "user_groups" table.
	UserGroupsTable = &schema.Table{
		Name:       "user_groups",
		Comment:    "用户组表",
		Columns:    UserGroupsColumns,
		PrimaryKey: []*schema.Column{UserGroupsColumns[0]},
	}
	// UserTagsColumns holds the columns for the "user_tags" table.
	UserTagsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUint, Increment: true},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "text", Type: field.TypeString, Size: 100, Comment: "标签文本"},
		{Name: "count", Type: field.TypeInt, Comment: "引用该标签的对象数量", Default: 0},
		{Name: "tag_group_id", Type: field.TypeUint},
	}
	// UserTagsTable holds the schema information for the "user_tags" table.
	UserTagsTable = &schema.Table{
		Name:       "user_tags",
		Comment:    "用户标签表",
		Columns:    UserTagsColumns,
		PrimaryKey: []*schema.Column{UserTagsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "user_tags_tag_groups_tags",
				Columns:    []*schema.Column{UserTagsColumns[6]},
				RefColumns: []*schema.Column{TagGroupsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "usertag_text_tag_group_id",
				Unique:  true,
				Columns: []*schema.Column{UserTagsColumns[4], UserTagsColumns[6]},
			},
		},
	}
	// TaggedItemTagsColumns holds the columns for the "tagged_item_tags" table.
	TaggedItemTagsColumns = []*schema.Column{
		{Name: "tagged_item_id", Type: field.TypeUint},
		{Name: "user_tag_id", Type: field.TypeUint},
	}
	// TaggedItemTagsTable holds the schema information for the "tagged_item_tags" table.
	TaggedItemTagsTable = &schema.Table{
		Name:       "tagged_item_tags",
		Columns:    TaggedItemTagsColumns,
		PrimaryKey: []*schema.Column{TaggedItemTagsColumns[0], TaggedItemTagsColumns[1]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "tagged_item_tags_tagged_item_id",
				Columns:    []*schema.Column{TaggedItemTagsColumns[0]},
				RefColumns: []*schema.Column{TaggedItemsColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "tagged_item_tags_user_tag_id",
				Columns:    []*schema.Column{TaggedItemTagsColumns[1]},
				RefColumns: []*schema.Column{UserTagsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		SettingsTable,
		TagGroupsTable,
		TaggedItemsTable,
		UsersTable,
		UserGroupsTable,
		UserTagsTable,
		TaggedItemTagsTable,
	}
)

func init() {
	TagGroupsTable.ForeignKeys[0].RefTable = UsersTable
	UsersTable.ForeignKeys[0].RefTable = UserGroupsTable
	UserTagsTable.ForeignKeys[0].RefTable = TagGroupsTable
	TaggedItemTagsTable.ForeignKeys[0].RefTable = TaggedItemsTable
	TaggedItemTagsTable.ForeignKeys[1].RefTable = UserTagsTable
}
