package server

import (
	"context"
	"testing"

	"github.com/anzhiyu-c/user-tags/ent"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"
)

// 本包空导入 ent/runtime，由它注册各 schema 的默认值与钩子。
// 该导入一旦丢失，这里的 Create 会以 "uninitialized ... (forgotten import ent/runtime?)" 失败。
func TestSchemaDefaultsRegistered(t *testing.T) {
	client, err := ent.Open("sqlite3", "file:schema_defaults_test?mode=memory&cache=shared&_fk=1")
	if err != nil {
		t.Fatalf("打开数据库失败: %v", err)
	}
	defer client.Close()

	ctx := context.Background()
	if err := client.Schema.Create(ctx); err != nil {
		t.Fatalf("建表失败: %v", err)
	}

	group, err := client.TagGroup.Create().SetName("skills").Save(ctx)
	if err != nil {
		t.Fatalf("创建分组失败: %v", err)
	}
	if group.CreatedAt.IsZero() {
		t.Error("created_at 默认值未生效")
	}
}
