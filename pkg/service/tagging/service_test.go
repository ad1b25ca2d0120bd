package tagging

import (
	"context"
	"fmt"
	"reflect"
	"testing"

	"github.com/anzhiyu-c/user-tags/ent"
	"github.com/anzhiyu-c/user-tags/ent/enttest"
	ent_impl "github.com/anzhiyu-c/user-tags/internal/infra/persistence/ent"
	"github.com/anzhiyu-c/user-tags/internal/pkg/event"
	"github.com/anzhiyu-c/user-tags/pkg/domain/model"
	"github.com/anzhiyu-c/user-tags/pkg/domain/repository"
	"github.com/anzhiyu-c/user-tags/pkg/idgen"
	"github.com/anzhiyu-c/user-tags/pkg/service/suggest"
	"github.com/anzhiyu-c/user-tags/pkg/service/utility"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"
)

// testEnv 搭起一套打在内存 SQLite 上的完整服务栈
type testEnv struct {
	client     *ent.Client
	taggingSvc Service
	suggestSvc suggest.Service
	groupRepo  repository.TagGroupRepository
	tagRepo    repository.UserTagRepository
	user1      uint
	user2      uint
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	if err := idgen.InitSqidsEncoderWithSeed(""); err != nil {
		t.Fatalf("初始化 ID 编码器失败: %v", err)
	}

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1", t.Name())
	client := enttest.Open(t, "sqlite3", dsn)

	ctx := context.Background()
	userGroup := client.UserGroup.Create().SetName("user").SaveX(ctx)
	u1 := client.User.Create().SetUsername("anzhiyu").SetPasswordHash("x").SetUserGroup(userGroup).SaveX(ctx)
	u2 := client.User.Create().SetUsername("xiaoyu").SetPasswordHash("x").SetUserGroup(userGroup).SaveX(ctx)

	groupRepo := ent_impl.NewTagGroupRepo(client)
	tagRepo := ent_impl.NewUserTagRepo(client, "sqlite")
	itemRepo := ent_impl.NewTaggedItemRepo(client)
	txManager := ent_impl.NewEntTransactionManager(client, "sqlite")
	eventBus := event.NewEventBus()
	cacheSvc, _ := utility.NewCacheServiceWithFallback(nil)

	t.Cleanup(func() {
		eventBus.Shutdown()
		client.Close()
	})

	return &testEnv{
		client:     client,
		taggingSvc: NewService(groupRepo, tagRepo, itemRepo, txManager, eventBus),
		suggestSvc: suggest.NewService(groupRepo, tagRepo, cacheSvc, suggest.Options{}),
		groupRepo:  groupRepo,
		tagRepo:    tagRepo,
		user1:      u1.ID,
		user2:      u2.ID,
	}
}

// fieldCounts 把某个字段下的标签整理成 文本->计数 的映射，方便断言
func fieldCounts(resp *model.ItemTagsResponse, field string) map[string]int {
	counts := make(map[string]int)
	for _, tg := range resp.Fields[field] {
		counts[tg.Text] = tg.Count
	}
	return counts
}

func TestApplyReplaceCountsAndPrune(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	apply := func(objectID, tags string) *model.ItemTagsResponse {
		t.Helper()
		resp, err := env.taggingSvc.Apply(ctx, env.user1, "article", objectID, &model.ApplyTagsRequest{
			Field: "skills",
			Tags:  tags,
		})
		if err != nil {
			t.Fatalf("打标失败: %v", err)
		}
		return resp
	}

	t.Run("初次打标计数为1", func(t *testing.T) {
		resp := apply("1", "go, redis")
		want := map[string]int{"go": 1, "redis": 1}
		if got := fieldCounts(resp, "skills"); !reflect.DeepEqual(got, want) {
			t.Errorf("标签计数 = %v, 期望 %v", got, want)
		}
	})

	t.Run("第二个对象复用标签时计数累加", func(t *testing.T) {
		resp := apply("2", "go, redis")
		want := map[string]int{"go": 2, "redis": 2}
		if got := fieldCounts(resp, "skills"); !reflect.DeepEqual(got, want) {
			t.Errorf("标签计数 = %v, 期望 %v", got, want)
		}
	})

	t.Run("整体替换摘掉的标签计数回落", func(t *testing.T) {
		resp := apply("1", "go")
		want := map[string]int{"go": 2}
		if got := fieldCounts(resp, "skills"); !reflect.DeepEqual(got, want) {
			t.Errorf("标签计数 = %v, 期望 %v", got, want)
		}
	})

	t.Run("零引用标签被立即回收", func(t *testing.T) {
		apply("2", "go")

		group, err := env.groupRepo.FindOwnedByName(ctx, env.user1, "skills")
		if err != nil {
			t.Fatalf("查找分组失败: %v", err)
		}
		left, err := env.tagRepo.List(ctx, []uint{group.DBID}, &model.ListUserTagsOptions{})
		if err != nil {
			t.Fatalf("列出标签失败: %v", err)
		}
		if len(left) != 1 || left[0].Text != "go" || left[0].Count != 2 {
			t.Errorf("回收后分组内剩余标签异常: %+v", left)
		}
	})

	t.Run("重新打上被回收的标签从1开始计数", func(t *testing.T) {
		resp := apply("1", "go, redis")
		want := map[string]int{"go": 2, "redis": 1}
		if got := fieldCounts(resp, "skills"); !reflect.DeepEqual(got, want) {
			t.Errorf("标签计数 = %v, 期望 %v", got, want)
		}
	})
}

func TestPerUserIsolation(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.taggingSvc.Apply(ctx, env.user1, "article", "1", &model.ApplyTagsRequest{
		Field: "skills",
		Tags:  "golang, gin",
	})
	if err != nil {
		t.Fatalf("用户1打标失败: %v", err)
	}

	t.Run("其他用户看不到对象上的标签", func(t *testing.T) {
		resp, err := env.taggingSvc.GetItemTags(ctx, env.user2, "article", "1")
		if err != nil {
			t.Fatalf("查询对象标签失败: %v", err)
		}
		if len(resp.Fields) != 0 {
			t.Errorf("用户2不应看到用户1的标签: %v", resp.Fields)
		}
	})

	t.Run("同名字段互不干扰", func(t *testing.T) {
		resp, err := env.taggingSvc.Apply(ctx, env.user2, "article", "1", &model.ApplyTagsRequest{
			Field: "skills",
			Tags:  "java",
		})
		if err != nil {
			t.Fatalf("用户2打标失败: %v", err)
		}
		if got := fieldCounts(resp, "skills"); !reflect.DeepEqual(got, map[string]int{"java": 1}) {
			t.Errorf("用户2的标签 = %v", got)
		}

		resp, err = env.taggingSvc.GetItemTags(ctx, env.user1, "article", "1")
		if err != nil {
			t.Fatalf("查询对象标签失败: %v", err)
		}
		want := map[string]int{"golang": 1, "gin": 1}
		if got := fieldCounts(resp, "skills"); !reflect.DeepEqual(got, want) {
			t.Errorf("用户1的标签 = %v, 期望 %v", got, want)
		}
	})

	t.Run("补全只返回自己的标签", func(t *testing.T) {
		s1, err := env.suggestSvc.Suggest(ctx, env.user1, &model.SuggestOptions{Field: "skills", Prefix: "g"})
		if err != nil {
			t.Fatalf("用户1补全失败: %v", err)
		}
		if !reflect.DeepEqual(s1.Suggestions, []string{"gin", "golang"}) {
			t.Errorf("用户1补全结果 = %v", s1.Suggestions)
		}

		s2, err := env.suggestSvc.Suggest(ctx, env.user2, &model.SuggestOptions{Field: "skills", Prefix: "g"})
		if err != nil {
			t.Fatalf("用户2补全失败: %v", err)
		}
		if len(s2.Suggestions) != 0 {
			t.Errorf("用户2不应补全出用户1的标签: %v", s2.Suggestions)
		}
	})

	t.Run("全局分组对所有用户可见", func(t *testing.T) {
		global, err := env.groupRepo.CreateGlobal(ctx, "topics")
		if err != nil {
			t.Fatalf("创建全局分组失败: %v", err)
		}
		if _, err := env.tagRepo.FindOrCreate(ctx, global.DBID, "golang"); err != nil {
			t.Fatalf("创建全局标签失败: %v", err)
		}

		for _, userID := range []uint{env.user1, env.user2} {
			s, err := env.suggestSvc.Suggest(ctx, userID, &model.SuggestOptions{Field: "topics", Prefix: "go"})
			if err != nil {
				t.Fatalf("补全失败: %v", err)
			}
			if !reflect.DeepEqual(s.Suggestions, []string{"golang"}) {
				t.Errorf("用户 %d 的全局补全结果 = %v", userID, s.Suggestions)
			}
		}
	})
}
