package suggest

import (
	"context"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/anzhiyu-c/user-tags/pkg/domain/model"
	"github.com/anzhiyu-c/user-tags/pkg/domain/repository"
	"github.com/anzhiyu-c/user-tags/pkg/service/utility"
)

// fakeGroupRepo 只实现补全服务用到的方法
type fakeGroupRepo struct {
	repository.TagGroupRepository
	visibleIDs map[string][]uint // field -> 可见分组ID
	calls      int
}

func (f *fakeGroupRepo) VisibleIDsByName(ctx context.Context, ownerID uint, name string) ([]uint, error) {
	f.calls++
	return f.visibleIDs[name], nil
}

// fakeTagRepo 用内存切片模拟前缀搜索
type fakeTagRepo struct {
	repository.UserTagRepository
	tags  []*model.UserTag // 已按 count 降序排列
	calls int
}

func (f *fakeTagRepo) SearchByPrefix(ctx context.Context, groupIDs []uint, prefix string, limit int) ([]*model.UserTag, error) {
	f.calls++
	if len(groupIDs) == 0 {
		return []*model.UserTag{}, nil
	}
	var result []*model.UserTag
	for _, t := range f.tags {
		if len(result) >= limit {
			break
		}
		if strings.HasPrefix(strings.ToLower(t.Text), strings.ToLower(prefix)) {
			result = append(result, t)
		}
	}
	return result, nil
}

func newTestService(ttl time.Duration) (Service, *fakeGroupRepo, *fakeTagRepo, utility.CacheService) {
	groupRepo := &fakeGroupRepo{
		visibleIDs: map[string][]uint{"skills": {1, 2}},
	}
	tagRepo := &fakeTagRepo{
		tags: []*model.UserTag{
			{Text: "golang", Count: 9},
			{Text: "go-redis", Count: 3},
			{Text: "Gopher", Count: 1},
			{Text: "rust", Count: 5},
		},
	}
	cacheSvc := utility.NewMemoryCacheService()
	svc := NewService(groupRepo, tagRepo, cacheSvc, Options{CacheTTL: ttl, DefaultLimit: 10})
	return svc, groupRepo, tagRepo, cacheSvc
}

func TestSuggest_PrefixMatch(t *testing.T) {
	svc, _, _, _ := newTestService(0)

	resp, err := svc.Suggest(context.Background(), 1, &model.SuggestOptions{Field: "skills", Prefix: "go"})
	if err != nil {
		t.Fatalf("Suggest 失败: %v", err)
	}
	want := []string{"golang", "go-redis", "Gopher"}
	if !reflect.DeepEqual(resp.Suggestions, want) {
		t.Errorf("Suggestions = %v, 期望 %v", resp.Suggestions, want)
	}
}

func TestSuggest_EmptyFieldOrPrefix(t *testing.T) {
	svc, groupRepo, _, _ := newTestService(0)
	ctx := context.Background()

	testCases := []struct {
		name string
		opts *model.SuggestOptions
	}{
		{"缺少字段", &model.SuggestOptions{Prefix: "go"}},
		{"缺少前缀", &model.SuggestOptions{Field: "skills"}},
		{"前缀只有空白", &model.SuggestOptions{Field: "skills", Prefix: "   "}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			resp, err := svc.Suggest(ctx, 1, tc.opts)
			if err != nil {
				t.Fatalf("Suggest 失败: %v", err)
			}
			if len(resp.Suggestions) != 0 {
				t.Errorf("应返回空结果, 实际 %v", resp.Suggestions)
			}
		})
	}
	if groupRepo.calls != 0 {
		t.Errorf("无效输入不应查库, 实际查询 %d 次", groupRepo.calls)
	}
}

func TestSuggest_LimitCapped(t *testing.T) {
	svc, _, tagRepo, _ := newTestService(0)

	resp, err := svc.Suggest(context.Background(), 1, &model.SuggestOptions{Field: "skills", Prefix: "go", Limit: 1})
	if err != nil {
		t.Fatalf("Suggest 失败: %v", err)
	}
	if len(resp.Suggestions) != 1 {
		t.Errorf("limit=1 应只返回 1 条, 实际 %v", resp.Suggestions)
	}

	// 超过硬上限的 limit 会被压到 maxLimit
	_, err = svc.Suggest(context.Background(), 1, &model.SuggestOptions{Field: "skills", Prefix: "go", Limit: 10000})
	if err != nil {
		t.Fatalf("Suggest 失败: %v", err)
	}
	if tagRepo.calls != 2 {
		t.Fatalf("期望查库 2 次, 实际 %d 次", tagRepo.calls)
	}
}

func TestSuggest_CacheHitAndInvalidate(t *testing.T) {
	svc, _, tagRepo, _ := newTestService(time.Minute)
	ctx := context.Background()
	opts := &model.SuggestOptions{Field: "skills", Prefix: "go"}

	first, err := svc.Suggest(ctx, 1, opts)
	if err != nil {
		t.Fatalf("Suggest 失败: %v", err)
	}
	second, err := svc.Suggest(ctx, 1, opts)
	if err != nil {
		t.Fatalf("Suggest 失败: %v", err)
	}
	if tagRepo.calls != 1 {
		t.Errorf("第二次查询应命中缓存, 实际查库 %d 次", tagRepo.calls)
	}
	if !reflect.DeepEqual(first.Suggestions, second.Suggestions) {
		t.Errorf("缓存结果不一致: %v vs %v", first.Suggestions, second.Suggestions)
	}

	// 大小写不同的前缀应命中同一条缓存
	if _, err := svc.Suggest(ctx, 1, &model.SuggestOptions{Field: "skills", Prefix: "GO"}); err != nil {
		t.Fatalf("Suggest 失败: %v", err)
	}
	if tagRepo.calls != 1 {
		t.Errorf("大小写不同的前缀应命中缓存, 实际查库 %d 次", tagRepo.calls)
	}

	svc.InvalidateCache(ctx, 1)
	if _, err := svc.Suggest(ctx, 1, opts); err != nil {
		t.Fatalf("Suggest 失败: %v", err)
	}
	if tagRepo.calls != 2 {
		t.Errorf("缓存失效后应重新查库, 实际查库 %d 次", tagRepo.calls)
	}
}
