package utility

import (
	"context"
	"testing"
	"time"
)

func TestMemoryCacheService_SetGet(t *testing.T) {
	svc := NewMemoryCacheService()
	defer svc.(*memoryCacheService).Stop()
	ctx := context.Background()

	testCases := []struct {
		name       string
		key        string
		value      interface{}
		expiration time.Duration
		want       string
	}{
		{"字符串值", "k1", "hello", 0, "hello"},
		{"整数值", "k2", 42, 0, "42"},
		{"带过期时间", "k3", "ttl", time.Minute, "ttl"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if err := svc.Set(ctx, tc.key, tc.value, tc.expiration); err != nil {
				t.Fatalf("Set 失败: %v", err)
			}
			got, err := svc.Get(ctx, tc.key)
			if err != nil {
				t.Fatalf("Get 失败: %v", err)
			}
			if got != tc.want {
				t.Errorf("Get = %q, 期望 %q", got, tc.want)
			}
		})
	}
}

func TestMemoryCacheService_GetMissingKey(t *testing.T) {
	svc := NewMemoryCacheService()
	defer svc.(*memoryCacheService).Stop()

	got, err := svc.Get(context.Background(), "不存在的键")
	if err != nil {
		t.Fatalf("Get 失败: %v", err)
	}
	if got != "" {
		t.Errorf("不存在的键应返回空字符串, 实际返回 %q", got)
	}
}

func TestMemoryCacheService_Expiration(t *testing.T) {
	svc := NewMemoryCacheService()
	defer svc.(*memoryCacheService).Stop()
	ctx := context.Background()

	if err := svc.Set(ctx, "short", "v", 10*time.Millisecond); err != nil {
		t.Fatalf("Set 失败: %v", err)
	}
	time.Sleep(20 * time.Millisecond)

	got, err := svc.Get(ctx, "short")
	if err != nil {
		t.Fatalf("Get 失败: %v", err)
	}
	if got != "" {
		t.Errorf("过期的键应返回空字符串, 实际返回 %q", got)
	}
}

func TestMemoryCacheService_Increment(t *testing.T) {
	svc := NewMemoryCacheService()
	defer svc.(*memoryCacheService).Stop()
	ctx := context.Background()

	for i := int64(1); i <= 3; i++ {
		got, err := svc.Increment(ctx, "counter")
		if err != nil {
			t.Fatalf("Increment 失败: %v", err)
		}
		if got != i {
			t.Errorf("第 %d 次 Increment = %d", i, got)
		}
	}
}

func TestMemoryCacheService_DeleteAndScan(t *testing.T) {
	svc := NewMemoryCacheService()
	defer svc.(*memoryCacheService).Stop()
	ctx := context.Background()

	svc.Set(ctx, "suggest:1:color", "a", 0)
	svc.Set(ctx, "suggest:1:size", "b", 0)
	svc.Set(ctx, "other:1", "c", 0)

	keys, err := svc.Scan(ctx, "suggest:1:*")
	if err != nil {
		t.Fatalf("Scan 失败: %v", err)
	}
	if len(keys) != 2 {
		t.Fatalf("Scan 应匹配 2 个键, 实际 %d 个: %v", len(keys), keys)
	}

	if err := svc.Delete(ctx, keys...); err != nil {
		t.Fatalf("Delete 失败: %v", err)
	}
	got, _ := svc.Get(ctx, "suggest:1:color")
	if got != "" {
		t.Errorf("删除后应返回空字符串, 实际返回 %q", got)
	}
}
