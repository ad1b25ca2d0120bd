package tagging

import (
	"reflect"
	"testing"
)

func TestComputeDiff(t *testing.T) {
	testCases := []struct {
		name        string
		oldIDs      []uint
		newIDs      []uint
		wantAdded   []uint
		wantRemoved []uint
	}{
		{"全新对象", nil, []uint{1, 2}, []uint{1, 2}, nil},
		{"完全清空", []uint{1, 2}, nil, nil, []uint{1, 2}},
		{"部分替换", []uint{1, 2, 3}, []uint{2, 3, 4}, []uint{4}, []uint{1}},
		{"集合不变", []uint{1, 2}, []uint{1, 2}, nil, nil},
		{"顺序无关", []uint{2, 1}, []uint{1, 2}, nil, nil},
		{"两边都空", nil, nil, nil, nil},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := computeDiff(tc.oldIDs, tc.newIDs)
			if !reflect.DeepEqual(got.Added, tc.wantAdded) {
				t.Errorf("Added = %v, 期望 %v", got.Added, tc.wantAdded)
			}
			if !reflect.DeepEqual(got.Removed, tc.wantRemoved) {
				t.Errorf("Removed = %v, 期望 %v", got.Removed, tc.wantRemoved)
			}
		})
	}
}

func TestTagDiff_IsEmpty(t *testing.T) {
	if !(TagDiff{}).IsEmpty() {
		t.Error("空差量应返回 true")
	}
	if (TagDiff{Added: []uint{1}}).IsEmpty() {
		t.Error("有新增时应返回 false")
	}
	if (TagDiff{Removed: []uint{1}}).IsEmpty() {
		t.Error("有移除时应返回 false")
	}
}
