package tag

import (
	"reflect"
	"strings"
	"testing"

	"github.com/anzhiyu-c/user-tags/pkg/constant"
)

func TestSplitTags(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		want  []string
	}{
		{"基础拆分", "red,green,blue", []string{"red", "green", "blue"}},
		{"修剪空白", " red , green ,blue ", []string{"red", "green", "blue"}},
		{"丢弃空项", "red,,green,", []string{"red", "green"}},
		{"按出现顺序去重", "red,green,red,blue,green", []string{"red", "green", "blue"}},
		{"全空输入", " , , ", []string{}},
		{"空字符串", "", []string{}},
		{"单个标签", "golang", []string{"golang"}},
		{"中文标签", "后端, 前端, 后端", []string{"后端", "前端"}},
		{"标签内含空格", "machine learning, deep learning", []string{"machine learning", "deep learning"}},
		{"剥离HTML", "<b>red</b>,<script>alert(1)</script>green", []string{"red", "green"}},
		{"长度等于上限", strings.Repeat("a", MaxTagLength), []string{strings.Repeat("a", MaxTagLength)}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := SplitTags(tc.input)
			if err != nil {
				t.Fatalf("SplitTags(%q) 返回错误: %v", tc.input, err)
			}
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("SplitTags(%q) = %v, 期望 %v", tc.input, got, tc.want)
			}
		})
	}
}

func TestSplitTagsTooLong(t *testing.T) {
	testCases := []struct {
		name  string
		input string
	}{
		{"超长英文标签", strings.Repeat("a", MaxTagLength+1)},
		{"超长中文标签", strings.Repeat("标", 50)},
		{"混在正常标签中", "red," + strings.Repeat("a", 150) + ",green"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := SplitTags(tc.input)
			if err != constant.ErrTagTooLong {
				t.Fatalf("SplitTags(超长输入) err = %v, 期望 ErrTagTooLong", err)
			}
			if got != nil {
				t.Errorf("出错时应返回 nil 列表, 实际 %v", got)
			}
		})
	}
}

func TestNormalizeTag(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		want  string
	}{
		{"普通文本", "golang", "golang"},
		{"首尾空白", "  golang  ", "golang"},
		{"剥离标签", "<em>强调</em>", "强调"},
		{"纯HTML", "<br/>", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := NormalizeTag(tc.input); got != tc.want {
				t.Errorf("NormalizeTag(%q) = %q, 期望 %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestJoinTags(t *testing.T) {
	got := JoinTags([]string{"red", "green", "blue"})
	if got != "red, green, blue" {
		t.Errorf("JoinTags = %q", got)
	}
}
