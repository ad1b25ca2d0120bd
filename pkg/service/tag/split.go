/*
 * @Description: 标签文本的拆分与净化
 * @Author: 安知鱼
 * @Date: 2025-08-22 14:20:36
 * @LastEditTime: 2025-09-28 19:01:15
 * @LastEditors: 安知鱼
 */
package tag

import (
	"strings"

	"github.com/anzhiyu-c/user-tags/pkg/constant"

	"github.com/microcosm-cc/bluemonday"
)

// 标签文本不允许携带任何 HTML
var sanitizePolicy = bluemonday.StrictPolicy()

// MaxTagLength 是单个标签文本（以及分组名）的长度上限，与表结构的列宽一致
const MaxTagLength = 100

// SplitTags 把逗号分隔的输入拆成标签列表：
// 拆分、去首尾空白、丢弃空项、按出现顺序去重。
// "red, green,, red ,blue" -> ["red", "green", "blue"]
// 任意一个标签超过 MaxTagLength 时返回 constant.ErrTagTooLong。
func SplitTags(input string) ([]string, error) {
	parts := strings.Split(input, ",")
	result := make([]string, 0, len(parts))
	seen := make(map[string]struct{}, len(parts))

	for _, part := range parts {
		text := NormalizeTag(part)
		if text == "" {
			continue
		}
		if len(text) > MaxTagLength {
			return nil, constant.ErrTagTooLong
		}
		if _, ok := seen[text]; ok {
			continue
		}
		seen[text] = struct{}{}
		result = append(result, text)
	}
	return result, nil
}

// NormalizeTag 净化单个标签文本：去掉 HTML 并修剪首尾空白
func NormalizeTag(text string) string {
	return strings.TrimSpace(sanitizePolicy.Sanitize(text))
}

// JoinTags 把标签列表还原为逗号分隔的文本，是 SplitTags 的逆操作
func JoinTags(tags []string) string {
	return strings.Join(tags, ", ")
}
