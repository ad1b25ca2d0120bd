/*
 * @Description: 标签集合的差量计算
 * @Author: 安知鱼
 * @Date: 2025-08-23 09:12:40
 * @LastEditTime: 2025-09-28 20:03:17
 * @LastEditors: 安知鱼
 */
package tagging

// TagDiff 描述一次标签替换需要执行的增删。
// Added 的标签计数加一，Removed 的标签计数减一。
type TagDiff struct {
	Added   []uint
	Removed []uint
}

// IsEmpty 表示新旧集合一致，无需任何写入
func (d TagDiff) IsEmpty() bool {
	return len(d.Added) == 0 && len(d.Removed) == 0
}

// computeDiff 比较对象上旧的标签ID集合与期望的新集合，
// 返回需要挂上和摘除的标签ID。输出保持输入的出现顺序。
func computeDiff(oldIDs, newIDs []uint) TagDiff {
	oldSet := make(map[uint]struct{}, len(oldIDs))
	for _, id := range oldIDs {
		oldSet[id] = struct{}{}
	}
	newSet := make(map[uint]struct{}, len(newIDs))
	for _, id := range newIDs {
		newSet[id] = struct{}{}
	}

	var diff TagDiff
	for _, id := range newIDs {
		if _, ok := oldSet[id]; !ok {
			diff.Added = append(diff.Added, id)
		}
	}
	for _, id := range oldIDs {
		if _, ok := newSet[id]; !ok {
			diff.Removed = append(diff.Removed, id)
		}
	}
	return diff
}
