/*
 * @Description:
 * @Author: 安知鱼
 * @Date: 2025-08-24 17:12:58
 * @LastEditTime: 2025-09-29 11:02:46
 * @LastEditors: 安知鱼
 */
package task

import (
	"context"
	"log"

	"github.com/anzhiyu-c/user-tags/pkg/domain/repository"
)

// 计数归零后保留的天数，期间内重新使用可避免标签ID变化
const unusedTagRetentionDays = 7

// TagCleanupJob 负责清理长期无引用的标签和不再挂任何标签的对象记录。
type TagCleanupJob struct {
	tagRepo  repository.UserTagRepository
	itemRepo repository.TaggedItemRepository
}

// NewTagCleanupJob 是任务的构造函数。
func NewTagCleanupJob(
	tagRepo repository.UserTagRepository,
	itemRepo repository.TaggedItemRepository,
) *TagCleanupJob {
	return &TagCleanupJob{
		tagRepo:  tagRepo,
		itemRepo: itemRepo,
	}
}

// Name 返回任务的可读名称。
func (j *TagCleanupJob) Name() string {
	return "TagCleanupJob"
}

// Run 是 Job 接口要求实现的方法。
func (j *TagCleanupJob) Run() {
	ctx := context.Background()

	deletedTags, err := j.tagRepo.DeleteUnusedBefore(ctx, unusedTagRetentionDays)
	if err != nil {
		log.Printf("错误: 任务 '%s' 在清理未使用标签时失败: %v", j.Name(), err)
	} else if deletedTags > 0 {
		log.Printf("任务 '%s' 清理了 %d 个超过 %d 天无引用的标签。", j.Name(), deletedTags, unusedTagRetentionDays)
	}

	deletedItems, err := j.itemRepo.DeleteOrphans(ctx)
	if err != nil {
		log.Printf("错误: 任务 '%s' 在清理无标签对象时失败: %v", j.Name(), err)
	} else if deletedItems > 0 {
		log.Printf("任务 '%s' 清理了 %d 个不再挂任何标签的对象记录。", j.Name(), deletedItems)
	}
}
