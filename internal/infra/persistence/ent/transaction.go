/*
 * @Description:
 * @Author: 安知鱼
 * @Date: 2025-08-21 16:12:40
 * @LastEditTime: 2025-09-22 11:02:19
 * @LastEditors: 安知鱼
 */
package ent

import (
	"context"
	"fmt"

	"github.com/anzhiyu-c/user-tags/ent"
	"github.com/anzhiyu-c/user-tags/pkg/domain/repository"
)

// entTransactionManager 是完全基于 Ent 的事务管理器实现。
type entTransactionManager struct {
	entClient *ent.Client
	dbType    string
}

// NewEntTransactionManager 是 entTransactionManager 的构造函数。
func NewEntTransactionManager(client *ent.Client, dbType string) repository.TransactionManager {
	return &entTransactionManager{
		entClient: client,
		dbType:    dbType,
	}
}

// Do 实现了 TransactionManager 接口。
// 它会开启一个 Ent 事务，并将 Repositories 结构体中定义的所有仓库包裹在这个事务中。
func (tm *entTransactionManager) Do(ctx context.Context, fn func(repos repository.Repositories) error) error {
	tx, err := tm.entClient.Tx(ctx)
	if err != nil {
		return fmt.Errorf("开启 Ent 事务失败: %w", err)
	}

	// 使用 defer 来确保 panic 时事务回滚
	defer func() {
		if v := recover(); v != nil {
			tx.Rollback()
			panic(v)
		}
	}()

	repos := repository.Repositories{
		User:       NewUserRepo(tx.Client()),
		UserGroup:  NewUserGroupRepo(tx.Client()),
		Setting:    NewSettingRepo(tx.Client()),
		TagGroup:   NewTagGroupRepo(tx.Client()),
		UserTag:    NewUserTagRepo(tx.Client(), tm.dbType),
		TaggedItem: NewTaggedItemRepo(tx.Client()),
	}

	// 执行业务逻辑
	if err := fn(repos); err != nil {
		if rerr := tx.Rollback(); rerr != nil {
			return fmt.Errorf("事务执行失败: %w, 回滚事务也失败: %v", err, rerr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("提交事务失败: %w", err)
	}
	return nil
}
