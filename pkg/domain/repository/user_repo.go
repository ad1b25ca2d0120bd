/*
 * @Description:
 * @Author: 安知鱼
 * @Date: 2025-08-21 10:45:31
 * @LastEditTime: 2025-09-18 15:20:09
 * @LastEditors: 安知鱼
 */
package repository

import (
	"context"

	"github.com/anzhiyu-c/user-tags/pkg/domain/model"
)

// UserRepository 定义了用户的数据仓库接口。
type UserRepository interface {
	// Create 创建用户，传入 bcrypt 哈希后的密码与所属用户组内部ID
	Create(ctx context.Context, req *model.RegisterRequest, passwordHash string, groupID uint) (*model.User, error)
	FindByID(ctx context.Context, id uint) (*model.User, error)
	FindByUsername(ctx context.Context, username string) (*model.User, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	UpdateLastLogin(ctx context.Context, id uint) error
	Count(ctx context.Context) (int, error)
}
