package repository

import (
	"context"

	"github.com/anzhiyu-c/user-tags/pkg/domain/model"
)

// UserGroupRepository 定义了用户组的数据仓库接口。
type UserGroupRepository interface {
	FindByID(ctx context.Context, id uint) (*model.UserGroup, error)
	FindByName(ctx context.Context, name string) (*model.UserGroup, error)
	Create(ctx context.Context, name, description, permissions string) (*model.UserGroup, error)
	Count(ctx context.Context) (int, error)
}
