package repository

import (
	"context"

	"github.com/anzhiyu-c/user-tags/pkg/domain/model"
)

// SettingRepository 定义了系统设置的数据仓库接口。
type SettingRepository interface {
	FindByKey(ctx context.Context, key string) (*model.Setting, error)
	Save(ctx context.Context, setting *model.Setting) error
}
