/*
 * @Description: 系统设置服务，带内存缓存
 * @Author: 安知鱼
 * @Date: 2025-08-22 10:12:09
 * @LastEditTime: 2025-09-28 17:31:20
 * @LastEditors: 安知鱼
 */
package setting

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/anzhiyu-c/user-tags/internal/pkg/utils"
	"github.com/anzhiyu-c/user-tags/pkg/constant"
	"github.com/anzhiyu-c/user-tags/pkg/domain/model"
	"github.com/anzhiyu-c/user-tags/pkg/domain/repository"
)

// SettingService 定义了配置服务的接口
type SettingService interface {
	// LoadAllSettings 确保关键配置存在并加载到内存缓存
	LoadAllSettings(ctx context.Context) error
	// Get 根据键获取配置值，未命中返回空字符串
	Get(key constant.SettingKey) string
}

// settingService 是 SettingService 接口的实现
type settingService struct {
	repo  repository.SettingRepository
	cache map[constant.SettingKey]string
	mu    sync.RWMutex
}

// NewSettingService 是 settingService 的构造函数
func NewSettingService(repo repository.SettingRepository) SettingService {
	return &settingService{
		repo:  repo,
		cache: make(map[constant.SettingKey]string),
	}
}

// LoadAllSettings 从数据库加载所有关键配置到内存缓存。
// jwt_secret 在首次启动时自动生成并落库，避免每次重启导致令牌失效。
func (s *settingService) LoadAllSettings(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	secret, err := s.getOrCreate(ctx, constant.KeyJWTSecret, func() (string, string) {
		secret, _ := utils.GenerateRandomString(64)
		return secret, "JWT 签名密钥，自动生成"
	})
	if err != nil {
		return fmt.Errorf("初始化 JWT 密钥失败: %w", err)
	}
	s.cache[constant.KeyJWTSecret] = secret

	log.Printf("系统设置已加载到缓存，共 %d 项。", len(s.cache))
	return nil
}

// getOrCreate 查找指定配置，不存在时用 generate 生成并保存
func (s *settingService) getOrCreate(ctx context.Context, key constant.SettingKey, generate func() (string, string)) (string, error) {
	existing, err := s.repo.FindByKey(ctx, key.String())
	if err == nil {
		return existing.Value, nil
	}
	if err != constant.ErrNotFound {
		return "", err
	}

	value, comment := generate()
	if err := s.repo.Save(ctx, &model.Setting{
		ConfigKey: key.String(),
		Value:     value,
		Comment:   comment,
	}); err != nil {
		return "", err
	}
	return value, nil
}

// Get 根据键获取配置值
func (s *settingService) Get(key constant.SettingKey) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cache[key]
}
