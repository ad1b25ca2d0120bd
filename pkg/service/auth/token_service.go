/*
 * @Description: 令牌服务，负责签发、刷新与解析会话令牌
 * @Author: 安知鱼
 * @Date: 2025-08-22 10:40:18
 * @LastEditTime: 2025-09-28 18:05:52
 * @LastEditors: 安知鱼
 */
package auth

import (
	"context"
	"fmt"

	"github.com/anzhiyu-c/user-tags/internal/pkg/auth"
	"github.com/anzhiyu-c/user-tags/pkg/constant"
	"github.com/anzhiyu-c/user-tags/pkg/domain/model"
	"github.com/anzhiyu-c/user-tags/pkg/domain/repository"
	"github.com/anzhiyu-c/user-tags/pkg/idgen"
	"github.com/anzhiyu-c/user-tags/pkg/service/setting"
)

// TokenService 定义了会话令牌服务的接口
type TokenService interface {
	GenerateSessionTokens(ctx context.Context, user *model.User) (accessToken, refreshToken string, expiresAt int64, err error)
	RefreshAccessToken(ctx context.Context, refreshToken string) (accessToken string, expiresAt int64, err error)
	ParseAccessToken(ctx context.Context, accessToken string) (*auth.CustomClaims, error)
}

type tokenService struct {
	userRepo   repository.UserRepository
	settingSvc setting.SettingService
}

// NewTokenService 构造函数
func NewTokenService(userRepo repository.UserRepository, settingSvc setting.SettingService) TokenService {
	return &tokenService{
		userRepo:   userRepo,
		settingSvc: settingSvc,
	}
}

func (s *tokenService) GenerateSessionTokens(ctx context.Context, user *model.User) (string, string, int64, error) {
	// 动态地从 SettingService 获取密钥
	jwtSecret := s.settingSvc.Get(constant.KeyJWTSecret)
	if jwtSecret == "" {
		return "", "", 0, fmt.Errorf("JWT_SECRET 未从数据库加载, 无法生成令牌")
	}

	accessToken, err := auth.GenerateToken(user.DBID, []byte(user.UserGroup.Permissions), user.UserGroup.DBID, []byte(jwtSecret))
	if err != nil {
		return "", "", 0, err
	}
	refreshToken, err := auth.GenerateRefreshToken(user.DBID, []byte(jwtSecret))
	if err != nil {
		return "", "", 0, err
	}

	claims, err := auth.ParseToken(accessToken, []byte(jwtSecret))
	if err != nil {
		return "", "", 0, err
	}
	expiresAt := claims.ExpiresAt.Time.UnixMilli()

	return accessToken, refreshToken, expiresAt, nil
}

func (s *tokenService) RefreshAccessToken(ctx context.Context, refreshToken string) (string, int64, error) {
	jwtSecret := s.settingSvc.Get(constant.KeyJWTSecret)
	if jwtSecret == "" {
		return "", 0, fmt.Errorf("JWT_SECRET 未从数据库加载, 无法刷新令牌")
	}

	claims, err := auth.ParseToken(refreshToken, []byte(jwtSecret))
	if err != nil {
		return "", 0, fmt.Errorf("无效或过期的刷新令牌: %w", err)
	}

	// claims.UserID 是公共ID，解码为内部数据库ID并校验类型
	internalUserID, entityType, err := idgen.DecodePublicID(claims.UserID)
	if err != nil {
		return "", 0, fmt.Errorf("解码公共用户ID失败: %w", err)
	}
	if entityType != idgen.EntityTypeUser {
		return "", 0, fmt.Errorf("令牌中的用户ID类型不匹配")
	}

	user, err := s.userRepo.FindByID(ctx, internalUserID)
	if err != nil || user == nil || user.Status != model.UserStatusActive {
		return "", 0, fmt.Errorf("用户不存在或状态异常")
	}

	accessToken, err := auth.GenerateToken(user.DBID, []byte(user.UserGroup.Permissions), user.UserGroup.DBID, []byte(jwtSecret))
	if err != nil {
		return "", 0, err
	}

	newClaims, err := auth.ParseToken(accessToken, []byte(jwtSecret))
	if err != nil {
		return "", 0, err
	}
	return accessToken, newClaims.ExpiresAt.Time.UnixMilli(), nil
}

func (s *tokenService) ParseAccessToken(ctx context.Context, accessToken string) (*auth.CustomClaims, error) {
	jwtSecret := s.settingSvc.Get(constant.KeyJWTSecret)
	if jwtSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET 未从数据库加载, 无法解析令牌")
	}
	return auth.ParseToken(accessToken, []byte(jwtSecret))
}
