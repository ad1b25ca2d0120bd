/*
 * @Description: 用户服务，处理注册、登录与令牌刷新
 * @Author: 安知鱼
 * @Date: 2025-08-22 11:02:33
 * @LastEditTime: 2025-09-28 18:22:10
 * @LastEditors: 安知鱼
 */
package user

import (
	"context"
	"fmt"
	"log"

	"github.com/anzhiyu-c/user-tags/internal/pkg/security"
	"github.com/anzhiyu-c/user-tags/pkg/constant"
	"github.com/anzhiyu-c/user-tags/pkg/domain/model"
	"github.com/anzhiyu-c/user-tags/pkg/domain/repository"
	"github.com/anzhiyu-c/user-tags/pkg/service/auth"
)

// 内置用户组名称
const (
	GroupNameAdmin   = "admin"
	GroupNameDefault = "user"
)

// Service 定义了用户服务的接口
type Service interface {
	Register(ctx context.Context, req *model.RegisterRequest) (*model.UserResponse, error)
	Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error)
	RefreshToken(ctx context.Context, req *model.RefreshTokenRequest) (*model.RefreshTokenResponse, error)
	// EnsureDefaultGroups 确保内置用户组存在，启动时调用
	EnsureDefaultGroups(ctx context.Context) error
}

type service struct {
	userRepo  repository.UserRepository
	groupRepo repository.UserGroupRepository
	tokenSvc  auth.TokenService
}

// NewService 是用户服务的构造函数
func NewService(
	userRepo repository.UserRepository,
	groupRepo repository.UserGroupRepository,
	tokenSvc auth.TokenService,
) Service {
	return &service{
		userRepo:  userRepo,
		groupRepo: groupRepo,
		tokenSvc:  tokenSvc,
	}
}

// EnsureDefaultGroups 确保 admin 和 user 两个内置用户组存在。
// admin 组必须先于 user 组创建，使其获得内部ID 1，管理员判定依赖这一点。
func (s *service) EnsureDefaultGroups(ctx context.Context) error {
	count, err := s.groupRepo.Count(ctx)
	if err != nil {
		return fmt.Errorf("查询用户组数量失败: %w", err)
	}
	if count > 0 {
		return nil
	}

	if _, err := s.groupRepo.Create(ctx, GroupNameAdmin, "管理员", `{"admin":true}`); err != nil {
		return fmt.Errorf("创建管理员用户组失败: %w", err)
	}
	if _, err := s.groupRepo.Create(ctx, GroupNameDefault, "普通用户", `{}`); err != nil {
		return fmt.Errorf("创建默认用户组失败: %w", err)
	}
	log.Println("✅ 内置用户组初始化完成")
	return nil
}

// Register 注册新用户。首个注册的用户自动成为管理员。
func (s *service) Register(ctx context.Context, req *model.RegisterRequest) (*model.UserResponse, error) {
	exists, err := s.userRepo.ExistsByUsername(ctx, req.Username)
	if err != nil {
		return nil, fmt.Errorf("检查用户名失败: %w", err)
	}
	if exists {
		return nil, constant.ErrUsernameTaken
	}

	passwordHash, err := security.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("密码加密失败: %w", err)
	}

	groupName := GroupNameDefault
	userCount, err := s.userRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("查询用户数量失败: %w", err)
	}
	if userCount == 0 {
		groupName = GroupNameAdmin
	}

	group, err := s.groupRepo.FindByName(ctx, groupName)
	if err != nil {
		return nil, fmt.Errorf("查找用户组 %q 失败: %w", groupName, err)
	}

	created, err := s.userRepo.Create(ctx, req, passwordHash, group.DBID)
	if err != nil {
		return nil, err
	}
	return toUserResponse(created), nil
}

// Login 校验凭证并签发会话令牌
func (s *service) Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error) {
	u, err := s.userRepo.FindByUsername(ctx, req.Username)
	if err != nil {
		if err == constant.ErrNotFound {
			return nil, constant.ErrInvalidCredentials
		}
		return nil, err
	}
	if u.Status != model.UserStatusActive {
		return nil, constant.ErrUserBanned
	}
	if !security.CheckPasswordHash(req.Password, u.PasswordHash) {
		return nil, constant.ErrInvalidCredentials
	}

	accessToken, refreshToken, expiresAt, err := s.tokenSvc.GenerateSessionTokens(ctx, u)
	if err != nil {
		return nil, fmt.Errorf("生成会话令牌失败: %w", err)
	}

	if err := s.userRepo.UpdateLastLogin(ctx, u.DBID); err != nil {
		// 更新登录时间失败不应阻断登录
		log.Printf("警告: 更新用户 %s 最后登录时间失败: %v", u.Username, err)
	}

	return &model.LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresAt:    expiresAt,
		User:         toUserResponse(u),
	}, nil
}

// RefreshToken 用刷新令牌换取新的访问令牌
func (s *service) RefreshToken(ctx context.Context, req *model.RefreshTokenRequest) (*model.RefreshTokenResponse, error) {
	accessToken, expiresAt, err := s.tokenSvc.RefreshAccessToken(ctx, req.RefreshToken)
	if err != nil {
		return nil, err
	}
	return &model.RefreshTokenResponse{
		AccessToken: accessToken,
		ExpiresAt:   expiresAt,
	}, nil
}

func toUserResponse(u *model.User) *model.UserResponse {
	return &model.UserResponse{
		ID:        u.ID,
		CreatedAt: u.CreatedAt,
		Username:  u.Username,
		Nickname:  u.Nickname,
		Email:     u.Email,
	}
}
