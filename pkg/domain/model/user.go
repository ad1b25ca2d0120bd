/*
 * @Description:
 * @Author: 安知鱼
 * @Date: 2025-08-21 09:30:15
 * @LastEditTime: 2025-09-18 15:02:41
 * @LastEditors: 安知鱼
 */
package model

import "time"

// 用户状态
const (
	UserStatusActive   = 1 // 正常
	UserStatusInactive = 2 // 未激活
	UserStatusBanned   = 3 // 已封禁
)

// --- 核心领域对象 (Domain Object) ---

// User 是用户的核心领域模型。
// DBID 是内部数据库ID，仅供仓储与服务层内部使用，不对外暴露。
type User struct {
	ID           string
	DBID         uint
	CreatedAt    time.Time
	UpdatedAt    time.Time
	Username     string
	PasswordHash string
	Nickname     string
	Email        string
	LastLoginAt  *time.Time
	Status       int
	UserGroup    *UserGroup
}

// UserGroup 是用户组的核心领域模型。
type UserGroup struct {
	ID          string
	DBID        uint
	Name        string
	Description string
	Permissions string
}

// --- API 数据传输对象 (Data Transfer Objects) ---

// RegisterRequest 定义了用户注册的请求体
type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3,max=50"`
	Password string `json:"password" binding:"required,min=6,max=64"`
	Nickname string `json:"nickname" binding:"max=50"`
	Email    string `json:"email" binding:"omitempty,email"`
}

// LoginRequest 定义了用户登录的请求体
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RefreshTokenRequest 定义了刷新令牌的请求体
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// UserResponse 定义了用户信息的标准 API 响应结构
type UserResponse struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	Username  string    `json:"username"`
	Nickname  string    `json:"nickname"`
	Email     string    `json:"email,omitempty"`
}

// LoginResponse 定义了登录成功后的响应结构
type LoginResponse struct {
	AccessToken  string        `json:"access_token"`
	RefreshToken string        `json:"refresh_token"`
	ExpiresAt    int64         `json:"expires_at"`
	User         *UserResponse `json:"user"`
}

// RefreshTokenResponse 定义了刷新令牌成功后的响应结构
type RefreshTokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresAt   int64  `json:"expires_at"`
}
