// internal/app/middleware/auth.go
package middleware

import (
	"net/http"
	"strings"

	"github.com/anzhiyu-c/user-tags/internal/pkg/auth"
	"github.com/anzhiyu-c/user-tags/pkg/idgen"
	"github.com/anzhiyu-c/user-tags/pkg/response"
	service_auth "github.com/anzhiyu-c/user-tags/pkg/service/auth"

	"github.com/gin-gonic/gin"
)

type Middleware struct {
	tokenSvc service_auth.TokenService
}

func NewMiddleware(tokenSvc service_auth.TokenService) *Middleware {
	return &Middleware{tokenSvc: tokenSvc}
}

// JWTAuth 是一个强制性的JWT认证中间件
func (m *Middleware) JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.Request.Header.Get("Authorization")
		if authHeader == "" {
			response.Fail(c, http.StatusUnauthorized, "请求未携带Token，无权限访问")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if !(len(parts) == 2 && parts[0] == "Bearer") {
			response.Fail(c, http.StatusUnauthorized, "Token格式不正确")
			c.Abort()
			return
		}

		claims, err := m.tokenSvc.ParseAccessToken(c.Request.Context(), parts[1])
		if err != nil {
			response.Fail(c, http.StatusUnauthorized, "无效或过期的Token")
			c.Abort()
			return
		}

		c.Set(auth.ClaimsKey, claims)
		c.Next()
	}
}

// AdminAuth 是一个管理员权限验证中间件，必须挂在 JWTAuth 之后
func (m *Middleware) AdminAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		claimsValue, exists := c.Get(auth.ClaimsKey)
		if !exists {
			response.Fail(c, http.StatusForbidden, "权限信息获取失败")
			c.Abort()
			return
		}

		claims, ok := claimsValue.(*auth.CustomClaims)
		if !ok {
			response.Fail(c, http.StatusForbidden, "权限信息格式不正确")
			c.Abort()
			return
		}

		userGroupID, entityType, err := idgen.DecodePublicID(claims.UserGroupID)
		if err != nil || entityType != idgen.EntityTypeUserGroup {
			response.Fail(c, http.StatusForbidden, "权限信息无效：用户组ID无法解析")
			c.Abort()
			return
		}

		// 约定管理员的用户组ID为 1
		if userGroupID != 1 {
			response.Fail(c, http.StatusForbidden, "权限不足：此操作需要管理员权限")
			c.Abort()
			return
		}

		c.Next()
	}
}

// CurrentUserID 从上下文取出当前登录用户的内部数据库ID。
// 返回 false 表示上下文中没有有效的认证信息。
func CurrentUserID(c *gin.Context) (uint, bool) {
	claimsValue, exists := c.Get(auth.ClaimsKey)
	if !exists {
		return 0, false
	}
	claims, ok := claimsValue.(*auth.CustomClaims)
	if !ok {
		return 0, false
	}
	userID, entityType, err := idgen.DecodePublicID(claims.UserID)
	if err != nil || entityType != idgen.EntityTypeUser {
		return 0, false
	}
	return userID, true
}
