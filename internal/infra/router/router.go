/*
 * @Description: API 路由注册
 * @Author: 安知鱼
 * @Date: 2025-08-24 14:02:18
 * @LastEditTime: 2025-09-29 14:22:05
 * @LastEditors: 安知鱼
 */
package router

import (
	"net/http"

	"github.com/anzhiyu-c/user-tags/internal/app/middleware"
	auth_handler "github.com/anzhiyu-c/user-tags/pkg/handler/auth"
	suggest_handler "github.com/anzhiyu-c/user-tags/pkg/handler/suggest"
	tag_group_handler "github.com/anzhiyu-c/user-tags/pkg/handler/tag_group"
	tagged_item_handler "github.com/anzhiyu-c/user-tags/pkg/handler/tagged_item"
	user_tag_handler "github.com/anzhiyu-c/user-tags/pkg/handler/user_tag"
	"github.com/anzhiyu-c/user-tags/pkg/response"

	"github.com/gin-gonic/gin"
)

// Router 持有所有 Handler，负责把它们挂到 Gin 引擎上。
type Router struct {
	authHandler       *auth_handler.Handler
	userTagHandler    *user_tag_handler.Handler
	tagGroupHandler   *tag_group_handler.Handler
	taggedItemHandler *tagged_item_handler.Handler
	suggestHandler    *suggest_handler.Handler
	mw                *middleware.Middleware
}

// NewRouter 是 Router 的构造函数。
func NewRouter(
	authHandler *auth_handler.Handler,
	userTagHandler *user_tag_handler.Handler,
	tagGroupHandler *tag_group_handler.Handler,
	taggedItemHandler *tagged_item_handler.Handler,
	suggestHandler *suggest_handler.Handler,
	mw *middleware.Middleware,
) *Router {
	return &Router{
		authHandler:       authHandler,
		userTagHandler:    userTagHandler,
		tagGroupHandler:   tagGroupHandler,
		taggedItemHandler: taggedItemHandler,
		suggestHandler:    suggestHandler,
		mw:                mw,
	}
}

// Setup 将所有路由注册到 Gin 引擎。
// 这是在 main.go 中将被调用的唯一入口点。
func (r *Router) Setup(engine *gin.Engine) {
	engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	apiGroup := engine.Group("/api")

	r.registerAuthRoutes(apiGroup)
	r.registerTagRoutes(apiGroup)
	r.registerTagGroupRoutes(apiGroup)
	r.registerItemRoutes(apiGroup)
	r.registerAdminRoutes(apiGroup)

	engine.NoRoute(func(c *gin.Context) {
		response.Fail(c, http.StatusNotFound, "接口不存在")
	})
}

// registerAuthRoutes 注册认证相关的路由（无需登录）
func (r *Router) registerAuthRoutes(api *gin.RouterGroup) {
	auth := api.Group("/auth")
	{
		auth.POST("/register", middleware.RegisterRateLimit(), r.authHandler.Register)
		auth.POST("/login", r.authHandler.Login)
		auth.POST("/refresh", r.authHandler.RefreshToken)
	}
}

// registerTagRoutes 注册标签管理相关的路由
func (r *Router) registerTagRoutes(api *gin.RouterGroup) {
	tags := api.Group("/tags").Use(r.mw.JWTAuth())
	{
		tags.GET("", r.userTagHandler.ListTags)
		tags.GET("/suggest", middleware.SuggestRateLimit(), r.suggestHandler.Suggest)
		tags.PUT("/:id", r.userTagHandler.RenameTag)
		tags.DELETE("/:id", r.userTagHandler.DeleteTag)
	}
}

// registerTagGroupRoutes 注册标签分组相关的路由
func (r *Router) registerTagGroupRoutes(api *gin.RouterGroup) {
	groups := api.Group("/tag-groups").Use(r.mw.JWTAuth())
	{
		groups.GET("", r.tagGroupHandler.ListGroups)
		groups.DELETE("/:id", r.tagGroupHandler.DeleteGroup)
	}
}

// registerItemRoutes 注册对象打标相关的路由
func (r *Router) registerItemRoutes(api *gin.RouterGroup) {
	items := api.Group("/items").Use(r.mw.JWTAuth())
	{
		items.PUT("/:type/:id/tags", r.taggedItemHandler.ApplyTags)
		items.GET("/:type/:id/tags", r.taggedItemHandler.GetItemTags)
		items.DELETE("/:type/:id/tags", r.taggedItemHandler.ClearItemTags)
	}
}

// registerAdminRoutes 注册后台管理路由
func (r *Router) registerAdminRoutes(api *gin.RouterGroup) {
	admin := api.Group("/admin").Use(r.mw.JWTAuth(), r.mw.AdminAuth())
	{
		admin.POST("/tag-groups/global", r.tagGroupHandler.CreateGlobalGroup)
		admin.GET("/tag-groups", r.tagGroupHandler.ListAllGroups)
		admin.DELETE("/tag-groups/:id", r.tagGroupHandler.DeleteGlobalGroup)
	}
}
