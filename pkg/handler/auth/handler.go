package auth

import (
	"net/http"

	"github.com/anzhiyu-c/user-tags/pkg/constant"
	"github.com/anzhiyu-c/user-tags/pkg/domain/model"
	"github.com/anzhiyu-c/user-tags/pkg/response"
	"github.com/anzhiyu-c/user-tags/pkg/service/user"

	"github.com/gin-gonic/gin"
)

// Handler 负责处理认证相关的 API 请求。
type Handler struct {
	userSvc user.Service
}

// NewHandler 是 Handler 的构造函数。
func NewHandler(userSvc user.Service) *Handler {
	return &Handler{userSvc: userSvc}
}

// Register 处理用户注册的请求。
// @Summary      用户注册
// @Description  使用用户名和密码注册新账号，首个注册的用户自动成为管理员
// @Tags         认证
// @Accept       json
// @Produce      json
// @Param        body  body  model.RegisterRequest  true  "注册信息"
// @Success      201  {object}  response.Response{data=model.UserResponse}  "注册成功"
// @Failure      400  {object}  response.Response  "参数无效"
// @Failure      409  {object}  response.Response  "用户名已被占用"
// @Router       /auth/register [post]
func (h *Handler) Register(c *gin.Context) {
	var req model.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "参数无效: "+err.Error())
		return
	}

	created, err := h.userSvc.Register(c.Request.Context(), &req)
	if err != nil {
		if err == constant.ErrUsernameTaken {
			response.Fail(c, http.StatusConflict, err.Error())
			return
		}
		response.Fail(c, http.StatusInternalServerError, "注册失败: "+err.Error())
		return
	}
	response.SuccessWithStatus(c, http.StatusCreated, created, "注册成功")
}

// Login 处理用户登录的请求。
// @Summary      用户登录
// @Description  校验用户名密码，签发访问令牌与刷新令牌
// @Tags         认证
// @Accept       json
// @Produce      json
// @Param        body  body  model.LoginRequest  true  "登录信息"
// @Success      200  {object}  response.Response{data=model.LoginResponse}  "登录成功"
// @Failure      401  {object}  response.Response  "用户名或密码错误"
// @Failure      403  {object}  response.Response  "用户状态异常"
// @Router       /auth/login [post]
func (h *Handler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "参数无效: "+err.Error())
		return
	}

	result, err := h.userSvc.Login(c.Request.Context(), &req)
	if err != nil {
		switch err {
		case constant.ErrInvalidCredentials:
			response.Fail(c, http.StatusUnauthorized, err.Error())
		case constant.ErrUserBanned:
			response.Fail(c, http.StatusForbidden, err.Error())
		default:
			response.Fail(c, http.StatusInternalServerError, "登录失败: "+err.Error())
		}
		return
	}
	response.Success(c, result, "登录成功")
}

// RefreshToken 处理刷新访问令牌的请求。
// @Summary      刷新令牌
// @Description  使用刷新令牌换取新的访问令牌
// @Tags         认证
// @Accept       json
// @Produce      json
// @Param        body  body  model.RefreshTokenRequest  true  "刷新令牌"
// @Success      200  {object}  response.Response{data=model.RefreshTokenResponse}  "刷新成功"
// @Failure      401  {object}  response.Response  "刷新令牌无效或过期"
// @Router       /auth/refresh [post]
func (h *Handler) RefreshToken(c *gin.Context) {
	var req model.RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "参数无效: "+err.Error())
		return
	}

	result, err := h.userSvc.RefreshToken(c.Request.Context(), &req)
	if err != nil {
		response.Fail(c, http.StatusUnauthorized, "刷新令牌失败: "+err.Error())
		return
	}
	response.Success(c, result, "刷新成功")
}
