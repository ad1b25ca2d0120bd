package tag_group

import (
	"net/http"
	"strconv"

	"github.com/anzhiyu-c/user-tags/internal/app/middleware"
	"github.com/anzhiyu-c/user-tags/pkg/constant"
	"github.com/anzhiyu-c/user-tags/pkg/domain/model"
	"github.com/anzhiyu-c/user-tags/pkg/domain/repository"
	"github.com/anzhiyu-c/user-tags/pkg/response"
	"github.com/anzhiyu-c/user-tags/pkg/service/tag"

	"github.com/gin-gonic/gin"
)

// Handler 负责处理标签分组相关的 API 请求。
type Handler struct {
	tagSvc tag.Service
}

// NewHandler 是 Handler 的构造函数。
func NewHandler(tagSvc tag.Service) *Handler {
	return &Handler{tagSvc: tagSvc}
}

// --- 用户接口 ---

// ListGroups 处理列出可见分组的请求。
// @Summary      列出标签分组
// @Description  列出当前用户可见的标签分组（自己的 + 全局的）
// @Tags         标签分组
// @Produce      json
// @Success      200  {object}  response.Response{data=[]model.TagGroupResponse}  "获取成功"
// @Router       /tag-groups [get]
func (h *Handler) ListGroups(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		response.Fail(c, http.StatusUnauthorized, "未登录")
		return
	}

	groups, err := h.tagSvc.ListGroups(c.Request.Context(), userID)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, "获取分组列表失败: "+err.Error())
		return
	}
	response.Success(c, groups, "获取成功")
}

// DeleteGroup 处理删除自己分组的请求。
// @Summary      删除标签分组
// @Description  删除自己的标签分组及其下全部标签
// @Tags         标签分组
// @Produce      json
// @Param        id  path  string  true  "分组ID"
// @Success      200  {object}  response.Response  "删除成功"
// @Failure      403  {object}  response.Response  "分组不属于当前用户"
// @Failure      404  {object}  response.Response  "分组不存在"
// @Router       /tag-groups/{id} [delete]
func (h *Handler) DeleteGroup(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		response.Fail(c, http.StatusUnauthorized, "未登录")
		return
	}

	if err := h.tagSvc.DeleteGroup(c.Request.Context(), userID, c.Param("id")); err != nil {
		failGroupError(c, err, "删除分组失败")
		return
	}
	response.Success(c, nil, "删除成功")
}

// --- 管理员接口 ---

// CreateGlobalGroup 处理创建全局分组的请求。
// @Summary      创建全局标签分组
// @Description  创建对所有用户可见的全局分组，仅管理员可用
// @Tags         标签分组
// @Accept       json
// @Produce      json
// @Param        body  body  model.CreateGlobalTagGroupRequest  true  "分组信息"
// @Success      201  {object}  response.Response{data=model.TagGroupResponse}  "创建成功"
// @Failure      409  {object}  response.Response  "已存在同名全局分组"
// @Router       /admin/tag-groups/global [post]
func (h *Handler) CreateGlobalGroup(c *gin.Context) {
	var req model.CreateGlobalTagGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "参数无效: "+err.Error())
		return
	}

	group, err := h.tagSvc.CreateGlobalGroup(c.Request.Context(), &req)
	if err != nil {
		failGroupError(c, err, "创建全局分组失败")
		return
	}
	response.SuccessWithStatus(c, http.StatusCreated, group, "创建成功")
}

// ListAllGroups 处理分页列出所有分组的请求。
// @Summary      列出所有标签分组
// @Description  分页列出系统中的全部分组，仅管理员可用
// @Tags         标签分组
// @Produce      json
// @Param        page      query  int  false  "页码"      default(1)
// @Param        pageSize  query  int  false  "每页条数"  default(20)
// @Success      200  {object}  response.Response  "获取成功"
// @Router       /admin/tag-groups [get]
func (h *Handler) ListAllGroups(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "20"))

	result, err := h.tagSvc.ListAllGroups(c.Request.Context(), &repository.PageQuery{
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, "获取分组列表失败: "+err.Error())
		return
	}
	response.Success(c, gin.H{
		"list":  result.Items,
		"total": result.Total,
	}, "获取成功")
}

// DeleteGlobalGroup 处理删除全局分组的请求。
// @Summary      删除全局标签分组
// @Description  删除全局分组及其下全部标签，仅管理员可用
// @Tags         标签分组
// @Produce      json
// @Param        id  path  string  true  "分组ID"
// @Success      200  {object}  response.Response  "删除成功"
// @Failure      404  {object}  response.Response  "分组不存在"
// @Router       /admin/tag-groups/{id} [delete]
func (h *Handler) DeleteGlobalGroup(c *gin.Context) {
	if err := h.tagSvc.DeleteGlobalGroup(c.Request.Context(), c.Param("id")); err != nil {
		failGroupError(c, err, "删除全局分组失败")
		return
	}
	response.Success(c, nil, "删除成功")
}

// failGroupError 把业务错误翻译为对应的 HTTP 状态码
func failGroupError(c *gin.Context, err error, prefix string) {
	switch err {
	case constant.ErrNotFound, constant.ErrInvalidPublicID:
		response.Fail(c, http.StatusNotFound, "分组不存在")
	case constant.ErrNotGroupOwner, constant.ErrForbidden:
		response.Fail(c, http.StatusForbidden, "无权操作该分组")
	case constant.ErrGroupNameConflict:
		response.Fail(c, http.StatusConflict, err.Error())
	case constant.ErrBadRequest:
		response.Fail(c, http.StatusBadRequest, "分组名称不能为空")
	case constant.ErrTagTooLong:
		response.Fail(c, http.StatusBadRequest, err.Error())
	default:
		response.Fail(c, http.StatusInternalServerError, prefix+": "+err.Error())
	}
}
