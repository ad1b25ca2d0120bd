package user_tag

import (
	"net/http"

	"github.com/anzhiyu-c/user-tags/internal/app/middleware"
	"github.com/anzhiyu-c/user-tags/pkg/constant"
	"github.com/anzhiyu-c/user-tags/pkg/domain/model"
	"github.com/anzhiyu-c/user-tags/pkg/response"
	"github.com/anzhiyu-c/user-tags/pkg/service/tag"

	"github.com/gin-gonic/gin"
)

// Handler 负责处理标签管理相关的 API 请求。
type Handler struct {
	tagSvc tag.Service
}

// NewHandler 是 Handler 的构造函数。
func NewHandler(tagSvc tag.Service) *Handler {
	return &Handler{tagSvc: tagSvc}
}

// ListTags 处理列出标签的请求。
// @Summary      列出标签
// @Description  列出当前用户可见的标签，支持按字段筛选和排序
// @Tags         标签
// @Produce      json
// @Param        field  query  string  false  "标签字段名，空表示全部"
// @Param        sort   query  string  false  "排序方式：count 或 text"  default(count)
// @Success      200  {object}  response.Response{data=[]model.UserTagResponse}  "获取成功"
// @Router       /tags [get]
func (h *Handler) ListTags(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		response.Fail(c, http.StatusUnauthorized, "未登录")
		return
	}

	options := &model.ListUserTagsOptions{
		Field:  c.Query("field"),
		SortBy: c.DefaultQuery("sort", model.SortByCount),
	}

	tags, err := h.tagSvc.ListTags(c.Request.Context(), userID, options)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, "获取标签列表失败: "+err.Error())
		return
	}
	response.Success(c, tags, "获取成功")
}

// RenameTag 处理重命名标签的请求。
// @Summary      重命名标签
// @Description  修改自己分组下某个标签的文本
// @Tags         标签
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "标签ID"
// @Param        body  body  model.UpdateUserTagRequest  true  "新的标签文本"
// @Success      200  {object}  response.Response{data=model.UserTagResponse}  "重命名成功"
// @Failure      403  {object}  response.Response  "标签不属于当前用户"
// @Failure      404  {object}  response.Response  "标签不存在"
// @Failure      409  {object}  response.Response  "同分组下已有同名标签"
// @Router       /tags/{id} [put]
func (h *Handler) RenameTag(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		response.Fail(c, http.StatusUnauthorized, "未登录")
		return
	}

	var req model.UpdateUserTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "参数无效: "+err.Error())
		return
	}

	renamed, err := h.tagSvc.RenameTag(c.Request.Context(), userID, c.Param("id"), &req)
	if err != nil {
		failTagError(c, err, "重命名标签失败")
		return
	}
	response.Success(c, renamed, "重命名成功")
}

// DeleteTag 处理删除标签的请求。
// @Summary      删除标签
// @Description  删除自己分组下的某个标签，并从所有对象上摘除
// @Tags         标签
// @Produce      json
// @Param        id  path  string  true  "标签ID"
// @Success      200  {object}  response.Response  "删除成功"
// @Failure      403  {object}  response.Response  "标签不属于当前用户"
// @Failure      404  {object}  response.Response  "标签不存在"
// @Router       /tags/{id} [delete]
func (h *Handler) DeleteTag(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		response.Fail(c, http.StatusUnauthorized, "未登录")
		return
	}

	if err := h.tagSvc.DeleteTag(c.Request.Context(), userID, c.Param("id")); err != nil {
		failTagError(c, err, "删除标签失败")
		return
	}
	response.Success(c, nil, "删除成功")
}

// failTagError 把业务错误翻译为对应的 HTTP 状态码
func failTagError(c *gin.Context, err error, prefix string) {
	switch err {
	case constant.ErrNotFound, constant.ErrInvalidPublicID:
		response.Fail(c, http.StatusNotFound, "标签不存在")
	case constant.ErrNotGroupOwner:
		response.Fail(c, http.StatusForbidden, err.Error())
	case constant.ErrTagNameConflict:
		response.Fail(c, http.StatusConflict, err.Error())
	case constant.ErrBadRequest:
		response.Fail(c, http.StatusBadRequest, "标签文本不能为空")
	case constant.ErrTagTooLong:
		response.Fail(c, http.StatusBadRequest, err.Error())
	default:
		response.Fail(c, http.StatusInternalServerError, prefix+": "+err.Error())
	}
}
