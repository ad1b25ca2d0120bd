package tagged_item

import (
	"net/http"

	"github.com/anzhiyu-c/user-tags/internal/app/middleware"
	"github.com/anzhiyu-c/user-tags/pkg/constant"
	"github.com/anzhiyu-c/user-tags/pkg/domain/model"
	"github.com/anzhiyu-c/user-tags/pkg/response"
	"github.com/anzhiyu-c/user-tags/pkg/service/tagging"

	"github.com/gin-gonic/gin"
)

// Handler 负责处理对象打标相关的 API 请求。
// 路由形如 /items/:type/:id/tags，type 和 id 共同定位被打标的对象。
type Handler struct {
	taggingSvc tagging.Service
}

// NewHandler 是 Handler 的构造函数。
func NewHandler(taggingSvc tagging.Service) *Handler {
	return &Handler{taggingSvc: taggingSvc}
}

// ApplyTags 处理为对象打标签的请求。
// @Summary      为对象打标签
// @Description  把逗号分隔的标签文本施加到对象的指定字段上，整体替换该字段下的旧标签
// @Tags         对象打标
// @Accept       json
// @Produce      json
// @Param        type  path  string  true  "对象类型，如 article"
// @Param        id    path  string  true  "对象标识"
// @Param        body  body  model.ApplyTagsRequest  true  "字段名与标签文本"
// @Success      200  {object}  response.Response{data=model.ItemTagsResponse}  "打标成功"
// @Failure      400  {object}  response.Response  "参数无效"
// @Router       /items/{type}/{id}/tags [put]
func (h *Handler) ApplyTags(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		response.Fail(c, http.StatusUnauthorized, "未登录")
		return
	}

	var req model.ApplyTagsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "参数无效: "+err.Error())
		return
	}

	result, err := h.taggingSvc.Apply(c.Request.Context(), userID, c.Param("type"), c.Param("id"), &req)
	if err != nil {
		switch err {
		case constant.ErrBadRequest:
			response.Fail(c, http.StatusBadRequest, "标签字段名不能为空")
		case constant.ErrTagTooLong:
			response.Fail(c, http.StatusBadRequest, err.Error())
		default:
			response.Fail(c, http.StatusInternalServerError, "打标失败: "+err.Error())
		}
		return
	}
	response.Success(c, result, "打标成功")
}

// GetItemTags 处理查询对象标签的请求。
// @Summary      查询对象标签
// @Description  查询对象上当前用户可见的标签，按字段分组返回
// @Tags         对象打标
// @Produce      json
// @Param        type  path  string  true  "对象类型"
// @Param        id    path  string  true  "对象标识"
// @Success      200  {object}  response.Response{data=model.ItemTagsResponse}  "获取成功"
// @Router       /items/{type}/{id}/tags [get]
func (h *Handler) GetItemTags(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		response.Fail(c, http.StatusUnauthorized, "未登录")
		return
	}

	result, err := h.taggingSvc.GetItemTags(c.Request.Context(), userID, c.Param("type"), c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, "获取对象标签失败: "+err.Error())
		return
	}
	response.Success(c, result, "获取成功")
}

// ClearItemTags 处理清除对象标签的请求。
// @Summary      清除对象标签
// @Description  清除对象上当前用户自己的标签；field 查询参数为空时清除全部字段
// @Tags         对象打标
// @Produce      json
// @Param        type   path   string  true   "对象类型"
// @Param        id     path   string  true   "对象标识"
// @Param        field  query  string  false  "只清除指定字段"
// @Success      200  {object}  response.Response  "清除成功"
// @Router       /items/{type}/{id}/tags [delete]
func (h *Handler) ClearItemTags(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		response.Fail(c, http.StatusUnauthorized, "未登录")
		return
	}

	if err := h.taggingSvc.Clear(c.Request.Context(), userID, c.Param("type"), c.Param("id"), c.Query("field")); err != nil {
		response.Fail(c, http.StatusInternalServerError, "清除对象标签失败: "+err.Error())
		return
	}
	response.Success(c, nil, "清除成功")
}
