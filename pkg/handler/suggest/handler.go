package suggest

import (
	"net/http"
	"strconv"

	"github.com/anzhiyu-c/user-tags/internal/app/middleware"
	"github.com/anzhiyu-c/user-tags/pkg/domain/model"
	"github.com/anzhiyu-c/user-tags/pkg/response"
	"github.com/anzhiyu-c/user-tags/pkg/service/suggest"

	"github.com/gin-gonic/gin"
)

// Handler 负责处理标签自动补全的 API 请求。
type Handler struct {
	suggestSvc suggest.Service
}

// NewHandler 是 Handler 的构造函数。
func NewHandler(suggestSvc suggest.Service) *Handler {
	return &Handler{suggestSvc: suggestSvc}
}

// Suggest 处理自动补全的请求。
// @Summary      标签自动补全
// @Description  按前缀匹配当前用户可见的标签，按引用数降序返回
// @Tags         标签
// @Produce      json
// @Param        field  query  string  true   "标签字段名"
// @Param        q      query  string  true   "已输入的前缀"
// @Param        limit  query  int     false  "返回条数上限"
// @Success      200  {object}  response.Response{data=model.SuggestResponse}  "获取成功"
// @Router       /tags/suggest [get]
func (h *Handler) Suggest(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		response.Fail(c, http.StatusUnauthorized, "未登录")
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))
	opts := &model.SuggestOptions{
		Field:  c.Query("field"),
		Prefix: c.Query("q"),
		Limit:  limit,
	}

	result, err := h.suggestSvc.Suggest(c.Request.Context(), userID, opts)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, "获取补全建议失败: "+err.Error())
		return
	}
	response.Success(c, result, "获取成功")
}
