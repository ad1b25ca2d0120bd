/*
 * @Description:
 * @Author: 安知鱼
 * @Date: 2025-08-21 09:48:33
 * @LastEditTime: 2025-09-18 15:08:27
 * @LastEditors: 安知鱼
 */
package model

import "time"

// --- 核心领域对象 (Domain Object) ---

// UserTag 是用户标签的核心领域模型。
type UserTag struct {
	ID        string
	DBID      uint
	CreatedAt time.Time
	UpdatedAt time.Time
	Text      string
	Count     int
	GroupID   string // 所属分组的公共ID
	GroupName string // 所属分组名称，即标签字段名
}

// --- API 数据传输对象 (Data Transfer Objects) ---

// UpdateUserTagRequest 定义了重命名标签的请求体
type UpdateUserTagRequest struct {
	Text string `json:"text" binding:"required,max=100"`
}

// UserTagResponse 定义了用户标签的标准 API 响应结构
type UserTagResponse struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Text      string    `json:"text"`
	Count     int       `json:"count"`
	GroupID   string    `json:"group_id"`
	GroupName string    `json:"group_name"`
}

const (
	SortByCount = "count" // 按引用数排序
	SortByText  = "text"  // 按文本排序
)

// ListUserTagsOptions 是标签列表查询的选项
type ListUserTagsOptions struct {
	Field  string // 标签字段名，空表示全部分组
	SortBy string
}
