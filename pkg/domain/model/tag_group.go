/*
 * @Description:
 * @Author: 安知鱼
 * @Date: 2025-08-21 09:42:50
 * @LastEditTime: 2025-09-18 15:06:12
 * @LastEditors: 安知鱼
 */
package model

import "time"

// --- 核心领域对象 (Domain Object) ---

// TagGroup 是标签分组的核心领域模型。
// 分组即标签字段（如 "skills"），OwnerID 为空表示全局分组，对所有用户可见。
type TagGroup struct {
	ID        string
	DBID      uint
	CreatedAt time.Time
	UpdatedAt time.Time
	Name      string
	OwnerID   string // 所属用户的公共ID，全局分组为空
	IsGlobal  bool
}

// --- API 数据传输对象 (Data Transfer Objects) ---

// CreateGlobalTagGroupRequest 定义了创建全局标签分组的请求体（仅管理员）
type CreateGlobalTagGroupRequest struct {
	Name string `json:"name" binding:"required,max=100"`
}

// TagGroupResponse 定义了标签分组的标准 API 响应结构
type TagGroupResponse struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	Name      string    `json:"name"`
	OwnerID   string    `json:"owner_id,omitempty"`
	IsGlobal  bool      `json:"is_global"`
}
