/*
 * @Description:
 * @Author: 安知鱼
 * @Date: 2025-08-21 09:55:02
 * @LastEditTime: 2025-09-18 15:10:44
 * @LastEditors: 安知鱼
 */
package model

import "time"

// --- 核心领域对象 (Domain Object) ---

// TaggedItem 是被打标签对象的核心领域模型。
// 一个 (content_type, object_id) 对只有一条记录，不同用户的标签都挂在它上面。
type TaggedItem struct {
	ID          string
	DBID        uint
	CreatedAt   time.Time
	UpdatedAt   time.Time
	ContentType string
	ObjectID    string
}

// --- API 数据传输对象 (Data Transfer Objects) ---

// ApplyTagsRequest 定义了为对象打标签的请求体。
// Tags 是逗号分隔的标签文本，语义与表单字段一致：
// 拆分、去首尾空白、去空项、按出现顺序去重。
type ApplyTagsRequest struct {
	Field string `json:"field" binding:"required,max=100"`
	Tags  string `json:"tags" binding:"max=4000"`
}

// ItemTagsResponse 定义了对象标签查询的响应结构，按标签字段分组
type ItemTagsResponse struct {
	ContentType string                       `json:"content_type"`
	ObjectID    string                       `json:"object_id"`
	Fields      map[string][]UserTagResponse `json:"fields"`
}
