package model

// SuggestOptions 是标签自动补全的查询选项
type SuggestOptions struct {
	Field  string // 标签字段名
	Prefix string // 用户已输入的前缀
	Limit  int    // 返回条数上限
}

// SuggestResponse 定义了自动补全的响应结构
type SuggestResponse struct {
	Field       string   `json:"field"`
	Prefix      string   `json:"prefix"`
	Suggestions []string `json:"suggestions"`
}
