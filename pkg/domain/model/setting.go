package model

// Setting 是系统设置的核心领域模型。
type Setting struct {
	ConfigKey string
	Value     string
	Comment   string
}
