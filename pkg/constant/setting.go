package constant

// SettingKey 是系统设置表中配置键的类型
type SettingKey string

func (k SettingKey) String() string {
	return string(k)
}

const (
	// KeyJWTSecret 是签发 JWT 使用的密钥，首次启动时自动生成并入库
	KeyJWTSecret SettingKey = "jwt_secret"

	// KeyIDSeed 是公共ID编码器的字母表种子，入库以防被外部修改
	KeyIDSeed SettingKey = "id_seed"
)
