package idgen

import "testing"

func TestGenerateAndDecodePublicID(t *testing.T) {
	if err := InitSqidsEncoder(); err != nil {
		t.Fatalf("初始化编码器失败: %v", err)
	}

	tests := []struct {
		name       string
		dbID       uint
		entityType uint64
	}{
		{"用户ID", 1, EntityTypeUser},
		{"标签分组ID", 42, EntityTypeTagGroup},
		{"标签ID", 99999, EntityTypeUserTag},
		{"对象ID", 7, EntityTypeTaggedItem},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			publicID, err := GeneratePublicID(tt.dbID, tt.entityType)
			if err != nil {
				t.Fatalf("GeneratePublicID(%d, %d) 失败: %v", tt.dbID, tt.entityType, err)
			}
			if len(publicID) < 4 {
				t.Errorf("公共ID长度不足: %q", publicID)
			}

			dbID, entityType, err := DecodePublicID(publicID)
			if err != nil {
				t.Fatalf("DecodePublicID(%q) 失败: %v", publicID, err)
			}
			if dbID != tt.dbID || entityType != tt.entityType {
				t.Errorf("解码结果 = (%d, %d), 期望 (%d, %d)", dbID, entityType, tt.dbID, tt.entityType)
			}
		})
	}
}

func TestDecodeInvalidPublicID(t *testing.T) {
	if err := InitSqidsEncoder(); err != nil {
		t.Fatalf("初始化编码器失败: %v", err)
	}

	if _, _, err := DecodePublicID("!!!"); err == nil {
		t.Error("解码非法公共ID应当返回错误")
	}
}

func TestSeededAlphabetIsDeterministic(t *testing.T) {
	a := shuffleAlphabet("abcdef0123456789abcdef0123456789")
	b := shuffleAlphabet("abcdef0123456789abcdef0123456789")
	if a != b {
		t.Error("相同种子应当生成相同的字母表")
	}
	if a == DefaultAlphabet {
		t.Error("使用种子后字母表应当被打乱")
	}
}
