package auth

import (
	"testing"

	"github.com/anzhiyu-c/user-tags/pkg/idgen"
)

func TestGenerateAndParseToken(t *testing.T) {
	if err := idgen.InitSqidsEncoder(); err != nil {
		t.Fatalf("初始化ID编码器失败: %v", err)
	}

	secret := []byte("test-secret")

	token, err := GenerateToken(1, []byte("perm"), 1, secret)
	if err != nil {
		t.Fatalf("生成 Access Token 失败: %v", err)
	}

	claims, err := ParseToken(token, secret)
	if err != nil {
		t.Fatalf("解析 Access Token 失败: %v", err)
	}

	userID, entityType, err := idgen.DecodePublicID(claims.UserID)
	if err != nil {
		t.Fatalf("解码用户公共ID失败: %v", err)
	}
	if userID != 1 || entityType != idgen.EntityTypeUser {
		t.Errorf("用户ID解码结果 = (%d, %d), 期望 (1, %d)", userID, entityType, idgen.EntityTypeUser)
	}
	if claims.Issuer != "user-tags" {
		t.Errorf("Issuer = %q, 期望 user-tags", claims.Issuer)
	}
}

func TestParseTokenWithWrongSecret(t *testing.T) {
	if err := idgen.InitSqidsEncoder(); err != nil {
		t.Fatalf("初始化ID编码器失败: %v", err)
	}

	token, err := GenerateToken(1, nil, 1, []byte("secret-a"))
	if err != nil {
		t.Fatalf("生成 Token 失败: %v", err)
	}

	if _, err := ParseToken(token, []byte("secret-b")); err == nil {
		t.Error("使用错误密钥解析应当失败")
	}
}

func TestRefreshTokenCarriesJTI(t *testing.T) {
	if err := idgen.InitSqidsEncoder(); err != nil {
		t.Fatalf("初始化ID编码器失败: %v", err)
	}

	secret := []byte("test-secret")
	token, err := GenerateRefreshToken(7, secret)
	if err != nil {
		t.Fatalf("生成 Refresh Token 失败: %v", err)
	}

	claims, err := ParseToken(token, secret)
	if err != nil {
		t.Fatalf("解析 Refresh Token 失败: %v", err)
	}
	if claims.ID == "" {
		t.Error("Refresh Token 应当携带 JTI")
	}
}
