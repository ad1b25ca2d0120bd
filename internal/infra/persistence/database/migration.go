/*
 * @Description: SQL 数据迁移（处理 Ent 无法表达的方言特定索引）
 * @Author: 安知鱼
 * @Date: 2025-08-21 14:30:12
 * @LastEditTime: 2025-10-12 10:02:55
 * @LastEditors: 安知鱼
 */
package database

import (
	"context"
	"database/sql"
	"fmt"
	"log"
)

// MigrationService 负责执行 Ent Schema 迁移之外的原生 SQL 迁移。
type MigrationService struct {
	db     *sql.DB
	dbType string
}

// NewMigrationService 是 MigrationService 的构造函数。
func NewMigrationService(db *sql.DB, dbType string) *MigrationService {
	return &MigrationService{
		db:     db,
		dbType: dbType,
	}
}

// RunMigrations 执行所有原生 SQL 迁移。
func (m *MigrationService) RunMigrations(ctx context.Context) error {
	if err := m.createTagTextPrefixIndex(ctx); err != nil {
		return err
	}
	return nil
}

// createTagTextPrefixIndex 为标签自动补全创建 lower(text) 前缀索引。
// PostgreSQL 和 SQLite 支持表达式索引；MySQL 的 utf8mb4_* 排序规则本身
// 大小写不敏感，普通索引即可命中 LIKE 'prefix%' 查询。
func (m *MigrationService) createTagTextPrefixIndex(ctx context.Context) error {
	var stmt string
	switch m.dbType {
	case "postgres":
		stmt = `CREATE INDEX IF NOT EXISTS idx_user_tags_text_lower ON user_tags (lower(text) text_pattern_ops)`
	case "sqlite", "sqlite3":
		stmt = `CREATE INDEX IF NOT EXISTS idx_user_tags_text_lower ON user_tags (lower(text))`
	case "mysql", "mariadb":
		// MySQL 不支持 IF NOT EXISTS 建索引，重复执行报错可以忽略
		stmt = `CREATE INDEX idx_user_tags_text ON user_tags (text)`
	default:
		return nil
	}

	if _, err := m.db.ExecContext(ctx, stmt); err != nil {
		if m.dbType == "mysql" || m.dbType == "mariadb" {
			// 1061: Duplicate key name
			log.Printf("提示: 创建标签前缀索引被跳过（可能已存在）: %v", err)
			return nil
		}
		return fmt.Errorf("创建标签前缀索引失败: %w", err)
	}
	return nil
}
