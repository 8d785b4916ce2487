package database

import (
	"Quill/internal/model"
	"fmt"
	log "log/slog"

	"gorm.io/gorm"
)

// Models 需要建表的全部模型，顺序即外键依赖顺序
func Models() []any {
	return []any{
		&model.Category{},
		&model.Tag{},
		&model.Post{},
		&model.PostTag{},
	}
}

// AutoMigrate 建表（已存在的表只补齐缺失的列与索引）
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("auto migrate failed: %w", err)
	}
	log.Info("Database schema migrated.")
	return nil
}
