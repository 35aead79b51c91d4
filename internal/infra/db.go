package infra

import (
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDBは、SQLiteデータベースへ接続し、スキーマを最新化して返します。
func NewDB(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("データベースへの接続に失敗しました: %w", err)
	}

	if err := db.AutoMigrate(&CompanyRecord{}, &OccupationRecord{}, &SalaryRecord{}); err != nil {
		return nil, fmt.Errorf("マイグレーションに失敗しました: %w", err)
	}

	return db, nil
}
