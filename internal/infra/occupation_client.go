package infra

import (
	"context"
	"errors"
	"fmt"

	"github.com/open-salary/salary-board/internal/domain/model"
	"github.com/open-salary/salary-board/internal/domain/repository"
	"gorm.io/gorm"
)

type occupationClient struct {
	db *gorm.DB
}

func NewOccupationClient(db *gorm.DB) repository.OccupationRepository {
	return &occupationClient{
		db: db,
	}
}

// FindByNameは、名前の完全一致（大文字小文字を区別する）で職種を検索します。
func (o *occupationClient) FindByName(ctx context.Context, name string) (model.Occupation, bool, error) {
	var record OccupationRecord
	err := o.db.WithContext(ctx).First(&record, "name = ?", name).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Occupation{}, false, nil
	}
	if err != nil {
		return model.Occupation{}, false, fmt.Errorf("職種の検索に失敗しました: %w", err)
	}
	return record.ToDomain(), true, nil
}

func (o *occupationClient) FindAllByNameAsc(ctx context.Context) ([]model.Occupation, error) {
	var records []OccupationRecord
	if err := o.db.WithContext(ctx).Order("name ASC").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("職種一覧の取得に失敗しました: %w", err)
	}

	occupations := make([]model.Occupation, 0, len(records))
	for _, record := range records {
		occupations = append(occupations, record.ToDomain())
	}
	return occupations, nil
}

func (o *occupationClient) Create(ctx context.Context, occupation model.Occupation) error {
	record := ToOccupationRecord(occupation)
	if err := o.db.WithContext(ctx).Create(&record).Error; err != nil {
		return fmt.Errorf("職種の登録に失敗しました: %w", err)
	}
	return nil
}

func (o *occupationClient) DeleteAll(ctx context.Context) error {
	if err := o.db.WithContext(ctx).Where("1 = 1").Delete(&OccupationRecord{}).Error; err != nil {
		return fmt.Errorf("職種の全削除に失敗しました: %w", err)
	}
	return nil
}
