package infra

import (
	"context"
	"errors"
	"fmt"

	"github.com/open-salary/salary-board/internal/domain/model"
	"github.com/open-salary/salary-board/internal/domain/repository"
	"gorm.io/gorm"
)

type companyClient struct {
	db *gorm.DB
}

func NewCompanyClient(db *gorm.DB) repository.CompanyRepository {
	return &companyClient{
		db: db,
	}
}

func (c *companyClient) FindByID(ctx context.Context, id int) (model.Company, bool, error) {
	var record CompanyRecord
	err := c.db.WithContext(ctx).First(&record, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Company{}, false, nil
	}
	if err != nil {
		return model.Company{}, false, fmt.Errorf("企業の検索に失敗しました: %w", err)
	}
	return record.ToDomain(), true, nil
}

func (c *companyClient) Create(ctx context.Context, company model.Company) error {
	record := ToCompanyRecord(company)
	if err := c.db.WithContext(ctx).Create(&record).Error; err != nil {
		return fmt.Errorf("企業の登録に失敗しました: %w", err)
	}
	return nil
}

func (c *companyClient) DeleteAll(ctx context.Context) error {
	if err := c.db.WithContext(ctx).Where("1 = 1").Delete(&CompanyRecord{}).Error; err != nil {
		return fmt.Errorf("企業の全削除に失敗しました: %w", err)
	}
	return nil
}
