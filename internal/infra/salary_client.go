package infra

import (
	"context"
	"fmt"

	"github.com/open-salary/salary-board/internal/domain/model"
	"github.com/open-salary/salary-board/internal/domain/repository"
	"gorm.io/gorm"
)

type salaryClient struct {
	db *gorm.DB
}

func NewSalaryClient(db *gorm.DB) repository.SalaryRepository {
	return &salaryClient{
		db: db,
	}
}

func (s *salaryClient) Exists(ctx context.Context, id string) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&SalaryRecord{}).Where("id = ?", id).Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("給与レコードの存在確認に失敗しました: %w", err)
	}
	return count > 0, nil
}

func (s *salaryClient) Create(ctx context.Context, record model.SalaryRecord) error {
	row := ToSalaryRecord(record)
	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		return fmt.Errorf("給与レコードの登録に失敗しました: %w", err)
	}
	return nil
}

// FindPageは、絞り込み条件に合う行を企業名・職種名付きで取得します。
// 同じ条件での総件数も合わせて返します。
func (s *salaryClient) FindPage(ctx context.Context, query model.SalaryQuery) ([]model.CompensationRow, int64, error) {
	base := s.db.WithContext(ctx).Model(&SalaryRecord{})

	if len(query.OccupationIDs) > 0 {
		base = base.Where("salaries.occupation_id IN ?", query.OccupationIDs)
	}
	if query.AgeFrom != nil {
		base = base.Where("salaries.age >= ?", *query.AgeFrom)
	}
	if query.AgeTo != nil {
		base = base.Where("salaries.age <= ?", *query.AgeTo)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("給与レコードの件数取得に失敗しました: %w", err)
	}

	var records []CompensationRowRecord
	err := base.
		Select("companies.name AS company_name, occupations.name AS occupation_name, " +
			"salaries.age, salaries.grade, salaries.overtime_hours, " +
			"salaries.annual_salary, salaries.base_salary, salaries.bonus, " +
			"salaries.stock_options, salaries.rsu").
		Joins("JOIN companies ON companies.id = salaries.company_id").
		Joins("JOIN occupations ON occupations.id = salaries.occupation_id").
		Order(orderClause(query)).
		Limit(query.Limit).
		Offset(query.Offset).
		Scan(&records).Error
	if err != nil {
		return nil, 0, fmt.Errorf("給与レコードの取得に失敗しました: %w", err)
	}

	rows := make([]model.CompensationRow, 0, len(records))
	for _, record := range records {
		rows = append(rows, record.ToDomain())
	}
	return rows, total, nil
}

func (s *salaryClient) DeleteAll(ctx context.Context) error {
	if err := s.db.WithContext(ctx).Where("1 = 1").Delete(&SalaryRecord{}).Error; err != nil {
		return fmt.Errorf("給与レコードの全削除に失敗しました: %w", err)
	}
	return nil
}

// orderClauseは、ソートキーを実カラム名に対応付けます。
// 未知のキーは既定の年収ソートに落とします。
func orderClause(query model.SalaryQuery) string {
	column := "salaries.annual_salary"
	switch query.Sort {
	case model.SortByAnnualSalary:
		column = "salaries.annual_salary"
	}

	if query.Order == model.OrderAsc {
		return column + " ASC"
	}
	return column + " DESC"
}
