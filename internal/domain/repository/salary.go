package repository

import (
	"context"

	"github.com/open-salary/salary-board/internal/domain/model"
)

type CompanyRepository interface {
	FindByID(ctx context.Context, id int) (model.Company, bool, error)
	Create(ctx context.Context, company model.Company) error
	DeleteAll(ctx context.Context) error
}

type OccupationRepository interface {
	FindByName(ctx context.Context, name string) (model.Occupation, bool, error)
	FindAllByNameAsc(ctx context.Context) ([]model.Occupation, error)
	Create(ctx context.Context, occupation model.Occupation) error
	DeleteAll(ctx context.Context) error
}

type SalaryRepository interface {
	Exists(ctx context.Context, id string) (bool, error)
	Create(ctx context.Context, record model.SalaryRecord) error
	// FindPageは条件に合う行と、同じ条件での総件数を返します。
	FindPage(ctx context.Context, query model.SalaryQuery) ([]model.CompensationRow, int64, error)
	DeleteAll(ctx context.Context) error
}
