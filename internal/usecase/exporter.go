package usecase

import (
	"context"
	"fmt"

	"github.com/open-salary/salary-board/internal/domain/model"
	"github.com/open-salary/salary-board/internal/domain/repository"
	"github.com/open-salary/salary-board/internal/infra"
	"github.com/open-salary/salary-board/internal/logger"
)

// 1回のクエリで読み出す行数
const exportPageSize = 1000

// CompensationCSVHeadersは、エクスポートするCSVのヘッダー行です。
// 並びはCompensationRowのフィールド順と一致させています。
var CompensationCSVHeaders = []string{
	"companyName",
	"jobTitle",
	"age",
	"grade",
	"avgOvertimeHours",
	"annualSalary",
	"baseSalary",
	"bonusIncentive",
	"rsu",
	"stockOptions",
}

// ExporterArgsは、エクスポートユースケースを構築するための引数を保持します。
type ExporterArgs struct {
	Salaries repository.SalaryRepository
	Exporter infra.FileExporter
	Logger   logger.AppLogger
}

// exportCompensationUseCaseは、蓄積済みの給与レコードを年収の降順で
// CSVファイルへ書き出すユースケースです。
type exportCompensationUseCase struct {
	salaries repository.SalaryRepository
	exporter infra.FileExporter
	logger   logger.AppLogger
}

func NewExportCompensationUseCase(args ExporterArgs) *exportCompensationUseCase {
	return &exportCompensationUseCase{
		salaries: args.Salaries,
		exporter: args.Exporter,
		logger:   args.Logger,
	}
}

// Runは、全ての給与レコードをページ単位で読み出してCSVへ書き込み、
// 書き出した行数を返します。
func (u *exportCompensationUseCase) Run(ctx context.Context) (int, error) {
	exported := 0

	for offset := 0; ; offset += exportPageSize {
		query := model.SalaryQuery{
			Sort:   model.SortByAnnualSalary,
			Order:  model.OrderDesc,
			Limit:  exportPageSize,
			Offset: offset,
		}

		rows, total, err := u.salaries.FindPage(ctx, query)
		if err != nil {
			return exported, fmt.Errorf("給与レコードの読み出しに失敗しました: %w", err)
		}

		for _, row := range rows {
			if err := u.exporter.Write(row); err != nil {
				return exported, fmt.Errorf("CSVへの書き込みに失敗しました: %w", err)
			}
			exported++
		}

		if len(rows) < exportPageSize || int64(exported) >= total {
			break
		}
	}

	u.logger.Info("CSVエクスポートが完了しました", "rows", exported)

	return exported, nil
}
