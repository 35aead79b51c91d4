package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/open-salary/salary-board/internal/domain/model"
)

type pagedSalaryRepo struct {
	rows []model.CompensationRow
}

func (r *pagedSalaryRepo) Exists(_ context.Context, _ string) (bool, error) {
	return false, nil
}

func (r *pagedSalaryRepo) Create(_ context.Context, _ model.SalaryRecord) error {
	return nil
}

func (r *pagedSalaryRepo) FindPage(_ context.Context, query model.SalaryQuery) ([]model.CompensationRow, int64, error) {
	total := int64(len(r.rows))
	if query.Offset >= len(r.rows) {
		return nil, total, nil
	}
	end := query.Offset + query.Limit
	if end > len(r.rows) {
		end = len(r.rows)
	}
	return r.rows[query.Offset:end], total, nil
}

func (r *pagedSalaryRepo) DeleteAll(_ context.Context) error {
	return nil
}

type collectingExporter struct {
	rows     []model.CompensationRow
	writeErr error
}

func (e *collectingExporter) Write(row model.CompensationRow) error {
	if e.writeErr != nil {
		return e.writeErr
	}
	e.rows = append(e.rows, row)
	return nil
}

func (e *collectingExporter) Close() error {
	return nil
}

func compensationRows(n int) []model.CompensationRow {
	rows := make([]model.CompensationRow, 0, n)
	for i := 0; i < n; i++ {
		rows = append(rows, model.CompensationRow{
			CompanyName:  fmt.Sprintf("会社%d", i),
			JobTitle:     "エンジニア",
			Age:          30,
			AnnualSalary: float64(1000 - i),
			BaseSalary:   600,
		})
	}
	return rows
}

func TestExportWritesAllRows(t *testing.T) {
	exporter := &collectingExporter{}
	usecase := NewExportCompensationUseCase(ExporterArgs{
		Salaries: &pagedSalaryRepo{rows: compensationRows(3)},
		Exporter: exporter,
		Logger:   nopLogger{},
	})

	exported, err := usecase.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if exported != 3 {
		t.Errorf("Run() = %d, want 3", exported)
	}
	if len(exporter.rows) != 3 {
		t.Fatalf("exported rows = %d, want 3", len(exporter.rows))
	}
	if exporter.rows[0].CompanyName != "会社0" {
		t.Errorf("first row = %q, want 会社0", exporter.rows[0].CompanyName)
	}
}

func TestExportPagesThroughLargeResults(t *testing.T) {
	// ページサイズを超える件数でも全行が1回ずつ書き出されること
	count := exportPageSize + 5
	exporter := &collectingExporter{}
	usecase := NewExportCompensationUseCase(ExporterArgs{
		Salaries: &pagedSalaryRepo{rows: compensationRows(count)},
		Exporter: exporter,
		Logger:   nopLogger{},
	})

	exported, err := usecase.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if exported != count {
		t.Errorf("Run() = %d, want %d", exported, count)
	}
}

func TestExportEmptyStore(t *testing.T) {
	exporter := &collectingExporter{}
	usecase := NewExportCompensationUseCase(ExporterArgs{
		Salaries: &pagedSalaryRepo{},
		Exporter: exporter,
		Logger:   nopLogger{},
	})

	exported, err := usecase.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if exported != 0 {
		t.Errorf("Run() = %d, want 0", exported)
	}
}

func TestExportStopsOnWriteError(t *testing.T) {
	exporter := &collectingExporter{writeErr: errors.New("disk full")}
	usecase := NewExportCompensationUseCase(ExporterArgs{
		Salaries: &pagedSalaryRepo{rows: compensationRows(3)},
		Exporter: exporter,
		Logger:   nopLogger{},
	})

	if _, err := usecase.Run(context.Background()); err == nil {
		t.Fatal("Run() error = nil, want error")
	}
}
