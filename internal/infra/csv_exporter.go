package infra

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/open-salary/salary-board/internal/domain/model"
)

type FileExporter interface {
	Write(row model.CompensationRow) error
	Close() error
}

// CSVExporterは、給与一覧の1行をCSVファイルへ書き出します。
type CSVExporter struct {
	file   *os.File
	writer *csv.Writer
}

func formatOptionalFloat(p *float64) string {
	if p == nil {
		return ""
	}
	return strconv.FormatFloat(*p, 'f', -1, 64)
}

func formatOptionalString(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func NewCSVExporter(filePath string, headers []string) (*CSVExporter, error) {
	dir := filepath.Dir(filePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("出力ディレクトリの作成に失敗しました: %w", err)
	}

	file, err := os.Create(filePath)
	if err != nil {
		return nil, fmt.Errorf("CSVファイルの作成に失敗しました: %w", err)
	}

	writer := csv.NewWriter(file)

	if err := writer.Write(headers); err != nil {
		return nil, fmt.Errorf("CSVヘッダーの書き込みに失敗しました: %w", err)
	}

	return &CSVExporter{
		file:   file,
		writer: writer,
	}, nil
}

func (c *CSVExporter) Write(row model.CompensationRow) error {
	record := []string{
		row.CompanyName,
		row.JobTitle,
		strconv.Itoa(row.Age),
		formatOptionalString(row.Grade),
		formatOptionalFloat(row.AvgOvertime),
		strconv.FormatFloat(row.AnnualSalary, 'f', -1, 64),
		strconv.FormatFloat(row.BaseSalary, 'f', -1, 64),
		formatOptionalFloat(row.BonusIncentive),
		formatOptionalFloat(row.RSU),
		formatOptionalFloat(row.StockOptions),
	}

	return c.writer.Write(record)
}

func (c *CSVExporter) Close() error {
	c.writer.Flush()
	if err := c.writer.Error(); err != nil {
		c.file.Close()
		return fmt.Errorf("CSVの書き込みに失敗しました: %w", err)
	}
	return c.file.Close()
}
