package infra

import (
	"github.com/open-salary/salary-board/internal/domain/model"
)

type CompanyRecord struct {
	ID   int    `gorm:"primaryKey"`
	Name string `gorm:"not null"`
}

func (CompanyRecord) TableName() string {
	return "companies"
}

func (c *CompanyRecord) ToDomain() model.Company {
	return model.Company{
		ID:   c.ID,
		Name: c.Name,
	}
}

func ToCompanyRecord(company model.Company) CompanyRecord {
	return CompanyRecord{
		ID:   company.ID,
		Name: company.Name,
	}
}

type OccupationRecord struct {
	ID   string `gorm:"primaryKey"`
	Name string `gorm:"not null;index"`
}

func (OccupationRecord) TableName() string {
	return "occupations"
}

func (o *OccupationRecord) ToDomain() model.Occupation {
	return model.Occupation{
		ID:   o.ID,
		Name: o.Name,
	}
}

func ToOccupationRecord(occupation model.Occupation) OccupationRecord {
	return OccupationRecord{
		ID:   occupation.ID,
		Name: occupation.Name,
	}
}

type SalaryRecord struct {
	ID            string   `gorm:"primaryKey"`
	CompanyID     int      `gorm:"not null;index"`
	OccupationID  string   `gorm:"not null;index"`
	Age           int      `gorm:"not null"`
	Grade         *string
	OvertimeHours *float64
	AnnualSalary  float64 `gorm:"not null;index"`
	BaseSalary    float64 `gorm:"not null"`
	Bonus         *float64
	StockOptions  *float64
	RSU           *float64

	Company    CompanyRecord    `gorm:"foreignKey:CompanyID"`
	Occupation OccupationRecord `gorm:"foreignKey:OccupationID"`
}

func (SalaryRecord) TableName() string {
	return "salaries"
}

func ToSalaryRecord(record model.SalaryRecord) SalaryRecord {
	return SalaryRecord{
		ID:            record.ID,
		CompanyID:     record.CompanyID,
		OccupationID:  record.OccupationID,
		Age:           record.Age,
		Grade:         record.Grade,
		OvertimeHours: record.OvertimeHours,
		AnnualSalary:  record.AnnualSalary,
		BaseSalary:    record.BaseSalary,
		Bonus:         record.Bonus,
		StockOptions:  record.StockOptions,
		RSU:           record.RSU,
	}
}

// CompensationRowRecordは、一覧クエリのJOIN結果を受け取るための行です。
type CompensationRowRecord struct {
	CompanyName    string
	OccupationName string
	Age            int
	Grade          *string
	OvertimeHours  *float64
	AnnualSalary   float64
	BaseSalary     float64
	Bonus          *float64
	StockOptions   *float64
	RSU            *float64
}

func (r *CompensationRowRecord) ToDomain() model.CompensationRow {
	return model.CompensationRow{
		CompanyName:    r.CompanyName,
		JobTitle:       r.OccupationName,
		Age:            r.Age,
		Grade:          r.Grade,
		AvgOvertime:    r.OvertimeHours,
		AnnualSalary:   r.AnnualSalary,
		BaseSalary:     r.BaseSalary,
		BonusIncentive: r.Bonus,
		RSU:            r.RSU,
		StockOptions:   r.StockOptions,
	}
}
