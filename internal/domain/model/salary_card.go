package model

import (
	"fmt"
	"strings"
)

// UnknownOccupationは、職種が特定できなかったカードに割り当てる既定値です。
const UnknownOccupation = "不明"

const (
	minAge = 18
	maxAge = 70
)

// SalaryCardArgsは、SalaryCardを構築するための引数を保持します。
// 金額はすべて万円単位です。nilのフィールドは「記載なし」を表します。
type SalaryCardArgs struct {
	SalaryID       string
	CompanyID      int
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

// SalaryCardは、HTMLの給与カード1枚から抽出した投稿データです。
// NewSalaryCardを通過したインスタンスは全ての制約を満たしています。
type SalaryCard struct {
	salaryID       string
	companyID      int
	companyName    string
	occupationName string
	age            int
	grade          *string
	overtimeHours  *float64
	annualSalary   float64
	baseSalary     float64
	bonus          *float64
	stockOptions   *float64
	rsu            *float64
}

// NewSalaryCardは、引数を検証してSalaryCardを生成します。
// 制約を満たさない場合はエラーを返し、部分的なカードは決して生成しません。
func NewSalaryCard(args SalaryCardArgs) (SalaryCard, error) {
	if args.SalaryID == "" {
		return SalaryCard{}, fmt.Errorf("給与IDが空です")
	}
	if args.CompanyID <= 0 {
		return SalaryCard{}, fmt.Errorf("企業IDが不正です: %d", args.CompanyID)
	}

	companyName := strings.TrimSpace(args.CompanyName)
	if companyName == "" {
		return SalaryCard{}, fmt.Errorf("企業名が空です")
	}

	if args.Age < minAge || args.Age > maxAge {
		return SalaryCard{}, fmt.Errorf("年齢が範囲外です: %d", args.Age)
	}

	if args.AnnualSalary <= 0 {
		return SalaryCard{}, fmt.Errorf("年収が抽出できませんでした")
	}
	if args.BaseSalary <= 0 {
		return SalaryCard{}, fmt.Errorf("基本給が抽出できませんでした")
	}

	occupationName := strings.TrimSpace(args.OccupationName)
	if occupationName == "" {
		occupationName = UnknownOccupation
	}

	return SalaryCard{
		salaryID:       args.SalaryID,
		companyID:      args.CompanyID,
		companyName:    companyName,
		occupationName: occupationName,
		age:            args.Age,
		grade:          args.Grade,
		overtimeHours:  args.OvertimeHours,
		annualSalary:   args.AnnualSalary,
		baseSalary:     args.BaseSalary,
		bonus:          args.Bonus,
		stockOptions:   args.StockOptions,
		rsu:            args.RSU,
	}, nil
}

func (c SalaryCard) SalaryID() string {
	return c.salaryID
}

func (c SalaryCard) CompanyID() int {
	return c.companyID
}

func (c SalaryCard) CompanyName() string {
	return c.companyName
}

func (c SalaryCard) OccupationName() string {
	return c.occupationName
}

func (c SalaryCard) Age() int {
	return c.age
}

func (c SalaryCard) Grade() *string {
	return c.grade
}

func (c SalaryCard) OvertimeHours() *float64 {
	return c.overtimeHours
}

func (c SalaryCard) AnnualSalary() float64 {
	return c.annualSalary
}

func (c SalaryCard) BaseSalary() float64 {
	return c.baseSalary
}

func (c SalaryCard) Bonus() *float64 {
	return c.bonus
}

func (c SalaryCard) StockOptions() *float64 {
	return c.stockOptions
}

func (c SalaryCard) RSU() *float64 {
	return c.rsu
}
