package model

// Companyは、給与投稿が参照する企業です。IDは投稿元サイトの企業IDをそのまま使います。
// 名前は最初に出現したカードのものを採用し、以後更新しません。
type Company struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Occupationは職種です。名前の完全一致で同一性を判定します。
type Occupation struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// SalaryRecordは、永続化される給与投稿です。IDは給与カードの給与IDで、
// 一度挿入したレコードは更新されません。
type SalaryRecord struct {
	ID            string   `json:"id"`
	CompanyID     int      `json:"company_id"`
	OccupationID  string   `json:"occupation_id"`
	Age           int      `json:"age"`
	Grade         *string  `json:"grade"`
	OvertimeHours *float64 `json:"overtime_hours"`
	AnnualSalary  float64  `json:"annual_salary"`
	BaseSalary    float64  `json:"base_salary"`
	Bonus         *float64 `json:"bonus"`
	StockOptions  *float64 `json:"stock_options"`
	RSU           *float64 `json:"rsu"`
}

// NewSalaryRecordは、抽出済みカードと解決済みの企業・職種からレコードを組み立てます。
func NewSalaryRecord(card SalaryCard, company Company, occupation Occupation) SalaryRecord {
	return SalaryRecord{
		ID:            card.SalaryID(),
		CompanyID:     company.ID,
		OccupationID:  occupation.ID,
		Age:           card.Age(),
		Grade:         card.Grade(),
		OvertimeHours: card.OvertimeHours(),
		AnnualSalary:  card.AnnualSalary(),
		BaseSalary:    card.BaseSalary(),
		Bonus:         card.Bonus(),
		StockOptions:  card.StockOptions(),
		RSU:           card.RSU(),
	}
}
