package model

// SortOrderは一覧取得時の並び順です。
type SortOrder string

const (
	OrderAsc  SortOrder = "asc"
	OrderDesc SortOrder = "desc"
)

// SortKeyはソート対象のカラムです。現状、年収のみをサポートします。
type SortKey string

const (
	SortByAnnualSalary SortKey = "annualSalary"
)

// SalaryQueryは、給与レコードの絞り込み・並び替え・ページング条件です。
// AgeFrom/AgeToはnilで「制限なし」、両端は閉区間です。
type SalaryQuery struct {
	OccupationIDs []string
	AgeFrom       *int
	AgeTo         *int
	Sort          SortKey
	Order         SortOrder
	Limit         int
	Offset        int
}

// CompensationRowは、一覧表示用に企業名・職種名を非正規化した1行です。
// JSONのフィールド名は一覧画面のテーブル仕様に合わせています。
type CompensationRow struct {
	CompanyName    string   `json:"companyName"`
	JobTitle       string   `json:"jobTitle"`
	Age            int      `json:"age"`
	Grade          *string  `json:"grade"`
	AvgOvertime    *float64 `json:"avgOvertimeHours"`
	AnnualSalary   float64  `json:"annualSalary"`
	BaseSalary     float64  `json:"baseSalary"`
	BonusIncentive *float64 `json:"bonusIncentive"`
	RSU            *float64 `json:"rsu"`
	StockOptions   *float64 `json:"stockOptions"`
}
