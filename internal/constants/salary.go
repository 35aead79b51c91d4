package constants

import (
	"regexp"

	"github.com/open-salary/salary-board/internal/infra"
)

// GetSalaryCardPatternsは、金額・残業時間のパースに使うコンパイル済み正規表現を返します。
func GetSalaryCardPatterns() infra.CompiledPatterns {
	return infra.CompiledPatterns{
		ManAmountPattern: regexp.MustCompile(`(\d+(?:\.\d+)?)\s*万`),
		OvertimePattern:  regexp.MustCompile(`(\d+(?:\.\d+)?)\s*(?:時間?)?`),
	}
}

// GetSalaryCardExtractionRulesは、給与カードの抽出ルール一式を返します。
// 語彙リストは優先順位付きのため、並び順を変えると抽出結果が変わります。
func GetSalaryCardExtractionRules() infra.ExtractionRules {
	return infra.ExtractionRules{
		CardSelector:            `a.group.block.no-underline[href^="/salaries/"]`,
		CorporationLinkSelector: `a[href^="/corporations/"]`,

		SalaryIDPattern:        regexp.MustCompile(`/salaries/([^/]+)`),
		CorporationIDPattern:   regexp.MustCompile(`/corporations/(\d+)`),
		CompanyNamePattern:     regexp.MustCompile(`^(.+?)の詳しい年収`),
		AgePattern:             regexp.MustCompile(`(\d{2})歳`),
		OccupationLabelPattern: regexp.MustCompile(`職種\s*[：:]\s*([^\s年収基本給賞与残業]+)`),
		ManAmountListPattern:   regexp.MustCompile(`(\d+(?:,\d+)*)\s*万`),

		OccupationCandidates: []string{
			"ソフトウェアエンジニア",
			"プロダクトマネージャー",
			"データサイエンティスト",
			"エンジニア",
			"マネージャー",
			"デザイナー",
			"PM",
			"開発者",
		},
		GradePatterns: []string{
			"シニア",
			"ミドル",
			"ジュニア",
			"スタッフ",
			"マネージャー",
			"リード",
		},

		BonusKeyword:    "賞与",
		OvertimeKeyword: "残業",
		RSUKeyword:      "RSU",
		StockKeyword:    "ストック",

		MoneyScanWindow:    50,
		OvertimeScanWindow: 30,
	}
}
