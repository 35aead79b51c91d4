package infra

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/open-salary/salary-board/internal/domain/model"
)

// ErrCardRejectedは、カードが必須項目の制約を満たさず破棄されたことを示します。
// 整形が崩れたカードでは普通に起きるため、エラーとしてログに出す必要はありません。
var ErrCardRejected = errors.New("給与カードを破棄しました")

// ExtractionRulesは、給与カードからの抽出に使うルール一式です。
// 語彙リストは優先順位付きで、先頭に近いものほど優先されます。
type ExtractionRules struct {
	// カード要素そのものを特定するCSSセレクター
	CardSelector string
	// カード内（またはその親要素内）の企業リンクを特定するCSSセレクター
	CorporationLinkSelector string

	SalaryIDPattern        *regexp.Regexp
	CorporationIDPattern   *regexp.Regexp
	CompanyNamePattern     *regexp.Regexp
	AgePattern             *regexp.Regexp
	OccupationLabelPattern *regexp.Regexp
	ManAmountListPattern   *regexp.Regexp

	OccupationCandidates []string
	GradePatterns        []string

	BonusKeyword    string
	OvertimeKeyword string
	RSUKeyword      string
	StockKeyword    string

	// キーワードの直後から読み取る文字数（rune単位）
	MoneyScanWindow    int
	OvertimeScanWindow int
}

// SalaryCardExtractorは、カード1枚分のgoqueryノードからSalaryCardを抽出します。
type SalaryCardExtractor struct {
	rules  ExtractionRules
	parser SalaryCardParser
}

func NewSalaryCardExtractor(rules ExtractionRules, parser SalaryCardParser) *SalaryCardExtractor {
	return &SalaryCardExtractor{
		rules:  rules,
		parser: parser,
	}
}

// CardSelectorは、ドキュメント内でカード要素を探すためのセレクターを返します。
func (e *SalaryCardExtractor) CardSelector() string {
	return e.rules.CardSelector
}

// Extractは、カード要素から給与投稿を抽出します。
// 必須項目が欠けている場合はErrCardRejectedを包んだエラーを返します。
// 各ルールは同じノード・テキストに対する独立した探索で、順序には依存しません。
func (e *SalaryCardExtractor) Extract(card *goquery.Selection) (model.SalaryCard, error) {
	var args model.SalaryCardArgs

	// 給与ID: カード自身の href="/salaries/{id}" から抽出
	href := card.AttrOr("href", "")
	if matches := e.rules.SalaryIDPattern.FindStringSubmatch(href); matches != nil {
		args.SalaryID = matches[1]
	}

	// 企業ID: カード内、なければ親要素内の企業リンクから抽出。
	// ネストしたaタグはHTMLとして無効で、パーサがリンクをカード境界の外へ
	// 移動させることがあるため、探索スコープを順に広げる。
	corpHref := e.findCorporationLink(card)
	if matches := e.rules.CorporationIDPattern.FindStringSubmatch(corpHref); matches != nil {
		companyID, err := strconv.Atoi(matches[1])
		if err != nil {
			return model.SalaryCard{}, fmt.Errorf("%w: 企業IDの数値変換に失敗しました: %s", ErrCardRejected, matches[1])
		}
		args.CompanyID = companyID
	}

	// 企業名: aria-labelの「XXXの詳しい年収」からXXXを抽出
	ariaLabel := card.AttrOr("aria-label", "")
	if matches := e.rules.CompanyNamePattern.FindStringSubmatch(ariaLabel); matches != nil {
		args.CompanyName = strings.TrimSpace(matches[1])
	}

	cardText := card.Text()

	// 年齢: XX歳
	if matches := e.rules.AgePattern.FindStringSubmatch(cardText); matches != nil {
		age, err := strconv.Atoi(matches[1])
		if err != nil {
			return model.SalaryCard{}, fmt.Errorf("年齢の数値変換に失敗しました: %w", err)
		}
		args.Age = age
	}

	args.OccupationName = e.extractOccupation(cardText)
	args.Grade = e.extractGrade(cardText)

	// 給与数値: 万表記の金額をテキスト順に収集する。
	// 年収・基本給の順で並ぶことが多いため、先頭を年収、2番目を基本給とする。
	manAmounts, err := e.collectManAmounts(cardText)
	if err != nil {
		return model.SalaryCard{}, err
	}
	if len(manAmounts) > 0 {
		args.AnnualSalary = manAmounts[0]
		args.BaseSalary = manAmounts[0]
	}
	if len(manAmounts) > 1 {
		args.BaseSalary = manAmounts[1]
	}

	// 賞与・残業・RSU・ストックオプション: 各ラベルの直後の固定幅を読む
	args.Bonus = e.parser.ParseManAmount(textWindow(cardText, e.rules.BonusKeyword, e.rules.MoneyScanWindow))
	args.OvertimeHours = e.parser.ParseOvertimeHours(textWindow(cardText, e.rules.OvertimeKeyword, e.rules.OvertimeScanWindow))
	args.RSU = e.parser.ParseManAmount(textWindow(cardText, e.rules.RSUKeyword, e.rules.MoneyScanWindow))
	args.StockOptions = e.parser.ParseManAmount(textWindow(cardText, e.rules.StockKeyword, e.rules.MoneyScanWindow))

	salaryCard, err := model.NewSalaryCard(args)
	if err != nil {
		return model.SalaryCard{}, fmt.Errorf("%w: %s", ErrCardRejected, err)
	}

	return salaryCard, nil
}

// findCorporationLinkは、カード内→親要素内の順で最初の企業リンクのhrefを返します。
func (e *SalaryCardExtractor) findCorporationLink(card *goquery.Selection) string {
	scopes := []*goquery.Selection{card, card.Parent()}
	for _, scope := range scopes {
		if href, exists := scope.Find(e.rules.CorporationLinkSelector).First().Attr("href"); exists {
			return href
		}
	}
	return ""
}

// extractOccupationは職種名を抽出します。「職種：XXX」のラベル形式を優先し、
// なければ既知の職種語彙をリスト順（テキスト内の出現位置ではない）に探します。
// どちらにも一致しない場合は空文字を返し、呼び出し側で既定値が入ります。
func (e *SalaryCardExtractor) extractOccupation(cardText string) string {
	if matches := e.rules.OccupationLabelPattern.FindStringSubmatch(cardText); matches != nil {
		return strings.TrimSpace(matches[1])
	}

	for _, candidate := range e.rules.OccupationCandidates {
		if strings.Contains(cardText, candidate) {
			return candidate
		}
	}

	return ""
}

// extractGradeは、グレード語彙をリスト順に探し、最初に見つかったものを返します。
func (e *SalaryCardExtractor) extractGrade(cardText string) *string {
	for _, grade := range e.rules.GradePatterns {
		if strings.Contains(cardText, grade) {
			g := grade
			return &g
		}
	}
	return nil
}

// collectManAmountsは、テキスト中の万表記の金額を出現順にすべて集めます。
func (e *SalaryCardExtractor) collectManAmounts(cardText string) ([]float64, error) {
	matches := e.rules.ManAmountListPattern.FindAllStringSubmatch(cardText, -1)
	amounts := make([]float64, 0, len(matches))
	for _, m := range matches {
		value, err := strconv.ParseFloat(strings.ReplaceAll(m[1], ",", ""), 64)
		if err != nil {
			return nil, fmt.Errorf("金額の数値変換に失敗しました: %w", err)
		}
		amounts = append(amounts, value)
	}
	return amounts, nil
}

// textWindowは、キーワードの出現位置からwindow文字分（rune単位）を切り出します。
// キーワードが見つからない場合は空文字を返します。
func textWindow(text, keyword string, window int) string {
	idx := strings.Index(text, keyword)
	if idx < 0 {
		return ""
	}

	rest := []rune(text[idx:])
	if len(rest) > window {
		rest = rest[:window]
	}
	return string(rest)
}
