package infra

import (
	"regexp"
	"strconv"
	"strings"
)

// RedactionMarkerは、投稿者が値を非公開にしたことを示す文言です。
// この文言を含むテキストは金額・時間ともに「記載なし」として扱います。
const RedactionMarker = "非公開"

type SalaryCardParser interface {
	ParseManAmount(text string) *float64
	ParseOvertimeHours(text string) *float64
}

// CompiledPatternsは、給与カードのテキストマイニングで使うコンパイル済み正規表現です。
type CompiledPatterns struct {
	ManAmountPattern *regexp.Regexp
	OvertimePattern  *regexp.Regexp
}

type salaryCardParser struct {
	patterns CompiledPatterns
}

func NewSalaryCardParser(patterns CompiledPatterns) SalaryCardParser {
	return &salaryCardParser{
		patterns: patterns,
	}
}

// ParseManAmountは万円表記の文字列を数値に変換します。
// "800万", "800万円", "1,200万" → 800, 800, 1200。
// 空文字・空白のみ・非公開の場合と、万表記が見つからない場合はnilを返します。
func (p *salaryCardParser) ParseManAmount(text string) *float64 {
	if p.isRedacted(text) {
		return nil
	}

	cleaned := strings.ReplaceAll(text, ",", "")
	matches := p.patterns.ManAmountPattern.FindStringSubmatch(cleaned)
	if matches == nil {
		return nil
	}

	value, err := strconv.ParseFloat(matches[1], 64)
	if err != nil {
		return nil
	}
	return &value
}

// ParseOvertimeHoursは残業時間の文字列を数値に変換します（"20時間" → 20）。
// 単位は省略可能で、カンマ除去後の裸の数値も受け付けます。
func (p *salaryCardParser) ParseOvertimeHours(text string) *float64 {
	if p.isRedacted(text) {
		return nil
	}

	cleaned := strings.ReplaceAll(text, ",", "")
	matches := p.patterns.OvertimePattern.FindStringSubmatch(cleaned)
	if matches == nil {
		return nil
	}

	value, err := strconv.ParseFloat(matches[1], 64)
	if err != nil {
		return nil
	}
	return &value
}

func (p *salaryCardParser) isRedacted(text string) bool {
	return strings.TrimSpace(text) == "" || strings.Contains(text, RedactionMarker)
}
