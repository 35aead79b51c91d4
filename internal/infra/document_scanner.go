package infra

import (
	"errors"

	"github.com/PuerkitoBio/goquery"
	"github.com/open-salary/salary-board/internal/domain/model"
	"github.com/open-salary/salary-board/internal/logger"
)

// DocumentScannerは、パース済みHTMLドキュメントから全ての給与カードを抽出します。
type DocumentScanner struct {
	extractor *SalaryCardExtractor
	logger    logger.AppLogger
}

func NewDocumentScanner(extractor *SalaryCardExtractor, appLogger logger.AppLogger) *DocumentScanner {
	return &DocumentScanner{
		extractor: extractor,
		logger:    appLogger,
	}
}

// Scanは、ドキュメント内のカード要素を順に抽出し、受理されたカードを返します。
// 破棄されたカードは黙って除外し、想定外の抽出失敗はログに残して続行します。
// 1枚の失敗が残りのカードの走査を止めることはありません。
func (s *DocumentScanner) Scan(doc *goquery.Document) []model.SalaryCard {
	cards := make([]model.SalaryCard, 0)

	doc.Find(s.extractor.CardSelector()).Each(func(_ int, sel *goquery.Selection) {
		card, err := s.extractor.Extract(sel)
		if err != nil {
			if !errors.Is(err, ErrCardRejected) {
				s.logger.Warn("給与カードの解析に失敗しました", "error", err)
			}
			return
		}
		cards = append(cards, card)
	})

	return cards
}
