package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/google/uuid"
	"github.com/open-salary/salary-board/internal/domain/model"
	"github.com/open-salary/salary-board/internal/domain/repository"
	"github.com/open-salary/salary-board/internal/infra"
	"github.com/open-salary/salary-board/internal/logger"
)

// ImporterArgsは、インポートユースケースを構築するための引数を保持します。
//
// フィールド:
//
//	Loader      : HTMLファイルのローダー
//	Scanner     : ドキュメント内の給与カードのスキャナー
//	Companies   : 企業リポジトリ
//	Occupations : 職種リポジトリ
//	Salaries    : 給与レコードリポジトリ
//	Cache       : 一覧APIのキャッシュ（nil可）
//	Logger      : ロガー
type ImporterArgs struct {
	Loader      infra.HTMLFileLoader
	Scanner     *infra.DocumentScanner
	Companies   repository.CompanyRepository
	Occupations repository.OccupationRepository
	Salaries    repository.SalaryRepository
	Cache       repository.QueryCache
	Logger      logger.AppLogger
}

// ImportSummaryは、インポート実行の集計結果です。
type ImportSummary struct {
	Files    int
	Imported int
	Skipped  int
}

// importSalaryFromHTMLUseCaseは、HTMLファイル群から給与カードを抽出し、
// ストアを全面的に作り直すユースケースです。
type importSalaryFromHTMLUseCase struct {
	loader      infra.HTMLFileLoader
	scanner     *infra.DocumentScanner
	companies   repository.CompanyRepository
	occupations repository.OccupationRepository
	salaries    repository.SalaryRepository
	cache       repository.QueryCache
	logger      logger.AppLogger
}

func NewImportSalaryFromHTMLUseCase(args ImporterArgs) *importSalaryFromHTMLUseCase {
	return &importSalaryFromHTMLUseCase{
		loader:      args.Loader,
		scanner:     args.Scanner,
		companies:   args.Companies,
		occupations: args.Occupations,
		salaries:    args.Salaries,
		cache:       args.Cache,
		logger:      args.Logger,
	}
}

// Runは、指定パス（単一ファイルまたはディレクトリ）からHTMLを収集し、
// 既存データを全削除した上で給与レコードを投入します。増分更新モードはなく、
// 実行のたびにゼロから作り直します。ファイルは収集順に、カードはドキュメント内の
// 出現順に逐次処理します。
//
// args:
//
//	ctx  : コンテキスト
//	path : 処理対象のパス
//
// return:
//
//	ImportSummary : 集計結果（処理ファイル数・登録数・重複スキップ数）
//	error         : 実行を中断させるエラー（パス不在など）
func (u *importSalaryFromHTMLUseCase) Run(ctx context.Context, path string) (ImportSummary, error) {
	var summary ImportSummary

	paths, err := u.loader.CollectHTMLFilePaths(path)
	if err != nil {
		return summary, fmt.Errorf("HTMLファイルの収集に失敗しました: %w", err)
	}

	if len(paths) == 0 {
		u.logger.Info("HTMLファイルが見つかりません", "path", path)
		return summary, nil
	}

	u.logger.Info("HTMLファイルを処理します", "count", len(paths))

	// 外部キー制約のため salary → company → occupation の順で全削除する。
	// 削除が完了してから挿入を始める。
	if err := u.salaries.DeleteAll(ctx); err != nil {
		return summary, fmt.Errorf("給与レコードの削除に失敗しました: %w", err)
	}
	if err := u.companies.DeleteAll(ctx); err != nil {
		return summary, fmt.Errorf("企業の削除に失敗しました: %w", err)
	}
	if err := u.occupations.DeleteAll(ctx); err != nil {
		return summary, fmt.Errorf("職種の削除に失敗しました: %w", err)
	}

	if u.cache != nil {
		if err := u.cache.Flush(ctx); err != nil {
			u.logger.Warn("キャッシュの無効化に失敗しました", "error", err)
		}
	}

	summary.Files = len(paths)

	for _, htmlPath := range paths {
		htmlContent, err := u.loader.LoadHTMLFile(htmlPath)
		if err != nil {
			return summary, fmt.Errorf("HTMLファイルの読み込みに失敗しました: %w", err)
		}

		doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlContent))
		if err != nil {
			return summary, fmt.Errorf("HTMLの解析に失敗しました: %w", err)
		}

		cards := u.scanner.Scan(doc)
		u.logger.Info("給与カードを検出しました", "path", htmlPath, "count", len(cards))

		for _, card := range cards {
			if err := u.importCard(ctx, card, &summary); err != nil {
				// 1件の失敗でインポート全体を止めない
				u.logger.Warn("給与レコードの登録をスキップしました",
					"company", card.CompanyName(),
					"occupation", card.OccupationName(),
					"error", err,
				)
			}
		}
	}

	return summary, nil
}

// importCardは、1枚のカードを企業・職種の解決を経て登録します。
// 同じ給与IDのレコードが既にある場合は重複としてスキップします。
func (u *importSalaryFromHTMLUseCase) importCard(ctx context.Context, card model.SalaryCard, summary *ImportSummary) error {
	company, found, err := u.companies.FindByID(ctx, card.CompanyID())
	if err != nil {
		return err
	}
	if !found {
		// 企業名は最初に参照したカードのものを採用する
		company = model.Company{ID: card.CompanyID(), Name: card.CompanyName()}
		if err := u.companies.Create(ctx, company); err != nil {
			return err
		}
	}

	occupation, found, err := u.occupations.FindByName(ctx, card.OccupationName())
	if err != nil {
		return err
	}
	if !found {
		occupation = model.Occupation{ID: uuid.NewString(), Name: card.OccupationName()}
		if err := u.occupations.Create(ctx, occupation); err != nil {
			return err
		}
	}

	exists, err := u.salaries.Exists(ctx, card.SalaryID())
	if err != nil {
		return err
	}
	if exists {
		summary.Skipped++
		return nil
	}

	if err := u.salaries.Create(ctx, model.NewSalaryRecord(card, company, occupation)); err != nil {
		return err
	}
	summary.Imported++

	return nil
}
