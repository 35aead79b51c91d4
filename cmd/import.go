package cmd

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/open-salary/salary-board/internal/config"
	"github.com/open-salary/salary-board/internal/constants"
	"github.com/open-salary/salary-board/internal/domain/repository"
	"github.com/open-salary/salary-board/internal/infra"
	"github.com/open-salary/salary-board/internal/logger"
	"github.com/open-salary/salary-board/internal/usecase"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import [path]",
	Short: "HTMLファイルから給与データをインポートします",
	Long: `保存済みのHTMLファイル（単一ファイルまたはディレクトリ）から給与カードを抽出し、
既存データを全削除した上でデータベースへ投入します。パスを省略した場合は
設定ファイルのhtml_dirを使用します`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		logHandler := slog.NewTextHandler(os.Stdout, nil)
		appLogger := logger.NewAppLogger(slog.New(logHandler))

		cfg, err := config.LoadConfig(configPath)
		if err != nil {
			log.Fatalf("設定ファイルを読み込めませんでした: %v", err)
		}

		path := cfg.HTMLDir
		if len(args) > 0 {
			path = args[0]
		}

		db, err := infra.NewDB(cfg.DBPath)
		if err != nil {
			log.Fatalf("データベースの初期化に失敗しました: %v", err)
		}

		// 依存関係の注入
		loader := infra.NewHTMLFileLoader()
		parser := infra.NewSalaryCardParser(constants.GetSalaryCardPatterns())
		extractor := infra.NewSalaryCardExtractor(constants.GetSalaryCardExtractionRules(), parser)
		scanner := infra.NewDocumentScanner(extractor, appLogger)

		var cache repository.QueryCache
		if cfg.RedisAddr != "" {
			cache = infra.NewQueryCacheClient(redis.NewClient(&redis.Options{Addr: cfg.RedisAddr}))
		}

		importerArgs := usecase.ImporterArgs{
			Loader:      *loader,
			Scanner:     scanner,
			Companies:   infra.NewCompanyClient(db),
			Occupations: infra.NewOccupationClient(db),
			Salaries:    infra.NewSalaryClient(db),
			Cache:       cache,
			Logger:      appLogger,
		}
		importer := usecase.NewImportSalaryFromHTMLUseCase(importerArgs)

		summary, err := importer.Run(context.Background(), path)
		if err != nil {
			log.Fatalf("インポートに失敗しました: %v", err)
		}

		fmt.Printf("完了: %s 件をインポート, %s 件をスキップ（重複）\n",
			humanize.Comma(int64(summary.Imported)),
			humanize.Comma(int64(summary.Skipped)),
		)
	},
}

func init() {
	rootCmd.AddCommand(importCmd)
}
