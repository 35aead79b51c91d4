package cmd

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/open-salary/salary-board/internal/config"
	"github.com/open-salary/salary-board/internal/infra"
	"github.com/open-salary/salary-board/internal/logger"
	"github.com/open-salary/salary-board/internal/usecase"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "給与データをCSVファイルへエクスポートします",
	Long: `データベースに蓄積済みの給与レコードを年収の降順でCSVファイルへ書き出します。
出力先を省略した場合は ./compensation.csv に書き出します`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		logHandler := slog.NewTextHandler(os.Stdout, nil)
		appLogger := logger.NewAppLogger(slog.New(logHandler))

		cfg, err := config.LoadConfig(configPath)
		if err != nil {
			log.Fatalf("設定ファイルを読み込めませんでした: %v", err)
		}

		outputPath := "./compensation.csv"
		if len(args) > 0 {
			outputPath = args[0]
		}

		db, err := infra.NewDB(cfg.DBPath)
		if err != nil {
			log.Fatalf("データベースの初期化に失敗しました: %v", err)
		}

		exporter, err := infra.NewCSVExporter(outputPath, usecase.CompensationCSVHeaders)
		if err != nil {
			log.Fatalf("CSVファイルを作成できませんでした: %v", err)
		}

		exportUseCase := usecase.NewExportCompensationUseCase(usecase.ExporterArgs{
			Salaries: infra.NewSalaryClient(db),
			Exporter: exporter,
			Logger:   appLogger,
		})

		exported, err := exportUseCase.Run(context.Background())
		if err != nil {
			exporter.Close()
			log.Fatalf("エクスポートに失敗しました: %v", err)
		}
		if err := exporter.Close(); err != nil {
			log.Fatalf("CSVファイルを閉じられませんでした: %v", err)
		}

		fmt.Printf("完了: %s 件を %s へ書き出しました\n", humanize.Comma(int64(exported)), outputPath)
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
}
