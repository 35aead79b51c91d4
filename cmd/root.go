package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// 設定ファイルの既定パス
const configPath = "settings/config.yaml"

// rootCmdは、アプリケーションのエントリーポイントとなるルートコマンドです。
var rootCmd = &cobra.Command{
	Use:   "salary-board",
	Short: "給与データの取り込みと閲覧APIを提供するツールです。",
	Long: `salary-boardは、保存済みのHTMLファイルから給与カードを抽出してデータベースへ
取り込むインポート機能と、絞り込み・並び替え・ページングに対応した一覧APIを提供します。`,
}

// Executeは、全てのサブコマンドをルートコマンドに追加し、フラグを適切に設定します。
// この関数はmain.main()から呼び出され、rootCmdに対して一度だけ実行される必要があります。
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
