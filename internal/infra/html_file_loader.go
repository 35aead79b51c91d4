package infra

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

type HTMLFileLoader struct{}

func NewHTMLFileLoader() *HTMLFileLoader {
	return &HTMLFileLoader{}
}

func (f *HTMLFileLoader) LoadHTMLFile(path string) (string, error) {
	html, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read HTML file: %w", err)
	}
	return string(html), nil
}

// CollectHTMLFilePathsは、指定パスから処理対象のHTMLファイルを収集します。
// 単一ファイルの場合は拡張子が.html（大文字小文字を区別しない）ならそのパスを、
// ディレクトリの場合は配下を再帰的に走査して全ての.htmlファイルを返します。
func (f *HTMLFileLoader) CollectHTMLFilePaths(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("パスの情報取得に失敗しました: %w", err)
	}

	if !info.IsDir() {
		if isHTMLFile(path) {
			return []string{path}, nil
		}
		return []string{}, nil
	}

	paths := make([]string, 0, 100)
	err = filepath.Walk(path, func(p string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() && isHTMLFile(p) {
			paths = append(paths, p)
		}
		return nil
	})
	if err != nil {
		return paths, fmt.Errorf("ディレクトリの走査に失敗しました: %w", err)
	}

	return paths, nil
}

func isHTMLFile(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".html")
}
