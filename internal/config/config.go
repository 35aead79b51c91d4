package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-yaml"
	"github.com/joho/godotenv"
)

// Configはアプリケーション全体の動作設定をまとめる構造体です。
type Config struct {
	HTMLDir         string `yaml:"html_dir" validate:"required,min=1"`          // importのデフォルト入力ディレクトリ
	DBPath          string `yaml:"db_path" validate:"required,min=1"`           // SQLiteデータベースのファイルパス
	ListenAddr      string `yaml:"listen_addr" validate:"required,min=1"`       // serveの待ち受けアドレス
	RedisAddr       string `yaml:"redis_addr"`                                  // 空の場合キャッシュは無効
	CacheTTLSeconds int    `yaml:"cache_ttl_seconds" validate:"min=0,max=3600"` // キャッシュの有効期間（秒）
}

// バリデーターのインスタンス
var validate = validator.New()

// YAMLファイルからConfigを読み込む。環境変数による上書きも適用する。
func LoadConfig(path string) (Config, error) {
	// .envがあれば読み込む（無くてもエラーにしない）
	_ = godotenv.Load()

	f, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("設定ファイルを読み込めませんでした: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(f, &cfg); err != nil {
		return Config{}, fmt.Errorf("YAMLの解析に失敗しました: %w", err)
	}

	applyEnvOverrides(&cfg)

	// バリデーション
	if err := validate.Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("設定のバリデーションに失敗しました: %w", err)
	}

	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("SALARY_BOARD_DB_PATH"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("SALARY_BOARD_LISTEN_ADDR"); v != "" {
		cfg.ListenAddr = v
	}
	if v := os.Getenv("SALARY_BOARD_REDIS_ADDR"); v != "" {
		cfg.RedisAddr = v
	}
}
