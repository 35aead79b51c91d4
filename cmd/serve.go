package cmd

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/open-salary/salary-board/internal/config"
	"github.com/open-salary/salary-board/internal/domain/repository"
	"github.com/open-salary/salary-board/internal/handler"
	"github.com/open-salary/salary-board/internal/infra"
	"github.com/open-salary/salary-board/internal/logger"
	"github.com/open-salary/salary-board/internal/usecase"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "給与一覧のJSON APIサーバーを起動します",
	Long: `蓄積済みの給与レコードを絞り込み・並び替え・ページング付きで返すAPIと、
職種一覧APIを提供するHTTPサーバーを起動します`,
	Run: func(cmd *cobra.Command, args []string) {
		logHandler := slog.NewTextHandler(os.Stdout, nil)
		appLogger := logger.NewAppLogger(slog.New(logHandler))

		cfg, err := config.LoadConfig(configPath)
		if err != nil {
			log.Fatalf("設定ファイルを読み込めませんでした: %v", err)
		}

		db, err := infra.NewDB(cfg.DBPath)
		if err != nil {
			log.Fatalf("データベースの初期化に失敗しました: %v", err)
		}

		var cache repository.QueryCache
		if cfg.RedisAddr != "" {
			cache = infra.NewQueryCacheClient(redis.NewClient(&redis.Options{Addr: cfg.RedisAddr}))
		}

		queryService := usecase.NewQueryService(usecase.QueryArgs{
			Salaries:    infra.NewSalaryClient(db),
			Occupations: infra.NewOccupationClient(db),
			Cache:       cache,
			CacheTTL:    time.Duration(cfg.CacheTTLSeconds) * time.Second,
			Logger:      appLogger,
		})

		compensationHandler := handler.NewCompensationHandler(queryService, appLogger)
		occupationHandler := handler.NewOccupationHandler(queryService, appLogger)

		gin.SetMode(gin.ReleaseMode)
		r := gin.Default()

		api := r.Group("/api")
		{
			api.GET("/compensation", compensationHandler.List)
			api.GET("/occupations", occupationHandler.List)
		}
		r.GET("/healthz", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		srv := &http.Server{
			Addr:    cfg.ListenAddr,
			Handler: r,
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			appLogger.Info("サーバーを起動します", "addr", cfg.ListenAddr)
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				return err
			}
			return nil
		})
		g.Go(func() error {
			<-gctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		})

		if err := g.Wait(); err != nil {
			log.Fatalf("サーバーの実行に失敗しました: %v", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
