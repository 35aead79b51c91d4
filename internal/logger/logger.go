package logger

import (
	"log/slog"
)

// AppLoggerは、アプリケーション全体で使う構造化ロガーのインターフェースです。
// 引数はslogのキーと値のペアをそのまま受け取ります。
type AppLogger interface {
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

type appLogger struct {
	logger *slog.Logger
}

func NewAppLogger(logger *slog.Logger) AppLogger {
	return &appLogger{
		logger: logger,
	}
}

func (l *appLogger) Info(msg string, args ...any) {
	l.logger.Info(msg, args...)
}

func (l *appLogger) Warn(msg string, args ...any) {
	l.logger.Warn(msg, args...)
}

func (l *appLogger) Error(msg string, args ...any) {
	l.logger.Error(msg, args...)
}
