// Package logging configura o log estruturado (slog) com saída colorida via tint.
package logging

import (
	"context"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
	"gorm.io/gorm/logger"
)

// Setup configura o logger padrão no nível informado (debug, info, warn, error).
func Setup(level string) {
	SetupWithLevel(ParseLevel(level))
}

// SetupWithLevel configura o logger padrão no nível informado.
func SetupWithLevel(level slog.Level) {
	slog.SetDefault(slog.New(
		tint.NewHandler(os.Stderr, &tint.Options{
			Level:      level,
			TimeFormat: time.DateTime,
			AddSource:  level == slog.LevelDebug,
		}),
	))
}

// ParseLevel converte o nome do nível; valores desconhecidos viram info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// GormLogger encaminha o log do gorm para o slog padrão.
func GormLogger(level slog.Level) logger.Interface {
	gormLevel, writerLevel := logger.Warn, slog.LevelWarn
	if level == slog.LevelDebug {
		gormLevel, writerLevel = logger.Info, slog.LevelDebug
	}
	return logger.New(
		log.New(slogWriter{level: writerLevel}, "", 0),
		logger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  gormLevel,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)
}

type slogWriter struct {
	level slog.Level
}

func (w slogWriter) Write(p []byte) (int, error) {
	slog.Log(context.Background(), w.level, "gorm", "sql", strings.TrimSpace(string(p)))
	return len(p), nil
}
