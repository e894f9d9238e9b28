// Package logging provides zap logger helpers.
package logging

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds a zap.Logger configured for development or production. When
// filePath is non-empty the logger tees into an append-only log file so a
// scrape session leaves an operational trail next to the exports.
func New(development bool, filePath string) (*zap.Logger, error) {
	consoleCfg := zap.NewProductionEncoderConfig()
	consoleCfg.TimeKey = "ts"
	consoleCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	level := zapcore.InfoLevel
	if development {
		consoleCfg = zap.NewDevelopmentEncoderConfig()
		consoleCfg.TimeKey = "ts"
		consoleCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
		level = zapcore.DebugLevel
	}

	consoleEncoder := zapcore.NewConsoleEncoder(consoleCfg)
	if !development {
		consoleEncoder = zapcore.NewJSONEncoder(consoleCfg)
	}
	cores := []zapcore.Core{
		zapcore.NewCore(consoleEncoder, zapcore.Lock(os.Stderr), level),
	}

	if filePath != "" {
		f, err := os.OpenFile(filePath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o640)
		if err != nil {
			return nil, fmt.Errorf("open log file %s: %w", filePath, err)
		}
		fileCfg := zap.NewProductionEncoderConfig()
		fileCfg.TimeKey = "ts"
		fileCfg.EncodeTime = zapcore.ISO8601TimeEncoder
		cores = append(cores, zapcore.NewCore(
			zapcore.NewJSONEncoder(fileCfg),
			zapcore.Lock(f),
			level,
		))
	}

	return zap.New(zapcore.NewTee(cores...)), nil
}
