package logger

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/aliskhannn/wordly/internal/config"
)

// New builds the application logger. Production uses JSON output; every
// other environment uses the human readable development encoder.
func New(cfg *config.Config) (*zap.Logger, error) {
	zcfg := zap.NewDevelopmentConfig()
	if cfg.Env == "production" {
		zcfg = zap.NewProductionConfig()
	}

	if cfg.LogLevel != "" {
		level, err := zapcore.ParseLevel(cfg.LogLevel)
		if err != nil {
			return nil, fmt.Errorf("parse log level: %w", err)
		}
		zcfg.Level = zap.NewAtomicLevelAt(level)
	}

	// The terminal UI owns stdout.
	zcfg.OutputPaths = []string{"stderr"}

	return zcfg.Build()
}
