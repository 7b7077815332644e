package logger

import (
	"go.uber.org/zap"

	"trivia/internal/config"
)

// New builds the diagnostic logger for a run.
//
// The terminal belongs to the game, so logs only go to settings.LogFile. With
// no log file configured the returned logger discards everything.
func New(settings config.Settings) (*zap.Logger, error) {
	if settings.LogFile == "" {
		return zap.NewNop(), nil
	}

	cfg := zap.NewDevelopmentConfig()
	if settings.Env == config.EnvProduction {
		cfg = zap.NewProductionConfig()
	}
	cfg.OutputPaths = []string{settings.LogFile}
	cfg.ErrorOutputPaths = []string{settings.LogFile}

	return cfg.Build()
}
