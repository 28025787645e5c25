package logger

import (
	"go.uber.org/zap"

	"github.com/kerbaras/authorquiz/pkg/config"
)

// New builds a zap logger for cfg. Output goes to cfg.LogFile when set and to
// stderr otherwise.
func New(cfg *config.Config) (*zap.Logger, error) {
	var zc zap.Config
	if cfg.IsProduction() {
		zc = zap.NewProductionConfig()
	} else {
		zc = zap.NewDevelopmentConfig()
	}

	if cfg.LogFile != "" {
		zc.OutputPaths = []string{cfg.LogFile}
		zc.ErrorOutputPaths = []string{cfg.LogFile}
	}

	return zc.Build()
}

// NewForTUI is like New but stays silent unless a log file is configured, since
// the terminal belongs to the UI.
func NewForTUI(cfg *config.Config) (*zap.Logger, error) {
	if cfg.LogFile == "" {
		return zap.NewNop(), nil
	}
	return New(cfg)
}
