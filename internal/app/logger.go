package app

import (
	"os"
	"strings"

	"logistics-backoffice/internal/config"
	"logistics-backoffice/internal/logx"
)

// NewLogger builds the process logger. LOG_FORMAT=zap switches to zap with
// optional file rotation; anything else logs JSON through slog to stdout.
func NewLogger(cfg *config.Config) logx.Logger {
	if strings.EqualFold(cfg.Log.Format, "zap") {
		return logx.NewZap(logx.ZapOptions{
			Level:      cfg.Log.Level,
			File:       cfg.Log.File,
			MaxSizeMB:  100,
			MaxBackups: 5,
			MaxAgeDays: 14,
		})
	}
	return logx.NewSlogJSON(os.Stdout, cfg.Log.Level)
}
