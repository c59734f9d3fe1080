package cmd

import (
	"context"

	"github.com/aschey/vortex/internal/config"
	"github.com/aschey/vortex/internal/stopwatch"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type Dependency int

const (
	loggerKey Dependency = iota
	sessionKey
	configKey
	clipboardKey
)

// CopyFunc places text on the system clipboard.
type CopyFunc func(text string) error

func RegisterLogger(ctx context.Context, logger *zap.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

func GetLogger(cmd *cobra.Command) *zap.Logger {
	logger, ok := cmd.Context().Value(loggerKey).(*zap.Logger)
	if !ok {
		return zap.NewNop()
	}
	return logger
}

func RegisterSession(ctx context.Context, session *stopwatch.Session) context.Context {
	return context.WithValue(ctx, sessionKey, session)
}

func GetSession(cmd *cobra.Command) *stopwatch.Session {
	ctx := cmd.Context()
	return ctx.Value(sessionKey).(*stopwatch.Session)
}

func RegisterConfig(ctx context.Context, cfg config.Config) context.Context {
	return context.WithValue(ctx, configKey, cfg)
}

func GetConfig(cmd *cobra.Command) config.Config {
	cfg, ok := cmd.Context().Value(configKey).(config.Config)
	if !ok {
		return config.Default()
	}
	return cfg
}

func RegisterClipboard(ctx context.Context, copyFunc CopyFunc) context.Context {
	return context.WithValue(ctx, clipboardKey, copyFunc)
}

func GetClipboard(cmd *cobra.Command) CopyFunc {
	ctx := cmd.Context()
	return ctx.Value(clipboardKey).(CopyFunc)
}
