package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/aschey/vortex/internal"
	"github.com/aschey/vortex/internal/config"
	"github.com/aschey/vortex/internal/persist"
	"github.com/aschey/vortex/internal/stopwatch"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
)

var title1 = "█░█ █▀█ █▀█ ▀█▀ █▀▀ ▀▄▀"
var title2 = "▀▄▀ █▄█ █▀▄ ░█░ ██▄ █░█"

var title = lipgloss.NewStyle().
	Foreground(lipgloss.Color("9")).
	BorderStyle(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("6")).
	PaddingLeft(1).
	PaddingRight(1).
	Render(title1 + "\n" + title2)

const (
	configFlag = "config"
	storeFlag  = "store"
)

// globalFlags are read before the command tree runs because they decide how
// the store is opened.
type globalFlags struct {
	configPath string
	store      string
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "vortex",
		Short:        "A stopwatch with laps that survives restarts",
		Long:         title,
		SilenceUsage: true,

		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	usageFunc := rootCmd.UsageFunc()
	rootCmd.SetUsageFunc(func(c *cobra.Command) error {
		return internal.FormatUsage(c, usageFunc, "")
	})
	rootCmd.SetHelpFunc(func(c *cobra.Command, a []string) {
		internal.FormatHelp(c)
	})

	rootCmd.PersistentFlags().String(configFlag, "", "Path to the config file")
	rootCmd.PersistentFlags().String(storeFlag, "", "Store backend: file, sqlite or memory")

	rootCmd.AddCommand(
		newStartCmd(),
		newPauseCmd(),
		newToggleCmd(),
		newResetCmd(),
		newLapCmd(),
		newLapsCmd(),
		newExportCmd(),
		newCopyCmd(),
		newStatusCmd(),
		newTuiCmd(),
		newConfigCmd(),
	)
	return rootCmd
}

func parseGlobalFlags(args []string) globalFlags {
	flags := pflag.NewFlagSet("vortex", pflag.ContinueOnError)
	flags.ParseErrorsAllowlist.UnknownFlags = true
	flags.Usage = func() {}
	var parsed globalFlags
	flags.StringVar(&parsed.configPath, configFlag, "", "")
	flags.StringVar(&parsed.store, storeFlag, "", "")
	_ = flags.Parse(args)
	return parsed
}

func newConfig(flags globalFlags) (config.Config, error) {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return cfg, err
	}
	if flags.store != "" {
		cfg.Store = flags.store
		if err := cfg.Validate(); err != nil {
			return cfg, err
		}
	}
	return cfg, nil
}

func NewLogger(cfg config.Config) *zap.Logger {
	if err := os.MkdirAll(filepath.Dir(cfg.LogPath), 0o755); err != nil {
		return zap.NewNop()
	}
	zapCfg := zap.NewProductionConfig()
	zapCfg.OutputPaths = []string{
		cfg.LogPath,
	}
	logger, err := zapCfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

func newKV(lifecycle fx.Lifecycle, cfg config.Config, logger *zap.Logger) persist.KV {
	kv, err := persist.OpenKV(cfg.Store, cfg.ResolvedStorePath(), cfg.QuotaBytes)
	if err != nil {
		logger.Warn("store unavailable, state will not persist",
			zap.String("store", cfg.Store), zap.Error(err))
		kv = persist.Unavailable(err)
	}
	lifecycle.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return kv.Close()
		},
	})
	return kv
}

func newGateway(kv persist.KV, cfg config.Config, logger *zap.Logger) *persist.Gateway {
	return persist.NewGateway(kv, cfg.StoreKey, logger)
}

func newClock() stopwatch.Clock {
	return stopwatch.SystemClock
}

func newSession(lifecycle fx.Lifecycle, gateway *persist.Gateway, clock stopwatch.Clock, logger *zap.Logger) *stopwatch.Session {
	session := stopwatch.NewSession(context.Background(), gateway, clock, logger)
	lifecycle.Append(fx.Hook{
		OnStop: func(context.Context) error {
			session.Close()
			return nil
		},
	})
	return session
}

func register(lifecycle fx.Lifecycle, logger *zap.Logger, cfg config.Config, session *stopwatch.Session) {
	lifecycle.Append(
		fx.Hook{
			OnStart: func(ctx context.Context) error {
				cmdCtx := RegisterLogger(ctx, logger)
				cmdCtx = RegisterConfig(cmdCtx, cfg)
				cmdCtx = RegisterSession(cmdCtx, session)
				cmdCtx = RegisterClipboard(cmdCtx, clipboard.WriteAll)
				return newRootCmd().ExecuteContext(cmdCtx)
			},
		},
	)
}

func Execute() {
	app := fx.New(
		fx.Supply(parseGlobalFlags(os.Args[1:])),
		fx.Provide(newConfig),
		fx.Provide(NewLogger),
		fx.Provide(newKV),
		fx.Provide(newGateway),
		fx.Provide(newClock),
		fx.Provide(newSession),
		fx.Invoke(register),
		fx.WithLogger(func(logger *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: logger}
		}),
	)

	if err := app.Err(); err != nil {
		fmt.Fprintln(os.Stderr, internal.FormatWarning(err.Error()))
		os.Exit(1)
	}

	ctx := context.Background()
	// Command errors are already reported by cobra.
	if err := app.Start(ctx); err != nil {
		os.Exit(1)
	}
	if err := app.Stop(ctx); err != nil {
		os.Exit(1)
	}
}
