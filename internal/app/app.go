package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"eventbingo/internal/catalog"
	"eventbingo/internal/config"
	"eventbingo/internal/state"
	"eventbingo/internal/store"
	"eventbingo/internal/ui"
)

// Options configure the application.
type Options struct {
	ConfigPath string // empty uses default ~/.config/eventbingo/config.toml
	DebugLog   string // overrides the config's debug_log field when set
}

// Run boots the bingo TUI until the context is cancelled or the user quits.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	debugLog := cfg.DebugLog
	if strings.TrimSpace(opts.DebugLog) != "" {
		debugLog = opts.DebugLog
	}
	logger, err := newLogger(debugLog)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	cat, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}

	slots, err := store.Open(cfg.DataDir)
	if err != nil {
		return fmt.Errorf("open data dir: %w", err)
	}

	boardStore := state.NewBoardStore(slots, cat, logger)
	themeStore := state.NewThemeStore(slots, ui.BackgroundIsDark(), logger)

	logger.Debug("starting ui",
		zap.String("data_dir", cfg.DataDir),
		zap.String("theme", string(themeStore.Current())))

	return ui.Run(ui.Options{
		Context: ctx,
		Board:   boardStore,
		Theme:   themeStore,
	})
}

// newLogger builds a debug-level file logger when a path is configured and
// a nop logger otherwise. The log never goes to stdout/stderr, which belong
// to the TUI.
func newLogger(path string) (*zap.Logger, error) {
	if strings.TrimSpace(path) == "" {
		return zap.NewNop(), nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}

	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	zcfg.OutputPaths = []string{path}
	zcfg.ErrorOutputPaths = []string{path}

	logger, err := zcfg.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return logger, nil
}
