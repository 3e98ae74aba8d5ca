package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"addressprocessor/pkg/config"

	"github.com/lmittmann/tint"
	"github.com/spf13/viper"
	"golang.org/x/term"
)

// app carries the resolved configuration from the root command to its subcommands.
type app struct {
	v       *viper.Viper
	cfg     *config.Config
	logFile io.Closer
}

func newApp() *app {
	return &app{v: config.New()}
}

// load resolves the configuration and installs the default logger.
func (a *app) load(configFile string) error {
	cfg, err := config.Load(a.v, configFile)
	if err != nil {
		return err
	}
	a.cfg = cfg

	opts := &slog.HandlerOptions{Level: cfg.LogLevel}
	if cfg.LogPath != "" {
		f, err := os.OpenFile(cfg.LogPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return fmt.Errorf("failed to open log file %q: %w", cfg.LogPath, err)
		}
		a.logFile = f
		slog.SetDefault(slog.New(slog.NewTextHandler(f, opts)))
		return nil
	}

	slog.SetDefault(slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      cfg.LogLevel,
		TimeFormat: time.TimeOnly,
		NoColor:    !term.IsTerminal(int(os.Stderr.Fd())),
	})))
	return nil
}

// Close releases the log file, if one was opened.
func (a *app) Close() {
	if a.logFile != nil {
		_ = a.logFile.Close()
		a.logFile = nil
	}
}
