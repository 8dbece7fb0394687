package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"maze-friend/internal/config"
	"maze-friend/internal/game"
	"maze-friend/internal/settings"

	"github.com/gdamore/tcell/v2"
)

func main() {
	cfgFile := flag.String("config", "", "Game config YAML (embedded default if empty)")
	seed := flag.Int64("seed", 0, "Maze seed (0 picks one from the clock)")
	logFile := flag.String("log", "", "Write debug logs to this file")
	flag.Parse()

	if err := run(*cfgFile, *seed, *logFile); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(cfgFile string, seed int64, logFile string) error {
	logger, closeLog, err := openLogger(logFile)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	settingsPath, err := settings.Path()
	if err != nil {
		logger.Warn("settings: no config dir, changes will not be saved", "error", err)
		settingsPath = ""
	}
	sound, err := settings.Load(settingsPath)
	if err != nil {
		logger.Warn("settings: using defaults", "path", settingsPath, "error", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	g, err := game.New(screen, game.Options{
		Config:       cfg,
		Sound:        sound,
		SettingsPath: settingsPath,
		Seed:         seed,
		Player:       os.Getenv("USER"),
		Logger:       logger,
		SaveRuns:     true,
	})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	defer stop()
	return g.Run(ctx)
}

// openLogger returns a debug logger writing to path, or a discarding one when
// path is empty. The terminal belongs to the game, so logs never go there.
func openLogger(path string) (*slog.Logger, func(), error) {
	if path == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log: %w", err)
	}
	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return logger, func() { f.Close() }, nil
}
