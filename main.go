package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"grid-inventory/internal/audio"
	"grid-inventory/internal/config"
	"grid-inventory/internal/game"

	"github.com/gdamore/tcell/v2"
)

func main() {
	cfgFile := flag.String("config", "", "Path to a YAML inventory config (built-in catalog if empty)")
	logFile := flag.String("log", "", "Write debug logs to this file")
	mute := flag.Bool("mute", false, "Start with sound off")
	flag.Parse()

	if err := run(*cfgFile, *logFile, *mute); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(cfgFile, logFile string, mute bool) error {
	cfg := config.Default()
	if cfgFile != "" {
		var err error
		if cfg, err = config.Load(cfgFile); err != nil {
			return err
		}
	}

	// The terminal belongs to tcell, so logs only go to a file.
	logger := slog.New(slog.DiscardHandler)
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return fmt.Errorf("open log: %w", err)
		}
		defer f.Close()
		logger = slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	player := audio.NewPlayer(cfg.Audio.Enabled && !mute, cfg.Audio.Volume, logger)
	if err := player.Init(); err != nil {
		logger.Warn("audio unavailable", "err", err)
		player.SetMuted(true)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}

	g, err := game.New(screen, cfg,
		game.WithLogger(logger),
		game.WithAudio(player),
		game.WithPlayerName(os.Getenv("USER")),
		game.WithSessionLog(),
	)
	if err != nil {
		screen.Fini()
		return err
	}
	g.Run()
	return nil
}
