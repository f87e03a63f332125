package main

import (
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"sketchmatch/internal/config"
	"sketchmatch/internal/logger"
)

const WindowTitle = "Sketch Match"

func main() {
	configPath := flag.String("config", "", "JSON config file")
	target := flag.String("target", "", "embedded target name or image file")
	scale := flag.Int("scale", 0, "display pixels per canvas pixel")
	logLevel := flag.String("log", "", "log level (debug, info, warn, error)")
	flag.Parse()

	// 1. Config
	var cfg config.Config
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		if err != nil {
			log.Fatal(err)
		}
	}
	cfg.Resolve(config.Flags{Target: *target, Scale: *scale, LogLevel: *logLevel})
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	// 2. Logging
	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Printf("log level %q: %v", cfg.LogLevel, err)
	}
	logger.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	// 3. Window Setup
	ebiten.SetWindowSize(cfg.Width*cfg.Scale, cfg.Height*cfg.Scale)
	ebiten.SetWindowTitle(WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	// 4. Initialize Game
	game, err := NewGame(cfg)
	if err != nil {
		log.Fatal(err)
	}

	// 5. Run Loop
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
