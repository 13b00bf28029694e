package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"tileworld/internal/config"
	"tileworld/internal/logging"
)

func main() {
	logging.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo})))

	// 1. Window Setup
	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetTPS(config.TPS)

	// 2. Initialize Game
	game, err := NewGame(config.Default())
	if err != nil {
		log.Fatal(err)
	}

	// 3. Run Loop
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
