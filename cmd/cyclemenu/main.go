package main

import (
	"errors"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/depeter/cyclemenu/assets/icon"
	"github.com/depeter/cyclemenu/internal/app"
	"github.com/depeter/cyclemenu/internal/config"
	"github.com/depeter/cyclemenu/internal/logging"
	"github.com/depeter/cyclemenu/internal/state"
	"github.com/depeter/cyclemenu/internal/ui"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Load config
	cfg, err := config.Load()
	if err != nil {
		logging.Get().Error("Failed to load config", "error", err)
		return 1
	}

	if cfg.Log.Path != "" {
		logging.SetLogPath(cfg.Log.Path)
	}
	logging.SetRawLogLevel(cfg.Log.Level)
	logger := logging.Get()
	defer logging.Close()

	if err := ui.InitFonts(); err != nil {
		logger.Error("Failed to init fonts", "error", err)
		return 1
	}

	// State is optional; the menu just starts at its first item without it.
	var store *state.Manager
	if cfg.State.DBPath != "" {
		store, err = state.OpenPath(cfg.State.DBPath)
	} else {
		store, err = state.Open()
	}
	if err != nil {
		logger.Warn("Menu state unavailable", "error", err)
		store = nil
	} else {
		store.SetLogger(logger)
		defer func() {
			if err := store.Close(); err != nil {
				logger.Warn("Failed to close menu state", "error", err)
			}
		}()
	}

	items := app.DemoItems(cfg.Menu.ItemCount, ui.IconNames())
	game, err := app.NewGame(cfg, items, store, logger)
	if err != nil {
		logger.Error("Failed to create menu", "error", err)
		return 1
	}

	// Configure window
	ebiten.SetWindowSize(cfg.UI.Width, cfg.UI.Height)
	ebiten.SetWindowTitle("Cycle Menu")
	ebiten.SetWindowIcon(icon.Generate())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(cfg.UI.Fullscreen)

	err = ebiten.RunGame(game)
	game.Shutdown()
	if err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Error("Game loop failed", "error", err)
		return 1
	}
	return 0
}
