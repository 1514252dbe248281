package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/platform/tui"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a game of 2048.

Controls:
  Arrows/WASD/hjkl  - Slide tiles
  R                 - New game
  ?                 - Toggle full help
  Q/Esc/Ctrl+C      - Quit
  Ctrl+S            - Save a screenshot to ~/.t2048/screenshots

Finished games are recorded in the scores database.

Examples:
  t2048 play
  t2048 play --seed 42
  t2048 play --db ./scores.db`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Continue without storage - game still works
	store, err := storage.Open(appConfig.Storage.Path)
	if err != nil {
		logger.Warn("could not open scores database", "path", appConfig.Storage.Path, "error", err)
		store = nil
	}

	host := tui.NewHost(
		core.RuntimeConfig{ScreenW: width, ScreenH: height, Seed: flagSeed},
		tui.HostOptions{
			Store:    store,
			Logger:   logger,
			Player:   "local",
			ShareURL: appConfig.Share.URL,
		},
	)

	runErr := tui.Run(host, width, height)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		return fmt.Errorf("running game: %w", runErr)
	}

	// Leave the share text in the terminal after the alt screen closes
	if host.State() == tui.StateOver {
		fmt.Println(host.Game().ShareText())
	}
	return nil
}
