package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/pkamenev/firetower/internal/config"
	"github.com/pkamenev/firetower/internal/core"
	"github.com/pkamenev/firetower/internal/platform/tui"
	"github.com/pkamenev/firetower/internal/storage"
)

var (
	flagPlayers int
	flagNames   []string
	flagConfig  string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a local hotseat game",
	Long: `Start a local game for 2-4 players sharing one keyboard.

Controls:
  Arrows/hjkl  - Move the board cursor
  1-8          - Select a card action (press again to flip orientation)
  Enter/Space  - Apply the selected card at the cursor
  W            - Roll the wind
  R            - Rematch (after game over)
  Q/Ctrl+C     - Quit

Player names come from --name flags, then the config file, then
positional placeholders. Seats fill the corners NW, NE, SE, SW in order.

Examples:
  firetower play
  firetower play --players 2
  firetower play --players 3 --name Alice --name Bob --name Carol
  firetower play --config ./my-theme.yaml
  firetower play --seed 42`,
	Run: runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagPlayers, "players", 0, "Number of players, 2-4 (default from config)")
	playCmd.Flags().StringArrayVar(&flagNames, "name", nil, "Player name, repeatable, in seat order")
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
}

func runPlay(_ *cobra.Command, _ []string) {
	clientCfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	players := flagPlayers
	if players == 0 {
		players = clientCfg.Seating.Count
	}
	names := flagNames
	if len(names) == 0 {
		names = clientCfg.Seating.Names
	}
	if len(names) > players {
		names = names[:players]
	}

	// Get terminal size
	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Open match storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open match database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(tui.Options{
		Config: core.RuntimeConfig{
			ScreenW: width,
			ScreenH: height,
			Seed:    flagSeed,
		},
		Theme:       clientCfg.Theme,
		PlayerCount: players,
		Names:       names,
		Store:       store,
	})

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
