// firetower is a terminal adaptation of the Fire Tower board game:
// 2-4 players defend their corner towers while a wind-driven forest
// fire spreads from the center of a 16x16 board.
//
// Usage:
//
//	firetower play             - Start a local hotseat game
//	firetower serve            - Start SSH server for remote play
//	firetower history          - Show recent matches and standings
//	firetower actions          - Print the card action reference
//
// Global flags:
//
//	--seed <value>  - Set RNG seed for reproducible wind
//	--db <path>     - Set database path (default: ~/.firetower/matches.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "firetower",
	Short: "Fire Tower - a wildfire board game in your terminal",
	Long: `Fire Tower is a terminal board game for 2-4 players. A forest fire
spreads from the eternal flame at the center of the board, pushed by a
shifting wind. Each player defends the tower in their corner; the last
tower standing wins.

Available commands:
  play     - Start a local hotseat game
  serve    - Start SSH server for remote play
  history  - Show recent matches and win standings
  actions  - Print the card action reference

Examples:
  firetower play
  firetower play --players 2 --name Alice --name Bob
  firetower serve --ssh :2222
  firetower history --limit 20
  firetower actions`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.firetower/matches.db", "Path to match database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(actionsCmd)
}
