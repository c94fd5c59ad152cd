package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/pkamenev/firetower/internal/platform/tui"
	"github.com/pkamenev/firetower/internal/storage"
)

var (
	flagLimit int
	flagPlain bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent matches and win standings",
	Long: `Show the match history stored in the database.

By default this opens an interactive view; tab switches between recent
matches and per-player win standings. With --plain the recent matches
are printed to stdout instead.

Examples:
  firetower history
  firetower history --limit 20
  firetower history --plain
  firetower history --db ./matches.db`,
	Run: runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of matches to show with --plain")
	historyCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print plain text instead of the interactive view")
}

func runHistory(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening match database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagPlain {
		printHistory(store)
		return
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	if err := tui.RunHistory(store, width, height); err != nil {
		fmt.Fprintf(os.Stderr, "Error showing history: %v\n", err)
		os.Exit(1)
	}
}

func printHistory(store *storage.Store) {
	matches, err := store.RecentMatches(flagLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading matches: %v\n", err)
		os.Exit(1)
	}

	if len(matches) == 0 {
		fmt.Println("No matches recorded yet.")
		return
	}

	fmt.Printf("  %-16s  %-7s  %-6s  %s\n", "Winner", "Players", "Moves", "Date")
	fmt.Printf("  %-16s  %-7s  %-6s  %s\n", "------", "-------", "-----", "----")
	for _, rec := range matches {
		fmt.Printf("  %-16s  %-7d  %-6d  %s\n",
			rec.Winner, rec.PlayerCount, rec.Turns,
			rec.CreatedAt.Format("Jan 02 15:04"))
	}
}
