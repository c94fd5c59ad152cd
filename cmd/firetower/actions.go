package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pkamenev/firetower/internal/engine"
)

var actionsCmd = &cobra.Command{
	Use:   "actions",
	Short: "Print the card action reference",
	Long:  `Shows every card action, its in-game key and what it does.`,
	Run:   runActions,
}

func runActions(_ *cobra.Command, _ []string) {
	fmt.Println("Card actions (select with keys 1-8 in game):")
	fmt.Println()

	for _, info := range engine.Actions() {
		name := info.Name
		if info.Oriented {
			name += " (press again to flip orientation)"
		}
		fmt.Printf("  %d  %s\n", int(info.Kind)+1, name)
		fmt.Printf("     %s\n", info.Description)
		fmt.Println()
	}
}
