package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/space-shooter/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with the main menu",
	Long: `Start in interactive menu mode: play, view high scores, or quit.
After a game ends, Esc returns to the menu.

Controls:
  Up/Down/j/k  - Navigate
  Enter/Space  - Select
  Tab          - High scores
  Q            - Quit

Examples:
  shooter menu
  shooter menu --fps 30 --sound`,
	Run: runMenu,
}

func init() {
	addGameFlags(menuCmd, true)
}

func runMenu(_ *cobra.Command, _ []string) {
	release := configureGame()
	store := openStore()

	err := tui.RunSession(store, runtimeConfig(), logger)

	release()
	if store != nil {
		store.Close()
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
