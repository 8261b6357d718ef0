package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/space-shooter/internal/games/shooter"
	"github.com/vovakirdan/space-shooter/internal/platform/tui"
	"github.com/vovakirdan/space-shooter/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play in this terminal",
	Long: `Start playing. The game defaults to the space shooter.

Controls:
  Arrows/WASD  - Move
  Space/F      - Fire (hold)
  P            - Pause
  R            - Restart (after game over)
  Esc/B        - Leave (when paused or after game over)
  Ctrl+S       - Save a text screenshot
  Q/Ctrl+C     - Quit

Difficulty presets:
  easy   - Level up every 45s
  normal - Level up every 30s
  hard   - Level up every 20s
  fixed  - Stay at level 1

Examples:
  shooter play
  shooter play --difficulty hard
  shooter play --config ./my-shooter.yaml --sound`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	addGameFlags(playCmd, true)
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := shooter.GameID
	if len(args) == 1 {
		gameID = args[0]
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'shooter list' to see available games.")
		os.Exit(1)
	}

	release := configureGame()
	store := openStore()

	runErr := tui.Run(game, store, runtimeConfig(), tui.WithLogger(logger))

	release()
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
