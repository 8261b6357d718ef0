// shooter is a terminal space shooter.
//
// Usage:
//
//	shooter play              - Play in this terminal
//	shooter menu              - Menu with play, high scores and quit
//	shooter serve             - Serve menu sessions over SSH
//	shooter scores            - Show high scores and recent runs
//	shooter sim               - Run a headless autopilot game
//	shooter config            - Print the default game config
//	shooter list              - List registered games
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--db <path>          - Set database path (default: ~/.shooter/scores.db)
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/space-shooter/internal/audio"
	"github.com/vovakirdan/space-shooter/internal/config"
	"github.com/vovakirdan/space-shooter/internal/core"
	"github.com/vovakirdan/space-shooter/internal/games/shooter"
	"github.com/vovakirdan/space-shooter/internal/logging"
	"github.com/vovakirdan/space-shooter/internal/storage"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string

	// Game flags shared by play, menu and sim
	flagConfig     string
	flagDifficulty string
	flagSound      bool

	logger *log.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "shooter",
	Short: "Space Shooter - an arcade shooter for your terminal",
	Long: `Space Shooter is a side-scrolling arcade shooter that runs in the terminal,
locally or over SSH.

Available commands:
  play     - Play in this terminal
  menu     - Interactive menu
  serve    - Start SSH server for remote play
  scores   - View high scores and recent runs
  sim      - Headless autopilot run
  config   - Print the default config

Environment (also read from .env):
  SHOOTER_DB         - default for --db
  SHOOTER_SSH_ADDR   - default for serve --ssh
  SHOOTER_HOST_KEY   - default for serve --host-key
  SHOOTER_LOG_LEVEL  - default for --log-level

Examples:
  shooter play
  shooter play --difficulty hard --sound
  shooter menu
  shooter serve --ssh :2222
  shooter sim --duration 300 --save`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", logging.DefaultLevel, "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
}

// addGameFlags registers the flags that shape a game.
func addGameFlags(cmd *cobra.Command, withSound bool) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	if withSound {
		cmd.Flags().BoolVar(&flagSound, "sound", false, "Play synthesized sound effects")
	}
}

// setup loads .env, fills unset flags from the environment and builds the logger.
func setup(cmd *cobra.Command, _ []string) error {
	if err := config.LoadEnv(); err != nil {
		return fmt.Errorf("cannot load .env: %w", err)
	}

	envDefault(cmd, "db", &flagDBPath, config.EnvDBPath)
	envDefault(cmd, "log-level", &flagLogLevel, config.EnvLogLevel)

	l, err := logging.New(os.Stderr, "shooter", flagLogLevel)
	if err != nil {
		return err
	}
	logger = l
	return nil
}

// envDefault replaces *dst with the environment value unless the flag was set.
func envDefault(cmd *cobra.Command, flag string, dst *string, env string) {
	if f := cmd.Flags().Lookup(flag); f != nil && f.Changed {
		return
	}
	*dst = config.GetEnv(env, *dst)
}

// configureGame hands the game flags to the shooter package. The returned
// function releases the audio device.
func configureGame() func() {
	shooter.SetConfigPath(flagConfig)
	shooter.SetDifficultyPreset(flagDifficulty)
	shooter.SetLogger(logger.WithPrefix("game"))

	if !flagSound {
		return func() {}
	}
	player := audio.NewPlayer(1)
	if err := player.Init(); err != nil {
		logger.Warn("sound disabled", "err", err)
		return func() {}
	}
	shooter.SetSoundSink(player)
	return player.Close
}

// openStore opens the scores database, warning instead of failing.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		return nil
	}
	return store
}

// runtimeConfig sizes the game to the current terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}
