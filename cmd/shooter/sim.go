package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/space-shooter/internal/config"
	"github.com/vovakirdan/space-shooter/internal/games/shooter"
	"github.com/vovakirdan/space-shooter/internal/storage"
)

var (
	flagSimSeconds int
	flagSimSave    bool
	flagSimPlayer  string
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a headless game with the autopilot",
	Long: `Run the simulation without a terminal UI. An autopilot dodges enemy
fire and shoots whatever is ahead. The run stops at game over or when
the time limit is reached, then prints a summary.

Runs with the same --seed, --fps, config and difficulty are identical.

Examples:
  shooter sim
  shooter sim --seed 42 --duration 600
  shooter sim --difficulty hard --save`,
	Run: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagSimSeconds, "duration", 120, "Simulated seconds before stopping")
	simCmd.Flags().BoolVar(&flagSimSave, "save", false, "Save the score and run to the database")
	simCmd.Flags().StringVar(&flagSimPlayer, "player", "autopilot", "Player name for the saved run")
	addGameFlags(simCmd, false)
}

func runSim(_ *cobra.Command, _ []string) {
	cfg, err := config.LoadShooter(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	config.ApplyPreset(&cfg, config.ParsePreset(flagDifficulty))

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	fps := flagFPS
	if fps <= 0 {
		fps = 60
	}
	frameMs := 1000 / float64(fps)

	sim := shooter.NewSimulation(cfg, seed, shooter.WithLogger(logger.WithPrefix("sim")))
	pilot := shooter.NewAutopilot()

	frames := flagSimSeconds * fps
	for range frames {
		if sim.GameOverNoticed() {
			break
		}
		pilot.Drive(sim, frameMs)
	}

	stats := sim.Stats()
	snap := sim.Snapshot()
	duration := time.Duration(stats.TimeSurvivedMs) * time.Millisecond

	fmt.Printf("Seed:        %d\n", seed)
	fmt.Printf("Result:      %s\n", simResult(sim.GameOver()))
	fmt.Printf("Survived:    %s\n", duration.Round(time.Millisecond))
	fmt.Printf("Score:       %d\n", snap.Score)
	fmt.Printf("Health:      %d\n", snap.Health)
	fmt.Printf("Max level:   %d\n", stats.MaxLevel)
	fmt.Printf("Kills:       %d enemy, %d asteroid, %d boss\n",
		stats.Kills[shooter.CategoryEnemy], stats.Kills[shooter.CategoryAsteroid], stats.Kills[shooter.CategoryBoss])
	fmt.Printf("Shots:       %d fired, %d hits\n", stats.ShotsFired, stats.Hits)
	fmt.Printf("Drops:       %d collected, %d health restored\n", stats.DropsCollected, stats.HealthRestored)
	fmt.Printf("Damage:      %d taken\n", stats.DamageTaken)
	fmt.Printf("State hash:  %016x\n", snap.Hash())

	if !flagSimSave {
		return
	}

	id, err := saveSimRun(flagDBPath, storage.Run{
		GameID:        shooter.GameID,
		Player:        flagSimPlayer,
		Score:         snap.Score,
		MaxLevel:      stats.MaxLevel,
		KillsEnemy:    stats.Kills[shooter.CategoryEnemy],
		KillsAsteroid: stats.Kills[shooter.CategoryAsteroid],
		KillsBoss:     stats.Kills[shooter.CategoryBoss],
		ShotsFired:    stats.ShotsFired,
		Duration:      duration,
		Seed:          seed,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Run saved:   %s\n", id)
}

// saveSimRun stores run (and its score, when positive) in the database at
// dbPath. The store is closed before returning.
func saveSimRun(dbPath string, run storage.Run) (string, error) {
	store, err := storage.Open(dbPath)
	if err != nil {
		return "", err
	}
	defer store.Close()

	if run.Score > 0 {
		if _, err := store.SaveScore(run.GameID, run.Score); err != nil {
			return "", err
		}
	}
	return store.SaveRun(run)
}

func simResult(over bool) string {
	if over {
		return "destroyed"
	}
	return "survived"
}
