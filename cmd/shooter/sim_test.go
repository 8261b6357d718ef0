package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/vovakirdan/space-shooter/internal/games/shooter"
	"github.com/vovakirdan/space-shooter/internal/storage"
)

func TestSaveSimRun(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "scores.db")

	id, err := saveSimRun(dbPath, storage.Run{
		GameID:     shooter.GameID,
		Player:     "autopilot",
		Score:      85,
		MaxLevel:   3,
		KillsEnemy: 6,
		Duration:   90 * time.Second,
		Seed:       42,
	})
	if err != nil {
		t.Fatalf("saveSimRun() error = %v", err)
	}

	store, err := storage.Open(dbPath)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer store.Close()

	run, err := store.RunByID(id)
	if err != nil {
		t.Fatalf("RunByID() error = %v", err)
	}
	if run == nil || run.Score != 85 || run.Seed != 42 || run.Player != "autopilot" {
		t.Errorf("run = %+v, expected score 85 seed 42 by autopilot", run)
	}

	best, err := store.HighScore(shooter.GameID)
	if err != nil {
		t.Fatalf("HighScore() error = %v", err)
	}
	if best != 85 {
		t.Errorf("HighScore() = %d, expected 85", best)
	}
}

func TestSaveSimRunZeroScoreSkipsScoreboard(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "scores.db")

	if _, err := saveSimRun(dbPath, storage.Run{GameID: shooter.GameID}); err != nil {
		t.Fatalf("saveSimRun() error = %v", err)
	}

	store, err := storage.Open(dbPath)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer store.Close()

	scores, err := store.TopScores(shooter.GameID, 10)
	if err != nil {
		t.Fatalf("TopScores() error = %v", err)
	}
	if len(scores) != 0 {
		t.Errorf("len(scores) = %d, expected 0", len(scores))
	}
	runs, err := store.RecentRuns(shooter.GameID, 10)
	if err != nil {
		t.Fatalf("RecentRuns() error = %v", err)
	}
	if len(runs) != 1 {
		t.Errorf("len(runs) = %d, expected 1", len(runs))
	}
}

func TestSaveSimRunOpenError(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(blocker, []byte("x"), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	if _, err := saveSimRun(filepath.Join(blocker, "scores.db"), storage.Run{GameID: shooter.GameID, Score: 10}); err == nil {
		t.Error("saveSimRun() under a regular file succeeded, expected an error")
	}
}
