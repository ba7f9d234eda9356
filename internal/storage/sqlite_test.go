package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpen(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndTopRuns(t *testing.T) {
	store := openTestStore(t)

	id, err := store.SaveRun(Run{Score: 12, Stars: 4, Duration: 3500 * time.Millisecond, Seed: 42, Difficulty: "normal"})
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if id <= 0 {
		t.Errorf("Expected positive ID, got %d", id)
	}
	if _, err := store.SaveRun(Run{Player: "alice", Score: 30, Stars: 9}); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	runs, err := store.TopRuns(10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("Expected 2 runs, got %d", len(runs))
	}
	if runs[0].Player != "alice" || runs[0].Score != 30 {
		t.Errorf("Expected alice's 30 first, got %+v", runs[0])
	}

	local := runs[1]
	if local.Player != LocalPlayer {
		t.Errorf("Expected empty player to be stored as %q, got %q", LocalPlayer, local.Player)
	}
	if local.Stars != 4 || local.Seed != 42 || local.Difficulty != "normal" {
		t.Errorf("Run fields not round-tripped: %+v", local)
	}
	if local.Duration != 3500*time.Millisecond {
		t.Errorf("Expected duration 3.5s, got %v", local.Duration)
	}
	if local.CreatedAt.IsZero() {
		t.Error("Expected CreatedAt to be set")
	}
}

func TestStoreTopRunsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveRun(Run{Score: (i + 1) * 10})
	}

	runs, err := store.TopRuns(3)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("Expected 3 runs with limit, got %d", len(runs))
	}
	if runs[0].Score != 50 || runs[1].Score != 40 || runs[2].Score != 30 {
		t.Errorf("Runs not in expected order: %v", runs)
	}
}

func TestStorePlayerRuns(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(Run{Player: "alice", Score: 5})
	store.SaveRun(Run{Player: "bob", Score: 50})
	store.SaveRun(Run{Player: "alice", Score: 7})

	runs, err := store.PlayerRuns("alice", 0)
	if err != nil {
		t.Fatalf("PlayerRuns() failed: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("Expected 2 runs for alice, got %d", len(runs))
	}
	if runs[0].Score != 7 {
		t.Errorf("Expected 7 first, got %d", runs[0].Score)
	}

	players, err := store.Players()
	if err != nil {
		t.Fatalf("Players() failed: %v", err)
	}
	if len(players) != 2 || players[0] != "alice" || players[1] != "bob" {
		t.Errorf("Expected [alice bob], got %v", players)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty log, got %d", high)
	}

	store.SaveRun(Run{Score: 10})
	store.SaveRun(Run{Score: 30})
	store.SaveRun(Run{Score: 20})

	high, err = store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 30 {
		t.Errorf("Expected high score of 30, got %d", high)
	}
}

func TestStoreClearRunsKeepsBest(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(Run{Score: 10})
	store.SaveBest(LocalPlayer, 10)

	if err := store.ClearRuns(); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	runs, _ := store.TopRuns(10)
	if len(runs) != 0 {
		t.Errorf("Expected 0 runs after clear, got %d", len(runs))
	}
	best, _ := store.LoadBest(LocalPlayer)
	if best != 10 {
		t.Errorf("Expected best score to survive clear, got %d", best)
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Runs != 0 || stats.HighScore != 0 {
		t.Errorf("Expected empty stats, got %+v", stats)
	}
	if !stats.LastPlayed.IsZero() {
		t.Errorf("Expected zero LastPlayed for empty log, got %v", stats.LastPlayed)
	}

	store.SaveRun(Run{Score: 10, Stars: 3, Duration: time.Second})
	store.SaveRun(Run{Score: 20, Stars: 5, Duration: 2 * time.Second})

	stats, err = store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Runs != 2 {
		t.Errorf("Expected 2 runs, got %d", stats.Runs)
	}
	if stats.HighScore != 20 {
		t.Errorf("Expected high score 20, got %d", stats.HighScore)
	}
	if stats.AvgScore != 15 {
		t.Errorf("Expected average 15, got %f", stats.AvgScore)
	}
	if stats.TotalStars != 8 {
		t.Errorf("Expected 8 stars, got %d", stats.TotalStars)
	}
	if stats.TotalTime != 3*time.Second {
		t.Errorf("Expected 3s total, got %v", stats.TotalTime)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("Expected LastPlayed to be set")
	}
}

func TestStoreBestScores(t *testing.T) {
	store := openTestStore(t)

	best, err := store.LoadBest("alice")
	if err != nil {
		t.Fatalf("LoadBest() failed: %v", err)
	}
	if best != 0 {
		t.Errorf("Expected 0 for unknown player, got %d", best)
	}

	if err := store.SaveBest("alice", 12); err != nil {
		t.Fatalf("SaveBest() failed: %v", err)
	}
	if err := store.SaveBest("alice", 8); err != nil {
		t.Fatalf("SaveBest() failed: %v", err)
	}
	store.SaveBest("bob", 3)

	if best, _ := store.LoadBest("alice"); best != 12 {
		t.Errorf("Expected lower score not to replace best, got %d", best)
	}
	if best, _ := store.LoadBest("bob"); best != 3 {
		t.Errorf("Expected bob's best 3, got %d", best)
	}

	pb := store.BestFor("carol")
	if err := pb.SaveBest(40); err != nil {
		t.Fatalf("PlayerBest.SaveBest() failed: %v", err)
	}
	if best, _ := pb.LoadBest(); best != 40 {
		t.Errorf("Expected carol's best 40, got %d", best)
	}
}

func TestStorePersistence(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "persist.db")

	store1, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	store1.SaveRun(Run{Score: 25})
	store1.SaveBest(LocalPlayer, 25)
	store1.Close()

	store2, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed on reopen: %v", err)
	}
	defer store2.Close()

	runs, _ := store2.TopRuns(10)
	if len(runs) != 1 || runs[0].Score != 25 {
		t.Errorf("Run did not persist: %v", runs)
	}
	if best, _ := store2.LoadBest(LocalPlayer); best != 25 {
		t.Errorf("Best score did not persist, got %d", best)
	}
}
