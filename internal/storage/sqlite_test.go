package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Fatal("Database file was not created")
	}
	return store
}

func TestStoreSaveAndRecent(t *testing.T) {
	store := openTestStore(t)

	episodes := []Episode{
		{Seed: 42, Victory: true, Moves: 80, RunesCollected: 3, Duration: 95},
		{Seed: 99, Victory: false, Moves: 12, RunesCollected: 1, Duration: 20},
		{Seed: 7, Victory: true, Moves: 64, RunesCollected: 3, Duration: 70},
	}
	for _, e := range episodes {
		if _, err := store.SaveEpisode(e); err != nil {
			t.Fatalf("SaveEpisode() failed: %v", err)
		}
	}

	recent, err := store.RecentEpisodes(10)
	if err != nil {
		t.Fatalf("RecentEpisodes() failed: %v", err)
	}
	if len(recent) != 3 {
		t.Fatalf("RecentEpisodes() returned %d episodes, want 3", len(recent))
	}

	// Newest first: same timestamp, so id breaks the tie.
	if recent[0].Seed != 7 {
		t.Errorf("recent[0].Seed = %d, want 7", recent[0].Seed)
	}
	if !recent[0].Victory || recent[0].Moves != 64 || recent[0].RunesCollected != 3 {
		t.Errorf("recent[0] = %+v, fields do not round-trip", recent[0])
	}
	if recent[1].Victory {
		t.Error("recent[1].Victory = true, want false")
	}
}

func TestStoreRecentLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		if _, err := store.SaveEpisode(Episode{Seed: int64(i + 1), Moves: i}); err != nil {
			t.Fatalf("SaveEpisode() failed: %v", err)
		}
	}

	recent, err := store.RecentEpisodes(2)
	if err != nil {
		t.Fatalf("RecentEpisodes() failed: %v", err)
	}
	if len(recent) != 2 {
		t.Errorf("RecentEpisodes(2) returned %d episodes, want 2", len(recent))
	}
}

func TestStoreBestVictories(t *testing.T) {
	store := openTestStore(t)

	seeds := []struct {
		seed    int64
		victory bool
		moves   int
	}{
		{1, true, 120},
		{2, false, 15},
		{3, true, 48},
		{4, true, 90},
		{5, false, 200},
	}
	for _, s := range seeds {
		if _, err := store.SaveEpisode(Episode{Seed: s.seed, Victory: s.victory, Moves: s.moves, RunesCollected: 3}); err != nil {
			t.Fatalf("SaveEpisode() failed: %v", err)
		}
	}

	best, err := store.BestVictories(2)
	if err != nil {
		t.Fatalf("BestVictories() failed: %v", err)
	}
	if len(best) != 2 {
		t.Fatalf("BestVictories(2) returned %d episodes, want 2", len(best))
	}
	if best[0].Moves != 48 || best[0].Seed != 3 {
		t.Errorf("best[0] = seed %d / %d moves, want seed 3 / 48 moves", best[0].Seed, best[0].Moves)
	}
	if best[1].Moves != 90 {
		t.Errorf("best[1].Moves = %d, want 90", best[1].Moves)
	}
	for _, e := range best {
		if !e.Victory {
			t.Errorf("BestVictories returned a defeat: %+v", e)
		}
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	// Empty history
	st, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if st.Played != 0 || st.Won != 0 || st.BestMoves != 0 {
		t.Errorf("empty Stats() = %+v, want zeros", st)
	}

	for _, e := range []Episode{
		{Seed: 1, Victory: true, Moves: 70, RunesCollected: 3},
		{Seed: 2, Victory: false, Moves: 9, RunesCollected: 0},
		{Seed: 3, Victory: true, Moves: 55, RunesCollected: 3},
	} {
		if _, err := store.SaveEpisode(e); err != nil {
			t.Fatalf("SaveEpisode() failed: %v", err)
		}
	}

	st, err = store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if st.Played != 3 {
		t.Errorf("Stats().Played = %d, want 3", st.Played)
	}
	if st.Won != 2 {
		t.Errorf("Stats().Won = %d, want 2", st.Won)
	}
	if st.BestMoves != 55 {
		t.Errorf("Stats().BestMoves = %d, want 55", st.BestMoves)
	}
}

func TestStoreOpenBadPath(t *testing.T) {
	// A path under an existing regular file cannot be created.
	tmpDir := t.TempDir()
	blocker := filepath.Join(tmpDir, "blocker")
	if err := os.WriteFile(blocker, []byte("x"), 0o600); err != nil {
		t.Fatal(err)
	}

	_, err := Open(filepath.Join(blocker, "sub", "test.db"))
	if err == nil {
		t.Error("Open() with unusable path succeeded, want error")
	}
}
