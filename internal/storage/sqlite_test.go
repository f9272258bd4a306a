package storage

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
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

func TestStoreOpenClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

// putRaw writes a kv row directly, bypassing the monotonic best-score upsert.
func putRaw(t *testing.T, store *Store, key, value string) {
	t.Helper()
	if _, err := store.db.Exec("INSERT OR REPLACE INTO kv (key, value) VALUES (?, ?)", key, value); err != nil {
		t.Fatalf("insert %q: %v", key, err)
	}
}

func TestStoreHomePath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store, err := Open("~/.dinojump/scores.db")
	if err != nil {
		t.Fatalf("Open() with ~ path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(filepath.Join(home, ".dinojump", "scores.db")); err != nil {
		t.Errorf("database not created under home: %v", err)
	}
}

func TestStoreGet(t *testing.T) {
	store := openTestStore(t)

	if _, ok, err := store.Get("missing"); err != nil || ok {
		t.Errorf("Get(missing) = ok=%v err=%v, expected absent", ok, err)
	}

	putRaw(t, store, "theme", "light")
	v, ok, err := store.Get("theme")
	if err != nil || !ok || v != "light" {
		t.Errorf("Get(theme) = %q, %v, %v; expected light", v, ok, err)
	}
}

func TestStoreBestScore(t *testing.T) {
	store := openTestStore(t)

	best, err := store.BestScore()
	if err != nil {
		t.Fatalf("BestScore() failed: %v", err)
	}
	if best != 0 {
		t.Errorf("missing best score should default to 0, got %d", best)
	}

	if err := store.SetBestScore(7); err != nil {
		t.Fatalf("SetBestScore() failed: %v", err)
	}
	if best, _ := store.BestScore(); best != 7 {
		t.Errorf("BestScore() = %d, expected 7", best)
	}

	// Stored as a textual integer under a single key
	raw, ok, err := store.Get(BestScoreKey)
	if err != nil || !ok || raw != "7" {
		t.Errorf("raw value = %q (ok=%v, err=%v), expected \"7\"", raw, ok, err)
	}

	// A lower score never replaces a higher one
	if err := store.SetBestScore(3); err != nil {
		t.Fatalf("SetBestScore() failed: %v", err)
	}
	if best, _ := store.BestScore(); best != 7 {
		t.Errorf("BestScore() = %d after lower write, expected 7", best)
	}

	if err := store.SetBestScore(12); err != nil {
		t.Fatalf("SetBestScore() failed: %v", err)
	}
	if best, _ := store.BestScore(); best != 12 {
		t.Errorf("BestScore() = %d, expected 12", best)
	}
}

func TestStoreBestScoreSurvivesReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if err := store.SetBestScore(42); err != nil {
		t.Fatalf("SetBestScore() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()

	if best, _ := store.BestScore(); best != 42 {
		t.Errorf("BestScore() after reopen = %d, expected 42", best)
	}
}

func TestStoreMalformedBestScore(t *testing.T) {
	store := openTestStore(t)

	putRaw(t, store, BestScoreKey, "lots")
	if _, err := store.BestScore(); err == nil {
		t.Error("expected error for malformed best score")
	}
}

func TestStoreConcurrentBestScore(t *testing.T) {
	store := openTestStore(t)

	var wg sync.WaitGroup
	for i := 1; i <= 20; i++ {
		wg.Add(1)
		go func(score int) {
			defer wg.Done()
			if err := store.SetBestScore(score); err != nil {
				t.Errorf("SetBestScore(%d) failed: %v", score, err)
			}
		}(i)
	}
	wg.Wait()

	if best, _ := store.BestScore(); best != 20 {
		t.Errorf("BestScore() = %d, expected the maximum 20", best)
	}
}

func TestStoreSaveAndTopScores(t *testing.T) {
	store := openTestStore(t)

	for _, s := range []int{100, 50, 200} {
		if _, err := store.SaveScore(s); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	scores, err := store.TopScores(10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}
	if scores[0].Score != 200 || scores[1].Score != 100 || scores[2].Score != 50 {
		t.Errorf("Scores not in descending order: %v", scores)
	}
	if scores[0].CreatedAt.IsZero() {
		t.Error("CreatedAt should be populated")
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveScore((i + 1) * 100)
	}

	scores, err := store.TopScores(3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Errorf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Runs != 0 || stats.HighScore != 0 || !stats.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", stats)
	}

	store.SaveScore(10)
	store.SaveScore(20)
	store.SaveScore(30)

	stats, err = store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Runs != 3 || stats.HighScore != 30 || stats.TotalScore != 60 || stats.AvgScore != 20 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}
}

func TestStoreReset(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore(10)
	store.SetBestScore(10)
	putRaw(t, store, "other", "kept")

	if err := store.Reset(); err != nil {
		t.Fatalf("Reset() failed: %v", err)
	}

	if scores, _ := store.TopScores(10); len(scores) != 0 {
		t.Errorf("Expected no scores after reset, got %d", len(scores))
	}
	if best, _ := store.BestScore(); best != 0 {
		t.Errorf("best score after reset = %d", best)
	}
	if v, ok, _ := store.Get("other"); !ok || v != "kept" {
		t.Error("Reset should only clear score data")
	}
}
