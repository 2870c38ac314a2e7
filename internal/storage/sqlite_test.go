package storage

import (
	"os"
	"path/filepath"
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

func mustSave(t *testing.T, store *Store, r Result) int64 {
	t.Helper()
	id, err := store.SaveResult(r)
	if err != nil {
		t.Fatalf("SaveResult(%+v) failed: %v", r, err)
	}
	return id
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreReopenKeepsResults(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	mustSave(t, store, Result{GameID: "breakout", Player: "ada", Score: 300})
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("second Open() failed: %v", err)
	}
	defer store.Close()

	high, err := store.HighScore("breakout")
	if err != nil || high != 300 {
		t.Errorf("HighScore() = %d, %v, expected 300", high, err)
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	mustSave(t, store, Result{GameID: "breakout", Player: "ada", SessionID: "s1", Score: 100, Level: 1})
	mustSave(t, store, Result{GameID: "breakout", Player: "bob", SessionID: "s2", Score: 50, Level: 1})
	mustSave(t, store, Result{GameID: "breakout", Player: "ada", SessionID: "s3", Score: 1500, Level: 2, Won: true})
	mustSave(t, store, Result{GameID: "other", Player: "eve", Score: 500})

	scores, err := store.TopScores("breakout", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	// Should be sorted descending
	want := []int{1500, 100, 50}
	for i, w := range want {
		if scores[i].Score != w {
			t.Errorf("scores[%d].Score = %d, expected %d", i, scores[i].Score, w)
		}
	}

	top := scores[0]
	if top.Player != "ada" || top.SessionID != "s3" || top.Level != 2 || !top.Won {
		t.Errorf("top result = %+v, expected ada/s3 level 2 won", top)
	}
	if top.CreatedAt.IsZero() {
		t.Error("CreatedAt should be populated")
	}

	other, err := store.TopScores("other", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(other) != 1 {
		t.Errorf("Expected 1 score for other game, got %d", len(other))
	}
}

func TestStoreSaveRejectsInvalid(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveResult(Result{Score: 10}); err == nil {
		t.Error("empty game id should be rejected")
	}
	if _, err := store.SaveResult(Result{GameID: "breakout", Score: -1}); err == nil {
		t.Error("negative score should be rejected")
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		mustSave(t, store, Result{GameID: "test", Score: (i + 1) * 100})
	}

	// Request only top 3
	scores, err := store.TopScores("test", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Errorf("Expected 3 scores with limit, got %d", len(scores))
	}

	// Should be 500, 400, 300 (top 3)
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}

	// Zero limit falls back to 10
	scores, err = store.TopScores("test", 0)
	if err != nil || len(scores) != 5 {
		t.Errorf("TopScores(0) = %d results, %v, expected 5", len(scores), err)
	}
}

func TestStoreTiesKeepInsertOrder(t *testing.T) {
	store := openTestStore(t)

	first := mustSave(t, store, Result{GameID: "breakout", Player: "first", Score: 200})
	mustSave(t, store, Result{GameID: "breakout", Player: "second", Score: 200})

	scores, err := store.TopScores("breakout", 2)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if scores[0].ID != first {
		t.Errorf("tie order = %s first, expected the earlier result", scores[0].Player)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	// No scores yet
	high, err := store.HighScore("breakout")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	for _, s := range []int{100, 300, 200} {
		mustSave(t, store, Result{GameID: "breakout", Score: s})
	}

	high, err = store.HighScore("breakout")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStorePlayerResults(t *testing.T) {
	store := openTestStore(t)

	mustSave(t, store, Result{GameID: "breakout", Player: "ada", Score: 10})
	mustSave(t, store, Result{GameID: "breakout", Player: "bob", Score: 20})
	mustSave(t, store, Result{GameID: "breakout", Player: "ada", Score: 30})

	results, err := store.PlayerResults("breakout", "ada", 10)
	if err != nil {
		t.Fatalf("PlayerResults() failed: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("Expected 2 results for ada, got %d", len(results))
	}
	// Most recent first
	if results[0].Score != 30 || results[1].Score != 10 {
		t.Errorf("PlayerResults order = %d, %d, expected 30, 10", results[0].Score, results[1].Score)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	mustSave(t, store, Result{GameID: "breakout", Score: 100})
	mustSave(t, store, Result{GameID: "breakout", Score: 200})
	mustSave(t, store, Result{GameID: "other", Score: 300})

	if err := store.ClearScores("breakout"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	scores, _ := store.TopScores("breakout", 10)
	if len(scores) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(scores))
	}

	others, _ := store.TopScores("other", 10)
	if len(others) != 1 {
		t.Errorf("Other game scores should not be affected by clearing")
	}
}

func TestStoreAllScores(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 20; i++ {
		mustSave(t, store, Result{GameID: "test", Score: i * 10})
	}

	scores, err := store.AllScores("test")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}

	if len(scores) != 20 {
		t.Errorf("Expected 20 scores, got %d", len(scores))
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.GetGameStats("breakout")
	if err != nil {
		t.Fatalf("GetGameStats() on empty store failed: %v", err)
	}
	if empty.GamesCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", empty)
	}

	mustSave(t, store, Result{GameID: "breakout", Score: 100, Level: 1})
	mustSave(t, store, Result{GameID: "breakout", Score: 300, Level: 3, Won: true})

	stats, err := store.GetGameStats("breakout")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.Wins != 1 || stats.HighScore != 300 || stats.BestLevel != 3 {
		t.Errorf("stats = %+v, expected 2 games, 1 win, high 300, level 3", stats)
	}
	if stats.AvgScore != 200 || stats.TotalScore != 400 {
		t.Errorf("avg/total = %g/%d, expected 200/400", stats.AvgScore, stats.TotalScore)
	}

	all, err := store.GetAllGamesStats()
	if err != nil {
		t.Fatalf("GetAllGamesStats() failed: %v", err)
	}
	if all["breakout"] == nil || all["breakout"].GamesCount != 2 {
		t.Errorf("GetAllGamesStats() = %v, expected breakout entry", all)
	}
}

func TestResolvePath(t *testing.T) {
	t.Setenv(EnvPath, "")
	if got := ResolvePath(""); got != DefaultPath {
		t.Errorf("ResolvePath(\"\") = %q, expected %q", got, DefaultPath)
	}

	t.Setenv(EnvPath, "/tmp/env.db")
	if got := ResolvePath(""); got != "/tmp/env.db" {
		t.Errorf("ResolvePath with env = %q, expected /tmp/env.db", got)
	}
	if got := ResolvePath("/tmp/flag.db"); got != "/tmp/flag.db" {
		t.Errorf("ResolvePath with flag = %q, expected /tmp/flag.db", got)
	}
}

func TestStoreExpandHomePath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store, err := Open("~/nested/deep/test.db")
	if err != nil {
		t.Fatalf("Open() with home path failed: %v", err)
	}
	defer store.Close()

	// Verify nested directories were created under home
	if _, err := os.Stat(filepath.Join(home, "nested", "deep", "test.db")); os.IsNotExist(err) {
		t.Error("Database file was not created in nested home directory")
	}
}
