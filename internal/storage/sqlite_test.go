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

func TestStoreOpenClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestOpenExpandsHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store, err := Open("~/.fishfeast/scores.db")
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(filepath.Join(home, ".fishfeast", "scores.db")); err != nil {
		t.Errorf("database not created under home: %v", err)
	}
}

func TestLoadBestAbsent(t *testing.T) {
	store := openTestStore(t)

	best, err := store.LoadBest("fish-best")
	if err != nil {
		t.Fatalf("LoadBest() failed: %v", err)
	}
	if best != 0 {
		t.Errorf("LoadBest() = %d, expected 0 for absent key", best)
	}
}

func TestSaveBestMonotonic(t *testing.T) {
	store := openTestStore(t)

	steps := []struct {
		save     int
		expected int
	}{
		{120, 120},
		{80, 120}, // lower score never overwrites
		{300, 300},
		{300, 300},
	}

	for _, step := range steps {
		if err := store.SaveBest("fish-best", step.save); err != nil {
			t.Fatalf("SaveBest(%d) failed: %v", step.save, err)
		}
		best, err := store.LoadBest("fish-best")
		if err != nil {
			t.Fatalf("LoadBest() failed: %v", err)
		}
		if best != step.expected {
			t.Errorf("after SaveBest(%d) best = %d, expected %d", step.save, best, step.expected)
		}
	}

	// Keys are independent
	other, _ := store.LoadBest("other")
	if other != 0 {
		t.Errorf("other key = %d, expected 0", other)
	}
}

func TestLoadBestUnparsable(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.db.Exec("INSERT INTO kv (key, value) VALUES (?, ?)", "fish-best", "lots"); err != nil {
		t.Fatal(err)
	}

	best, err := store.LoadBest("fish-best")
	if err == nil {
		t.Error("LoadBest() should report an unparsable value")
	}
	if best != 0 {
		t.Errorf("LoadBest() = %d, expected 0 for unparsable value", best)
	}

	// A valid save replaces the garbage
	if err := store.SaveBest("fish-best", 42); err != nil {
		t.Fatalf("SaveBest() failed: %v", err)
	}
	if best, _ := store.LoadBest("fish-best"); best != 42 {
		t.Errorf("LoadBest() = %d, expected 42", best)
	}
}

func TestSaveRunAndTopRuns(t *testing.T) {
	store := openTestStore(t)

	for i, score := range []int{50, 200, 100, 10} {
		id, err := store.SaveRun(Run{Player: "tester", Score: score, Wave: i, DurationMS: int64(score) * 100})
		if err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
		if id == "" {
			t.Error("SaveRun() should assign an ID")
		}
	}

	runs, err := store.TopRuns(3)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("Expected 3 runs with limit, got %d", len(runs))
	}
	if runs[0].Score != 200 || runs[1].Score != 100 || runs[2].Score != 50 {
		t.Errorf("Runs not in expected order: %+v", runs)
	}
	if runs[0].Player != "tester" || runs[0].Wave != 1 || runs[0].DurationMS != 20000 {
		t.Errorf("Run fields not round-tripped: %+v", runs[0])
	}
}

func TestSaveRunKeepsExplicitID(t *testing.T) {
	store := openTestStore(t)

	id, err := store.SaveRun(Run{ID: "fixed-id", Score: 1})
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if id != "fixed-id" {
		t.Errorf("SaveRun() id = %q, expected fixed-id", id)
	}

	if _, err := store.SaveRun(Run{ID: "fixed-id", Score: 2}); err == nil {
		t.Error("duplicate run ID should fail")
	}
}

func TestStats(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Runs != 0 || stats.BestRun != 0 {
		t.Errorf("empty Stats() = %+v", stats)
	}

	store.SaveRun(Run{Score: 10})
	store.SaveRun(Run{Score: 30})

	stats, err = store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Runs != 2 || stats.BestRun != 30 || stats.TotalScore != 40 || stats.AvgScore != 20 {
		t.Errorf("Stats() = %+v", stats)
	}
}

func TestClear(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(Run{Score: 10})
	store.SaveBest("fish-best", 10)

	if err := store.Clear("fish-best"); err != nil {
		t.Fatalf("Clear() failed: %v", err)
	}

	runs, _ := store.TopRuns(10)
	if len(runs) != 0 {
		t.Errorf("Expected no runs after Clear, got %d", len(runs))
	}
	if best, _ := store.LoadBest("fish-best"); best != 0 {
		t.Errorf("Expected best 0 after Clear, got %d", best)
	}
}
