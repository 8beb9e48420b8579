package repository

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"
)

func TestScoreRepositoryMissingFileIsEmptyTable(t *testing.T) {
	repo := NewScoreRepository(filepath.Join(t.TempDir(), "scores.json"))

	scores, err := repo.LoadAll()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if len(scores) != 0 {
		t.Fatalf("expected empty table, got %v", scores)
	}
}

func TestScoreRepositoryMergeAccumulates(t *testing.T) {
	repo := NewScoreRepository(filepath.Join(t.TempDir(), "scores.json"))

	if err := repo.Merge("Aisha", 2); err != nil {
		t.Fatalf("merge failed: %v", err)
	}
	if err := repo.Merge("Aisha", 3); err != nil {
		t.Fatalf("merge failed: %v", err)
	}
	if err := repo.Merge("Rahul", 1); err != nil {
		t.Fatalf("merge failed: %v", err)
	}

	scores, err := repo.LoadAll()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if scores["Aisha"] != 5 {
		t.Errorf("expected Aisha=5, got %d", scores["Aisha"])
	}
	if scores["Rahul"] != 1 {
		t.Errorf("expected Rahul=1, got %d", scores["Rahul"])
	}
}

func TestScoreRepositoryRejectsNegativeDelta(t *testing.T) {
	repo := NewScoreRepository(filepath.Join(t.TempDir(), "scores.json"))

	if err := repo.Merge("Aisha", -1); !errors.Is(err, ErrNegativeDelta) {
		t.Fatalf("expected ErrNegativeDelta, got %v", err)
	}
}

func TestScoreRepositoryCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.json")
	if err := os.WriteFile(path, []byte("[1,2]"), 0o644); err != nil {
		t.Fatal(err)
	}
	repo := NewScoreRepository(path)

	if _, err := repo.LoadAll(); !errors.Is(err, ErrCorruptStore) {
		t.Fatalf("expected ErrCorruptStore, got %v", err)
	}
}

func TestScoreRepositoryConcurrentMerges(t *testing.T) {
	repo := NewScoreRepository(filepath.Join(t.TempDir(), "scores.json"))

	const users = 5
	const rounds = 4
	var wg sync.WaitGroup
	for u := 0; u < users; u++ {
		for r := 0; r < rounds; r++ {
			wg.Add(1)
			go func(u int) {
				defer wg.Done()
				if err := repo.Merge(fmt.Sprintf("user%d", u), 1); err != nil {
					t.Errorf("merge failed: %v", err)
				}
			}(u)
		}
	}
	wg.Wait()

	scores, err := repo.LoadAll()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	for u := 0; u < users; u++ {
		name := fmt.Sprintf("user%d", u)
		if scores[name] != rounds {
			t.Errorf("expected %s=%d, got %d (lost update)", name, rounds, scores[name])
		}
	}
}
