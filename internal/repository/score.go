package repository

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"
)

// ErrNegativeDelta is returned when a merge would decrease a score.
var ErrNegativeDelta = errors.New("score delta must not be negative")

// ScoreRepository persists cumulative scores keyed by display name as a
// single JSON object.
type ScoreRepository struct {
	mu   sync.Mutex
	path string
}

// NewScoreRepository creates a ScoreRepository backed by the file at path.
func NewScoreRepository(path string) *ScoreRepository {
	return &ScoreRepository{path: path}
}

// LoadAll returns the full score table. A missing file is an empty table.
func (r *ScoreRepository) LoadAll() (map[string]int, error) {
	return r.load()
}

// Merge adds delta to the named entry, creating it at zero if absent.
// The whole table is read and written back under the store lock so
// concurrent completions never lose an update.
func (r *ScoreRepository) Merge(name string, delta int) error {
	if delta < 0 {
		return ErrNegativeDelta
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	scores, err := r.load()
	if err != nil {
		return err
	}
	scores[name] += delta

	return r.save(scores)
}

func (r *ScoreRepository) load() (map[string]int, error) {
	data, err := os.ReadFile(r.path)
	if errors.Is(err, os.ErrNotExist) {
		return map[string]int{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read score table: %w", err)
	}

	var scores map[string]int
	if err := json.Unmarshal(data, &scores); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptStore, err)
	}
	if scores == nil {
		scores = map[string]int{}
	}

	return scores, nil
}

func (r *ScoreRepository) save(scores map[string]int) error {
	data, err := json.Marshal(scores)
	if err != nil {
		return fmt.Errorf("marshal score table: %w", err)
	}

	if err := os.WriteFile(r.path, data, 0o644); err != nil {
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	return nil
}
