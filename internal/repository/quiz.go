package repository

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/sabreena6/jkssb-quiz-bot/internal/domain/entities"
)

var (
	// ErrCorruptStore indicates the persisted file exists but cannot be parsed.
	ErrCorruptStore = errors.New("persisted store is corrupt")
	// ErrPersistence indicates a store write failed and the mutation was not committed.
	ErrPersistence = errors.New("store write failed")
)

type questionsFile struct {
	Questions []entities.Question `json:"questions"`
}

// QuizRepository persists the question bank as a single JSON file.
// Every read loads the file in full, so callers always see the latest
// persisted state.
type QuizRepository struct {
	mu   sync.Mutex
	path string
}

// NewQuizRepository creates a QuizRepository backed by the file at path.
func NewQuizRepository(path string) *QuizRepository {
	return &QuizRepository{path: path}
}

// LoadAll returns the full question bank in presentation order.
// A missing file is an empty bank, not an error.
func (r *QuizRepository) LoadAll() ([]entities.Question, error) {
	return r.load()
}

// Append adds a question to the bank. JSON has no native append, so the
// whole bank is read, extended and written back under the store lock.
func (r *QuizRepository) Append(q entities.Question) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	questions, err := r.load()
	if err != nil {
		return err
	}
	questions = append(questions, q)

	return r.save(questions)
}

func (r *QuizRepository) load() ([]entities.Question, error) {
	data, err := os.ReadFile(r.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read question bank: %w", err)
	}

	var f questionsFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptStore, err)
	}

	return f.Questions, nil
}

func (r *QuizRepository) save(questions []entities.Question) error {
	data, err := json.Marshal(questionsFile{Questions: questions})
	if err != nil {
		return fmt.Errorf("marshal question bank: %w", err)
	}

	if err := os.WriteFile(r.path, data, 0o644); err != nil {
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	return nil
}
