package service

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/sabreena6/jkssb-quiz-bot/internal/domain/entities"
)

type QuestionRepo interface {
	LoadAll() ([]entities.Question, error)
	Append(q entities.Question) error
}

type ScoreRepo interface {
	LoadAll() (map[string]int, error)
	Merge(name string, delta int) error
}

var (
	// ErrNoQuestions is returned when a quiz is started against an empty bank.
	ErrNoQuestions = errors.New("no questions available")
	// ErrNoActiveSession is returned when an answer arrives outside a quiz.
	ErrNoActiveSession = errors.New("no active quiz session")
)

// AnswerResult reports the outcome of one submitted answer.
type AnswerResult struct {
	Correct      bool
	CorrectLabel string
	Finished     bool
	FinalScore   int                // set when Finished
	Next         *entities.Question // nil when Finished
}

// ScoreEntry is one rendered leaderboard row.
type ScoreEntry struct {
	Name  string
	Score int
}

// QuizService owns the per-user session table and orchestrates the
// question and score stores. Sessions for different users are fully
// independent; operations on the same user's session are serialized.
type QuizService struct {
	questionRepo QuestionRepo
	scoreRepo    ScoreRepo

	mu       sync.RWMutex
	sessions map[int64]*userSession
}

// userSession serializes access to a single user's session, so rapid
// duplicate messages cannot double-advance the question index.
type userSession struct {
	mu      sync.Mutex
	session *entities.Session
}

func NewQuizService(questionRepo QuestionRepo, scoreRepo ScoreRepo) *QuizService {
	return &QuizService{
		questionRepo: questionRepo,
		scoreRepo:    scoreRepo,
		sessions:     make(map[int64]*userSession),
	}
}

// Start snapshots the current question bank into a fresh session for
// the user, replacing any previous one. An empty bank creates no
// session and returns ErrNoQuestions.
func (s *QuizService) Start(_ context.Context, userID int64) (*entities.Session, error) {
	questions, err := s.questionRepo.LoadAll()
	if err != nil {
		return nil, err
	}
	if len(questions) == 0 {
		return nil, ErrNoQuestions
	}

	session := entities.NewSession(userID, questions)

	s.mu.Lock()
	s.sessions[userID] = &userSession{session: session}
	s.mu.Unlock()

	return session, nil
}

// Submit scores raw text against the user's current question and
// advances the session. On the answer that completes the quiz the final
// score is merged into the score table and the session slot is cleared;
// text from a user with no session yields ErrNoActiveSession.
func (s *QuizService) Submit(_ context.Context, userID int64, displayName, raw string) (AnswerResult, error) {
	s.mu.RLock()
	us, ok := s.sessions[userID]
	s.mu.RUnlock()
	if !ok {
		return AnswerResult{}, ErrNoActiveSession
	}

	us.mu.Lock()
	defer us.mu.Unlock()

	session := us.session
	q, ok := session.Current()
	if !ok {
		// Completed slot that was not cleared yet; treat as no session.
		s.clear(userID)
		return AnswerResult{}, ErrNoActiveSession
	}

	result := AnswerResult{
		Correct:      session.Submit(raw),
		CorrectLabel: q.Answer,
	}

	if !session.Completed() {
		next, _ := session.Current()
		result.Next = &next
		return result, nil
	}

	result.Finished = true
	result.FinalScore = session.Score
	s.clear(userID)

	if err := s.scoreRepo.Merge(scoreKey(displayName), session.Score); err != nil {
		return result, err
	}

	return result, nil
}

// AddQuestion parses an admin submission and appends it to the bank.
// A parse failure leaves the bank untouched.
func (s *QuizService) AddQuestion(_ context.Context, block string) error {
	q, err := ParseQuestion(block)
	if err != nil {
		return err
	}
	return s.questionRepo.Append(q)
}

// Leaderboard returns the score table ordered by descending score.
// Ties are broken by name so repeated calls over the same store state
// render identically.
func (s *QuizService) Leaderboard(_ context.Context) ([]ScoreEntry, error) {
	scores, err := s.scoreRepo.LoadAll()
	if err != nil {
		return nil, err
	}

	entries := make([]ScoreEntry, 0, len(scores))
	for name, score := range scores {
		entries = append(entries, ScoreEntry{Name: name, Score: score})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Score == entries[j].Score {
			return entries[i].Name < entries[j].Name
		}
		return entries[i].Score > entries[j].Score
	})

	return entries, nil
}

func (s *QuizService) clear(userID int64) {
	s.mu.Lock()
	delete(s.sessions, userID)
	s.mu.Unlock()
}

// scoreKey derives the score-table key for a user. Keying by display
// name means two accounts sharing a name merge scores; swap this for a
// stable user id if that ever matters.
func scoreKey(displayName string) string {
	return displayName
}
