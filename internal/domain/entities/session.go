package entities

import "strings"

// Session represents one user's in-progress quiz attempt. It holds a
// snapshot of the question bank taken at start time, so questions added
// by an admin mid-quiz do not affect the attempt.
type Session struct {
	UserID       int64      // user who started the quiz
	Questions    []Question // bank snapshot, presentation order
	CurrentIndex int        // index of the next question to answer
	Score        int        // correct answers so far
}

// NewSession creates a session positioned at the first question.
func NewSession(userID int64, questions []Question) *Session {
	return &Session{
		UserID:    userID,
		Questions: questions,
	}
}

// Current returns the question awaiting an answer, or false when the
// session has run out of questions.
func (s *Session) Current() (Question, bool) {
	if s.CurrentIndex >= len(s.Questions) {
		return Question{}, false
	}
	return s.Questions[s.CurrentIndex], true
}

// Completed reports whether every question has been answered.
func (s *Session) Completed() bool {
	return s.CurrentIndex >= len(s.Questions)
}

// Submit scores a raw answer against the current question and advances
// to the next one. The comparison is case-insensitive; the index moves
// forward whether or not the answer was correct.
func (s *Session) Submit(raw string) bool {
	q, ok := s.Current()
	if !ok {
		return false
	}

	correct := strings.EqualFold(strings.TrimSpace(raw), q.Answer)
	if correct {
		s.Score++
	}
	s.CurrentIndex++

	return correct
}
