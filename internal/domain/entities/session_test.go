package entities

import "testing"

func twoQuestions() []Question {
	return []Question{
		{Text: "q0", OptionA: "a", OptionB: "b", OptionC: "c", OptionD: "d", Answer: "A"},
		{Text: "q1", OptionA: "a", OptionB: "b", OptionC: "c", OptionD: "d", Answer: "D"},
	}
}

func TestSessionAdvancesRegardlessOfCorrectness(t *testing.T) {
	s := NewSession(1, twoQuestions())

	if s.Submit("B") {
		t.Error("expected wrong answer for q0")
	}
	if s.CurrentIndex != 1 {
		t.Fatalf("expected index 1 after wrong answer, got %d", s.CurrentIndex)
	}
	if s.Score != 0 {
		t.Fatalf("expected score 0, got %d", s.Score)
	}

	if !s.Submit("d") {
		t.Error("expected case-insensitive correct answer for q1")
	}
	if !s.Completed() {
		t.Error("expected completion after answering both questions")
	}
	if s.Score != 1 {
		t.Fatalf("expected score 1, got %d", s.Score)
	}
}

func TestSessionSubmitAfterCompletionIsNoOp(t *testing.T) {
	s := NewSession(1, twoQuestions()[:1])
	s.Submit("A")

	if s.Submit("A") {
		t.Error("expected no-op submit after completion")
	}
	if s.Score != 1 || s.CurrentIndex != 1 {
		t.Fatalf("completed session mutated: score=%d index=%d", s.Score, s.CurrentIndex)
	}

	if _, ok := s.Current(); ok {
		t.Error("expected no current question after completion")
	}
}
