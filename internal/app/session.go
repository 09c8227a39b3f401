package app

import (
	"fmt"

	"quiz-player/internal/domain"
)

// Session walks a single player through a fixed list of questions.
// Each question must be answered exactly once before the session advances past it.
// A Session is not safe for concurrent use; it belongs to whoever drives the quiz.
type Session struct {
	questions []domain.Question
	index     int
	score     int
	answered  bool
}

// NewSession starts a session at the first question. An empty list is rejected.
func NewSession(questions []domain.Question) (*Session, error) {
	if len(questions) == 0 {
		return nil, domain.ErrEmptyQuizBank
	}
	qs := make([]domain.Question, len(questions))
	copy(qs, questions)
	return &Session{questions: qs}, nil
}

// CurrentQuestion returns the question being played; ok is false once the session is completed.
func (s *Session) CurrentQuestion() (domain.Question, bool) {
	if s.Completed() {
		return domain.Question{}, false
	}
	return s.questions[s.index], true
}

// Completed reports whether every question has been answered and passed.
func (s *Session) Completed() bool {
	return s.index >= len(s.questions)
}

// SubmitAnswer scores label against the current question and locks it.
// It does not move to the next question.
func (s *Session) SubmitAnswer(label domain.Label) (domain.AnswerOutcome, error) {
	if s.Completed() {
		return domain.AnswerOutcome{}, fmt.Errorf("%w: session already completed", domain.ErrInvalidState)
	}
	if s.answered {
		return domain.AnswerOutcome{}, fmt.Errorf("%w: question %d already answered", domain.ErrInvalidState, s.index+1)
	}
	if !label.Valid() {
		return domain.AnswerOutcome{}, fmt.Errorf("%w: label %q is not one of A-D", domain.ErrInvalidInput, label)
	}

	q := s.questions[s.index]
	outcome := domain.AnswerOutcome{
		Label:        label,
		Correct:      label == q.Correct,
		CorrectLabel: q.Correct,
	}
	if outcome.Correct {
		s.score++
	}
	s.answered = true
	return outcome, nil
}

// Advance moves past an answered question and returns the new view.
func (s *Session) Advance() (domain.SessionView, error) {
	if s.Completed() {
		return s.View(), fmt.Errorf("%w: session already completed", domain.ErrInvalidState)
	}
	if !s.answered {
		return s.View(), fmt.Errorf("%w: question %d has not been answered", domain.ErrInvalidState, s.index+1)
	}
	s.index++
	s.answered = false
	return s.View(), nil
}

// FinalScore returns the result; only valid once the session is completed.
func (s *Session) FinalScore() (domain.Score, error) {
	if !s.Completed() {
		return domain.Score{}, fmt.Errorf("%w: session still in progress at question %d", domain.ErrInvalidState, s.index+1)
	}
	return domain.Score{Score: s.score, Total: len(s.questions)}, nil
}

// View snapshots the session.
func (s *Session) View() domain.SessionView {
	view := domain.SessionView{
		Index:     s.index,
		Total:     len(s.questions),
		Score:     s.score,
		Answered:  s.answered,
		Completed: s.Completed(),
	}
	if q, ok := s.CurrentQuestion(); ok {
		view.Question = &q
	}
	return view
}
