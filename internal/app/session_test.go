package app_test

import (
	"errors"
	"testing"

	"quiz-player/internal/app"
	"quiz-player/internal/domain"
	"quiz-player/internal/quizfile"
)

const sampleBank = `Q: 2+2?
A. 3
B. 4
C. 5
D. 6
Answer: B

Q: Capital of France?
A. Berlin
B. Madrid
C. Paris
D. Rome
Answer: C
`

func TestSessionRejectsEmptyBank(t *testing.T) {
	if _, err := app.NewSession(nil); !errors.Is(err, domain.ErrEmptyQuizBank) {
		t.Fatalf("expected empty bank error, got %v", err)
	}
}

func TestSessionEndToEnd(t *testing.T) {
	session := newSession(t)

	for _, label := range []domain.Label{domain.LabelB, domain.LabelC} {
		outcome, err := session.SubmitAnswer(label)
		if err != nil {
			t.Fatalf("submit %s: %v", label, err)
		}
		if !outcome.Correct {
			t.Fatalf("expected %s to be correct", label)
		}
		if _, err := session.Advance(); err != nil {
			t.Fatalf("advance: %v", err)
		}
	}

	if !session.Completed() {
		t.Fatalf("expected session completed")
	}
	if _, ok := session.CurrentQuestion(); ok {
		t.Fatalf("expected no current question once completed")
	}
	score, err := session.FinalScore()
	if err != nil {
		t.Fatalf("final score: %v", err)
	}
	if score != (domain.Score{Score: 2, Total: 2}) {
		t.Fatalf("expected (2, 2), got %+v", score)
	}
}

func TestSessionWrongAnswer(t *testing.T) {
	session := newSession(t)

	outcome, err := session.SubmitAnswer(domain.LabelA)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if outcome.Correct || outcome.CorrectLabel != domain.LabelB || outcome.Label != domain.LabelA {
		t.Fatalf("unexpected outcome %+v", outcome)
	}
	if view := session.View(); view.Score != 0 || !view.Answered || view.Index != 0 {
		t.Fatalf("unexpected view %+v", view)
	}
}

func TestSessionRejectsDoubleSubmit(t *testing.T) {
	session := newSession(t)

	if _, err := session.SubmitAnswer(domain.LabelB); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if _, err := session.SubmitAnswer(domain.LabelB); !errors.Is(err, domain.ErrInvalidState) {
		t.Fatalf("expected invalid state on second submit, got %v", err)
	}
	if view := session.View(); view.Score != 1 {
		t.Fatalf("expected score unchanged at 1, got %d", view.Score)
	}
}

func TestSessionRejectsAdvanceBeforeAnswer(t *testing.T) {
	session := newSession(t)

	view, err := session.Advance()
	if !errors.Is(err, domain.ErrInvalidState) {
		t.Fatalf("expected invalid state, got %v", err)
	}
	if view.Index != 0 || view.Question == nil || view.Question.Prompt != "2+2?" {
		t.Fatalf("expected position unchanged, got %+v", view)
	}
}

func TestSessionRejectsInvalidLabel(t *testing.T) {
	session := newSession(t)

	if _, err := session.SubmitAnswer("E"); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
	// an invalid label does not lock the question
	if _, err := session.SubmitAnswer(domain.LabelB); err != nil {
		t.Fatalf("submit after invalid label: %v", err)
	}
}

func TestSessionFinalScoreBeforeCompletion(t *testing.T) {
	session := newSession(t)
	if _, err := session.FinalScore(); !errors.Is(err, domain.ErrInvalidState) {
		t.Fatalf("expected invalid state, got %v", err)
	}
}

func TestSessionCompletedIsTerminal(t *testing.T) {
	session := newSession(t)
	for _, label := range []domain.Label{domain.LabelA, domain.LabelA} {
		if _, err := session.SubmitAnswer(label); err != nil {
			t.Fatalf("submit: %v", err)
		}
		if _, err := session.Advance(); err != nil {
			t.Fatalf("advance: %v", err)
		}
	}

	if _, err := session.SubmitAnswer(domain.LabelA); !errors.Is(err, domain.ErrInvalidState) {
		t.Fatalf("expected invalid state on submit after completion, got %v", err)
	}
	view, err := session.Advance()
	if !errors.Is(err, domain.ErrInvalidState) {
		t.Fatalf("expected invalid state on advance after completion, got %v", err)
	}
	if !view.Completed || view.Index != 2 {
		t.Fatalf("expected completed view, got %+v", view)
	}
	score, err := session.FinalScore()
	if err != nil || score != (domain.Score{Score: 0, Total: 2}) {
		t.Fatalf("expected (0, 2), got %+v err=%v", score, err)
	}
}

func TestSessionScoreIsMonotonic(t *testing.T) {
	questions := quizfile.Parse(sampleBank + "\n" + sampleBank)
	session, err := app.NewSession(questions)
	if err != nil {
		t.Fatalf("new session: %v", err)
	}

	answers := []domain.Label{domain.LabelB, domain.LabelA, domain.LabelC, domain.LabelD}
	answered, last := 0, 0
	for _, label := range answers {
		if _, err := session.SubmitAnswer(label); err != nil {
			t.Fatalf("submit: %v", err)
		}
		answered++
		view := session.View()
		if view.Score < last || view.Score > answered {
			t.Fatalf("score %d out of bounds after %d answers (previous %d)", view.Score, answered, last)
		}
		last = view.Score
		if _, err := session.Advance(); err != nil {
			t.Fatalf("advance: %v", err)
		}
	}

	score, err := session.FinalScore()
	if err != nil {
		t.Fatalf("final score: %v", err)
	}
	if score.Score != 1 || score.Total != len(questions) {
		t.Fatalf("expected (1, %d), got %+v", len(questions), score)
	}
}

func TestSessionCopiesQuestions(t *testing.T) {
	questions := quizfile.Parse(sampleBank)
	session, err := app.NewSession(questions)
	if err != nil {
		t.Fatalf("new session: %v", err)
	}
	questions[0].Correct = domain.LabelD

	outcome, err := session.SubmitAnswer(domain.LabelB)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if !outcome.Correct {
		t.Fatalf("expected session to keep its own copy of the questions")
	}
}

func newSession(t *testing.T) *app.Session {
	t.Helper()
	questions := quizfile.Parse(sampleBank)
	if len(questions) != 2 {
		t.Fatalf("expected 2 parsed questions, got %d", len(questions))
	}
	session, err := app.NewSession(questions)
	if err != nil {
		t.Fatalf("new session: %v", err)
	}
	return session
}
