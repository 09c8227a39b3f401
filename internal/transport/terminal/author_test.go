package terminal

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"quiz-player/internal/domain"
)

func TestAuthorCollectsQuestions(t *testing.T) {
	input := strings.Join([]string{
		"2+2?", "3", "4", "5", "6", "b", "y",
		"Capital of France?", "Berlin", "Madrid", "Paris", "Rome", "C", "n",
	}, "\n") + "\n"
	var out bytes.Buffer

	questions, err := NewAuthor(strings.NewReader(input), &out).Run(context.Background())
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if len(questions) != 2 {
		t.Fatalf("expected 2 questions, got %d", len(questions))
	}
	if questions[0].Correct != domain.LabelB || questions[1].CorrectChoice() != "Paris" {
		t.Fatalf("unexpected questions %+v", questions)
	}
	if !strings.Contains(out.String(), "Which one is correct? (A - D): ") {
		t.Fatalf("expected correct-answer prompt, got:\n%s", out.String())
	}
}

func TestAuthorRepromptsInvalidQuestion(t *testing.T) {
	input := strings.Join([]string{
		"bad", "1", "2", "3", "4", "E",
		"good", "1", "2", "3", "4", "A", "n",
	}, "\n") + "\n"
	var out bytes.Buffer

	questions, err := NewAuthor(strings.NewReader(input), &out).Run(context.Background())
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if len(questions) != 1 || questions[0].Prompt != "good" {
		t.Fatalf("expected only the valid question, got %+v", questions)
	}
	if !strings.Contains(out.String(), "Question not added") {
		t.Fatalf("expected rejection message, got:\n%s", out.String())
	}
}

func TestAuthorDiscardsInterruptedQuestion(t *testing.T) {
	input := "first\n1\n2\n3\n4\nA\ny\nsecond\n1\n"
	questions, err := NewAuthor(strings.NewReader(input), &bytes.Buffer{}).Run(context.Background())
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if len(questions) != 1 || questions[0].Prompt != "first" {
		t.Fatalf("expected only the completed question, got %+v", questions)
	}
}
