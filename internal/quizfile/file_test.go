package quizfile

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"quiz-player/internal/domain"
)

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.txt"))
	if !errors.Is(err, domain.ErrSourceNotFound) {
		t.Fatalf("expected source not found, got %v", err)
	}
}

func TestAppendCreatesAndAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quiz_entries.txt")

	first := domain.Question{Prompt: "2+2?", Choices: [domain.ChoiceCount]string{"3", "4", "5", "6"}, Correct: domain.LabelB}
	second := domain.Question{Prompt: "Capital of France?", Choices: [domain.ChoiceCount]string{"Berlin", "Madrid", "Paris", "Rome"}, Correct: domain.LabelC}

	if err := Append(path, first); err != nil {
		t.Fatalf("append first: %v", err)
	}
	before, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}

	if err := Append(path, second); err != nil {
		t.Fatalf("append second: %v", err)
	}
	after, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(after[:len(before)]) != string(before) {
		t.Fatalf("existing content changed")
	}

	questions, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(questions) != 2 || questions[0] != first || questions[1] != second {
		t.Fatalf("round trip mismatch: %+v", questions)
	}
}

func TestAppendRejectsInvalidQuestion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quiz_entries.txt")
	valid := domain.Question{Prompt: "ok", Choices: [domain.ChoiceCount]string{"1", "2", "3", "4"}, Correct: domain.LabelA}
	invalid := domain.Question{Prompt: "bad", Choices: [domain.ChoiceCount]string{"1", "2", "3", "4"}, Correct: "X"}

	err := Append(path, valid, invalid)
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("expected no file to be written, stat err=%v", err)
	}
}

func TestDirLoader(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "math.txt"), []byte(twoQuestions), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	loader := NewDirLoader(dir)

	bank, err := loader.LoadBank(context.Background(), "math.txt")
	if err != nil {
		t.Fatalf("load bank: %v", err)
	}
	if bank.ID != "math.txt" || len(bank.Questions) != 2 {
		t.Fatalf("unexpected bank %+v", bank)
	}

	for _, id := range []string{"", "..", "../math.txt", "sub/math.txt"} {
		if _, err := loader.LoadBank(context.Background(), id); !errors.Is(err, domain.ErrBankNotFound) {
			t.Fatalf("expected bank not found for %q, got %v", id, err)
		}
	}
	if _, err := loader.LoadBank(context.Background(), "nope.txt"); !errors.Is(err, domain.ErrSourceNotFound) {
		t.Fatalf("expected source not found, got %v", err)
	}
}
