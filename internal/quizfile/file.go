package quizfile

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"quiz-player/internal/domain"
)

// Load reads and parses the quiz bank at path.
func Load(path string) ([]domain.Question, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrSourceNotFound, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", domain.ErrSourceNotFound, path, err)
	}
	return Parse(string(data)), nil
}

// Format renders q as a single record without the trailing blank line.
func Format(q domain.Question) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Q: %s\n", q.Prompt)
	for i, choice := range q.Choices {
		fmt.Fprintf(&b, "%s. %s\n", domain.Labels[i], choice)
	}
	fmt.Fprintf(&b, "Answer: %s\n", q.Correct)
	return b.String()
}

// Append validates questions and appends them to path, creating the file if needed.
// Nothing is written unless every question is valid.
func Append(path string, questions ...domain.Question) error {
	for i, q := range questions {
		if err := q.Validate(); err != nil {
			return fmt.Errorf("question %d: %w", i+1, err)
		}
	}
	if len(questions) == 0 {
		return nil
	}

	var b strings.Builder
	for _, q := range questions {
		b.WriteString(Format(q))
		b.WriteString("\n")
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open quiz bank: %w", err)
	}
	if _, err := f.WriteString(b.String()); err != nil {
		f.Close()
		return fmt.Errorf("append quiz bank: %w", err)
	}
	return f.Close()
}

// DirLoader resolves bank IDs to quiz-bank files inside one directory.
type DirLoader struct {
	dir string
}

func NewDirLoader(dir string) *DirLoader {
	return &DirLoader{dir: dir}
}

// LoadBank loads the bank whose file name is bankID.
func (l *DirLoader) LoadBank(_ context.Context, bankID string) (domain.Bank, error) {
	if bankID == "" || bankID == "." || bankID == ".." || filepath.Base(bankID) != bankID || strings.ContainsAny(bankID, `/\`) {
		return domain.Bank{}, fmt.Errorf("%w: %q", domain.ErrBankNotFound, bankID)
	}
	questions, err := Load(filepath.Join(l.dir, bankID))
	if err != nil {
		return domain.Bank{}, err
	}
	return domain.Bank{ID: bankID, Questions: questions}, nil
}
