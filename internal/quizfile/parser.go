// Package quizfile reads and writes the flat quiz-bank text format:
//
//	Q: <prompt>
//	A. <choice A>
//	B. <choice B>
//	C. <choice C>
//	D. <choice D>
//	Answer: <letter>
//
// Records are separated by a blank line.
package quizfile

import (
	"errors"
	"fmt"
	"strings"

	"quiz-player/internal/domain"
)

const (
	recordLines = 6
	prefixLen   = 3 // "Q: ", "A. ", ...
)

var (
	errShortRecord   = errors.New("record is too short")
	errEmptyPrompt   = errors.New("prompt is empty")
	errEmptyChoice   = errors.New("choice is empty")
	errNoAnswerSep   = errors.New("answer line has no ':'")
	errInvalidAnswer = errors.New("answer is not one of A-D")
)

// Skipped describes a record that was dropped while parsing.
type Skipped struct {
	Record int    `json:"record"` // 1-based position among the records of the input
	Reason string `json:"reason"`
}

// Report summarizes a parse run.
type Report struct {
	Records int       `json:"records"`
	Skipped []Skipped `json:"skipped"`
}

// Parse decodes every valid record of text in order. Malformed records are dropped.
func Parse(text string) []domain.Question {
	questions, _ := Inspect(text)
	return questions
}

// Inspect behaves like Parse and also reports which records were dropped and why.
func Inspect(text string) ([]domain.Question, Report) {
	var (
		questions []domain.Question
		report    Report
	)
	for i, block := range splitRecords(text) {
		report.Records++
		q, err := decode(block)
		if err != nil {
			report.Skipped = append(report.Skipped, Skipped{Record: i + 1, Reason: err.Error()})
			continue
		}
		questions = append(questions, q)
	}
	return questions, report
}

// ParseRecord decodes a single record and explains why it was rejected.
func ParseRecord(record string) (domain.Question, error) {
	blocks := splitRecords(record)
	if len(blocks) != 1 {
		return domain.Question{}, fmt.Errorf("expected one record, got %d", len(blocks))
	}
	return decode(blocks[0])
}

func splitRecords(text string) [][]string {
	text = strings.ReplaceAll(text, "\r\n", "\n")

	var (
		records [][]string
		current []string
	)
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			if len(current) > 0 {
				records = append(records, current)
				current = nil
			}
			continue
		}
		current = append(current, line)
	}
	if len(current) > 0 {
		records = append(records, current)
	}
	return records
}

func decode(lines []string) (domain.Question, error) {
	if len(lines) < recordLines {
		return domain.Question{}, fmt.Errorf("%w: %d lines, want %d", errShortRecord, len(lines), recordLines)
	}

	q := domain.Question{Prompt: stripPrefix(lines[0])}
	if q.Prompt == "" {
		return domain.Question{}, errEmptyPrompt
	}
	for i := range q.Choices {
		q.Choices[i] = stripPrefix(lines[i+1])
		if q.Choices[i] == "" {
			return domain.Question{}, fmt.Errorf("%w: %s", errEmptyChoice, domain.Labels[i])
		}
	}

	_, answer, ok := strings.Cut(lines[5], ":")
	if !ok {
		return domain.Question{}, errNoAnswerSep
	}
	q.Correct = domain.Label(strings.ToUpper(strings.TrimSpace(answer)))
	if !q.Correct.Valid() {
		return domain.Question{}, fmt.Errorf("%w: %q", errInvalidAnswer, q.Correct)
	}
	return q, nil
}

func stripPrefix(line string) string {
	runes := []rune(strings.TrimSpace(line))
	if len(runes) <= prefixLen {
		return ""
	}
	return strings.TrimSpace(string(runes[prefixLen:]))
}
