package domain

import (
	"fmt"
	"strings"
)

// ChoiceCount is the number of options every question carries.
const ChoiceCount = 4

// Label identifies one of the four choices of a question.
type Label string

const (
	LabelA Label = "A"
	LabelB Label = "B"
	LabelC Label = "C"
	LabelD Label = "D"
)

// Labels lists the choice labels in choice order.
var Labels = [ChoiceCount]Label{LabelA, LabelB, LabelC, LabelD}

// ParseLabel trims and upper-cases raw and checks it names a choice.
func ParseLabel(raw string) (Label, error) {
	label := Label(strings.ToUpper(strings.TrimSpace(raw)))
	if !label.Valid() {
		return "", fmt.Errorf("%w: label %q is not one of A-D", ErrInvalidInput, raw)
	}
	return label, nil
}

// Valid reports whether l is one of A-D.
func (l Label) Valid() bool {
	return l.Index() >= 0
}

// Index returns the choice position for l, or -1 if l is not a label.
func (l Label) Index() int {
	for i, candidate := range Labels {
		if l == candidate {
			return i
		}
	}
	return -1
}

// Question models a four-option MCQ question with exactly one correct label.
type Question struct {
	Prompt  string              `json:"prompt"`
	Choices [ChoiceCount]string `json:"choices"`
	Correct Label               `json:"correct"`
}

// Validate returns the first reason q cannot be stored or played.
func (q Question) Validate() error {
	if err := checkField("prompt", q.Prompt); err != nil {
		return err
	}
	for i, choice := range q.Choices {
		if err := checkField("choice "+string(Labels[i]), choice); err != nil {
			return err
		}
	}
	if !q.Correct.Valid() {
		return fmt.Errorf("%w: correct label %q is not one of A-D", ErrInvalidInput, q.Correct)
	}
	return nil
}

// CorrectChoice returns the text of the correct option.
func (q Question) CorrectChoice() string {
	if idx := q.Correct.Index(); idx >= 0 {
		return q.Choices[idx]
	}
	return ""
}

func checkField(name, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%w: %s is empty", ErrInvalidInput, name)
	}
	// the bank format is line oriented
	if strings.ContainsAny(value, "\r\n") {
		return fmt.Errorf("%w: %s spans multiple lines", ErrInvalidInput, name)
	}
	return nil
}

// Bank is an ordered collection of questions loaded from one source.
type Bank struct {
	ID        string     `json:"id"`
	Questions []Question `json:"questions"`
}

// AnswerOutcome summarizes a submitted answer for the current question.
type AnswerOutcome struct {
	Label        Label `json:"label"`
	Correct      bool  `json:"correct"`
	CorrectLabel Label `json:"correctLabel"`
}

// Score is the final result of a completed session.
type Score struct {
	Score int `json:"score"`
	Total int `json:"total"`
}

// Percent returns the score as a whole percentage of the total.
func (s Score) Percent() int {
	if s.Total <= 0 {
		return 0
	}
	return s.Score * 100 / s.Total
}

// SessionView is a read-only snapshot of a session's progress.
type SessionView struct {
	Index     int       `json:"index"`
	Total     int       `json:"total"`
	Score     int       `json:"score"`
	Answered  bool      `json:"answered"`
	Completed bool      `json:"completed"`
	Question  *Question `json:"question,omitempty"` // nil once completed
}
