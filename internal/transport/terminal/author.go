package terminal

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"quiz-player/internal/domain"
)

// Author collects questions interactively for appending to a quiz bank.
type Author struct {
	in  *bufio.Scanner
	out io.Writer
}

func NewAuthor(in io.Reader, out io.Writer) *Author {
	return &Author{in: bufio.NewScanner(in), out: out}
}

// Run prompts for questions until the author declines to add another or input ends.
// A question interrupted by end of input is discarded.
func (a *Author) Run(ctx context.Context) ([]domain.Question, error) {
	fmt.Fprintln(a.out, "=== WELCOME TO QUIZ BUILDER ===")
	fmt.Fprintln(a.out)

	var questions []domain.Question
	for {
		if err := ctx.Err(); err != nil {
			return questions, err
		}

		q, ok, err := a.askQuestion()
		if err != nil {
			return questions, err
		}
		if !ok {
			break
		}
		if err := q.Validate(); err != nil {
			fmt.Fprintf(a.out, "Question not added: %v\n", err)
			continue
		}
		questions = append(questions, q)

		again, ok := a.ask("Will you add another question? (y/n): ")
		if !ok || strings.ToLower(strings.TrimSpace(again)) != "y" {
			break
		}
	}

	fmt.Fprintln(a.out)
	fmt.Fprintln(a.out, "Exiting program...")
	return questions, a.in.Err()
}

func (a *Author) askQuestion() (domain.Question, bool, error) {
	var q domain.Question
	var ok bool

	if q.Prompt, ok = a.ask("Enter your question: "); !ok {
		return q, false, a.in.Err()
	}
	for i := range q.Choices {
		if q.Choices[i], ok = a.ask(fmt.Sprintf("Choice %s: ", domain.Labels[i])); !ok {
			return q, false, a.in.Err()
		}
	}
	raw, ok := a.ask("Which one is correct? (A - D): ")
	if !ok {
		return q, false, a.in.Err()
	}
	q.Correct = domain.Label(strings.ToUpper(strings.TrimSpace(raw)))

	q.Prompt = strings.TrimSpace(q.Prompt)
	for i := range q.Choices {
		q.Choices[i] = strings.TrimSpace(q.Choices[i])
	}
	return q, true, nil
}

func (a *Author) ask(prompt string) (string, bool) {
	fmt.Fprint(a.out, prompt)
	if !a.in.Scan() {
		return "", false
	}
	return a.in.Text(), true
}
