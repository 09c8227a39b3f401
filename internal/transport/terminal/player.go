// Package terminal renders the quiz player and the authoring flow on a text console.
package terminal

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"quiz-player/internal/app"
	"quiz-player/internal/domain"
	"quiz-player/internal/present"
)

// Player drives a Session from line-based input.
type Player struct {
	in          *bufio.Scanner
	out         io.Writer
	cues        present.CueSink
	passPercent int
}

func NewPlayer(in io.Reader, out io.Writer, cues present.CueSink, passPercent int) *Player {
	if cues == nil {
		cues = present.Nop{}
	}
	return &Player{in: bufio.NewScanner(in), out: out, cues: cues, passPercent: passPercent}
}

// Run plays session to completion and returns the final score.
func (p *Player) Run(ctx context.Context, session *app.Session) (domain.Score, error) {
	fmt.Fprintln(p.out, "Welcome to the Quiz!")

	for !session.Completed() {
		if err := ctx.Err(); err != nil {
			return domain.Score{}, err
		}
		view := session.View()
		p.render(view)

		label, err := p.readLabel()
		if err != nil {
			return domain.Score{}, err
		}
		outcome, err := session.SubmitAnswer(label)
		if err != nil {
			return domain.Score{}, err
		}
		p.cues.Cue(present.AnswerCue(outcome))
		fmt.Fprintln(p.out, present.Feedback(outcome))

		if _, err := session.Advance(); err != nil {
			return domain.Score{}, err
		}
	}

	score, err := session.FinalScore()
	if err != nil {
		return domain.Score{}, err
	}
	tier := present.TierFor(score, p.passPercent)
	fmt.Fprintln(p.out)
	fmt.Fprintln(p.out, "Quiz Complete")
	fmt.Fprintln(p.out, present.Result(score))
	p.cues.Cue(present.TierCue(tier))
	return score, nil
}

func (p *Player) render(view domain.SessionView) {
	q := view.Question
	fmt.Fprintf(p.out, "\n[%d/%d] %s\n", view.Index+1, view.Total, progressBar(view.Index, view.Total, 20))
	fmt.Fprintln(p.out, q.Prompt)
	for i, choice := range q.Choices {
		fmt.Fprintf(p.out, "  %s. %s\n", domain.Labels[i], choice)
	}
}

func (p *Player) readLabel() (domain.Label, error) {
	for {
		fmt.Fprint(p.out, "Your answer (A - D): ")
		if !p.in.Scan() {
			if err := p.in.Err(); err != nil {
				return "", err
			}
			return "", fmt.Errorf("read answer: %w", io.ErrUnexpectedEOF)
		}
		label, err := domain.ParseLabel(p.in.Text())
		if errors.Is(err, domain.ErrInvalidInput) {
			fmt.Fprintln(p.out, "Please choose an answer before continuing.")
			continue
		}
		return label, err
	}
}

func progressBar(done, total, width int) string {
	if total <= 0 {
		return ""
	}
	filled := done * width / total
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", width-filled) + "]"
}
