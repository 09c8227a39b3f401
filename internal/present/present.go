// Package present holds presentation policy shared by the quiz players:
// reward tiers for a final score, feedback wording and cues.
package present

import (
	"fmt"
	"io"

	"quiz-player/internal/domain"
)

// DefaultPassPercent is the lowest percentage that earns the pass tier.
const DefaultPassPercent = 50

// Tier classifies a final score.
type Tier string

const (
	TierPerfect Tier = "perfect"
	TierPass    Tier = "pass"
	TierFail    Tier = "fail"
	TierZero    Tier = "zero"
)

// TierFor maps score to a tier. passPercent <= 0 falls back to DefaultPassPercent.
func TierFor(score domain.Score, passPercent int) Tier {
	if passPercent <= 0 {
		passPercent = DefaultPassPercent
	}
	switch {
	case score.Total > 0 && score.Score == score.Total:
		return TierPerfect
	case score.Score == 0:
		return TierZero
	case score.Percent() >= passPercent:
		return TierPass
	default:
		return TierFail
	}
}

// Cue is a presentation event a player may render as sound or light.
type Cue string

const (
	CueCorrect Cue = "correct"
	CueWrong   Cue = "wrong"
	CuePerfect Cue = "perfect"
	CuePass    Cue = "pass"
	CueFail    Cue = "fail"
	CueZero    Cue = "zero"
)

// AnswerCue picks the cue for an answer outcome.
func AnswerCue(outcome domain.AnswerOutcome) Cue {
	if outcome.Correct {
		return CueCorrect
	}
	return CueWrong
}

// TierCue picks the cue for a final tier.
func TierCue(tier Tier) Cue {
	return Cue(tier)
}

// CueSink renders cues.
type CueSink interface {
	Cue(c Cue)
}

// Nop discards every cue.
type Nop struct{}

func (Nop) Cue(Cue) {}

// Bell rings the terminal bell for wrong answers and for non-passing results.
type Bell struct {
	W io.Writer
}

func (b Bell) Cue(c Cue) {
	switch c {
	case CueWrong, CueFail, CueZero:
		_, _ = io.WriteString(b.W, "\a")
	}
}

// Feedback is the line shown after an answer.
func Feedback(outcome domain.AnswerOutcome) string {
	if outcome.Correct {
		return "Correct!"
	}
	return fmt.Sprintf("Wrong! Correct answer was %s", outcome.CorrectLabel)
}

// Result is the line shown on the final screen.
func Result(score domain.Score) string {
	return fmt.Sprintf("You scored %d out of %d", score.Score, score.Total)
}
