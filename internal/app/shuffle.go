package app

import (
	"math/rand"

	"quiz-player/internal/domain"
)

// PlayerOptions tune how a bank becomes a session.
type PlayerOptions struct {
	Shuffle bool
	Limit   int // 0 keeps every question
}

// PrepareQuestions copies questions, shuffles them with rnd when asked (Fisher-Yates) and applies the limit.
func PrepareQuestions(questions []domain.Question, opts PlayerOptions, rnd *rand.Rand) []domain.Question {
	selected := make([]domain.Question, len(questions))
	copy(selected, questions)

	if opts.Shuffle && rnd != nil {
		for i := len(selected) - 1; i > 0; i-- {
			j := rnd.Intn(i + 1)
			selected[i], selected[j] = selected[j], selected[i]
		}
	}

	if opts.Limit > 0 && opts.Limit < len(selected) {
		selected = selected[:opts.Limit]
	}
	return selected
}

