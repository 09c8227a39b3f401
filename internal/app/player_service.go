package app

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"quiz-player/internal/domain"

	"github.com/google/uuid"
)

// SessionRepository abstracts where open plays are kept (in-memory, Redis, etc).
type SessionRepository interface {
	Put(play *Play)
	Get(playID string) (*Play, bool)
	Delete(playID string)
}

// BankRepository loads parsed quiz banks (from cache/backing file).
type BankRepository interface {
	GetBank(ctx context.Context, bankID string) (domain.Bank, error)
}

// Play is one player's run through a bank. Requests for the same play may arrive
// on different goroutines, so access to the session goes through mu.
type Play struct {
	ID        string
	BankID    string
	StartedAt time.Time

	mu      sync.Mutex
	session *Session
}

// NewPlay wraps a session for storage in a SessionRepository.
func NewPlay(id, bankID string, session *Session) *Play {
	return &Play{ID: id, BankID: bankID, StartedAt: time.Now(), session: session}
}

func (p *Play) with(fn func(s *Session) error) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return fn(p.session)
}

// PlayerService contains the quiz play use cases for remote presentation layers.
type PlayerService struct {
	plays SessionRepository
	banks BankRepository
	opts  PlayerOptions
	newID func() string

	rndMu sync.Mutex
	rnd   *rand.Rand
}

func NewPlayerService(plays SessionRepository, banks BankRepository, opts PlayerOptions) *PlayerService {
	return &PlayerService{
		plays: plays,
		banks: banks,
		opts:  opts,
		newID: uuid.NewString,
		rnd:   rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// NewPlayerServiceWithRand is test-only for deterministic shuffles.
func NewPlayerServiceWithRand(plays SessionRepository, banks BankRepository, opts PlayerOptions, rnd *rand.Rand) *PlayerService {
	s := NewPlayerService(plays, banks, opts)
	s.rnd = rnd
	return s
}

// Start loads a bank and opens a new play on it.
func (s *PlayerService) Start(ctx context.Context, bankID string) (string, domain.SessionView, error) {
	bank, err := s.banks.GetBank(ctx, bankID)
	if err != nil {
		return "", domain.SessionView{}, err
	}

	s.rndMu.Lock()
	questions := PrepareQuestions(bank.Questions, s.opts, s.rnd)
	s.rndMu.Unlock()

	session, err := NewSession(questions)
	if err != nil {
		return "", domain.SessionView{}, err
	}

	play := NewPlay(s.newID(), bankID, session)
	s.plays.Put(play)
	return play.ID, session.View(), nil
}

// Submit answers the current question of a play.
func (s *PlayerService) Submit(_ context.Context, playID, rawLabel string) (domain.AnswerOutcome, domain.SessionView, error) {
	play, ok := s.plays.Get(playID)
	if !ok {
		return domain.AnswerOutcome{}, domain.SessionView{}, domain.ErrPlayNotFound
	}
	label, err := domain.ParseLabel(rawLabel)
	if err != nil {
		return domain.AnswerOutcome{}, domain.SessionView{}, err
	}

	var (
		outcome domain.AnswerOutcome
		view    domain.SessionView
	)
	err = play.with(func(session *Session) error {
		var err error
		outcome, err = session.SubmitAnswer(label)
		view = session.View()
		return err
	})
	return outcome, view, err
}

// Advance moves a play to its next question.
func (s *PlayerService) Advance(_ context.Context, playID string) (domain.SessionView, error) {
	play, ok := s.plays.Get(playID)
	if !ok {
		return domain.SessionView{}, domain.ErrPlayNotFound
	}
	var view domain.SessionView
	err := play.with(func(session *Session) error {
		var err error
		view, err = session.Advance()
		return err
	})
	return view, err
}

// FinalScore returns the result of a completed play.
func (s *PlayerService) FinalScore(_ context.Context, playID string) (domain.Score, error) {
	play, ok := s.plays.Get(playID)
	if !ok {
		return domain.Score{}, domain.ErrPlayNotFound
	}
	var score domain.Score
	err := play.with(func(session *Session) error {
		var err error
		score, err = session.FinalScore()
		return err
	})
	return score, err
}

// View snapshots a play.
func (s *PlayerService) View(_ context.Context, playID string) (domain.SessionView, error) {
	play, ok := s.plays.Get(playID)
	if !ok {
		return domain.SessionView{}, domain.ErrPlayNotFound
	}
	var view domain.SessionView
	_ = play.with(func(session *Session) error {
		view = session.View()
		return nil
	})
	return view, nil
}

// Leave drops a play.
func (s *PlayerService) Leave(_ context.Context, playID string) {
	s.plays.Delete(playID)
}
