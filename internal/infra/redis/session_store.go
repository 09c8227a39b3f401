package redis

import (
	"context"
	"sync"
	"time"

	"quiz-player/internal/app"

	"github.com/redis/go-redis/v9"
)

// SessionStore is a Redis-aware implementation of app.SessionRepository.
// Plays stay in a local map since a Session is owned by this process;
// Redis only carries a liveness marker per open play so operators can see them.
type SessionStore struct {
	client *redis.Client
	ttl    time.Duration
	mu     sync.RWMutex
	plays  map[string]*app.Play
}

func NewSessionStore(client *redis.Client, ttl time.Duration) *SessionStore {
	return &SessionStore{
		client: client,
		ttl:    ttl,
		plays:  make(map[string]*app.Play),
	}
}

func (s *SessionStore) Put(play *app.Play) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.plays[play.ID] = play
	// best-effort liveness marker
	_ = s.client.Set(context.Background(), s.key(play.ID), play.BankID, s.ttl).Err()
}

func (s *SessionStore) Get(playID string) (*app.Play, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	play, ok := s.plays[playID]
	return play, ok
}

func (s *SessionStore) Delete(playID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.plays[playID]; !ok {
		return
	}
	delete(s.plays, playID)
	_ = s.client.Del(context.Background(), s.key(playID)).Err()
}

func (s *SessionStore) key(playID string) string {
	return "quiz:play:" + playID
}
