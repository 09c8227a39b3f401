package memory

import (
	"testing"

	"quiz-player/internal/app"
)

func TestSessionStoreLifecycle(t *testing.T) {
	store := NewSessionStore()

	session, err := app.NewSession(sampleQuestions())
	if err != nil {
		t.Fatalf("new session: %v", err)
	}
	store.Put(app.NewPlay("play-1", "math.txt", session))
	if play, ok := store.Get("play-1"); !ok || play.BankID != "math.txt" {
		t.Fatalf("expected play present, got %+v", play)
	}
	if store.Len() != 1 {
		t.Fatalf("expected 1 play, got %d", store.Len())
	}

	store.Delete("play-1")
	if _, ok := store.Get("play-1"); ok {
		t.Fatalf("expected play removed")
	}
}
