package redis

import (
	"testing"
	"time"

	"quiz-player/internal/app"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func TestSessionStoreSetsAndClearsKeys(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("run miniredis: %v", err)
	}
	defer mr.Close()

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	store := NewSessionStore(client, time.Minute)

	session, err := app.NewSession(sampleQuestions())
	if err != nil {
		t.Fatalf("new session: %v", err)
	}
	store.Put(app.NewPlay("play-1", "quiz.txt", session))
	if !mr.Exists("quiz:play:play-1") {
		t.Fatalf("expected redis key to be set")
	}
	if got, _ := mr.Get("quiz:play:play-1"); got != "quiz.txt" {
		t.Fatalf("expected marker to hold bank id, got %q", got)
	}
	if _, ok := store.Get("play-1"); !ok {
		t.Fatalf("expected play present")
	}

	store.Delete("play-1")
	if mr.Exists("quiz:play:play-1") {
		t.Fatalf("expected redis key to be removed")
	}
}
