package agent

import (
	"fmt"
	"testing"

	"studybuddy_backend/internal/llm"
)

func TestSessionService_Resolve(t *testing.T) {
	svc := NewSessionService()

	sess, created := svc.Resolve("")
	if !created || sess.ID == "" {
		t.Fatalf("Resolve(\"\") = %+v, %v", sess, created)
	}

	same, created := svc.Resolve(sess.ID)
	if created || same != sess {
		t.Errorf("known id should return the same session without creating")
	}

	fresh, created := svc.Resolve("unknown-id")
	if !created || fresh.ID == "unknown-id" {
		t.Errorf("unknown id should create a fresh session with a new id")
	}

	if svc.Count() != 2 {
		t.Errorf("Count = %d, want 2", svc.Count())
	}
}

func TestSessionService_HistoryCap(t *testing.T) {
	svc := NewSessionService()
	sess, _ := svc.Resolve("")

	for i := 0; i < maxSessionHistory; i++ {
		svc.Append(sess,
			llm.Message{Role: llm.RoleUser, Content: fmt.Sprintf("q%d", i)},
			llm.Message{Role: llm.RoleAssistant, Content: fmt.Sprintf("a%d", i)},
		)
	}

	history := svc.HistoryCopy(sess)
	if len(history) > maxSessionHistory {
		t.Fatalf("history = %d messages, cap is %d", len(history), maxSessionHistory)
	}
	// Oldest messages go first, and the head is always a user message.
	if history[0].Role != llm.RoleUser {
		t.Errorf("history head role = %q", history[0].Role)
	}
	last := history[len(history)-1]
	if last.Content != fmt.Sprintf("a%d", maxSessionHistory-1) {
		t.Errorf("lost the newest message: %q", last.Content)
	}
}

func TestSessionService_HistoryCopyIsSnapshot(t *testing.T) {
	svc := NewSessionService()
	sess, _ := svc.Resolve("")
	svc.Append(sess, llm.Message{Role: llm.RoleUser, Content: "original"})

	snap := svc.HistoryCopy(sess)
	snap[0].Content = "mutated"

	if got := svc.HistoryCopy(sess)[0].Content; got != "original" {
		t.Errorf("session history mutated through snapshot: %q", got)
	}
}
