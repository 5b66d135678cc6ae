package handlers

import (
	"context"
	"testing"

	"github.com/gofiber/fiber/v2"

	"urecite/corpus"
	"urecite/recite"
)

func newSessionHandler(t *testing.T) *Handler {
	t.Helper()
	c, err := corpus.New(
		[]string{"Genesis 1:1", "Exodus 1:1", "John 11:35"},
		[]string{"In the beginning", "Now these are the names", "Jesus wept."},
	)
	if err != nil {
		t.Fatal(err)
	}
	return New(recite.NewMatcher(c.Books(), c), c, nil, "")
}

func payloadBook(t *testing.T, r sessionReply) string {
	t.Helper()
	if r.Type != "position" {
		t.Fatalf("reply type = %q, want position (%v)", r.Type, r.Payload)
	}
	return r.Payload.(fiber.Map)["book"].(string)
}

func TestSession_NavigationUnlocksAfterMatch(t *testing.T) {
	t.Parallel()
	h := newSessionHandler(t)
	s := h.newSession(nil)
	ctx := context.Background()

	if r := h.handleSessionMessage(ctx, s, sessionMessage{Type: "next"}); r.Type != "error" {
		t.Fatalf("next before a match = %q, want error", r.Type)
	}

	r := h.handleSessionMessage(ctx, s, sessionMessage{Type: "recite", Transcript: "John 11 35 jesus slept"})
	if r.Type != "result" {
		t.Fatalf("recite reply type = %q", r.Type)
	}
	payload := r.Payload.(fiber.Map)
	if payload["passed"] != true || payload["can_advance"] != true {
		t.Errorf("recite payload = %v, want passed and can_advance", payload)
	}

	if got := payloadBook(t, h.handleSessionMessage(ctx, s, sessionMessage{Type: "next"})); got != "Exodus" {
		t.Errorf("next = %q, want Exodus", got)
	}
	if got := payloadBook(t, h.handleSessionMessage(ctx, s, sessionMessage{Type: "Previous"})); got != "Genesis" {
		t.Errorf("previous = %q, want Genesis", got)
	}
	if got := payloadBook(t, h.handleSessionMessage(ctx, s, sessionMessage{Type: "previous"})); got != "John" {
		t.Errorf("previous from first book = %q, want John", got)
	}
}

func TestSession_FailedMatchKeepsLock(t *testing.T) {
	t.Parallel()
	h := newSessionHandler(t)
	s := h.newSession(nil)
	ctx := context.Background()

	r := h.handleSessionMessage(ctx, s, sessionMessage{Type: "recite", Transcript: "Genesis 1 1 the end"})
	if r.Payload.(fiber.Map)["can_advance"] != false {
		t.Errorf("can_advance after a failed match = %v, want false", r.Payload)
	}
	if r := h.handleSessionMessage(ctx, s, sessionMessage{Type: "next"}); r.Type != "error" {
		t.Errorf("next after failed match = %q, want error", r.Type)
	}
}

func TestSession_SelectAndErrors(t *testing.T) {
	t.Parallel()
	h := newSessionHandler(t)
	s := h.newSession(nil)
	ctx := context.Background()

	if got := payloadBook(t, h.handleSessionMessage(ctx, s, sessionMessage{Type: "select", Book: "John"})); got != "John" {
		t.Errorf("select John = %q", got)
	}
	if s.cursor.Index() != 2 {
		t.Errorf("cursor index = %d, want 2", s.cursor.Index())
	}

	for _, msg := range []sessionMessage{
		{Type: "select", Book: "zzz"},
		{Type: "recite"},
		{Type: "dance"},
	} {
		if r := h.handleSessionMessage(ctx, s, msg); r.Type != "error" {
			t.Errorf("%+v reply = %q, want error", msg, r.Type)
		}
	}
}

func TestSession_RateLimited(t *testing.T) {
	t.Parallel()
	h := newSessionHandler(t)
	h.sessionBurst = 2
	h.sessionRefill = 0
	s := h.newSession(nil)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		if r := h.handleSessionMessage(ctx, s, sessionMessage{Type: "select", Book: "Exodus"}); r.Type != "position" {
			t.Fatalf("message %d = %q, want position", i, r.Type)
		}
	}
	r := h.handleSessionMessage(ctx, s, sessionMessage{Type: "select", Book: "Exodus"})
	if r.Type != "error" {
		t.Errorf("third message = %q, want rate limit error", r.Type)
	}
}

func TestSession_IDsAreUnique(t *testing.T) {
	t.Parallel()
	h := newSessionHandler(t)
	if a, b := h.newSession(nil), h.newSession(nil); a.id == b.id || len(a.id) != 36 {
		t.Errorf("session ids %q %q, want distinct UUIDs", a.id, b.id)
	}
}
