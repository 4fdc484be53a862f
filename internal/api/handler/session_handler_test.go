package handler

import (
	"errors"
	"net/http"
	"testing"

	"github.com/casaluna/hotel-pms/internal/api/httperr"
	"github.com/casaluna/hotel-pms/internal/core/domain"
	"github.com/casaluna/hotel-pms/internal/core/session"
)

type stubMonitor struct {
	live       bool
	activities []session.Activity
	hidden     []bool
}

func (m *stubMonitor) Activity(_ string, a session.Activity) bool {
	m.activities = append(m.activities, a)
	return m.live
}

func (m *stubMonitor) Visibility(_ string, hidden bool) bool {
	m.hidden = append(m.hidden, hidden)
	return m.live
}

func TestSessionHandler_Activity(t *testing.T) {
	mon := &stubMonitor{live: true}
	h := NewSessionHandler(mon)

	c, rec := newContext(http.MethodPost, "/session/activity", `{"kind":"keydown"}`)
	signIn(c, "u1")
	if err := h.Activity(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if len(mon.activities) != 1 || mon.activities[0] != session.ActivityKeyDown {
		t.Fatalf("unexpected activities %v", mon.activities)
	}
}

func TestSessionHandler_Activity_ExpiredSession(t *testing.T) {
	h := NewSessionHandler(&stubMonitor{live: false})

	c, _ := newContext(http.MethodPost, "/session/activity", `{"kind":"click"}`)
	signIn(c, "u1")
	if err := h.Activity(c); !errors.Is(err, domain.ErrSessionExpired) {
		t.Fatalf("expected ErrSessionExpired, got %v", err)
	}
}

func TestSessionHandler_Visibility(t *testing.T) {
	mon := &stubMonitor{live: true}
	h := NewSessionHandler(mon)

	c, _ := newContext(http.MethodPost, "/session/visibility", `{"state":"hidden"}`)
	signIn(c, "u1")
	if err := h.Visibility(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if len(mon.hidden) != 1 || !mon.hidden[0] {
		t.Fatalf("expected hidden=true, got %v", mon.hidden)
	}
	if len(mon.activities) != 1 || mon.activities[0].Qualifies() {
		t.Fatalf("visibility must not rearm the idle timer, got %v", mon.activities)
	}
}

func TestSessionHandler_Visibility_InvalidState(t *testing.T) {
	mon := &stubMonitor{live: true}
	h := NewSessionHandler(mon)

	c, _ := newContext(http.MethodPost, "/session/visibility", `{"state":"minimized"}`)
	signIn(c, "u1")

	var ve *httperr.ValidationError
	if err := h.Visibility(c); !errors.As(err, &ve) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if len(mon.hidden) != 0 {
		t.Fatalf("monitor must not be touched")
	}
}
