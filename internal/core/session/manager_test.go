package session

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
)

type expired struct {
	id     string
	reason Reason
}

func newTestManager() (*Manager, *fakeClock, *[]expired) {
	clock := newFakeClock()
	var got []expired
	m := NewManager(DefaultConfig(), clock, func(id string, r Reason) {
		got = append(got, expired{id, r})
	}, zerolog.Nop())
	return m, clock, &got
}

func TestManager_IdleSessionExpiresAndIsForgotten(t *testing.T) {
	m, clock, got := newTestManager()
	m.Start("s1")
	m.Start("s2")

	clock.Advance(3 * time.Minute)
	m.Activity("s2", ActivityKeyDown)
	clock.Advance(2 * time.Minute)

	if len(*got) != 1 || (*got)[0] != (expired{"s1", ReasonIdle}) {
		t.Fatalf("expected s1 idle expiry, got %v", *got)
	}
	if m.Active() != 1 {
		t.Fatalf("expected one remaining session, got %d", m.Active())
	}
}

func TestManager_VisibilityRoundTrip(t *testing.T) {
	m, clock, got := newTestManager()
	m.Start("s1")

	if !m.Visibility("s1", true) {
		t.Fatalf("hiding should not end the session")
	}
	clock.Advance(5 * time.Second)
	if m.Visibility("s1", false) {
		t.Fatalf("returning after the threshold should end the session")
	}
	if len(*got) != 1 || (*got)[0].reason != ReasonHidden {
		t.Fatalf("expected hidden expiry, got %v", *got)
	}
	if m.Visibility("s1", false) {
		t.Fatalf("expired session is unknown")
	}
}

func TestManager_StopDoesNotFire(t *testing.T) {
	m, clock, got := newTestManager()
	m.Start("s1")
	m.Stop("s1")

	clock.Advance(time.Hour)
	if len(*got) != 0 {
		t.Fatalf("stopped session fired: %v", *got)
	}
}

func TestManager_StartReplacesPreviousMonitor(t *testing.T) {
	m, clock, got := newTestManager()
	m.Start("s1")
	clock.Advance(4 * time.Minute)
	m.Start("s1")
	clock.Advance(4 * time.Minute)

	if len(*got) != 0 {
		t.Fatalf("replaced monitor fired: %v", *got)
	}
	clock.Advance(time.Minute)
	if len(*got) != 1 {
		t.Fatalf("expected exactly one expiry, got %v", *got)
	}
}

func TestManager_ActivityAdoptsUnknownSession(t *testing.T) {
	m, _, _ := newTestManager()
	if !m.Activity("restored", ActivityRequest) {
		t.Fatalf("valid session should be adopted")
	}
	if m.Active() != 1 {
		t.Fatalf("expected adopted session to be monitored")
	}
}

func TestManager_ExpiryCallbackMayCallBack(t *testing.T) {
	clock := newFakeClock()
	var m *Manager
	m = NewManager(DefaultConfig(), clock, func(id string, _ Reason) {
		m.Stop(id)
	}, zerolog.Nop())
	m.Start("s1")

	done := make(chan struct{})
	go func() {
		clock.Advance(5 * time.Minute)
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatalf("expiry callback deadlocked")
	}
}

func TestManager_EndedSessionIsNotAdoptedAgain(t *testing.T) {
	m, clock, _ := newTestManager()
	m.Start("s1")
	clock.Advance(5 * time.Minute)

	if m.Activity("s1", ActivityRequest) {
		t.Fatalf("a request racing the expiry revived the session")
	}
	if m.Active() != 0 {
		t.Fatalf("expired session was monitored again")
	}

	m.Start("s2")
	m.Stop("s2")
	if m.Activity("s2", ActivityClick) {
		t.Fatalf("signed-out session was revived")
	}

	clock.Advance(tombstoneTTL)
	if !m.Activity("s2", ActivityClick) {
		t.Fatalf("old tombstones should be forgotten")
	}
}

func TestManager_DoneClosesWhenSessionEnds(t *testing.T) {
	m, clock, _ := newTestManager()
	m.Start("idle")
	m.Start("signed-out")

	idle := m.Done("idle")
	signedOut := m.Done("signed-out")

	m.Stop("signed-out")
	select {
	case <-signedOut:
	default:
		t.Fatalf("stop did not close the done channel")
	}

	select {
	case <-idle:
		t.Fatalf("live session reported done")
	default:
	}
	clock.Advance(5 * time.Minute)
	select {
	case <-idle:
	default:
		t.Fatalf("idle expiry did not close the done channel")
	}

	select {
	case <-m.Done("idle"):
	default:
		t.Fatalf("ended session should report done at once")
	}
}
