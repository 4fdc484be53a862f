// Package session enforces forced sign-out of idle or backgrounded sessions.
//
// Two independent triggers end a session: an inactivity timer rearmed by
// qualifying activity, and a backgrounding check that compares how long the
// client was hidden against a threshold. Both are terminal.
package session

import (
	"sync"
	"time"
)

// Reason explains why a session was ended.
type Reason string

const (
	ReasonIdle   Reason = "idle"
	ReasonHidden Reason = "hidden"
)

// Activity is a client input event reported for a session.
type Activity string

const (
	ActivityPointerMove Activity = "pointermove"
	ActivityKeyDown     Activity = "keydown"
	ActivityClick       Activity = "click"
	ActivityScroll      Activity = "scroll"
	// ActivityRequest is recorded for every authenticated API request.
	ActivityRequest Activity = "request"
	// ActivityVisibility accompanies visibility changes. It keeps the
	// session monitored without rearming the idle timer.
	ActivityVisibility Activity = "visibilitychange"
)

// Qualifies reports whether a rearms the inactivity timer.
func (a Activity) Qualifies() bool {
	switch a {
	case ActivityPointerMove, ActivityKeyDown, ActivityClick, ActivityScroll, ActivityRequest:
		return true
	}
	return false
}

// Config holds the expiry thresholds.
type Config struct {
	IdleTimeout     time.Duration
	HiddenThreshold time.Duration
}

// DefaultConfig mirrors the kiosk posture: five idle minutes, three hidden
// seconds.
func DefaultConfig() Config {
	return Config{IdleTimeout: 5 * time.Minute, HiddenThreshold: 3 * time.Second}
}

// Monitor tracks one session. onExpire runs at most once, outside the
// monitor's lock, and never starts once Stop has returned.
type Monitor struct {
	mu       sync.Mutex
	cfg      Config
	clock    Clock
	onExpire func(Reason)

	idle       Timer
	generation uint64
	hidden     bool
	hiddenAt   time.Time
	done       bool
	ended      chan struct{}
}

// NewMonitor returns a monitor with its inactivity timer already armed.
func NewMonitor(cfg Config, clock Clock, onExpire func(Reason)) *Monitor {
	m := &Monitor{cfg: cfg, clock: clock, onExpire: onExpire, ended: make(chan struct{})}
	m.mu.Lock()
	m.armLocked()
	m.mu.Unlock()
	return m
}

// Activity rearms the inactivity timer for qualifying events. It reports
// whether the session is still live.
func (m *Monitor) Activity(a Activity) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.done {
		return false
	}
	if a.Qualifies() {
		m.armLocked()
	}
	return true
}

// Hidden records that the client went to the background.
func (m *Monitor) Hidden() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.done || m.hidden {
		return
	}
	m.hidden = true
	m.hiddenAt = m.clock.Now()
}

// Visible records that the client came back. It ends the session and
// returns false when the client stayed hidden for at least the threshold.
func (m *Monitor) Visible() bool {
	m.mu.Lock()
	if m.done {
		m.mu.Unlock()
		return false
	}
	if !m.hidden {
		m.mu.Unlock()
		return true
	}
	m.hidden = false
	elapsed := m.clock.Now().Sub(m.hiddenAt)
	m.mu.Unlock()

	if elapsed >= m.cfg.HiddenThreshold {
		m.expire(ReasonHidden)
		return false
	}
	return true
}

// Stop clears both timers without running onExpire.
func (m *Monitor) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.endLocked()
	m.stopIdleLocked()
}

// Done is closed once the session expired or was stopped.
func (m *Monitor) Done() <-chan struct{} {
	return m.ended
}

// Expired reports whether the monitor has ended or been stopped.
func (m *Monitor) Expired() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.done
}

func (m *Monitor) armLocked() {
	m.stopIdleLocked()
	m.generation++
	gen := m.generation
	m.idle = m.clock.AfterFunc(m.cfg.IdleTimeout, func() { m.idleFired(gen) })
}

func (m *Monitor) endLocked() {
	if !m.done {
		m.done = true
		close(m.ended)
	}
}

func (m *Monitor) stopIdleLocked() {
	if m.idle != nil {
		m.idle.Stop()
		m.idle = nil
	}
}

// idleFired ignores callbacks from timers that were rearmed or stopped
// after they were scheduled.
func (m *Monitor) idleFired(gen uint64) {
	m.mu.Lock()
	stale := gen != m.generation
	m.mu.Unlock()
	if stale {
		return
	}
	m.expire(ReasonIdle)
}

func (m *Monitor) expire(r Reason) {
	m.mu.Lock()
	if m.done {
		m.mu.Unlock()
		return
	}
	m.endLocked()
	m.generation++
	m.stopIdleLocked()
	m.mu.Unlock()

	if m.onExpire != nil {
		m.onExpire(r)
	}
}
