package session

import (
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/casaluna/hotel-pms/internal/api/metrics"
)

// ExpireFunc is called after a monitored session was ended by a timer.
type ExpireFunc func(sessionID string, reason Reason)

// tombstoneTTL is how long an ended session id is refused adoption. It
// only has to outlast requests that were already past authentication.
const tombstoneTTL = time.Minute

// Manager owns one Monitor per live session.
type Manager struct {
	mu       sync.Mutex
	cfg      Config
	clock    Clock
	onExpire ExpireFunc
	log      zerolog.Logger
	monitors map[string]*Monitor
	ended    map[string]time.Time
}

// NewManager returns an empty Manager. onExpire is called without any
// Manager lock held, so it may call back into the Manager.
func NewManager(cfg Config, clock Clock, onExpire ExpireFunc, log zerolog.Logger) *Manager {
	if clock == nil {
		clock = SystemClock()
	}
	return &Manager{
		cfg:      cfg,
		clock:    clock,
		onExpire: onExpire,
		log:      log,
		monitors: make(map[string]*Monitor),
		ended:    make(map[string]time.Time),
	}
}

// Start begins monitoring a session, replacing any previous monitor for
// the same id.
func (m *Manager) Start(sessionID string) {
	mon := m.newMonitor(sessionID)

	m.mu.Lock()
	prev := m.monitors[sessionID]
	m.monitors[sessionID] = mon
	delete(m.ended, sessionID)
	m.gaugeLocked()
	m.mu.Unlock()

	if prev != nil {
		prev.Stop()
	}
}

// Activity records client activity. Sessions that are valid but not yet
// monitored, e.g. after a restart, are adopted; sessions that ended within
// tombstoneTTL are not. It reports whether the session is still live.
func (m *Manager) Activity(sessionID string, a Activity) bool {
	mon := m.adopt(sessionID)
	if mon == nil {
		return false
	}
	return mon.Activity(a)
}

// Done returns a channel closed when the session expires or is stopped.
// Unmonitored sessions are adopted as Activity does; an ended session gets
// a closed channel.
func (m *Manager) Done(sessionID string) <-chan struct{} {
	mon := m.adopt(sessionID)
	if mon == nil {
		ch := make(chan struct{})
		close(ch)
		return ch
	}
	return mon.Done()
}

func (m *Manager) adopt(sessionID string) *Monitor {
	m.mu.Lock()
	defer m.mu.Unlock()
	if mon, ok := m.monitors[sessionID]; ok {
		return mon
	}
	if at, ok := m.ended[sessionID]; ok && m.clock.Now().Sub(at) < tombstoneTTL {
		return nil
	}
	mon := m.newMonitor(sessionID)
	m.monitors[sessionID] = mon
	m.gaugeLocked()
	return mon
}

// Visibility records a visibility change. It reports whether the session is
// still live afterwards.
func (m *Manager) Visibility(sessionID string, hidden bool) bool {
	m.mu.Lock()
	mon, ok := m.monitors[sessionID]
	m.mu.Unlock()
	if !ok {
		return false
	}

	if hidden {
		mon.Hidden()
		return !mon.Expired()
	}
	return mon.Visible()
}

// Stop ends monitoring of a session without running the expiry callback.
func (m *Manager) Stop(sessionID string) {
	m.mu.Lock()
	mon := m.monitors[sessionID]
	delete(m.monitors, sessionID)
	m.buryLocked(sessionID)
	m.gaugeLocked()
	m.mu.Unlock()

	if mon != nil {
		mon.Stop()
	}
}

// StopAll clears every timer; used on shutdown.
func (m *Manager) StopAll() {
	m.mu.Lock()
	mons := m.monitors
	m.monitors = make(map[string]*Monitor)
	m.gaugeLocked()
	m.mu.Unlock()

	for _, mon := range mons {
		mon.Stop()
	}
}

// Active returns the number of monitored sessions.
func (m *Manager) Active() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.monitors)
}

func (m *Manager) newMonitor(sessionID string) *Monitor {
	var mon *Monitor
	mon = NewMonitor(m.cfg, m.clock, func(r Reason) {
		m.mu.Lock()
		if m.monitors[sessionID] == mon {
			delete(m.monitors, sessionID)
			m.buryLocked(sessionID)
			m.gaugeLocked()
		}
		m.mu.Unlock()

		m.log.Info().Str("session_id", sessionID).Str("reason", string(r)).Msg("session expired")
		if m.onExpire != nil {
			m.onExpire(sessionID, r)
		}
	})
	return mon
}

// buryLocked remembers an ended session and forgets expired tombstones.
func (m *Manager) buryLocked(sessionID string) {
	now := m.clock.Now()
	for id, at := range m.ended {
		if now.Sub(at) >= tombstoneTTL {
			delete(m.ended, id)
		}
	}
	m.ended[sessionID] = now
}

func (m *Manager) gaugeLocked() {
	metrics.ActiveSessionMonitors.Set(float64(len(m.monitors)))
}
