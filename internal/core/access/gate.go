// Package access decides whether a caller may see a protected route.
//
// The decision combines the session (who is signed in) with the role
// resolved from the staff collection. No decision is taken while either
// lookup is still loading, so a legitimate admin whose role lookup is in
// flight is never redirected away.
package access

import (
	"sync"

	"github.com/casaluna/hotel-pms/internal/core/domain"
)

// LoginPath is where every rejected caller is sent.
const LoginPath = "/login"

// State is the outcome of evaluating the gate.
type State int

const (
	StateLoading State = iota
	StateAuthorized
	StateUnauthorized
	StateNoUser
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateAuthorized:
		return "authorized"
	case StateUnauthorized:
		return "unauthorized"
	case StateNoUser:
		return "no_user"
	default:
		return "unknown"
	}
}

// Evaluate maps a session and role to a gate state for a route open to the
// allowed roles. A signed-in identity without a staff record is
// unauthorized.
func Evaluate(session domain.SessionState, role domain.RoleState, allowed []domain.Role) State {
	if session.IsLoading || role.IsLoading {
		return StateLoading
	}
	if session.Identity == nil {
		return StateNoUser
	}
	if role.Role == nil {
		return StateUnauthorized
	}
	for _, r := range allowed {
		if r == *role.Role {
			return StateAuthorized
		}
	}
	return StateUnauthorized
}

// Outcome tells the caller what to do with the protected content. Only
// StateAuthorized may show it.
type Outcome struct {
	State State
	// Redirect is the path to navigate to, empty when none.
	Redirect string
}

// Gate evaluates successive observations of one caller and triggers the
// sign-out for an unauthorized identity exactly once.
type Gate struct {
	mu         sync.Mutex
	signOut    func()
	latched    bool
	latchedFor string // identity id already signed out
}

// NewGate returns a Gate that calls signOut when an identity is found to be
// unauthorized.
func NewGate(signOut func()) *Gate {
	return &Gate{signOut: signOut}
}

// Observe evaluates the gate for the current session and role.
func (g *Gate) Observe(session domain.SessionState, role domain.RoleState, allowed []domain.Role) Outcome {
	state := Evaluate(session, role, allowed)

	switch state {
	case StateLoading:
		return Outcome{State: state}
	case StateNoUser:
		g.reset()
		return Outcome{State: state, Redirect: LoginPath}
	case StateUnauthorized:
		g.signOutOnce(session.Identity.ID)
		return Outcome{State: state, Redirect: LoginPath}
	default:
		g.reset()
		return Outcome{State: state}
	}
}

func (g *Gate) signOutOnce(identityID string) {
	g.mu.Lock()
	if g.latched && g.latchedFor == identityID {
		g.mu.Unlock()
		return
	}
	g.latched, g.latchedFor = true, identityID
	g.mu.Unlock()

	if g.signOut != nil {
		g.signOut()
	}
}

func (g *Gate) reset() {
	g.mu.Lock()
	g.latched, g.latchedFor = false, ""
	g.mu.Unlock()
}
