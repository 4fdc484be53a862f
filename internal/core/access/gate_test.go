package access

import (
	"testing"

	"github.com/casaluna/hotel-pms/internal/core/domain"
)

func rolePtr(r domain.Role) *domain.Role { return &r }

func signedIn(id string) domain.SessionState {
	return domain.SessionState{SessionID: "s-" + id, Identity: &domain.Identity{ID: id, Email: id + "@example.com"}}
}

var adminOnly = []domain.Role{domain.RoleAdmin}

func TestEvaluate(t *testing.T) {
	admin := rolePtr(domain.RoleAdmin)
	reception := rolePtr(domain.RoleReception)

	cases := []struct {
		name    string
		session domain.SessionState
		role    domain.RoleState
		want    State
	}{
		{"auth loading", domain.SessionState{IsLoading: true}, domain.RoleState{}, StateLoading},
		{"role loading", signedIn("u1"), domain.RoleState{IsLoading: true}, StateLoading},
		{"role loading with no identity yet", domain.SessionState{}, domain.RoleState{IsLoading: true}, StateLoading},
		{"no identity", domain.SessionState{}, domain.RoleState{}, StateNoUser},
		{"no staff record", signedIn("u1"), domain.RoleState{}, StateUnauthorized},
		{"role mismatch", signedIn("u1"), domain.RoleState{Role: reception}, StateUnauthorized},
		{"role match", signedIn("u1"), domain.RoleState{Role: admin}, StateAuthorized},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Evaluate(tc.session, tc.role, adminOnly); got != tc.want {
				t.Fatalf("expected %s, got %s", tc.want, got)
			}
		})
	}
}

func TestGate_PendingRoleLookupNeverRedirects(t *testing.T) {
	calls := 0
	g := NewGate(func() { calls++ })

	out := g.Observe(signedIn("admin"), domain.RoleState{IsLoading: true}, adminOnly)
	if out.State != StateLoading || out.Redirect != "" {
		t.Fatalf("unexpected loading outcome: %+v", out)
	}

	out = g.Observe(signedIn("admin"), domain.RoleState{Role: rolePtr(domain.RoleAdmin)}, adminOnly)
	if out.State != StateAuthorized || out.Redirect != "" {
		t.Fatalf("unexpected authorized outcome: %+v", out)
	}
	if calls != 0 {
		t.Fatalf("admin must never be signed out, got %d calls", calls)
	}
}

func TestGate_UnauthorizedSignsOutExactlyOnce(t *testing.T) {
	calls := 0
	g := NewGate(func() { calls++ })
	role := domain.RoleState{Role: rolePtr(domain.RoleHousekeeping)}

	for i := 0; i < 5; i++ {
		out := g.Observe(signedIn("u1"), role, adminOnly)
		if out.State != StateUnauthorized || out.Redirect != LoginPath {
			t.Fatalf("unexpected outcome: %+v", out)
		}
	}
	if calls != 1 {
		t.Fatalf("expected exactly one sign-out, got %d", calls)
	}
}

func TestGate_LatchResetsForANewIdentity(t *testing.T) {
	calls := 0
	g := NewGate(func() { calls++ })

	g.Observe(signedIn("u1"), domain.RoleState{}, adminOnly)
	g.Observe(domain.SessionState{}, domain.RoleState{}, adminOnly)
	g.Observe(signedIn("u2"), domain.RoleState{}, adminOnly)

	if calls != 2 {
		t.Fatalf("expected one sign-out per identity, got %d", calls)
	}
}

func TestGate_NoUserRedirectsWithoutSignOut(t *testing.T) {
	calls := 0
	g := NewGate(func() { calls++ })

	out := g.Observe(domain.SessionState{}, domain.RoleState{}, adminOnly)
	if out.State != StateNoUser || out.Redirect != LoginPath {
		t.Fatalf("unexpected outcome: %+v", out)
	}
	if calls != 0 {
		t.Fatalf("no-user must not trigger sign-out")
	}
}
