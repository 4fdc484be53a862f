package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/casaluna/hotel-pms/internal/api/httperr"
	"github.com/casaluna/hotel-pms/internal/core/access"
	"github.com/casaluna/hotel-pms/internal/core/domain"
)

type stubRoles struct {
	role *domain.Role
	err  error
}

func (r *stubRoles) Resolve(_ context.Context, identity *domain.Identity) (domain.RoleState, error) {
	if identity == nil {
		return domain.RoleState{}, nil
	}
	return domain.RoleState{Role: r.role}, r.err
}

type stubRevoker struct {
	revoked []string
}

func (r *stubRevoker) Revoke(_ context.Context, sessionID, reason string) error {
	r.revoked = append(r.revoked, sessionID+":"+reason)
	return nil
}

func rolePtr(r domain.Role) *domain.Role { return &r }

func runGate(t *testing.T, route access.Route, state domain.SessionState, roles *stubRoles, revoker *stubRevoker) (bool, error, echo.Context) {
	t.Helper()
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	c.Set(ContextSession, state)

	called := false
	err := Gate(route, roles, revoker, zerolog.Nop())(func(c echo.Context) error {
		called = true
		return nil
	})(c)
	return called, err, c
}

var signedIn = domain.SessionState{SessionID: "sid", Identity: &domain.Identity{ID: "u1", Email: "a@hotel.test"}}

func TestGate_AllowsPermittedRole(t *testing.T) {
	revoker := &stubRevoker{}
	called, err, c := runGate(t, access.RouteReservations, signedIn, &stubRoles{role: rolePtr(domain.RoleReception)}, revoker)
	if err != nil || !called {
		t.Fatalf("expected next called, err=%v", err)
	}
	if r := RoleState(c); r.Role == nil || *r.Role != domain.RoleReception {
		t.Fatalf("role not injected: %+v", r)
	}
	if len(revoker.revoked) != 0 {
		t.Fatalf("no sign-out expected")
	}
}

func TestGate_WrongRoleSignsOut(t *testing.T) {
	revoker := &stubRevoker{}
	called, err, _ := runGate(t, access.RouteExpenses, signedIn, &stubRoles{role: rolePtr(domain.RoleHousekeeping)}, revoker)
	if called || !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if len(revoker.revoked) != 1 || revoker.revoked[0] != "sid:unauthorized" {
		t.Fatalf("expected one revoke, got %v", revoker.revoked)
	}
	var rd *httperr.Redirected
	if !errors.As(err, &rd) || rd.To != access.LoginPath {
		t.Fatalf("rejection must carry the gate redirect, got %v", err)
	}
}

func TestGate_NoStaffRecordSignsOut(t *testing.T) {
	revoker := &stubRevoker{}
	_, err, _ := runGate(t, access.RouteDashboard, signedIn, &stubRoles{}, revoker)
	if !errors.Is(err, domain.ErrForbidden) || len(revoker.revoked) != 1 {
		t.Fatalf("expected rejection with sign-out, err=%v revoked=%v", err, revoker.revoked)
	}
}

func TestGate_NoUserRedirectsWithoutSignOut(t *testing.T) {
	revoker := &stubRevoker{}
	called, err, _ := runGate(t, access.RouteDashboard, domain.SessionState{}, &stubRoles{}, revoker)
	if called || !errors.Is(err, domain.ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
	if len(revoker.revoked) != 0 {
		t.Fatalf("nobody to sign out")
	}
}

func TestGate_RoleLookupError(t *testing.T) {
	boom := errors.New("mongo down")
	revoker := &stubRevoker{}
	_, err, _ := runGate(t, access.RouteDashboard, signedIn, &stubRoles{err: boom}, revoker)
	if !errors.Is(err, boom) {
		t.Fatalf("expected lookup error, got %v", err)
	}
	if len(revoker.revoked) != 0 {
		t.Fatalf("a failed lookup must not sign out")
	}
}
