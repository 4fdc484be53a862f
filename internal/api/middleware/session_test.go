package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/casaluna/hotel-pms/internal/core/domain"
	"github.com/casaluna/hotel-pms/internal/core/session"
)

type stubResolver struct {
	state domain.SessionState
	err   error
	token string
}

func (r *stubResolver) ResolveSession(_ context.Context, token string) (domain.SessionState, error) {
	r.token = token
	return r.state, r.err
}

type stubActivity struct {
	live bool
	seen []session.Activity
}

func (a *stubActivity) Activity(_ string, act session.Activity) bool {
	a.seen = append(a.seen, act)
	return a.live
}

func runSession(t *testing.T, resolver *stubResolver, activity *stubActivity, req *http.Request) (bool, error, echo.Context) {
	t.Helper()
	e := echo.New()
	c := e.NewContext(req, httptest.NewRecorder())
	called := false
	err := Session(resolver, activity)(func(c echo.Context) error {
		called = true
		return nil
	})(c)
	return called, err, c
}

func TestSession_ValidToken(t *testing.T) {
	resolver := &stubResolver{state: domain.SessionState{SessionID: "sid", Identity: &domain.Identity{ID: "u1"}}}
	activity := &stubActivity{live: true}
	req := httptest.NewRequest(http.MethodGet, "/v1/rooms", nil)
	req.Header.Set("Authorization", "Bearer tok")

	called, err, c := runSession(t, resolver, activity, req)
	if err != nil || !called {
		t.Fatalf("expected next called, err=%v", err)
	}
	if resolver.token != "tok" {
		t.Fatalf("unexpected token %q", resolver.token)
	}
	if got := SessionState(c); got.SessionID != "sid" || got.Identity.ID != "u1" {
		t.Fatalf("session not injected: %+v", got)
	}
	if len(activity.seen) != 1 || activity.seen[0] != session.ActivityRequest {
		t.Fatalf("request must count as activity, got %v", activity.seen)
	}
}

func TestSession_MissingOrMalformedHeader(t *testing.T) {
	for _, h := range []string{"", "Basic abc", "Bearer "} {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if h != "" {
			req.Header.Set("Authorization", h)
		}
		called, err, _ := runSession(t, &stubResolver{}, &stubActivity{live: true}, req)
		if called || !errors.Is(err, domain.ErrUnauthenticated) {
			t.Fatalf("header %q: expected ErrUnauthenticated, got %v", h, err)
		}
	}
}

func TestSession_QueryTokenOnlyForGet(t *testing.T) {
	resolver := &stubResolver{state: domain.SessionState{SessionID: "sid", Identity: &domain.Identity{ID: "u1"}}}

	req := httptest.NewRequest(http.MethodGet, "/v1/rooms/stream?access_token=tok", nil)
	if called, err, _ := runSession(t, resolver, &stubActivity{live: true}, req); !called || err != nil {
		t.Fatalf("expected GET with access_token accepted, err=%v", err)
	}

	req = httptest.NewRequest(http.MethodPost, "/v1/rooms?access_token=tok", nil)
	if called, err, _ := runSession(t, resolver, &stubActivity{live: true}, req); called || !errors.Is(err, domain.ErrUnauthenticated) {
		t.Fatalf("expected POST with access_token rejected, err=%v", err)
	}
}

func TestSession_RevokedSessionIsNoUser(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer tok")

	_, err, _ := runSession(t, &stubResolver{err: domain.ErrSessionNotFound}, &stubActivity{live: true}, req)
	if !errors.Is(err, domain.ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
}

func TestSession_ExpiredMonitor(t *testing.T) {
	resolver := &stubResolver{state: domain.SessionState{SessionID: "sid", Identity: &domain.Identity{ID: "u1"}}}
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer tok")

	called, err, _ := runSession(t, resolver, &stubActivity{live: false}, req)
	if called || !errors.Is(err, domain.ErrSessionExpired) {
		t.Fatalf("expected ErrSessionExpired, got %v", err)
	}
}
