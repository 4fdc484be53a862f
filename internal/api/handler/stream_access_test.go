package handler

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/casaluna/hotel-pms/internal/api/middleware"
	"github.com/casaluna/hotel-pms/internal/core/access"
	"github.com/casaluna/hotel-pms/internal/core/domain"
	"github.com/casaluna/hotel-pms/internal/core/live"
	"github.com/casaluna/hotel-pms/internal/core/session"
)

// feedRooms streams whatever the test pushes on feed.
type feedRooms struct {
	stubRoomService
	feed chan []domain.Room
}

func (s *feedRooms) Watch(ctx context.Context, _ string) (*live.Subscription[[]domain.Room], error) {
	return live.Start(ctx, func(ctx context.Context, out chan<- []domain.Room) {
		for {
			select {
			case <-ctx.Done():
				return
			case rooms := <-s.feed:
				if !live.Send(ctx, out, rooms) {
					return
				}
			}
		}
	}), nil
}

type feedRoles struct{ feed chan domain.RoleState }

func (r *feedRoles) Watch(ctx context.Context, _ *domain.Identity) (*live.Subscription[domain.RoleState], error) {
	return live.Start(ctx, func(ctx context.Context, out chan<- domain.RoleState) {
		for {
			select {
			case <-ctx.Done():
				return
			case st := <-r.feed:
				if !live.Send(ctx, out, st) {
					return
				}
			}
		}
	}), nil
}

type recordingRevoker struct {
	mu      sync.Mutex
	revoked []string
}

func (r *recordingRevoker) Revoke(_ context.Context, sessionID, reason string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.revoked = append(r.revoked, sessionID+":"+reason)
	return nil
}

func (r *recordingRevoker) calls() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.revoked...)
}

func roleState(r domain.Role) domain.RoleState { return domain.RoleState{Role: &r} }

func waitReturned(t *testing.T, done <-chan error) {
	t.Helper()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("stream error: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("stream kept running after access was lost")
	}
}

func TestRoomStream_ClosesWhenSessionExpires(t *testing.T) {
	sessions := session.NewManager(session.Config{IdleTimeout: 200 * time.Millisecond, HiddenThreshold: time.Second}, nil, nil, zerolog.Nop())
	sessions.Start("sid-1")
	t.Cleanup(sessions.StopAll)

	svc := &feedRooms{feed: make(chan []domain.Room)}
	roles := &feedRoles{feed: make(chan domain.RoleState)}
	guarded := middleware.LiveAccess(access.RouteRooms, roles, sessions, &recordingRevoker{}, zerolog.Nop())(
		NewRoomHandler(svc, time.Hour, zerolog.Nop()).Stream)

	c, rec := newContext("GET", "/v1/rooms/stream", "")
	signIn(c, "u1")

	done := make(chan error, 1)
	go func() { done <- guarded(c) }()

	svc.feed <- []domain.Room{{ID: "lobby-room"}}
	<-sessions.Done("sid-1")
	waitReturned(t, done)

	select {
	case svc.feed <- []domain.Room{{ID: "secret-room"}}:
		t.Fatalf("live query still consumed changes after the session ended")
	default:
	}
	body := rec.Body.String()
	if !strings.Contains(body, "lobby-room") {
		t.Fatalf("snapshot before expiry missing: %q", body)
	}
	if strings.Contains(body, "secret-room") {
		t.Fatalf("data delivered after expiry: %q", body)
	}
}

func TestStaffStream_DemotionSignsOutAndCloses(t *testing.T) {
	sessions := session.NewManager(session.DefaultConfig(), nil, nil, zerolog.Nop())
	sessions.Start("sid-1")
	t.Cleanup(sessions.StopAll)

	svc := &feedRooms{feed: make(chan []domain.Room)}
	roles := &feedRoles{feed: make(chan domain.RoleState)}
	revoker := &recordingRevoker{}
	guarded := middleware.LiveAccess(access.RouteStaff, roles, sessions, revoker, zerolog.Nop())(
		NewRoomHandler(svc, time.Hour, zerolog.Nop()).Stream)

	c, _ := newContext("GET", "/v1/staff/stream", "")
	signIn(c, "u1")

	done := make(chan error, 1)
	go func() { done <- guarded(c) }()

	roles.feed <- domain.RoleState{IsLoading: true}
	roles.feed <- roleState(domain.RoleAdmin)
	select {
	case <-done:
		t.Fatalf("stream closed while the role still allowed it")
	case <-time.After(50 * time.Millisecond):
	}

	roles.feed <- roleState(domain.RoleReception)
	waitReturned(t, done)

	if got := revoker.calls(); len(got) != 1 || got[0] != "sid-1:"+middleware.RevokeReasonUnauthorized {
		t.Fatalf("expected one revoke, got %v", got)
	}
}
