package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/casaluna/hotel-pms/internal/api/httperr"
	"github.com/casaluna/hotel-pms/internal/core/domain"
	"github.com/casaluna/hotel-pms/internal/core/live"
	"github.com/casaluna/hotel-pms/internal/core/ports"
	"github.com/casaluna/hotel-pms/internal/infrastructure/export"
)

type stubRecords[T any] struct {
	items   []T
	queries []string
	deleted []string
	getErr  error
}

func (s *stubRecords[T]) List(_ context.Context, q string) ([]T, error) {
	s.queries = append(s.queries, q)
	return s.items, nil
}

// Watch emits the current items once, then ends the stream.
func (s *stubRecords[T]) Watch(ctx context.Context, q string) (*live.Subscription[[]T], error) {
	s.queries = append(s.queries, q)
	items := s.items
	return live.Start(ctx, func(ctx context.Context, out chan<- []T) {
		live.Send(ctx, out, items)
	}), nil
}

func (s *stubRecords[T]) Get(_ context.Context, id string) (*T, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	if len(s.items) == 0 {
		return nil, domain.ErrNotFound
	}
	return &s.items[0], nil
}

func (s *stubRecords[T]) Delete(_ context.Context, id string) {
	s.deleted = append(s.deleted, id)
}

type stubRoomService struct {
	stubRecords[domain.Room]
	created ports.CreateRoomInput
}

func (s *stubRoomService) Create(_ context.Context, in ports.CreateRoomInput) (*domain.Room, error) {
	s.created = in
	return &domain.Room{ID: "r1", Number: in.Number}, nil
}

func (s *stubRoomService) Update(_ context.Context, id string, in ports.UpdateRoomInput) (*domain.Room, error) {
	return &domain.Room{ID: id}, nil
}

type stubExpenseService struct {
	stubRecords[domain.Expense]
}

func (s *stubExpenseService) Create(context.Context, ports.CreateExpenseInput) (*domain.Expense, error) {
	return nil, errors.New("not used")
}

func (s *stubExpenseService) Update(context.Context, string, ports.UpdateExpenseInput) (*domain.Expense, error) {
	return nil, errors.New("not used")
}

type stubReservationService struct {
	stubRecords[domain.Reservation]
	calls int
}

func (s *stubReservationService) Create(context.Context, ports.CreateReservationInput) (*domain.Reservation, error) {
	s.calls++
	return &domain.Reservation{ID: "b1"}, nil
}

func (s *stubReservationService) Update(context.Context, string, ports.UpdateReservationInput) (*domain.Reservation, error) {
	s.calls++
	return &domain.Reservation{ID: "b1"}, nil
}

func TestRoomHandler_ListPassesQuery(t *testing.T) {
	svc := &stubRoomService{stubRecords: stubRecords[domain.Room]{items: []domain.Room{{ID: "r1", Number: "101"}}}}
	h := NewRoomHandler(svc, time.Second, zerolog.Nop())

	c, rec := newContext(http.MethodGet, "/v1/rooms?q=deluxe", "")
	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), `"number":"101"`) {
		t.Fatalf("unexpected response %d %s", rec.Code, rec.Body.String())
	}
	if len(svc.queries) != 1 || svc.queries[0] != "deluxe" {
		t.Fatalf("query not forwarded: %v", svc.queries)
	}
}

func TestRoomHandler_GetNotFound(t *testing.T) {
	svc := &stubRoomService{}
	h := NewRoomHandler(svc, time.Second, zerolog.Nop())

	c, _ := newContext(http.MethodGet, "/v1/rooms/x", "")
	c.SetParamNames("id")
	c.SetParamValues("x")
	if err := h.Get(c); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestRoomHandler_DeleteIsQueued(t *testing.T) {
	svc := &stubRoomService{}
	h := NewRoomHandler(svc, time.Second, zerolog.Nop())

	c, rec := newContext(http.MethodDelete, "/v1/rooms/r9", "")
	c.SetParamNames("id")
	c.SetParamValues("r9")
	if err := h.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusAccepted {
		t.Fatalf("expected 202, got %d", rec.Code)
	}
	if len(svc.deleted) != 1 || svc.deleted[0] != "r9" {
		t.Fatalf("delete not submitted: %v", svc.deleted)
	}
}

func TestRoomHandler_CreateValidatesStatus(t *testing.T) {
	svc := &stubRoomService{}
	h := NewRoomHandler(svc, time.Second, zerolog.Nop())

	c, _ := newContext(http.MethodPost, "/v1/rooms", `{"number":"101","type":"Deluxe","capacity":2,"status":"dirty"}`)
	var ve *httperr.ValidationError
	if err := h.Create(c); !errors.As(err, &ve) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if svc.created.Number != "" {
		t.Fatalf("nothing must be written on validation failure")
	}

	c, rec := newContext(http.MethodPost, "/v1/rooms", `{"number":"101","type":"Deluxe","base_price":120,"capacity":2}`)
	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated || svc.created.BasePrice != 120 {
		t.Fatalf("unexpected create %d %+v", rec.Code, svc.created)
	}
}

func TestRoomHandler_StreamSendsSnapshots(t *testing.T) {
	svc := &stubRoomService{stubRecords: stubRecords[domain.Room]{items: []domain.Room{{ID: "r1", Number: "101"}}}}
	h := NewRoomHandler(svc, time.Hour, zerolog.Nop())

	c, rec := newContext(http.MethodGet, "/v1/rooms/stream?q=10", "")
	if err := h.Stream(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "text/event-stream" {
		t.Fatalf("unexpected content type %q", ct)
	}
	body := rec.Body.String()
	if !strings.HasPrefix(body, "event: snapshot\ndata: [") || !strings.Contains(body, `"number":"101"`) {
		t.Fatalf("unexpected stream body %q", body)
	}
	if svc.queries[0] != "10" {
		t.Fatalf("query not forwarded to watch: %v", svc.queries)
	}
}

func TestReservationHandler_CheckOutMustFollowCheckIn(t *testing.T) {
	svc := &stubReservationService{}
	h := NewReservationHandler(svc, time.Second, zerolog.Nop())

	body := `{"room_id":"r1","guest_name":"Ana","check_in":"2026-03-05T15:00:00Z","check_out":"2026-03-02T11:00:00Z","guests":2}`
	c, _ := newContext(http.MethodPost, "/v1/reservations", body)

	var ve *httperr.ValidationError
	if err := h.Create(c); !errors.As(err, &ve) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if !strings.Contains(ve.Msg, "check_out must be after check_in") {
		t.Fatalf("unexpected message %q", ve.Msg)
	}
	if svc.calls != 0 {
		t.Fatalf("service must not be called")
	}
}

func TestExpenseHandler_ExportReturnsWorkbook(t *testing.T) {
	svc := &stubExpenseService{stubRecords: stubRecords[domain.Expense]{items: []domain.Expense{
		{ID: "e1", Description: "Linen", Category: "Supplies", Amount: 80, Date: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)},
	}}}
	h := NewExpenseHandler(svc, time.Second, zerolog.Nop())
	h.now = func() time.Time { return time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC) }

	c, rec := newContext(http.MethodGet, "/v1/expenses/export?q=linen", "")
	if err := h.Export(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if ct := rec.Header().Get("Content-Type"); ct != export.ContentType {
		t.Fatalf("unexpected content type %q", ct)
	}
	if cd := rec.Header().Get("Content-Disposition"); cd != `attachment; filename="expenses-2026-10-19.xlsx"` {
		t.Fatalf("unexpected disposition %q", cd)
	}
	if !strings.HasPrefix(rec.Body.String(), "PK") {
		t.Fatalf("body is not a zip container")
	}
	if svc.queries[0] != "linen" {
		t.Fatalf("export must honour the search filter")
	}
}
