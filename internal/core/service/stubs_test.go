package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/casaluna/hotel-pms/internal/core/domain"
	"github.com/casaluna/hotel-pms/internal/core/live"
	"github.com/casaluna/hotel-pms/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory collection
// ---------------------------------------------------------------------------

// memRepo stores documents in insertion order. apply merges update fields
// into a document; idOf extracts its id.
type memRepo[T any] struct {
	mu      sync.Mutex
	docs    []T
	idOf    func(T) string
	apply   func(*T, ports.Fields)
	err     error
	updates []ports.Fields
	deleted []string
}

func (r *memRepo[T]) List(context.Context) ([]T, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	return append([]T(nil), r.docs...), nil
}

func (r *memRepo[T]) Get(_ context.Context, id string) (*T, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	for _, d := range r.docs {
		if r.idOf(d) == id {
			doc := d
			return &doc, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *memRepo[T]) Create(_ context.Context, doc *T) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	r.docs = append(r.docs, *doc)
	return nil
}

func (r *memRepo[T]) Update(_ context.Context, id string, fields ports.Fields) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	for i := range r.docs {
		if r.idOf(r.docs[i]) == id {
			r.updates = append(r.updates, fields)
			if r.apply != nil {
				r.apply(&r.docs[i], fields)
			}
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *memRepo[T]) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	for i := range r.docs {
		if r.idOf(r.docs[i]) == id {
			r.docs = append(r.docs[:i], r.docs[i+1:]...)
			r.deleted = append(r.deleted, id)
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *memRepo[T]) Watch(ctx context.Context) (*live.Subscription[[]T], error) {
	docs, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	return live.Static(ctx, docs), nil
}

// ---------------------------------------------------------------------------
// Typed repositories
// ---------------------------------------------------------------------------

type stubStaffRepo struct {
	memRepo[domain.StaffRecord]
	feed chan []domain.StaffRecord
}

func newStubStaffRepo(recs ...domain.StaffRecord) *stubStaffRepo {
	r := &stubStaffRepo{feed: make(chan []domain.StaffRecord, 4)}
	r.docs = recs
	r.idOf = func(s domain.StaffRecord) string { return s.ID }
	r.apply = func(s *domain.StaffRecord, f ports.Fields) {
		if v, ok := f["name"].(string); ok {
			s.Name = v
		}
		if v, ok := f["email"].(string); ok {
			s.Email = v
		}
		if v, ok := f["role"].(domain.Role); ok {
			s.Role = v
		}
	}
	return r
}

func (r *stubStaffRepo) FindByEmail(_ context.Context, email string) ([]domain.StaffRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	var out []domain.StaffRecord
	for _, s := range r.docs {
		if s.Email == email {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *stubStaffRepo) FindByUserID(_ context.Context, userID string) ([]domain.StaffRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.StaffRecord
	for _, s := range r.docs {
		if s.UserID != "" && s.UserID == userID {
			out = append(out, s)
		}
	}
	return out, nil
}

// WatchByEmail relays whatever the test pushes on feed.
func (r *stubStaffRepo) WatchByEmail(ctx context.Context, _ string) (*live.Subscription[[]domain.StaffRecord], error) {
	return live.Start(ctx, func(ctx context.Context, out chan<- []domain.StaffRecord) {
		for {
			select {
			case <-ctx.Done():
				return
			case recs := <-r.feed:
				if !live.Send(ctx, out, recs) {
					return
				}
			}
		}
	}), nil
}

type stubRoomRepo struct{ memRepo[domain.Room] }

func newStubRoomRepo(rooms ...domain.Room) *stubRoomRepo {
	r := &stubRoomRepo{}
	r.docs = rooms
	r.idOf = func(x domain.Room) string { return x.ID }
	r.apply = func(x *domain.Room, f ports.Fields) {
		if v, ok := f["number"].(string); ok {
			x.Number = v
		}
		if v, ok := f["base_price"].(float64); ok {
			x.BasePrice = v
		}
		if v, ok := f["status"].(domain.RoomStatus); ok {
			x.Status = v
		}
	}
	return r
}

type stubReservationRepo struct {
	memRepo[domain.Reservation]
	findErr error
}

func newStubReservationRepo(res ...domain.Reservation) *stubReservationRepo {
	r := &stubReservationRepo{}
	r.docs = res
	r.idOf = func(x domain.Reservation) string { return x.ID }
	r.apply = func(x *domain.Reservation, f ports.Fields) {
		if v, ok := f["check_in"].(time.Time); ok {
			x.CheckIn = v
		}
		if v, ok := f["check_out"].(time.Time); ok {
			x.CheckOut = v
		}
		if v, ok := f["status"].(domain.ReservationStatus); ok {
			x.Status = v
		}
		if v, ok := f["guest_name"].(string); ok {
			x.GuestName = v
		}
	}
	return r
}

func (r *stubReservationRepo) FindByRoom(_ context.Context, roomID string) ([]domain.Reservation, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.Reservation
	for _, x := range r.docs {
		if x.RoomID == roomID {
			out = append(out, x)
		}
	}
	return out, nil
}

type stubStockRepo struct{ memRepo[domain.StockItem] }

func newStubStockRepo(items ...domain.StockItem) *stubStockRepo {
	r := &stubStockRepo{}
	r.docs = items
	r.idOf = func(x domain.StockItem) string { return x.ID }
	r.apply = func(x *domain.StockItem, f ports.Fields) {
		if v, ok := f["quantity"].(int); ok {
			x.Quantity = v
		}
		if v, ok := f["updated_at"].(time.Time); ok {
			x.UpdatedAt = v
		}
	}
	return r
}

type stubExpenseRepo struct{ memRepo[domain.Expense] }

func newStubExpenseRepo(items ...domain.Expense) *stubExpenseRepo {
	r := &stubExpenseRepo{}
	r.docs = items
	r.idOf = func(x domain.Expense) string { return x.ID }
	r.apply = func(x *domain.Expense, f ports.Fields) {
		if v, ok := f["amount"].(float64); ok {
			x.Amount = v
		}
	}
	return r
}

// ---------------------------------------------------------------------------
// Write queue and dedup
// ---------------------------------------------------------------------------

// syncQueue runs every task inline so tests can assert on its effects.
type syncQueue struct {
	tasks []ports.WriteTask
	errs  []error
}

func (q *syncQueue) Submit(task ports.WriteTask) {
	q.tasks = append(q.tasks, task)
	q.errs = append(q.errs, task.Run(context.Background()))
}

type stubDedup struct {
	seen   map[string]bool
	dupErr error
}

func newStubDedup() *stubDedup { return &stubDedup{seen: map[string]bool{}} }

func (d *stubDedup) IsDuplicate(_ context.Context, collection, id string) (bool, error) {
	if d.dupErr != nil {
		return false, d.dupErr
	}
	return d.seen[collection+"/"+id], nil
}

func (d *stubDedup) Mark(_ context.Context, collection, id string) error {
	d.seen[collection+"/"+id] = true
	return nil
}

// ---------------------------------------------------------------------------
// Auth collaborators
// ---------------------------------------------------------------------------

type stubIdentityRepo struct {
	mu   sync.Mutex
	byID map[string]*domain.Identity
	seq  int
	err  error
}

func newStubIdentityRepo() *stubIdentityRepo {
	return &stubIdentityRepo{byID: map[string]*domain.Identity{}}
}

func (r *stubIdentityRepo) FindByEmail(_ context.Context, email string) (*domain.Identity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	for _, u := range r.byID {
		if u.Email == email {
			c := *u
			return &c, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubIdentityRepo) FindByID(_ context.Context, id string) (*domain.Identity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	c := *u
	return &c, nil
}

func (r *stubIdentityRepo) Create(_ context.Context, identity *domain.Identity) (*domain.Identity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.byID {
		if u.Email == identity.Email {
			return nil, domain.ErrEmailInUse
		}
	}
	r.seq++
	c := *identity
	if c.ID == "" {
		c.ID = fmt.Sprintf("user-%d", r.seq)
	}
	r.byID[c.ID] = &c
	out := c
	return &out, nil
}

func (r *stubIdentityRepo) UpdateProfile(_ context.Context, id, displayName, photoURL string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.byID[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.DisplayName, u.PhotoURL = displayName, photoURL
	return nil
}

func (r *stubIdentityRepo) UpdatePasswordHash(_ context.Context, id, hash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.byID[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.PasswordHash = hash
	return nil
}

type stubSessionStore struct {
	mu       sync.Mutex
	sessions map[string]*domain.Session
	ttls     map[string]time.Duration
}

func newStubSessionStore() *stubSessionStore {
	return &stubSessionStore{sessions: map[string]*domain.Session{}, ttls: map[string]time.Duration{}}
}

func (s *stubSessionStore) Create(_ context.Context, sess *domain.Session, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := *sess
	s.sessions[sess.ID] = &c
	s.ttls[sess.ID] = ttl
	return nil
}

func (s *stubSessionStore) Get(_ context.Context, id string) (*domain.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	c := *sess
	return &c, nil
}

func (s *stubSessionStore) Delete(_ context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.sessions[id]
	delete(s.sessions, id)
	return ok, nil
}

type stubMonitor struct {
	started []string
	stopped []string
}

func (m *stubMonitor) Start(id string) { m.started = append(m.started, id) }
func (m *stubMonitor) Stop(id string)  { m.stopped = append(m.stopped, id) }

type stubAudit struct {
	events []domain.SessionEvent
	err    error
}

func (a *stubAudit) Record(_ context.Context, ev *domain.SessionEvent) error {
	if a.err != nil {
		return a.err
	}
	a.events = append(a.events, *ev)
	return nil
}

func (a *stubAudit) kinds() []domain.SessionEventKind {
	out := make([]domain.SessionEventKind, 0, len(a.events))
	for _, e := range a.events {
		out = append(out, e.Kind)
	}
	return out
}
