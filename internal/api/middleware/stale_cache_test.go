package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/casaluna/hotel-pms/internal/core/domain"
	"github.com/casaluna/hotel-pms/internal/core/ports"
)

type memStore struct {
	entries map[string]*ports.CachedResponse
}

func (m *memStore) Get(_ context.Context, key string) (*ports.CachedResponse, error) {
	return m.entries[key], nil
}

func (m *memStore) Set(_ context.Context, key string, resp *ports.CachedResponse) error {
	m.entries[key] = resp
	return nil
}

func serveCached(store *memStore, method, target string, h echo.HandlerFunc) (*httptest.ResponseRecorder, error) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(method, target, nil), rec)
	err := StaleCache(store, zerolog.Nop())(h)(c)
	return rec, err
}

func TestStaleCache_StoresThenServesStaleOnServerError(t *testing.T) {
	store := &memStore{entries: map[string]*ports.CachedResponse{}}

	rec, err := serveCached(store, http.MethodGet, "/v1/rooms?q=dlx&access_token=tok", func(c echo.Context) error {
		return c.JSON(http.StatusOK, []string{"101"})
	})
	if err != nil || rec.Code != http.StatusOK {
		t.Fatalf("unexpected first response: %d %v", rec.Code, err)
	}
	if _, ok := store.entries["/v1/rooms?q=dlx"]; !ok {
		t.Fatalf("response not stored under token-free key, have %v", store.entries)
	}

	rec, err = serveCached(store, http.MethodGet, "/v1/rooms?q=dlx", func(c echo.Context) error {
		return errors.New("mongo unreachable")
	})
	if err != nil {
		t.Fatalf("stale response expected, got error %v", err)
	}
	if rec.Header().Get(HeaderCache) != "stale" {
		t.Fatalf("missing stale marker")
	}
	if rec.Body.String() != "[\"101\"]\n" {
		t.Fatalf("unexpected body %q", rec.Body.String())
	}
}

func TestStaleCache_ClientErrorsPassThrough(t *testing.T) {
	store := &memStore{entries: map[string]*ports.CachedResponse{
		"/v1/rooms/r1": {Status: http.StatusOK, Body: []byte(`{}`)},
	}}

	_, err := serveCached(store, http.MethodGet, "/v1/rooms/r1", func(c echo.Context) error {
		return domain.ErrNotFound
	})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestStaleCache_NothingCachedReturnsError(t *testing.T) {
	store := &memStore{entries: map[string]*ports.CachedResponse{}}
	boom := errors.New("boom")

	_, err := serveCached(store, http.MethodGet, "/v1/stock", func(c echo.Context) error { return boom })
	if !errors.Is(err, boom) {
		t.Fatalf("expected original error, got %v", err)
	}
}

func TestStaleCache_IgnoresWrites(t *testing.T) {
	store := &memStore{entries: map[string]*ports.CachedResponse{}}

	_, _ = serveCached(store, http.MethodPost, "/v1/rooms", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"id": "r1"})
	})
	if len(store.entries) != 0 {
		t.Fatalf("non-GET responses must not be cached")
	}
}
