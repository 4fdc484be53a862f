package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/casaluna/hotel-pms/internal/api/metrics"
	"github.com/casaluna/hotel-pms/internal/core/domain"
	"github.com/casaluna/hotel-pms/internal/core/live"
	"github.com/casaluna/hotel-pms/internal/core/ports"
)

// DeleteDedup drops repeated delete requests for the same document (Redis).
type DeleteDedup interface {
	IsDuplicate(ctx context.Context, collection, id string) (bool, error)
	Mark(ctx context.Context, collection, id string) error
}

func newID() string {
	return uuid.NewString()
}

// filterSorted returns the items whose search fields contain query, case
// insensitively, ordered by SortDate newest first. Items with equal dates
// keep their relative order. The input slice is never modified.
func filterSorted[T domain.Listable](items []T, query string) []T {
	q := strings.ToLower(strings.TrimSpace(query))
	out := make([]T, 0, len(items))
	for _, it := range items {
		if q == "" || matches(it, q) {
			out = append(out, it)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].SortDate().After(out[j].SortDate())
	})
	return out
}

func matches(it domain.Listable, lowerQuery string) bool {
	for _, f := range it.SearchFields() {
		if strings.Contains(strings.ToLower(f), lowerQuery) {
			return true
		}
	}
	return false
}

// records implements the parts every table screen shares: search, live
// listing, lookup and best-effort deletes.
type records[T domain.Listable] struct {
	collection string
	repo       ports.Repository[T]
	writes     ports.WriteQueue
	dedup      DeleteDedup
	log        zerolog.Logger
}

func (r *records[T]) List(ctx context.Context, query string) ([]T, error) {
	items, err := r.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", r.collection, err)
	}
	return filterSorted(items, query), nil
}

// Watch pushes the filtered, sorted list every time the collection changes.
func (r *records[T]) Watch(ctx context.Context, query string) (*live.Subscription[[]T], error) {
	sub, err := r.repo.Watch(ctx)
	if err != nil {
		return nil, fmt.Errorf("watch %s: %w", r.collection, err)
	}
	return live.Map(ctx, sub, func(items []T) []T { return filterSorted(items, query) }), nil
}

func (r *records[T]) Get(ctx context.Context, id string) (*T, error) {
	doc, err := r.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get %s %s: %w", r.collection, id, err)
	}
	return doc, nil
}

// Delete is best-effort: the removal is queued and the call returns at
// once. A repeated request for the same document is dropped while the
// first is still remembered.
func (r *records[T]) Delete(ctx context.Context, id string) {
	isDup, err := r.dedup.IsDuplicate(ctx, r.collection, id)
	if err != nil {
		metrics.WritesDedupTotal.WithLabelValues("error").Inc()
		r.log.Warn().Err(err).Str("collection", r.collection).Str("id", id).Msg("delete dedup check failed, deleting anyway")
	} else if isDup {
		metrics.WritesDedupTotal.WithLabelValues("hit").Inc()
		r.log.Debug().Str("collection", r.collection).Str("id", id).Msg("duplicate delete skipped")
		return
	} else {
		metrics.WritesDedupTotal.WithLabelValues("miss").Inc()
	}
	if err := r.dedup.Mark(ctx, r.collection, id); err != nil {
		r.log.Warn().Err(err).Str("collection", r.collection).Str("id", id).Msg("failed to set delete dedup key")
	}

	repo := r.repo
	r.writes.Submit(ports.WriteTask{
		Collection: r.collection,
		DocumentID: id,
		Op:         "delete",
		Run: func(ctx context.Context) error {
			err := repo.Delete(ctx, id)
			if errors.Is(err, domain.ErrNotFound) {
				return nil
			}
			return err
		},
	})
}

// update merges fields and reads the document back.
func (r *records[T]) update(ctx context.Context, id string, fields ports.Fields) (*T, error) {
	if len(fields) > 0 {
		if err := r.repo.Update(ctx, id, fields); err != nil {
			return nil, fmt.Errorf("update %s %s: %w", r.collection, id, err)
		}
	}
	return r.Get(ctx, id)
}

func setIf[V any](f ports.Fields, key string, v *V) {
	if v != nil {
		f[key] = *v
	}
}
