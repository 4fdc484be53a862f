package ports

import (
	"context"

	"github.com/casaluna/hotel-pms/internal/core/live"
)

// Fields is a partial update merged into a stored document.
type Fields map[string]any

// Repository is the live collection API shared by every table-backed
// record type.
type Repository[T any] interface {
	List(ctx context.Context) ([]T, error)
	// Get returns domain.ErrNotFound when no document has the id.
	Get(ctx context.Context, id string) (*T, error)
	Create(ctx context.Context, doc *T) error
	// Update merges fields into the document; domain.ErrNotFound when absent.
	Update(ctx context.Context, id string, fields Fields) error
	Delete(ctx context.Context, id string) error
	// Watch pushes the whole collection every time it changes.
	Watch(ctx context.Context) (*live.Subscription[[]T], error)
}
