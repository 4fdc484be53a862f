package ports

import (
	"context"

	"github.com/casaluna/hotel-pms/internal/core/domain"
	"github.com/casaluna/hotel-pms/internal/core/live"
)

// StaffRepository adds the email and account lookups the role resolver and
// the staff screen need.
type StaffRepository interface {
	Repository[domain.StaffRecord]
	FindByEmail(ctx context.Context, email string) ([]domain.StaffRecord, error)
	FindByUserID(ctx context.Context, userID string) ([]domain.StaffRecord, error)
	WatchByEmail(ctx context.Context, email string) (*live.Subscription[[]domain.StaffRecord], error)
}

// CreateStaffInput is the add-staff form. Password is optional; when set
// the record is linked to an account.
type CreateStaffInput struct {
	Name     string
	Email    string
	Role     string
	Password string
}

// UpdateStaffInput is a partial edit; nil fields are left unchanged.
type UpdateStaffInput struct {
	Name  *string
	Email *string
	Role  *string
}
