package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/casaluna/hotel-pms/internal/core/domain"
	"github.com/casaluna/hotel-pms/internal/core/live"
	"github.com/casaluna/hotel-pms/internal/core/ports"
)

// RoleResolver derives the caller's role from the staff collection.
type RoleResolver struct {
	staff ports.StaffRepository
	log   zerolog.Logger
}

func NewRoleResolver(staff ports.StaffRepository, log zerolog.Logger) *RoleResolver {
	return &RoleResolver{staff: staff, log: log}
}

// Resolve looks up the staff record matching the identity's email. A nil
// identity resolves to an empty state without querying. No match is not an
// error: the state simply carries no role.
func (r *RoleResolver) Resolve(ctx context.Context, identity *domain.Identity) (domain.RoleState, error) {
	if identity == nil {
		return domain.RoleState{}, nil
	}
	records, err := r.staff.FindByEmail(ctx, domain.NormalizeEmail(identity.Email))
	if err != nil {
		return domain.RoleState{}, fmt.Errorf("resolve role: %w", err)
	}
	return r.roleState(identity, records), nil
}

// Watch pushes a loading state first, then a new RoleState every time the
// matching staff records change.
func (r *RoleResolver) Watch(ctx context.Context, identity *domain.Identity) (*live.Subscription[domain.RoleState], error) {
	if identity == nil {
		return live.Static(ctx, domain.RoleState{}), nil
	}
	src, err := r.staff.WatchByEmail(ctx, domain.NormalizeEmail(identity.Email))
	if err != nil {
		return nil, fmt.Errorf("watch role: %w", err)
	}
	return live.Start(ctx, func(ctx context.Context, out chan<- domain.RoleState) {
		defer src.Unsubscribe()
		if !live.Send(ctx, out, domain.RoleState{IsLoading: true}) {
			return
		}
		for {
			select {
			case <-ctx.Done():
				return
			case records, ok := <-src.C:
				if !ok {
					return
				}
				if !live.Send(ctx, out, r.roleState(identity, records)) {
					return
				}
			}
		}
	}), nil
}

func (r *RoleResolver) roleState(identity *domain.Identity, records []domain.StaffRecord) domain.RoleState {
	if len(records) == 0 {
		return domain.RoleState{}
	}
	if len(records) > 1 {
		r.log.Warn().
			Str("identity_id", identity.ID).
			Str("email", identity.Email).
			Int("matches", len(records)).
			Msg("several staff records share this email, using the first")
	}

	rec := records[0]
	role := rec.Role
	if !role.Valid() {
		parsed, err := domain.ParseRole(string(rec.Role))
		if err != nil {
			r.log.Warn().Str("staff_id", rec.ID).Str("role", string(rec.Role)).Msg("staff record has an unknown role")
			return domain.RoleState{}
		}
		role = parsed
	}
	return domain.RoleState{Role: &role}
}
