package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/casaluna/hotel-pms/internal/api/metrics"
	"github.com/casaluna/hotel-pms/internal/core/domain"
	"github.com/casaluna/hotel-pms/internal/core/ports"
)

const staffCollection = "staff"

// StaffService backs the staff screen.
type StaffService struct {
	*records[domain.StaffRecord]
	staff       ports.StaffRepository
	provisioner ports.IdentityProvisioner
	now         func() time.Time
}

func NewStaffService(
	staff ports.StaffRepository,
	provisioner ports.IdentityProvisioner,
	writes ports.WriteQueue,
	dedup DeleteDedup,
	log zerolog.Logger,
) *StaffService {
	return &StaffService{
		records: &records[domain.StaffRecord]{
			collection: staffCollection,
			repo:       staff,
			writes:     writes,
			dedup:      dedup,
			log:        log,
		},
		staff:       staff,
		provisioner: provisioner,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// Create adds a staff member. With a password the record is linked to an
// account: an existing unlinked account is adopted when the password
// matches, otherwise a new account is created. Nothing is written when the
// password is wrong or the email is already on the roster.
func (s *StaffService) Create(ctx context.Context, in ports.CreateStaffInput) (*domain.StaffRecord, error) {
	role, err := domain.ParseRole(in.Role)
	if err != nil {
		return nil, err
	}
	email := domain.NormalizeEmail(in.Email)

	existing, err := s.staff.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("create staff: %w", err)
	}
	if len(existing) > 0 {
		return nil, domain.ErrStaffExists
	}

	rec := &domain.StaffRecord{
		ID:        newID(),
		Name:      strings.TrimSpace(in.Name),
		Email:     email,
		Role:      role,
		CreatedAt: s.now(),
	}

	outcome := "unlinked"
	if in.Password != "" {
		identity, created, err := s.provisioner.ProvisionIdentity(ctx, email, in.Password, rec.Name)
		if err != nil {
			return nil, err
		}
		linked, err := s.staff.FindByUserID(ctx, identity.ID)
		if err != nil {
			return nil, fmt.Errorf("create staff: %w", err)
		}
		if len(linked) > 0 {
			return nil, domain.ErrStaffExists
		}
		rec.UserID = identity.ID
		outcome = "linked"
		if created {
			outcome = "created"
		}
	}

	if err := s.staff.Create(ctx, rec); err != nil {
		return nil, fmt.Errorf("create staff: %w", err)
	}
	metrics.StaffLinksTotal.WithLabelValues(outcome).Inc()
	s.log.Info().Str("staff_id", rec.ID).Str("email", email).Str("role", string(role)).Str("outcome", outcome).Msg("staff member added")
	return rec, nil
}

func (s *StaffService) Update(ctx context.Context, id string, in ports.UpdateStaffInput) (*domain.StaffRecord, error) {
	fields := ports.Fields{}
	if in.Name != nil {
		fields["name"] = strings.TrimSpace(*in.Name)
	}
	if in.Email != nil {
		fields["email"] = domain.NormalizeEmail(*in.Email)
	}
	if in.Role != nil {
		role, err := domain.ParseRole(*in.Role)
		if err != nil {
			return nil, err
		}
		fields["role"] = role
	}
	return s.update(ctx, id, fields)
}
