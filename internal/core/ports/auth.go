package ports

import (
	"context"
	"time"

	"github.com/casaluna/hotel-pms/internal/core/domain"
)

// AuthRepository persists identities owned by the auth provider.
type AuthRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.Identity, error)
	FindByID(ctx context.Context, id string) (*domain.Identity, error)
	Create(ctx context.Context, identity *domain.Identity) (*domain.Identity, error)
	UpdateProfile(ctx context.Context, id, displayName, photoURL string) error
	UpdatePasswordHash(ctx context.Context, id, hash string) error
}

// SessionStore keeps server-side sessions behind issued tokens.
type SessionStore interface {
	Create(ctx context.Context, s *domain.Session, ttl time.Duration) error
	// Get returns domain.ErrSessionNotFound for unknown or revoked sessions.
	Get(ctx context.Context, id string) (*domain.Session, error)
	// Delete reports whether the session existed.
	Delete(ctx context.Context, id string) (bool, error)
}

// AuditRepository records the session audit trail.
type AuditRepository interface {
	Record(ctx context.Context, event *domain.SessionEvent) error
}

// SessionMonitor arms and clears the expiry timers of a session.
type SessionMonitor interface {
	Start(sessionID string)
	Stop(sessionID string)
}

// SignUpInput carries the fields of a new account.
type SignUpInput struct {
	Email       string
	Password    string
	DisplayName string
}

// SignInResult is returned by a successful sign-in.
type SignInResult struct {
	Token     string
	SessionID string
	ExpiresAt time.Time
	Identity  *domain.Identity
}

// AuthService is the auth provider.
type AuthService interface {
	SignUp(ctx context.Context, in SignUpInput) (*domain.Identity, error)
	SignIn(ctx context.Context, email, password string) (*SignInResult, error)
	SignOut(ctx context.Context, sessionID string) error
	ResolveSession(ctx context.Context, token string) (domain.SessionState, error)
	UpdateProfile(ctx context.Context, identityID, displayName, photoURL string) (*domain.Identity, error)
	UpdatePassword(ctx context.Context, identityID, currentPassword, newPassword string) error
}

// IdentityProvisioner returns the identity that owns email, creating it when
// none exists. An existing identity is only returned when password matches.
// created reports whether a new account was made.
type IdentityProvisioner interface {
	ProvisionIdentity(ctx context.Context, email, password, displayName string) (identity *domain.Identity, created bool, err error)
}
