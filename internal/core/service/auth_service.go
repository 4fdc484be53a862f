package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/casaluna/hotel-pms/internal/api/metrics"
	"github.com/casaluna/hotel-pms/internal/core/domain"
	"github.com/casaluna/hotel-pms/internal/core/ports"
)

const bootstrapAdminName = "Administrator"

// AuthOptions configures token issuing and the admin bootstrap.
type AuthOptions struct {
	JWTSecret string
	TokenTTL  time.Duration
	// BootstrapAdminEmail may create itself as the first Admin when its
	// sign-in fails. Empty disables the flow.
	BootstrapAdminEmail string
}

// AuthService is the local auth provider: accounts, sessions and tokens.
type AuthService struct {
	repo     ports.AuthRepository
	sessions ports.SessionStore
	monitor  ports.SessionMonitor
	audit    ports.AuditRepository
	staff    ports.StaffRepository
	opts     AuthOptions
	log      zerolog.Logger
	now      func() time.Time
}

func NewAuthService(
	repo ports.AuthRepository,
	sessions ports.SessionStore,
	monitor ports.SessionMonitor,
	audit ports.AuditRepository,
	staff ports.StaffRepository,
	opts AuthOptions,
	log zerolog.Logger,
) *AuthService {
	if opts.TokenTTL <= 0 {
		opts.TokenTTL = 12 * time.Hour
	}
	opts.BootstrapAdminEmail = domain.NormalizeEmail(opts.BootstrapAdminEmail)
	return &AuthService{
		repo:     repo,
		sessions: sessions,
		monitor:  monitor,
		audit:    audit,
		staff:    staff,
		opts:     opts,
		log:      log,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (s *AuthService) SignUp(ctx context.Context, in ports.SignUpInput) (*domain.Identity, error) {
	email := domain.NormalizeEmail(in.Email)
	if email == "" || in.Password == "" {
		return nil, domain.ErrInvalidCredentials
	}
	if len(in.Password) < domain.MinPasswordLength {
		return nil, domain.ErrWeakPassword
	}

	if _, err := s.repo.FindByEmail(ctx, email); err == nil {
		return nil, domain.ErrEmailInUse
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, fmt.Errorf("sign up: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("sign up: hash password: %w", err)
	}

	now := s.now()
	created, err := s.repo.Create(ctx, &domain.Identity{
		Email:        email,
		DisplayName:  strings.TrimSpace(in.DisplayName),
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("identity_id", created.ID).Str("email", email).Msg("account created")
	return created, nil
}

// SignIn authenticates and opens a monitored session. When the bootstrap
// admin email fails to sign in, sign-up is attempted with the same
// credentials: an "email in use" answer proves the password was wrong,
// success creates the first Admin.
func (s *AuthService) SignIn(ctx context.Context, email, password string) (*ports.SignInResult, error) {
	email = domain.NormalizeEmail(email)
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	identity, err := s.authenticate(ctx, email, password)
	switch {
	case err != nil && s.isBootstrapAdmin(email) &&
		(errors.Is(err, domain.ErrUserNotFound) || errors.Is(err, domain.ErrInvalidCredentials)):
		identity, err = s.bootstrapAdmin(ctx, email, password)
	case err == nil && s.isBootstrapAdmin(email):
		err = s.ensureAdminRecord(ctx, identity)
	}
	if err != nil {
		metrics.SignInsTotal.WithLabelValues(signInResult(err)).Inc()
		return nil, err
	}

	res, err := s.openSession(ctx, identity)
	if err != nil {
		metrics.SignInsTotal.WithLabelValues("error").Inc()
		return nil, err
	}
	metrics.SignInsTotal.WithLabelValues("success").Inc()
	return res, nil
}

// ProvisionIdentity links to the account owning email when password proves
// ownership, and creates the account when none exists.
func (s *AuthService) ProvisionIdentity(ctx context.Context, email, password, displayName string) (*domain.Identity, bool, error) {
	email = domain.NormalizeEmail(email)
	existing, err := s.repo.FindByEmail(ctx, email)
	switch {
	case err == nil:
		if bcrypt.CompareHashAndPassword([]byte(existing.PasswordHash), []byte(password)) != nil {
			return nil, false, domain.ErrInvalidCredentials
		}
		return existing, false, nil
	case errors.Is(err, domain.ErrUserNotFound):
		created, err := s.SignUp(ctx, ports.SignUpInput{Email: email, Password: password, DisplayName: displayName})
		if err != nil {
			return nil, false, err
		}
		return created, true, nil
	default:
		return nil, false, fmt.Errorf("provision identity: %w", err)
	}
}

// SignOut ends a session at the user's request. Unknown sessions are a
// no-op.
func (s *AuthService) SignOut(ctx context.Context, sessionID string) error {
	return s.endSession(ctx, sessionID, domain.SessionSignedOut, "")
}

// Expire ends a session whose idle or backgrounding timer fired.
func (s *AuthService) Expire(ctx context.Context, sessionID, reason string) error {
	return s.endSession(ctx, sessionID, domain.SessionExpired, reason)
}

// Revoke ends a session the authorization gate rejected.
func (s *AuthService) Revoke(ctx context.Context, sessionID, reason string) error {
	return s.endSession(ctx, sessionID, domain.SessionRevoked, reason)
}

// ResolveSession maps a bearer token to the caller's auth state. Invalid
// tokens, revoked sessions and deleted accounts are reported with
// domain.ErrUnauthenticated, domain.ErrSessionNotFound and
// domain.ErrUserNotFound respectively.
func (s *AuthService) ResolveSession(ctx context.Context, token string) (domain.SessionState, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(s.opts.JWTSecret), nil
	})
	if err != nil || !tkn.Valid {
		return domain.SessionState{}, domain.ErrUnauthenticated
	}

	sid, _ := claims["sid"].(string)
	sub, _ := claims["sub"].(string)
	if sid == "" || sub == "" {
		return domain.SessionState{}, domain.ErrUnauthenticated
	}

	sess, err := s.sessions.Get(ctx, sid)
	if err != nil {
		return domain.SessionState{}, err
	}
	if sess.IdentityID != sub {
		return domain.SessionState{}, domain.ErrSessionNotFound
	}

	identity, err := s.repo.FindByID(ctx, sess.IdentityID)
	if err != nil {
		return domain.SessionState{}, err
	}
	return domain.SessionState{SessionID: sid, Identity: identity}, nil
}

func (s *AuthService) UpdateProfile(ctx context.Context, identityID, displayName, photoURL string) (*domain.Identity, error) {
	if err := s.repo.UpdateProfile(ctx, identityID, strings.TrimSpace(displayName), strings.TrimSpace(photoURL)); err != nil {
		return nil, fmt.Errorf("update profile: %w", err)
	}
	return s.repo.FindByID(ctx, identityID)
}

// UpdatePassword re-authenticates with the current password first.
func (s *AuthService) UpdatePassword(ctx context.Context, identityID, currentPassword, newPassword string) error {
	identity, err := s.repo.FindByID(ctx, identityID)
	if err != nil {
		return err
	}
	if bcrypt.CompareHashAndPassword([]byte(identity.PasswordHash), []byte(currentPassword)) != nil {
		return domain.ErrInvalidCredentials
	}
	if len(newPassword) < domain.MinPasswordLength {
		return domain.ErrWeakPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("update password: hash: %w", err)
	}
	if err := s.repo.UpdatePasswordHash(ctx, identityID, string(hash)); err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	s.log.Info().Str("identity_id", identityID).Msg("password updated")
	return nil
}

func (s *AuthService) authenticate(ctx context.Context, email, password string) (*domain.Identity, error) {
	identity, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(identity.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}
	return identity, nil
}

func (s *AuthService) isBootstrapAdmin(email string) bool {
	return s.opts.BootstrapAdminEmail != "" && email == s.opts.BootstrapAdminEmail
}

func (s *AuthService) bootstrapAdmin(ctx context.Context, email, password string) (*domain.Identity, error) {
	created, err := s.SignUp(ctx, ports.SignUpInput{Email: email, Password: password, DisplayName: bootstrapAdminName})
	if errors.Is(err, domain.ErrEmailInUse) {
		return nil, domain.ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("bootstrap admin: %w", err)
	}

	s.log.Warn().Str("email", email).Str("identity_id", created.ID).Msg("bootstrap admin account created")
	if err := s.createAdminRecord(ctx, created); err != nil {
		return nil, err
	}
	return created, nil
}

// ensureAdminRecord repairs a bootstrap account whose Admin record was never
// written, e.g. because the staff write failed after sign-up.
func (s *AuthService) ensureAdminRecord(ctx context.Context, identity *domain.Identity) error {
	records, err := s.staff.FindByEmail(ctx, identity.Email)
	if err != nil {
		return fmt.Errorf("bootstrap admin: find staff record: %w", err)
	}
	if len(records) > 0 {
		return nil
	}
	return s.createAdminRecord(ctx, identity)
}

func (s *AuthService) createAdminRecord(ctx context.Context, identity *domain.Identity) error {
	rec := &domain.StaffRecord{
		ID:        newID(),
		UserID:    identity.ID,
		Name:      bootstrapAdminName,
		Email:     identity.Email,
		Role:      domain.RoleAdmin,
		CreatedAt: s.now(),
	}
	if err := s.staff.Create(ctx, rec); err != nil {
		return fmt.Errorf("bootstrap admin: staff record: %w", err)
	}
	s.log.Warn().Str("email", identity.Email).Str("identity_id", identity.ID).Msg("bootstrap admin staff record created")
	return nil
}

func (s *AuthService) openSession(ctx context.Context, identity *domain.Identity) (*ports.SignInResult, error) {
	now := s.now()
	sess := &domain.Session{
		ID:         newID(),
		IdentityID: identity.ID,
		Email:      identity.Email,
		CreatedAt:  now,
	}
	if err := s.sessions.Create(ctx, sess, s.opts.TokenTTL); err != nil {
		return nil, fmt.Errorf("open session: %w", err)
	}

	expiresAt := now.Add(s.opts.TokenTTL)
	token, err := s.generateToken(identity, sess.ID, now, expiresAt)
	if err != nil {
		return nil, fmt.Errorf("open session: sign token: %w", err)
	}

	s.monitor.Start(sess.ID)
	s.record(ctx, &domain.SessionEvent{
		SessionID:  sess.ID,
		IdentityID: identity.ID,
		Email:      identity.Email,
		Kind:       domain.SessionSignedIn,
		At:         now,
	})
	s.log.Info().Str("identity_id", identity.ID).Str("session_id", sess.ID).Msg("signed in")

	return &ports.SignInResult{Token: token, SessionID: sess.ID, ExpiresAt: expiresAt, Identity: identity}, nil
}

func (s *AuthService) endSession(ctx context.Context, sessionID string, kind domain.SessionEventKind, reason string) error {
	s.monitor.Stop(sessionID)

	sess, err := s.sessions.Get(ctx, sessionID)
	if errors.Is(err, domain.ErrSessionNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("end session: %w", err)
	}
	existed, err := s.sessions.Delete(ctx, sessionID)
	if err != nil {
		return fmt.Errorf("end session: %w", err)
	}
	if !existed {
		return nil
	}

	s.record(ctx, &domain.SessionEvent{
		SessionID:  sessionID,
		IdentityID: sess.IdentityID,
		Email:      sess.Email,
		Kind:       kind,
		Reason:     reason,
		At:         s.now(),
	})
	metrics.SessionsEndedTotal.WithLabelValues(string(kind), reason).Inc()
	s.log.Info().
		Str("session_id", sessionID).
		Str("identity_id", sess.IdentityID).
		Str("kind", string(kind)).
		Str("reason", reason).
		Msg("session ended")
	return nil
}

// record writes to the audit trail; failures are logged, never returned.
func (s *AuthService) record(ctx context.Context, ev *domain.SessionEvent) {
	if err := s.audit.Record(ctx, ev); err != nil {
		s.log.Warn().Err(err).Str("session_id", ev.SessionID).Str("kind", string(ev.Kind)).Msg("failed to record session event")
	}
}

func (s *AuthService) generateToken(identity *domain.Identity, sessionID string, issuedAt, expiresAt time.Time) (string, error) {
	claims := jwt.MapClaims{
		"sub":   identity.ID,
		"email": identity.Email,
		"sid":   sessionID,
		"iat":   issuedAt.Unix(),
		"exp":   expiresAt.Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.opts.JWTSecret))
}

func signInResult(err error) string {
	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		return "invalid_credentials"
	case errors.Is(err, domain.ErrUserNotFound):
		return "user_not_found"
	default:
		return "error"
	}
}
