package middleware

import (
	"context"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/casaluna/hotel-pms/internal/api/metrics"
	"github.com/casaluna/hotel-pms/internal/core/access"
	"github.com/casaluna/hotel-pms/internal/core/domain"
	"github.com/casaluna/hotel-pms/internal/core/live"
)

// RoleWatcher follows the staff role of an identity as the staff
// collection changes.
type RoleWatcher interface {
	Watch(ctx context.Context, identity *domain.Identity) (*live.Subscription[domain.RoleState], error)
}

// SessionWatcher reports when a session ends.
type SessionWatcher interface {
	Done(sessionID string) <-chan struct{}
}

// LiveAccess keeps the gate applied for as long as a long-lived response
// runs. The request context is cancelled when the session ends or a role
// change takes the route away; a caller left without a permitted role is
// signed out as Gate would do. It must run after Gate.
func LiveAccess(route access.Route, roles RoleWatcher, sessions SessionWatcher, revoker SessionRevoker, log zerolog.Logger) echo.MiddlewareFunc {
	allowed := access.AllowedRoles(route)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sess := SessionState(c)
			ctx, cancel := context.WithCancel(c.Request().Context())
			defer cancel()

			sub, err := roles.Watch(ctx, sess.Identity)
			if err != nil {
				return err
			}
			defer sub.Unsubscribe()

			ended := sessions.Done(sess.SessionID)
			gate := access.NewGate(func() {
				if err := revoker.Revoke(context.WithoutCancel(ctx), sess.SessionID, RevokeReasonUnauthorized); err != nil {
					log.Error().Err(err).Str("session_id", sess.SessionID).Msg("failed to revoke unauthorized session")
				}
			})

			go func() {
				for {
					select {
					case <-ctx.Done():
						return
					case <-ended:
						log.Info().Str("route", string(route)).Str("session_id", sess.SessionID).Msg("session ended, closing live response")
						cancel()
						return
					case role, ok := <-sub.C:
						if !ok {
							return
						}
						outcome := gate.Observe(sess, role, allowed)
						if outcome.State == access.StateUnauthorized || outcome.State == access.StateNoUser {
							metrics.GateDecisionsTotal.WithLabelValues(string(route), outcome.State.String()).Inc()
							log.Warn().Str("route", string(route)).Str("session_id", sess.SessionID).Msg("role no longer allowed, closing live response")
							cancel()
							return
						}
					}
				}
			}()

			c.SetRequest(c.Request().WithContext(ctx))
			return next(c)
		}
	}
}
