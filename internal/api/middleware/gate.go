package middleware

import (
	"context"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/casaluna/hotel-pms/internal/api/httperr"
	"github.com/casaluna/hotel-pms/internal/api/metrics"
	"github.com/casaluna/hotel-pms/internal/core/access"
	"github.com/casaluna/hotel-pms/internal/core/domain"
)

// RoleResolver resolves the staff role of an identity.
type RoleResolver interface {
	Resolve(ctx context.Context, identity *domain.Identity) (domain.RoleState, error)
}

// SessionRevoker ends a session the gate rejected.
type SessionRevoker interface {
	Revoke(ctx context.Context, sessionID, reason string) error
}

// RevokeReasonUnauthorized is recorded when a signed-in identity has no
// role allowed on the route.
const RevokeReasonUnauthorized = "unauthorized"

// Gate protects a route with the role allow-list. It must run after
// Session. A caller without a permitted role is signed out before the
// rejection is returned.
func Gate(route access.Route, roles RoleResolver, revoker SessionRevoker, log zerolog.Logger) echo.MiddlewareFunc {
	allowed := access.AllowedRoles(route)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Request().Context()
			sess := SessionState(c)

			role, err := roles.Resolve(ctx, sess.Identity)
			if err != nil {
				return err
			}

			gate := access.NewGate(func() {
				if err := revoker.Revoke(context.WithoutCancel(ctx), sess.SessionID, RevokeReasonUnauthorized); err != nil {
					log.Error().Err(err).Str("session_id", sess.SessionID).Msg("failed to revoke unauthorized session")
				}
			})
			outcome := gate.Observe(sess, role, allowed)
			metrics.GateDecisionsTotal.WithLabelValues(string(route), outcome.State.String()).Inc()

			switch outcome.State {
			case access.StateAuthorized:
				c.Set(ContextRole, role)
				return next(c)
			case access.StateUnauthorized:
				log.Warn().
					Str("route", string(route)).
					Str("session_id", sess.SessionID).
					Msg("caller has no role allowed on route, signed out")
				return httperr.Redirect(domain.ErrForbidden, outcome.Redirect)
			case access.StateNoUser:
				return httperr.Redirect(domain.ErrUnauthenticated, outcome.Redirect)
			default:
				return domain.ErrUnauthenticated
			}
		}
	}
}
