package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/casaluna/hotel-pms/internal/core/domain"
	"github.com/casaluna/hotel-pms/internal/core/session"
)

// SessionResolver maps a bearer token to the caller's session.
type SessionResolver interface {
	ResolveSession(ctx context.Context, token string) (domain.SessionState, error)
}

// ActivityRecorder rearms the idle timer of a session. It reports false
// once the session has expired.
type ActivityRecorder interface {
	Activity(sessionID string, a session.Activity) bool
}

// Session validates the bearer token against the session store, injects the
// SessionState into the context and counts the request as activity. A nil
// activity recorder leaves the idle timer alone.
func Session(resolver SessionResolver, activity ActivityRecorder) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, err := bearerToken(c.Request())
			if err != nil {
				return err
			}

			state, err := resolver.ResolveSession(c.Request().Context(), token)
			switch {
			case errors.Is(err, domain.ErrUnauthenticated),
				errors.Is(err, domain.ErrSessionNotFound),
				errors.Is(err, domain.ErrUserNotFound):
				return domain.ErrUnauthenticated
			case err != nil:
				return err
			}

			if activity != nil && !activity.Activity(state.SessionID, session.ActivityRequest) {
				return domain.ErrSessionExpired
			}

			c.Set(ContextSession, state)
			return next(c)
		}
	}
}

// bearerToken reads the Authorization header. EventSource clients cannot
// set headers, so an access_token query parameter is accepted on GET.
func bearerToken(r *http.Request) (string, error) {
	authHeader := r.Header.Get(echo.HeaderAuthorization)
	if authHeader == "" {
		if t := r.URL.Query().Get("access_token"); t != "" && r.Method == http.MethodGet {
			return t, nil
		}
		return "", domain.ErrUnauthenticated
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || parts[1] == "" {
		return "", domain.ErrUnauthenticated
	}
	return parts[1], nil
}
