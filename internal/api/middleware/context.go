package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/casaluna/hotel-pms/internal/core/domain"
)

// Context keys set by Session and Gate.
const (
	ContextSession = "session_state"
	ContextRole    = "role_state"
)

// SessionState returns the state injected by Session, or an empty state
// when the middleware did not run.
func SessionState(c echo.Context) domain.SessionState {
	s, _ := c.Get(ContextSession).(domain.SessionState)
	return s
}

// RoleState returns the state injected by Gate.
func RoleState(c echo.Context) domain.RoleState {
	r, _ := c.Get(ContextRole).(domain.RoleState)
	return r
}
