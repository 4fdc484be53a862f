package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/casaluna/hotel-pms/internal/api/middleware"
	"github.com/casaluna/hotel-pms/internal/core/domain"
)

// currentSession returns the session injected by the Session middleware and
// fails fast when no identity is attached, which means the middleware did
// not run for this route.
func currentSession(c echo.Context) (domain.SessionState, error) {
	s := middleware.SessionState(c)
	if s.Identity == nil || s.SessionID == "" {
		return domain.SessionState{}, domain.ErrUnauthenticated
	}
	return s, nil
}

// bind decodes the request body and validates it.
func bind(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	return c.Validate(req)
}
