package handler

import (
	"io"
	"net/http/httptest"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/casaluna/hotel-pms/internal/api/middleware"
	"github.com/casaluna/hotel-pms/internal/core/domain"
)

func newContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()

	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func signIn(c echo.Context, identityID string) {
	c.Set(middleware.ContextSession, domain.SessionState{
		SessionID: "sid-1",
		Identity:  &domain.Identity{ID: identityID, Email: identityID + "@hotel.test"},
	})
}
