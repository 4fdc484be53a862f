package api

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/casaluna/hotel-pms/internal/api/httperr"
)

// headerAcceptLanguage picks the language of error messages.
const headerAcceptLanguage = "Accept-Language"

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Error    string `json:"error"`
	Code     string `json:"code"`
	Redirect string `json:"redirect,omitempty"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their HTTP status and a stable code.
//   - Localizes the message from the Accept-Language header.
//   - Logs unexpected errors internally without leaking details to the client.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		p, known := httperr.Resolve(err)
		if !known {
			log.Error().
				Err(err).
				Str("method", c.Request().Method).
				Str("path", c.Path()).
				Msg("unhandled error")
		}

		lang := httperr.Language(c.Request().Header.Get(headerAcceptLanguage))
		body := errorResponse{
			Error:    httperr.Message(p, lang),
			Code:     string(p.Code),
			Redirect: p.Redirect,
		}
		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(p.Status)
			return
		}
		_ = c.JSON(p.Status, body)
	}
}
