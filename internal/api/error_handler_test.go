package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/casaluna/hotel-pms/internal/core/domain"
)

func runErrorHandler(t *testing.T, err error, lang string) (int, errorResponse) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/rooms", nil)
	if lang != "" {
		req.Header.Set(headerAcceptLanguage, lang)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(err, c)

	var body errorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	return rec.Code, body
}

func TestHTTPErrorHandler_GateRejectionCarriesRedirect(t *testing.T) {
	code, body := runErrorHandler(t, domain.ErrForbidden, "")
	if code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", code)
	}
	if body.Redirect != "/login" || body.Code != "forbidden" {
		t.Fatalf("unexpected body: %+v", body)
	}
}

func TestHTTPErrorHandler_LocalizesMessage(t *testing.T) {
	_, body := runErrorHandler(t, domain.ErrNotFound, "fr")
	if body.Error != "enregistrement introuvable" {
		t.Fatalf("expected French message, got %q", body.Error)
	}
}

func TestHTTPErrorHandler_HidesUnexpectedErrors(t *testing.T) {
	code, body := runErrorHandler(t, errors.New("mongo: connection reset"), "")
	if code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", code)
	}
	if body.Error != "internal server error" {
		t.Fatalf("internal details leaked: %q", body.Error)
	}
}
