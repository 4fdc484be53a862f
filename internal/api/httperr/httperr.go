// Package httperr maps errors to HTTP statuses, stable codes and localized
// messages.
package httperr

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"golang.org/x/text/language"

	"github.com/casaluna/hotel-pms/internal/core/access"
	"github.com/casaluna/hotel-pms/internal/core/domain"
)

// Code is the machine-readable error identifier sent to clients.
type Code string

const (
	CodeInvalidPayload     Code = "invalid_payload"
	CodeValidation         Code = "validation_failed"
	CodeInvalidCredentials Code = "invalid_credentials"
	CodeUserNotFound       Code = "user_not_found"
	CodeEmailInUse         Code = "email_in_use"
	CodeWeakPassword       Code = "weak_password"
	CodeUnauthenticated    Code = "unauthenticated"
	CodeSessionExpired     Code = "session_expired"
	CodeForbidden          Code = "forbidden"
	CodeNotFound           Code = "not_found"
	CodeStaffExists        Code = "staff_exists"
	CodeRoomNotFound       Code = "room_not_found"
	CodeAdvisorUnavailable Code = "advisor_unavailable"
	CodeInternal           Code = "internal"
	CodeHTTP               Code = "http_error"
)

// ValidationError carries a request validation failure.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// Redirected attaches the page a rejected caller should be sent to.
type Redirected struct {
	Err error
	To  string
}

func (e *Redirected) Error() string { return e.Err.Error() }

func (e *Redirected) Unwrap() error { return e.Err }

// Redirect wraps err so the error body carries to as its redirect.
func Redirect(err error, to string) error {
	return &Redirected{Err: err, To: to}
}

// Problem is the resolved form of an error.
type Problem struct {
	Status int
	Code   Code
	// Detail, when set, is sent verbatim instead of the catalog message.
	Detail string
	// Redirect tells the client where to navigate; set for every rejection
	// by the session or authorization gate.
	Redirect string
}

type entry struct {
	err    error
	status int
	code   Code
	detail bool
}

// table is ordered: the first matching sentinel wins.
var table = []entry{
	{domain.ErrInvalidCredentials, http.StatusUnauthorized, CodeInvalidCredentials, false},
	{domain.ErrUserNotFound, http.StatusNotFound, CodeUserNotFound, false},
	{domain.ErrEmailInUse, http.StatusConflict, CodeEmailInUse, false},
	{domain.ErrWeakPassword, http.StatusUnprocessableEntity, CodeWeakPassword, false},
	{domain.ErrUnauthenticated, http.StatusUnauthorized, CodeUnauthenticated, false},
	{domain.ErrSessionNotFound, http.StatusUnauthorized, CodeUnauthenticated, false},
	{domain.ErrSessionExpired, http.StatusUnauthorized, CodeSessionExpired, false},
	{domain.ErrForbidden, http.StatusUnauthorized, CodeForbidden, false},
	{domain.ErrRoomNotFound, http.StatusUnprocessableEntity, CodeRoomNotFound, false},
	{domain.ErrNotFound, http.StatusNotFound, CodeNotFound, false},
	{domain.ErrStaffExists, http.StatusConflict, CodeStaffExists, false},
	{domain.ErrInvalidRole, http.StatusUnprocessableEntity, CodeValidation, true},
	{domain.ErrInvalidStayDates, http.StatusUnprocessableEntity, CodeValidation, true},
	{domain.ErrInvalidRoomStatus, http.StatusUnprocessableEntity, CodeValidation, true},
	{domain.ErrInvalidReservationStatus, http.StatusUnprocessableEntity, CodeValidation, true},
	{domain.ErrAdvisorUnavailable, http.StatusBadGateway, CodeAdvisorUnavailable, false},
}

// Resolve classifies err. Unknown errors resolve to a 500 with ok=false so
// the caller can log them.
func Resolve(err error) (Problem, bool) {
	p, ok := resolve(err)
	var rd *Redirected
	if errors.As(err, &rd) && rd.To != "" {
		p.Redirect = rd.To
	}
	return p, ok
}

func resolve(err error) (p Problem, ok bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return Problem{Status: http.StatusUnprocessableEntity, Code: CodeValidation, Detail: ve.Msg}, true
	}

	var he *echo.HTTPError
	if errors.As(err, &he) {
		code := CodeHTTP
		if he.Code == http.StatusBadRequest {
			code = CodeInvalidPayload
		}
		return Problem{Status: he.Code, Code: code, Detail: fmt.Sprintf("%v", he.Message)}, true
	}

	for _, e := range table {
		if errors.Is(err, e.err) {
			p := Problem{Status: e.status, Code: e.code}
			if e.detail {
				p.Detail = err.Error()
			}
			if e.status == http.StatusUnauthorized && e.code != CodeInvalidCredentials {
				p.Redirect = access.LoginPath
			}
			return p, true
		}
	}
	return Problem{Status: http.StatusInternalServerError, Code: CodeInternal}, false
}

// Status is a shortcut for the HTTP status err resolves to.
func Status(err error) int {
	p, _ := Resolve(err)
	return p.Status
}

var matcher = language.NewMatcher([]language.Tag{language.English, language.French})

// Language picks the supported language for an Accept-Language header.
func Language(acceptLanguage string) language.Tag {
	tags, _, _ := language.ParseAcceptLanguage(acceptLanguage)
	_, idx, _ := matcher.Match(tags...)
	if idx == 1 {
		return language.French
	}
	return language.English
}

// Message returns the localized message for a problem.
func Message(p Problem, lang language.Tag) string {
	if p.Detail != "" {
		return p.Detail
	}
	if lang == language.French {
		if m, ok := french[p.Code]; ok {
			return m
		}
	}
	if m, ok := english[p.Code]; ok {
		return m
	}
	return http.StatusText(p.Status)
}
