package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/casaluna/hotel-pms/internal/core/domain"
	"github.com/casaluna/hotel-pms/internal/core/session"
)

// SessionMonitor is the idle and visibility tracking of live sessions.
type SessionMonitor interface {
	Activity(sessionID string, a session.Activity) bool
	Visibility(sessionID string, hidden bool) bool
}

// SessionHandler receives the client's activity and visibility signals.
type SessionHandler struct {
	monitor SessionMonitor
}

func NewSessionHandler(monitor SessionMonitor) *SessionHandler {
	return &SessionHandler{monitor: monitor}
}

type activityRequest struct {
	Kind string `json:"kind" validate:"required"`
}

type visibilityRequest struct {
	State string `json:"state" validate:"required,oneof=hidden visible"`
}

// Activity reports a client input event. Only pointer, key, click and
// scroll events rearm the idle timer; other kinds are accepted and ignored.
//
// @Summary      Report activity
// @Tags         session
// @Accept       json
// @Security     BearerAuth
// @Param        body  body  activityRequest  true  "Event kind"
// @Success      204
// @Failure      401   {object}  errorBody
// @Failure      422   {object}  errorBody
// @Router       /session/activity [post]
func (h *SessionHandler) Activity(c echo.Context) error {
	sess, err := currentSession(c)
	if err != nil {
		return err
	}
	var req activityRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	if !h.monitor.Activity(sess.SessionID, session.Activity(req.Kind)) {
		return domain.ErrSessionExpired
	}
	return c.NoContent(http.StatusNoContent)
}

// Visibility reports the client going to the background or coming back.
// Coming back after the hidden threshold ends the session.
//
// @Summary      Report visibility change
// @Tags         session
// @Accept       json
// @Security     BearerAuth
// @Param        body  body  visibilityRequest  true  "hidden or visible"
// @Success      204
// @Failure      401   {object}  errorBody
// @Failure      422   {object}  errorBody
// @Router       /session/visibility [post]
func (h *SessionHandler) Visibility(c echo.Context) error {
	sess, err := currentSession(c)
	if err != nil {
		return err
	}
	var req visibilityRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	// Adopts sessions issued before a restart.
	if !h.monitor.Activity(sess.SessionID, session.ActivityVisibility) {
		return domain.ErrSessionExpired
	}
	if !h.monitor.Visibility(sess.SessionID, req.State == "hidden") {
		return domain.ErrSessionExpired
	}
	return c.NoContent(http.StatusNoContent)
}
