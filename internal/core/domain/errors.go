package domain

import "errors"

// Auth provider errors.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailInUse         = errors.New("email already in use")
	ErrWeakPassword       = errors.New("password must be at least 6 characters")
	ErrSessionNotFound    = errors.New("session not found")
	ErrSessionExpired     = errors.New("session expired")
)

// Authorization errors.
var (
	ErrUnauthenticated = errors.New("authentication required")
	ErrForbidden       = errors.New("access forbidden")
)

// Record errors.
var (
	ErrNotFound         = errors.New("record not found")
	ErrStaffExists      = errors.New("a staff member with this email already exists")
	ErrInvalidRole      = errors.New("invalid role")
	ErrInvalidStayDates = errors.New("check-out must be after check-in")
	ErrRoomNotFound     = errors.New("room not found")
)

// ErrAdvisorUnavailable is returned when the remote pricing advisor fails.
var ErrAdvisorUnavailable = errors.New("pricing advisor unavailable")
