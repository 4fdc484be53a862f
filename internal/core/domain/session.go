package domain

import "time"

// Session is the server-side record behind an issued token.
type Session struct {
	ID         string    `json:"id"`
	IdentityID string    `json:"identity_id"`
	Email      string    `json:"email"`
	CreatedAt  time.Time `json:"created_at"`
}

// SessionState is the auth state of one caller. A nil Identity means no one
// is signed in.
type SessionState struct {
	SessionID string
	Identity  *Identity
	IsLoading bool
}

// RoleState is derived from SessionState by joining the identity's email
// against the staff collection. A nil Role means no staff record matched.
type RoleState struct {
	Role      *Role
	IsLoading bool
}

// SessionEventKind classifies entries in the session audit trail.
type SessionEventKind string

const (
	SessionSignedIn  SessionEventKind = "sign_in"
	SessionSignedOut SessionEventKind = "sign_out"
	SessionExpired   SessionEventKind = "expired"
	SessionRevoked   SessionEventKind = "revoked"
)

// SessionEvent is one entry of the session audit trail.
type SessionEvent struct {
	SessionID  string           `bson:"session_id"`
	IdentityID string           `bson:"identity_id,omitempty"`
	Email      string           `bson:"email,omitempty"`
	Kind       SessionEventKind `bson:"kind"`
	Reason     string           `bson:"reason,omitempty"`
	At         time.Time        `bson:"at"`
}
