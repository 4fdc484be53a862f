package domain

import (
	"fmt"
	"strings"
)

// Role is the closed set of staff roles.
type Role string

const (
	RoleAdmin        Role = "Admin"
	RoleReception    Role = "Reception"
	RoleHousekeeping Role = "Housekeeping"
)

// roleLabels maps every accepted label, English and the legacy French set,
// to its canonical role.
var roleLabels = map[string]Role{
	"admin":            RoleAdmin,
	"administrator":    RoleAdmin,
	"administrateur":   RoleAdmin,
	"reception":        RoleReception,
	"réception":        RoleReception,
	"receptionist":     RoleReception,
	"réceptionniste":   RoleReception,
	"receptionniste":   RoleReception,
	"housekeeping":     RoleHousekeeping,
	"ménage":           RoleHousekeeping,
	"menage":           RoleHousekeeping,
	"femme de chambre": RoleHousekeeping,
	"entretien":        RoleHousekeeping,
}

// Roles returns all roles in display order.
func Roles() []Role {
	return []Role{RoleAdmin, RoleReception, RoleHousekeeping}
}

// ParseRole resolves a role label case-insensitively.
func ParseRole(label string) (Role, error) {
	if r, ok := roleLabels[strings.ToLower(strings.TrimSpace(label))]; ok {
		return r, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidRole, label)
}

// Valid reports whether r is one of the canonical roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleReception, RoleHousekeeping:
		return true
	}
	return false
}
