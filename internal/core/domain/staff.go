package domain

import (
	"strings"
	"time"
)

// StaffRecord maps an email to a role. UserID links it to an Identity once
// the staff member has an account.
type StaffRecord struct {
	ID        string    `json:"id" bson:"_id"`
	UserID    string    `json:"user_id,omitempty" bson:"user_id,omitempty"`
	Name      string    `json:"name" bson:"name"`
	Email     string    `json:"email" bson:"email"`
	Role      Role      `json:"role" bson:"role"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

func (s StaffRecord) SearchFields() []string {
	return []string{s.Name, s.Email, string(s.Role)}
}

func (s StaffRecord) SortDate() time.Time { return s.CreatedAt }

// NormalizeEmail is the canonical form used for every email lookup.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
