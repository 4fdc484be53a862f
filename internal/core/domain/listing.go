package domain

import "time"

// Listable is implemented by every record shown in a searchable table.
type Listable interface {
	// SearchFields returns the values matched by free-text search.
	SearchFields() []string
	// SortDate is the key tables are ordered by, newest first.
	SortDate() time.Time
}
