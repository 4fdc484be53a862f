package ports

import "time"

// CachedResponse is the last good body served for a GET URL.
type CachedResponse struct {
	Status      int       `json:"status"`
	ContentType string    `json:"content_type"`
	Body        []byte    `json:"body"`
	StoredAt    time.Time `json:"stored_at"`
}
