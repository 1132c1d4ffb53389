package model

import (
	"time"
)

// HistoryEntry represents one shortened link kept in the local history
type HistoryEntry struct {
	ID        string    `json:"id"`
	ShortURL  string    `json:"short_url"`
	LongURL   string    `json:"long_url"`
	ExpiresAt string    `json:"expires_at,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// NewHistoryEntry creates a history entry for a shortened link.
// The ID is assigned by the history store on Add.
func NewHistoryEntry(link ShortenedLink) *HistoryEntry {
	return &HistoryEntry{
		ShortURL:  link.ShortURL,
		LongURL:   link.LongURL,
		ExpiresAt: link.ExpiresAt,
		CreatedAt: time.Now(),
	}
}

// Link returns the entry as a ShortenedLink for display helpers
func (he *HistoryEntry) Link() ShortenedLink {
	return ShortenedLink{
		ShortURL:  he.ShortURL,
		LongURL:   he.LongURL,
		ExpiresAt: he.ExpiresAt,
	}
}
