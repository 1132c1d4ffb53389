package model

import (
	"strings"
	"time"
)

// DefaultExpiryDays is the expiry applied when the form leaves the field empty
const DefaultExpiryDays = 365

// FormInput represents a validated shortening request from the form
type FormInput struct {
	LongURL       string
	ExpiresInDays int
}

// ShortenedLink represents a short link returned by the shortening service
type ShortenedLink struct {
	ShortURL  string
	LongURL   string
	ExpiresAt string // expiration timestamp as returned by the service
}

// isoNoZoneLayout matches timestamps the service sends without a zone suffix
const isoNoZoneLayout = "2006-01-02T15:04:05"

// ExpiryTime parses ExpiresAt as an RFC 3339 timestamp. Timestamps without a
// zone suffix are accepted and read as UTC.
func (sl *ShortenedLink) ExpiryTime() (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, sl.ExpiresAt); err == nil {
		return t, nil
	}
	return time.Parse(isoNoZoneLayout, sl.ExpiresAt)
}

// ShortCode returns the trailing path segment of the short URL, or the full
// URL when it has no path
func (sl *ShortenedLink) ShortCode() string {
	trimmed := strings.TrimRight(sl.ShortURL, "/")

	parts := strings.FieldsFunc(trimmed, func(r rune) bool {
		return r == '/'
	})
	if len(parts) < 2 {
		return sl.ShortURL
	}

	code := parts[len(parts)-1]
	// A bare host like "https://sho.rt" splits into scheme and host only
	if strings.HasSuffix(parts[len(parts)-2], ":") && len(parts) == 2 {
		return sl.ShortURL
	}
	return code
}

// DisplayLongURL returns the long URL compacted for list rows
func (sl *ShortenedLink) DisplayLongURL(maxLen int) string {
	if maxLen <= 3 || len(sl.LongURL) <= maxLen {
		return sl.LongURL
	}
	return sl.LongURL[:maxLen-3] + "..."
}
