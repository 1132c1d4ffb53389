package model

import (
	"testing"
	"time"
)

func TestShortenedLink_ExpiryTime(t *testing.T) {
	tests := []struct {
		expiresAt string
		wantErr   bool
		expected  time.Time
	}{
		{"2025-07-01T00:00:00Z", false, time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)},
		{"2025-07-01T00:00:00+00:00", false, time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)},
		{"2025-12-31T23:59:59.123456+00:00", false, time.Date(2025, 12, 31, 23, 59, 59, 123456000, time.UTC)},
		// No zone suffix is read as UTC
		{"2025-07-01T00:00:00", false, time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)},
		{"2025-07-01T12:30:45.123456", false, time.Date(2025, 7, 1, 12, 30, 45, 123456000, time.UTC)},
		{"", true, time.Time{}},
		{"not-a-timestamp", true, time.Time{}},
		{"2025-07-01", true, time.Time{}},
	}

	for _, test := range tests {
		link := &ShortenedLink{ExpiresAt: test.expiresAt}
		result, err := link.ExpiryTime()
		if test.wantErr {
			if err == nil {
				t.Errorf("ExpiryTime() with ExpiresAt=%q expected error, got %v", test.expiresAt, result)
			}
			continue
		}
		if err != nil {
			t.Errorf("ExpiryTime() with ExpiresAt=%q unexpected error: %v", test.expiresAt, err)
			continue
		}
		if !result.Equal(test.expected) {
			t.Errorf("ExpiryTime() with ExpiresAt=%q = %v, expected %v", test.expiresAt, result, test.expected)
		}
	}
}

func TestShortenedLink_ShortCode(t *testing.T) {
	tests := []struct {
		shortURL string
		expected string
	}{
		{"http://localhost:5000/Ab3dE9xZ", "Ab3dE9xZ"},
		{"https://sho.rt/abc123", "abc123"},
		{"https://sho.rt/abc123/", "abc123"},
		{"https://sho.rt", "https://sho.rt"},
		{"", ""},
	}

	for _, test := range tests {
		link := &ShortenedLink{ShortURL: test.shortURL}
		result := link.ShortCode()
		if result != test.expected {
			t.Errorf("ShortCode() with ShortURL=%q = %q, expected %q", test.shortURL, result, test.expected)
		}
	}
}

func TestShortenedLink_DisplayLongURL(t *testing.T) {
	tests := []struct {
		longURL  string
		maxLen   int
		expected string
	}{
		{"https://example.com", 40, "https://example.com"},
		{"https://example.com/some/very/long/path/with/segments", 24, "https://example.com/s..."},
		{"https://example.com", 0, "https://example.com"},
	}

	for _, test := range tests {
		link := &ShortenedLink{LongURL: test.longURL}
		result := link.DisplayLongURL(test.maxLen)
		if result != test.expected {
			t.Errorf("DisplayLongURL(%d) with LongURL=%q = %q, expected %q", test.maxLen, test.longURL, result, test.expected)
		}
	}
}

func TestHistoryEntry_Link(t *testing.T) {
	entry := &HistoryEntry{
		ID:        "entry-1",
		ShortURL:  "http://localhost:5000/Ab3dE9xZ",
		LongURL:   "https://example.com/page",
		ExpiresAt: "2025-07-01T00:00:00Z",
		CreatedAt: time.Now(),
	}

	link := entry.Link()
	if link.ShortURL != entry.ShortURL {
		t.Errorf("Link().ShortURL = %q, expected %q", link.ShortURL, entry.ShortURL)
	}
	if link.LongURL != entry.LongURL {
		t.Errorf("Link().LongURL = %q, expected %q", link.LongURL, entry.LongURL)
	}
	if link.ExpiresAt != entry.ExpiresAt {
		t.Errorf("Link().ExpiresAt = %q, expected %q", link.ExpiresAt, entry.ExpiresAt)
	}
}

func TestNewHistoryEntry(t *testing.T) {
	link := ShortenedLink{
		ShortURL:  "http://localhost:5000/Ab3dE9xZ",
		LongURL:   "https://example.com/page",
		ExpiresAt: "2025-07-01T00:00:00Z",
	}

	entry := NewHistoryEntry(link)
	if entry.ID != "" {
		t.Errorf("NewHistoryEntry() ID = %q, expected empty (assigned by store)", entry.ID)
	}
	if entry.ShortURL != link.ShortURL {
		t.Errorf("NewHistoryEntry() ShortURL = %q, expected %q", entry.ShortURL, link.ShortURL)
	}
	if entry.CreatedAt.IsZero() {
		t.Error("NewHistoryEntry() CreatedAt is zero")
	}
}
