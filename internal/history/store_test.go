package history

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/linksnip/link-shortener/internal/model"
)

func testEntry(shortURL, longURL string) *model.HistoryEntry {
	return model.NewHistoryEntry(model.ShortenedLink{
		ShortURL:  shortURL,
		LongURL:   longURL,
		ExpiresAt: "2025-07-01T00:00:00Z",
	})
}

func TestNewStore(t *testing.T) {
	store := NewStore("", 10)

	if store.Len() != 0 {
		t.Errorf("Expected empty store, got %d entries", store.Len())
	}
	if store.limit != 10 {
		t.Errorf("Expected limit 10, got %d", store.limit)
	}

	// Non-positive limit falls back to the default
	store = NewStore("", 0)
	if store.limit != DefaultLimit {
		t.Errorf("Expected default limit %d, got %d", DefaultLimit, store.limit)
	}
}

func TestStore_Add(t *testing.T) {
	store := NewStore("", 10)

	first := store.Add(testEntry("https://sho.rt/aaa", "https://example.com/1"))
	second := store.Add(testEntry("https://sho.rt/bbb", "https://example.com/2"))

	if first.ID == "" || second.ID == "" {
		t.Error("Expected IDs to be assigned on add")
	}
	if first.ID == second.ID {
		t.Error("Expected different entry IDs")
	}
	if first.CreatedAt.IsZero() {
		t.Error("Expected CreatedAt to be set")
	}

	entries := store.All()
	if len(entries) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(entries))
	}

	// Newest first
	if entries[0].ShortURL != "https://sho.rt/bbb" {
		t.Errorf("Expected newest entry first, got %s", entries[0].ShortURL)
	}
	if entries[1].ShortURL != "https://sho.rt/aaa" {
		t.Errorf("Expected oldest entry last, got %s", entries[1].ShortURL)
	}
}

func TestStore_Add_TrimsToLimit(t *testing.T) {
	store := NewStore("", 3)

	store.Add(testEntry("https://sho.rt/a", "https://example.com/1"))
	store.Add(testEntry("https://sho.rt/b", "https://example.com/2"))
	store.Add(testEntry("https://sho.rt/c", "https://example.com/3"))
	store.Add(testEntry("https://sho.rt/d", "https://example.com/4"))

	entries := store.All()
	if len(entries) != 3 {
		t.Fatalf("Expected 3 entries after trim, got %d", len(entries))
	}
	if entries[0].ShortURL != "https://sho.rt/d" {
		t.Errorf("Expected newest entry first, got %s", entries[0].ShortURL)
	}
	if entries[2].ShortURL != "https://sho.rt/b" {
		t.Errorf("Expected oldest kept entry to be 'b', got %s", entries[2].ShortURL)
	}
}

func TestStore_Remove(t *testing.T) {
	store := NewStore("", 10)

	kept := store.Add(testEntry("https://sho.rt/keep", "https://example.com/1"))
	removed := store.Add(testEntry("https://sho.rt/drop", "https://example.com/2"))

	if err := store.Remove(removed.ID); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if store.Len() != 1 {
		t.Errorf("Expected 1 entry after remove, got %d", store.Len())
	}
	if store.All()[0].ID != kept.ID {
		t.Error("Expected the kept entry to remain")
	}

	if err := store.Remove("missing-id"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestStore_Clear(t *testing.T) {
	store := NewStore("", 10)

	store.Add(testEntry("https://sho.rt/a", "https://example.com/1"))
	store.Add(testEntry("https://sho.rt/b", "https://example.com/2"))

	store.Clear()
	if store.Len() != 0 {
		t.Errorf("Expected empty store after clear, got %d entries", store.Len())
	}
}

func TestStore_PersistAndReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)

	store := NewStore(path, 10)
	store.Add(testEntry("https://sho.rt/a", "https://example.com/1"))
	store.Add(testEntry("https://sho.rt/b", "https://example.com/2"))

	if _, err := os.Stat(path); err != nil {
		t.Fatalf("Expected history file to exist: %v", err)
	}

	reloaded := NewStore(path, 10)
	entries := reloaded.All()
	if len(entries) != 2 {
		t.Fatalf("Expected 2 entries after reload, got %d", len(entries))
	}
	if entries[0].ShortURL != "https://sho.rt/b" {
		t.Errorf("Expected order preserved after reload, got %s first", entries[0].ShortURL)
	}
	if entries[0].ID == "" {
		t.Error("Expected IDs preserved after reload")
	}
}

func TestStore_ReloadTrimsToLimit(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)

	store := NewStore(path, 10)
	for i := 0; i < 5; i++ {
		store.Add(testEntry("https://sho.rt/x", "https://example.com/page"))
	}

	reloaded := NewStore(path, 2)
	if reloaded.Len() != 2 {
		t.Errorf("Expected reload to trim to 2 entries, got %d", reloaded.Len())
	}
}

func TestStore_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatalf("Failed to write corrupt file: %v", err)
	}

	// A corrupt file is logged and skipped, not fatal
	store := NewStore(path, 10)
	if store.Len() != 0 {
		t.Errorf("Expected empty store for corrupt file, got %d entries", store.Len())
	}

	store.Add(testEntry("https://sho.rt/a", "https://example.com/1"))
	if store.Len() != 1 {
		t.Errorf("Expected store to accept entries after corrupt load, got %d", store.Len())
	}
}

func TestStore_SetLimit(t *testing.T) {
	store := NewStore("", 10)
	for i := 0; i < 5; i++ {
		store.Add(testEntry("https://sho.rt/x", "https://example.com/page"))
	}

	store.SetLimit(2)
	if store.Len() != 2 {
		t.Errorf("Expected 2 entries after lowering limit, got %d", store.Len())
	}
}

func TestGenerateEntryID(t *testing.T) {
	id1 := generateEntryID()
	id2 := generateEntryID()

	if id1 == id2 {
		t.Error("Expected different entry IDs")
	}
	if id1 == "" || id2 == "" {
		t.Error("Expected non-empty entry IDs")
	}

	// Check prefix
	if !strings.HasPrefix(id1, EntryIDPrefix) {
		t.Errorf("Expected ID to start with %q, got: %s", EntryIDPrefix, id1)
	}

	// Check UUID format (prefix + 36 chars for UUID)
	if len(id1) != len(EntryIDPrefix)+36 {
		t.Errorf("Expected ID length %d, got %d for ID: %s", len(EntryIDPrefix)+36, len(id1), id1)
	}
}
