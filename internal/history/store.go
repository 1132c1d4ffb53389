package history

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/linksnip/link-shortener/internal/model"
)

const (
	// FileName is the history file inside the app config directory
	FileName = "history.json"

	// EntryIDPrefix namespaces history entry IDs
	EntryIDPrefix = "link-"

	// DefaultLimit caps the list when no limit is configured
	DefaultLimit = 25

	// filePermissions for the history file
	filePermissions = 0644
)

// ErrNotFound means no entry with the given ID exists
var ErrNotFound = errors.New("entry not found")

// Store keeps recent shortened links, newest first
type Store struct {
	mu      sync.RWMutex
	entries []*model.HistoryEntry
	limit   int
	path    string // empty keeps the store memory-only
}

// NewStore creates a store capped at limit entries. When path is not empty,
// previously saved entries are loaded from it.
func NewStore(path string, limit int) *Store {
	if limit <= 0 {
		limit = DefaultLimit
	}

	s := &Store{
		entries: make([]*model.HistoryEntry, 0, limit),
		limit:   limit,
		path:    path,
	}

	if path != "" {
		if err := s.load(); err != nil {
			log.Printf("Failed to load history from %s: %v", path, err)
		}
	}

	return s
}

// Add stores a new entry at the front, assigns its ID, trims the list to
// the limit and persists. Returns the stored entry.
func (s *Store) Add(entry *model.HistoryEntry) *model.HistoryEntry {
	stored := *entry // copy to avoid external changes
	stored.ID = generateEntryID()
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = time.Now()
	}

	s.mu.Lock()
	s.entries = append([]*model.HistoryEntry{&stored}, s.entries...)
	if len(s.entries) > s.limit {
		s.entries = s.entries[:s.limit]
	}
	s.mu.Unlock()

	s.persist()

	return &stored
}

// All returns the entries, newest first
func (s *Store) All() []*model.HistoryEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := make([]*model.HistoryEntry, len(s.entries))
	copy(entries, s.entries)
	return entries
}

// Remove deletes the entry with the given ID
func (s *Store) Remove(id string) error {
	s.mu.Lock()
	found := false
	for i, entry := range s.entries {
		if entry.ID == id {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			found = true
			break
		}
	}
	s.mu.Unlock()

	if !found {
		return ErrNotFound
	}

	s.persist()
	return nil
}

// Clear drops all entries
func (s *Store) Clear() {
	s.mu.Lock()
	s.entries = s.entries[:0]
	s.mu.Unlock()

	s.persist()
}

// Len returns the number of stored entries
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// SetLimit changes the cap and trims the list if needed
func (s *Store) SetLimit(limit int) {
	if limit <= 0 {
		limit = DefaultLimit
	}

	s.mu.Lock()
	s.limit = limit
	trimmed := len(s.entries) > limit
	if trimmed {
		s.entries = s.entries[:limit]
	}
	s.mu.Unlock()

	if trimmed {
		s.persist()
	}
}

// load reads the history file into the store
func (s *Store) load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read history file: %w", err)
	}

	var entries []*model.HistoryEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return fmt.Errorf("parse history file: %w", err)
	}

	s.mu.Lock()
	if len(entries) > s.limit {
		entries = entries[:s.limit]
	}
	s.entries = entries
	s.mu.Unlock()

	return nil
}

// persist writes the current entries to the history file
func (s *Store) persist() {
	if s.path == "" {
		return
	}

	s.mu.RLock()
	data, err := json.MarshalIndent(s.entries, "", "  ")
	s.mu.RUnlock()
	if err != nil {
		log.Printf("Failed to encode history: %v", err)
		return
	}

	if err := os.WriteFile(s.path, data, filePermissions); err != nil {
		log.Printf("Failed to write history to %s: %v", s.path, err)
	}
}

// generateEntryID generates a unique entry ID using UUID v7 for better
// uniqueness and time ordering
func generateEntryID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to timestamp if UUID generation fails
		return fmt.Sprintf(EntryIDPrefix+"%d", time.Now().UnixNano())
	}
	return EntryIDPrefix + id.String()
}
