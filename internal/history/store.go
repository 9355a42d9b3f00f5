package history

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/ced-it/promptforge/internal/prompt"
)

// MaxEntries bounds the stored history; the oldest entry is evicted first.
const MaxEntries = 10

const (
	historyFile = "history.json"
	counterFile = "counter.json"
)

// Entry is one remembered submission: the full request snapshot plus a
// capture timestamp, so selecting it can restore every field.
type Entry struct {
	ID        string         `json:"id"`
	Timestamp time.Time      `json:"timestamp"`
	Request   prompt.Request `json:"request"`
}

// Store persists the submission history and the monotonic generation
// counter as JSON files under the client config directory. Callers are
// single-threaded (the UI loop), so each mutation is a whole-file rewrite.
type Store struct {
	dir string
}

func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	return &Store{dir: dir}, nil
}

// Add prepends a new entry and evicts beyond MaxEntries.
func (s *Store) Add(req prompt.Request) (Entry, error) {
	entries, err := s.List()
	if err != nil {
		return Entry{}, err
	}

	entry := Entry{
		ID:        uuid.NewString(),
		Timestamp: time.Now(),
		Request:   req,
	}

	entries = append([]Entry{entry}, entries...)
	if len(entries) > MaxEntries {
		entries = entries[:MaxEntries]
	}

	if err := s.writeJSON(historyFile, entries); err != nil {
		return Entry{}, err
	}
	return entry, nil
}

// List returns the stored entries, newest first. A missing file is an
// empty history.
func (s *Store) List() ([]Entry, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, historyFile))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}

	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		// A corrupt history file is not worth failing over; start fresh.
		return nil, nil
	}
	return entries, nil
}

func (s *Store) Clear() error {
	err := os.Remove(filepath.Join(s.dir, historyFile))
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

type counter struct {
	Count int `json:"count"`
}

// Count returns the persisted submission counter.
func (s *Store) Count() (int, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, counterFile))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return 0, nil
		}
		return 0, err
	}

	var c counter
	if err := json.Unmarshal(data, &c); err != nil {
		return 0, nil
	}
	return c.Count, nil
}

// Increment bumps the counter by one and returns the new value. Called
// once per confirmed successful generation.
func (s *Store) Increment() (int, error) {
	n, err := s.Count()
	if err != nil {
		return 0, err
	}
	n++
	if err := s.writeJSON(counterFile, counter{Count: n}); err != nil {
		return 0, err
	}
	return n, nil
}

func (s *Store) writeJSON(name string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(s.dir, name), data, 0600)
}
