package journal

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"slices"

	"github.com/natefinch/atomic"

	"github.com/cleared-dev/ledgerlab/internal/model"
)

// Store holds submitted journal entries in submission order.
type Store struct {
	entries []model.JournalEntry
	ids     map[string]struct{}
}

// NewStore creates an empty Store.
func NewStore() *Store {
	return &Store{ids: make(map[string]struct{})}
}

// Load reads a journal.csv snapshot into a new Store. A missing file
// yields an empty Store. Entries are imported as-is.
func Load(path string) (*Store, error) {
	s := NewStore()

	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening journal %s: %w", path, err)
	}
	defer f.Close()

	entries, err := ReadEntries(f)
	if err != nil {
		return nil, fmt.Errorf("reading journal %s: %w", path, err)
	}
	if err := s.Import(entries); err != nil {
		return nil, fmt.Errorf("importing journal %s: %w", path, err)
	}
	return s, nil
}

// Save writes the whole journal to path, replacing it atomically.
func (s *Store) Save(path string) error {
	var buf bytes.Buffer
	if err := WriteEntries(&buf, s.entries); err != nil {
		return fmt.Errorf("encoding journal: %w", err)
	}
	if err := atomic.WriteFile(path, &buf); err != nil {
		return fmt.Errorf("writing journal: %w", err)
	}
	return nil
}

// Submit validates draft and appends the resulting entry.
func (s *Store) Submit(v *Validator, draft model.EntryDraft) (model.JournalEntry, error) {
	entry, err := v.Validate(draft)
	if err != nil {
		return model.JournalEntry{}, err
	}
	if err := s.Append(entry); err != nil {
		return model.JournalEntry{}, err
	}
	return entry, nil
}

// Append adds an entry that has already passed the Validator.
func (s *Store) Append(entry model.JournalEntry) error {
	return s.Import([]model.JournalEntry{entry})
}

// Import appends entries without balance validation, for data that arrives
// out of band such as a snapshot. IDs must still be present and unique;
// on error nothing is appended.
func (s *Store) Import(entries []model.JournalEntry) error {
	seen := make(map[string]struct{}, len(entries))
	for _, e := range entries {
		if e.ID == "" {
			return model.Invalid(model.ErrMissingRequiredField, "", "entry id is required")
		}
		_, dupStore := s.ids[e.ID]
		_, dupBatch := seen[e.ID]
		if dupStore || dupBatch {
			return model.Invalid(model.ErrDuplicateEntryID, e.ID, "entry already recorded")
		}
		seen[e.ID] = struct{}{}
	}

	next := make([]model.JournalEntry, 0, len(s.entries)+len(entries))
	next = append(next, s.entries...)
	for _, e := range entries {
		e.Lines = slices.Clone(e.Lines)
		next = append(next, e)
	}
	for idv := range seen {
		s.ids[idv] = struct{}{}
	}
	s.entries = next
	return nil
}

// All returns a copy of all entries in submission order.
func (s *Store) All() []model.JournalEntry {
	out := make([]model.JournalEntry, len(s.entries))
	for i, e := range s.entries {
		e.Lines = slices.Clone(e.Lines)
		out[i] = e
	}
	return out
}

// Len returns the number of entries.
func (s *Store) Len() int {
	return len(s.entries)
}

// References reports whether any line uses the account code.
func (s *Store) References(code string) bool {
	for _, e := range s.entries {
		for _, l := range e.Lines {
			if l.AccountCode == code {
				return true
			}
		}
	}
	return false
}
