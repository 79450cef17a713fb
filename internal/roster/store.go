package roster

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"

	"github.com/lox/pokerpal/internal/fileutil"
)

// ErrMissingFile is returned by Load when the players file does not exist.
// The roster returned alongside it is empty and usable.
var ErrMissingFile = errors.New("players file missing")

// Store reads and writes the players file: one name per line, no chip data.
type Store struct {
	path   string
	logger *log.Logger
}

// NewStore creates a store for the players file at path
func NewStore(path string, logger *log.Logger) *Store {
	return &Store{
		path:   path,
		logger: logger.WithPrefix("store"),
	}
}

// Path returns the players file location
func (s *Store) Path() string {
	return s.path
}

// Load reads the players file into a new roster. Lines that cannot be added
// (reserved, repeated or containing spaces) are left out of the roster and
// returned as skipped so the caller can tell the user; the next Save drops them.
func (s *Store) Load() (r *Roster, skipped []string, err error) {
	r, _ = New()

	names, err := fileutil.ReadLines(s.path)
	if errors.Is(err, os.ErrNotExist) {
		s.logger.Warn("Players file not found", "path", s.path)
		return r, nil, fmt.Errorf("%w: %s", ErrMissingFile, s.path)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read players file: %w", err)
	}

	for _, name := range names {
		if err := r.Add(name); err != nil {
			s.logger.Warn("Skipping player entry", "name", name, "error", err)
			skipped = append(skipped, name)
		}
	}

	s.logger.Debug("Loaded players", "path", s.path, "count", r.Len(), "skipped", len(skipped))
	return r, skipped, nil
}

// Save overwrites the players file with the roster's names in order
func (s *Store) Save(r *Roster) error {
	if err := fileutil.WriteLinesAtomic(s.path, r.Names(), 0644); err != nil {
		return fmt.Errorf("failed to save players file: %w", err)
	}
	s.logger.Debug("Saved players", "path", s.path, "count", r.Len())
	return nil
}
