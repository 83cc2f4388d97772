package student

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Store persists the student profile as a single pretty-printed JSON
// document at a fixed path. Every public operation runs one
// load → mutate → save cycle under the store mutex, so concurrent callers
// within the process are serialized (single-writer discipline). There is
// no cross-process locking; the last save wins.
type Store struct {
	mu   sync.Mutex
	path string
	log  *zap.Logger

	// now is swapped out by tests that exercise day-boundary behavior.
	now func() time.Time
}

// NewStore creates a Store backed by the file at path.
func NewStore(path string, log *zap.Logger) *Store {
	if log == nil {
		log = zap.NewNop()
	}
	return &Store{path: path, log: log, now: time.Now}
}

// load reads the document from disk. A missing or corrupt file yields the
// default document — read failures are recovered locally, never surfaced.
func (s *Store) load() *Profile {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.log.Warn("reading student data, using defaults", zap.Error(err))
		}
		return defaultProfile()
	}

	var p Profile
	if err := json.Unmarshal(data, &p); err != nil {
		s.log.Warn("student data is corrupt, using defaults", zap.Error(err))
		return defaultProfile()
	}
	p.normalize()
	return &p
}

// save stamps updated_at and writes the whole document. Failures are
// logged and returned; callers translate them into an error Result.
func (s *Store) save(p *Profile) error {
	now := s.now()
	p.UpdatedAt = &now

	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		s.log.Error("marshal student data", zap.Error(err))
		return err
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		s.log.Error("create data directory", zap.Error(err))
		return err
	}

	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		s.log.Error("write student data", zap.Error(err))
		return err
	}
	return nil
}

// Profile returns the full student document.
func (s *Store) Profile() *Profile {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}
