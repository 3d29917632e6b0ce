package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/taskboard/taskboard/internal/model"
)

// FileStore keeps the document in a single JSON file on local disk. Writes
// go through a temp file followed by a rename so a crash mid-write cannot
// leave a half-written document behind. The mutex serializes the
// read-version-then-write sequence inside this process; across processes the
// version check still detects (but cannot prevent) interleaved writers.
type FileStore struct {
	path string
	mu   sync.Mutex
}

// NewFileStore returns a FileStore persisting to the given path. The file
// is created with seed data on the first Load.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Load reads the full document. A missing file is seeded and persisted
// before returning; an unreadable or corrupt file yields ErrUnavailable
// with the bad file left in place.
func (s *FileStore) Load(ctx context.Context) (*model.Db, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	db, err := s.read()
	if err != nil {
		return nil, err
	}
	if db == nil {
		db, err = seedDb()
		if err != nil {
			return nil, fmt.Errorf("%w: seed: %v", ErrUnavailable, err)
		}
		if err := s.write(db); err != nil {
			return nil, err
		}
	}
	return db, nil
}

// Save persists db with its version bumped by one, but only if the version
// on disk still equals db.Version.
func (s *FileStore) Save(ctx context.Context, db *model.Db) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cur, err := s.read()
	if err != nil {
		return err
	}
	if cur != nil && cur.Version != db.Version {
		return ErrVersionConflict
	}
	next := *db
	next.Version = db.Version + 1
	if err := s.write(&next); err != nil {
		return err
	}
	db.Version = next.Version
	return nil
}

// read returns the parsed document, nil when the file does not exist yet.
func (s *FileStore) read() (*model.Db, error) {
	raw, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", ErrUnavailable, s.path, err)
	}
	var db model.Db
	if err := json.Unmarshal(raw, &db); err != nil {
		return nil, fmt.Errorf("%w: corrupt document %s: %v", ErrUnavailable, s.path, err)
	}
	return &db, nil
}

func (s *FileStore) write(db *model.Db) error {
	data, err := json.MarshalIndent(db, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: marshal: %v", ErrUnavailable, err)
	}
	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".taskboard-*.json")
	if err != nil {
		return fmt.Errorf("%w: temp file: %v", ErrUnavailable, err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("%w: write: %v", ErrUnavailable, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("%w: close: %v", ErrUnavailable, err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("%w: rename: %v", ErrUnavailable, err)
	}
	return nil
}
