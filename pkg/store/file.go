package store

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/matzehuels/graphcanvas/pkg/errors"
)

// FileStore keeps each record as an indented JSON file named <id>.json.
type FileStore struct {
	mu      sync.RWMutex
	baseDir string
	now     func() time.Time
}

// NewFileStore creates a store rooted at baseDir. An empty baseDir defaults
// to ~/.config/graphcanvas/graphs.
func NewFileStore(baseDir string) (*FileStore, error) {
	if baseDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeStorage, err, "get home dir")
		}
		baseDir = filepath.Join(home, ".config", "graphcanvas", "graphs")
	}
	if err := os.MkdirAll(baseDir, 0o700); err != nil {
		return nil, errors.Wrap(errors.ErrCodeStorage, err, "create graph dir")
	}
	return &FileStore{baseDir: baseDir, now: time.Now}, nil
}

// Path returns the directory holding the record files.
func (s *FileStore) Path() string { return s.baseDir }

func (s *FileStore) recordPath(id string) string {
	return filepath.Join(s.baseDir, id+".json")
}

func (s *FileStore) List(ctx context.Context) ([]*Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStorage, err, "read graph dir")
	}
	var out []*Record
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".json" {
			continue
		}
		r, err := s.read(filepath.Join(s.baseDir, entry.Name()))
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	sortByCreation(out)
	return out, nil
}

func (s *FileStore) Get(ctx context.Context, id string) (*Record, error) {
	if errors.ValidateID(id) != nil {
		return nil, notFound(id)
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, err := s.read(s.recordPath(id))
	if stderrors.Is(err, fs.ErrNotExist) {
		return nil, notFound(id)
	}
	return r, err
}

func (s *FileStore) Create(ctx context.Context, r *Record) (*Record, error) {
	rec, err := newRecord(r, s.now())
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.write(rec); err != nil {
		return nil, err
	}
	return rec, nil
}

func (s *FileStore) Update(ctx context.Context, r *Record) (*Record, error) {
	if errors.ValidateID(r.ID) != nil {
		return nil, notFound(r.ID)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, err := s.read(s.recordPath(r.ID))
	if stderrors.Is(err, fs.ErrNotExist) {
		return nil, notFound(r.ID)
	}
	if err != nil {
		return nil, err
	}
	rec, err := applyUpdate(existing, r, s.now())
	if err != nil {
		return nil, err
	}
	if err := s.write(rec); err != nil {
		return nil, err
	}
	return rec, nil
}

func (s *FileStore) Delete(ctx context.Context, id string) error {
	if errors.ValidateID(id) != nil {
		return notFound(id)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.recordPath(id))
	if stderrors.Is(err, fs.ErrNotExist) {
		return notFound(id)
	}
	if err != nil {
		return errors.Wrap(errors.ErrCodeStorage, err, "remove graph file")
	}
	return nil
}

func (s *FileStore) Close() error { return nil }

// read loads one record. A missing file is returned unwrapped so callers can
// map it to not-found.
func (s *FileStore) read(path string) (*Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
		return nil, errors.Wrap(errors.ErrCodeStorage, err, "read graph file")
	}
	var r Record
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, errors.Wrap(errors.ErrCodeStorage, err, "parse %s", filepath.Base(path))
	}
	return &r, nil
}

func (s *FileStore) write(r *Record) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "marshal graph")
	}
	path := s.recordPath(r.ID)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return errors.Wrap(errors.ErrCodeStorage, err, "write graph file")
	}
	if err := os.Rename(tmp, path); err != nil {
		return errors.Wrap(errors.ErrCodeStorage, err, "write graph file")
	}
	return nil
}

var _ Store = (*FileStore)(nil)
