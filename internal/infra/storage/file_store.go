package storage

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"pos/internal/domain/repository"

	"github.com/pkg/errors"
)

// fileStore keeps every key in a single JSON document readable only by the owner
type fileStore struct {
	mu   sync.Mutex
	path string
}

// NewFileStore creates a store backed by path. Relative paths resolve against
// $POS_HOME, or the user's home directory when that is unset.
func NewFileStore(path string) (repository.KeyValueStore, error) {
	if !filepath.IsAbs(path) {
		home := os.Getenv("POS_HOME")
		if home == "" {
			var err error
			home, err = os.UserHomeDir()
			if err != nil {
				return nil, errors.Wrap(err, "resolve home directory")
			}
		}
		path = filepath.Join(home, path)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, errors.Wrapf(err, "create directory for %s", path)
	}

	return &fileStore{path: path}, nil
}

func (s *fileStore) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	values, err := s.read()
	if err != nil {
		return "", false, err
	}

	value, ok := values[key]

	return value, ok, nil
}

func (s *fileStore) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	values, err := s.read()
	if err != nil {
		// An unreadable document is replaced rather than blocking every later write.
		values = make(map[string]string)
	}
	values[key] = value

	return s.write(values)
}

func (s *fileStore) Delete(_ context.Context, keys ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	values, err := s.read()
	if err != nil {
		values = make(map[string]string)
	}
	for _, key := range keys {
		delete(values, key)
	}

	return s.write(values)
}

func (s *fileStore) Close() error {
	return nil
}

func (s *fileStore) read() (map[string]string, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return make(map[string]string), nil
	}
	if err != nil {
		return nil, errors.Wrapf(repository.ErrStorageUnavailable, "read %s: %v", s.path, err)
	}

	values := make(map[string]string)
	if len(data) == 0 {
		return values, nil
	}
	if err := json.Unmarshal(data, &values); err != nil {
		return nil, errors.Wrapf(repository.ErrStorageUnavailable, "decode %s: %v", s.path, err)
	}

	return values, nil
}

// write replaces the document atomically
func (s *fileStore) write(values map[string]string) error {
	data, err := json.MarshalIndent(values, "", "  ")
	if err != nil {
		return errors.WithStack(err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".tokens-*")
	if err != nil {
		return errors.Wrap(err, "create temp token file")
	}
	defer os.Remove(tmp.Name())

	if err := tmp.Chmod(0o600); err != nil {
		tmp.Close()

		return errors.Wrap(err, "chmod temp token file")
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()

		return errors.Wrap(err, "write temp token file")
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrap(err, "close temp token file")
	}

	return errors.Wrap(os.Rename(tmp.Name(), s.path), "replace token file")
}
