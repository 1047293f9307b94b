package store

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"sync"

	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// Collection keys. Each key maps to one JSON document holding the full
// serialized collection.
const (
	ProductsKey = "products"
	OrdersKey   = "orders"
	UsersKey    = "users"
)

// Store is a durable JSON document store: one file per collection key
// under a data directory. There is no partial-update primitive; callers
// read the full collection, mutate in memory and write the full collection
// back. The mutex serializes writers within this process only — two
// processes sharing a data directory race read-modify-write cycles and the
// last writer wins at whole-collection granularity.
type Store struct {
	mu     sync.Mutex
	fs     afero.Fs
	dir    string
	logger *zap.Logger
}

// New creates a Store rooted at dir on the given filesystem, creating the
// directory if needed.
func New(fs afero.Fs, dir string, logger *zap.Logger) (*Store, error) {
	if err := fs.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	return &Store{fs: fs, dir: dir, logger: logger}, nil
}

func (s *Store) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

// Load returns the collection stored under key. On first access the
// defaults are persisted and returned (seeding). Malformed stored JSON is
// surfaced as an error rather than silently reseeded.
func Load[T any](s *Store, key string, defaults T) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var zero T

	exists, err := afero.Exists(s.fs, s.path(key))
	if err != nil {
		return zero, fmt.Errorf("failed to stat collection %q: %w", key, err)
	}

	if !exists {
		s.logger.Info("Seeding collection", zap.String("key", key))
		if err := write(s, key, defaults); err != nil {
			return zero, err
		}
		return defaults, nil
	}

	data, err := afero.ReadFile(s.fs, s.path(key))
	if err != nil {
		return zero, fmt.Errorf("failed to read collection %q: %w", key, err)
	}

	var value T
	if err := json.Unmarshal(data, &value); err != nil {
		return zero, fmt.Errorf("collection %q is corrupted: %w", key, err)
	}

	return value, nil
}

// Save overwrites the collection stored under key with a full
// serialization of value.
func Save[T any](s *Store, key string, value T) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return write(s, key, value)
}

func write[T any](s *Store, key string, value T) error {
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize collection %q: %w", key, err)
	}
	if err := afero.WriteFile(s.fs, s.path(key), data, 0o644); err != nil {
		return fmt.Errorf("failed to write collection %q: %w", key, err)
	}
	return nil
}
