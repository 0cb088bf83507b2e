package kvstore

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	"github.com/dhanamorganics/storefront/internal/common"
)

// FileStore keeps every key in its own file under a directory. It is the
// closest analog to browser storage for a single-node deployment: synchronous
// writes, survives restarts, no coordination between writers.
type FileStore struct {
	dir string
}

func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o770); err != nil {
		return nil, fmt.Errorf("mkdir %s: %w", dir, err)
	}
	return &FileStore{dir: dir}, nil
}

// path maps a key to a file name. Keys contain characters like ':' that are
// unsafe in file names, so the key is query-escaped.
func (s *FileStore) path(key string) string {
	return filepath.Join(s.dir, url.QueryEscape(key)+".json")
}

func (s *FileStore) Get(ctx context.Context, key string) (string, error) {
	b, err := os.ReadFile(s.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return "", common.ErrNotFound
		}
		return "", fmt.Errorf("read %s: %w", key, err)
	}
	return string(b), nil
}

func (s *FileStore) Set(ctx context.Context, key string, value string) error {
	if err := os.WriteFile(s.path(key), []byte(value), 0o600); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}

func (s *FileStore) Remove(ctx context.Context, key string) error {
	if err := os.Remove(s.path(key)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove %s: %w", key, err)
	}
	return nil
}
