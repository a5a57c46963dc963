// Package archive snapshots live metrics into dated, project-partitioned
// object storage and reconstructs historical trend data from it.
package archive

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ErrNotFound is returned for absent snapshots. A missing day is a normal
// empty result, not a failure.
var ErrNotFound = errors.New("snapshot not found")

// ObjectStore abstracts durable blob storage for daily snapshots.
// Keys are partitioned as {projectID}/{YYYY-MM-DD}.json.
type ObjectStore interface {
	Put(ctx context.Context, key string, data []byte) error
	Get(ctx context.Context, key string) ([]byte, error)
	List(ctx context.Context, prefix string) ([]string, error)
}

// LocalStore implements ObjectStore on the local filesystem.
// Useful for development and testing.
type LocalStore struct {
	BaseDir string
}

// NewLocalStore creates a LocalStore rooted at the given directory.
func NewLocalStore(baseDir string) *LocalStore {
	return &LocalStore{BaseDir: baseDir}
}

func (s *LocalStore) path(key string) string {
	return filepath.Join(s.BaseDir, filepath.FromSlash(key))
}

// Put stores a snapshot blob, overwriting any existing object.
func (s *LocalStore) Put(ctx context.Context, key string, data []byte) error {
	path := s.path(key)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create directory: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// Get retrieves a snapshot blob.
func (s *LocalStore) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := os.ReadFile(s.path(key))
	if os.IsNotExist(err) {
		return nil, ErrNotFound
	}
	return data, err
}

// List returns all keys under the given prefix, sorted ascending.
func (s *LocalStore) List(ctx context.Context, prefix string) ([]string, error) {
	root := s.path(prefix)
	var keys []string
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			if os.IsNotExist(err) {
				return nil
			}
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(s.BaseDir, path)
		if err != nil {
			return err
		}
		keys = append(keys, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", prefix, err)
	}
	sort.Strings(keys)
	return keys, nil
}

// snapshotKey builds the storage key for one project-day.
func snapshotKey(projectID, date string) string {
	return projectID + "/" + date + ".json"
}

// dateFromKey extracts the YYYY-MM-DD component from a snapshot key,
// or "" if the key has another shape.
func dateFromKey(projectID, key string) string {
	rest, ok := strings.CutPrefix(key, projectID+"/")
	if !ok {
		return ""
	}
	date, ok := strings.CutSuffix(rest, ".json")
	if !ok || strings.Contains(date, "/") {
		return ""
	}
	return date
}
