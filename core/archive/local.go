package archive

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/spf13/afero"
)

// LocalStore keeps artifacts in a directory of an afero filesystem.
type LocalStore struct {
	fs   afero.Fs
	root string
}

// NewLocalStore creates a store rooted at root on fs.
func NewLocalStore(fs afero.Fs, root string) *LocalStore {
	return &LocalStore{fs: fs, root: filepath.Clean(root)}
}

// Root returns the store directory.
func (s *LocalStore) Root() string {
	return s.root
}

func (s *LocalStore) path(key string) string {
	return filepath.Join(s.root, filepath.FromSlash(key))
}

// Save writes data to root/key, creating parent directories.
func (s *LocalStore) Save(ctx context.Context, key string, data []byte) (Handle, error) {
	if err := ctx.Err(); err != nil {
		return Handle{}, err
	}
	p := s.path(key)
	if err := s.fs.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return Handle{}, fmt.Errorf("failed to create directory for %s: %w", key, err)
	}
	if err := afero.WriteFile(s.fs, p, data, 0o644); err != nil {
		return Handle{}, fmt.Errorf("failed to write %s: %w", key, err)
	}
	return Handle{Key: key, Location: p}, nil
}

// List walks the root and returns every regular file, sorted by key.
func (s *LocalStore) List(ctx context.Context) ([]Entry, error) {
	ok, err := s.Exists(ctx)
	if err != nil || !ok {
		return nil, err
	}

	var entries []Entry
	err = afero.Walk(s.fs, s.root, func(p string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(s.root, p)
		if err != nil {
			return err
		}
		entries = append(entries, Entry{
			Key:     filepath.ToSlash(rel),
			Size:    info.Size(),
			ModTime: info.ModTime(),
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", s.root, err)
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].Key < entries[j].Key })
	return entries, nil
}

// Prune removes files modified before cutoff. Directories are kept.
func (s *LocalStore) Prune(ctx context.Context, cutoff time.Time) ([]string, error) {
	entries, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	var removed []string
	for _, e := range entries {
		if !e.ModTime.Before(cutoff) {
			continue
		}
		if err := s.fs.Remove(s.path(e.Key)); err != nil && !os.IsNotExist(err) {
			return removed, fmt.Errorf("failed to remove %s: %w", e.Key, err)
		}
		removed = append(removed, e.Key)
	}
	return removed, nil
}

// Ensure creates the root directory.
func (s *LocalStore) Ensure(ctx context.Context) error {
	if err := s.fs.MkdirAll(s.root, 0o755); err != nil {
		return fmt.Errorf("failed to create %s: %w", s.root, err)
	}
	return nil
}

// Exists reports whether the root directory exists.
func (s *LocalStore) Exists(ctx context.Context) (bool, error) {
	return afero.DirExists(s.fs, s.root)
}
