package storage

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// DefaultMaxFileSize bounds a single price file read by Get
const DefaultMaxFileSize int64 = 64 << 20

// LocalStorage reads price files from a directory tree
type LocalStorage struct {
	basePath    string
	maxFileSize int64
}

// NewLocalStorage creates the directory if needed
func NewLocalStorage(basePath string) (*LocalStorage, error) {
	if err := os.MkdirAll(basePath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory %s: %w", basePath, err)
	}
	return &LocalStorage{basePath: basePath, maxFileSize: DefaultMaxFileSize}, nil
}

// SetMaxFileSize changes the Get size limit. Zero or less disables it.
func (s *LocalStorage) SetMaxFileSize(n int64) {
	s.maxFileSize = n
}

func (s *LocalStorage) Put(_ context.Context, key string, content []byte) error {
	fullPath := s.keyToPath(key)

	dir := filepath.Dir(fullPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}
	if err := os.WriteFile(fullPath, content, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}

func (s *LocalStorage) Get(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	fullPath := s.keyToPath(key)

	stat, err := os.Stat(fullPath)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%s: %w", key, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to stat %s: %w", key, err)
	}
	if stat.IsDir() {
		return nil, fmt.Errorf("%s is a directory: %w", key, ErrNotFound)
	}
	if s.maxFileSize > 0 && stat.Size() > s.maxFileSize {
		return nil, fmt.Errorf("%s is %d bytes, limit is %d: %w", key, stat.Size(), s.maxFileSize, ErrTooLarge)
	}

	content, err := os.ReadFile(fullPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", key, err)
	}
	return content, nil
}

// List walks the tree below the base path. Dot files and dot directories
// (editor swap files, .git) are not listed.
func (s *LocalStorage) List(ctx context.Context, prefix string) ([]string, error) {
	keys := make([]string, 0)
	err := filepath.WalkDir(s.basePath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if path != s.basePath && strings.HasPrefix(d.Name(), ".") {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}

		if key := s.pathToKey(path); strings.HasPrefix(key, prefix) {
			keys = append(keys, key)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", s.basePath, err)
	}

	sort.Strings(keys)
	return keys, nil
}

// BasePath returns the directory this storage reads from
func (s *LocalStorage) BasePath() string {
	return s.basePath
}

func (s *LocalStorage) keyToPath(key string) string {
	// Rooting the key before cleaning prevents path traversal
	cleanKey := filepath.Clean("/" + filepath.FromSlash(key))
	return filepath.Join(s.basePath, cleanKey)
}

func (s *LocalStorage) pathToKey(path string) string {
	relPath, err := filepath.Rel(s.basePath, path)
	if err != nil {
		return path
	}
	return filepath.ToSlash(relPath)
}

// ComputeChecksum returns the hex SHA-256 of content
func ComputeChecksum(content []byte) string {
	hash := sha256.Sum256(content)
	return hex.EncodeToString(hash[:])
}
