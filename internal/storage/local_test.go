package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStorage_PutGet(t *testing.T) {
	ctx := context.Background()
	s, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, s.Put(ctx, "2025/lidl_2025-05-01.csv", []byte("a;b")))

	content, err := s.Get(ctx, "2025/lidl_2025-05-01.csv")
	require.NoError(t, err)
	assert.Equal(t, []byte("a;b"), content)

	_, err = s.Get(ctx, "missing.csv")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = s.Get(ctx, "2025")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLocalStorage_MaxFileSize(t *testing.T) {
	ctx := context.Background()
	s, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, s.Put(ctx, "f.csv", []byte("hello")))

	s.SetMaxFileSize(4)
	_, err = s.Get(ctx, "f.csv")
	assert.ErrorIs(t, err, ErrTooLarge)

	s.SetMaxFileSize(0)
	content, err := s.Get(ctx, "f.csv")
	require.NoError(t, err)
	assert.Equal(t, "2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824", ComputeChecksum(content))
}

func TestLocalStorage_List(t *testing.T) {
	ctx := context.Background()
	s, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	for _, key := range []string{
		"profi_2025-05-08.csv", "lidl_2025-05-01.csv", "archive/old.csv", "lidl_discounts_2025-05-01.csv",
		".lidl_2025-05-02.csv.swp", ".git/HEAD",
	} {
		require.NoError(t, s.Put(ctx, key, []byte("x")))
	}

	all, err := s.List(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"archive/old.csv", "lidl_2025-05-01.csv", "lidl_discounts_2025-05-01.csv", "profi_2025-05-08.csv"}, all)

	lidl, err := s.List(ctx, "lidl_")
	require.NoError(t, err)
	assert.Len(t, lidl, 2)
}

func TestLocalStorage_PathTraversal(t *testing.T) {
	ctx := context.Background()
	base := t.TempDir()
	s, err := NewLocalStorage(filepath.Join(base, "data"))
	require.NoError(t, err)

	require.NoError(t, s.Put(ctx, "../escape.csv", []byte("x")))

	_, err = os.Stat(filepath.Join(base, "escape.csv"))
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(filepath.Join(base, "data", "escape.csv"))
	assert.NoError(t, err)
}
