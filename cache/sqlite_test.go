package cache

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSQLiteStore(t *testing.T) *SQLiteStore {
	t.Helper()
	s, err := NewSQLiteStore(filepath.Join(t.TempDir(), "cache.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSQLiteStore(t *testing.T) {
	ctx := context.Background()

	t.Run("set then get", func(t *testing.T) {
		s := newSQLiteStore(t)
		require.NoError(t, s.Set(ctx, "k", []byte("v"), time.Minute))

		got, ok, err := s.Get(ctx, "k")
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, []byte("v"), got)
	})

	t.Run("set overwrites", func(t *testing.T) {
		s := newSQLiteStore(t)
		require.NoError(t, s.Set(ctx, "k", []byte("old"), time.Minute))
		require.NoError(t, s.Set(ctx, "k", []byte("new"), time.Minute))

		got, ok, err := s.Get(ctx, "k")
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, []byte("new"), got)
	})

	t.Run("expired entry is a miss", func(t *testing.T) {
		s := newSQLiteStore(t)
		require.NoError(t, s.Set(ctx, "k", []byte("v"), -time.Second))

		_, ok, err := s.Get(ctx, "k")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("delete and exists", func(t *testing.T) {
		s := newSQLiteStore(t)
		require.NoError(t, s.Set(ctx, "k", []byte("v"), time.Minute))

		exists, err := s.Exists(ctx, "k")
		require.NoError(t, err)
		assert.True(t, exists)

		require.NoError(t, s.Delete(ctx, "k"))
		exists, err = s.Exists(ctx, "k")
		require.NoError(t, err)
		assert.False(t, exists)
	})
}
