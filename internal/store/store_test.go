package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openAll(t *testing.T) map[string]Store {
	t.Helper()
	dir := t.TempDir()

	fileStore, err := NewFileStore(filepath.Join(dir, "calchub.json"))
	require.NoError(t, err)
	sqliteStore, err := NewSQLiteStore(":memory:")
	require.NoError(t, err)

	stores := map[string]Store{
		"memory": NewMemoryStore(),
		"file":   fileStore,
		"sqlite": sqliteStore,
	}
	t.Cleanup(func() {
		for _, s := range stores {
			_ = s.Close()
		}
	})
	return stores
}

func TestStore_Contract(t *testing.T) {
	ctx := context.Background()
	for name, s := range openAll(t) {
		t.Run(name, func(t *testing.T) {
			_, ok, err := s.Get(ctx, KeyNotes)
			require.NoError(t, err)
			assert.False(t, ok)

			require.NoError(t, s.Set(ctx, KeyNotes, []byte(`"hello"`)))
			require.NoError(t, s.Set(ctx, KeyFavorites, []byte(`["math-basic"]`)))

			v, ok, err := s.Get(ctx, KeyNotes)
			require.NoError(t, err)
			require.True(t, ok)
			assert.Equal(t, `"hello"`, string(v))

			require.NoError(t, s.Set(ctx, KeyNotes, []byte(`"updated"`)))
			v, _, _ = s.Get(ctx, KeyNotes)
			assert.Equal(t, `"updated"`, string(v))

			keys, err := s.Keys(ctx)
			require.NoError(t, err)
			assert.Equal(t, []string{KeyFavorites, KeyNotes}, keys)

			require.NoError(t, s.Delete(ctx, KeyNotes))
			require.NoError(t, s.Delete(ctx, "missing"))
			_, ok, err = s.Get(ctx, KeyNotes)
			require.NoError(t, err)
			assert.False(t, ok)
		})
	}
}

func TestStore_JSONHelpers(t *testing.T) {
	ctx := context.Background()
	for name, s := range openAll(t) {
		t.Run(name, func(t *testing.T) {
			var favs []string
			ok, err := GetJSON(ctx, s, KeyFavorites, &favs)
			require.NoError(t, err)
			assert.False(t, ok)

			require.NoError(t, SetJSON(ctx, s, KeyFavorites, []string{"a", "b"}))
			ok, err = GetJSON(ctx, s, KeyFavorites, &favs)
			require.NoError(t, err)
			assert.True(t, ok)
			assert.Equal(t, []string{"a", "b"}, favs)
		})
	}
}

func TestMemoryStore_CopiesValues(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	buf := []byte(`"a"`)
	require.NoError(t, s.Set(ctx, "k", buf))
	buf[1] = 'z'

	v, _, _ := s.Get(ctx, "k")
	assert.Equal(t, `"a"`, string(v))
}

func TestFileStore_PersistsAcrossOpen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "calchub.json")

	s, err := NewFileStore(path)
	require.NoError(t, err)
	require.NoError(t, s.Set(ctx, KeyTodos, []byte(`[{"id":"1","text":"x","done":false}]`)))

	reopened, err := NewFileStore(path)
	require.NoError(t, err)
	v, ok, err := reopened.Get(ctx, KeyTodos)
	require.NoError(t, err)
	require.True(t, ok)
	assert.JSONEq(t, `[{"id":"1","text":"x","done":false}]`, string(v))
	assert.Equal(t, path, reopened.Path())
}

func TestFileStore_RejectsInvalidJSON(t *testing.T) {
	s, err := NewFileStore(filepath.Join(t.TempDir(), "calchub.json"))
	require.NoError(t, err)
	err = s.Set(context.Background(), "k", []byte("not json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not valid JSON")
}

func TestFileStore_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "calchub.json")
	require.NoError(t, os.WriteFile(path, []byte("{broken"), 0o644))
	_, err := NewFileStore(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse store file")
}

func TestSQLiteStore_PersistsAcrossOpen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "calchub.db")

	s, err := NewSQLiteStore(path)
	require.NoError(t, err)
	require.NoError(t, s.Set(ctx, KeyHistory, []byte(`[]`)))
	require.NoError(t, s.Close())

	reopened, err := NewSQLiteStore(path)
	require.NoError(t, err)
	defer reopened.Close()
	v, ok, err := reopened.Get(ctx, KeyHistory)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `[]`, string(v))
}

func TestOpen(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		kind    Kind
		wantErr bool
	}{
		{KindMemory, false},
		{KindFile, false},
		{KindSQLite, false},
		{"", false},
		{"redis", true},
	}
	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			s, err := Open(tt.kind, dir)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "unknown store kind")
				return
			}
			require.NoError(t, err)
			assert.NoError(t, s.Close())
		})
	}
}
