// Package store provides the key-value persistence behind favorites, history,
// notes and todos. Values are opaque byte slices; callers encode JSON through
// GetJSON and SetJSON.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
)

// Keys under which hub state is persisted.
const (
	KeyNotes     = "notes"
	KeyTodos     = "todos"
	KeyFavorites = "favorites"
	KeyHistory   = "history"
)

// Store is a minimal key-value store.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Keys(ctx context.Context) ([]string, error)
	Close() error
}

// Kind names a store implementation.
type Kind string

// Supported store kinds.
const (
	KindMemory Kind = "memory"
	KindFile   Kind = "file"
	KindSQLite Kind = "sqlite"
)

// File names used inside the data directory.
const (
	fileName   = "calchub.json"
	sqliteName = "calchub.db"
)

// Open creates the store of the given kind rooted at dir.
func Open(kind Kind, dir string) (Store, error) {
	switch kind {
	case KindMemory:
		return NewMemoryStore(), nil
	case KindFile, "":
		return NewFileStore(filepath.Join(dir, fileName))
	case KindSQLite:
		return NewSQLiteStore(filepath.Join(dir, sqliteName))
	default:
		return nil, fmt.Errorf("unknown store kind %q (expected memory, file or sqlite)", kind)
	}
}

// GetJSON decodes the value stored at key into v. It reports false when the key is absent.
func GetJSON(ctx context.Context, s Store, key string, v any) (bool, error) {
	data, ok, err := s.Get(ctx, key)
	if err != nil || !ok {
		return false, err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return false, fmt.Errorf("decode %s: %w", key, err)
	}
	return true, nil
}

// SetJSON encodes v and stores it at key.
func SetJSON(ctx context.Context, s Store, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	return s.Set(ctx, key, data)
}
