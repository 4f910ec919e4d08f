package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
)

// FileStore keeps every key in one JSON document on disk.
// Each write replaces the document atomically through a rename.
type FileStore struct {
	mu   sync.RWMutex
	path string
	data map[string]json.RawMessage
}

// NewFileStore opens or creates the JSON document at path.
func NewFileStore(path string) (*FileStore, error) {
	fs := &FileStore{path: path, data: make(map[string]json.RawMessage)}

	raw, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		return fs, nil
	case err != nil:
		return nil, fmt.Errorf("read store file: %w", err)
	}
	if len(raw) == 0 {
		return fs, nil
	}
	if err := json.Unmarshal(raw, &fs.data); err != nil {
		return nil, fmt.Errorf("parse store file %s: %w", path, err)
	}
	return fs, nil
}

// Path returns the location of the backing document.
func (f *FileStore) Path() string {
	return f.path
}

// Get returns the raw JSON stored at key.
func (f *FileStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	v, ok := f.data[key]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), v...), true, nil
}

// Set stores value at key and rewrites the document. The value must be valid JSON.
func (f *FileStore) Set(_ context.Context, key string, value []byte) error {
	if !json.Valid(value) {
		return fmt.Errorf("value for %s is not valid JSON", key)
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	prev, had := f.data[key]
	f.data[key] = append(json.RawMessage(nil), value...)
	if err := f.flush(); err != nil {
		if had {
			f.data[key] = prev
		} else {
			delete(f.data, key)
		}
		return err
	}
	return nil
}

// Delete removes key and rewrites the document.
func (f *FileStore) Delete(_ context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.data[key]; !ok {
		return nil
	}
	delete(f.data, key)
	return f.flush()
}

// Keys returns the stored keys in sorted order.
func (f *FileStore) Keys(_ context.Context) ([]string, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	keys := make([]string, 0, len(f.data))
	for k := range f.data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys, nil
}

// Close is a no-op; every write is already on disk.
func (f *FileStore) Close() error {
	return nil
}

func (f *FileStore) flush() error {
	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return fmt.Errorf("create store directory: %w", err)
	}
	raw, err := json.MarshalIndent(f.data, "", "  ")
	if err != nil {
		return fmt.Errorf("encode store file: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(f.path), ".calchub-*.json")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(raw); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmpName, f.path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("replace store file: %w", err)
	}
	return nil
}
